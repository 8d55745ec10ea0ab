package domain

import (
	"iter"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// HistoryEntry is a single recorded movement on an account.
type HistoryEntry struct {
	Timestamp time.Time
	Kind      TransactionKind
	Amount    decimal.Decimal
}

// History is the append-only record of an account's successful transactions.
type History struct {
	entries []HistoryEntry
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// Record appends a movement. Timestamps are stored in UTC.
func (h *History) Record(kind TransactionKind, amount decimal.Decimal, at time.Time) HistoryEntry {
	entry := HistoryEntry{
		Timestamp: at.UTC(),
		Kind:      kind,
		Amount:    amount,
	}
	h.entries = append(h.entries, entry)

	return entry
}

// Len returns the number of recorded entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of every entry in insertion order.
func (h *History) Entries() []HistoryEntry {
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Report yields the entries whose kind matches kindFilter, ignoring case.
// An empty filter yields every entry. The sequence can be ranged over more
// than once; each pass sees the entries present when it starts.
func (h *History) Report(kindFilter string) iter.Seq[HistoryEntry] {
	filter := strings.TrimSpace(kindFilter)

	return func(yield func(HistoryEntry) bool) {
		entries := h.entries[:len(h.entries):len(h.entries)]
		for _, e := range entries {
			if filter != "" && !strings.EqualFold(e.Kind.String(), filter) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// TransactionsOn returns the entries recorded on the same UTC calendar date
// as now.
func (h *History) TransactionsOn(now time.Time) []HistoryEntry {
	y, m, d := now.UTC().Date()

	var out []HistoryEntry
	for _, e := range h.entries {
		ey, em, ed := e.Timestamp.UTC().Date()
		if ey == y && em == m && ed == d {
			out = append(out, e)
		}
	}

	return out
}

// TransactionsToday returns the entries recorded on the current UTC date.
func (h *History) TransactionsToday() []HistoryEntry {
	return h.TransactionsOn(time.Now())
}
