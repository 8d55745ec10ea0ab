package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	StatementTimeLayout   = "02-01-2006 15:04:05"
	DefaultCurrencySymbol = "R$"

	statementHeader = "================ STATEMENT ================"
	statementFooter = "==========================================="
)

// Statement is the report of every movement on an account and its balance.
type Statement struct {
	Agency        string
	AccountNumber int
	HolderName    string
	Entries       []HistoryEntry
	Balance       decimal.Decimal
}

// NewStatement builds a statement from the account's full history.
func NewStatement(account *Account, holderName string) *Statement {
	return NewFilteredStatement(account, holderName, "")
}

// NewFilteredStatement builds a statement holding only the entries whose kind
// matches kindFilter. The balance is always the current one.
func NewFilteredStatement(account *Account, holderName, kindFilter string) *Statement {
	var entries []HistoryEntry
	for e := range account.History.Report(kindFilter) {
		entries = append(entries, e)
	}

	return &Statement{
		Agency:        account.Agency,
		AccountNumber: account.Number,
		HolderName:    holderName,
		Entries:       entries,
		Balance:       account.Balance,
	}
}

// IsEmpty reports whether the account never had a movement.
func (s *Statement) IsEmpty() bool {
	return len(s.Entries) == 0
}

// Render formats the statement as text. The output depends only on the
// recorded entries and the balance.
func (s *Statement) Render(currency string) string {
	if currency == "" {
		currency = DefaultCurrencySymbol
	}

	var b strings.Builder
	b.WriteString(statementHeader)

	if s.IsEmpty() {
		b.WriteString("\nNo transactions recorded.")
	}

	for _, e := range s.Entries {
		fmt.Fprintf(&b, "\n%s\n%s:\n\t%s",
			e.Timestamp.Format(StatementTimeLayout), e.Kind, FormatMoney(currency, e.Amount))
	}

	fmt.Fprintf(&b, "\n\nBalance:\n\t%s\n%s", FormatMoney(currency, s.Balance), statementFooter)

	return b.String()
}

// AccountSummary is the listing view of an account.
type AccountSummary struct {
	Agency     string
	Number     int
	HolderName string
	Balance    decimal.Decimal
}

// Render formats the summary as an aligned block.
func (s AccountSummary) Render(currency string) string {
	if currency == "" {
		currency = DefaultCurrencySymbol
	}

	return fmt.Sprintf("Agency:\t%s\nNumber:\t%d\nHolder:\t%s\nBalance:\t%s",
		s.Agency, s.Number, s.HolderName, FormatMoney(currency, s.Balance))
}

// FormatMoney renders an amount with two decimal places.
func FormatMoney(currency string, amount decimal.Decimal) string {
	return currency + " " + amount.StringFixed(AmountPlaces)
}
