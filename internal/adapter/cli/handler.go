package cli

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/infrastructure/metrics"
	"github.com/iho/gobank/internal/usecase"
)

// CounterSource exposes the session counters shown by the stats command.
type CounterSource interface {
	Counters() ([]metrics.CounterSample, error)
}

// HandlerConfig wires a Handler.
type HandlerConfig struct {
	Session  *usecase.Session
	Out      io.Writer
	Currency string
	Counters CounterSource
}

// Handler runs session operations and prints their outcome.
type Handler struct {
	session  *usecase.Session
	out      io.Writer
	currency string
	counters CounterSource
}

// NewHandler creates a new Handler.
func NewHandler(cfg HandlerConfig) *Handler {
	if cfg.Currency == "" {
		cfg.Currency = domain.DefaultCurrencySymbol
	}

	return &Handler{
		session:  cfg.Session,
		out:      cfg.Out,
		currency: cfg.Currency,
		counters: cfg.Counters,
	}
}

// CreateCustomer registers a customer.
func (h *Handler) CreateCustomer(ctx context.Context, input usecase.CreateCustomerInput) error {
	if _, err := h.session.CreateCustomer(ctx, input); err != nil {
		return h.fail(domain.AuditActionCustomerCreate, err)
	}

	h.println(msgCustomerCreated)
	return nil
}

// CreateAccount opens an account for the customer with taxID.
func (h *Handler) CreateAccount(ctx context.Context, taxID string) error {
	account, err := h.session.CreateAccount(ctx, taxID)
	if err != nil {
		return h.fail(domain.AuditActionAccountCreate, err)
	}

	h.println(msgAccountCreated)
	h.println(fmt.Sprintf("Agency:\t%s\nNumber:\t%d", account.Agency, account.Number))
	return nil
}

// Deposit parses amount and credits the customer's account.
func (h *Handler) Deposit(ctx context.Context, taxID, amount string) error {
	value, err := domain.ParseAmount(amount)
	if err != nil {
		return h.fail(domain.AuditActionDeposit, err)
	}

	if _, err := h.session.Deposit(ctx, usecase.TransactionInput{TaxID: taxID, Amount: value}); err != nil {
		return h.fail(domain.AuditActionDeposit, err)
	}

	h.println(msgDeposited)
	return nil
}

// Withdraw parses amount and debits the customer's account.
func (h *Handler) Withdraw(ctx context.Context, taxID, amount string) error {
	value, err := domain.ParseAmount(amount)
	if err != nil {
		return h.fail(domain.AuditActionWithdraw, err)
	}

	if _, err := h.session.Withdraw(ctx, usecase.TransactionInput{TaxID: taxID, Amount: value}); err != nil {
		return h.fail(domain.AuditActionWithdraw, err)
	}

	h.println(msgWithdrawn)
	return nil
}

// Statement prints the customer's statement, optionally filtered by kind.
func (h *Handler) Statement(ctx context.Context, taxID, kind string) error {
	statement, err := h.session.Statement(ctx, taxID, kind)
	if err != nil {
		return h.fail(domain.AuditActionStatement, err)
	}

	h.println(statement.Render(h.currency))
	return nil
}

// ListAccounts prints every account in the session.
func (h *Handler) ListAccounts(ctx context.Context) error {
	summaries, err := h.session.ListAccounts(ctx)
	if err != nil {
		return h.fail(domain.AuditActionAccountList, err)
	}

	if len(summaries) == 0 {
		h.println(msgNoAccounts)
		return nil
	}

	for _, s := range summaries {
		h.println(strings.Repeat("=", 42))
		h.println(s.Render(h.currency))
	}
	return nil
}

// Stats prints the operation counters collected so far.
func (h *Handler) Stats() error {
	if h.counters == nil {
		h.println("Statistics are not available.")
		return nil
	}

	samples, err := h.counters.Counters()
	if err != nil {
		return h.fail("", err)
	}

	for _, s := range samples {
		h.println(fmt.Sprintf("%s%s %g", s.Name, formatLabels(s.Labels), s.Value))
	}
	return nil
}

func (h *Handler) fail(action domain.AuditAction, err error) error {
	h.println(failure(mapDomainError(action, err)))
	return &reportedError{err: err}
}

func (h *Handler) println(s string) {
	fmt.Fprintln(h.out, "\n"+s)
}

func formatLabels(labels map[string]string) string {
	if len(labels) == 0 {
		return ""
	}

	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%q", k, labels[k]))
	}

	return "{" + strings.Join(pairs, ",") + "}"
}
