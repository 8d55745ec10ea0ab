package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/gobank/internal/adapter/repository/memory"
	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/infrastructure/metrics"
	"github.com/iho/gobank/internal/usecase"
	"github.com/iho/gobank/internal/usecase/mocks"
)

var testNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func newTestHandler(t *testing.T) (*Handler, *bytes.Buffer) {
	t.Helper()

	m := metrics.New(prometheus.NewRegistry())
	session := usecase.NewSession(usecase.SessionConfig{
		CustomerRepo: memory.NewCustomerRepository(),
		AccountRepo:  memory.NewAccountRepository(),
		Metrics:      m,
		Clock:        mocks.NewFixedClock(testNow),
		Logger:       zerolog.Nop(),
	})

	var out bytes.Buffer
	h := NewHandler(HandlerConfig{
		Session:  session,
		Out:      &out,
		Counters: m,
	})

	return h, &out
}

func runScript(t *testing.T, h *Handler, out *bytes.Buffer, script string) error {
	t.Helper()

	shell := NewShell(ShellConfig{
		Handler: h,
		In:      strings.NewReader(script),
		Out:     out,
		Logger:  zerolog.Nop(),
	})

	return shell.Run(context.Background())
}

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		action   domain.AuditAction
		err      error
		expected string
	}{
		{domain.AuditActionDeposit, domain.ErrCustomerNotFound, "Customer not found!"},
		{domain.AuditActionAccountCreate, domain.ErrCustomerNotFound, "Customer not found, account creation flow ended!"},
		{domain.AuditActionDeposit, domain.ErrAccountNotFound, "Customer has no account!"},
		{domain.AuditActionCustomerCreate, domain.ErrDuplicateCustomer, "A customer with this tax id already exists!"},
		{domain.AuditActionDeposit, fmt.Errorf("%w (10 per day)", domain.ErrDailyLimitExceeded), "You have exceeded the number of transactions allowed for today!"},
		{domain.AuditActionWithdraw, domain.ErrInsufficientFunds, "Operation failed! You do not have enough balance."},
		{domain.AuditActionWithdraw, fmt.Errorf("%w (limit 500.00)", domain.ErrWithdrawalLimitExceeded), "Operation failed! The withdrawal amount exceeds the limit."},
		{domain.AuditActionWithdraw, domain.ErrWithdrawalCountExceeded, "Operation failed! Maximum number of withdrawals exceeded."},
		{domain.AuditActionDeposit, domain.ErrInvalidAmount, "Operation failed! The amount entered is invalid."},
		{domain.AuditActionStatement, domain.ErrInvalidTransactionKind, "Unknown transaction kind! Use deposit or withdrawal."},
		{domain.AuditActionDeposit, errors.New("boom"), "Unexpected error: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, mapDomainError(tt.action, tt.err))
		})
	}
}

func TestSplitLine(t *testing.T) {
	tests := []struct {
		line     string
		expected []string
	}{
		{"", nil},
		{"   ", nil},
		{"deposit --tax-id 111 --amount 100", []string{"deposit", "--tax-id", "111", "--amount", "100"}},
		{"  list-accounts  ", []string{"list-accounts"}},
		{`create-customer --tax-id 111 --name "Ana Lima"`, []string{"create-customer", "--tax-id", "111", "--name", "Ana Lima"}},
		{"deposit   --tax-id  111", []string{"deposit", "--tax-id", "111"}},
		{`create-customer --tax-id 1 --address "" --name Ana`, []string{"create-customer", "--tax-id", "1", "--address", "", "--name", "Ana"}},
	}

	for _, tt := range tests {
		got, err := splitLine(tt.line)
		require.NoError(t, err, tt.line)
		assert.Equal(t, tt.expected, got, tt.line)
	}

	_, err := splitLine(`deposit "unterminated`)
	assert.Error(t, err)
}

func TestShell_Script(t *testing.T) {
	h, out := newTestHandler(t)

	script := `
# scenario
create-customer --tax-id 111 --name "Ana Lima" --birth-date 05-03-1990 --address "Rua A, 10"
create-account --tax-id 111
deposit --tax-id 111 --amount 100
withdraw --tax-id 111 --amount 30
statement --tax-id 111
list-accounts
`
	err := runScript(t, h, out, script)
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, msgCustomerCreated)
	assert.Contains(t, output, msgAccountCreated)
	assert.Contains(t, output, "Agency:\t0001\nNumber:\t1")
	assert.Contains(t, output, msgDeposited)
	assert.Contains(t, output, msgWithdrawn)
	assert.Contains(t, output, "18-10-2026 12:00:00\nDeposit:\n\tR$ 100.00")
	assert.Contains(t, output, "Withdrawal:\n\tR$ 30.00")
	assert.Contains(t, output, "Balance:\n\tR$ 70.00")
	assert.Contains(t, output, "Holder:\tAna Lima")
	assert.NotContains(t, output, "@@@")
}

func TestShell_ScriptFailures(t *testing.T) {
	h, out := newTestHandler(t)

	script := `create-customer --tax-id 111 --name Ana --birth-date 05-03-1990
create-customer --tax-id 111 --name Ana --birth-date 05-03-1990
deposit --tax-id 111 --amount 10
create-account --tax-id 999
create-account --tax-id 111
withdraw --tax-id 111 --amount 600
deposit --tax-id 111 --amount abc
deposit --tax-id 111
transfer --tax-id 111
statement --tax-id 111 --kind withdrawal
`
	err := runScript(t, h, out, script)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateCustomer)

	output := out.String()
	assert.Contains(t, output, failure("A customer with this tax id already exists!"))
	assert.Contains(t, output, failure("Customer has no account!"))
	assert.Contains(t, output, failure("Customer not found, account creation flow ended!"))
	assert.Contains(t, output, failure("Operation failed! The withdrawal amount exceeds the limit."))
	assert.Contains(t, output, failure("Operation failed! The amount entered is invalid."))
	assert.Contains(t, output, `required flag(s) "amount" not set`)
	assert.Contains(t, output, `unknown command "transfer"`)
	assert.Contains(t, output, "No transactions recorded.")
}

func TestShell_EmptyQuotedArgument(t *testing.T) {
	h, out := newTestHandler(t)

	err := runScript(t, h, out, `create-customer --tax-id 1 --address "" --name Ana --birth-date 05-03-1990`+"\n")
	require.NoError(t, err)
	assert.Contains(t, out.String(), msgCustomerCreated)

	customer, err := h.session.GetCustomer(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", customer.Name)
	assert.Empty(t, customer.Address)
}

func TestShell_HugeAmountRejected(t *testing.T) {
	h, out := newTestHandler(t)

	script := strings.Join([]string{
		"create-customer --tax-id 111 --name Ana --birth-date 05-03-1990",
		"create-account --tax-id 111",
		"deposit --tax-id 111 --amount 1e400000000",
	}, "\n")
	err := runScript(t, h, out, script)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	assert.Contains(t, out.String(), failure("Operation failed! The amount entered is invalid."))
}

func TestShell_InteractiveMenu(t *testing.T) {
	h, out := newTestHandler(t)

	input := strings.Join([]string{
		"1", "111", "Ana Lima", "05-03-1990", "Rua A, 10",
		"1", "111",
		"2", "111",
		"3", "111", "100,50",
		"4", "111", "30",
		"5", "111",
		"6",
		"0",
		"deposit --tax-id 111 --amount 1",
	}, "\n")

	shell := NewShell(ShellConfig{
		Handler:     h,
		In:          strings.NewReader(input),
		Out:         out,
		Logger:      zerolog.Nop(),
		Interactive: true,
	})
	require.NoError(t, shell.Run(context.Background()))

	output := out.String()
	assert.Contains(t, output, "Welcome to the banking system!")
	assert.Contains(t, output, "[6] List accounts")
	assert.Contains(t, output, "Enter the full name:")
	assert.Contains(t, output, msgCustomerCreated)
	assert.Contains(t, output, failure("A customer with this tax id already exists!"))
	assert.Contains(t, output, "Balance:\n\tR$ 70.50")
	assert.Contains(t, output, "Number:\t1\nHolder:\tAna Lima\nBalance:\tR$ 70.50")

	// Input after exit is never processed.
	assert.Equal(t, 1, strings.Count(output, msgDeposited))
}

func TestShell_InputClosedDuringPrompt(t *testing.T) {
	h, out := newTestHandler(t)

	err := runScript(t, h, out, "1\n111\nAna")
	assert.NoError(t, err)
	assert.NotContains(t, out.String(), msgCustomerCreated)
}

func TestShell_HelpAndMenu(t *testing.T) {
	h, out := newTestHandler(t)

	shell := NewShell(ShellConfig{Handler: h, In: strings.NewReader(""), Out: out, Logger: zerolog.Nop()})

	exit, err := shell.Execute(context.Background(), "help")
	require.NoError(t, err)
	assert.False(t, exit)
	assert.Contains(t, out.String(), "create-customer")
	assert.Contains(t, out.String(), "Show operation counters")

	exit, err = shell.Execute(context.Background(), "quit")
	require.NoError(t, err)
	assert.True(t, exit)
}

func TestHandler_Stats(t *testing.T) {
	h, out := newTestHandler(t)
	ctx := context.Background()

	require.NoError(t, h.CreateCustomer(ctx, usecase.CreateCustomerInput{TaxID: "111", Name: "Ana", BirthDate: "05-03-1990"}))
	require.NoError(t, h.CreateAccount(ctx, "111"))
	require.NoError(t, h.Deposit(ctx, "111", "10"))
	require.Error(t, h.Withdraw(ctx, "111", "20"))

	out.Reset()
	require.NoError(t, h.Stats())

	output := out.String()
	assert.Contains(t, output, `gobank_operations_total{operation="deposit",status="success"} 1`)
	assert.Contains(t, output, `gobank_operations_total{operation="withdraw",status="failure"} 1`)
	assert.Contains(t, output, `gobank_transactions_rejected_total{kind="Withdrawal",reason="insufficient_funds"} 1`)
	assert.Contains(t, output, "gobank_customers_created_total 1")
}

func TestHandler_ListAccountsEmpty(t *testing.T) {
	h, out := newTestHandler(t)

	require.NoError(t, h.ListAccounts(context.Background()))
	assert.Contains(t, out.String(), msgNoAccounts)
}

func TestHandler_ReportedError(t *testing.T) {
	h, _ := newTestHandler(t)

	err := h.Deposit(context.Background(), "111", "10")
	require.Error(t, err)
	assert.True(t, IsReported(err))
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
	assert.False(t, IsReported(errors.New("plain")))
}
