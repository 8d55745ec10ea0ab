package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AccountType distinguishes plain accounts from current accounts.
type AccountType string

const (
	AccountTypeBasic   AccountType = "basic"
	AccountTypeCurrent AccountType = "current"
)

// Defaults applied to every account opened through a session.
const (
	DefaultAgency         = "0001"
	DefaultMaxWithdrawals = 50
)

// DefaultWithdrawalLimit is the per-operation ceiling of a current account.
var DefaultWithdrawalLimit = decimal.NewFromInt(500)

// Account holds a balance and the history of movements applied to it.
type Account struct {
	Number        int
	Agency        string
	Type          AccountType
	CustomerTaxID string
	Balance       decimal.Decimal
	History       *History

	// Current account only.
	WithdrawalLimit decimal.Decimal
	MaxWithdrawals  int
}

// NewAccount creates an empty basic account owned by the given customer.
func NewAccount(number int, agency, customerTaxID string) *Account {
	if agency == "" {
		agency = DefaultAgency
	}

	return &Account{
		Number:        number,
		Agency:        agency,
		Type:          AccountTypeBasic,
		CustomerTaxID: customerTaxID,
		Balance:       decimal.Zero,
		History:       NewHistory(),
	}
}

// NewCurrentAccount creates an empty current account. Zero limits fall back to
// the defaults.
func NewCurrentAccount(number int, agency, customerTaxID string, withdrawalLimit decimal.Decimal, maxWithdrawals int) *Account {
	if withdrawalLimit.LessThanOrEqual(decimal.Zero) {
		withdrawalLimit = DefaultWithdrawalLimit
	}
	if maxWithdrawals <= 0 {
		maxWithdrawals = DefaultMaxWithdrawals
	}

	acc := NewAccount(number, agency, customerTaxID)
	acc.Type = AccountTypeCurrent
	acc.WithdrawalLimit = withdrawalLimit
	acc.MaxWithdrawals = maxWithdrawals

	return acc
}

// IsCurrent reports whether the account carries current-account limits.
func (a *Account) IsCurrent() bool {
	return a.Type == AccountTypeCurrent
}

// Deposit credits amount to the balance.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	a.Balance = a.Balance.Add(amount)
	return nil
}

// Withdraw debits amount from the balance. Every rule is checked before the
// balance changes; the first failing rule decides the error.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if err := a.ValidateWithdrawal(amount); err != nil {
		return err
	}

	a.Balance = a.Balance.Sub(amount)
	return nil
}

// ValidateWithdrawal checks a withdrawal without applying it.
func (a *Account) ValidateWithdrawal(amount decimal.Decimal) error {
	if a.IsCurrent() {
		if amount.GreaterThan(a.WithdrawalLimit) {
			return fmt.Errorf("%w (limit %s)", ErrWithdrawalLimitExceeded, a.WithdrawalLimit.StringFixed(2))
		}

		if a.WithdrawalCount() >= a.MaxWithdrawals {
			return fmt.Errorf("%w (max %d)", ErrWithdrawalCountExceeded, a.MaxWithdrawals)
		}
	}

	if amount.GreaterThan(a.Balance) {
		return ErrInsufficientFunds
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	return nil
}

// WithdrawalCount returns how many withdrawals were ever recorded.
func (a *Account) WithdrawalCount() int {
	n := 0
	for range a.History.Report(TransactionKindWithdrawal.String()) {
		n++
	}
	return n
}

// Summary returns the listing view of the account.
func (a *Account) Summary(holderName string) AccountSummary {
	return AccountSummary{
		Agency:     a.Agency,
		Number:     a.Number,
		HolderName: holderName,
		Balance:    a.Balance,
	}
}
