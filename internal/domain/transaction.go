package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind tags a transaction as a deposit or a withdrawal.
type TransactionKind int

const (
	TransactionKindDeposit TransactionKind = iota + 1
	TransactionKindWithdrawal
)

func (k TransactionKind) String() string {
	switch k {
	case TransactionKindDeposit:
		return "Deposit"
	case TransactionKindWithdrawal:
		return "Withdrawal"
	default:
		return fmt.Sprintf("TransactionKind(%d)", int(k))
	}
}

// ParseTransactionKind parses a kind name, ignoring case.
func ParseTransactionKind(s string) (TransactionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deposit":
		return TransactionKindDeposit, nil
	case "withdrawal", "withdraw":
		return TransactionKindWithdrawal, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidTransactionKind, s)
	}
}

// Transaction is a pending money movement. It is not stored; only its effect
// on an account is recorded in the account's history.
type Transaction struct {
	Kind   TransactionKind
	Amount decimal.Decimal
}

// NewDeposit creates a deposit of amount.
func NewDeposit(amount decimal.Decimal) Transaction {
	return Transaction{Kind: TransactionKindDeposit, Amount: amount}
}

// NewWithdrawal creates a withdrawal of amount.
func NewWithdrawal(amount decimal.Decimal) Transaction {
	return Transaction{Kind: TransactionKindWithdrawal, Amount: amount}
}

// Apply performs the transaction on account and records it in the account's
// history at now. On error neither the balance nor the history changes.
func (t Transaction) Apply(account *Account, now time.Time) error {
	var err error

	switch t.Kind {
	case TransactionKindDeposit:
		err = account.Deposit(t.Amount)
	case TransactionKindWithdrawal:
		err = account.Withdraw(t.Amount)
	default:
		return ErrInvalidTransactionKind
	}

	if err != nil {
		return err
	}

	account.History.Record(t.Kind, t.Amount, now)
	return nil
}
