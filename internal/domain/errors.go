package domain

import (
	"errors"
	"fmt"
)

var (
	// Account errors
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrLimitExceeded     = errors.New("withdrawal limit exceeded")
	ErrAccountNotFound   = errors.New("account not found")

	// ErrWithdrawalLimitExceeded is returned when a single withdrawal is above
	// the account's per-operation ceiling.
	ErrWithdrawalLimitExceeded = fmt.Errorf("%w: amount above per-operation ceiling", ErrLimitExceeded)

	// ErrWithdrawalCountExceeded is returned once an account has used all of
	// its withdrawals.
	ErrWithdrawalCountExceeded = fmt.Errorf("%w: maximum number of withdrawals reached", ErrLimitExceeded)

	// Customer errors
	ErrDailyLimitExceeded = errors.New("daily transaction limit exceeded")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrDuplicateCustomer  = errors.New("customer with this tax id already exists")

	// Transaction errors
	ErrInvalidTransactionKind = errors.New("invalid transaction kind")
)

// ErrorCode returns a short stable identifier for a domain error, suitable
// for metric labels and log fields.
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, ErrWithdrawalLimitExceeded):
		return "withdrawal_limit_exceeded"
	case errors.Is(err, ErrWithdrawalCountExceeded):
		return "withdrawal_count_exceeded"
	case errors.Is(err, ErrLimitExceeded):
		return "limit_exceeded"
	case errors.Is(err, ErrDailyLimitExceeded):
		return "daily_limit_exceeded"
	case errors.Is(err, ErrCustomerNotFound):
		return "customer_not_found"
	case errors.Is(err, ErrDuplicateCustomer):
		return "duplicate_customer"
	case errors.Is(err, ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, ErrInvalidTransactionKind):
		return "invalid_transaction_kind"
	case errors.Is(err, ErrInvalidTaxID):
		return "invalid_tax_id"
	case errors.Is(err, ErrInvalidCustomerName):
		return "invalid_customer_name"
	case errors.Is(err, ErrInvalidBirthDate):
		return "invalid_birth_date"
	case errors.Is(err, ErrInvalidAddress):
		return "invalid_address"
	default:
		return "internal"
	}
}
