package cli

import (
	"errors"
	"fmt"

	"github.com/iho/gobank/internal/domain"
)

// Success messages
const (
	msgCustomerCreated = "Customer created successfully!"
	msgAccountCreated  = "Account created successfully!"
	msgDeposited       = "Deposit completed successfully!"
	msgWithdrawn       = "Withdrawal completed successfully!"
	msgNoAccounts      = "No accounts registered."
)

// failure wraps a message in the failure markers.
func failure(message string) string {
	return "@@@ " + message + " @@@"
}

// mapDomainError maps domain errors to user-facing messages. The action
// selects the wording for errors that read differently per operation.
func mapDomainError(action domain.AuditAction, err error) string {
	switch {
	case errors.Is(err, domain.ErrCustomerNotFound):
		if action == domain.AuditActionAccountCreate {
			return "Customer not found, account creation flow ended!"
		}
		return "Customer not found!"
	case errors.Is(err, domain.ErrAccountNotFound):
		return "Customer has no account!"
	case errors.Is(err, domain.ErrDuplicateCustomer):
		return "A customer with this tax id already exists!"
	case errors.Is(err, domain.ErrDailyLimitExceeded):
		return "You have exceeded the number of transactions allowed for today!"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "Operation failed! You do not have enough balance."
	case errors.Is(err, domain.ErrWithdrawalLimitExceeded):
		return "Operation failed! The withdrawal amount exceeds the limit."
	case errors.Is(err, domain.ErrWithdrawalCountExceeded):
		return "Operation failed! Maximum number of withdrawals exceeded."
	case errors.Is(err, domain.ErrLimitExceeded):
		return "Operation failed! Account limit exceeded."
	case errors.Is(err, domain.ErrInvalidAmount):
		return "Operation failed! The amount entered is invalid."
	case errors.Is(err, domain.ErrInvalidTaxID):
		return "Invalid tax id! Use digits only."
	case errors.Is(err, domain.ErrInvalidCustomerName):
		return "Invalid name! The full name is required."
	case errors.Is(err, domain.ErrInvalidBirthDate):
		return "Invalid birth date! Use dd-mm-yyyy."
	case errors.Is(err, domain.ErrInvalidAddress):
		return "Invalid address!"
	case errors.Is(err, domain.ErrInvalidTransactionKind):
		return "Unknown transaction kind! Use deposit or withdrawal."
	default:
		return fmt.Sprintf("Unexpected error: %v", err)
	}
}

// reportedError marks an error whose message was already shown to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// IsReported reports whether err was already printed by a Handler.
func IsReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}
