package domain

import (
	"fmt"
	"slices"
	"time"
)

// DefaultDailyTransactionLimit is the number of transactions an account may
// take per UTC calendar day.
const DefaultDailyTransactionLimit = 10

// Customer is a natural person holding zero or more accounts.
type Customer struct {
	TaxID          string
	Name           string
	BirthDate      time.Time
	Address        string
	AccountNumbers []int
	DailyLimit     int
	CreatedAt      time.Time
}

// AddAccount registers an account number as owned by the customer.
func (c *Customer) AddAccount(number int) {
	if slices.Contains(c.AccountNumbers, number) {
		return
	}
	c.AccountNumbers = append(c.AccountNumbers, number)
}

// Owns reports whether the customer holds the account.
func (c *Customer) Owns(account *Account) bool {
	return account != nil &&
		account.CustomerTaxID == c.TaxID &&
		slices.Contains(c.AccountNumbers, account.Number)
}

// PrimaryAccountNumber returns the first account opened by the customer.
func (c *Customer) PrimaryAccountNumber() (int, bool) {
	if len(c.AccountNumbers) == 0 {
		return 0, false
	}
	return c.AccountNumbers[0], true
}

// RealizeTransaction applies tx to one of the customer's accounts, unless the
// account already reached the daily transaction limit.
func (c *Customer) RealizeTransaction(account *Account, tx Transaction, now time.Time) error {
	if !c.Owns(account) {
		return ErrAccountNotFound
	}

	limit := c.DailyLimit
	if limit <= 0 {
		limit = DefaultDailyTransactionLimit
	}

	if len(account.History.TransactionsOn(now)) >= limit {
		return fmt.Errorf("%w (%d per day)", ErrDailyLimitExceeded, limit)
	}

	return tx.Apply(account, now)
}
