package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
)

// AccountSettings are applied to every account opened in a session.
type AccountSettings struct {
	Agency                string
	WithdrawalLimit       decimal.Decimal
	MaxWithdrawals        int
	DailyTransactionLimit int
}

// DefaultAccountSettings returns the single-branch defaults.
func DefaultAccountSettings() AccountSettings {
	return AccountSettings{
		Agency:                domain.DefaultAgency,
		WithdrawalLimit:       domain.DefaultWithdrawalLimit,
		MaxWithdrawals:        domain.DefaultMaxWithdrawals,
		DailyTransactionLimit: domain.DefaultDailyTransactionLimit,
	}
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
