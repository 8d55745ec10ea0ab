package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "none"},
		{ErrInvalidAmount, "invalid_amount"},
		{fmt.Errorf("%w (limit 500.00)", ErrWithdrawalLimitExceeded), "withdrawal_limit_exceeded"},
		{fmt.Errorf("%w (max 50)", ErrWithdrawalCountExceeded), "withdrawal_count_exceeded"},
		{ErrLimitExceeded, "limit_exceeded"},
		{fmt.Errorf("%w (10 per day)", ErrDailyLimitExceeded), "daily_limit_exceeded"},
		{ErrDuplicateCustomer, "duplicate_customer"},
		{fmt.Errorf("%w: tax id cannot be empty", ErrInvalidTaxID), "invalid_tax_id"},
		{errors.New("boom"), "internal"},
	}

	for _, tt := range tests {
		if got := ErrorCode(tt.err); got != tt.want {
			t.Errorf("ErrorCode(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
