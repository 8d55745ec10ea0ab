package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestTransaction_Apply(t *testing.T) {
	tests := []struct {
		name        string
		tx          Transaction
		expectError error
		wantEntries int
		wantBalance decimal.Decimal
	}{
		{
			name:        "deposit records entry",
			tx:          NewDeposit(decimal.NewFromInt(40)),
			wantEntries: 1,
			wantBalance: decimal.NewFromInt(140),
		},
		{
			name:        "invalid deposit leaves history untouched",
			tx:          NewDeposit(decimal.NewFromInt(-40)),
			expectError: ErrInvalidAmount,
			wantBalance: decimal.NewFromInt(100),
		},
		{
			name:        "withdrawal records entry",
			tx:          NewWithdrawal(decimal.NewFromInt(40)),
			wantEntries: 1,
			wantBalance: decimal.NewFromInt(60),
		},
		{
			name:        "overdraft leaves history untouched",
			tx:          NewWithdrawal(decimal.NewFromInt(400)),
			expectError: ErrInsufficientFunds,
			wantBalance: decimal.NewFromInt(100),
		},
		{
			name:        "unknown kind",
			tx:          Transaction{Amount: decimal.NewFromInt(1)},
			expectError: ErrInvalidTransactionKind,
			wantBalance: decimal.NewFromInt(100),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := NewCurrentAccount(1, "", "111", DefaultWithdrawalLimit, DefaultMaxWithdrawals)
			acc.Balance = decimal.NewFromInt(100)

			err := tt.tx.Apply(acc, testNow)

			if !errors.Is(err, tt.expectError) {
				t.Fatalf("expected error %v, got %v", tt.expectError, err)
			}

			if acc.History.Len() != tt.wantEntries {
				t.Errorf("expected %d entries, got %d", tt.wantEntries, acc.History.Len())
			}

			if !acc.Balance.Equal(tt.wantBalance) {
				t.Errorf("expected balance %s, got %s", tt.wantBalance, acc.Balance)
			}

			if tt.wantEntries == 1 {
				e := acc.History.Entries()[0]
				if e.Kind != tt.tx.Kind || !e.Amount.Equal(tt.tx.Amount) || !e.Timestamp.Equal(testNow) {
					t.Errorf("unexpected entry %+v", e)
				}
			}
		})
	}
}

func TestParseTransactionKind(t *testing.T) {
	tests := []struct {
		input   string
		want    TransactionKind
		wantErr bool
	}{
		{"deposit", TransactionKindDeposit, false},
		{"DEPOSIT", TransactionKindDeposit, false},
		{" Withdrawal ", TransactionKindWithdrawal, false},
		{"withdraw", TransactionKindWithdrawal, false},
		{"transfer", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseTransactionKind(tt.input)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseTransactionKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseTransactionKind(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
