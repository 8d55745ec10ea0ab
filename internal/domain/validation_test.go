package domain

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNormalizeTaxID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"plain digits", "111", "111", false},
		{"formatted cpf", "123.456.789-09", "12345678909", false},
		{"formatted cnpj", "12.345.678/0001-95", "12345678000195", false},
		{"surrounding spaces", "  42 ", "42", false},
		{"empty", "", "", true},
		{"only punctuation", "..-", "", true},
		{"letters", "12a", "", true},
		{"too long", strings.Repeat("1", MaxTaxIDLength+1), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeTaxID(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTaxID) {
					t.Fatalf("expected ErrInvalidTaxID, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestValidateCustomerName(t *testing.T) {
	if err := ValidateCustomerName("Ana Lima"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := ValidateCustomerName("   "); !errors.Is(err, ErrInvalidCustomerName) {
		t.Errorf("expected ErrInvalidCustomerName, got %v", err)
	}

	if err := ValidateCustomerName(strings.Repeat("a", MaxCustomerNameLength+1)); !errors.Is(err, ErrInvalidCustomerName) {
		t.Errorf("expected ErrInvalidCustomerName, got %v", err)
	}
}

func TestValidateAddress(t *testing.T) {
	if err := ValidateAddress("Rua A, 10 - Centro - Recife/PE"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := ValidateAddress(strings.Repeat("a", MaxAddressLength+1)); !errors.Is(err, ErrInvalidAddress) {
		t.Errorf("expected ErrInvalidAddress, got %v", err)
	}
}

func TestParseBirthDate(t *testing.T) {
	now := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)

	d, err := ParseBirthDate("05-03-1990", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Year() != 1990 || d.Month() != time.March || d.Day() != 5 {
		t.Errorf("unexpected date %s", d)
	}

	for _, input := range []string{"1990-03-05", "31-02-1990", "", "01-01-2030"} {
		if _, err := ParseBirthDate(input, now); !errors.Is(err, ErrInvalidBirthDate) {
			t.Errorf("ParseBirthDate(%q): expected ErrInvalidBirthDate, got %v", input, err)
		}
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"100", "100", false},
		{"10.5", "10.5", false},
		{"10,25", "10.25", false},
		{"0.005", "0.01", false},
		{"0.004", "0", false},
		{"-3", "-3", false},
		{"999999999999999.99", "999999999999999.99", false},
		{"1e14", "100000000000000", false},
		{"0.0004", "0", false},
		{"1e-400000000", "0", false},
		{"1000000000000000", "", true},
		{"1e400000000", "", true},
		{"-1e400000000", "", true},
		{"abc", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseAmount(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidAmount) {
				t.Errorf("ParseAmount(%q): expected ErrInvalidAmount, got %v", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseAmount(%q): unexpected error: %v", tt.input, err)
		}
		if !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("ParseAmount(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}
