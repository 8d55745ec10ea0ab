package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidTaxID        = errors.New("invalid tax id")
	ErrInvalidCustomerName = errors.New("invalid customer name")
	ErrInvalidBirthDate    = errors.New("invalid birth date")
	ErrInvalidAddress      = errors.New("invalid address")
)

// Validation constants
const (
	MaxTaxIDLength        = 14
	MaxCustomerNameLength = 255
	MaxAddressLength      = 512
	BirthDateLayout       = "02-01-2006"
	AmountPlaces          = 2
	MaxAmountDigits       = 15 // digits before the decimal point
)

// NormalizeTaxID strips punctuation and whitespace from a tax id and checks
// that only digits remain.
func NormalizeTaxID(taxID string) (string, error) {
	var b strings.Builder
	for _, r := range taxID {
		switch {
		case r == '.' || r == '-' || r == '/' || r == ' ' || r == '\t':
			continue
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			return "", fmt.Errorf("%w: unexpected character %q", ErrInvalidTaxID, r)
		}
	}

	normalized := b.String()
	if normalized == "" {
		return "", fmt.Errorf("%w: tax id cannot be empty", ErrInvalidTaxID)
	}

	if len(normalized) > MaxTaxIDLength {
		return "", fmt.Errorf("%w: exceeds %d digits", ErrInvalidTaxID, MaxTaxIDLength)
	}

	return normalized, nil
}

// ValidateCustomerName validates a customer's full name.
func ValidateCustomerName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidCustomerName)
	}

	if len(name) > MaxCustomerNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidCustomerName, MaxCustomerNameLength)
	}

	return nil
}

// ValidateAddress validates a free-form postal address.
func ValidateAddress(address string) error {
	if len(strings.TrimSpace(address)) > MaxAddressLength {
		return fmt.Errorf("%w: address exceeds %d characters", ErrInvalidAddress, MaxAddressLength)
	}
	return nil
}

// ParseBirthDate parses a dd-mm-yyyy date that is not after now.
func ParseBirthDate(s string, now time.Time) (time.Time, error) {
	d, err := time.Parse(BirthDateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: expected dd-mm-yyyy", ErrInvalidBirthDate)
	}

	if d.After(now) {
		return time.Time{}, fmt.Errorf("%w: date is in the future", ErrInvalidBirthDate)
	}

	return d, nil
}

// ParseAmount parses a monetary amount and rounds it to cents. A comma is
// accepted as the decimal separator. The magnitude is checked from the
// coefficient and exponent before rounding, since rounding a value such as
// 1e400000000 would expand every digit.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, s)
	}

	whole := amount.NumDigits() + int(amount.Exponent())
	if whole > MaxAmountDigits {
		return decimal.Zero, fmt.Errorf("%w: %q exceeds %d digits", ErrInvalidAmount, s, MaxAmountDigits)
	}
	if whole < -AmountPlaces {
		// Below half a cent: rounds to zero.
		return decimal.Zero, nil
	}

	return RoundAmount(amount), nil
}

// RoundAmount rounds a monetary amount to cents.
func RoundAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(AmountPlaces)
}
