package usecase

import (
	"context"
	"strings"

	"github.com/iho/gobank/internal/domain"
)

// CustomerUseCase handles customer registration and lookup.
type CustomerUseCase struct {
	customerRepo CustomerRepository
	clock        Clock
	dailyLimit   int
}

// NewCustomerUseCase creates a new CustomerUseCase.
func NewCustomerUseCase(customerRepo CustomerRepository, clock Clock, dailyLimit int) *CustomerUseCase {
	if dailyLimit <= 0 {
		dailyLimit = domain.DefaultDailyTransactionLimit
	}

	return &CustomerUseCase{
		customerRepo: customerRepo,
		clock:        clock,
		dailyLimit:   dailyLimit,
	}
}

// CreateCustomerInput represents input for registering a customer.
type CreateCustomerInput struct {
	TaxID     string
	Name      string
	BirthDate string // dd-mm-yyyy
	Address   string
}

// CreateCustomer registers a natural-person customer.
func (uc *CustomerUseCase) CreateCustomer(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error) {
	taxID, err := domain.NormalizeTaxID(input.TaxID)
	if err != nil {
		return nil, err
	}

	// Reject duplicates before validating the rest, as the tax id is asked first.
	if _, err := uc.customerRepo.GetByTaxID(ctx, taxID); err == nil {
		return nil, domain.ErrDuplicateCustomer
	}

	if err := domain.ValidateCustomerName(input.Name); err != nil {
		return nil, err
	}

	if err := domain.ValidateAddress(input.Address); err != nil {
		return nil, err
	}

	now := uc.clock.Now()

	birthDate, err := domain.ParseBirthDate(input.BirthDate, now)
	if err != nil {
		return nil, err
	}

	customer := &domain.Customer{
		TaxID:      taxID,
		Name:       strings.TrimSpace(input.Name),
		BirthDate:  birthDate,
		Address:    strings.TrimSpace(input.Address),
		DailyLimit: uc.dailyLimit,
		CreatedAt:  now,
	}

	if err := uc.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// GetCustomer retrieves a customer by tax id, in any punctuation.
func (uc *CustomerUseCase) GetCustomer(ctx context.Context, taxID string) (*domain.Customer, error) {
	normalized, err := domain.NormalizeTaxID(taxID)
	if err != nil {
		return nil, err
	}

	return uc.customerRepo.GetByTaxID(ctx, normalized)
}

// ListCustomers lists every registered customer.
func (uc *CustomerUseCase) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	return uc.customerRepo.List(ctx)
}
