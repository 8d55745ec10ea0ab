package usecase

import (
	"context"

	"github.com/iho/gobank/internal/domain"
)

// StatementUseCase builds account statements.
type StatementUseCase struct {
	customerRepo CustomerRepository
	accountRepo  AccountRepository
}

// NewStatementUseCase creates a new StatementUseCase.
func NewStatementUseCase(customerRepo CustomerRepository, accountRepo AccountRepository) *StatementUseCase {
	return &StatementUseCase{
		customerRepo: customerRepo,
		accountRepo:  accountRepo,
	}
}

// GetStatement returns every movement on the customer's primary account and
// its current balance.
func (uc *StatementUseCase) GetStatement(ctx context.Context, taxID string) (*domain.Statement, error) {
	return uc.GetStatementByKind(ctx, taxID, "")
}

// GetStatementByKind returns the customer's movements whose kind matches
// kindFilter, ignoring case. An empty filter keeps every movement.
func (uc *StatementUseCase) GetStatementByKind(ctx context.Context, taxID, kindFilter string) (*domain.Statement, error) {
	filter := ""
	if kindFilter != "" {
		kind, err := domain.ParseTransactionKind(kindFilter)
		if err != nil {
			return nil, err
		}
		filter = kind.String()
	}

	customer, err := lookupCustomer(ctx, uc.customerRepo, taxID)
	if err != nil {
		return nil, err
	}

	account, err := primaryAccount(ctx, uc.accountRepo, customer)
	if err != nil {
		return nil, err
	}

	return domain.NewFilteredStatement(account, customer.Name, filter), nil
}
