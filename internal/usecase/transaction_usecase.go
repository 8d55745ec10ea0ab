package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
)

// TransactionUseCase handles deposits and withdrawals.
type TransactionUseCase struct {
	customerRepo CustomerRepository
	accountRepo  AccountRepository
	clock        Clock
}

// NewTransactionUseCase creates a new TransactionUseCase.
func NewTransactionUseCase(customerRepo CustomerRepository, accountRepo AccountRepository, clock Clock) *TransactionUseCase {
	return &TransactionUseCase{
		customerRepo: customerRepo,
		accountRepo:  accountRepo,
		clock:        clock,
	}
}

// TransactionInput represents input for a deposit or a withdrawal on a
// customer's primary account.
type TransactionInput struct {
	TaxID  string
	Amount decimal.Decimal
}

// Deposit credits the customer's primary account.
func (uc *TransactionUseCase) Deposit(ctx context.Context, input TransactionInput) (*domain.Account, error) {
	return uc.realize(ctx, input.TaxID, domain.NewDeposit(domain.RoundAmount(input.Amount)))
}

// Withdraw debits the customer's primary account.
func (uc *TransactionUseCase) Withdraw(ctx context.Context, input TransactionInput) (*domain.Account, error) {
	return uc.realize(ctx, input.TaxID, domain.NewWithdrawal(domain.RoundAmount(input.Amount)))
}

func (uc *TransactionUseCase) realize(ctx context.Context, taxID string, tx domain.Transaction) (*domain.Account, error) {
	customer, err := lookupCustomer(ctx, uc.customerRepo, taxID)
	if err != nil {
		return nil, err
	}

	account, err := primaryAccount(ctx, uc.accountRepo, customer)
	if err != nil {
		return nil, err
	}

	if err := customer.RealizeTransaction(account, tx, uc.clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}
