package usecase

import (
	"context"

	"github.com/iho/gobank/internal/domain"
)

// AccountUseCase handles account business logic.
type AccountUseCase struct {
	accountRepo  AccountRepository
	customerRepo CustomerRepository
	settings     AccountSettings
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(accountRepo AccountRepository, customerRepo CustomerRepository, settings AccountSettings) *AccountUseCase {
	return &AccountUseCase{
		accountRepo:  accountRepo,
		customerRepo: customerRepo,
		settings:     settings,
	}
}

// CreateAccount opens a current account for an existing customer, numbered
// after every account already in the session.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, taxID string) (*domain.Account, error) {
	customer, err := lookupCustomer(ctx, uc.customerRepo, taxID)
	if err != nil {
		return nil, err
	}

	number, err := uc.accountRepo.NextNumber(ctx)
	if err != nil {
		return nil, err
	}

	account := domain.NewCurrentAccount(
		number,
		uc.settings.Agency,
		customer.TaxID,
		uc.settings.WithdrawalLimit,
		uc.settings.MaxWithdrawals,
	)

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	customer.AddAccount(account.Number)
	if err := uc.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return account, nil
}

// GetAccount retrieves an account by number.
func (uc *AccountUseCase) GetAccount(ctx context.Context, number int) (*domain.Account, error) {
	return uc.accountRepo.GetByNumber(ctx, number)
}

// PrimaryAccount returns the first account the customer opened.
//
// TODO: let callers pick among several accounts once the front-end can ask
// for an account number.
func (uc *AccountUseCase) PrimaryAccount(ctx context.Context, customer *domain.Customer) (*domain.Account, error) {
	return primaryAccount(ctx, uc.accountRepo, customer)
}

// ListAccounts returns the listing view of every account in creation order.
func (uc *AccountUseCase) ListAccounts(ctx context.Context) ([]domain.AccountSummary, error) {
	accounts, err := uc.accountRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.AccountSummary, 0, len(accounts))
	for _, acc := range accounts {
		holder := ""
		if c, err := uc.customerRepo.GetByTaxID(ctx, acc.CustomerTaxID); err == nil {
			holder = c.Name
		}
		summaries = append(summaries, acc.Summary(holder))
	}

	return summaries, nil
}

func lookupCustomer(ctx context.Context, repo CustomerRepository, taxID string) (*domain.Customer, error) {
	normalized, err := domain.NormalizeTaxID(taxID)
	if err != nil {
		return nil, err
	}

	return repo.GetByTaxID(ctx, normalized)
}

func primaryAccount(ctx context.Context, repo AccountRepository, customer *domain.Customer) (*domain.Account, error) {
	number, ok := customer.PrimaryAccountNumber()
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	return repo.GetByNumber(ctx, number)
}
