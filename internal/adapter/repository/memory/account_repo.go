package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/iho/gobank/internal/domain"
)

// AccountRepository keeps accounts in process memory in creation order.
// Account numbers are dense and start at 1.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts []*domain.Account
}

// NewAccountRepository creates an empty AccountRepository.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{}
}

// NextNumber returns the number the next account must use.
func (r *AccountRepository) NextNumber(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.accounts) + 1, nil
}

// Create stores a new account. Its number must be the next one.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if want := len(r.accounts) + 1; account.Number != want {
		return fmt.Errorf("account number %d out of sequence, expected %d", account.Number, want)
	}

	r.accounts = append(r.accounts, account)

	return nil
}

// GetByNumber retrieves an account by number.
func (r *AccountRepository) GetByNumber(ctx context.Context, number int) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if number < 1 || number > len(r.accounts) {
		return nil, domain.ErrAccountNotFound
	}

	return r.accounts[number-1], nil
}

// Update replaces a stored account.
func (r *AccountRepository) Update(ctx context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if account.Number < 1 || account.Number > len(r.accounts) {
		return domain.ErrAccountNotFound
	}

	r.accounts[account.Number-1] = account

	return nil
}

// List returns every account in creation order.
func (r *AccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Account, len(r.accounts))
	copy(out, r.accounts)

	return out, nil
}
