package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/iho/gobank/internal/domain"
)

// MockCustomerRepository is a mock implementation of CustomerRepository.
type MockCustomerRepository struct {
	mu        sync.RWMutex
	customers map[string]*domain.Customer
	order     []string

	CreateFunc     func(ctx context.Context, customer *domain.Customer) error
	GetByTaxIDFunc func(ctx context.Context, taxID string) (*domain.Customer, error)
	UpdateFunc     func(ctx context.Context, customer *domain.Customer) error
	ListFunc       func(ctx context.Context) ([]*domain.Customer, error)
}

func NewMockCustomerRepository() *MockCustomerRepository {
	return &MockCustomerRepository{
		customers: make(map[string]*domain.Customer),
	}
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, customer)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.customers[customer.TaxID]; ok {
		return domain.ErrDuplicateCustomer
	}
	m.customers[customer.TaxID] = customer
	m.order = append(m.order, customer.TaxID)
	return nil
}

func (m *MockCustomerRepository) GetByTaxID(ctx context.Context, taxID string) (*domain.Customer, error) {
	if m.GetByTaxIDFunc != nil {
		return m.GetByTaxIDFunc(ctx, taxID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.customers[taxID]; ok {
		return c, nil
	}
	return nil, domain.ErrCustomerNotFound
}

func (m *MockCustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, customer)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.customers[customer.TaxID] = customer
	return nil
}

func (m *MockCustomerRepository) List(ctx context.Context) ([]*domain.Customer, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var customers []*domain.Customer
	for _, taxID := range m.order {
		customers = append(customers, m.customers[taxID])
	}
	return customers, nil
}

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts []*domain.Account

	CreateFunc      func(ctx context.Context, account *domain.Account) error
	GetByNumberFunc func(ctx context.Context, number int) (*domain.Account, error)
	UpdateFunc      func(ctx context.Context, account *domain.Account) error
	NextNumberFunc  func(ctx context.Context) (int, error)
	ListFunc        func(ctx context.Context) ([]*domain.Account, error)
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{}
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts = append(m.accounts, account)
	return nil
}

func (m *MockAccountRepository) GetByNumber(ctx context.Context, number int) (*domain.Account, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, acc := range m.accounts {
		if acc.Number == number {
			return acc, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) Update(ctx context.Context, account *domain.Account) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, account)
	}
	return nil
}

func (m *MockAccountRepository) NextNumber(ctx context.Context) (int, error) {
	if m.NextNumberFunc != nil {
		return m.NextNumberFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.accounts) + 1, nil
}

func (m *MockAccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Account, len(m.accounts))
	copy(out, m.accounts)
	return out, nil
}

// FixedClock is a Clock returning a settable time.
type FixedClock struct {
	mu sync.Mutex
	t  time.Time
}

func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{t: t}
}

func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *FixedClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = t
}

func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}
