package memory

import (
	"context"
	"sync"

	"github.com/iho/gobank/internal/domain"
)

// CustomerRepository keeps customers in process memory, keyed by tax id.
type CustomerRepository struct {
	mu        sync.RWMutex
	customers map[string]*domain.Customer
	order     []string
}

// NewCustomerRepository creates an empty CustomerRepository.
func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{
		customers: make(map[string]*domain.Customer),
	}
}

// Create stores a new customer.
func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.customers[customer.TaxID]; exists {
		return domain.ErrDuplicateCustomer
	}

	r.customers[customer.TaxID] = customer
	r.order = append(r.order, customer.TaxID)

	return nil
}

// GetByTaxID retrieves a customer by tax id.
func (r *CustomerRepository) GetByTaxID(ctx context.Context, taxID string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, ok := r.customers[taxID]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}

	return customer, nil
}

// Update replaces a stored customer.
func (r *CustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.customers[customer.TaxID]; !ok {
		return domain.ErrCustomerNotFound
	}

	r.customers[customer.TaxID] = customer

	return nil
}

// List returns customers in registration order.
func (r *CustomerRepository) List(ctx context.Context) ([]*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Customer, 0, len(r.order))
	for _, taxID := range r.order {
		out = append(out, r.customers[taxID])
	}

	return out, nil
}
