package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
)

// CustomerRepository defines data access for customers.
type CustomerRepository interface {
	// Create stores a new customer, failing with domain.ErrDuplicateCustomer
	// when the tax id is taken.
	Create(ctx context.Context, customer *domain.Customer) error
	GetByTaxID(ctx context.Context, taxID string) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	List(ctx context.Context) ([]*domain.Customer, error)
}

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByNumber(ctx context.Context, number int) (*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
	// NextNumber returns the number the next created account should use.
	NextNumber(ctx context.Context) (int, error)
	// List returns every account in creation order.
	List(ctx context.Context) ([]*domain.Account, error)
}

// AuditLogger writes one record per top-level operation.
type AuditLogger interface {
	Record(ctx context.Context, record *domain.AuditRecord) error
}

// MetricsRecorder receives operation outcomes.
type MetricsRecorder interface {
	ObserveOperation(action domain.AuditAction, status domain.AuditStatus, duration time.Duration)
	ObserveTransaction(kind domain.TransactionKind, amount decimal.Decimal, err error)
	CustomerCreated()
	AccountCreated()
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}
