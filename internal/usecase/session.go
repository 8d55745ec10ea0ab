package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/iho/gobank/internal/domain"
)

// SessionConfig wires a Session. Only the repositories are required.
type SessionConfig struct {
	CustomerRepo CustomerRepository
	AccountRepo  AccountRepository
	AuditLogger  AuditLogger
	Metrics      MetricsRecorder
	IDGenerator  IDGenerator
	Clock        Clock
	Logger       zerolog.Logger
	Settings     AccountSettings
}

// Session is the in-memory banking session driven by the front-end. It is
// built once per process and every operation on it is audited.
type Session struct {
	ID string

	customers    *CustomerUseCase
	accounts     *AccountUseCase
	transactions *TransactionUseCase
	statements   *StatementUseCase

	audit    AuditLogger
	metrics  MetricsRecorder
	idGen    IDGenerator
	clock    Clock
	logger   zerolog.Logger
	settings AccountSettings
}

// NewSession creates a new Session.
func NewSession(cfg SessionConfig) *Session {
	if cfg.AuditLogger == nil {
		cfg.AuditLogger = nopAuditLogger{}
	}
	if cfg.Metrics == nil {
		cfg.Metrics = nopMetrics{}
	}
	if cfg.IDGenerator == nil {
		cfg.IDGenerator = &sequenceIDGenerator{}
	}
	if cfg.Clock == nil {
		cfg.Clock = SystemClock{}
	}

	defaults := DefaultAccountSettings()
	if cfg.Settings.Agency == "" {
		cfg.Settings.Agency = defaults.Agency
	}
	if cfg.Settings.WithdrawalLimit.IsZero() {
		cfg.Settings.WithdrawalLimit = defaults.WithdrawalLimit
	}
	if cfg.Settings.MaxWithdrawals <= 0 {
		cfg.Settings.MaxWithdrawals = defaults.MaxWithdrawals
	}
	if cfg.Settings.DailyTransactionLimit <= 0 {
		cfg.Settings.DailyTransactionLimit = defaults.DailyTransactionLimit
	}

	id := cfg.IDGenerator.Generate()

	return &Session{
		ID:           id,
		customers:    NewCustomerUseCase(cfg.CustomerRepo, cfg.Clock, cfg.Settings.DailyTransactionLimit),
		accounts:     NewAccountUseCase(cfg.AccountRepo, cfg.CustomerRepo, cfg.Settings),
		transactions: NewTransactionUseCase(cfg.CustomerRepo, cfg.AccountRepo, cfg.Clock),
		statements:   NewStatementUseCase(cfg.CustomerRepo, cfg.AccountRepo),
		audit:        cfg.AuditLogger,
		metrics:      cfg.Metrics,
		idGen:        cfg.IDGenerator,
		clock:        cfg.Clock,
		logger:       cfg.Logger.With().Str("session_id", id).Logger(),
		settings:     cfg.Settings,
	}
}

// Settings returns the account settings in effect.
func (s *Session) Settings() AccountSettings {
	return s.settings
}

// CreateCustomer registers a customer, rejecting a tax id already in use.
func (s *Session) CreateCustomer(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error) {
	args := []domain.AuditField{
		field("tax_id", input.TaxID),
		field("name", input.Name),
		field("birth_date", input.BirthDate),
		field("address", input.Address),
	}

	customer, err := instrument(ctx, s, domain.AuditActionCustomerCreate, args,
		func(ctx context.Context) (*domain.Customer, error) {
			return s.customers.CreateCustomer(ctx, input)
		},
		func(c *domain.Customer) string {
			return "customer tax_id=" + c.TaxID
		},
	)
	if err == nil {
		s.metrics.CustomerCreated()
	}

	return customer, err
}

// CreateAccount opens the next sequential account for a customer.
func (s *Session) CreateAccount(ctx context.Context, taxID string) (*domain.Account, error) {
	account, err := instrument(ctx, s, domain.AuditActionAccountCreate,
		[]domain.AuditField{field("tax_id", taxID)},
		func(ctx context.Context) (*domain.Account, error) {
			return s.accounts.CreateAccount(ctx, taxID)
		},
		func(a *domain.Account) string {
			return fmt.Sprintf("account agency=%s number=%d", a.Agency, a.Number)
		},
	)
	if err == nil {
		s.metrics.AccountCreated()
	}

	return account, err
}

// Deposit credits the customer's first account.
func (s *Session) Deposit(ctx context.Context, input TransactionInput) (*domain.Account, error) {
	account, err := instrument(ctx, s, domain.AuditActionDeposit,
		[]domain.AuditField{field("tax_id", input.TaxID), amountField(input.Amount)},
		func(ctx context.Context) (*domain.Account, error) {
			return s.transactions.Deposit(ctx, input)
		},
		describeBalance,
	)
	s.metrics.ObserveTransaction(domain.TransactionKindDeposit, input.Amount, err)

	return account, err
}

// Withdraw debits the customer's first account.
func (s *Session) Withdraw(ctx context.Context, input TransactionInput) (*domain.Account, error) {
	account, err := instrument(ctx, s, domain.AuditActionWithdraw,
		[]domain.AuditField{field("tax_id", input.TaxID), amountField(input.Amount)},
		func(ctx context.Context) (*domain.Account, error) {
			return s.transactions.Withdraw(ctx, input)
		},
		describeBalance,
	)
	s.metrics.ObserveTransaction(domain.TransactionKindWithdrawal, input.Amount, err)

	return account, err
}

// Statement returns the statement of the customer's first account. A
// non-empty kindFilter keeps only deposits or only withdrawals.
func (s *Session) Statement(ctx context.Context, taxID, kindFilter string) (*domain.Statement, error) {
	args := []domain.AuditField{field("tax_id", taxID)}
	if kindFilter != "" {
		args = append(args, field("kind", kindFilter))
	}

	return instrument(ctx, s, domain.AuditActionStatement, args,
		func(ctx context.Context) (*domain.Statement, error) {
			return s.statements.GetStatementByKind(ctx, taxID, kindFilter)
		},
		func(st *domain.Statement) string {
			return "statement entries=" + strconv.Itoa(len(st.Entries)) +
				" balance=" + st.Balance.StringFixed(domain.AmountPlaces)
		},
	)
}

// ListAccounts returns the summary of every account in the session.
func (s *Session) ListAccounts(ctx context.Context) ([]domain.AccountSummary, error) {
	return instrument(ctx, s, domain.AuditActionAccountList, nil,
		s.accounts.ListAccounts,
		func(summaries []domain.AccountSummary) string {
			return "accounts=" + strconv.Itoa(len(summaries))
		},
	)
}

// GetCustomer looks a customer up without auditing.
func (s *Session) GetCustomer(ctx context.Context, taxID string) (*domain.Customer, error) {
	return s.customers.GetCustomer(ctx, taxID)
}

// Customers lists every customer without auditing.
func (s *Session) Customers(ctx context.Context) ([]*domain.Customer, error) {
	return s.customers.ListCustomers(ctx)
}

func describeBalance(a *domain.Account) string {
	return "ok balance=" + a.Balance.StringFixed(domain.AmountPlaces)
}
