package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/usecase"
)

// Config holds all application configuration.
type Config struct {
	// Logging
	LogLevel   string `env:"LOG_LEVEL"    envDefault:"info"`
	LogFormat  string `env:"LOG_FORMAT"   envDefault:"console"`
	LogNoColor bool   `env:"LOG_NO_COLOR" envDefault:"false"`

	// Audit log
	AuditLogPath    string `env:"AUDIT_LOG_PATH"    envDefault:"log.txt"`
	AuditMaxRetries int    `env:"AUDIT_MAX_RETRIES" envDefault:"3"`

	// Accounts
	AgencyCode            string          `env:"AGENCY_CODE"             envDefault:"0001"`
	WithdrawalLimit       decimal.Decimal `env:"WITHDRAWAL_LIMIT"        envDefault:"500"`
	MaxWithdrawals        int             `env:"MAX_WITHDRAWALS"         envDefault:"50"`
	DailyTransactionLimit int             `env:"DAILY_TRANSACTION_LIMIT" envDefault:"10"`

	// Presentation
	CurrencySymbol string `env:"CURRENCY_SYMBOL" envDefault:"R$"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// AccountSettings returns the account rules the session applies.
func (c *Config) AccountSettings() usecase.AccountSettings {
	return usecase.AccountSettings{
		Agency:                c.AgencyCode,
		WithdrawalLimit:       c.WithdrawalLimit,
		MaxWithdrawals:        c.MaxWithdrawals,
		DailyTransactionLimit: c.DailyTransactionLimit,
	}
}
