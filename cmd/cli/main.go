package main

import (
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iho/gobank/internal/adapter/audit"
	"github.com/iho/gobank/internal/adapter/cli"
	"github.com/iho/gobank/internal/adapter/repository/memory"
	"github.com/iho/gobank/internal/infrastructure/config"
	"github.com/iho/gobank/internal/infrastructure/logger"
	"github.com/iho/gobank/internal/infrastructure/metrics"
	"github.com/iho/gobank/internal/usecase"
)

type options struct {
	auditLog string
	logLevel string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !cli.IsReported(err) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:           "gobank",
		Short:         "In-memory banking session",
		Long:          `An interactive banking session: customers, current accounts, deposits, withdrawals and statements, kept in memory until exit.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, opts, cmd.InOrStdin(), true)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.auditLog, "audit-log", "", "Audit log file (overrides AUDIT_LOG_PATH)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (overrides LOG_LEVEL)")

	rootCmd.AddCommand(runCmd(&opts))

	return rootCmd
}

func runCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run <script>",
		Short: "Run shell commands from a file, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			return runShell(cmd, *opts, f, false)
		},
	}
}

func runShell(cmd *cobra.Command, opts options, in io.Reader, interactive bool) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if opts.auditLog != "" {
		cfg.AuditLogPath = opts.auditLog
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}

	// Setup logger
	log := logger.New(logger.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Output:  cmd.ErrOrStderr(),
		NoColor: cfg.LogNoColor,
	})

	handler := newHandler(cfg, log, cmd.OutOrStdout())

	shell := cli.NewShell(cli.ShellConfig{
		Handler:     handler,
		In:          in,
		Out:         cmd.OutOrStdout(),
		Logger:      log,
		Interactive: interactive,
	})

	return shell.Run(cmd.Context())
}

func newHandler(cfg *config.Config, log zerolog.Logger, out io.Writer) *cli.Handler {
	// Initialize metrics
	m := metrics.New(prometheus.NewRegistry())

	// Initialize audit log
	auditLog := audit.NewFileLog(audit.Config{
		Path:       cfg.AuditLogPath,
		MaxRetries: cfg.AuditMaxRetries,
		Logger:     log,
	})

	// Initialize session
	session := usecase.NewSession(usecase.SessionConfig{
		CustomerRepo: memory.NewCustomerRepository(),
		AccountRepo:  memory.NewAccountRepository(),
		AuditLogger:  auditLog,
		Metrics:      m,
		IDGenerator:  memory.NewULIDGenerator(),
		Logger:       log,
		Settings:     cfg.AccountSettings(),
	})

	log.Info().
		Str("session_id", session.ID).
		Str("audit_log", auditLog.Path()).
		Msg("session started")

	return cli.NewHandler(cli.HandlerConfig{
		Session:  session,
		Out:      out,
		Currency: cfg.CurrencySymbol,
		Counters: m,
	})
}
