package audit

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/iho/gobank/internal/domain"
)

// FileLog appends audit records to a text file, one line per record. The file
// is opened for every record so that external rotation is picked up.
type FileLog struct {
	mu              sync.Mutex
	path            string
	maxRetries      int
	initialInterval time.Duration
	maxElapsedTime  time.Duration
	logger          zerolog.Logger
	openFile        func(name string, flag int, perm os.FileMode) (*os.File, error)
}

// Config for FileLog.
type Config struct {
	Path       string
	MaxRetries int // retries after the first attempt
	Logger     zerolog.Logger
}

// NewFileLog creates a new FileLog.
func NewFileLog(cfg Config) *FileLog {
	if cfg.Path == "" {
		cfg.Path = "log.txt"
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}

	return &FileLog{
		path:            cfg.Path,
		maxRetries:      cfg.MaxRetries,
		initialInterval: 10 * time.Millisecond,
		maxElapsedTime:  500 * time.Millisecond,
		logger:          cfg.Logger,
		openFile:        os.OpenFile,
	}
}

// Path returns the file the log appends to.
func (l *FileLog) Path() string {
	return l.path
}

// Record appends the record's line to the file, retrying transient failures
// with exponential backoff.
func (l *FileLog) Record(ctx context.Context, record *domain.AuditRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	line := record.Line()

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = l.initialInterval
	b.MaxElapsedTime = l.maxElapsedTime

	attempt := 0

	err := backoff.Retry(func() error {
		err := l.appendLine(line)
		if err == nil {
			return nil
		}

		if !isRetryableError(err) {
			return backoff.Permanent(err)
		}

		attempt++
		if attempt > l.maxRetries {
			return backoff.Permanent(err)
		}

		l.logger.Debug().
			Err(err).
			Int("retry", attempt).
			Str("path", l.path).
			Msg("audit log write failed, retrying")

		return err
	}, backoff.WithContext(b, ctx))
	if err != nil {
		return fmt.Errorf("write audit log %s: %w", l.path, err)
	}

	return nil
}

func (l *FileLog) appendLine(line string) error {
	f, err := l.openFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	if _, err := f.WriteString(line); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// isRetryableError reports whether a failed write could succeed on retry.
// A missing directory or a permission problem will not fix itself.
func isRetryableError(err error) bool {
	switch {
	case errors.Is(err, fs.ErrNotExist),
		errors.Is(err, fs.ErrPermission),
		errors.Is(err, fs.ErrInvalid):
		return false
	default:
		return true
	}
}
