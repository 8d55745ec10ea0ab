package audit

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/gobank/internal/domain"
)

func testRecord(id string) *domain.AuditRecord {
	return &domain.AuditRecord{
		ID:        id,
		Action:    domain.AuditActionDeposit,
		Arguments: []domain.AuditField{{Key: "tax_id", Value: "111"}, {Key: "amount", Value: "100.00"}},
		Result:    "ok balance=100.00",
		Status:    domain.AuditStatusSuccess,
		CreatedAt: time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC),
	}
}

func TestFileLog_RecordAppendsLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	log := NewFileLog(Config{Path: path, Logger: zerolog.Nop()})

	require.NoError(t, log.Record(context.Background(), testRecord("a")))
	require.NoError(t, log.Record(context.Background(), testRecord("b")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.TrimSuffix(testRecord("a").Line(), "\n"), lines[0])
	assert.Contains(t, lines[1], "(id b)")
	assert.Contains(t, lines[1], "Operation: DEPOSIT")
}

func TestFileLog_RecordKeepsExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	require.NoError(t, os.WriteFile(path, []byte("previous session\n"), 0o644))

	log := NewFileLog(Config{Path: path, Logger: zerolog.Nop()})
	require.NoError(t, log.Record(context.Background(), testRecord("a")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "previous session\n"))
}

func TestFileLog_MissingDirectoryFailsWithoutRetry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "log.txt")
	log := NewFileLog(Config{Path: path, MaxRetries: 3, Logger: zerolog.Nop()})

	calls := 0
	log.openFile = func(name string, flag int, perm os.FileMode) (*os.File, error) {
		calls++
		return os.OpenFile(name, flag, perm)
	}

	err := log.Record(context.Background(), testRecord("a"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Equal(t, 1, calls)
}

func TestFileLog_RetriesTransientErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	log := NewFileLog(Config{Path: path, MaxRetries: 3, Logger: zerolog.Nop()})
	log.initialInterval = time.Millisecond

	calls := 0
	log.openFile = func(name string, flag int, perm os.FileMode) (*os.File, error) {
		calls++
		if calls < 3 {
			return nil, errors.New("resource temporarily unavailable")
		}
		return os.OpenFile(name, flag, perm)
	}

	require.NoError(t, log.Record(context.Background(), testRecord("a")))
	assert.Equal(t, 3, calls)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "(id a)")
}

func TestFileLog_GivesUpAfterMaxRetries(t *testing.T) {
	log := NewFileLog(Config{Path: "unused", MaxRetries: 2, Logger: zerolog.Nop()})
	log.initialInterval = time.Millisecond

	calls := 0
	log.openFile = func(name string, flag int, perm os.FileMode) (*os.File, error) {
		calls++
		return nil, errors.New("device busy")
	}

	err := log.Record(context.Background(), testRecord("a"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "device busy")
	assert.Equal(t, 3, calls)
}

func TestNewFileLog_Defaults(t *testing.T) {
	log := NewFileLog(Config{MaxRetries: -1})

	assert.Equal(t, "log.txt", log.Path())
	assert.Equal(t, 0, log.maxRetries)
}
