package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
)

// instrument runs fn as one top-level operation: the outcome is written to
// the audit log, recorded in metrics and logged. A failing audit write is
// logged and does not change what fn returned.
func instrument[T any](
	ctx context.Context,
	s *Session,
	action domain.AuditAction,
	args []domain.AuditField,
	fn func(ctx context.Context) (T, error),
	describe func(T) string,
) (T, error) {
	started := time.Now()
	result, err := fn(ctx)
	elapsed := time.Since(started)

	status := domain.AuditStatusSuccess
	returned := ""
	if err != nil {
		status = domain.AuditStatusFailure
		returned = fmt.Sprintf("error %s: %v", domain.ErrorCode(err), err)
	} else {
		returned = describe(result)
	}

	record := &domain.AuditRecord{
		ID:        s.idGen.Generate(),
		Action:    action,
		Arguments: args,
		Result:    returned,
		Status:    status,
		CreatedAt: s.clock.Now(),
	}

	if auditErr := s.audit.Record(ctx, record); auditErr != nil {
		s.logger.Error().
			Err(auditErr).
			Str("operation", string(action)).
			Str("audit_id", record.ID).
			Msg("failed to write audit log")
	}

	s.metrics.ObserveOperation(action, status, elapsed)

	var event *zerolog.Event
	if err != nil {
		event = s.logger.Warn().Err(err).Str("error_code", domain.ErrorCode(err))
	} else {
		event = s.logger.Info()
	}
	event.
		Str("operation", string(action)).
		Str("status", string(status)).
		Str("audit_id", record.ID).
		Dur("duration", elapsed).
		Msg("operation completed")

	return result, err
}

func field(key, value string) domain.AuditField {
	return domain.AuditField{Key: key, Value: value}
}

func amountField(amount decimal.Decimal) domain.AuditField {
	return field("amount", domain.RoundAmount(amount).StringFixed(domain.AmountPlaces))
}

type nopAuditLogger struct{}

func (nopAuditLogger) Record(context.Context, *domain.AuditRecord) error { return nil }

type nopMetrics struct{}

func (nopMetrics) ObserveOperation(domain.AuditAction, domain.AuditStatus, time.Duration) {}
func (nopMetrics) ObserveTransaction(domain.TransactionKind, decimal.Decimal, error)     {}
func (nopMetrics) CustomerCreated()                                                    {}
func (nopMetrics) AccountCreated()                                                     {}

type sequenceIDGenerator struct {
	next int
}

func (g *sequenceIDGenerator) Generate() string {
	g.next++
	return fmt.Sprintf("%06d", g.next)
}
