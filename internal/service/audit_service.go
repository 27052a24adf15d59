package service

import (
	"context"
	"time"

	"custody-treasury/internal/core/domain"
	"custody-treasury/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AuditServiceImpl implements ports.AuditService. Every record is also
// emitted as a structured log line, so the trail survives a database outage
// in degraded form.
type AuditServiceImpl struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService creates a new AuditServiceImpl. If repo is nil, records
// are only written to the logger.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) *AuditServiceImpl {
	return &AuditServiceImpl{
		repo: repo,
		log:  log.With().Str("component", "audit").Logger(),
	}
}

// Record persists an audit record. Best-effort: a failed write is logged and
// swallowed, never propagated to the financial operation it describes.
func (s *AuditServiceImpl) Record(ctx context.Context, rec *domain.AuditRecord) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	evt := s.log.Info().
		Str("operation", string(rec.Operation)).
		Uint64("amount", rec.Amount).
		Str("destination", rec.Destination).
		Str("caller", rec.Caller).
		Bool("success", rec.Success)
	if rec.TxSignature != nil {
		evt = evt.Str("tx_signature", *rec.TxSignature)
	}
	if rec.Error != "" {
		evt = evt.Str("error", rec.Error)
	}
	evt.Msg("audit")

	if s.repo == nil {
		return
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		s.log.Warn().Err(err).
			Str("operation", string(rec.Operation)).
			Msg("failed to persist audit record")
	}
}

// ListByCaller returns the caller's most recent records.
func (s *AuditServiceImpl) ListByCaller(ctx context.Context, caller string, limit int) ([]domain.AuditRecord, error) {
	return s.repo.ListByCaller(ctx, caller, limit)
}

// ListByOperation returns the most recent records for one operation kind.
func (s *AuditServiceImpl) ListByOperation(ctx context.Context, op domain.OperationKind, limit int) ([]domain.AuditRecord, error) {
	return s.repo.ListByOperation(ctx, op, limit)
}

// ListByTimeRange returns records inside [from, to), oldest first.
func (s *AuditServiceImpl) ListByTimeRange(ctx context.Context, from, to time.Time) ([]domain.AuditRecord, error) {
	return s.repo.ListByTimeRange(ctx, from, to)
}
