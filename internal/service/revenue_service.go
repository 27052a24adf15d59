package service

import (
	"context"
	"fmt"
	"time"

	"custody-treasury/config"
	"custody-treasury/internal/core/domain"
	"custody-treasury/internal/core/ports"
	"custody-treasury/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// revenueCaller is the guardrail scope for automated payout transfers.
const revenueCaller = "revenue"

// RevenueServiceImpl implements ports.RevenueService: it records inbound
// revenue, splits it between the submitter and the retained treasury share,
// and drives the payout state machine. The split is computed exactly once at
// Create; retries re-attempt the transfer, never the arithmetic.
type RevenueServiceImpl struct {
	repo     ports.RevenueEventRepository
	treasury ports.TreasuryService
	cfg      config.RevenueConfig
	log      zerolog.Logger
}

// NewRevenueService creates a new RevenueServiceImpl.
func NewRevenueService(repo ports.RevenueEventRepository, treasury ports.TreasuryService, cfg config.RevenueConfig, log zerolog.Logger) *RevenueServiceImpl {
	return &RevenueServiceImpl{
		repo:     repo,
		treasury: treasury,
		cfg:      cfg,
		log:      log.With().Str("component", "revenue").Logger(),
	}
}

// RecordAndDistribute records a revenue event and immediately attempts the
// submitter payout. Amounts below the dust threshold are rejected before any
// event exists. A failed payout leaves the event retryable; the split
// amounts are already fixed.
func (s *RevenueServiceImpl) RecordAndDistribute(ctx context.Context, entityID string, grossAmount uint64) (*ports.DistributionResult, error) {
	if entityID == "" {
		return nil, apperror.Validation("entity_id is required")
	}
	if grossAmount < s.cfg.MinDustThreshold {
		return nil, apperror.ErrBelowDustThreshold()
	}

	submitterShare, retainedShare := domain.SplitRevenue(grossAmount, s.cfg.SharePercent)

	now := time.Now().UTC()
	event := &domain.RevenueEvent{
		ID:             uuid.New(),
		EntityID:       entityID,
		GrossAmount:    grossAmount,
		SubmitterShare: submitterShare,
		RetainedShare:  retainedShare,
		Status:         domain.RevenueStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("creating revenue event: %w", err))
	}

	s.log.Info().
		Str("event_id", event.ID.String()).
		Str("entity_id", entityID).
		Uint64("gross", grossAmount).
		Uint64("submitter_share", submitterShare).
		Uint64("retained_share", retainedShare).
		Msg("revenue event recorded")

	return s.distribute(ctx, event)
}

// RetryEvent re-attempts the payout for one event.
func (s *RevenueServiceImpl) RetryEvent(ctx context.Context, id uuid.UUID) (*ports.DistributionResult, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("loading revenue event: %w", err))
	}
	if event == nil {
		return nil, apperror.ErrNotFound("revenue event")
	}

	switch event.Status {
	case domain.RevenueStatusCompleted:
		return nil, apperror.Validation("event already completed")
	case domain.RevenueStatusSubmitterPaid:
		// Payout already confirmed; never pay twice. Close the event out.
		if err := s.repo.UpdateStatus(ctx, event.ID, domain.RevenueStatusCompleted, nil); err != nil {
			return nil, apperror.ErrDatabaseError(err)
		}
		return s.result(event, true, ""), nil
	}

	return s.distribute(ctx, event)
}

// RetryPending re-attempts every retryable event and returns how many
// reached completed. Per-event failures are logged and skipped; one stuck
// event must not block the rest of the backlog.
func (s *RevenueServiceImpl) RetryPending(ctx context.Context) (int, error) {
	var events []domain.RevenueEvent
	for _, status := range []domain.RevenueEventStatus{domain.RevenueStatusPending, domain.RevenueStatusFailed} {
		batch, err := s.repo.ListByStatus(ctx, status)
		if err != nil {
			return 0, apperror.ErrDatabaseError(fmt.Errorf("listing %s events: %w", status, err))
		}
		events = append(events, batch...)
	}

	completed := 0
	for i := range events {
		result, err := s.distribute(ctx, &events[i])
		if err != nil {
			s.log.Warn().Err(err).Str("event_id", events[i].ID.String()).Msg("retry failed")
			continue
		}
		if result.Success {
			completed++
		}
	}

	if len(events) > 0 {
		s.log.Info().Int("retryable", len(events)).Int("completed", completed).Msg("revenue retry pass complete")
	}
	return completed, nil
}

// distribute pays the submitter share and advances the state machine.
// Transfer failures are in-band: the result carries the reason and the event
// is parked as failed for the next retry.
func (s *RevenueServiceImpl) distribute(ctx context.Context, event *domain.RevenueEvent) (*ports.DistributionResult, error) {
	// Nothing owed to the submitter; the retained share never moves.
	if event.SubmitterShare == 0 {
		if err := s.repo.UpdateStatus(ctx, event.ID, domain.RevenueStatusCompleted, nil); err != nil {
			return nil, apperror.ErrDatabaseError(err)
		}
		return s.result(event, true, ""), nil
	}

	if s.cfg.SubmitterAddress == "" {
		return s.parkFailed(ctx, event, "submitter address not configured")
	}

	sendResult, err := s.treasury.Send(ctx, domain.OperationRevenuePayout, s.cfg.SubmitterAddress, event.SubmitterShare, revenueCaller)
	if err != nil {
		return s.parkFailed(ctx, event, err.Error())
	}
	if !sendResult.Success {
		return s.parkFailed(ctx, event, sendResult.Reason)
	}

	if err := s.repo.UpdateStatus(ctx, event.ID, domain.RevenueStatusSubmitterPaid, &sendResult.Signature); err != nil {
		// The transfer went through; the row lags behind. RetryEvent heals
		// this via the submitter_paid branch.
		return nil, apperror.ErrDatabaseError(fmt.Errorf("recording payout: %w", err))
	}
	if err := s.repo.UpdateStatus(ctx, event.ID, domain.RevenueStatusCompleted, nil); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	s.log.Info().
		Str("event_id", event.ID.String()).
		Uint64("submitter_share", event.SubmitterShare).
		Str("signature", sendResult.Signature).
		Msg("submitter payout confirmed")

	result := s.result(event, true, "")
	result.SubmitterTxSignature = &sendResult.Signature
	return result, nil
}

func (s *RevenueServiceImpl) parkFailed(ctx context.Context, event *domain.RevenueEvent, reason string) (*ports.DistributionResult, error) {
	if err := s.repo.UpdateStatus(ctx, event.ID, domain.RevenueStatusFailed, nil); err != nil {
		s.log.Error().Err(err).Str("event_id", event.ID.String()).Msg("failed to park revenue event")
	}
	s.log.Warn().
		Str("event_id", event.ID.String()).
		Str("reason", reason).
		Msg("submitter payout failed")
	return s.result(event, false, reason), nil
}

func (s *RevenueServiceImpl) result(event *domain.RevenueEvent, success bool, reason string) *ports.DistributionResult {
	return &ports.DistributionResult{
		Success:        success,
		EventID:        event.ID,
		SubmitterShare: event.SubmitterShare,
		RetainedShare:  event.RetainedShare,
		Reason:         reason,
	}
}
