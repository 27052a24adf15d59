package postgres

import (
	"context"
	"errors"
	"fmt"

	"custody-treasury/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RevenueEventRepo implements ports.RevenueEventRepository.
type RevenueEventRepo struct {
	pool Pool
}

// NewRevenueEventRepo creates a new RevenueEventRepo.
func NewRevenueEventRepo(pool Pool) *RevenueEventRepo {
	return &RevenueEventRepo{pool: pool}
}

const revenueColumns = `id, entity_id, gross_amount, submitter_share, retained_share, submitter_tx_signature, status, created_at, updated_at`

func scanRevenueEvent(row pgx.Row) (*domain.RevenueEvent, error) {
	e := &domain.RevenueEvent{}
	err := row.Scan(
		&e.ID, &e.EntityID, &e.GrossAmount, &e.SubmitterShare, &e.RetainedShare,
		&e.SubmitterTxSignature, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Create inserts a new revenue event. Share amounts are immutable once
// written; retries only ever touch status and signature.
func (r *RevenueEventRepo) Create(ctx context.Context, e *domain.RevenueEvent) error {
	query := `INSERT INTO revenue_events (id, entity_id, gross_amount, submitter_share, retained_share, submitter_tx_signature, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		e.ID, e.EntityID, e.GrossAmount, e.SubmitterShare, e.RetainedShare,
		e.SubmitterTxSignature, string(e.Status), e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert revenue event: %w", err)
	}
	return nil
}

// GetByID fetches a revenue event by its UUID.
func (r *RevenueEventRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RevenueEvent, error) {
	query := `SELECT ` + revenueColumns + ` FROM revenue_events WHERE id = $1`

	e, err := scanRevenueEvent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get revenue event by id: %w", err)
	}
	return e, nil
}

// ListByStatus returns events in the given status, oldest first.
func (r *RevenueEventRepo) ListByStatus(ctx context.Context, status domain.RevenueEventStatus) ([]domain.RevenueEvent, error) {
	query := `SELECT ` + revenueColumns + ` FROM revenue_events WHERE status = $1 ORDER BY created_at`
	return r.list(ctx, query, string(status))
}

// ListByEntity returns all events for a business entity, oldest first.
func (r *RevenueEventRepo) ListByEntity(ctx context.Context, entityID string) ([]domain.RevenueEvent, error) {
	query := `SELECT ` + revenueColumns + ` FROM revenue_events WHERE entity_id = $1 ORDER BY created_at`
	return r.list(ctx, query, entityID)
}

func (r *RevenueEventRepo) list(ctx context.Context, query string, arg any) ([]domain.RevenueEvent, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list revenue events: %w", err)
	}
	defer rows.Close()

	var events []domain.RevenueEvent
	for rows.Next() {
		e, err := scanRevenueEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan revenue event: %w", err)
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

// UpdateStatus transitions an event and optionally records the payout
// signature (nil leaves the stored signature untouched).
func (r *RevenueEventRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RevenueEventStatus, txSignature *string) error {
	query := `UPDATE revenue_events SET status = $1, submitter_tx_signature = COALESCE($2, submitter_tx_signature), updated_at = NOW()
		WHERE id = $3`

	tag, err := r.pool.Exec(ctx, query, string(status), txSignature, id)
	if err != nil {
		return fmt.Errorf("update revenue event status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("revenue event not found: %s", id)
	}
	return nil
}
