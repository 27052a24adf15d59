package ports

import (
	"context"
	"time"

	"custody-treasury/internal/core/domain"

	"github.com/google/uuid"
)

// PoolWalletRepository defines persistence operations for pool wallets.
// Claim and ClaimNext are conditional updates: they succeed only while the
// row's status is still `ready`, which is what keeps two concurrent
// consumers from receiving the same wallet.
type PoolWalletRepository interface {
	Create(ctx context.Context, w *domain.PoolWallet) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PoolWallet, error)
	ListByStatus(ctx context.Context, statuses ...domain.PoolWalletStatus) ([]domain.PoolWallet, error)
	// Claim reserves the given wallet iff it is currently ready.
	// Returns false (no error) when the race was lost.
	Claim(ctx context.Context, id uuid.UUID, reservedAt time.Time) (bool, error)
	// ClaimNext reserves the oldest ready wallet. Returns nil, nil when the
	// pool has no ready wallet.
	ClaimNext(ctx context.Context, reservedAt time.Time) (*domain.PoolWallet, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PoolWalletStatus) error
	// ReleaseStale resets reserved rows older than cutoff back to ready and
	// returns how many rows were reset.
	ReleaseStale(ctx context.Context, cutoff time.Time) (int64, error)
}

// RevenueEventRepository defines persistence operations for revenue events.
type RevenueEventRepository interface {
	Create(ctx context.Context, e *domain.RevenueEvent) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.RevenueEvent, error)
	ListByStatus(ctx context.Context, status domain.RevenueEventStatus) ([]domain.RevenueEvent, error)
	ListByEntity(ctx context.Context, entityID string) ([]domain.RevenueEvent, error)
	// UpdateStatus transitions the event and optionally records the payout
	// signature. The split amounts are immutable after Create.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RevenueEventStatus, txSignature *string) error
}

// AuditRepository defines persistence for the append-only audit log.
// Reads serve reconciliation only, never control flow.
type AuditRepository interface {
	Create(ctx context.Context, rec *domain.AuditRecord) error
	ListByCaller(ctx context.Context, caller string, limit int) ([]domain.AuditRecord, error)
	ListByOperation(ctx context.Context, op domain.OperationKind, limit int) ([]domain.AuditRecord, error)
	ListByTimeRange(ctx context.Context, from, to time.Time) ([]domain.AuditRecord, error)
}
