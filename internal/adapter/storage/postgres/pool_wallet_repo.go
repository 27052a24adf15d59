package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"custody-treasury/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PoolWalletRepo implements ports.PoolWalletRepository.
type PoolWalletRepo struct {
	pool Pool
}

// NewPoolWalletRepo creates a new PoolWalletRepo.
func NewPoolWalletRepo(pool Pool) *PoolWalletRepo {
	return &PoolWalletRepo{pool: pool}
}

const poolWalletColumns = `id, address, encrypted_key, funded_amount, status, reserved_at, created_at, updated_at`

func scanPoolWallet(row pgx.Row) (*domain.PoolWallet, error) {
	w := &domain.PoolWallet{}
	err := row.Scan(
		&w.ID, &w.Address, &w.EncryptedKey, &w.FundedAmount,
		&w.Status, &w.ReservedAt, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// Create inserts a new pool wallet.
func (r *PoolWalletRepo) Create(ctx context.Context, w *domain.PoolWallet) error {
	query := `INSERT INTO pool_wallets (id, address, encrypted_key, funded_amount, status, reserved_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		w.ID, w.Address, w.EncryptedKey, w.FundedAmount,
		string(w.Status), w.ReservedAt, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pool wallet: %w", err)
	}
	return nil
}

// GetByID fetches a pool wallet by its UUID.
func (r *PoolWalletRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PoolWallet, error) {
	query := `SELECT ` + poolWalletColumns + ` FROM pool_wallets WHERE id = $1`

	w, err := scanPoolWallet(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pool wallet by id: %w", err)
	}
	return w, nil
}

// ListByStatus returns wallets in any of the given statuses, oldest first.
func (r *PoolWalletRepo) ListByStatus(ctx context.Context, statuses ...domain.PoolWalletStatus) ([]domain.PoolWallet, error) {
	if len(statuses) == 0 {
		return nil, nil
	}
	raw := make([]string, len(statuses))
	for i, s := range statuses {
		raw[i] = string(s)
	}

	query := `SELECT ` + poolWalletColumns + ` FROM pool_wallets WHERE status = ANY($1) ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, raw)
	if err != nil {
		return nil, fmt.Errorf("list pool wallets: %w", err)
	}
	defer rows.Close()

	var wallets []domain.PoolWallet
	for rows.Next() {
		w, err := scanPoolWallet(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pool wallet: %w", err)
		}
		wallets = append(wallets, *w)
	}
	return wallets, rows.Err()
}

// Claim reserves the given wallet only if its status is still ready.
// The conditional update is the whole concurrency story: exactly one of N
// simultaneous claimants sees rows_affected == 1.
func (r *PoolWalletRepo) Claim(ctx context.Context, id uuid.UUID, reservedAt time.Time) (bool, error) {
	query := `UPDATE pool_wallets SET status = 'reserved', reserved_at = $1, updated_at = $1
		WHERE id = $2 AND status = 'ready'`

	tag, err := r.pool.Exec(ctx, query, reservedAt, id)
	if err != nil {
		return false, fmt.Errorf("claim pool wallet: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ClaimNext reserves the oldest ready wallet. Returns nil, nil when the
// pool is empty. SKIP LOCKED keeps concurrent claimants off the same row.
func (r *PoolWalletRepo) ClaimNext(ctx context.Context, reservedAt time.Time) (*domain.PoolWallet, error) {
	query := `UPDATE pool_wallets SET status = 'reserved', reserved_at = $1, updated_at = $1
		WHERE id = (
			SELECT id FROM pool_wallets WHERE status = 'ready'
			ORDER BY created_at LIMIT 1 FOR UPDATE SKIP LOCKED
		)
		RETURNING ` + poolWalletColumns

	w, err := scanPoolWallet(r.pool.QueryRow(ctx, query, reservedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("claim next pool wallet: %w", err)
	}
	return w, nil
}

// UpdateStatus transitions a wallet's status and clears any reservation
// when leaving the reserved state.
func (r *PoolWalletRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PoolWalletStatus) error {
	query := `UPDATE pool_wallets SET status = $1, reserved_at = NULL, updated_at = NOW() WHERE id = $2`
	if status == domain.PoolWalletStatusReserved {
		query = `UPDATE pool_wallets SET status = $1, updated_at = NOW() WHERE id = $2`
	}

	tag, err := r.pool.Exec(ctx, query, string(status), id)
	if err != nil {
		return fmt.Errorf("update pool wallet status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("pool wallet not found: %s", id)
	}
	return nil
}

// ReleaseStale resets reservations older than cutoff back to ready.
func (r *PoolWalletRepo) ReleaseStale(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `UPDATE pool_wallets SET status = 'ready', reserved_at = NULL, updated_at = NOW()
		WHERE status = 'reserved' AND reserved_at < $1`

	tag, err := r.pool.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("release stale reservations: %w", err)
	}
	return tag.RowsAffected(), nil
}
