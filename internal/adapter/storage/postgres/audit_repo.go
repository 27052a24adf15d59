package postgres

import (
	"context"
	"fmt"
	"time"

	"custody-treasury/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// AuditRepo implements ports.AuditRepository. The table is append-only;
// there is deliberately no update or delete path.
type AuditRepo struct {
	pool Pool
}

// NewAuditRepo creates a new AuditRepo.
func NewAuditRepo(pool Pool) *AuditRepo {
	return &AuditRepo{pool: pool}
}

const auditColumns = `id, operation, amount, destination, tx_signature, caller, success, error, created_at`

func scanAuditRecord(row pgx.Row) (*domain.AuditRecord, error) {
	rec := &domain.AuditRecord{}
	err := row.Scan(
		&rec.ID, &rec.Operation, &rec.Amount, &rec.Destination,
		&rec.TxSignature, &rec.Caller, &rec.Success, &rec.Error, &rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Create appends one audit record.
func (r *AuditRepo) Create(ctx context.Context, rec *domain.AuditRecord) error {
	query := `INSERT INTO audit_records (id, operation, amount, destination, tx_signature, caller, success, error, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		rec.ID, string(rec.Operation), rec.Amount, rec.Destination,
		rec.TxSignature, rec.Caller, rec.Success, rec.Error, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit record: %w", err)
	}
	return nil
}

// ListByCaller returns the most recent records for a caller.
func (r *AuditRepo) ListByCaller(ctx context.Context, caller string, limit int) ([]domain.AuditRecord, error) {
	query := `SELECT ` + auditColumns + ` FROM audit_records WHERE caller = $1 ORDER BY created_at DESC LIMIT $2`
	return r.list(ctx, query, caller, limit)
}

// ListByOperation returns the most recent records for an operation kind.
func (r *AuditRepo) ListByOperation(ctx context.Context, op domain.OperationKind, limit int) ([]domain.AuditRecord, error) {
	query := `SELECT ` + auditColumns + ` FROM audit_records WHERE operation = $1 ORDER BY created_at DESC LIMIT $2`
	return r.list(ctx, query, string(op), limit)
}

// ListByTimeRange returns records created within [from, to], oldest first.
func (r *AuditRepo) ListByTimeRange(ctx context.Context, from, to time.Time) ([]domain.AuditRecord, error) {
	query := `SELECT ` + auditColumns + ` FROM audit_records WHERE created_at >= $1 AND created_at <= $2 ORDER BY created_at`
	return r.list(ctx, query, from, to)
}

func (r *AuditRepo) list(ctx context.Context, query string, args ...any) ([]domain.AuditRecord, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit records: %w", err)
	}
	defer rows.Close()

	var records []domain.AuditRecord
	for rows.Next() {
		rec, err := scanAuditRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan audit record: %w", err)
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}
