package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// RevenueEventStatus is the payout state machine:
// pending -> submitter_paid -> completed, or pending/submitter_paid -> failed.
type RevenueEventStatus string

const (
	RevenueStatusPending       RevenueEventStatus = "pending"
	RevenueStatusSubmitterPaid RevenueEventStatus = "submitter_paid"
	RevenueStatusCompleted     RevenueEventStatus = "completed"
	RevenueStatusFailed        RevenueEventStatus = "failed"
)

// RevenueEvent records inbound revenue tied to a business entity. Shares are
// computed once at creation and never recomputed; retries re-drive the same
// row by ID.
type RevenueEvent struct {
	ID                   uuid.UUID          `json:"id"`
	EntityID             string             `json:"entity_id"`
	GrossAmount          uint64             `json:"gross_amount"`
	SubmitterShare       uint64             `json:"submitter_share"`
	RetainedShare        uint64             `json:"retained_share"`
	SubmitterTxSignature *string            `json:"submitter_tx_signature,omitempty"`
	Status               RevenueEventStatus `json:"status"`
	CreatedAt            time.Time          `json:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at"`
}

// IsRetryable reports whether the event can be re-driven toward completion.
func (e *RevenueEvent) IsRetryable() bool {
	return e.Status == RevenueStatusPending || e.Status == RevenueStatusFailed
}

// SplitRevenue computes submitter and retained shares. The submitter share
// is floor(gross * percent); the integer-division remainder goes to the
// retained share, so the two always sum to gross exactly.
func SplitRevenue(gross uint64, sharePercent float64) (submitter, retained uint64) {
	if sharePercent < 0 {
		sharePercent = 0
	}
	if sharePercent > 1 {
		sharePercent = 1
	}
	submitter = uint64(math.Floor(float64(gross) * sharePercent))
	if submitter > gross {
		submitter = gross
	}
	retained = gross - submitter
	return submitter, retained
}
