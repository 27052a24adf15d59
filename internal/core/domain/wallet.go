package domain

import (
	"time"

	"github.com/google/uuid"
)

// PoolWalletStatus represents the lifecycle state of a pre-funded wallet.
type PoolWalletStatus string

const (
	PoolWalletStatusReady    PoolWalletStatus = "ready"
	PoolWalletStatusReserved PoolWalletStatus = "reserved"
	PoolWalletStatusUsed     PoolWalletStatus = "used"
	PoolWalletStatusFailed   PoolWalletStatus = "failed"
)

// PoolWallet is a persisted, reusable ephemeral wallet kept funded so an
// external action does not pay the funding round-trip latency.
type PoolWallet struct {
	ID           uuid.UUID        `json:"id"`
	Address      string           `json:"address"`
	EncryptedKey string           `json:"-"` // AES-256-GCM encrypted seed, never expose
	FundedAmount uint64           `json:"funded_amount"`
	Status       PoolWalletStatus `json:"status"`
	ReservedAt   *time.Time       `json:"reserved_at,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// IsStale reports whether a reserved wallet's claim has outlived the
// staleness window and is eligible for reset.
func (w *PoolWallet) IsStale(window time.Duration, now time.Time) bool {
	return w.Status == PoolWalletStatusReserved &&
		w.ReservedAt != nil &&
		now.Sub(*w.ReservedAt) > window
}

// EphemeralState tracks a one-shot wallet through its lifecycle. Ephemeral
// wallets are never persisted; the state is carried for audit context only.
type EphemeralState string

const (
	EphemeralStateFunded         EphemeralState = "funded"
	EphemeralStateInUse          EphemeralState = "in_use"
	EphemeralStateSwept          EphemeralState = "swept"
	EphemeralStateSweptOnFailure EphemeralState = "swept_on_failure"
)
