package ports

import (
	"context"
	"time"

	"custody-treasury/internal/core/domain"

	"github.com/google/uuid"
)

// EncryptionService handles AES-256-GCM encryption/decryption of key
// material at rest.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// SecretsProvider resolves the custody signing key.
// Get is synchronous and only valid for backends that resolve without I/O,
// or after Initialize has run for the async-only backend.
type SecretsProvider interface {
	// Initialize performs any one-time resolution a backend needs.
	// Must be called once at process startup.
	Initialize(ctx context.Context) error
	// Get returns the cached custody keypair, refreshing it when the TTL
	// has lapsed and the backend can refresh synchronously.
	Get() (*domain.Keypair, error)
}

// ChainClient wraps the blockchain RPC: balance query, signed-transfer
// submission with polled confirmation, and address validation.
type ChainClient interface {
	GetBalance(ctx context.Context, address string) (uint64, error)
	// SendTransfer builds, signs with from, submits and confirms a transfer.
	// Returns the transaction signature.
	SendTransfer(ctx context.Context, from *domain.Keypair, to string, amount uint64) (string, error)
	IsValidAddress(address string) bool
}

// SpendWindowStore accumulates per-caller spend totals over fixed windows,
// backing the guardrail's rolling-window ceiling.
type SpendWindowStore interface {
	// Current returns the cumulative spend for the caller's active window.
	Current(ctx context.Context, caller string, window time.Duration) (uint64, error)
	// Add records a completed spend and returns the new window total.
	Add(ctx context.Context, caller string, amount uint64, window time.Duration) (uint64, error)
}

// Decision is a guardrail verdict. Reason is a short, machine-inspectable
// string, empty when allowed.
type Decision struct {
	Allowed bool
	Reason  string
}

// Guardrail is the policy gate consulted before any spend. Checks are
// side-effect free; only RecordSpend mutates the rolling window, and the
// facade calls it solely after a successful send.
type Guardrail interface {
	CheckSend(ctx context.Context, destination string, amount uint64, caller string) Decision
	CheckOperationBudget(ctx context.Context, estimatedAmount uint64, caller string) Decision
	RecordSpend(ctx context.Context, amount uint64, caller string)
}

// AuditService records attempted fund movements. Record is best-effort:
// a failed write never aborts the financial operation it describes.
type AuditService interface {
	Record(ctx context.Context, rec *domain.AuditRecord)
	ListByCaller(ctx context.Context, caller string, limit int) ([]domain.AuditRecord, error)
	ListByOperation(ctx context.Context, op domain.OperationKind, limit int) ([]domain.AuditRecord, error)
	ListByTimeRange(ctx context.Context, from, to time.Time) ([]domain.AuditRecord, error)
}

// SendResult is the structured outcome of a custody transfer.
type SendResult struct {
	Success   bool   `json:"success"`
	Signature string `json:"signature,omitempty"`
	Amount    uint64 `json:"amount"`
	Reason    string `json:"reason,omitempty"`
}

// TreasuryService is the secure wallet facade: the only component permitted
// to move custody funds. Every send runs guardrail -> chain -> audit, and
// writes exactly one audit record per attempt, denials included. op tags the
// audit record; plain transfers use domain.OperationSend.
type TreasuryService interface {
	Send(ctx context.Context, op domain.OperationKind, destination string, amount uint64, caller string) (*SendResult, error)
	GetBalance(ctx context.Context, caller string) (uint64, error)
	CheckOperationBudget(ctx context.Context, estimatedAmount uint64, caller string) Decision
	// CustodyAddress returns the custody wallet's public address.
	CustodyAddress() (string, error)
}

// ActionOutcome is what an external action reports back.
type ActionOutcome struct {
	Signature string `json:"signature,omitempty"`
	Detail    string `json:"detail,omitempty"`
}

// ExternalAction is the caller-supplied on-chain action. It signs and
// submits its own transactions with the ephemeral keypair; it never sees
// the custody key.
type ExternalAction func(ctx context.Context, wallet *domain.Keypair) (*ActionOutcome, error)

// FundedActionRequest asks the lifecycle to stand up a funded throwaway
// wallet and run an action with it.
type FundedActionRequest struct {
	FundingAmount uint64
	Caller        string
	UseVanity     bool
	Action        ExternalAction
}

// ActionResult reports a completed ephemeral wallet lifecycle.
type ActionResult struct {
	Outcome       *ActionOutcome        `json:"outcome,omitempty"`
	WalletAddress string                `json:"wallet_address"`
	FundedAmount  uint64                `json:"funded_amount"`
	SweptAmount   uint64                `json:"swept_amount"`
	State         domain.EphemeralState `json:"state"`
}

// EphemeralService runs the one-shot funded wallet lifecycle.
type EphemeralService interface {
	RunFundedAction(ctx context.Context, req FundedActionRequest) (*ActionResult, error)
}

// FundReport summarizes a pool funding batch. Partial failures are
// reported per unit; wallets funded before a failure are retained.
type FundReport struct {
	Funded     int      `json:"funded"`
	Failed     int      `json:"failed"`
	TotalSpent uint64   `json:"total_spent"`
	Addresses  []string `json:"addresses,omitempty"`
	Errors     []string `json:"errors,omitempty"`
}

// SweepOptions controls a pool sweep/recovery run.
type SweepOptions struct {
	Statuses []domain.PoolWalletStatus // empty = ready, reserved, failed
	DryRun   bool
}

// SweepReport summarizes a pool sweep/recovery run.
type SweepReport struct {
	Swept          int      `json:"swept"`
	Failed         int      `json:"failed"`
	ResetStale     int64    `json:"reset_stale"`
	TotalRecovered uint64   `json:"total_recovered"`
	DryRun         bool     `json:"dry_run"`
	Errors         []string `json:"errors,omitempty"`
}

// PoolService maintains the pre-funded wallet pool.
type PoolService interface {
	Fund(ctx context.Context, count int, caller string) (*FundReport, error)
	Sweep(ctx context.Context, opts SweepOptions) (*SweepReport, error)
	// Acquire claims a ready pool wallet and returns its decrypted keypair.
	Acquire(ctx context.Context) (*domain.PoolWallet, *domain.Keypair, error)
	// AcquireByID claims one specific ready wallet. Losing the claim race
	// fails with a conflict rather than handing over another reservation.
	AcquireByID(ctx context.Context, id uuid.UUID) (*domain.PoolWallet, *domain.Keypair, error)
	// Release returns a reservation: back to ready, or failed on error.
	Release(ctx context.Context, id uuid.UUID, failed bool) error
}

// DistributionResult reports a revenue distribution attempt.
type DistributionResult struct {
	Success              bool      `json:"success"`
	EventID              uuid.UUID `json:"event_id"`
	SubmitterShare       uint64    `json:"submitter_share"`
	RetainedShare        uint64    `json:"retained_share"`
	SubmitterTxSignature *string   `json:"submitter_tx_signature,omitempty"`
	Reason               string    `json:"reason,omitempty"`
}

// RevenueService records inbound revenue and drives the payout state
// machine through the treasury facade.
type RevenueService interface {
	RecordAndDistribute(ctx context.Context, entityID string, grossAmount uint64) (*DistributionResult, error)
	RetryEvent(ctx context.Context, id uuid.UUID) (*DistributionResult, error)
	// RetryPending re-attempts all retryable events; returns how many
	// reached completed.
	RetryPending(ctx context.Context) (int, error)
}

// TokenService mints and validates operator identity tokens. The operator
// name doubles as the guardrail caller scope.
type TokenService interface {
	Generate(operator string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Operator string
}
