package domain

import (
	"time"

	"github.com/google/uuid"
)

// OperationKind classifies an attempted fund movement.
type OperationKind string

const (
	OperationSend          OperationKind = "SEND"
	OperationBalanceRead   OperationKind = "BALANCE_READ"
	OperationFundEphemeral OperationKind = "FUND_EPHEMERAL"
	OperationSweep         OperationKind = "SWEEP"
	OperationPoolFund      OperationKind = "POOL_FUND"
	OperationPoolSweep     OperationKind = "POOL_SWEEP"
	OperationRevenuePayout OperationKind = "REVENUE_PAYOUT"
)

// AuditRecord is an immutable entry describing one attempted fund movement.
// Exactly one record exists per attempt, including denials and failures.
type AuditRecord struct {
	ID          uuid.UUID     `json:"id"`
	Operation   OperationKind `json:"operation"`
	Amount      uint64        `json:"amount"`
	Destination string        `json:"destination,omitempty"`
	TxSignature *string       `json:"tx_signature,omitempty"`
	Caller      string        `json:"caller"`
	Success     bool          `json:"success"`
	Error       string        `json:"error,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}
