package dto

// TokenRequest is the request body for minting an operator token.
type TokenRequest struct {
	Operator     string `json:"operator" binding:"required,min=2,max=64"`
	BootstrapKey string `json:"bootstrap_key" binding:"required"`
}

// TokenResponse is the response body for a minted token.
type TokenResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// SendRequest is the request body for a direct custody transfer.
type SendRequest struct {
	Destination string `json:"destination" binding:"required,base58addr"`
	Amount      uint64 `json:"amount" binding:"required,gt=0"`
}

// BalanceResponse is the response for the custody balance query.
type BalanceResponse struct {
	Address string `json:"address"`
	Balance uint64 `json:"balance"`
}

// PoolFundRequest is the request body for a pool funding batch.
type PoolFundRequest struct {
	Count int `json:"count" binding:"required,gt=0,lte=100"`
}

// PoolSweepRequest is the request body for a pool sweep run.
type PoolSweepRequest struct {
	Statuses []string `json:"statuses,omitempty"`
	DryRun   bool     `json:"dry_run,omitempty"`
}

// RevenueRequest is the request body for recording inbound revenue.
type RevenueRequest struct {
	EntityID    string `json:"entity_id" binding:"required,max=100"`
	GrossAmount uint64 `json:"gross_amount" binding:"required,gt=0"`
}

// AuditRecordResponse is one audit trail entry.
type AuditRecordResponse struct {
	ID          string  `json:"id"`
	Operation   string  `json:"operation"`
	Amount      uint64  `json:"amount"`
	Destination string  `json:"destination,omitempty"`
	TxSignature *string `json:"tx_signature,omitempty"`
	Caller      string  `json:"caller"`
	Success     bool    `json:"success"`
	Error       string  `json:"error,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// AuditListResponse wraps an audit trail query result.
type AuditListResponse struct {
	Items []AuditRecordResponse `json:"items"`
	Count int                   `json:"count"`
}
