package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that carries a machine-readable code and a
// short reason. Financial callers branch on Code, never on message text.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// Machine-inspectable denial reasons used by the guardrail engine.
const (
	ReasonExceedsPerCallLimit = "exceeds per-operation limit"
	ReasonExceedsWindowLimit  = "exceeds rolling window limit"
	ReasonNotInAllowList      = "destination not in allow-list"
	ReasonDenyListed          = "destination deny-listed"
)

// ---- Guardrails (GUARD) ----

// ErrGuardrailDenied signals a policy refusal. No chain call was made.
func ErrGuardrailDenied(reason string) *AppError {
	return New("GUARD_001", reason, http.StatusUnprocessableEntity)
}

// ---- Fund movement (PAY) ----

func ErrInsufficientBalance() *AppError {
	return New("PAY_001", "Insufficient wallet balance", http.StatusPaymentRequired)
}

func ErrBelowDustThreshold() *AppError {
	return New("PAY_002", "Amount below minimum dust threshold", http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New("PAY_003", "Invalid amount", http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New("PAY_004", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Chain interaction (CHAIN) ----

// ErrChainTimeout signals that confirmation polling exhausted its attempts
// or the transaction's blockhash expired before confirmation. The wrapped
// error distinguishes the two.
func ErrChainTimeout(err error) *AppError {
	return Wrap("CHAIN_001", "Transaction confirmation timed out", http.StatusGatewayTimeout, err)
}

// ErrChainRejected signals a transaction that was submitted but failed
// on-chain.
func ErrChainRejected(err error) *AppError {
	return Wrap("CHAIN_002", "Transaction rejected on-chain", http.StatusBadGateway, err)
}

func ErrInvalidAddress(addr string) *AppError {
	return New("CHAIN_003", fmt.Sprintf("Invalid address: %s", addr), http.StatusBadRequest)
}

// ---- Key material (SEC) ----

func ErrSecretUnavailable(err error) *AppError {
	return Wrap("SEC_001", "Custody key material could not be resolved", http.StatusServiceUnavailable, err)
}

// ErrNotInitialized signals use of the synchronous secrets accessor before
// Initialize on an async-only backend. This is a programming error.
func ErrNotInitialized() *AppError {
	return New("SEC_002", "Secrets provider not initialized", http.StatusInternalServerError)
}

// ---- Wallet pool (POOL) ----

// ErrDuplicateClaim signals a lost reservation race on a pool wallet.
func ErrDuplicateClaim() *AppError {
	return New("POOL_001", "Pool wallet already claimed", http.StatusConflict)
}

func ErrPoolExhausted() *AppError {
	return New("POOL_002", "No ready pool wallet available", http.StatusServiceUnavailable)
}

// ErrSweepFailed is non-fatal: it is logged and audited at its origin and
// must never mask the primary operation's result.
func ErrSweepFailed(err error) *AppError {
	return Wrap("POOL_003", "Sweep to custody failed", http.StatusInternalServerError, err)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("SYS_003", "Encryption service failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a PAY_003-style validation error.
func Validation(message string) *AppError {
	return New("PAY_003", message, http.StatusBadRequest)
}
