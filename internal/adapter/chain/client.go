package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"custody-treasury/config"
	"custody-treasury/internal/core/domain"
	"custody-treasury/pkg/apperror"

	"github.com/rs/zerolog"
)

// ErrBlockhashExpired marks a transfer whose blockhash lapsed before the
// network confirmed it. Distinct from plain polling exhaustion.
var ErrBlockhashExpired = errors.New("blockhash expired before confirmation")

// ErrConfirmationExhausted marks confirmation polling that ran out of
// attempts without a definitive on-chain answer.
var ErrConfirmationExhausted = errors.New("confirmation polling exhausted")

// RetryPolicy bounds confirmation polling: a fixed interval and a hard
// attempt budget, independent of any scheduler primitive.
type RetryPolicy struct {
	MaxAttempts int
	Interval    time.Duration
}

// Client is a thin JSON-RPC 2.0 wrapper around the blockchain node.
// A single http.Client is shared so connections are reused.
type Client struct {
	url     string
	http    *http.Client
	confirm RetryPolicy
	log     zerolog.Logger
	nextID  atomic.Int64
}

// NewClient creates a chain client from configuration.
func NewClient(cfg config.ChainConfig, log zerolog.Logger) *Client {
	return &Client{
		url:  cfg.RPCURL,
		http: &http.Client{Timeout: cfg.RequestTimeout},
		confirm: RetryPolicy{
			MaxAttempts: cfg.ConfirmAttempts,
			Interval:    cfg.ConfirmInterval,
		},
		log: log,
	}
}

type rpcRequest struct {
	Jsonrpc string `json:"jsonrpc"`
	ID      int64  `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

// call performs one JSON-RPC request and decodes the result into out.
func (c *Client) call(ctx context.Context, method string, params []any, out any) error {
	body, err := json.Marshal(rpcRequest{
		Jsonrpc: "2.0",
		ID:      c.nextID.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("marshaling rpc request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building rpc request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("rpc %s: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("rpc %s: unexpected status %d", method, resp.StatusCode)
	}

	var rpcResp rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return fmt.Errorf("decoding rpc response: %w", err)
	}
	if rpcResp.Error != nil {
		return fmt.Errorf("rpc %s: %w", method, rpcResp.Error)
	}
	if out != nil {
		if err := json.Unmarshal(rpcResp.Result, out); err != nil {
			return fmt.Errorf("decoding rpc result: %w", err)
		}
	}
	return nil
}

// GetBalance returns the balance of address in base units.
func (c *Client) GetBalance(ctx context.Context, address string) (uint64, error) {
	if !domain.IsValidAddress(address) {
		return 0, apperror.ErrInvalidAddress(address)
	}
	var result struct {
		Value uint64 `json:"value"`
	}
	if err := c.call(ctx, "getBalance", []any{address}, &result); err != nil {
		return 0, err
	}
	return result.Value, nil
}

// IsValidAddress reports whether address is well-formed. Purely local.
func (c *Client) IsValidAddress(address string) bool {
	return domain.IsValidAddress(address)
}

// latestBlockhash fetches a recent blockhash to anchor a transfer.
func (c *Client) latestBlockhash(ctx context.Context) (string, error) {
	var result struct {
		Value struct {
			Blockhash string `json:"blockhash"`
		} `json:"value"`
	}
	if err := c.call(ctx, "getLatestBlockhash", nil, &result); err != nil {
		return "", err
	}
	if result.Value.Blockhash == "" {
		return "", fmt.Errorf("node returned empty blockhash")
	}
	return result.Value.Blockhash, nil
}

// SendTransfer builds and signs a transfer from the given keypair, submits
// it, and polls for confirmation. Returns the transaction signature.
func (c *Client) SendTransfer(ctx context.Context, from *domain.Keypair, to string, amount uint64) (string, error) {
	if !domain.IsValidAddress(to) {
		return "", apperror.ErrInvalidAddress(to)
	}

	blockhash, err := c.latestBlockhash(ctx)
	if err != nil {
		return "", fmt.Errorf("fetching blockhash: %w", err)
	}

	encoded, err := encodeTransfer(from, to, amount, blockhash)
	if err != nil {
		return "", fmt.Errorf("encoding transfer: %w", err)
	}

	var signature string
	if err := c.call(ctx, "sendTransaction", []any{encoded}, &signature); err != nil {
		if isInsufficientFunds(err) {
			return "", apperror.ErrInsufficientBalance()
		}
		return "", apperror.ErrChainRejected(err)
	}

	if err := c.awaitConfirmation(ctx, signature, blockhash); err != nil {
		return "", err
	}

	c.log.Debug().
		Str("signature", signature).
		Str("to", to).
		Uint64("amount", amount).
		Msg("transfer confirmed")

	return signature, nil
}

// isInsufficientFunds reports whether the node refused a transfer because
// the sender's balance cannot cover amount plus fee. Nodes phrase this a few
// ways, so the check is on the rejection message rather than an error code.
func isInsufficientFunds(err error) bool {
	var rpcErr *rpcError
	if !errors.As(err, &rpcErr) {
		return false
	}
	msg := strings.ToLower(rpcErr.Message)
	return strings.Contains(msg, "insufficient funds") ||
		strings.Contains(msg, "insufficient balance")
}

type signatureStatus struct {
	ConfirmationStatus string          `json:"confirmationStatus"`
	Err                json.RawMessage `json:"err"`
}

// awaitConfirmation polls signature status on a fixed interval up to the
// policy's attempt budget. Blockhash expiry is a hard failure distinct
// from exhausting the budget.
func (c *Client) awaitConfirmation(ctx context.Context, signature, blockhash string) error {
	for attempt := 1; attempt <= c.confirm.MaxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return apperror.ErrChainTimeout(ctx.Err())
		case <-time.After(c.confirm.Interval):
		}

		var result struct {
			Value []*signatureStatus `json:"value"`
		}
		if err := c.call(ctx, "getSignatureStatuses", []any{[]string{signature}}, &result); err != nil {
			c.log.Warn().Err(err).Int("attempt", attempt).Msg("signature status poll failed")
			continue
		}

		if len(result.Value) > 0 && result.Value[0] != nil {
			status := result.Value[0]
			if len(status.Err) > 0 && string(status.Err) != "null" {
				if strings.Contains(string(status.Err), "InsufficientFunds") {
					return apperror.ErrInsufficientBalance()
				}
				return apperror.ErrChainRejected(fmt.Errorf("transaction failed on-chain: %s", status.Err))
			}
			if status.ConfirmationStatus == "confirmed" || status.ConfirmationStatus == "finalized" {
				return nil
			}
			continue
		}

		// Unknown signature: the transaction may simply not have landed
		// yet, unless its blockhash already expired.
		var valid struct {
			Value bool `json:"value"`
		}
		if err := c.call(ctx, "isBlockhashValid", []any{blockhash}, &valid); err == nil && !valid.Value {
			return apperror.ErrChainTimeout(ErrBlockhashExpired)
		}
	}

	return apperror.ErrChainTimeout(ErrConfirmationExhausted)
}
