package service

import (
	"context"

	"custody-treasury/internal/core/domain"
	"custody-treasury/internal/core/ports"
	"custody-treasury/pkg/apperror"

	"github.com/rs/zerolog"
)

// TreasuryServiceImpl implements ports.TreasuryService. It is the single
// gate in front of the custody key: every outflow runs guardrail -> chain ->
// audit, and the raw keypair never leaves this package boundary.
type TreasuryServiceImpl struct {
	secrets   ports.SecretsProvider
	chain     ports.ChainClient
	guardrail ports.Guardrail
	audit     ports.AuditService
	log       zerolog.Logger
}

// NewTreasuryService creates a new TreasuryServiceImpl.
func NewTreasuryService(
	secrets ports.SecretsProvider,
	chain ports.ChainClient,
	guardrail ports.Guardrail,
	audit ports.AuditService,
	log zerolog.Logger,
) *TreasuryServiceImpl {
	return &TreasuryServiceImpl{
		secrets:   secrets,
		chain:     chain,
		guardrail: guardrail,
		audit:     audit,
		log:       log.With().Str("component", "treasury").Logger(),
	}
}

// Send moves custody funds to destination. Exactly one audit record is
// written per attempt: denial, chain failure, or success. A guardrail denial
// is a domain outcome, not an error; the result carries the reason and no
// chain call is made.
func (s *TreasuryServiceImpl) Send(ctx context.Context, op domain.OperationKind, destination string, amount uint64, caller string) (*ports.SendResult, error) {
	if amount == 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if !s.chain.IsValidAddress(destination) {
		s.recordAudit(ctx, op, amount, destination, nil, caller, false, "invalid destination address")
		return nil, apperror.ErrInvalidAddress(destination)
	}

	if d := s.guardrail.CheckSend(ctx, destination, amount, caller); !d.Allowed {
		s.recordAudit(ctx, op, amount, destination, nil, caller, false, d.Reason)
		return &ports.SendResult{Success: false, Amount: amount, Reason: d.Reason}, nil
	}

	custody, err := s.secrets.Get()
	if err != nil {
		s.recordAudit(ctx, op, amount, destination, nil, caller, false, err.Error())
		return nil, err
	}

	signature, err := s.chain.SendTransfer(ctx, custody, destination, amount)
	if err != nil {
		s.recordAudit(ctx, op, amount, destination, nil, caller, false, err.Error())
		return nil, err
	}

	// The spend window only grows on confirmed transfers.
	s.guardrail.RecordSpend(ctx, amount, caller)
	s.recordAudit(ctx, op, amount, destination, &signature, caller, true, "")

	s.log.Info().
		Str("operation", string(op)).
		Str("destination", destination).
		Uint64("amount", amount).
		Str("caller", caller).
		Str("signature", signature).
		Msg("custody transfer confirmed")

	return &ports.SendResult{Success: true, Signature: signature, Amount: amount}, nil
}

// GetBalance reads the custody wallet balance. Reads are audited too: the
// trail answers who looked, not just who spent.
func (s *TreasuryServiceImpl) GetBalance(ctx context.Context, caller string) (uint64, error) {
	custody, err := s.secrets.Get()
	if err != nil {
		return 0, err
	}

	balance, err := s.chain.GetBalance(ctx, custody.Address())
	if err != nil {
		s.recordAudit(ctx, domain.OperationBalanceRead, 0, "", nil, caller, false, err.Error())
		return 0, err
	}

	s.recordAudit(ctx, domain.OperationBalanceRead, balance, "", nil, caller, true, "")
	return balance, nil
}

// CheckOperationBudget pre-flights a multi-transfer operation against the
// caller's remaining window without reserving anything.
func (s *TreasuryServiceImpl) CheckOperationBudget(ctx context.Context, estimatedAmount uint64, caller string) ports.Decision {
	return s.guardrail.CheckOperationBudget(ctx, estimatedAmount, caller)
}

// CustodyAddress returns the custody wallet's public address.
func (s *TreasuryServiceImpl) CustodyAddress() (string, error) {
	custody, err := s.secrets.Get()
	if err != nil {
		return "", err
	}
	return custody.Address(), nil
}

func (s *TreasuryServiceImpl) recordAudit(ctx context.Context, op domain.OperationKind, amount uint64, destination string, signature *string, caller string, success bool, errMsg string) {
	s.audit.Record(ctx, &domain.AuditRecord{
		Operation:   op,
		Amount:      amount,
		Destination: destination,
		TxSignature: signature,
		Caller:      caller,
		Success:     success,
		Error:       errMsg,
	})
}
