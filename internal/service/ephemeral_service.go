package service

import (
	"context"
	"fmt"

	"custody-treasury/internal/core/domain"
	"custody-treasury/internal/core/ports"
	"custody-treasury/pkg/apperror"

	"github.com/rs/zerolog"
)

// EphemeralServiceImpl implements ports.EphemeralService: the one-shot
// funded wallet lifecycle. A throwaway keypair is generated, funded from
// custody, handed to the caller's action, and swept back whether the action
// succeeded or not. The ephemeral key lives only in memory and is never
// persisted.
type EphemeralServiceImpl struct {
	treasury   ports.TreasuryService
	chain      ports.ChainClient
	audit      ports.AuditService
	vanity     *VanityGenerator
	networkFee uint64
	log        zerolog.Logger
}

// NewEphemeralService creates a new EphemeralServiceImpl.
func NewEphemeralService(
	treasury ports.TreasuryService,
	chain ports.ChainClient,
	audit ports.AuditService,
	vanity *VanityGenerator,
	networkFee uint64,
	log zerolog.Logger,
) *EphemeralServiceImpl {
	return &EphemeralServiceImpl{
		treasury:   treasury,
		chain:      chain,
		audit:      audit,
		vanity:     vanity,
		networkFee: networkFee,
		log:        log.With().Str("component", "ephemeral").Logger(),
	}
}

// RunFundedAction executes the lifecycle: budget check, fund, act, sweep.
// The sweep always runs once funding succeeded, and a sweep failure never
// masks the action's own result. When the action fails, the returned result
// is still populated alongside the error so callers can see what was
// recovered.
func (s *EphemeralServiceImpl) RunFundedAction(ctx context.Context, req ports.FundedActionRequest) (*ports.ActionResult, error) {
	if req.Action == nil {
		return nil, apperror.Validation("action is required")
	}
	if req.FundingAmount == 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	// Preflight the whole operation: funding leg plus the sweep fee.
	if d := s.treasury.CheckOperationBudget(ctx, req.FundingAmount+s.networkFee, req.Caller); !d.Allowed {
		return nil, apperror.ErrGuardrailDenied(d.Reason)
	}

	wallet, matched, err := s.generateWallet(ctx, req.UseVanity)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generating ephemeral wallet: %w", err))
	}

	sendResult, err := s.treasury.Send(ctx, domain.OperationFundEphemeral, wallet.Address(), req.FundingAmount, req.Caller)
	if err != nil {
		return nil, err
	}
	if !sendResult.Success {
		return nil, apperror.ErrGuardrailDenied(sendResult.Reason)
	}

	s.log.Info().
		Str("address", wallet.Address()).
		Uint64("amount", req.FundingAmount).
		Bool("vanity", matched).
		Str("caller", req.Caller).
		Msg("ephemeral wallet funded")

	result := &ports.ActionResult{
		WalletAddress: wallet.Address(),
		FundedAmount:  req.FundingAmount,
		State:         domain.EphemeralStateInUse,
	}

	outcome, actionErr := s.runAction(ctx, req.Action, wallet)
	result.Outcome = outcome

	// Sweep unconditionally. Residue in a throwaway wallet is lost funds.
	result.SweptAmount = s.sweep(ctx, wallet, req.Caller)
	if actionErr != nil {
		result.State = domain.EphemeralStateSweptOnFailure
		return result, actionErr
	}
	result.State = domain.EphemeralStateSwept
	return result, nil
}

func (s *EphemeralServiceImpl) generateWallet(ctx context.Context, useVanity bool) (*domain.Keypair, bool, error) {
	if useVanity && s.vanity != nil {
		return s.vanity.Generate(ctx)
	}
	kp, err := domain.NewKeypair()
	return kp, false, err
}

// runAction isolates the caller's action so a panic inside it still reaches
// the sweep.
func (s *EphemeralServiceImpl) runAction(ctx context.Context, action ports.ExternalAction, wallet *domain.Keypair) (outcome *ports.ActionOutcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Interface("panic", r).Str("address", wallet.Address()).Msg("external action panicked")
			err = apperror.InternalError(fmt.Errorf("external action panicked: %v", r))
		}
	}()
	return action(ctx, wallet)
}

// sweep returns what was recovered to custody. Failures are logged and
// audited, never propagated.
func (s *EphemeralServiceImpl) sweep(ctx context.Context, wallet *domain.Keypair, caller string) uint64 {
	custodyAddr, err := s.treasury.CustodyAddress()
	if err != nil {
		s.auditSweep(ctx, wallet.Address(), 0, nil, caller, err)
		return 0
	}

	balance, err := s.chain.GetBalance(ctx, wallet.Address())
	if err != nil {
		s.auditSweep(ctx, wallet.Address(), 0, nil, caller, err)
		return 0
	}
	if balance <= s.networkFee {
		s.log.Debug().Str("address", wallet.Address()).Uint64("balance", balance).Msg("nothing to sweep")
		return 0
	}

	sweepAmount := balance - s.networkFee
	signature, err := s.chain.SendTransfer(ctx, wallet, custodyAddr, sweepAmount)
	if err != nil {
		s.auditSweep(ctx, wallet.Address(), sweepAmount, nil, caller, apperror.ErrSweepFailed(err))
		return 0
	}

	s.auditSweep(ctx, wallet.Address(), sweepAmount, &signature, caller, nil)
	s.log.Info().
		Str("address", wallet.Address()).
		Uint64("amount", sweepAmount).
		Str("signature", signature).
		Msg("ephemeral wallet swept")
	return sweepAmount
}

func (s *EphemeralServiceImpl) auditSweep(ctx context.Context, source string, amount uint64, signature *string, caller string, err error) {
	rec := &domain.AuditRecord{
		Operation:   domain.OperationSweep,
		Amount:      amount,
		Destination: source, // the wallet being drained identifies the sweep
		TxSignature: signature,
		Caller:      caller,
		Success:     err == nil,
	}
	if err != nil {
		rec.Error = err.Error()
		s.log.Warn().Err(err).Str("address", source).Msg("sweep failed")
	}
	s.audit.Record(ctx, rec)
}
