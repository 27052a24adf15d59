package service

import (
	"context"
	"fmt"
	"time"

	"custody-treasury/config"
	"custody-treasury/internal/core/domain"
	"custody-treasury/internal/core/ports"
	"custody-treasury/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// PoolServiceImpl implements ports.PoolService: it keeps a pool of
// pre-funded wallets so consumers skip the funding round trip. Wallet seeds
// are encrypted at rest; the reservation discipline lives in the repository's
// conditional updates.
type PoolServiceImpl struct {
	repo     ports.PoolWalletRepository
	treasury ports.TreasuryService
	chain    ports.ChainClient
	encSvc   ports.EncryptionService
	audit    ports.AuditService
	cfg      config.PoolConfig
	fee      uint64
	log      zerolog.Logger
}

// NewPoolService creates a new PoolServiceImpl.
func NewPoolService(
	repo ports.PoolWalletRepository,
	treasury ports.TreasuryService,
	chain ports.ChainClient,
	encSvc ports.EncryptionService,
	audit ports.AuditService,
	cfg config.PoolConfig,
	networkFee uint64,
	log zerolog.Logger,
) *PoolServiceImpl {
	return &PoolServiceImpl{
		repo:     repo,
		treasury: treasury,
		chain:    chain,
		encSvc:   encSvc,
		audit:    audit,
		cfg:      cfg,
		fee:      networkFee,
		log:      log.With().Str("component", "pool").Logger(),
	}
}

// Fund creates and funds count new pool wallets. Per-unit failures are
// recorded in the report and do not undo wallets already funded. A pacing
// delay between units keeps the RPC node from rate limiting the batch.
func (s *PoolServiceImpl) Fund(ctx context.Context, count int, caller string) (*ports.FundReport, error) {
	if count <= 0 {
		return nil, apperror.Validation("count must be positive")
	}

	perUnit := s.cfg.FundingAmount + s.cfg.FeeBuffer
	estimated := uint64(count) * (perUnit + s.fee)
	if d := s.treasury.CheckOperationBudget(ctx, estimated, caller); !d.Allowed {
		return nil, apperror.ErrGuardrailDenied(d.Reason)
	}

	report := &ports.FundReport{}
	for i := 0; i < count; i++ {
		if i > 0 && s.cfg.FundDelay > 0 {
			select {
			case <-ctx.Done():
				report.Errors = append(report.Errors, ctx.Err().Error())
				return report, nil
			case <-time.After(s.cfg.FundDelay):
			}
		}

		if err := s.fundOne(ctx, perUnit, caller, report); err != nil {
			report.Failed++
			report.Errors = append(report.Errors, err.Error())
		}
	}

	s.log.Info().
		Int("funded", report.Funded).
		Int("failed", report.Failed).
		Uint64("total_spent", report.TotalSpent).
		Str("caller", caller).
		Msg("pool funding batch complete")
	return report, nil
}

func (s *PoolServiceImpl) fundOne(ctx context.Context, amount uint64, caller string, report *ports.FundReport) error {
	kp, err := domain.NewKeypair()
	if err != nil {
		return fmt.Errorf("generating wallet: %w", err)
	}

	encryptedKey, err := s.encSvc.Encrypt(kp.SeedHex())
	if err != nil {
		return fmt.Errorf("encrypting wallet key: %w", err)
	}

	sendResult, err := s.treasury.Send(ctx, domain.OperationPoolFund, kp.Address(), amount, caller)
	if err != nil {
		return fmt.Errorf("funding %s: %w", kp.Address(), err)
	}
	if !sendResult.Success {
		return fmt.Errorf("funding %s denied: %s", kp.Address(), sendResult.Reason)
	}

	now := time.Now().UTC()
	wallet := &domain.PoolWallet{
		ID:           uuid.New(),
		Address:      kp.Address(),
		EncryptedKey: encryptedKey,
		FundedAmount: amount,
		Status:       domain.PoolWalletStatusReady,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, wallet); err != nil {
		// Funds are on-chain but the row is lost; a later address-scan sweep
		// is the only recovery. Loud log so operators notice.
		s.log.Error().Err(err).
			Str("address", kp.Address()).
			Uint64("amount", amount).
			Msg("funded wallet could not be persisted")
		return fmt.Errorf("persisting %s: %w", kp.Address(), err)
	}

	report.Funded++
	report.TotalSpent += amount
	report.Addresses = append(report.Addresses, kp.Address())
	return nil
}

// Sweep drains pool wallets back to custody and resets stale reservations.
// DryRun reports what would move without touching the chain.
func (s *PoolServiceImpl) Sweep(ctx context.Context, opts ports.SweepOptions) (*ports.SweepReport, error) {
	report := &ports.SweepReport{DryRun: opts.DryRun}

	if !opts.DryRun {
		cutoff := time.Now().UTC().Add(-s.cfg.StalenessWindow)
		reset, err := s.repo.ReleaseStale(ctx, cutoff)
		if err != nil {
			return nil, apperror.ErrDatabaseError(fmt.Errorf("releasing stale reservations: %w", err))
		}
		report.ResetStale = reset
	}

	statuses := opts.Statuses
	if len(statuses) == 0 {
		statuses = []domain.PoolWalletStatus{
			domain.PoolWalletStatusReady,
			domain.PoolWalletStatusReserved,
			domain.PoolWalletStatusFailed,
		}
	}

	wallets, err := s.repo.ListByStatus(ctx, statuses...)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("listing pool wallets: %w", err))
	}

	custodyAddr, err := s.treasury.CustodyAddress()
	if err != nil {
		return nil, err
	}

	for i := range wallets {
		w := &wallets[i]
		if err := s.sweepOne(ctx, w, custodyAddr, report, opts.DryRun); err != nil {
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", w.Address, err))
		}
	}

	s.log.Info().
		Int("swept", report.Swept).
		Int("failed", report.Failed).
		Int64("reset_stale", report.ResetStale).
		Uint64("total_recovered", report.TotalRecovered).
		Bool("dry_run", report.DryRun).
		Msg("pool sweep complete")
	return report, nil
}

func (s *PoolServiceImpl) sweepOne(ctx context.Context, w *domain.PoolWallet, custodyAddr string, report *ports.SweepReport, dryRun bool) error {
	balance, err := s.chain.GetBalance(ctx, w.Address)
	if err != nil {
		return fmt.Errorf("reading balance: %w", err)
	}
	if balance <= s.fee {
		if !dryRun {
			// Nothing recoverable; retire the row so it stops surfacing.
			if err := s.repo.UpdateStatus(ctx, w.ID, domain.PoolWalletStatusUsed); err != nil {
				return fmt.Errorf("retiring empty wallet: %w", err)
			}
		}
		return nil
	}

	sweepAmount := balance - s.fee
	if dryRun {
		report.Swept++
		report.TotalRecovered += sweepAmount
		return nil
	}

	seedHex, err := s.encSvc.Decrypt(w.EncryptedKey)
	if err != nil {
		return apperror.ErrEncryptionFailure(fmt.Errorf("decrypting wallet key: %w", err))
	}
	kp, err := domain.KeypairFromSeedHex(seedHex)
	if err != nil {
		return fmt.Errorf("reconstructing keypair: %w", err)
	}

	signature, err := s.chain.SendTransfer(ctx, kp, custodyAddr, sweepAmount)
	if err != nil {
		s.auditPoolSweep(ctx, w.Address, sweepAmount, nil, err)
		if updateErr := s.repo.UpdateStatus(ctx, w.ID, domain.PoolWalletStatusFailed); updateErr != nil {
			s.log.Error().Err(updateErr).Str("address", w.Address).Msg("failed to mark wallet failed")
		}
		return apperror.ErrSweepFailed(err)
	}

	if err := s.repo.UpdateStatus(ctx, w.ID, domain.PoolWalletStatusUsed); err != nil {
		s.log.Error().Err(err).Str("address", w.Address).Msg("swept wallet could not be retired")
	}

	s.auditPoolSweep(ctx, w.Address, sweepAmount, &signature, nil)
	report.Swept++
	report.TotalRecovered += sweepAmount
	return nil
}

// Acquire claims a ready wallet and returns it with its decrypted keypair.
func (s *PoolServiceImpl) Acquire(ctx context.Context) (*domain.PoolWallet, *domain.Keypair, error) {
	wallet, err := s.repo.ClaimNext(ctx, time.Now().UTC())
	if err != nil {
		return nil, nil, apperror.ErrDatabaseError(fmt.Errorf("claiming pool wallet: %w", err))
	}
	if wallet == nil {
		return nil, nil, apperror.ErrPoolExhausted()
	}

	kp, err := s.decryptWallet(ctx, wallet)
	if err != nil {
		return nil, nil, err
	}

	s.log.Debug().Str("address", wallet.Address).Msg("pool wallet acquired")
	return wallet, kp, nil
}

// AcquireByID claims one specific wallet, for consumers that picked it out of
// a listing. A wallet that is gone or no longer ready surfaces as a conflict.
func (s *PoolServiceImpl) AcquireByID(ctx context.Context, id uuid.UUID) (*domain.PoolWallet, *domain.Keypair, error) {
	claimed, err := s.repo.Claim(ctx, id, time.Now().UTC())
	if err != nil {
		return nil, nil, apperror.ErrDatabaseError(fmt.Errorf("claiming pool wallet %s: %w", id, err))
	}
	if !claimed {
		return nil, nil, apperror.ErrDuplicateClaim()
	}

	wallet, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, apperror.ErrDatabaseError(fmt.Errorf("loading pool wallet %s: %w", id, err))
	}
	if wallet == nil {
		return nil, nil, apperror.ErrDuplicateClaim()
	}

	kp, err := s.decryptWallet(ctx, wallet)
	if err != nil {
		return nil, nil, err
	}

	s.log.Debug().Str("address", wallet.Address).Msg("pool wallet acquired by id")
	return wallet, kp, nil
}

// decryptWallet recovers the signing keypair for a claimed wallet, parking
// the row as failed when the key material is unusable.
func (s *PoolServiceImpl) decryptWallet(ctx context.Context, wallet *domain.PoolWallet) (*domain.Keypair, error) {
	seedHex, err := s.encSvc.Decrypt(wallet.EncryptedKey)
	if err != nil {
		if updateErr := s.repo.UpdateStatus(ctx, wallet.ID, domain.PoolWalletStatusFailed); updateErr != nil {
			s.log.Error().Err(updateErr).Str("address", wallet.Address).Msg("failed to park undecryptable wallet")
		}
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("decrypting wallet key: %w", err))
	}
	kp, err := domain.KeypairFromSeedHex(seedHex)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("reconstructing keypair: %w", err))
	}
	return kp, nil
}

// Release returns a reservation. failed parks the wallet for the next sweep
// instead of handing a possibly drained wallet to the next consumer.
func (s *PoolServiceImpl) Release(ctx context.Context, id uuid.UUID, failed bool) error {
	status := domain.PoolWalletStatusReady
	if failed {
		status = domain.PoolWalletStatusFailed
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("releasing pool wallet: %w", err))
	}
	return nil
}

func (s *PoolServiceImpl) auditPoolSweep(ctx context.Context, source string, amount uint64, signature *string, err error) {
	rec := &domain.AuditRecord{
		Operation:   domain.OperationPoolSweep,
		Amount:      amount,
		Destination: source,
		TxSignature: signature,
		Caller:      "pool",
		Success:     err == nil,
	}
	if err != nil {
		rec.Error = err.Error()
	}
	s.audit.Record(ctx, rec)
}
