package integration

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"custody-treasury/internal/core/domain"
	"custody-treasury/internal/core/ports"
	"custody-treasury/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolAcquire_ConcurrentSingleWinner(t *testing.T) {
	s := newStack(t, defaultGuardrailConfig())
	ctx := context.Background()

	// Fund 5 wallets through the real pipeline.
	report, err := s.pool.Fund(ctx, 5, "ops-alice")
	require.NoError(t, err)
	require.Equal(t, 5, report.Funded)

	// 20 consumers race for 5 wallets.
	const consumers = 20
	var wg sync.WaitGroup
	results := make(chan *domain.PoolWallet, consumers)
	exhausted := make(chan struct{}, consumers)

	for i := 0; i < consumers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			wallet, kp, err := s.pool.Acquire(ctx)
			if err != nil {
				var appErr *apperror.AppError
				if errors.As(err, &appErr) && appErr.Code == "POOL_002" {
					exhausted <- struct{}{}
					return
				}
				t.Errorf("unexpected acquire error: %v", err)
				return
			}
			// The decrypted key must match the persisted address.
			if kp.Address() != wallet.Address {
				t.Errorf("keypair address %s != wallet address %s", kp.Address(), wallet.Address)
			}
			results <- wallet
		}()
	}
	wg.Wait()
	close(results)
	close(exhausted)

	// Exactly 5 winners, each with a distinct wallet; the rest saw exhaustion.
	seen := make(map[uuid.UUID]bool)
	for w := range results {
		assert.False(t, seen[w.ID], "wallet %s claimed twice", w.ID)
		seen[w.ID] = true
	}
	assert.Len(t, seen, 5)
	assert.Len(t, exhausted, consumers-5)

	// No wallet is still ready.
	ready, err := s.poolRepo.ListByStatus(ctx, domain.PoolWalletStatusReady)
	require.NoError(t, err)
	assert.Empty(t, ready)
}

func TestPoolAcquireByID_LosingRacerConflicts(t *testing.T) {
	s := newStack(t, defaultGuardrailConfig())
	ctx := context.Background()

	report, err := s.pool.Fund(ctx, 1, "ops-alice")
	require.NoError(t, err)
	require.Equal(t, 1, report.Funded)

	ready, err := s.poolRepo.ListByStatus(ctx, domain.PoolWalletStatusReady)
	require.NoError(t, err)
	require.Len(t, ready, 1)
	id := ready[0].ID

	const racers = 8
	var wg sync.WaitGroup
	var winners, conflicts int32
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			wallet, _, err := s.pool.AcquireByID(ctx, id)
			if err != nil {
				var appErr *apperror.AppError
				if errors.As(err, &appErr) && appErr.Code == "POOL_001" {
					atomic.AddInt32(&conflicts, 1)
					return
				}
				t.Errorf("unexpected acquire error: %v", err)
				return
			}
			if wallet.ID != id {
				t.Errorf("claimed wallet %s, wanted %s", wallet.ID, id)
			}
			atomic.AddInt32(&winners, 1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), winners)
	assert.Equal(t, int32(racers-1), conflicts)
}

func TestPoolLifecycle_FundSweepConservation(t *testing.T) {
	s := newStack(t, defaultGuardrailConfig())
	ctx := context.Background()
	before := s.chain.balanceOf(s.custodyAddr)

	report, err := s.pool.Fund(ctx, 3, "ops-alice")
	require.NoError(t, err)
	require.Equal(t, 3, report.Funded)

	perUnit := uint64(10_000_000 + 10_000)
	afterFund := s.chain.balanceOf(s.custodyAddr)
	assert.Equal(t, before-3*(perUnit+networkFee), afterFund)

	sweep, err := s.pool.Sweep(ctx, ports.SweepOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3, sweep.Swept)
	assert.Equal(t, 3*(perUnit-networkFee), sweep.TotalRecovered)

	// Each wallet costs exactly two network fees end to end.
	afterSweep := s.chain.balanceOf(s.custodyAddr)
	assert.Equal(t, before-3*2*networkFee, afterSweep)

	// Swept wallets are retired, not re-claimable.
	used, err := s.poolRepo.ListByStatus(ctx, domain.PoolWalletStatusUsed)
	require.NoError(t, err)
	assert.Len(t, used, 3)
	_, _, err = s.pool.Acquire(ctx)
	require.Error(t, err)
}

func TestPoolStaleReservation_ResetExactlyOnce(t *testing.T) {
	s := newStack(t, defaultGuardrailConfig())
	ctx := context.Background()

	report, err := s.pool.Fund(ctx, 1, "ops-alice")
	require.NoError(t, err)
	require.Equal(t, 1, report.Funded)

	wallet, _, err := s.pool.Acquire(ctx)
	require.NoError(t, err)

	// Only failed wallets are listed, so these sweeps exercise nothing but
	// the stale-reservation pass.
	failedOnly := ports.SweepOptions{Statuses: []domain.PoolWalletStatus{domain.PoolWalletStatusFailed}}

	// A fresh reservation is not stale.
	sweep, err := s.pool.Sweep(ctx, failedOnly)
	require.NoError(t, err)
	assert.Equal(t, int64(0), sweep.ResetStale)

	// Age the claim past the 30 minute staleness window.
	s.poolRepo.backdateReservation(wallet.ID, time.Now().UTC().Add(-time.Hour))

	sweep, err = s.pool.Sweep(ctx, failedOnly)
	require.NoError(t, err)
	assert.Equal(t, int64(1), sweep.ResetStale)

	ready, err := s.poolRepo.ListByStatus(ctx, domain.PoolWalletStatusReady)
	require.NoError(t, err)
	require.Len(t, ready, 1)
	assert.Equal(t, wallet.ID, ready[0].ID)
	assert.Nil(t, ready[0].ReservedAt)

	// The reset does not repeat while the wallet sits ready.
	sweep, err = s.pool.Sweep(ctx, failedOnly)
	require.NoError(t, err)
	assert.Equal(t, int64(0), sweep.ResetStale)

	// And the wallet is claimable again.
	reclaimed, _, err := s.pool.Acquire(ctx)
	require.NoError(t, err)
	assert.Equal(t, wallet.ID, reclaimed.ID)
}

func TestEphemeralLifecycle_Conservation(t *testing.T) {
	s := newStack(t, defaultGuardrailConfig())
	ctx := context.Background()
	before := s.chain.balanceOf(s.custodyAddr)

	var walletAddr string
	result, err := s.ephemeral.RunFundedAction(ctx, ports.FundedActionRequest{
		FundingAmount: 2_000_000,
		Caller:        "ops-alice",
		Action: func(ctx context.Context, wallet *domain.Keypair) (*ports.ActionOutcome, error) {
			walletAddr = wallet.Address()
			return &ports.ActionOutcome{Detail: "noop"}, nil
		},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.EphemeralStateSwept, result.State)
	assert.Equal(t, walletAddr, result.WalletAddress)
	assert.Equal(t, uint64(2_000_000), result.FundedAmount)
	assert.Equal(t, uint64(2_000_000-networkFee), result.SweptAmount)

	// The throwaway wallet is fully drained; custody paid only two fees.
	assert.Equal(t, uint64(0), s.chain.balanceOf(walletAddr))
	assert.Equal(t, before-2*networkFee, s.chain.balanceOf(s.custodyAddr))

	// Both legs audited.
	funds, err := s.audit.ListByOperation(ctx, domain.OperationFundEphemeral, 10)
	require.NoError(t, err)
	assert.Len(t, funds, 1)
	sweeps, err := s.audit.ListByOperation(ctx, domain.OperationSweep, 10)
	require.NoError(t, err)
	assert.Len(t, sweeps, 1)
}

func TestEphemeralLifecycle_ActionFailureStillRecovers(t *testing.T) {
	s := newStack(t, defaultGuardrailConfig())
	ctx := context.Background()
	before := s.chain.balanceOf(s.custodyAddr)

	result, err := s.ephemeral.RunFundedAction(ctx, ports.FundedActionRequest{
		FundingAmount: 2_000_000,
		Caller:        "ops-alice",
		Action: func(ctx context.Context, wallet *domain.Keypair) (*ports.ActionOutcome, error) {
			return nil, assert.AnError
		},
	})
	require.Error(t, err)
	require.NotNil(t, result, "failed action must still report what was recovered")
	assert.Equal(t, domain.EphemeralStateSweptOnFailure, result.State)

	// The funds came back despite the failure.
	assert.Equal(t, uint64(0), s.chain.balanceOf(result.WalletAddress))
	assert.Equal(t, before-2*networkFee, s.chain.balanceOf(s.custodyAddr))
}

func TestConcurrentSends_WindowAccounting(t *testing.T) {
	cfg := defaultGuardrailConfig()
	s := newStack(t, cfg)
	ctx := context.Background()
	dest := "11111111111111111111111111111111"

	const senders = 10
	var wg sync.WaitGroup
	for i := 0; i < senders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := s.treasury.Send(ctx, domain.OperationSend, dest, 1_000, "ops-alice")
			if err != nil || !result.Success {
				t.Errorf("send failed: %v %+v", err, result)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(senders*1_000), s.chain.balanceOf(dest))
	assert.Len(t, s.auditRepo.all(), senders)
}
