package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKeypair(t *testing.T) {
	kp, err := NewKeypair()
	require.NoError(t, err)

	assert.True(t, IsValidAddress(kp.Address()))
	assert.Len(t, kp.SeedHex(), 64) // 32-byte seed, hex-encoded

	// Round-trip through the seed must yield the same address.
	restored, err := KeypairFromSeedHex(kp.SeedHex())
	require.NoError(t, err)
	assert.Equal(t, kp.Address(), restored.Address())
}

func TestKeypairFromSeed_BadLength(t *testing.T) {
	_, err := KeypairFromSeed([]byte{1, 2, 3})
	assert.Error(t, err)
}

func TestKeypair_Sign(t *testing.T) {
	kp, err := NewKeypair()
	require.NoError(t, err)

	sig := kp.Sign([]byte("transfer message"))
	assert.Len(t, sig, 64)
}

func TestIsValidAddress(t *testing.T) {
	kp, err := NewKeypair()
	require.NoError(t, err)

	assert.True(t, IsValidAddress(kp.Address()))
	assert.False(t, IsValidAddress(""))
	assert.False(t, IsValidAddress("tooshort"))
	assert.False(t, IsValidAddress(strings.Repeat("0", 44))) // 0 is not a base58 digit
}

func TestSplitRevenue_ExactReconciliation(t *testing.T) {
	cases := []struct {
		gross     uint64
		percent   float64
		submitter uint64
	}{
		{100_000, 0.5, 50_000},
		{100_001, 0.5, 50_000}, // remainder stays retained
		{50_000, 0.5, 25_000},
		{30_000, 0.5, 15_000},
		{99, 0.333, 32},
		{0, 0.5, 0},
		{12345, 0, 0},
		{12345, 1, 12345},
	}
	for _, c := range cases {
		sub, ret := SplitRevenue(c.gross, c.percent)
		assert.Equal(t, c.submitter, sub, "gross=%d percent=%v", c.gross, c.percent)
		assert.Equal(t, c.gross, sub+ret, "shares must sum to gross exactly")
	}
}

func TestSplitRevenue_PercentClamped(t *testing.T) {
	sub, ret := SplitRevenue(1000, 1.7)
	assert.Equal(t, uint64(1000), sub)
	assert.Equal(t, uint64(0), ret)

	sub, ret = SplitRevenue(1000, -0.3)
	assert.Equal(t, uint64(0), sub)
	assert.Equal(t, uint64(1000), ret)
}

func TestPoolWallet_IsStale(t *testing.T) {
	now := time.Now().UTC()
	old := now.Add(-time.Hour)

	w := &PoolWallet{Status: PoolWalletStatusReserved, ReservedAt: &old}
	assert.True(t, w.IsStale(30*time.Minute, now))
	assert.False(t, w.IsStale(2*time.Hour, now))

	// Only reserved wallets can be stale.
	w.Status = PoolWalletStatusReady
	assert.False(t, w.IsStale(30*time.Minute, now))

	w.Status = PoolWalletStatusReserved
	w.ReservedAt = nil
	assert.False(t, w.IsStale(30*time.Minute, now))
}

func TestRevenueEvent_IsRetryable(t *testing.T) {
	e := &RevenueEvent{Status: RevenueStatusPending}
	assert.True(t, e.IsRetryable())
	e.Status = RevenueStatusFailed
	assert.True(t, e.IsRetryable())
	e.Status = RevenueStatusCompleted
	assert.False(t, e.IsRetryable())
	e.Status = RevenueStatusSubmitterPaid
	assert.False(t, e.IsRetryable())
}
