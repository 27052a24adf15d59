package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"custody-treasury/config"
	"custody-treasury/internal/core/ports/mocks"
	"custody-treasury/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const (
	guardDest   = "9xQeWvG816bUx46QbAaagNkYp9mcNkAxGv3hBXacpump"
	guardCaller = "scheduler"
)

func guardrailConfig() config.GuardrailConfig {
	return config.GuardrailConfig{
		MaxPerCall:     1_000_000,
		WindowMax:      10_000_000,
		WindowDuration: time.Hour,
	}
}

func TestGuardrail_CheckSend_Allowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	window := mocks.NewMockSpendWindowStore(ctrl)
	svc := NewGuardrailService(guardrailConfig(), window, zerolog.Nop())

	window.EXPECT().Current(gomock.Any(), guardCaller, time.Hour).Return(uint64(0), nil)

	d := svc.CheckSend(context.Background(), guardDest, 500_000, guardCaller)
	assert.True(t, d.Allowed)
	assert.Empty(t, d.Reason)
}

func TestGuardrail_CheckSend_PerCallLimit(t *testing.T) {
	svc := NewGuardrailService(guardrailConfig(), nil, zerolog.Nop())

	d := svc.CheckSend(context.Background(), guardDest, 1_000_001, guardCaller)
	assert.False(t, d.Allowed)
	assert.Equal(t, apperror.ReasonExceedsPerCallLimit, d.Reason)
}

func TestGuardrail_CheckSend_CallerOverride(t *testing.T) {
	cfg := guardrailConfig()
	cfg.CallerOverrides = map[string]uint64{"batch": 5_000_000}
	svc := NewGuardrailService(cfg, nil, zerolog.Nop())

	d := svc.CheckSend(context.Background(), guardDest, 4_000_000, "batch")
	assert.True(t, d.Allowed)

	// Default ceiling still applies to everyone else.
	d = svc.CheckSend(context.Background(), guardDest, 4_000_000, guardCaller)
	assert.False(t, d.Allowed)
	assert.Equal(t, apperror.ReasonExceedsPerCallLimit, d.Reason)
}

func TestGuardrail_CheckSend_WindowLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	window := mocks.NewMockSpendWindowStore(ctrl)
	svc := NewGuardrailService(guardrailConfig(), window, zerolog.Nop())

	window.EXPECT().Current(gomock.Any(), guardCaller, time.Hour).Return(uint64(9_900_000), nil)

	d := svc.CheckSend(context.Background(), guardDest, 200_000, guardCaller)
	assert.False(t, d.Allowed)
	assert.Equal(t, apperror.ReasonExceedsWindowLimit, d.Reason)
}

func TestGuardrail_CheckSend_DenyIsSideEffectFree(t *testing.T) {
	ctrl := gomock.NewController(t)
	window := mocks.NewMockSpendWindowStore(ctrl)
	svc := NewGuardrailService(guardrailConfig(), window, zerolog.Nop())

	// Per-call denial: the window store must not even be read.
	d := svc.CheckSend(context.Background(), guardDest, 2_000_000, guardCaller)
	assert.False(t, d.Allowed)
}

func TestGuardrail_CheckSend_DenyList(t *testing.T) {
	cfg := guardrailConfig()
	cfg.DeniedAddresses = []string{guardDest}
	svc := NewGuardrailService(cfg, nil, zerolog.Nop())

	d := svc.CheckSend(context.Background(), guardDest, 100, guardCaller)
	assert.False(t, d.Allowed)
	assert.Equal(t, apperror.ReasonDenyListed, d.Reason)
}

func TestGuardrail_CheckSend_AllowList(t *testing.T) {
	cfg := guardrailConfig()
	cfg.AllowedAddresses = []string{guardDest}
	svc := NewGuardrailService(cfg, nil, zerolog.Nop())

	d := svc.CheckSend(context.Background(), guardDest, 100, guardCaller)
	assert.True(t, d.Allowed)

	d = svc.CheckSend(context.Background(), "someOtherAddress1111111111111111", 100, guardCaller)
	assert.False(t, d.Allowed)
	assert.Equal(t, apperror.ReasonNotInAllowList, d.Reason)
}

func TestGuardrail_CheckSend_DenyOverridesAllow(t *testing.T) {
	cfg := guardrailConfig()
	cfg.AllowedAddresses = []string{guardDest}
	cfg.DeniedAddresses = []string{guardDest}
	svc := NewGuardrailService(cfg, nil, zerolog.Nop())

	d := svc.CheckSend(context.Background(), guardDest, 100, guardCaller)
	assert.False(t, d.Allowed)
	assert.Equal(t, apperror.ReasonDenyListed, d.Reason)
}

func TestGuardrail_CheckSend_WindowStoreFailsClosed(t *testing.T) {
	ctrl := gomock.NewController(t)
	window := mocks.NewMockSpendWindowStore(ctrl)
	svc := NewGuardrailService(guardrailConfig(), window, zerolog.Nop())

	window.EXPECT().Current(gomock.Any(), guardCaller, time.Hour).
		Return(uint64(0), errors.New("redis down"))

	d := svc.CheckSend(context.Background(), guardDest, 100, guardCaller)
	assert.False(t, d.Allowed)
}

func TestGuardrail_CheckOperationBudget(t *testing.T) {
	ctrl := gomock.NewController(t)
	window := mocks.NewMockSpendWindowStore(ctrl)
	svc := NewGuardrailService(guardrailConfig(), window, zerolog.Nop())

	window.EXPECT().Current(gomock.Any(), guardCaller, time.Hour).Return(uint64(2_000_000), nil)
	d := svc.CheckOperationBudget(context.Background(), 5_000_000, guardCaller)
	assert.True(t, d.Allowed)

	window.EXPECT().Current(gomock.Any(), guardCaller, time.Hour).Return(uint64(2_000_000), nil)
	d = svc.CheckOperationBudget(context.Background(), 9_000_000, guardCaller)
	assert.False(t, d.Allowed)
	assert.Equal(t, apperror.ReasonExceedsWindowLimit, d.Reason)
}

func TestGuardrail_RecordSpend(t *testing.T) {
	ctrl := gomock.NewController(t)
	window := mocks.NewMockSpendWindowStore(ctrl)
	svc := NewGuardrailService(guardrailConfig(), window, zerolog.Nop())

	window.EXPECT().Add(gomock.Any(), guardCaller, uint64(250_000), time.Hour).
		Return(uint64(250_000), nil)

	svc.RecordSpend(context.Background(), 250_000, guardCaller)
}

func TestGuardrail_MemoryWindowFallback(t *testing.T) {
	svc := NewGuardrailService(guardrailConfig(), nil, zerolog.Nop())
	ctx := context.Background()

	svc.RecordSpend(ctx, 9_500_000, guardCaller)

	d := svc.CheckSend(ctx, guardDest, 600_000, guardCaller)
	assert.False(t, d.Allowed)
	assert.Equal(t, apperror.ReasonExceedsWindowLimit, d.Reason)

	d = svc.CheckSend(ctx, guardDest, 400_000, guardCaller)
	assert.True(t, d.Allowed)
}
