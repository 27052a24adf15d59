package service

import (
	"context"
	"testing"

	"custody-treasury/internal/core/domain"
	"custody-treasury/internal/core/ports"
	"custody-treasury/internal/core/ports/mocks"
	"custody-treasury/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type treasuryMocks struct {
	secrets   *mocks.MockSecretsProvider
	chain     *mocks.MockChainClient
	guardrail *mocks.MockGuardrail
	audit     *mocks.MockAuditService
}

func newTreasuryService(t *testing.T) (*TreasuryServiceImpl, treasuryMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := treasuryMocks{
		secrets:   mocks.NewMockSecretsProvider(ctrl),
		chain:     mocks.NewMockChainClient(ctrl),
		guardrail: mocks.NewMockGuardrail(ctrl),
		audit:     mocks.NewMockAuditService(ctrl),
	}
	svc := NewTreasuryService(m.secrets, m.chain, m.guardrail, m.audit, zerolog.Nop())
	return svc, m
}

func testCustodyKeypair(t *testing.T) *domain.Keypair {
	t.Helper()
	kp, err := domain.KeypairFromSeedHex(testSeedHex)
	require.NoError(t, err)
	return kp
}

const treasuryDest = "9xQeWvG816bUx46QbAaagNkYp9mcNkAxGv3hBXacpump"

func TestTreasury_Send_Success(t *testing.T) {
	svc, m := newTreasuryService(t)
	custody := testCustodyKeypair(t)

	m.chain.EXPECT().IsValidAddress(treasuryDest).Return(true)
	m.guardrail.EXPECT().CheckSend(gomock.Any(), treasuryDest, uint64(100_000), "scheduler").
		Return(ports.Decision{Allowed: true})
	m.secrets.EXPECT().Get().Return(custody, nil)
	m.chain.EXPECT().SendTransfer(gomock.Any(), custody, treasuryDest, uint64(100_000)).
		Return("sig_abc", nil)
	m.guardrail.EXPECT().RecordSpend(gomock.Any(), uint64(100_000), "scheduler")
	m.audit.EXPECT().Record(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, rec *domain.AuditRecord) {
			assert.Equal(t, domain.OperationSend, rec.Operation)
			assert.True(t, rec.Success)
			require.NotNil(t, rec.TxSignature)
			assert.Equal(t, "sig_abc", *rec.TxSignature)
		})

	result, err := svc.Send(context.Background(), domain.OperationSend, treasuryDest, 100_000, "scheduler")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "sig_abc", result.Signature)
}

func TestTreasury_Send_GuardrailDenied(t *testing.T) {
	svc, m := newTreasuryService(t)

	m.chain.EXPECT().IsValidAddress(treasuryDest).Return(true)
	m.guardrail.EXPECT().CheckSend(gomock.Any(), treasuryDest, uint64(100_000), "scheduler").
		Return(ports.Decision{Allowed: false, Reason: apperror.ReasonExceedsPerCallLimit})
	// Denial is audited; no chain call, no spend recorded.
	m.audit.EXPECT().Record(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, rec *domain.AuditRecord) {
			assert.False(t, rec.Success)
			assert.Equal(t, apperror.ReasonExceedsPerCallLimit, rec.Error)
		})

	result, err := svc.Send(context.Background(), domain.OperationSend, treasuryDest, 100_000, "scheduler")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, apperror.ReasonExceedsPerCallLimit, result.Reason)
	assert.Empty(t, result.Signature)
}

func TestTreasury_Send_ChainFailure(t *testing.T) {
	svc, m := newTreasuryService(t)
	custody := testCustodyKeypair(t)

	m.chain.EXPECT().IsValidAddress(treasuryDest).Return(true)
	m.guardrail.EXPECT().CheckSend(gomock.Any(), treasuryDest, uint64(50_000), "ops").
		Return(ports.Decision{Allowed: true})
	m.secrets.EXPECT().Get().Return(custody, nil)
	m.chain.EXPECT().SendTransfer(gomock.Any(), custody, treasuryDest, uint64(50_000)).
		Return("", apperror.ErrChainRejected(assert.AnError))
	// Failure is audited; the window must not grow.
	m.audit.EXPECT().Record(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, rec *domain.AuditRecord) {
			assert.False(t, rec.Success)
			assert.Nil(t, rec.TxSignature)
		})

	_, err := svc.Send(context.Background(), domain.OperationSend, treasuryDest, 50_000, "ops")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CHAIN_002", appErr.Code)
}

func TestTreasury_Send_InvalidAddress(t *testing.T) {
	svc, m := newTreasuryService(t)

	m.chain.EXPECT().IsValidAddress("bogus").Return(false)
	m.audit.EXPECT().Record(gomock.Any(), gomock.Any())

	_, err := svc.Send(context.Background(), domain.OperationSend, "bogus", 100, "ops")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CHAIN_003", appErr.Code)
}

func TestTreasury_Send_ZeroAmount(t *testing.T) {
	svc, _ := newTreasuryService(t)

	_, err := svc.Send(context.Background(), domain.OperationSend, treasuryDest, 0, "ops")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PAY_003", appErr.Code)
}

func TestTreasury_GetBalance(t *testing.T) {
	svc, m := newTreasuryService(t)
	custody := testCustodyKeypair(t)

	m.secrets.EXPECT().Get().Return(custody, nil)
	m.chain.EXPECT().GetBalance(gomock.Any(), custody.Address()).Return(uint64(42_000_000), nil)
	m.audit.EXPECT().Record(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, rec *domain.AuditRecord) {
			assert.Equal(t, domain.OperationBalanceRead, rec.Operation)
			assert.True(t, rec.Success)
		})

	balance, err := svc.GetBalance(context.Background(), "ops")
	require.NoError(t, err)
	assert.Equal(t, uint64(42_000_000), balance)
}

func TestTreasury_CustodyAddress(t *testing.T) {
	svc, m := newTreasuryService(t)
	custody := testCustodyKeypair(t)

	m.secrets.EXPECT().Get().Return(custody, nil)

	addr, err := svc.CustodyAddress()
	require.NoError(t, err)
	assert.Equal(t, custody.Address(), addr)
}

func TestTreasury_CheckOperationBudget(t *testing.T) {
	svc, m := newTreasuryService(t)

	m.guardrail.EXPECT().CheckOperationBudget(gomock.Any(), uint64(5_000_000), "pool").
		Return(ports.Decision{Allowed: true})

	d := svc.CheckOperationBudget(context.Background(), 5_000_000, "pool")
	assert.True(t, d.Allowed)
}
