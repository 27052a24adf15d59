package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"custody-treasury/config"
	httpHandler "custody-treasury/internal/adapter/http/handler"
	redisStorage "custody-treasury/internal/adapter/storage/redis"
	"custody-treasury/internal/core/domain"
	"custody-treasury/internal/core/ports"
	"custody-treasury/internal/service"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	custodySeedHex = "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"
	networkFee     = uint64(5_000)
	bootstrapKey   = "integration-bootstrap-key"
)

// stack wires real services against in-memory repos, a fake chain ledger,
// and miniredis-backed stores.
type stack struct {
	chain       *fakeChainClient
	auditRepo   *inMemoryAuditRepo
	poolRepo    *inMemoryPoolWalletRepo
	revenueRepo *inMemoryRevenueRepo
	treasury    *service.TreasuryServiceImpl
	pool        *service.PoolServiceImpl
	revenue     *service.RevenueServiceImpl
	ephemeral   *service.EphemeralServiceImpl
	audit       *service.AuditServiceImpl
	token       *service.JWTTokenService
	custodyAddr string
}

func defaultGuardrailConfig() config.GuardrailConfig {
	return config.GuardrailConfig{
		MaxPerCall:     1_000_000_000,
		WindowMax:      10_000_000_000,
		WindowDuration: time.Hour,
	}
}

func newStack(t *testing.T, guardrailCfg config.GuardrailConfig) *stack {
	t.Helper()
	log := zerolog.Nop()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	spendWindow := redisStorage.NewSpendWindowStore(rdb)

	encSvc, err := service.NewAESEncryptionService(strings.Repeat("ab", 32))
	require.NoError(t, err)

	secrets := service.NewSecretsProvider(config.SecretsConfig{
		Mode:    "env",
		SeedHex: custodySeedHex,
	}, encSvc, log)
	require.NoError(t, secrets.Initialize(context.Background()))

	custodyKp, err := domain.KeypairFromSeedHex(custodySeedHex)
	require.NoError(t, err)

	chainClient := newFakeChainClient(networkFee)
	chainClient.setBalance(custodyKp.Address(), 100_000_000_000)

	auditRepo := newInMemoryAuditRepo()
	auditSvc := service.NewAuditService(auditRepo, log)
	guardrail := service.NewGuardrailService(guardrailCfg, spendWindow, log)
	treasury := service.NewTreasuryService(secrets, chainClient, guardrail, auditSvc, log)

	poolRepo := newInMemoryPoolWalletRepo()
	poolSvc := service.NewPoolService(poolRepo, treasury, chainClient, encSvc, auditSvc, config.PoolConfig{
		FundingAmount:   10_000_000,
		FeeBuffer:       10_000,
		StalenessWindow: 30 * time.Minute,
	}, networkFee, log)

	revenueRepo := newInMemoryRevenueRepo()
	revenueSvc := service.NewRevenueService(revenueRepo, treasury, config.RevenueConfig{
		SharePercent:     0.5,
		MinDustThreshold: 10_000,
		SubmitterAddress: "11111111111111111111111111111111",
	}, log)

	vanity := service.NewVanityGenerator(config.VanityConfig{MaxWorkers: 2, Timeout: time.Second}, log)
	ephemeralSvc := service.NewEphemeralService(treasury, chainClient, auditSvc, vanity, networkFee, log)

	tokenSvc := service.NewJWTTokenService("integration-jwt-secret", time.Hour, "custody-treasury-test")

	return &stack{
		chain:       chainClient,
		auditRepo:   auditRepo,
		poolRepo:    poolRepo,
		revenueRepo: revenueRepo,
		treasury:    treasury,
		pool:        poolSvc,
		revenue:     revenueSvc,
		ephemeral:   ephemeralSvc,
		audit:       auditSvc,
		token:       tokenSvc,
		custodyAddr: custodyKp.Address(),
	}
}

func (s *stack) router() http.Handler {
	return httpHandler.SetupRouter(httpHandler.RouterDeps{
		TreasurySvc:  s.treasury,
		PoolSvc:      s.pool,
		RevenueSvc:   s.revenue,
		AuditSvc:     s.audit,
		TokenSvc:     s.token,
		BootstrapKey: bootstrapKey,
		Logger:       zerolog.Nop(),
	})
}

func doJSON(t *testing.T, r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func mintToken(t *testing.T, r http.Handler, operator string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/token", "", map[string]string{
		"operator":      operator,
		"bootstrap_key": bootstrapKey,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

func TestEndToEnd_TokenAndSend(t *testing.T) {
	s := newStack(t, defaultGuardrailConfig())
	r := s.router()
	token := mintToken(t, r, "ops-alice")

	dest := "11111111111111111111111111111111"
	w := doJSON(t, r, http.MethodPost, "/api/v1/treasury/send", token, map[string]any{
		"destination": dest,
		"amount":      1_000_000,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "sig_1")

	// Funds moved on the ledger
	assert.Equal(t, uint64(1_000_000), s.chain.balanceOf(dest))
	assert.Equal(t, uint64(100_000_000_000-1_000_000-networkFee), s.chain.balanceOf(s.custodyAddr))

	// Exactly one audit record, tagged with the operator
	records := s.auditRepo.all()
	require.Len(t, records, 1)
	assert.Equal(t, domain.OperationSend, records[0].Operation)
	assert.Equal(t, "ops-alice", records[0].Caller)
	assert.True(t, records[0].Success)
	require.NotNil(t, records[0].TxSignature)
}

func TestEndToEnd_WindowCeilingDenied(t *testing.T) {
	cfg := defaultGuardrailConfig()
	cfg.WindowMax = 100_000
	s := newStack(t, cfg)
	r := s.router()
	token := mintToken(t, r, "ops-alice")

	dest := "11111111111111111111111111111111"
	w := doJSON(t, r, http.MethodPost, "/api/v1/treasury/send", token, map[string]any{
		"destination": dest, "amount": 80_000,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// 80k spent out of a 100k window: another 50k must be denied.
	w = doJSON(t, r, http.MethodPost, "/api/v1/treasury/send", token, map[string]any{
		"destination": dest, "amount": 50_000,
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "GUARD_001")

	// The denial never reached the chain.
	assert.Equal(t, 1, s.chain.sendCount())

	// Both attempts audited: one success, one denial.
	records := s.auditRepo.all()
	require.Len(t, records, 2)
	assert.True(t, records[0].Success)
	assert.False(t, records[1].Success)
	assert.Contains(t, records[1].Error, "window")
}

func TestEndToEnd_DenyListBlocksBeforeChain(t *testing.T) {
	blocked := "11111111111111111111111111111111"
	cfg := defaultGuardrailConfig()
	cfg.DeniedAddresses = []string{blocked}
	s := newStack(t, cfg)
	r := s.router()
	token := mintToken(t, r, "ops-alice")

	w := doJSON(t, r, http.MethodPost, "/api/v1/treasury/send", token, map[string]any{
		"destination": blocked, "amount": 1_000,
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, 0, s.chain.sendCount())
}

func TestEndToEnd_AuditTrailQuery(t *testing.T) {
	s := newStack(t, defaultGuardrailConfig())
	r := s.router()
	token := mintToken(t, r, "ops-alice")

	dest := "11111111111111111111111111111111"
	for i := 0; i < 3; i++ {
		w := doJSON(t, r, http.MethodPost, "/api/v1/treasury/send", token, map[string]any{
			"destination": dest, "amount": 10_000,
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/v1/audit?caller=ops-alice", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Count int `json:"count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Data.Count)
}

func TestRevenueDistribution_Accumulation(t *testing.T) {
	s := newStack(t, defaultGuardrailConfig())
	ctx := context.Background()
	submitter := "11111111111111111111111111111111"

	grosses := []uint64{100_000, 250_000, 33_333}
	var wantSubmitter uint64
	for _, gross := range grosses {
		result, err := s.revenue.RecordAndDistribute(ctx, "entity-42", gross)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, gross, result.SubmitterShare+result.RetainedShare)
		wantSubmitter += result.SubmitterShare
	}

	// Submitter payouts landed on the ledger.
	assert.Equal(t, wantSubmitter, s.chain.balanceOf(submitter))

	// Each event completed and the ledger kept every row.
	events, err := s.revenueRepo.ListByEntity(ctx, "entity-42")
	require.NoError(t, err)
	require.Len(t, events, len(grosses))
	for _, e := range events {
		assert.Equal(t, domain.RevenueStatusCompleted, e.Status)
	}

	// Every payout went through the facade and was audited.
	payouts, err := s.audit.ListByOperation(ctx, domain.OperationRevenuePayout, 10)
	require.NoError(t, err)
	assert.Len(t, payouts, len(grosses))
}

func TestRevenueDistribution_ParkAndRetry(t *testing.T) {
	s := newStack(t, defaultGuardrailConfig())
	ctx := context.Background()

	// First payout attempt fails at the chain; the event parks as failed.
	s.chain.failNext = assert.AnError
	result, err := s.revenue.RecordAndDistribute(ctx, "entity-42", 100_000)
	require.NoError(t, err)
	require.False(t, result.Success)

	event, err := s.revenueRepo.GetByID(ctx, result.EventID)
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, domain.RevenueStatusFailed, event.Status)

	// Retry drives the same row to completion without recomputing the split.
	completed, err := s.revenue.RetryPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, completed)

	event, err = s.revenueRepo.GetByID(ctx, result.EventID)
	require.NoError(t, err)
	assert.Equal(t, domain.RevenueStatusCompleted, event.Status)
	assert.Equal(t, uint64(50_000), event.SubmitterShare)
}

var _ ports.PoolWalletRepository = (*inMemoryPoolWalletRepo)(nil)
var _ ports.RevenueEventRepository = (*inMemoryRevenueRepo)(nil)
var _ ports.AuditRepository = (*inMemoryAuditRepo)(nil)
var _ ports.ChainClient = (*fakeChainClient)(nil)
