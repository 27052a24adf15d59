package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"custody-treasury/config"
	"custody-treasury/internal/adapter/chain"
	httpHandler "custody-treasury/internal/adapter/http/handler"
	pgStorage "custody-treasury/internal/adapter/storage/postgres"
	redisStorage "custody-treasury/internal/adapter/storage/redis"
	"custody-treasury/internal/core/ports"
	"custody-treasury/internal/service"
	"custody-treasury/pkg/logger"

	"github.com/rs/zerolog"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Custody Treasury")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	poolWalletRepo := pgStorage.NewPoolWalletRepo(pool)
	revenueRepo := pgStorage.NewRevenueEventRepo(pool)
	auditRepo := pgStorage.NewAuditRepo(pool)

	// Initialize Redis stores
	spendWindow := redisStorage.NewSpendWindowStore(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Encryption: key derived from the vault passphrase with Argon2id
	encSvc, err := service.NewAESEncryptionServiceFromVault(cfg.Vault)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}

	// Custody key material: resolved once at startup, before anything that
	// could move funds is wired up
	secretsProvider := service.NewSecretsProvider(cfg.Secrets, encSvc, log)
	if err := secretsProvider.Initialize(ctx); err != nil {
		// A missing managed secret is fatal; a misconfigured plaintext dev
		// seed is not, the treasury just refuses to sign until it is fixed.
		if cfg.Secrets.Mode == "env" {
			log.Warn().Err(err).Msg("Custody key material unavailable; treasury operations will fail until secrets.seed_hex is set")
		} else {
			log.Fatal().Err(err).Msg("Failed to resolve custody key material")
		}
	} else {
		log.Info().Msg("Custody key material resolved")
	}

	// Chain client
	chainClient := chain.NewClient(cfg.Chain, log)

	// Core services
	auditSvc := service.NewAuditService(auditRepo, log)
	guardrailSvc := service.NewGuardrailService(cfg.Guardrail, spendWindow, log)
	treasurySvc := service.NewTreasuryService(secretsProvider, chainClient, guardrailSvc, auditSvc, log)
	poolSvc := service.NewPoolService(poolWalletRepo, treasurySvc, chainClient, encSvc, auditSvc, cfg.Pool, cfg.Chain.NetworkFee, log)
	revenueSvc := service.NewRevenueService(revenueRepo, treasurySvc, cfg.Revenue, log)
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Load OpenAPI spec for Swagger UI
	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		TreasurySvc:    treasurySvc,
		PoolSvc:        poolSvc,
		RevenueSvc:     revenueSvc,
		AuditSvc:       auditSvc,
		TokenSvc:       tokenSvc,
		BootstrapKey:   cfg.JWT.BootstrapKey,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// Background maintenance loops
	workerCtx, stopWorkers := context.WithCancel(ctx)
	defer stopWorkers()
	go poolSweepLoop(workerCtx, poolSvc, cfg.Pool.SweepInterval, log)
	go revenueRetryLoop(workerCtx, revenueSvc, cfg.Revenue.RetryInterval, log)

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")
	stopWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// poolSweepLoop periodically recovers stranded pool wallet funds.
func poolSweepLoop(ctx context.Context, poolSvc ports.PoolService, interval time.Duration, log zerolog.Logger) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			report, err := poolSvc.Sweep(ctx, ports.SweepOptions{})
			if err != nil {
				log.Error().Err(err).Msg("scheduled pool sweep failed")
				continue
			}
			log.Info().
				Int("swept", report.Swept).
				Int("failed", report.Failed).
				Int64("reset_stale", report.ResetStale).
				Uint64("total_recovered", report.TotalRecovered).
				Msg("scheduled pool sweep complete")
		}
	}
}

// revenueRetryLoop periodically re-attempts parked revenue distributions.
func revenueRetryLoop(ctx context.Context, revenueSvc ports.RevenueService, interval time.Duration, log zerolog.Logger) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			completed, err := revenueSvc.RetryPending(ctx)
			if err != nil {
				log.Error().Err(err).Msg("scheduled revenue retry failed")
				continue
			}
			if completed > 0 {
				log.Info().Int("completed", completed).Msg("scheduled revenue retry complete")
			}
		}
	}
}
