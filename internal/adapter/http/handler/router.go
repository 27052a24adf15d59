package handler

import (
	"custody-treasury/internal/adapter/http/middleware"
	redisStore "custody-treasury/internal/adapter/storage/redis"
	"custody-treasury/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	TreasurySvc    ports.TreasuryService
	PoolSvc        ports.PoolService
	RevenueSvc     ports.RevenueService
	AuditSvc       ports.AuditService
	TokenSvc       ports.TokenService
	BootstrapKey   string                     // empty = token minting disabled
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(64 << 10))

	// Health check (deep, verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Swagger documentation
	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.TokenSvc, deps.BootstrapKey)
	auth := v1.Group("/auth")
	{
		auth.POST("/token", rl("auth_token"), authHandler.Token)
	}

	// --- JWT-authenticated routes (operator API) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	treasuryHandler := NewTreasuryHandler(deps.TreasurySvc)
	poolHandler := NewPoolHandler(deps.PoolSvc)
	revenueHandler := NewRevenueHandler(deps.RevenueSvc)
	auditHandler := NewAuditHandler(deps.AuditSvc)

	treasury := v1.Group("/treasury", jwtAuth)
	{
		treasury.POST("/send", rl("treasury_send"), treasuryHandler.Send)
		treasury.GET("/balance", rl("treasury_read"), treasuryHandler.GetBalance)
		treasury.GET("/address", rl("treasury_read"), treasuryHandler.GetAddress)
	}

	pool := v1.Group("/pool", jwtAuth)
	{
		pool.POST("/fund", rl("pool_ops"), poolHandler.Fund)
		pool.POST("/sweep", rl("pool_ops"), poolHandler.Sweep)
	}

	revenue := v1.Group("/revenue", jwtAuth)
	{
		revenue.POST("", rl("revenue"), revenueHandler.Record)
		revenue.POST("/retry", rl("revenue"), revenueHandler.RetryPending)
		revenue.POST("/:id/retry", rl("revenue"), revenueHandler.Retry)
	}

	audit := v1.Group("/audit", jwtAuth)
	{
		audit.GET("", rl("audit"), auditHandler.List)
	}

	return r
}
