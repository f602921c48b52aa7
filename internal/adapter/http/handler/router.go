package handler

import (
	"gd-arcade/internal/adapter/http/middleware"
	redisStore "gd-arcade/internal/adapter/storage/redis"
	"gd-arcade/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	GameSvc        ports.GameService
	DepositSvc     ports.DepositService
	WithdrawalSvc  ports.WithdrawalService
	ReportingSvc   ports.ReportingService
	TokenSvc       ports.TokenService
	InternalKey    string
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
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

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
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/token", rl("auth_token"), authHandler.Token)
	}

	// --- JWT-authenticated routes (player API) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	walletHandler := NewWalletHandler(deps.ReportingSvc, deps.WithdrawalSvc)
	gameHandler := NewGameHandler(deps.GameSvc, deps.ReportingSvc)

	wallet := v1.Group("/wallet", jwtAuth)
	{
		wallet.GET("/balance", rl("wallet"), walletHandler.GetBalance)
		wallet.GET("/history", rl("wallet"), walletHandler.GetHistory)
		wallet.POST("/withdrawals", rl("withdrawals"), walletHandler.RequestWithdrawal)
		wallet.GET("/withdrawals/:id", rl("wallet"), walletHandler.GetWithdrawal)
	}

	games := v1.Group("/games", jwtAuth)
	{
		games.GET("/:game_type/eligibility", rl("wallet"), gameHandler.Eligibility)
		games.POST("/sessions", rl("games_start"), gameHandler.StartSession)
		games.POST("/sessions/:session_id/complete", rl("games_complete"), gameHandler.CompleteSession)
		games.GET("/stats", rl("wallet"), gameHandler.Stats)
	}

	// --- Service-key routes (deposit watcher + payout bridge) ---
	internalAuth := middleware.InternalAuth(deps.InternalKey, deps.Logger)
	internalHandler := NewInternalHandler(deps.DepositSvc, deps.WithdrawalSvc)

	internal := v1.Group("/internal", internalAuth)
	{
		internal.POST("/deposits", rl("internal"), internalHandler.RecordDeposit)
		internal.POST("/withdrawals/:id/complete", rl("internal"), internalHandler.CompleteWithdrawal)
		internal.POST("/withdrawals/:id/fail", rl("internal"), internalHandler.FailWithdrawal)
	}

	return r
}
