package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gd-arcade/config"
	httpHandler "gd-arcade/internal/adapter/http/handler"
	"gd-arcade/internal/adapter/payout"
	pgStorage "gd-arcade/internal/adapter/storage/postgres"
	redisStorage "gd-arcade/internal/adapter/storage/redis"
	"gd-arcade/internal/core/domain"
	"gd-arcade/internal/core/ports"
	"gd-arcade/internal/service"
	"gd-arcade/pkg/logger"
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
		Msg("Starting G$ Arcade")

	ctx := context.Background()

	// Apply schema migrations
	if err := pgStorage.Migrate(cfg.Database.DSN(), log); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

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
	balanceRepo := pgStorage.NewBalanceRepo(pool)
	depositRepo := pgStorage.NewDepositRepo(pool)
	sessionRepo := pgStorage.NewSessionRepo(pool)
	limitRepo := pgStorage.NewDailyLimitRepo(pool)
	withdrawalRepo := pgStorage.NewWithdrawalRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	depositCache := redisStorage.NewDepositCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize bridge client
	payoutClient := payout.NewClient(cfg.Payout, log)

	// Game rules from config
	rules := ports.GameRuleSet{
		domain.GameTypeCrash: {
			MaxPlaysPerDay: cfg.Games.CrashGame.MaxPlaysPerDay,
			MinBet:         domain.GDollars(cfg.Games.CrashGame.MinBet),
			MaxBet:         domain.GDollars(cfg.Games.CrashGame.MaxBet),
			MinMultiplier:  cfg.Games.CrashGame.MinMultiplier,
			MaxMultiplier:  cfg.Games.CrashGame.MaxMultiplier,
		},
		domain.GameTypeCoinFlip: {
			MaxPlaysPerDay: cfg.Games.CoinFlip.MaxPlaysPerDay,
			MinBet:         domain.GDollars(cfg.Games.CoinFlip.MinBet),
			MaxBet:         domain.GDollars(cfg.Games.CoinFlip.MaxBet),
			WinMultiplier:  cfg.Games.CoinFlip.WinMultiplier,
		},
	}

	// Initialize services
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	authSvc := service.NewAuthService(tokenSvc, log)
	gameSvc := service.NewGameService(sessionRepo, balanceRepo, limitRepo, transactor, rules, log)
	depositSvc := service.NewDepositService(
		depositRepo, balanceRepo, depositCache, transactor,
		domain.GDollars(cfg.Deposits.Minimum), domain.GDollars(cfg.Deposits.DailyMax),
		log,
	)
	withdrawalSvc := service.NewWithdrawalService(
		withdrawalRepo, balanceRepo, payoutClient, transactor,
		domain.GDollars(cfg.Withdrawals.Minimum), domain.GDollars(cfg.Withdrawals.Maximum),
		log,
	)
	reportingSvc := service.NewReportingService(
		balanceRepo, depositRepo, sessionRepo, withdrawalRepo,
		domain.GDollars(cfg.Withdrawals.Minimum),
		log,
	)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		GameSvc:        gameSvc,
		DepositSvc:     depositSvc,
		WithdrawalSvc:  withdrawalSvc,
		ReportingSvc:   reportingSvc,
		TokenSvc:       tokenSvc,
		InternalKey:    cfg.Internal.ServiceKey,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
