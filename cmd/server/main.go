package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpAdapter "github.com/juliosil99/demayoreoerp/internal/adapter/http"
	"github.com/juliosil99/demayoreoerp/internal/adapter/http/handler"
	postgresRepo "github.com/juliosil99/demayoreoerp/internal/adapter/repository/postgres"
	redisRepo "github.com/juliosil99/demayoreoerp/internal/adapter/repository/redis"
	"github.com/juliosil99/demayoreoerp/internal/infrastructure/clock"
	"github.com/juliosil99/demayoreoerp/internal/infrastructure/config"
	"github.com/juliosil99/demayoreoerp/internal/infrastructure/logger"
	"github.com/juliosil99/demayoreoerp/internal/infrastructure/postgres"
	"github.com/juliosil99/demayoreoerp/internal/infrastructure/redis"
	"github.com/juliosil99/demayoreoerp/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx := context.Background()

	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, log); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	pool, err := postgres.NewPool(ctx, postgres.PoolConfig{
		URL:         cfg.DatabaseURL,
		MaxConns:    cfg.DatabaseMaxConns,
		MinConns:    cfg.DatabaseMinConns,
		PingTimeout: cfg.DatabaseTimeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Repositories and shared infrastructure
	txManager := postgresRepo.NewTxManager(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	expenseRepo := postgresRepo.NewExpenseRepository(pool)
	paymentRepo := postgresRepo.NewPaymentRepository(pool)
	transferRepo := postgresRepo.NewTransferRepository(pool)
	invoiceRepo := postgresRepo.NewInvoiceRepository(pool)
	saleRepo := postgresRepo.NewSaleRepository(pool)
	channelRepo := postgresRepo.NewChannelRepository(pool)
	reconRepo := postgresRepo.NewReconciliationRepository(pool)
	auditRepo := postgresRepo.NewAuditRepository(pool)
	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	retrier := postgresRepo.NewRetrier(log)
	idGen := postgresRepo.NewULIDGenerator()
	clk := clock.New()

	// Use cases
	accountUC := usecase.NewAccountUseCase(accountRepo)
	balanceUC := usecase.NewBalanceUseCase(accountRepo, expenseRepo, paymentRepo, transferRepo, auditRepo, retrier, idGen, clk, log)
	statementUC := usecase.NewStatementUseCase(accountRepo, expenseRepo, paymentRepo, transferRepo, balanceUC, log)
	reconUC := usecase.NewReconciliationUseCase(txManager, expenseRepo, invoiceRepo, reconRepo, auditRepo, cache, idGen, clk, log)
	autoReconUC := usecase.NewAutoReconUseCase(channelRepo, saleRepo, paymentRepo, auditRepo, idGen, clk, log)
	auditUC := usecase.NewAuditUseCase(auditRepo)

	// Handlers and router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AccountHandler:        handler.NewAccountHandler(accountUC),
		StatementHandler:      handler.NewStatementHandler(statementUC, balanceUC),
		ReconciliationHandler: handler.NewReconciliationHandler(reconUC),
		AutoReconHandler:      handler.NewAutoReconHandler(autoReconUC),
		AuditHandler:          handler.NewAuditHandler(auditUC),
		HealthHandler:         handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore:      idempotencyStore,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
