package main

import (
	"context"
	"log"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/fastygo/newsroom/api/handler"
	"github.com/fastygo/newsroom/internal/config"
	"github.com/fastygo/newsroom/internal/infrastructure/journal"
	"github.com/fastygo/newsroom/internal/infrastructure/monitor"
	pgInfra "github.com/fastygo/newsroom/internal/infrastructure/postgres"
	redisInfra "github.com/fastygo/newsroom/internal/infrastructure/redis"
	"github.com/fastygo/newsroom/internal/middleware"
	"github.com/fastygo/newsroom/internal/router"
	"github.com/fastygo/newsroom/internal/services"
	"github.com/fastygo/newsroom/internal/services/lifecycle"
	"github.com/fastygo/newsroom/pkg/httpcontext"
	"github.com/fastygo/newsroom/pkg/logger"
	"github.com/fastygo/newsroom/repository/postgres"
	redisRepo "github.com/fastygo/newsroom/repository/redis"
	authUC "github.com/fastygo/newsroom/usecase/auth"
	reportUC "github.com/fastygo/newsroom/usecase/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := pgInfra.NewPool(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	manager.Register("postgres", func(ctx context.Context) error {
		pgInfra.Close(pool, zapLogger)
		return nil
	})

	redisClient, err := redisInfra.NewClient(appCtx, cfg.Redis)
	if err != nil {
		zapLogger.Fatal("redis connection failed", zap.Error(err))
	}
	manager.RegisterCloser("redis", redisClient)

	journalStore, err := journal.Open(cfg.Journal.Path, cfg.Journal.Bucket)
	if err != nil {
		zapLogger.Fatal("failed to open report journal", zap.Error(err))
	}
	manager.RegisterCloser("journal", journalStore)

	mon := monitor.New(monitor.Dependencies{
		Postgres: pool,
		Redis:    monitor.RedisPinger(redisClient),
		Journal:  journalStore,
	}, cfg.Monitor.Interval, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	pruner := services.NewJournalPruner(journalStore, zapLogger, services.PrunerConfig{
		Interval:  cfg.Journal.PruneInterval,
		Retention: cfg.JournalRetention(),
	})
	pruner.Start()
	manager.Register("journal_pruner", func(ctx context.Context) error {
		pruner.Stop(ctx)
		return nil
	})

	reportRepo := postgres.NewReportRepository(pool)
	revocationRepo := redisRepo.NewRevocationRepository(redisClient, cfg.JWT.RevocationTTL)

	reportUseCase := reportUC.New(reportRepo, journalStore, zapLogger)
	authUseCase := authUC.New(revocationRepo, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Auth:   apiHandler.NewAuthHandler(authUseCase, cfg.JWT.CookieName, ctxAdapter, zapLogger),
		Report: apiHandler.NewReportHandler(reportUseCase, ctxAdapter, zapLogger),
		Health: apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	sessionMiddleware := middleware.SessionAuth(middleware.SessionOptions{
		Secret:      cfg.JWT.Secret,
		Issuer:      cfg.JWT.Issuer,
		CookieName:  cfg.JWT.CookieName,
		Revocations: authUseCase,
		Logger:      zapLogger,
	})
	routerOpts := router.Options{EnableMetrics: cfg.HTTP.EnableMetrics, Logger: zapLogger}
	r := router.New(handlers, sessionMiddleware, routerOpts)

	server := &fasthttp.Server{
		Handler:      router.Handler(r, routerOpts),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Concurrency:  cfg.HTTP.MaxConn,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.ShutdownWithContext(ctx)
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
