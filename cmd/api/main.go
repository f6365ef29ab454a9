package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/matalogics/inventory-api/internal/api"
	"github.com/matalogics/inventory-api/internal/core/service"
	"github.com/matalogics/inventory-api/internal/infrastructure/config"
	"github.com/matalogics/inventory-api/internal/infrastructure/db/mongo"
	"github.com/matalogics/inventory-api/internal/infrastructure/db/redis"
	"github.com/matalogics/inventory-api/internal/infrastructure/queue"
	"github.com/matalogics/inventory-api/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	// --- Infrastructure ---
	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	// --- Repositories ---
	userRepo := mongo.NewUserRepository(db)
	assetRepo := mongo.NewAssetRepository(db)
	categoryRepo := mongo.NewCategoryRepository(db)
	locationRepo := mongo.NewLocationRepository(db)
	auditRepo := mongo.NewAuditRepository(db)
	revocationList := redis.NewRevocationList(rdb)

	for name, idx := range map[string]interface {
		EnsureIndexes(context.Context) error
	}{
		"users":        userRepo,
		"assets":       assetRepo,
		"categories":   categoryRepo,
		"locations":    locationRepo,
		"audit_events": auditRepo,
	} {
		if err := idx.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("index creation failed")
		}
	}

	// --- Audit pipeline ---
	auditCtx, stopAudit := context.WithCancel(ctx)
	defer stopAudit()
	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, auditRepo, log)
	dispatcher.Start(auditCtx)

	// --- Services ---
	services := api.Services{
		Auth:       service.NewAuthService(userRepo, revocationList, cfg.JWTSecret, cfg.TokenTTL, log),
		Users:      service.NewUserService(userRepo, dispatcher, log),
		Assets:     service.NewAssetService(assetRepo, categoryRepo, locationRepo, dispatcher, log),
		Categories: service.NewCategoryService(categoryRepo, assetRepo, dispatcher, log),
		Locations:  service.NewLocationService(locationRepo, assetRepo, dispatcher, log),
		Reports:    service.NewReportService(assetRepo, locationRepo),
	}

	e := api.NewRouter(services, db, rdb, log)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting inventory api")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("stopped")
}
