package main

import (
	"context"
	"log"
	"time"

	"shipment-sync/internal/core/cache"
	"shipment-sync/internal/core/config"
	"shipment-sync/internal/core/httpclient"
	"shipment-sync/internal/core/logger"
	"shipment-sync/internal/core/proxy"
	"shipment-sync/internal/core/scheduler"
	"shipment-sync/internal/core/server"
	"shipment-sync/internal/core/store"
	"shipment-sync/internal/features/shipments/adapters"
	"shipment-sync/internal/features/shipments/handler"
	"shipment-sync/internal/features/shipments/service"

	"go.uber.org/zap"
)

// @title Shipment Sync API
// @version 1.0
// @description This API ingests carrier shipments, exposes tracking record search, batched tracking URLs and bulk status updates.
// @contact.name API Support
// @contact.email support@shipmentsync.com
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	ctx := context.Background()

	// Initialize storage and run migrations
	db, err := store.NewSQLiteAdapter(cfg.Database.Path)
	if err != nil {
		l.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(ctx); err != nil {
		l.Fatal("Database Health Check Failed", zap.Error(err))
	}

	repo := adapters.NewSQLiteTrackingRepository(db)
	if err := repo.Migrate(ctx); err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err))
	}
	l.Info("Database ready", zap.String("path", cfg.Database.Path))

	// Initialize Carrier Adapter and run Health Check
	client := httpclient.NewClientWithProxy(30*time.Second, proxy.Settings{
		Enabled:  cfg.Proxy.Enabled,
		Hostname: cfg.Proxy.Hostname,
		Port:     cfg.Proxy.Port,
		Username: cfg.Proxy.Username,
		Password: cfg.Proxy.Password,
	})
	carrier := adapters.NewCarrierAPIAdapter(cfg.Carrier, client)
	if err := carrier.HealthCheck(ctx); err != nil {
		l.Fatal("Carrier Health Check Failed", zap.Error(err))
	}
	l.Info("Carrier connection verified")

	// Initialize optional Redis cache
	var trackingCache cache.Cache
	if cfg.Cache.RedisURL != "" {
		redisCache, err := cache.NewRedisAdapter(cfg.Cache.RedisURL)
		if err != nil {
			l.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisCache.Close()

		if err := redisCache.Ping(ctx); err != nil {
			l.Fatal("Redis Health Check Failed", zap.Error(err))
		}
		l.Info("Redis connection verified")
		trackingCache = redisCache
	}

	// Initialize Shipment Service & Handler
	svc := service.NewShipmentService(carrier, repo, trackingCache, service.Config{
		DaysBack:       cfg.Sync.DaysBack,
		URLTemplate:    cfg.Tracking.URLTemplate,
		ChunkSize:      cfg.Tracking.ChunkSize,
		TerminalStatus: cfg.Tracking.TerminalStatus,
		ActiveRowCap:   cfg.Tracking.ActiveRowCap,
		CacheTTL:       time.Duration(cfg.Cache.TrackingURLTTLSeconds) * time.Second,
	})
	hdl := handler.NewShipmentHandler(svc)

	// Start the scheduled ingestion loop
	sched := scheduler.New("shipment-sync",
		time.Duration(cfg.Sync.IntervalMinutes)*time.Minute,
		func(ctx context.Context) error {
			_, err := svc.Sync(ctx)
			return err
		})
	sched.Start(ctx)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Get("/shipments/search", hdl.Search)
	srv.App.Get("/shipments/tracking-urls", hdl.TrackingURLs)
	srv.App.Post("/shipments/status", hdl.UpdateStatuses)
	srv.App.Post("/shipments/sync", hdl.Sync)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
