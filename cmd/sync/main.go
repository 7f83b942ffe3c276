package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"shipment-sync/internal/core/config"
	"shipment-sync/internal/core/httpclient"
	"shipment-sync/internal/core/logger"
	"shipment-sync/internal/core/proxy"
	"shipment-sync/internal/core/store"
	"shipment-sync/internal/features/shipments/adapters"
	"shipment-sync/internal/features/shipments/service"
)

// syncResult is the JSON document printed to stdout after a run.
type syncResult struct {
	Fetched    int    `json:"fetched"`
	DurationMS int64  `json:"duration_ms"`
	Database   string `json:"database"`
}

// One-shot ingestion runner. Fetches the configured shipment window from the
// carrier API, persists new tracking records and prints a JSON summary.
// Intended for cron or manual backfills; the API binary runs the same sync on
// its own schedule.
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	db, err := store.NewSQLiteAdapter(cfg.Database.Path)
	if err != nil {
		fmt.Printf(`{"error": %q}`+"\n", err.Error())
		os.Exit(1)
	}
	defer db.Close()

	repo := adapters.NewSQLiteTrackingRepository(db)
	if err := repo.Migrate(ctx); err != nil {
		fmt.Printf(`{"error": %q}`+"\n", err.Error())
		os.Exit(1)
	}

	client := httpclient.NewClientWithProxy(30*time.Second, proxy.Settings{
		Enabled:  cfg.Proxy.Enabled,
		Hostname: cfg.Proxy.Hostname,
		Port:     cfg.Proxy.Port,
		Username: cfg.Proxy.Username,
		Password: cfg.Proxy.Password,
	})
	carrier := adapters.NewCarrierAPIAdapter(cfg.Carrier, client)

	svc := service.NewShipmentService(carrier, repo, nil, service.Config{
		DaysBack:       cfg.Sync.DaysBack,
		URLTemplate:    cfg.Tracking.URLTemplate,
		ChunkSize:      cfg.Tracking.ChunkSize,
		TerminalStatus: cfg.Tracking.TerminalStatus,
		ActiveRowCap:   cfg.Tracking.ActiveRowCap,
	})

	start := time.Now()
	fetched, err := svc.Sync(ctx)
	if err != nil {
		fmt.Printf(`{"error": %q}`+"\n", err.Error())
		os.Exit(1)
	}

	out, _ := json.Marshal(syncResult{
		Fetched:    fetched,
		DurationMS: time.Since(start).Milliseconds(),
		Database:   cfg.Database.Path,
	})
	fmt.Println(string(out))
}
