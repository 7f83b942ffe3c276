package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shipment-sync/internal/core/cache"
	"shipment-sync/internal/core/logger"
	"shipment-sync/internal/features/shipments/domain"
	"shipment-sync/internal/features/shipments/ports"

	"go.uber.org/zap"
)

// trackingURLCacheKey stores the rendered tracking-URL export.
const trackingURLCacheKey = "tracking_urls"

// Config holds the tunables of the shipment pipeline. All values that used to
// be scattered constants (date window, caps, chunk size, terminal literal)
// are explicit inputs here.
type Config struct {
	// DaysBack is how many days before today the ship-date cutoff starts.
	DaysBack int
	// URLTemplate is the carrier tracking page template with one %s placeholder.
	URLTemplate string
	// ChunkSize is the maximum number of tracking numbers per URL.
	ChunkSize int
	// TerminalStatus excludes records from URL generation. Case-sensitive.
	TerminalStatus string
	// ActiveRowCap bounds how many non-terminal records feed URL generation.
	ActiveRowCap int
	// CacheTTL is how long the tracking-URL export stays cached.
	CacheTTL time.Duration
}

// ShipmentService orchestrates ingestion, search, URL export and status
// reconciliation over the shipment store.
type ShipmentService struct {
	source ports.ShipmentSource
	repo   ports.TrackingRepository
	// cache is optional; nil disables the tracking-URL cache.
	cache  cache.Cache
	cfg    Config
	logger *zap.Logger
}

// NewShipmentService creates a new ShipmentService. cache may be nil.
func NewShipmentService(source ports.ShipmentSource, repo ports.TrackingRepository, c cache.Cache, cfg Config) *ShipmentService {
	return &ShipmentService{
		source: source,
		repo:   repo,
		cache:  c,
		cfg:    cfg,
		logger: logger.Named("shipments"),
	}
}

// Sync fetches all shipments shipped within the configured window and
// persists the new ones as pending records. Returns the number of shipments
// fetched (not the number newly inserted).
func (s *ShipmentService) Sync(ctx context.Context) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -s.cfg.DaysBack)

	shipments, err := s.source.FetchShipmentsSince(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch shipments: %w", err)
	}

	if err := s.repo.InsertNew(ctx, shipments); err != nil {
		return 0, fmt.Errorf("failed to persist shipments: %w", err)
	}

	s.invalidateTrackingURLs(ctx)

	s.logger.Info("Shipment sync completed",
		zap.Time("cutoff", cutoff),
		zap.Int("fetched", len(shipments)),
	)

	return len(shipments), nil
}

// Search returns the persisted records matching the given filters.
func (s *ShipmentService) Search(ctx context.Context, filters domain.SearchFilters) ([]domain.TrackingRecord, error) {
	records, err := s.repo.Search(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	return records, nil
}

// TrackingURLs renders batched carrier URLs for all non-terminal records.
// The rendered list is cached when a cache is configured; ingestion and
// reconciliation invalidate it.
func (s *ShipmentService) TrackingURLs(ctx context.Context) ([]string, error) {
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, trackingURLCacheKey); err == nil {
			var urls []string
			if err := json.Unmarshal(data, &urls); err == nil {
				return urls, nil
			}
			s.logger.Warn("Discarding unreadable cached tracking URLs")
		}
	}

	records, err := s.repo.ListActive(ctx, s.cfg.TerminalStatus, s.cfg.ActiveRowCap)
	if err != nil {
		return nil, fmt.Errorf("failed to list active shipments: %w", err)
	}

	numbers := make([]string, 0, len(records))
	for _, r := range records {
		numbers = append(numbers, r.TrackingNumber)
	}

	urls := domain.ChunkTrackingURLs(numbers, s.cfg.URLTemplate, s.cfg.ChunkSize)

	if s.cache != nil {
		if data, err := json.Marshal(urls); err == nil {
			if err := s.cache.Set(ctx, trackingURLCacheKey, data, s.cfg.CacheTTL); err != nil {
				s.logger.Warn("Failed to cache tracking URLs", zap.Error(err))
			}
		}
	}

	return urls, nil
}

// ReconcileStatuses applies the given status updates as one batch.
func (s *ShipmentService) ReconcileStatuses(ctx context.Context, updates []domain.StatusUpdate) error {
	if err := s.repo.UpdateStatuses(ctx, updates); err != nil {
		return fmt.Errorf("failed to update statuses: %w", err)
	}

	s.invalidateTrackingURLs(ctx)

	s.logger.Info("Status reconciliation applied", zap.Int("updates", len(updates)))
	return nil
}

// invalidateTrackingURLs drops the cached URL export after a write.
func (s *ShipmentService) invalidateTrackingURLs(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, trackingURLCacheKey); err != nil {
		s.logger.Warn("Failed to invalidate tracking URL cache", zap.Error(err))
	}
}
