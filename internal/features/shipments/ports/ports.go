package ports

import (
	"context"
	"time"

	"shipment-sync/internal/features/shipments/domain"
)

// ShipmentService defines the primary port for shipment operations.
type ShipmentService interface {
	// Sync fetches recent shipments from the carrier and persists the new
	// ones. Returns the number of shipments fetched.
	Sync(ctx context.Context) (int, error)
	// Search returns the persisted records matching the given filters.
	Search(ctx context.Context, filters domain.SearchFilters) ([]domain.TrackingRecord, error)
	// TrackingURLs renders batched carrier tracking URLs for all
	// non-terminal records.
	TrackingURLs(ctx context.Context) ([]string, error)
	// ReconcileStatuses applies the given status updates as one batch.
	ReconcileStatuses(ctx context.Context, updates []domain.StatusUpdate) error
}

// ShipmentSource defines the secondary port for the external carrier listing.
type ShipmentSource interface {
	// FetchShipmentsSince retrieves every shipment with a ship date on or
	// after cutoff, accumulated across all pages. Returns either the full
	// list or an error, never a partial list.
	FetchShipmentsSince(ctx context.Context, cutoff time.Time) ([]domain.ShipmentFetchResult, error)
}

// TrackingRepository defines the secondary port for persisted tracking records.
type TrackingRepository interface {
	// Migrate creates the backing table and indexes if missing.
	Migrate(ctx context.Context) error
	// InsertNew persists shipments as pending records in one atomic batch,
	// silently skipping tracking numbers that already exist.
	InsertNew(ctx context.Context, shipments []domain.ShipmentFetchResult) error
	// Search returns matching records ordered by creation time.
	Search(ctx context.Context, filters domain.SearchFilters) ([]domain.TrackingRecord, error)
	// UpdateStatuses applies status updates in one atomic batch, in entry
	// order. Unknown tracking numbers are silently ignored.
	UpdateStatuses(ctx context.Context, updates []domain.StatusUpdate) error
	// ListActive returns up to limit records whose status differs from
	// terminalStatus, ordered by creation time.
	ListActive(ctx context.Context, terminalStatus string, limit int) ([]domain.TrackingRecord, error)
}
