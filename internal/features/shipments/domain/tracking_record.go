package domain

import "time"

// StatusPending is the sentinel status assigned to every newly ingested record.
const StatusPending = "pending"

// TrackingRecord represents one persisted shipment, keyed by tracking number.
type TrackingRecord struct {
	// TrackingNumber is the globally unique carrier tracking identifier.
	TrackingNumber string `json:"tracking_number"`
	// OrderNumber is the originating order reference, set at creation.
	OrderNumber string `json:"order_number"`
	// Status is the latest carrier status (e.g., pending, in_transit, delivered).
	Status string `json:"status"`
	// CreatedAt is when the record was first ingested. Never updated.
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is refreshed on every status change.
	UpdatedAt time.Time `json:"updated_at"`
}

// ShipmentFetchResult is one shipment entry retrieved from the carrier API.
type ShipmentFetchResult struct {
	// TrackingNumber is the carrier tracking identifier.
	TrackingNumber string
	// OrderNumber is the order reference attached to the shipment.
	OrderNumber string
}

// StatusUpdate is one inbound status reconciliation entry.
type StatusUpdate struct {
	// TrackingNumber identifies the record to update.
	TrackingNumber string `json:"tracking_number"`
	// Status is the new status value. Applied unconditionally.
	Status string `json:"status"`
}

// SearchFilters holds the raw optional search parameters of one request.
// String filters may carry a leading "!" to invert the comparison.
// Absent (empty) fields contribute no predicate.
type SearchFilters struct {
	// TrackingNumber filters by substring match on tracking_number.
	TrackingNumber string
	// OrderNumber filters by substring match on order_number.
	OrderNumber string
	// Status filters by exact match on status.
	Status string
	// CreatedAfter is the inclusive lower bound on created_at. No negation.
	CreatedAfter string
	// CreatedBefore is the inclusive upper bound on created_at. No negation.
	CreatedBefore string
}
