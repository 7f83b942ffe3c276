package adapters

import (
	"context"
	"fmt"
	"time"

	"shipment-sync/internal/core/store"
	"shipment-sync/internal/features/shipments/domain"
)

// searchRowLimit caps the number of rows one search can return.
const searchRowLimit = 2000

// timeLayout is the persisted form of record timestamps (UTC).
const timeLayout = time.RFC3339

// SQLiteTrackingRepository implements the TrackingRepository port on top of
// the store's parameterized query and atomic batch capabilities.
type SQLiteTrackingRepository struct {
	store store.Store
}

// NewSQLiteTrackingRepository creates a new SQLiteTrackingRepository.
func NewSQLiteTrackingRepository(s store.Store) *SQLiteTrackingRepository {
	return &SQLiteTrackingRepository{store: s}
}

// Migrate creates the tracking_records table and indexes if missing.
func (r *SQLiteTrackingRepository) Migrate(ctx context.Context) error {
	stmts := []store.Statement{
		{SQL: `CREATE TABLE IF NOT EXISTS tracking_records (
			tracking_number TEXT PRIMARY KEY,
			order_number    TEXT NOT NULL DEFAULT '',
			status          TEXT NOT NULL DEFAULT 'pending',
			created_at      TEXT NOT NULL,
			updated_at      TEXT NOT NULL
		)`},
		{SQL: `CREATE INDEX IF NOT EXISTS idx_tracking_records_created_at ON tracking_records (created_at)`},
		{SQL: `CREATE INDEX IF NOT EXISTS idx_tracking_records_status ON tracking_records (status)`},
	}

	if err := r.store.Batch(ctx, stmts); err != nil {
		return fmt.Errorf("failed to migrate tracking_records: %w", err)
	}
	return nil
}

// InsertNew persists the fetched shipments as pending records in one atomic
// batch. Existing tracking numbers are left untouched (insert-or-ignore).
// An empty input submits no batch.
func (r *SQLiteTrackingRepository) InsertNew(ctx context.Context, shipments []domain.ShipmentFetchResult) error {
	if len(shipments) == 0 {
		return nil
	}

	now := time.Now().UTC().Format(timeLayout)

	stmts := make([]store.Statement, 0, len(shipments))
	for _, s := range shipments {
		stmts = append(stmts, store.Statement{
			SQL: `INSERT INTO tracking_records (tracking_number, order_number, status, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?)
				ON CONFLICT(tracking_number) DO NOTHING`,
			Args: []any{s.TrackingNumber, s.OrderNumber, domain.StatusPending, now, now},
		})
	}

	if err := r.store.Batch(ctx, stmts); err != nil {
		return fmt.Errorf("failed to insert tracking records: %w", err)
	}
	return nil
}

// Search returns the records matching the given filters, ordered by
// created_at ascending, capped at 2000 rows.
func (r *SQLiteTrackingRepository) Search(ctx context.Context, filters domain.SearchFilters) ([]domain.TrackingRecord, error) {
	query, args := buildSearchQuery(filters, searchRowLimit)

	rows, err := r.store.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search tracking records: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// UpdateStatuses applies the updates as one atomic batch in entry order, so
// the last entry for a duplicated tracking number wins. Updates for unknown
// tracking numbers affect zero rows and are not an error.
func (r *SQLiteTrackingRepository) UpdateStatuses(ctx context.Context, updates []domain.StatusUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	now := time.Now().UTC().Format(timeLayout)

	stmts := make([]store.Statement, 0, len(updates))
	for _, u := range updates {
		stmts = append(stmts, store.Statement{
			SQL:  `UPDATE tracking_records SET status = ?, updated_at = ? WHERE tracking_number = ?`,
			Args: []any{u.Status, now, u.TrackingNumber},
		})
	}

	if err := r.store.Batch(ctx, stmts); err != nil {
		return fmt.Errorf("failed to update tracking statuses: %w", err)
	}
	return nil
}

// ListActive returns up to limit records whose status is not terminalStatus,
// in creation order. The terminal comparison is case-sensitive.
func (r *SQLiteTrackingRepository) ListActive(ctx context.Context, terminalStatus string, limit int) ([]domain.TrackingRecord, error) {
	rows, err := r.store.Query(ctx, `SELECT tracking_number, order_number, status, created_at, updated_at
		FROM tracking_records
		WHERE status <> ?
		ORDER BY created_at ASC
		LIMIT ?`, terminalStatus, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list active tracking records: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// scanRecords drains a row set into domain records.
func scanRecords(rows store.Rows) ([]domain.TrackingRecord, error) {
	records := make([]domain.TrackingRecord, 0)

	for rows.Next() {
		var rec domain.TrackingRecord
		var createdAt, updatedAt string

		if err := rows.Scan(&rec.TrackingNumber, &rec.OrderNumber, &rec.Status, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tracking record: %w", err)
		}

		var err error
		if rec.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		if rec.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
			return nil, fmt.Errorf("failed to parse updated_at: %w", err)
		}

		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tracking records: %w", err)
	}

	return records, nil
}
