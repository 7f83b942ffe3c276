package adapters

import (
	"context"
	"testing"

	"shipment-sync/internal/core/store"
	"shipment-sync/internal/features/shipments/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *SQLiteTrackingRepository {
	t.Helper()

	adapter, err := store.NewSQLiteAdapter(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	repo := NewSQLiteTrackingRepository(adapter)
	require.NoError(t, repo.Migrate(context.Background()))

	return repo
}

func seedShipments(t *testing.T, repo *SQLiteTrackingRepository, shipments ...domain.ShipmentFetchResult) {
	t.Helper()
	require.NoError(t, repo.InsertNew(context.Background(), shipments))
}

// TestInsertNew_Idempotent verifies that re-running the same ingestion batch
// leaves the store unchanged.
func TestInsertNew_Idempotent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	shipments := []domain.ShipmentFetchResult{
		{TrackingNumber: "TN1", OrderNumber: "ORD1"},
		{TrackingNumber: "TN2", OrderNumber: "ORD2"},
	}

	require.NoError(t, repo.InsertNew(ctx, shipments))

	// Mutate a status so we can prove the second run preserves it.
	require.NoError(t, repo.UpdateStatuses(ctx, []domain.StatusUpdate{
		{TrackingNumber: "TN1", Status: "in_transit"},
	}))

	require.NoError(t, repo.InsertNew(ctx, shipments))

	records, err := repo.Search(ctx, domain.SearchFilters{})
	require.NoError(t, err)
	require.Len(t, records, 2)

	byNumber := map[string]domain.TrackingRecord{}
	for _, r := range records {
		byNumber[r.TrackingNumber] = r
	}
	assert.Equal(t, "in_transit", byNumber["TN1"].Status)
	assert.Equal(t, domain.StatusPending, byNumber["TN2"].Status)
	assert.Equal(t, "ORD1", byNumber["TN1"].OrderNumber)
}

// TestInsertNew_Empty verifies that an empty ingestion batch is a no-op.
func TestInsertNew_Empty(t *testing.T) {
	repo := newTestRepository(t)

	require.NoError(t, repo.InsertNew(context.Background(), nil))

	records, err := repo.Search(context.Background(), domain.SearchFilters{})
	require.NoError(t, err)
	assert.Empty(t, records)
}

// TestInsertNew_DefaultStatus verifies new records start as pending.
func TestInsertNew_DefaultStatus(t *testing.T) {
	repo := newTestRepository(t)

	seedShipments(t, repo, domain.ShipmentFetchResult{TrackingNumber: "TN1", OrderNumber: "ORD1"})

	records, err := repo.Search(context.Background(), domain.SearchFilters{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.StatusPending, records[0].Status)
	assert.False(t, records[0].CreatedAt.IsZero())
	assert.Equal(t, records[0].CreatedAt, records[0].UpdatedAt)
}

// TestSearch_StatusNegation reproduces the canonical negation case: status
// "!delivered" returns everything except delivered rows.
func TestSearch_StatusNegation(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	seedShipments(t, repo,
		domain.ShipmentFetchResult{TrackingNumber: "TN1"},
		domain.ShipmentFetchResult{TrackingNumber: "TN2"},
		domain.ShipmentFetchResult{TrackingNumber: "TN3"},
		domain.ShipmentFetchResult{TrackingNumber: "TN4"},
	)
	require.NoError(t, repo.UpdateStatuses(ctx, []domain.StatusUpdate{
		{TrackingNumber: "TN2", Status: "in_transit"},
		{TrackingNumber: "TN3", Status: "delivered"},
		{TrackingNumber: "TN4", Status: "out_for_delivery"},
	}))

	records, err := repo.Search(ctx, domain.SearchFilters{Status: "!delivered"})
	require.NoError(t, err)

	var numbers []string
	for _, r := range records {
		numbers = append(numbers, r.TrackingNumber)
	}
	assert.ElementsMatch(t, []string{"TN1", "TN2", "TN4"}, numbers)
}

// TestSearch_SubstringFilters verifies contains matching on identifiers.
func TestSearch_SubstringFilters(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	seedShipments(t, repo,
		domain.ShipmentFetchResult{TrackingNumber: "ABC123", OrderNumber: "ORD-1"},
		domain.ShipmentFetchResult{TrackingNumber: "XYZ123", OrderNumber: "ORD-2"},
		domain.ShipmentFetchResult{TrackingNumber: "ABC999", OrderNumber: "OTHER"},
	)

	records, err := repo.Search(ctx, domain.SearchFilters{TrackingNumber: "ABC"})
	require.NoError(t, err)
	assert.Len(t, records, 2)

	records, err = repo.Search(ctx, domain.SearchFilters{TrackingNumber: "!ABC"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "XYZ123", records[0].TrackingNumber)

	records, err = repo.Search(ctx, domain.SearchFilters{TrackingNumber: "ABC", OrderNumber: "ORD"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "ABC123", records[0].TrackingNumber)
}

// TestSearch_DateBounds verifies inclusive created_at bounds.
func TestSearch_DateBounds(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	seedShipments(t, repo, domain.ShipmentFetchResult{TrackingNumber: "TN1"})

	// Everything was created "now", so a generous window matches and a
	// future lower bound excludes.
	records, err := repo.Search(ctx, domain.SearchFilters{CreatedAfter: "2000-01-01"})
	require.NoError(t, err)
	assert.Len(t, records, 1)

	records, err = repo.Search(ctx, domain.SearchFilters{CreatedBefore: "2000-01-01"})
	require.NoError(t, err)
	assert.Empty(t, records)

	records, err = repo.Search(ctx, domain.SearchFilters{CreatedAfter: "2999-01-01"})
	require.NoError(t, err)
	assert.Empty(t, records)
}

// TestUpdateStatuses_LastWriteWins verifies duplicate entries in one batch
// apply in array order.
func TestUpdateStatuses_LastWriteWins(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	seedShipments(t, repo, domain.ShipmentFetchResult{TrackingNumber: "TN1"})

	require.NoError(t, repo.UpdateStatuses(ctx, []domain.StatusUpdate{
		{TrackingNumber: "TN1", Status: "delivered"},
		{TrackingNumber: "TN1", Status: "in_transit"},
	}))

	records, err := repo.Search(ctx, domain.SearchFilters{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "in_transit", records[0].Status)
}

// TestUpdateStatuses_UnknownTrackingNumber verifies silent no-op semantics.
func TestUpdateStatuses_UnknownTrackingNumber(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	seedShipments(t, repo, domain.ShipmentFetchResult{TrackingNumber: "TN1"})

	err := repo.UpdateStatuses(ctx, []domain.StatusUpdate{
		{TrackingNumber: "MISSING", Status: "delivered"},
		{TrackingNumber: "TN1", Status: "in_transit"},
	})
	require.NoError(t, err)

	records, err := repo.Search(ctx, domain.SearchFilters{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "in_transit", records[0].Status)
}

// TestListActive verifies terminal-status exclusion and case sensitivity.
func TestListActive(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	seedShipments(t, repo,
		domain.ShipmentFetchResult{TrackingNumber: "TN1"},
		domain.ShipmentFetchResult{TrackingNumber: "TN2"},
		domain.ShipmentFetchResult{TrackingNumber: "TN3"},
	)
	require.NoError(t, repo.UpdateStatuses(ctx, []domain.StatusUpdate{
		{TrackingNumber: "TN1", Status: "delivered"},
		{TrackingNumber: "TN2", Status: "Delivered"},
	}))

	records, err := repo.ListActive(ctx, "delivered", 2000)
	require.NoError(t, err)

	var numbers []string
	for _, r := range records {
		numbers = append(numbers, r.TrackingNumber)
	}
	// "Delivered" differs in case from the terminal literal and stays active.
	assert.ElementsMatch(t, []string{"TN2", "TN3"}, numbers)
}

// TestListActive_Limit verifies the row cap.
func TestListActive_Limit(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	seedShipments(t, repo,
		domain.ShipmentFetchResult{TrackingNumber: "TN1"},
		domain.ShipmentFetchResult{TrackingNumber: "TN2"},
		domain.ShipmentFetchResult{TrackingNumber: "TN3"},
	)

	records, err := repo.ListActive(ctx, "delivered", 2)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
