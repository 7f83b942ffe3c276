package adapters

import (
	"strings"
	"testing"

	"shipment-sync/internal/features/shipments/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSplitNegation verifies negation marker parsing.
func TestSplitNegation(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		value   string
		negated bool
	}{
		{"Plain", "delivered", "delivered", false},
		{"Negated", "!delivered", "delivered", true},
		{"OnlyMarker", "!", "", true},
		{"MarkerInside", "de!livered", "de!livered", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, negated := splitNegation(tt.raw)
			assert.Equal(t, tt.value, value)
			assert.Equal(t, tt.negated, negated)
		})
	}
}

// TestBuildSearchQuery_NoFilters verifies the unfiltered query shape.
func TestBuildSearchQuery_NoFilters(t *testing.T) {
	query, args := buildSearchQuery(domain.SearchFilters{}, 2000)

	assert.NotContains(t, query, "AND")
	assert.Contains(t, query, "ORDER BY created_at ASC")
	assert.Contains(t, query, "LIMIT ?")
	assert.Equal(t, []any{2000}, args)
}

// TestBuildSearchQuery_AllFilters verifies clause and argument ordering.
func TestBuildSearchQuery_AllFilters(t *testing.T) {
	filters := domain.SearchFilters{
		TrackingNumber: "TN",
		OrderNumber:    "ORD",
		Status:         "pending",
		CreatedAfter:   "2024-01-01",
		CreatedBefore:  "2024-02-01",
	}

	query, args := buildSearchQuery(filters, 2000)

	assert.Contains(t, query, "tracking_number LIKE '%' || ? || '%'")
	assert.Contains(t, query, "order_number LIKE '%' || ? || '%'")
	assert.Contains(t, query, "status = ?")
	assert.Contains(t, query, "datetime(created_at) >= datetime(?)")
	assert.Contains(t, query, "datetime(created_at) <= datetime(?)")
	assert.Equal(t, []any{"TN", "ORD", "pending", "2024-01-01", "2024-02-01", 2000}, args)
}

// TestBuildSearchQuery_Negation verifies operator inversion and marker stripping.
func TestBuildSearchQuery_Negation(t *testing.T) {
	filters := domain.SearchFilters{
		TrackingNumber: "!TN",
		Status:         "!delivered",
	}

	query, args := buildSearchQuery(filters, 2000)

	assert.Contains(t, query, "tracking_number NOT LIKE '%' || ? || '%'")
	assert.Contains(t, query, "status <> ?")
	assert.Equal(t, []any{"TN", "delivered", 2000}, args)
}

// TestBuildSearchQuery_NeverInterpolates verifies that raw values are bound,
// not embedded in the query text, even for hostile input.
func TestBuildSearchQuery_NeverInterpolates(t *testing.T) {
	hostile := "'; DROP TABLE tracking_records; --"
	filters := domain.SearchFilters{
		TrackingNumber: hostile,
		OrderNumber:    hostile,
		Status:         hostile,
		CreatedAfter:   hostile,
		CreatedBefore:  hostile,
	}

	query, args := buildSearchQuery(filters, 2000)

	assert.NotContains(t, query, "DROP TABLE")
	require.Len(t, args, 6)
	for _, a := range args[:5] {
		assert.Equal(t, hostile, a)
	}
	// One placeholder per bound value.
	assert.Equal(t, len(args), strings.Count(query, "?"))
}
