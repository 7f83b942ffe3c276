package adapters

import (
	"strings"

	"shipment-sync/internal/features/shipments/domain"
)

// negationPrefix inverts a string filter's comparison when it leads the raw value.
const negationPrefix = "!"

// splitNegation strips a leading negation marker from a raw filter value.
func splitNegation(raw string) (value string, negated bool) {
	if strings.HasPrefix(raw, negationPrefix) {
		return strings.TrimPrefix(raw, negationPrefix), true
	}
	return raw, false
}

// buildSearchQuery translates the filters into a parameterized SELECT over
// tracking_records. Every user-supplied value is bound through a placeholder,
// never concatenated into the query text. Filters compose conjunctively;
// empty filters contribute no clause. Results are ordered by created_at
// ascending and capped at limit.
func buildSearchQuery(f domain.SearchFilters, limit int) (string, []any) {
	var sb strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return "?" }

	sb.WriteString(`SELECT tracking_number, order_number, status, created_at, updated_at
FROM tracking_records
WHERE 1=1`)

	if f.TrackingNumber != "" {
		value, negated := splitNegation(f.TrackingNumber)
		op := "LIKE"
		if negated {
			op = "NOT LIKE"
		}
		sb.WriteString("\n  AND tracking_number " + op + " '%' || " + arg(value) + " || '%'")
	}

	if f.OrderNumber != "" {
		value, negated := splitNegation(f.OrderNumber)
		op := "LIKE"
		if negated {
			op = "NOT LIKE"
		}
		sb.WriteString("\n  AND order_number " + op + " '%' || " + arg(value) + " || '%'")
	}

	if f.Status != "" {
		value, negated := splitNegation(f.Status)
		op := "="
		if negated {
			op = "<>"
		}
		sb.WriteString("\n  AND status " + op + " " + arg(value))
	}

	// Date bounds are inclusive instants. Malformed inputs fall through to
	// the store's own datetime() interpretation.
	if f.CreatedAfter != "" {
		sb.WriteString("\n  AND datetime(created_at) >= datetime(" + arg(f.CreatedAfter) + ")")
	}

	if f.CreatedBefore != "" {
		sb.WriteString("\n  AND datetime(created_at) <= datetime(" + arg(f.CreatedBefore) + ")")
	}

	sb.WriteString("\nORDER BY created_at ASC\nLIMIT " + arg(limit))

	return sb.String(), args
}
