package store

import "context"

// Statement is a single parameterized write operation. Values are always
// bound, never interpolated into the SQL text.
type Statement struct {
	// SQL is the statement text with ? placeholders.
	SQL string
	// Args holds the bound parameter values in placeholder order.
	Args []any
}

// Rows is the subset of a database result set that repositories consume.
type Rows interface {
	// Next advances to the next row, returning false when exhausted.
	Next() bool
	// Scan copies the current row's columns into dest.
	Scan(dest ...any) error
	// Err returns the error, if any, encountered during iteration.
	Err() error
	// Close releases the result set.
	Close() error
}

// Store defines the storage operations interface following hexagonal architecture.
// This is a port that can be implemented by different storage engines.
type Store interface {
	// Query runs a parameterized read query and returns the resulting row set.
	Query(ctx context.Context, query string, args ...any) (Rows, error)

	// Batch submits the given statements as one atomic unit: either all
	// statements are applied or none are.
	Batch(ctx context.Context, stmts []Statement) error

	// Ping checks if the storage engine is reachable.
	Ping(ctx context.Context) error

	// Close closes the storage connection.
	Close() error
}
