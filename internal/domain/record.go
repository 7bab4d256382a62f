package domain

import "context"

// Record represents a row of the managed table. Name and Age are pointers
// because the columns are nullable: rows written by other tools may hold
// NULLs, and listing must round-trip them.
type Record struct {
	ID   int64
	Name *string
	Age  *int
}

// RecordRepository defines persistence operations for records.
type RecordRepository interface {
	// Create inserts the record and fills in the database-assigned ID.
	// Callers never supply an ID.
	Create(ctx context.Context, rec *Record) error
	// List returns up to limit records ordered by ID, skipping offset rows.
	// An empty table yields an empty slice, not an error.
	List(ctx context.Context, limit, offset int) ([]Record, error)
}
