package domain

import "context"

// Database defines lifecycle operations for the underlying database.
// Each implementation (Postgres, SQLite) owns its own DDL and connection
// setup, ensuring the entire backend is swappable.
type Database interface {
	// EnsureSchema creates the records table if it does not exist yet.
	// It is idempotent; created reports whether this call created the
	// table or found it already present.
	EnsureSchema(ctx context.Context) (created bool, err error)
	// Records returns the repository bound to this database.
	Records() RecordRepository
	// Ping verifies the database is reachable.
	Ping(ctx context.Context) error
	Close() error
}
