// Package sqlite implements the record store on SQLite. It backs local
// development and tests; production deployments use the postgres package.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/msomdec/roster/internal/domain"
)

// DB is a SQLite-backed record store.
type DB struct {
	SqlDB   *sql.DB
	records *RecordRepository
}

// New opens a SQLite database at the given path and configures it for use.
// It enables WAL mode and foreign keys. Unlike connecting to a database
// server, an unusable path is a local configuration problem, so New fails
// instead of degrading.
func New(dbPath string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := sqlDB.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	// Enable foreign key enforcement.
	if _, err := sqlDB.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// SQLite supports a single writer; keep the pool at one connection.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(context.Background()); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	db := &DB{SqlDB: sqlDB}
	db.records = NewRecordRepository(db)
	return db, nil
}

// Records returns the record repository bound to this database.
func (db *DB) Records() domain.RecordRepository {
	return db.records
}

// Ping verifies the database is still usable.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.SqlDB.PingContext(ctx); err != nil {
		return classify(ctx, "ping", err, domain.KindConnection)
	}
	return nil
}

// Close releases the underlying connection.
func (db *DB) Close() error {
	return db.SqlDB.Close()
}
