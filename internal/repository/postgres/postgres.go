// Package postgres implements the record store on PostgreSQL, the
// production backend. It rides the database/sql pool over the pgx driver.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/msomdec/roster/internal/domain"
)

// Pool bundles the connection pool limits applied to the handle. Limits
// come from configuration, not code.
type Pool struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DB is a PostgreSQL-backed record store.
type DB struct {
	SqlDB   *sql.DB
	records *RecordRepository
}

// New opens a pooled handle for the given connection string. No network
// round-trip happens here; an unreachable server surfaces on the first
// operation (or Ping), which keeps the service running in a degraded
// state instead of failing to start.
func New(dsn string, pool Pool) (*DB, error) {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)

	return NewFromDB(sqlDB), nil
}

// NewFromDB wraps an already-opened handle. Tests use it to swap in a
// mocked connection.
func NewFromDB(sqlDB *sql.DB) *DB {
	db := &DB{SqlDB: sqlDB}
	db.records = NewRecordRepository(db)
	return db
}

// Records returns the record repository bound to this database.
func (db *DB) Records() domain.RecordRepository {
	return db.records
}

// Ping verifies the server is reachable.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.SqlDB.PingContext(ctx); err != nil {
		return classify(ctx, "ping", err, domain.KindConnection)
	}
	return nil
}

// Close releases the pool and every idle connection in it.
func (db *DB) Close() error {
	return db.SqlDB.Close()
}
