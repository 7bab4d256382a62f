package sqlite

import (
	"context"

	"github.com/msomdec/roster/internal/domain"
)

// createTableSQL mirrors the Postgres schema. SQLite does not enforce
// VARCHAR lengths or integer widths, so both become CHECK constraints.
const createTableSQL = `
	CREATE TABLE IF NOT EXISTS mytable (
		id   INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT CHECK (length(name) <= 255),
		age  INTEGER CHECK (age BETWEEN -2147483648 AND 2147483647)
	)
`

// EnsureSchema creates the records table if it does not already exist.
// The DDL is idempotent; created reports which of the two outcomes
// happened so callers can tell them apart.
func (db *DB) EnsureSchema(ctx context.Context) (bool, error) {
	exists, err := db.tableExists(ctx)
	if err != nil {
		return false, classify(ctx, "ensure schema", err, domain.KindSchema)
	}

	if _, err := db.SqlDB.ExecContext(ctx, createTableSQL); err != nil {
		return false, classify(ctx, "ensure schema", err, domain.KindSchema)
	}

	return !exists, nil
}

func (db *DB) tableExists(ctx context.Context) (bool, error) {
	var count int
	err := db.SqlDB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'mytable'",
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
