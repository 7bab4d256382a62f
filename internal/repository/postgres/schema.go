package postgres

import (
	"context"

	"github.com/msomdec/roster/internal/domain"
)

const createTableSQL = `
	CREATE TABLE IF NOT EXISTS mytable (
		id   SERIAL PRIMARY KEY,
		name VARCHAR(255),
		age  INT
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
	// to_regclass resolves through the search path, matching where the
	// unqualified CREATE TABLE would put the table.
	var exists bool
	err := db.SqlDB.QueryRowContext(ctx,
		"SELECT to_regclass('mytable') IS NOT NULL",
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
