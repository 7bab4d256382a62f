package sqlite

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"

	"github.com/msomdec/roster/internal/domain"
)

// classify converts a driver error into a tagged domain.Error. The SQLite
// driver reports everything through message text, so detection is by
// substring; fallback is the kind of the operation that failed.
func classify(ctx context.Context, op string, err error, fallback domain.Kind) error {
	return domain.NewError(kindOf(ctx, err, fallback), op, err)
}

func kindOf(ctx context.Context, err error, fallback domain.Kind) domain.Kind {
	switch {
	case errors.Is(err, sql.ErrConnDone),
		errors.Is(err, driver.ErrBadConn),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return domain.KindConnection
	}

	// A deadline that fires mid-query interrupts the statement, and the
	// driver reports the interrupt as its own error without wrapping the
	// context error. Consult the operation context to tell those apart.
	if ctx.Err() != nil {
		return domain.KindConnection
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "database is closed"),
		strings.Contains(msg, "unable to open database"),
		strings.Contains(msg, "interrupted"):
		return domain.KindConnection
	case strings.Contains(msg, "no such table"):
		return domain.KindSchema
	case strings.Contains(msg, "constraint failed"),
		strings.Contains(msg, "constraint violation"),
		strings.Contains(msg, "datatype mismatch"):
		return domain.KindConstraint
	}
	return fallback
}
