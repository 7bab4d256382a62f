package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/msomdec/roster/internal/domain"
)

// classify converts a driver error into a tagged domain.Error. PostgreSQL
// reports failures with SQLSTATE codes, so classification keys off the
// code class; fallback is the kind of the operation that failed.
func classify(ctx context.Context, op string, err error, fallback domain.Kind) error {
	return domain.NewError(kindOf(ctx, err, fallback), op, err)
}

func kindOf(ctx context.Context, err error, fallback domain.Kind) domain.Kind {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return kindOfCode(pgErr.Code, fallback)
	}

	var netErr net.Error
	switch {
	case errors.As(err, &netErr),
		errors.Is(err, sql.ErrConnDone),
		errors.Is(err, driver.ErrBadConn),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return domain.KindConnection
	}

	// A deadline that fires mid-query surfaces as the driver's own
	// cancellation error, which does not wrap the context error. Only the
	// operation context tells those apart from a genuine query failure.
	if ctx.Err() != nil {
		return domain.KindConnection
	}

	// Dial failures can surface without a typed error, e.g. when the
	// driver wraps them in plain text.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "failed to connect"),
		strings.Contains(msg, "database is closed"):
		return domain.KindConnection
	}

	return fallback
}

// kindOfCode maps a SQLSTATE to a Kind. Class 08 is a connection
// exception; 28 and 3D mean the server rejected the session; 53 and 57
// are resource exhaustion and operator shutdown; 22 and 23 are data and
// integrity violations; 42P01/42P07 are missing and duplicate tables.
func kindOfCode(code string, fallback domain.Kind) domain.Kind {
	switch code {
	case "42P01", "42P07":
		return domain.KindSchema
	}
	if len(code) < 2 {
		return fallback
	}
	switch code[:2] {
	case "08", "28", "3D", "53", "57":
		return domain.KindConnection
	case "22", "23":
		return domain.KindConstraint
	}
	return fallback
}
