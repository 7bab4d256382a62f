package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Kind classifies a failed database operation. Repositories translate
// driver-specific errors into exactly one Kind so callers never have to
// inspect driver message strings.
type Kind int

const (
	KindUnknown Kind = iota
	// KindConnection covers an unreachable, refused, or lost connection.
	KindConnection
	// KindSchema covers DDL failures and statements against a missing table.
	KindSchema
	// KindConstraint covers integrity violations: length, null, type range,
	// unique, check.
	KindConstraint
	// KindQuery covers any other failed statement.
	KindQuery
	// KindInvalidInput marks input rejected before reaching the database.
	KindInvalidInput
)

func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "connection error"
	case KindSchema:
		return "schema error"
	case KindConstraint:
		return "constraint violation"
	case KindQuery:
		return "query error"
	case KindInvalidInput:
		return "invalid input"
	default:
		return "unknown error"
	}
}

// Code returns the stable machine-readable code exposed at the API boundary.
func (k Kind) Code() string {
	switch k {
	case KindConnection:
		return "connection_error"
	case KindSchema:
		return "schema_error"
	case KindConstraint:
		return "constraint_violation"
	case KindQuery:
		return "query_error"
	case KindInvalidInput:
		return "invalid_input"
	default:
		return "internal_error"
	}
}

// Error is a classified database failure. It wraps the driver error so the
// full chain stays available to errors.Is/errors.As and to logging.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

// NewError builds a classified error for the given operation.
func NewError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the Kind from anywhere in err's chain. Validation errors
// report KindInvalidInput; anything unclassified reports KindUnknown.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var derr *Error
	if errors.As(err, &derr) {
		return derr.Kind
	}
	if errors.Is(err, ErrInvalidInput) {
		return KindInvalidInput
	}
	return KindUnknown
}
