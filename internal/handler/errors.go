package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/msomdec/roster/internal/domain"
)

// respondError maps a failed operation onto an HTTP error payload. The
// full error chain, driver text included, goes to the log; the response
// carries only the operation, its kind, and the stable code, so clients
// never have to parse driver messages.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	kind := domain.KindOf(err)

	slog.Error("operation failed",
		"kind", kind.String(),
		"error", err,
		"request_id", RequestIDFromContext(r.Context()),
	)

	writeError(w, statusOf(kind), kind.Code(), publicMessage(err, kind))
}

func statusOf(kind domain.Kind) int {
	switch kind {
	case domain.KindInvalidInput:
		return http.StatusBadRequest
	case domain.KindConstraint:
		return http.StatusUnprocessableEntity
	case domain.KindConnection:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage builds the client-facing message. Validation messages are
// written by us and safe to return whole; classified database errors are
// reduced to operation plus kind.
func publicMessage(err error, kind domain.Kind) string {
	if errors.Is(err, domain.ErrInvalidInput) {
		return err.Error()
	}

	var derr *domain.Error
	if errors.As(err, &derr) {
		return fmt.Sprintf("%s: %s", derr.Op, derr.Kind)
	}

	return "internal error"
}
