package handler

import (
	"net/http"

	"github.com/msomdec/roster/internal/service"
)

// HealthHandler reports process and database health.
type HealthHandler struct {
	records *service.RecordService
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(records *service.RecordService) *HealthHandler {
	return &HealthHandler{records: records}
}

// HandleHealthz responds 200 when the database answers a ping, 503 when it
// does not. The process itself keeps serving either way.
func (h *HealthHandler) HandleHealthz(w http.ResponseWriter, r *http.Request) {
	if err := h.records.Health(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "degraded", Database: "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Database: "ok"})
}
