package handler

import (
	"net/http"

	"github.com/msomdec/roster/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, records *service.RecordService) {
	healthHandler := NewHealthHandler(records)
	recordHandler := NewRecordHandler(records)

	mux.HandleFunc("GET /healthz", healthHandler.HandleHealthz)

	mux.HandleFunc("POST /api/schema", recordHandler.HandleEnsureSchema)
	mux.HandleFunc("POST /api/records", recordHandler.HandleInsert)
	mux.HandleFunc("GET /api/records", recordHandler.HandleList)
}
