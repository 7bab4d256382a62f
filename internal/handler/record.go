package handler

import (
	"net/http"
	"strconv"

	"github.com/msomdec/roster/internal/service"
)

// RecordHandler handles the record API.
type RecordHandler struct {
	records *service.RecordService
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(records *service.RecordService) *RecordHandler {
	return &RecordHandler{records: records}
}

// HandleEnsureSchema creates the records table if it does not exist yet.
// Idempotent: the response distinguishes a fresh table from an existing
// one, but both are success.
func (h *RecordHandler) HandleEnsureSchema(w http.ResponseWriter, r *http.Request) {
	created, err := h.records.EnsureSchema(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	msg := "table already exists"
	if created {
		msg = "table created successfully"
	}
	writeJSON(w, http.StatusOK, schemaResponse{Message: msg, Created: created})
}

// HandleInsert stores one record. The body must carry both name and age;
// the database assigns the id.
func (h *RecordHandler) HandleInsert(w http.ResponseWriter, r *http.Request) {
	var req insertRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", "invalid JSON body")
		return
	}
	if req.Name == nil || req.Age == nil {
		writeError(w, http.StatusBadRequest, "invalid_input", "name and age are required")
		return
	}

	if _, err := h.records.Insert(r.Context(), *req.Name, *req.Age); err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{Message: "record inserted successfully"})
}

// HandleList returns records ordered by id. Optional limit and offset
// query parameters page through the table; out-of-range values are
// clamped, only non-integers are rejected.
func (h *RecordHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", "limit must be an integer")
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", "offset must be an integer")
		return
	}

	records, err := h.records.List(r.Context(), limit, offset)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecordDTOs(records))
}

// queryInt parses an optional integer query parameter, zero when absent.
func queryInt(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
