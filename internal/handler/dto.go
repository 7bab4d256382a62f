package handler

import (
	"github.com/msomdec/roster/internal/domain"
)

// RecordDTO is the JSON representation of a record. Name and age are
// nullable columns, so both may be null.
type RecordDTO struct {
	ID   int64   `json:"id"`
	Name *string `json:"name"`
	Age  *int    `json:"age"`
}

func toRecordDTO(rec domain.Record) RecordDTO {
	return RecordDTO{
		ID:   rec.ID,
		Name: rec.Name,
		Age:  rec.Age,
	}
}

func toRecordDTOs(records []domain.Record) []RecordDTO {
	dtos := make([]RecordDTO, len(records))
	for i, rec := range records {
		dtos[i] = toRecordDTO(rec)
	}
	return dtos
}

// insertRequest is the body of POST /api/records. Pointers distinguish
// absent fields from zero values.
type insertRequest struct {
	Name *string `json:"name"`
	Age  *int    `json:"age"`
}

// messageResponse is the success envelope of the insert operation.
type messageResponse struct {
	Message string `json:"message"`
}

// schemaResponse additionally reports whether this call created the
// table or found it already present.
type schemaResponse struct {
	Message string `json:"message"`
	Created bool   `json:"created"`
}

// errorResponse is the failure envelope of every operation.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// healthResponse reports process liveness and database reachability.
type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
