package service

import (
	"context"
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"github.com/msomdec/roster/internal/domain"
)

// maxNameLen mirrors the VARCHAR(255) column. Validating here gives the
// same rejection on every backend; the column constraint stays as a
// backstop.
const maxNameLen = 255

// RecordService handles record operations against the injected store.
type RecordService struct {
	db           domain.Database
	queryTimeout time.Duration
	listMaxRows  int
}

// NewRecordService creates a new RecordService. queryTimeout bounds every
// database round-trip; listMaxRows caps a single list call.
func NewRecordService(db domain.Database, queryTimeout time.Duration, listMaxRows int) *RecordService {
	return &RecordService{
		db:           db,
		queryTimeout: queryTimeout,
		listMaxRows:  listMaxRows,
	}
}

// EnsureSchema creates the records table if needed. Safe to call any
// number of times; created reports whether this call created it.
func (s *RecordService) EnsureSchema(ctx context.Context) (bool, error) {
	opCtx, cancel := s.opCtx(ctx)
	defer cancel()

	return s.db.EnsureSchema(opCtx)
}

// Insert stores a new record and returns it with the database-assigned
// ID. The id is never supplied by the caller.
func (s *RecordService) Insert(ctx context.Context, name string, age int) (*domain.Record, error) {
	if utf8.RuneCountInString(name) > maxNameLen {
		return nil, fmt.Errorf("%w: name must be %d characters or fewer", domain.ErrInvalidInput, maxNameLen)
	}
	if age < math.MinInt32 || age > math.MaxInt32 {
		return nil, fmt.Errorf("%w: age must fit a 32-bit integer", domain.ErrInvalidInput)
	}

	opCtx, cancel := s.opCtx(ctx)
	defer cancel()

	rec := &domain.Record{Name: &name, Age: &age}
	if err := s.db.Records().Create(opCtx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// List returns records ordered by ID. A limit of zero or less, or one
// beyond the configured cap, is clamped to the cap; a negative offset is
// treated as zero.
func (s *RecordService) List(ctx context.Context, limit, offset int) ([]domain.Record, error) {
	if limit <= 0 || limit > s.listMaxRows {
		limit = s.listMaxRows
	}
	if offset < 0 {
		offset = 0
	}

	opCtx, cancel := s.opCtx(ctx)
	defer cancel()

	return s.db.Records().List(opCtx, limit, offset)
}

// Health reports whether the database is reachable.
func (s *RecordService) Health(ctx context.Context) error {
	opCtx, cancel := s.opCtx(ctx)
	defer cancel()

	return s.db.Ping(opCtx)
}

func (s *RecordService) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}
