package sqlite

import (
	"context"
	"database/sql"

	"github.com/msomdec/roster/internal/domain"
)

// RecordRepository implements domain.RecordRepository using SQLite.
type RecordRepository struct {
	db *sql.DB
}

// NewRecordRepository creates a new SQLite-backed RecordRepository.
func NewRecordRepository(db *DB) *RecordRepository {
	return &RecordRepository{db: db.SqlDB}
}

func (r *RecordRepository) Create(ctx context.Context, rec *domain.Record) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO mytable (name, age) VALUES (?, ?)",
		nullString(rec.Name), nullInt(rec.Age),
	)
	if err != nil {
		return classify(ctx, "insert record", err, domain.KindQuery)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return classify(ctx, "insert record", err, domain.KindQuery)
	}

	rec.ID = id
	return nil
}

func (r *RecordRepository) List(ctx context.Context, limit, offset int) ([]domain.Record, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, age FROM mytable ORDER BY id LIMIT ? OFFSET ?",
		limit, offset,
	)
	if err != nil {
		return nil, classify(ctx, "list records", err, domain.KindQuery)
	}
	defer rows.Close()

	records := []domain.Record{}
	for rows.Next() {
		var (
			rec  domain.Record
			name sql.NullString
			age  sql.NullInt64
		)
		if err := rows.Scan(&rec.ID, &name, &age); err != nil {
			return nil, classify(ctx, "list records", err, domain.KindQuery)
		}
		if name.Valid {
			rec.Name = &name.String
		}
		if age.Valid {
			v := int(age.Int64)
			rec.Age = &v
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(ctx, "list records", err, domain.KindQuery)
	}

	return records, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullInt(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}
