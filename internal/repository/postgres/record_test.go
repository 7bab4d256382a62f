package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/msomdec/roster/internal/domain"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestRecordRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("INSERT INTO mytable").
		WithArgs("Alice", 30).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	rec := &domain.Record{Name: strPtr("Alice"), Age: intPtr(30)}
	if err := db.Records().Create(context.Background(), rec); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if rec.ID != 42 {
		t.Fatalf("expected id 42 from RETURNING, got %d", rec.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRecordRepository_Create_NullColumns(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("INSERT INTO mytable").
		WithArgs(nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	rec := &domain.Record{}
	if err := db.Records().Create(context.Background(), rec); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRecordRepository_List(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT id, name, age FROM mytable").
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "age"}).
			AddRow(1, "Alice", 30).
			AddRow(2, nil, nil))

	records, err := db.Records().List(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Name == nil || *records[0].Name != "Alice" {
		t.Fatalf("expected first name Alice, got %v", records[0].Name)
	}
	if records[1].Name != nil || records[1].Age != nil {
		t.Fatal("expected second row to keep its NULL columns")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRecordRepository_List_Empty(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT id, name, age FROM mytable").
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "age"}))

	records, err := db.Records().List(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if records == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRecordRepository_Create_Classification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want domain.Kind
	}{
		{"not null violation", &pgconn.PgError{Code: "23502", Message: "null value in column"}, domain.KindConstraint},
		{"check violation", &pgconn.PgError{Code: "23514", Message: "violates check constraint"}, domain.KindConstraint},
		{"string too long", &pgconn.PgError{Code: "22001", Message: "value too long for type character varying(255)"}, domain.KindConstraint},
		{"missing table", &pgconn.PgError{Code: "42P01", Message: "relation \"mytable\" does not exist"}, domain.KindSchema},
		{"connection failure", &pgconn.PgError{Code: "08006", Message: "connection failure"}, domain.KindConnection},
		{"auth rejected", &pgconn.PgError{Code: "28P01", Message: "password authentication failed"}, domain.KindConnection},
		{"missing database", &pgconn.PgError{Code: "3D000", Message: "database \"roster\" does not exist"}, domain.KindConnection},
		{"server shutdown", &pgconn.PgError{Code: "57P01", Message: "terminating connection"}, domain.KindConnection},
		{"syntax error", &pgconn.PgError{Code: "42601", Message: "syntax error"}, domain.KindQuery},
		{"dial failure", errors.New("failed to connect to `host=localhost`: connection refused"), domain.KindConnection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)

			mock.ExpectQuery("INSERT INTO mytable").WillReturnError(tt.err)

			rec := &domain.Record{Name: strPtr("Alice"), Age: intPtr(30)}
			err := db.Records().Create(context.Background(), rec)
			if err == nil {
				t.Fatal("expected error")
			}
			if kind := domain.KindOf(err); kind != tt.want {
				t.Fatalf("expected %v, got %v (%v)", tt.want, kind, err)
			}
			if !errors.Is(err, tt.err) {
				t.Fatal("expected the driver error to stay in the chain")
			}
		})
	}
}

func TestRecordRepository_Create_DeadlineExpired(t *testing.T) {
	db, mock := newMockDB(t)

	// The mock holds the statement past the deadline; the driver then
	// cancels it and reports its own error, not the context's.
	mock.ExpectQuery("INSERT INTO mytable").
		WillDelayFor(2 * time.Second).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	rec := &domain.Record{Name: strPtr("Alice"), Age: intPtr(30)}
	err := db.Records().Create(ctx, rec)
	if err == nil {
		t.Fatal("expected error when the deadline fires mid-query")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("expected the deadline to cut the query short, took %s", elapsed)
	}
	if kind := domain.KindOf(err); kind != domain.KindConnection {
		t.Fatalf("expected connection kind, got %v (%v)", kind, err)
	}
}

func TestRecordRepository_Create_Closed(t *testing.T) {
	db, _ := newMockDB(t)
	db.Close()

	rec := &domain.Record{Name: strPtr("Alice"), Age: intPtr(30)}
	err := db.Records().Create(context.Background(), rec)
	if err == nil {
		t.Fatal("expected error on a closed pool")
	}
	if kind := domain.KindOf(err); kind != domain.KindConnection {
		t.Fatalf("expected connection kind, got %v (%v)", kind, err)
	}
}

func TestRecordRepository_List_QueryError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT id, name, age FROM mytable").
		WillReturnError(&pgconn.PgError{Code: "42703", Message: "column does not exist"})

	_, err := db.Records().List(context.Background(), 10, 0)
	if err == nil {
		t.Fatal("expected error")
	}
	if kind := domain.KindOf(err); kind != domain.KindQuery {
		t.Fatalf("expected query kind, got %v (%v)", kind, err)
	}
}
