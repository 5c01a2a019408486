package repository

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"smart_home_api/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestEventAppend_Success_WithDefaults(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func(db *sql.DB) { _ = db.Close() }(db)

	repo := NewEventSQLite(db)

	// Generated id and timestamp are unknown; match the statement and the
	// normalized type/message.
	mock.ExpectExec(regexp.QuoteMeta(`
		INSERT INTO system_events (id, occurred_at, type, message, meta)
		VALUES (?, ?, ?, ?, ?)
	`)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(),
			"CONTROL_SET", "Override set for temperature",
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Append(testCtx(t), models.SystemEvent{
		// EventID empty -> repo generates
		// OccurredAt zero -> repo sets UTC now
		Type:        "  control_set ",
		Description: "Override set for temperature",
		Metadata:    map[string]any{"dimension": "temperature"},
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestEventAppend_DBError(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func(db *sql.DB) { _ = db.Close() }(db)

	repo := NewEventSQLite(db)

	wantErr := errors.New("disk full")
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO system_events`)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(wantErr)

	err = repo.Append(testCtx(t), models.SystemEvent{Type: "DATA_RESET", Description: "cleared"})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestEventAppend_MetadataMarshalError(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func(db *sql.DB) { _ = db.Close() }(db)

	repo := NewEventSQLite(db)

	// Channels are not JSON-encodable; the error must surface, and nothing
	// must reach the database.
	err = repo.Append(testCtx(t), models.SystemEvent{
		Type:        "CONTROL_SET",
		Description: "bad metadata",
		Metadata:    map[string]any{"ch": make(chan int)},
	})
	if err == nil {
		t.Fatal("expected marshal error, got nil")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected db activity: %v", err)
	}
}

func TestEventList_FiltersAndMetadata(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func(db *sql.DB) { _ = db.Close() }(db)

	repo := NewEventSQLite(db)

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)
	occurred := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "occurred_at", "type", "message", "meta"}).
		AddRow("ev-1", occurred, "CONTROL_SET", "Switch lights set to true", `{"switch":"lights","on":true}`).
		AddRow("ev-2", occurred.Add(time.Hour), "CONTROL_SET", "Override cleared for gas", nil)

	// Range bounds are bound as text in the stored timestamp layout.
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, occurred_at, type, message, meta FROM system_events WHERE occurred_at >= ? AND occurred_at <= ? AND type = ? ORDER BY occurred_at ASC, rowid ASC`,
	)).
		WithArgs("2026-08-01 00:00:00", "2026-08-31 23:59:59", "CONTROL_SET").
		WillReturnRows(rows)

	events, err := repo.List(testCtx(t), from, to, " control_set ")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	meta, ok := events[0].Metadata.(map[string]any)
	if !ok || meta["switch"] != "lights" {
		t.Fatalf("metadata not decoded: %#v", events[0].Metadata)
	}
	if events[1].Metadata != nil {
		t.Fatalf("expected nil metadata, got %#v", events[1].Metadata)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestEventList_NoFilters(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func(db *sql.DB) { _ = db.Close() }(db)

	repo := NewEventSQLite(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, occurred_at, type, message, meta FROM system_events ORDER BY occurred_at ASC, rowid ASC`,
	)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "occurred_at", "type", "message", "meta"}))

	events, err := repo.List(testCtx(t), time.Time{}, time.Time{}, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}
}
