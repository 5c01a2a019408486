package repository

import (
	"context"
	"database/sql"
	"time"

	"smart_home_api/internal/models"
)

// ReadingRepo is the bounded sensor history: append-with-eviction, newest-first reads.
type ReadingRepo interface {
	Append(ctx context.Context, r models.SensorReading) error
	List(ctx context.Context) ([]models.SensorReading, error)
	Latest(ctx context.Context) (*models.SensorReading, error)
	Clear(ctx context.Context) error
	Count(ctx context.Context) (int, error)
	// Trim re-asserts the capacity bound and reports how many readings it evicted.
	Trim(ctx context.Context) (int, error)
	Capacity() int
}

// ControlRepo holds the single control-panel record. Apply runs the mutation
// under the store lock so concurrent writers never lose updates.
type ControlRepo interface {
	Snapshot(ctx context.Context) (models.ControlState, error)
	Apply(ctx context.Context, mutate func(*models.ControlState)) (models.ControlState, error)
	Reset(ctx context.Context) (models.ControlState, error)
}

// EventRepo is the append-only audit log with filtered access.
type EventRepo interface {
	Append(ctx context.Context, e models.SystemEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.SystemEvent, error)
}

type Repository struct {
	Readings ReadingRepo
	Controls ControlRepo
	Events   EventRepo
}

func NewRepository(db *sql.DB, maxRecords int) *Repository {
	return &Repository{
		Readings: NewReadingMemory(maxRecords),
		Controls: NewControlMemory(),
		Events:   NewEventSQLite(db),
	}
}
