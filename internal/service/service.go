package service

import (
	"context"
	"time"

	"smart_home_api/internal/logger"
	"smart_home_api/internal/models"
	"smart_home_api/internal/repository"
)

// Telemetry owns the reading history: ingestion, retrieval, reset.
type Telemetry interface {
	Ingest(ctx context.Context, p ReadingParams) (models.SensorReading, error)
	History(ctx context.Context) ([]models.SensorReading, error)
	Latest(ctx context.Context) (*models.SensorReading, error)
	Reset(ctx context.Context) error
}

// Controls owns the control-panel record: overrides, switches, reset.
type Controls interface {
	SetOverride(ctx context.Context, p OverrideParams) (models.ControlState, error)
	SetSwitch(ctx context.Context, name string, on bool) (models.ControlState, error)
	Snapshot(ctx context.Context) (models.ControlState, error)
	Reset(ctx context.Context) (models.ControlState, error)
}

// Monitoring exposes read-only system metadata for /status and /health.
type Monitoring interface {
	Status(ctx context.Context) (models.SystemStatus, error)
}

// EventLog exposes the append-only audit log with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.SystemEvent, error)
}

// Sweeper runs the background retention loop that re-asserts the history cap.
// Stop via context cancellation in main() for graceful shutdown.
type Sweeper interface {
	Run(ctx context.Context, tick time.Duration)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Telemetry
	Controls
	Monitoring
	EventLog
	Sweeper
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, sweepInterval time.Duration, log *logger.Logger) *Service {
	return &Service{
		Telemetry:  NewTelemetryService(repos.Readings, repos.Events),
		Controls:   NewControlsService(repos.Controls, repos.Events),
		Monitoring: NewMonitoringService(repos.Readings, repos.Controls, sweepInterval),
		EventLog:   NewEventLogService(repos.Events),
		Sweeper:    NewSweeperService(repos.Readings, log),
	}
}
