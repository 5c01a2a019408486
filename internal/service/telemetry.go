package service

import (
	"context"
	"time"

	"smart_home_api/internal/models"
	"smart_home_api/internal/repository"

	"github.com/google/uuid"
)

type TelemetryService struct {
	readings repository.ReadingRepo
	events   repository.EventRepo
}

func NewTelemetryService(readings repository.ReadingRepo, events repository.EventRepo) *TelemetryService {
	return &TelemetryService{readings: readings, events: events}
}

// Ingest stamps the reading with a server-side id and UTC timestamp and
// stores it at the head of the history, evicting the oldest entry when the
// capacity bound is exceeded. The stored reading is returned verbatim;
// active control overrides are never merged into it.
func (s *TelemetryService) Ingest(ctx context.Context, p ReadingParams) (models.SensorReading, error) {
	reading := models.SensorReading{
		ID:             uuid.NewString(),
		Temperature:    p.Temperature,
		Humidity:       p.Humidity,
		GasLevel:       p.GasLevel,
		MotionDetected: p.MotionDetected,
		DeviceID:       p.DeviceID,
		Timestamp:      time.Now().UTC(),
	}
	if err := s.readings.Append(ctx, reading); err != nil {
		return models.SensorReading{}, err
	}
	return reading, nil
}

// History returns all stored readings, newest first. An empty history is an
// empty slice, not an error.
func (s *TelemetryService) History(ctx context.Context) ([]models.SensorReading, error) {
	return s.readings.List(ctx)
}

// Latest returns the most recent reading, or nil when no data has arrived yet.
func (s *TelemetryService) Latest(ctx context.Context) (*models.SensorReading, error) {
	return s.readings.Latest(ctx)
}

// Reset empties the history and records a DATA_RESET audit event. Idempotent.
func (s *TelemetryService) Reset(ctx context.Context) error {
	if err := s.readings.Clear(ctx); err != nil {
		return err
	}
	return s.events.Append(ctx, models.SystemEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  time.Now().UTC(),
		Type:        EventDataReset,
		Description: "Sensor history cleared",
	})
}
