package service

import (
	"context"
	"time"

	"smart_home_api/internal/models"
	"smart_home_api/internal/repository"
)

const (
	systemOK = "OK"
	version  = "2.0"
)

type MonitoringService struct {
	readings      repository.ReadingRepo
	controls      repository.ControlRepo
	sweepInterval time.Duration
}

func NewMonitoringService(readings repository.ReadingRepo, controls repository.ControlRepo, sweepInterval time.Duration) *MonitoringService {
	return &MonitoringService{readings: readings, controls: controls, sweepInterval: sweepInterval}
}

// Status assembles the system metadata snapshot: record counts, capacity,
// active control count, and the timestamp of the newest reading (nil until
// the first reading arrives).
func (s *MonitoringService) Status(ctx context.Context) (models.SystemStatus, error) {
	count, err := s.readings.Count(ctx)
	if err != nil {
		return models.SystemStatus{}, err
	}
	latest, err := s.readings.Latest(ctx)
	if err != nil {
		return models.SystemStatus{}, err
	}
	controls, err := s.controls.Snapshot(ctx)
	if err != nil {
		return models.SystemStatus{}, err
	}

	var lastUpdate *time.Time
	if latest != nil {
		ts := latest.Timestamp.UTC()
		lastUpdate = &ts
	}

	return models.SystemStatus{
		System:         systemOK,
		Version:        version,
		Records:        count,
		Capacity:       s.readings.Capacity(),
		ActiveControls: controls.ActiveControls(),
		LastUpdate:     lastUpdate,
		Config: models.StatusConfig{
			MaxRecords:    s.readings.Capacity(),
			SweepInterval: s.sweepInterval.String(),
		},
		Timestamp: time.Now().UTC(),
	}, nil
}
