package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"smart_home_api/internal/models"
	"smart_home_api/internal/repository"

	"github.com/google/uuid"
)

// Sensor dimensions that accept overrides.
const (
	DimTemperature = "temperature"
	DimHumidity    = "humidity"
	DimGas         = "gas"
	DimMotion      = "motion"
)

// Boolean switches on the control panel.
const (
	SwitchLights         = "lights"
	SwitchAlarm          = "alarm"
	SwitchSimulationMode = "simulation_mode"
)

// Audit event types.
const (
	EventControlSet   = "CONTROL_SET"
	EventControlReset = "CONTROL_RESET"
	EventDataReset    = "DATA_RESET"
)

// ErrValidation marks client errors: unknown names, missing values, or
// values of the wrong type. Handlers map it to HTTP 400.
var ErrValidation = errors.New("validation failed")

type ControlsService struct {
	controls repository.ControlRepo
	events   repository.EventRepo
}

func NewControlsService(controls repository.ControlRepo, events repository.EventRepo) *ControlsService {
	return &ControlsService{controls: controls, events: events}
}

// SetOverride activates or clears the override for one sensor dimension.
// When active, the value must match the dimension's type (temperature and
// humidity are numbers, gas is an integer, motion is a boolean); when
// inactive, any value is ignored and the override is cleared.
func (s *ControlsService) SetOverride(ctx context.Context, p OverrideParams) (models.ControlState, error) {
	mutate, err := buildOverrideMutation(p)
	if err != nil {
		return models.ControlState{}, err
	}

	st, err := s.controls.Apply(ctx, mutate)
	if err != nil {
		return models.ControlState{}, err
	}

	if err := s.appendControlEvent(ctx, fmt.Sprintf("Override %s for %s", setOrCleared(p.Active), p.Dimension), map[string]any{
		"dimension": p.Dimension,
		"active":    p.Active,
		"value":     p.Value,
	}); err != nil {
		return models.ControlState{}, err
	}
	return st, nil
}

// SetSwitch turns one of the boolean controls (lights, alarm,
// simulation_mode) on or off.
func (s *ControlsService) SetSwitch(ctx context.Context, name string, on bool) (models.ControlState, error) {
	var mutate func(*models.ControlState)
	switch name {
	case SwitchLights:
		mutate = func(st *models.ControlState) { st.Lights = on }
	case SwitchAlarm:
		mutate = func(st *models.ControlState) { st.Alarm = on }
	case SwitchSimulationMode:
		mutate = func(st *models.ControlState) { st.SimulationMode = on }
	default:
		return models.ControlState{}, fmt.Errorf("%w: unknown switch %q", ErrValidation, name)
	}

	st, err := s.controls.Apply(ctx, mutate)
	if err != nil {
		return models.ControlState{}, err
	}

	if err := s.appendControlEvent(ctx, fmt.Sprintf("Switch %s set to %t", name, on), map[string]any{
		"switch": name,
		"on":     on,
	}); err != nil {
		return models.ControlState{}, err
	}
	return st, nil
}

// Snapshot returns a copy of the current control record.
func (s *ControlsService) Snapshot(ctx context.Context) (models.ControlState, error) {
	return s.controls.Snapshot(ctx)
}

// Reset restores the documented defaults atomically and records the reset.
func (s *ControlsService) Reset(ctx context.Context) (models.ControlState, error) {
	st, err := s.controls.Reset(ctx)
	if err != nil {
		return models.ControlState{}, err
	}
	if err := s.events.Append(ctx, models.SystemEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  time.Now().UTC(),
		Type:        EventControlReset,
		Description: "All controls reset to defaults",
	}); err != nil {
		return models.ControlState{}, err
	}
	return st, nil
}

// buildOverrideMutation validates the params and returns the state mutation
// to apply under the store lock.
func buildOverrideMutation(p OverrideParams) (func(*models.ControlState), error) {
	switch p.Dimension {
	case DimTemperature, DimHumidity:
		if !p.Active {
			return clearOverride(p.Dimension), nil
		}
		v, err := asFloat(p.Dimension, p.Value)
		if err != nil {
			return nil, err
		}
		if p.Dimension == DimTemperature {
			return func(st *models.ControlState) { st.TemperatureOverride = &v }, nil
		}
		return func(st *models.ControlState) { st.HumidityOverride = &v }, nil

	case DimGas:
		if !p.Active {
			return clearOverride(p.Dimension), nil
		}
		v, err := asInt(p.Dimension, p.Value)
		if err != nil {
			return nil, err
		}
		return func(st *models.ControlState) { st.GasOverride = &v }, nil

	case DimMotion:
		if !p.Active {
			return clearOverride(p.Dimension), nil
		}
		v, ok := p.Value.(bool)
		if !ok {
			return nil, fmt.Errorf("%w: %s override must be a boolean", ErrValidation, p.Dimension)
		}
		return func(st *models.ControlState) { st.MotionOverride = &v }, nil

	default:
		return nil, fmt.Errorf("%w: unknown dimension %q", ErrValidation, p.Dimension)
	}
}

func clearOverride(dim string) func(*models.ControlState) {
	return func(st *models.ControlState) {
		switch dim {
		case DimTemperature:
			st.TemperatureOverride = nil
		case DimHumidity:
			st.HumidityOverride = nil
		case DimGas:
			st.GasOverride = nil
		case DimMotion:
			st.MotionOverride = nil
		}
	}
}

// asFloat accepts the numeric shapes encoding/json can produce.
func asFloat(dim string, v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case nil:
		return 0, fmt.Errorf("%w: %s override requires a value when active", ErrValidation, dim)
	default:
		return 0, fmt.Errorf("%w: %s override must be a number", ErrValidation, dim)
	}
}

// asInt requires an integral number; JSON has no integer type, so 120.0 is
// accepted and 120.5 is not.
func asInt(dim string, v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case float64:
		if math.Trunc(n) != n {
			return 0, fmt.Errorf("%w: %s override must be an integer", ErrValidation, dim)
		}
		return int(n), nil
	case nil:
		return 0, fmt.Errorf("%w: %s override requires a value when active", ErrValidation, dim)
	default:
		return 0, fmt.Errorf("%w: %s override must be an integer", ErrValidation, dim)
	}
}

func setOrCleared(active bool) string {
	if active {
		return "set"
	}
	return "cleared"
}

func (s *ControlsService) appendControlEvent(ctx context.Context, desc string, meta map[string]any) error {
	return s.events.Append(ctx, models.SystemEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  time.Now().UTC(),
		Type:        EventControlSet,
		Description: desc,
		Metadata:    meta,
	})
}
