package models

// ControlState is the full control-panel record: one optional override per
// sensor dimension plus the actuator and simulation flags. A nil override
// pointer means the override is inactive, so the active flag and the value
// can never disagree.
type ControlState struct {
	TemperatureOverride *float64 `json:"temperature_override"`
	HumidityOverride    *float64 `json:"humidity_override"`
	GasOverride         *int     `json:"gas_override"`
	MotionOverride      *bool    `json:"motion_override"`
	Lights              bool     `json:"lights"`
	Alarm               bool     `json:"alarm"`
	SimulationMode      bool     `json:"simulation_mode"`
}

// DefaultControlState returns the documented defaults: all overrides
// inactive, actuators off, simulation mode off.
func DefaultControlState() ControlState {
	return ControlState{}
}

// Clone returns a deep copy; mutating the copy never aliases the original's
// override values.
func (s ControlState) Clone() ControlState {
	out := s
	if s.TemperatureOverride != nil {
		v := *s.TemperatureOverride
		out.TemperatureOverride = &v
	}
	if s.HumidityOverride != nil {
		v := *s.HumidityOverride
		out.HumidityOverride = &v
	}
	if s.GasOverride != nil {
		v := *s.GasOverride
		out.GasOverride = &v
	}
	if s.MotionOverride != nil {
		v := *s.MotionOverride
		out.MotionOverride = &v
	}
	return out
}

// ActiveControls counts overrides that are active plus switches that are on.
func (s ControlState) ActiveControls() int {
	n := 0
	for _, active := range []bool{
		s.TemperatureOverride != nil,
		s.HumidityOverride != nil,
		s.GasOverride != nil,
		s.MotionOverride != nil,
		s.Lights,
		s.Alarm,
		s.SimulationMode,
	} {
		if active {
			n++
		}
	}
	return n
}
