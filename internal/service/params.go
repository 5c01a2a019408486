package service

import "time"

// ReadingParams carries a validated ingestion request into the telemetry service.
type ReadingParams struct {
	Temperature    float64
	Humidity       float64
	GasLevel       int
	MotionDetected bool
	DeviceID       string // optional
}

// OverrideParams describes a single override change.
type OverrideParams struct {
	Dimension string // "temperature" | "humidity" | "gas" | "motion"
	Active    bool
	Value     any // raw decoded JSON value; checked against the dimension's type
}

// LogFilter supports audit log filtering by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "CONTROL_SET", "CONTROL_RESET", "DATA_RESET"
}
