package models

import "time"

// SensorReading is one accepted telemetry sample. Readings are immutable
// once stored; the ID and Timestamp are assigned server-side on ingestion.
type SensorReading struct {
	ID             string    `json:"id"`
	Temperature    float64   `json:"temperature"` // °C
	Humidity       float64   `json:"humidity"`    // % relative humidity
	GasLevel       int       `json:"gas_level"`   // raw gas sensor level
	MotionDetected bool      `json:"motion_detected"`
	DeviceID       string    `json:"device_id,omitempty"`
	Timestamp      time.Time `json:"timestamp"` // UTC, set on receipt
}
