package models

import "time"

// StatusConfig echoes the runtime configuration in /status responses.
type StatusConfig struct {
	MaxRecords    int    `json:"max_records"`
	SweepInterval string `json:"sweep_interval"`
}

// SystemStatus is the /status payload.
type SystemStatus struct {
	System         string       `json:"system"`
	Version        string       `json:"version"`
	Records        int          `json:"records"`
	Capacity       int          `json:"capacity"`
	ActiveControls int          `json:"active_controls"`
	LastUpdate     *time.Time   `json:"last_update"` // nil until the first reading arrives
	Config         StatusConfig `json:"config"`
	Timestamp      time.Time    `json:"timestamp"`
}
