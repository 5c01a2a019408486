package repository

import (
	"context"
	"sync"

	"smart_home_api/internal/models"
)

// ControlMemory is the in-memory ControlRepo: one mutable record guarded by
// a RWMutex. Snapshots are deep copies, never live references.
type ControlMemory struct {
	mu    sync.RWMutex
	state models.ControlState
}

func NewControlMemory() *ControlMemory {
	return &ControlMemory{state: models.DefaultControlState()}
}

// Snapshot returns a copy of the current record.
func (m *ControlMemory) Snapshot(ctx context.Context) (models.ControlState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Clone(), nil
}

// Apply mutates the record under the write lock and returns the updated copy.
func (m *ControlMemory) Apply(ctx context.Context, mutate func(*models.ControlState)) (models.ControlState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	mutate(&m.state)
	return m.state.Clone(), nil
}

// Reset restores the documented defaults atomically and returns them.
func (m *ControlMemory) Reset(ctx context.Context) (models.ControlState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = models.DefaultControlState()
	return m.state.Clone(), nil
}
