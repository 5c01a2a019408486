package repository

import (
	"context"
	"sync"

	"smart_home_api/internal/models"
)

// defaultCapacity bounds the history when no explicit capacity is configured.
const defaultCapacity = 100

// ReadingMemory is the in-memory ReadingRepo. Readings are kept oldest-first
// internally; reads hand out newest-first copies so callers never alias the
// backing slice.
type ReadingMemory struct {
	mu       sync.RWMutex
	readings []models.SensorReading
	capacity int
}

// NewReadingMemory creates a history bounded to capacity readings.
// Non-positive capacities fall back to the default of 100.
func NewReadingMemory(capacity int) *ReadingMemory {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &ReadingMemory{
		readings: make([]models.SensorReading, 0, capacity),
		capacity: capacity,
	}
}

// Append stores a reading and evicts the oldest one if the bound is exceeded.
func (m *ReadingMemory) Append(ctx context.Context, r models.SensorReading) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.readings = append(m.readings, r)
	if excess := len(m.readings) - m.capacity; excess > 0 {
		m.readings = append(m.readings[:0], m.readings[excess:]...)
	}
	return nil
}

// List returns a newest-first snapshot of the history. An empty store yields
// an empty (non-nil) slice.
func (m *ReadingMemory) List(ctx context.Context) ([]models.SensorReading, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.SensorReading, len(m.readings))
	for i, r := range m.readings {
		out[len(m.readings)-1-i] = r
	}
	return out, nil
}

// Latest returns the most recent reading, or nil when the store is empty.
func (m *ReadingMemory) Latest(ctx context.Context) (*models.SensorReading, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.readings) == 0 {
		return nil, nil
	}
	r := m.readings[len(m.readings)-1]
	return &r, nil
}

// Clear empties the history. Idempotent.
func (m *ReadingMemory) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.readings = m.readings[:0]
	return nil
}

// Count reports how many readings are currently stored.
func (m *ReadingMemory) Count(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.readings), nil
}

// Trim drops the oldest readings until the store is within capacity and
// reports how many were evicted. Append already maintains the bound, so this
// normally evicts nothing; the retention sweeper calls it as a safety net.
func (m *ReadingMemory) Trim(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	excess := len(m.readings) - m.capacity
	if excess <= 0 {
		return 0, nil
	}
	m.readings = append(m.readings[:0], m.readings[excess:]...)
	return excess, nil
}

// Capacity returns the configured maximum number of stored readings.
func (m *ReadingMemory) Capacity() int { return m.capacity }
