package handlers

import (
	"context"

	"smart_home_api/internal/models"
	"smart_home_api/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockTelemetry struct {
	ingestResp models.SensorReading
	ingestErr  error
	historyRes []models.SensorReading
	historyErr error
	latestRes  *models.SensorReading
	latestErr  error
	resetErr   error

	lastIngest  service.ReadingParams
	ingestCalls int
	resetCalls  int
}

func (m *mockTelemetry) Ingest(ctx context.Context, p service.ReadingParams) (models.SensorReading, error) {
	m.ingestCalls++
	m.lastIngest = p
	return m.ingestResp, m.ingestErr
}
func (m *mockTelemetry) History(ctx context.Context) ([]models.SensorReading, error) {
	return m.historyRes, m.historyErr
}
func (m *mockTelemetry) Latest(ctx context.Context) (*models.SensorReading, error) {
	return m.latestRes, m.latestErr
}
func (m *mockTelemetry) Reset(ctx context.Context) error {
	m.resetCalls++
	return m.resetErr
}

type mockControls struct {
	state       models.ControlState
	overrideErr error
	switchErr   error
	snapshotErr error
	resetErr    error

	lastOverride  service.OverrideParams
	lastSwitch    string
	lastOn        bool
	overrideCalls int
	switchCalls   int
	resetCalls    int
}

func (m *mockControls) SetOverride(ctx context.Context, p service.OverrideParams) (models.ControlState, error) {
	m.overrideCalls++
	m.lastOverride = p
	return m.state, m.overrideErr
}
func (m *mockControls) SetSwitch(ctx context.Context, name string, on bool) (models.ControlState, error) {
	m.switchCalls++
	m.lastSwitch = name
	m.lastOn = on
	return m.state, m.switchErr
}
func (m *mockControls) Snapshot(ctx context.Context) (models.ControlState, error) {
	return m.state, m.snapshotErr
}
func (m *mockControls) Reset(ctx context.Context) (models.ControlState, error) {
	m.resetCalls++
	return models.DefaultControlState(), m.resetErr
}

type mockMonitoring struct {
	status models.SystemStatus
	err    error
}

func (m *mockMonitoring) Status(ctx context.Context) (models.SystemStatus, error) {
	return m.status, m.err
}

type mockEventLog struct {
	resp       []models.SystemEvent
	err        error
	lastFilter service.LogFilter
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.SystemEvent, error) {
	m.lastFilter = f
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
