package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"smart_home_api/internal/models"
	"smart_home_api/internal/service"
)

func TestSetOverride_PassesParams(t *testing.T) {
	v := 99.9
	ctrl := &mockControls{state: models.ControlState{TemperatureOverride: &v}}
	s := &service.Service{Controls: ctrl}
	r := newTestRouter(s)

	body := bytes.NewBufferString(`{"active":true,"value":99.9}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/control/temperature", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if ctrl.overrideCalls != 1 {
		t.Fatalf("SetOverride calls=%d", ctrl.overrideCalls)
	}
	p := ctrl.lastOverride
	if p.Dimension != service.DimTemperature || !p.Active || p.Value != 99.9 {
		t.Fatalf("wrong override params: %+v", p)
	}

	var resp struct {
		Status   string              `json:"status"`
		Controls models.ControlState `json:"controls"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Status != statusControlSet || resp.Controls.TemperatureOverride == nil || *resp.Controls.TemperatureOverride != 99.9 {
		t.Fatalf("bad response: %s", w.Body.String())
	}
}

func TestSetOverride_AllDimensionRoutes(t *testing.T) {
	for _, dim := range []string{"temperature", "humidity", "gas", "motion"} {
		t.Run(dim, func(t *testing.T) {
			ctrl := &mockControls{}
			s := &service.Service{Controls: ctrl}
			r := newTestRouter(s)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/control/"+dim, bytes.NewBufferString(`{"active":false}`))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
			}
			if ctrl.lastOverride.Dimension != dim || ctrl.lastOverride.Active {
				t.Fatalf("wrong params for %s: %+v", dim, ctrl.lastOverride)
			}
		})
	}
}

func TestSetOverride_ValidationErrorIs400(t *testing.T) {
	ctrl := &mockControls{overrideErr: fmt.Errorf("%w: temperature override must be a number", service.ErrValidation)}
	s := &service.Service{Controls: ctrl}
	r := newTestRouter(s)

	body := bytes.NewBufferString(`{"active":true,"value":"hot"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/control/temperature", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (%s)", w.Code, w.Body.String())
	}
	var resp map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["error"] == "" {
		t.Fatalf("expected descriptive error, got %s", w.Body.String())
	}
}

func TestSetOverride_MissingActiveIs400(t *testing.T) {
	ctrl := &mockControls{}
	s := &service.Service{Controls: ctrl}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/control/gas", bytes.NewBufferString(`{"value":120}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if ctrl.overrideCalls != 0 {
		t.Fatal("rejected request must not reach the service")
	}
}

func TestSetSwitch_Routes(t *testing.T) {
	for _, sw := range []string{"lights", "alarm", "simulation_mode"} {
		t.Run(sw, func(t *testing.T) {
			ctrl := &mockControls{}
			s := &service.Service{Controls: ctrl}
			r := newTestRouter(s)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/control/"+sw, bytes.NewBufferString(`{"on":true}`))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
			}
			if ctrl.lastSwitch != sw || !ctrl.lastOn {
				t.Fatalf("wrong switch params: %q %v", ctrl.lastSwitch, ctrl.lastOn)
			}
		})
	}
}

func TestSetSwitch_BadTypeIs400(t *testing.T) {
	ctrl := &mockControls{}
	s := &service.Service{Controls: ctrl}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/control/lights", bytes.NewBufferString(`{"on":"yes"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (%s)", w.Code, w.Body.String())
	}
	if ctrl.switchCalls != 0 {
		t.Fatal("rejected request must not reach the service")
	}
}

func TestGetControls(t *testing.T) {
	on := true
	ctrl := &mockControls{state: models.ControlState{MotionOverride: &on, Lights: true}}
	s := &service.Service{Controls: ctrl}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/controls", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Controls models.ControlState `json:"controls"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Controls.MotionOverride == nil || !*resp.Controls.MotionOverride || !resp.Controls.Lights {
		t.Fatalf("bad controls response: %s", w.Body.String())
	}
	// inactive overrides serialize as explicit nulls
	if !bytes.Contains(w.Body.Bytes(), []byte(`"temperature_override":null`)) {
		t.Fatalf("expected explicit null overrides, got %s", w.Body.String())
	}
}

func TestResetControls(t *testing.T) {
	ctrl := &mockControls{state: models.ControlState{Alarm: true}}
	s := &service.Service{Controls: ctrl}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/controls/reset", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if ctrl.resetCalls != 1 {
		t.Fatalf("expected one Reset call, got %d", ctrl.resetCalls)
	}
	var resp struct {
		Status   string              `json:"status"`
		Controls models.ControlState `json:"controls"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Status != statusControlsReset || resp.Controls != (models.ControlState{}) {
		t.Fatalf("bad reset response: %s", w.Body.String())
	}
}
