package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"smart_home_api/internal/models"
	"smart_home_api/internal/service"
)

func TestGetEvents_PassesFilter(t *testing.T) {
	log := &mockEventLog{resp: []models.SystemEvent{
		{EventID: "ev-1", Type: "CONTROL_SET", Description: "Switch lights set to true"},
	}}
	s := &service.Service{EventLog: log}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/events?from=2026-08-01&to=2026-08-31&type=control_set", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	if log.lastFilter.Type != "CONTROL_SET" {
		t.Fatalf("type not normalized: %q", log.lastFilter.Type)
	}
	wantFrom := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	if !log.lastFilter.From.Equal(wantFrom) {
		t.Fatalf("wrong from: %v", log.lastFilter.From)
	}
	// date-only 'to' becomes end-of-day inclusive
	wantTo := time.Date(2026, 8, 31, 23, 59, 59, 999999999, time.UTC)
	if !log.lastFilter.To.Equal(wantTo) {
		t.Fatalf("wrong to: %v", log.lastFilter.To)
	}

	var resp struct {
		Count  int                  `json:"count"`
		Events []models.SystemEvent `json:"events"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Count != 1 || len(resp.Events) != 1 || resp.Events[0].EventID != "ev-1" {
		t.Fatalf("bad events response: %s", w.Body.String())
	}
}

func TestGetEvents_BadTimesAnd400s(t *testing.T) {
	cases := []struct {
		name string
		url  string
	}{
		{"bad from", "/events?from=yesterday"},
		{"bad to", "/events?to=32-13-2026"},
		{"inverted range", "/events?from=2026-08-31&to=2026-08-01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := &service.Service{EventLog: &mockEventLog{}}
			r := newTestRouter(s)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d (%s)", w.Code, w.Body.String())
			}
		})
	}
}
