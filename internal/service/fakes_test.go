package service

import (
	"context"
	"testing"
	"time"

	"smart_home_api/internal/models"
)

// fakeEventRepo records appended events in memory; the sqlite-backed repo has
// its own tests under internal/repository.
type fakeEventRepo struct {
	appendErr error
	listErr   error
	events    []models.SystemEvent
	lastFrom  time.Time
	lastTo    time.Time
	lastType  string
}

func (f *fakeEventRepo) Append(ctx context.Context, e models.SystemEvent) error {
	f.events = append(f.events, e)
	return f.appendErr
}

func (f *fakeEventRepo) List(ctx context.Context, from, to time.Time, typ string) ([]models.SystemEvent, error) {
	f.lastFrom = from
	f.lastTo = to
	f.lastType = typ
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.events, nil
}

func testCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	t.Cleanup(cancel)
	return ctx
}
