package service

import (
	"testing"
	"time"
)

func TestEventLogList_NormalizesFilter(t *testing.T) {
	t.Parallel()

	repo := &fakeEventRepo{}
	svc := NewEventLogService(repo)

	loc := time.FixedZone("CEST", 2*60*60)
	from := time.Date(2026, 8, 1, 10, 0, 0, 0, loc)
	to := time.Date(2026, 8, 2, 10, 0, 0, 0, loc)

	if _, err := svc.List(testCtx(t), LogFilter{From: from, To: to, Type: " control_set "}); err != nil {
		t.Fatalf("list: %v", err)
	}

	if repo.lastFrom.Location() != time.UTC || !repo.lastFrom.Equal(from) {
		t.Fatalf("from not normalized to UTC: %v", repo.lastFrom)
	}
	if repo.lastType != "CONTROL_SET" {
		t.Fatalf("type not normalized: %q", repo.lastType)
	}
}

func TestEventLogList_RejectsInvertedRange(t *testing.T) {
	t.Parallel()

	svc := NewEventLogService(&fakeEventRepo{})

	from := time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	if _, err := svc.List(testCtx(t), LogFilter{From: from, To: to}); err == nil {
		t.Fatal("expected error for from > to")
	}
}
