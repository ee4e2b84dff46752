package observ

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func fakeClock(step time.Duration) func() time.Time {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var n int
	return func() time.Time {
		n++
		return base.Add(time.Duration(n) * step)
	}
}

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	tm.now = fakeClock(time.Millisecond)

	idx := tm.Begin("discover")
	tm.End(idx, "3 files")
	err := tm.Track("check", func() (string, error) { return "", errors.New("no dictionary") })
	if err == nil {
		t.Fatal("Track must return fn's error")
	}

	r := tm.Report()
	if len(r.Phases) != 2 || r.TotalMS != 2 {
		t.Fatalf("report = %+v", r)
	}
	if r.Phases[0].Note != "3 files" || r.Phases[1].Note != "failed: no dictionary" {
		t.Fatalf("notes = %q, %q", r.Phases[0].Note, r.Phases[1].Note)
	}

	sum := tm.Summary()
	if !strings.Contains(sum, "discover") || !strings.Contains(sum, "total") {
		t.Fatalf("summary:\n%s", sum)
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	idx := tm.Begin("x")
	tm.End(idx, "")
	if err := tm.Track("y", func() (string, error) { return "ok", nil }); err != nil {
		t.Fatal(err)
	}
	if r := tm.Report(); len(r.Phases) != 0 {
		t.Fatalf("nil timer recorded %+v", r)
	}
}

func TestEndIgnoresUnknownIndex(t *testing.T) {
	tm := NewTimer()
	tm.End(5, "x")
	tm.End(-1, "x")
	if len(tm.Report().Phases) != 0 {
		t.Fatal("unexpected phases")
	}
}
