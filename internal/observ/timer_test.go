package observ

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("load")
	time.Sleep(time.Millisecond)
	tm.End(idx, "3 files")
	tm.End(42, "ignored")

	report := tm.Report()
	if len(report.Phases) != 1 {
		t.Fatalf("expected one phase, got %d", len(report.Phases))
	}
	if p := report.Phases[0]; p.Name != "load" || p.Note != "3 files" || p.DurationMS <= 0 {
		t.Fatalf("unexpected phase %+v", p)
	}
	if report.TotalMS != report.Phases[0].DurationMS {
		t.Fatalf("total %v != phase %v", report.TotalMS, report.Phases[0].DurationMS)
	}
}

func TestTrackMarksErrors(t *testing.T) {
	tm := NewTimer()
	boom := errors.New("boom")
	if err := tm.Track("scan", func() (string, error) { return "", boom }); !errors.Is(err, boom) {
		t.Fatalf("Track must return fn error, got %v", err)
	}
	if got := tm.Report().Phases[0].Note; got != "error" {
		t.Fatalf("note = %q", got)
	}
	s := tm.Summary()
	if !strings.Contains(s, "scan") || !strings.Contains(s, "total") {
		t.Fatalf("summary %q", s)
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	tm.End(tm.Begin("x"), "")
	if len(tm.Report().Phases) != 0 {
		t.Fatalf("nil timer must report nothing")
	}
}
