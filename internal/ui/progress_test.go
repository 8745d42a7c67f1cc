package ui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"prelex/internal/driver"
)

func newModel(files ...string) *progressModel {
	return NewProgressModel("scan", files, nil).(*progressModel)
}

func TestApplyEventTracksStatuses(t *testing.T) {
	m := newModel("a.txt", "b.txt", "c.txt")
	m.applyEvent(driver.Event{File: "a.txt", Stage: driver.StageScan, Status: driver.StatusWorking})
	m.applyEvent(driver.Event{File: "b.txt", Stage: driver.StageScan, Status: driver.StatusDone, Cached: true})
	m.applyEvent(driver.Event{File: "c.txt", Stage: driver.StageLoad, Status: driver.StatusError, Err: errors.New("denied")})
	m.applyEvent(driver.Event{File: "unknown.txt", Status: driver.StatusDone})

	got := []string{m.items[0].status, m.items[1].status, m.items[2].status}
	if strings.Join(got, ",") != "scanning,cached,error" {
		t.Fatalf("statuses = %v", got)
	}
	if m.finished() != 2 || m.cached != 1 || m.failed != 1 {
		t.Fatalf("finished=%d cached=%d failed=%d", m.finished(), m.cached, m.failed)
	}
	view := m.View()
	if !strings.Contains(view, "(2/3)") || !strings.Contains(view, "errors: 1") {
		t.Fatalf("view:\n%s", view)
	}
}

func TestVisiblePrefersActiveFiles(t *testing.T) {
	files := make([]string, maxVisible+5)
	for i := range files {
		files[i] = fmt.Sprintf("f%02d.txt", i)
	}
	m := newModel(files...)
	for _, f := range files[:maxVisible] {
		m.applyEvent(driver.Event{File: f, Stage: driver.StageScan, Status: driver.StatusDone})
	}
	last := files[len(files)-1]
	m.applyEvent(driver.Event{File: last, Stage: driver.StageScan, Status: driver.StatusWorking})

	vis := m.visible()
	if len(vis) != maxVisible || vis[0].path != last {
		t.Fatalf("expected %s first among %d, got %v", last, maxVisible, vis[0])
	}
	if !strings.Contains(m.View(), "and 5 more") {
		t.Fatalf("hidden files must be summarized")
	}
}

func TestTruncate(t *testing.T) {
	got := truncate("日本語のファイル名.txt", 10)
	if !strings.HasPrefix(got, "日本") || !strings.HasSuffix(got, "...") || runewidth.StringWidth(got) > 10 {
		t.Fatalf("truncate = %q", got)
	}
	if got = truncate("short", 10); got != "short" {
		t.Fatalf("truncate = %q", got)
	}
}
