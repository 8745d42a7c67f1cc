package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"off", "error", "phase", "detail", "debug"} {
		l, err := ParseLevel(s)
		if err != nil || l.String() != s {
			t.Fatalf("ParseLevel(%q) = %v, %v", s, l, err)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestLevelScopes(t *testing.T) {
	if !LevelPhase.ShouldEmit(ScopePass) || LevelPhase.ShouldEmit(ScopeFile) {
		t.Fatalf("phase level must stop at pass scope")
	}
	if !LevelDetail.ShouldEmit(ScopeFile) {
		t.Fatalf("detail level must include file scope")
	}
	if LevelOff.ShouldEmit(ScopeDriver) || LevelError.ShouldEmit(ScopeDriver) {
		t.Fatalf("off/error levels emit no spans")
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatNDJSON)

	root := Begin(tr, ScopeDriver, "scan", 0)
	child := Begin(tr, ScopeFile, "file:a.txt", root.ID())
	child.WithExtra("tokens", "3").End("")
	root.End("ok")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 events, got %d:\n%s", len(lines), buf.String())
	}
	var ev jsonEvent
	if err := json.Unmarshal([]byte(lines[2]), &ev); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if ev.Kind != "end" || ev.Scope != "file" || ev.Extra["tokens"] != "3" || ev.ParentID != root.ID() {
		t.Fatalf("unexpected event %+v", ev)
	}
}

func TestSpanDisabledByLevel(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatText)
	sp := Begin(tr, ScopeFile, "file:a.txt", 0)
	sp.WithExtra("k", "v").End("")
	if buf.Len() != 0 {
		t.Fatalf("file scope must be filtered at phase level, got %q", buf.String())
	}
	if sp.ID() != 0 {
		t.Fatalf("filtered span must have zero id")
	}
}

func TestRingTracerWraps(t *testing.T) {
	tr := NewRingTracer(2, LevelDebug)
	for _, name := range []string{"a", "b", "c"} {
		Point(tr, ScopePass, name, "")
	}
	snap := tr.Snapshot()
	if len(snap) != 2 || snap[0].Name != "b" || snap[1].Name != "c" {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	var buf bytes.Buffer
	if err := tr.Dump(&buf, FormatText); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	if !strings.Contains(buf.String(), "• c") {
		t.Fatalf("text dump missing event: %q", buf.String())
	}
}

func TestMultiTracerFansOut(t *testing.T) {
	a := NewRingTracer(8, LevelDebug)
	b := NewRingTracer(8, LevelDebug)
	m := NewMultiTracer(LevelDebug, a, b)
	Point(m, ScopeDriver, "x", "")
	if len(a.Snapshot()) != 1 || len(b.Snapshot()) != 1 {
		t.Fatalf("event must reach every tracer")
	}
	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestContextPropagation(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Fatalf("empty context must yield Nop")
	}
	tr := NewRingTracer(4, LevelDebug)
	ctx := WithTracer(context.Background(), tr)
	if FromContext(ctx) != Tracer(tr) {
		t.Fatalf("tracer not propagated")
	}
	sp := Begin(tr, ScopeDriver, "root", 0)
	ctx = WithSpan(ctx, sp)
	if CurrentSpan(ctx).SpanID != sp.ID() {
		t.Fatalf("span not propagated")
	}
}

func TestNewOff(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil || tr.Enabled() {
		t.Fatalf("off config must give a disabled tracer, got %v %v", tr, err)
	}
	if _, err := New(Config{Level: LevelPhase, Mode: StorageMode(42)}); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}
