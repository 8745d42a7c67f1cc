package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"prelex/internal/token"
)

func TestWatchSetWants(t *testing.T) {
	set := &watchSet{
		files: map[string]bool{"/a/notes.log": true},
		dirs:  map[string]bool{"/b": true},
		exts:  []string{".txt"},
	}
	cases := map[string]bool{
		"/a/notes.log": true,
		"/a/other.txt": false,
		"/b/x.txt":     true,
		"/b/x.md":      false,
		"/b/sub/x.txt": false,
		"/b/./y.TXT":   true,
	}
	for path, want := range cases {
		if got := set.wants(path); got != want {
			t.Errorf("wants(%s) = %v, want %v", path, got, want)
		}
	}
}

func TestWatchRescansOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	writeFiles(t, dir, map[string]string{"a.txt": "50%"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	results := make(chan FileResult, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, []string{dir}, Options{Extensions: []string{".txt"}}, 20*time.Millisecond, func(r FileResult) {
			results <- r
		})
	}()

	next := func() FileResult {
		t.Helper()
		select {
		case r := <-results:
			return r
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for a scan")
			return FileResult{}
		}
	}

	first := next()
	if first.Err != nil || first.Result.Counts()[token.Percentage] != 1 {
		t.Fatalf("unexpected initial scan %+v", first)
	}

	if err := os.WriteFile(path, []byte("v1.2.3 と 100円"), 0o600); err != nil {
		t.Fatal(err)
	}
	var second FileResult
	for {
		second = next()
		// запись может прийти двумя событиями: ждём итогового содержимого
		if second.Result.Counts()[token.Currency] == 1 {
			break
		}
	}
	if second.Result.Counts()[token.Version] != 1 {
		t.Fatalf("unexpected rescan %+v", second.Result)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Watch returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not stop after cancel")
	}
}

func TestWatchMissingPath(t *testing.T) {
	err := Watch(context.Background(), []string{filepath.Join(t.TempDir(), "nope")}, Options{}, 0, func(FileResult) {})
	if !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
