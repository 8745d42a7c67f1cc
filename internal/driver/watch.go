package driver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"prelex/internal/trace"
)

// DefaultDebounce groups bursts of writes (editors often write twice).
const DefaultDebounce = 100 * time.Millisecond

// watchSet decides which changed paths are rescanned.
type watchSet struct {
	files map[string]bool // explicitly named files
	dirs  map[string]bool // watched directories
	exts  []string
}

func (s *watchSet) wants(path string) bool {
	path = filepath.Clean(path)
	if s.files[path] {
		return true
	}
	return s.dirs[filepath.Dir(path)] && matchExt(path, s.exts)
}

// Watch scans every matching file under paths once and then rescans files
// as they are written, calling fn for each result. fn runs on the calling
// goroutine. Watch returns nil when ctx is cancelled.
func Watch(ctx context.Context, paths []string, opts Options, debounce time.Duration, fn func(FileResult)) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = w.Close() }()

	tracer := trace.FromContext(ctx)
	opts.Scanner = opts.scanner()
	set := &watchSet{files: map[string]bool{}, dirs: map[string]bool{}, exts: opts.Extensions}

	var initial []string
	for _, p := range paths {
		p = filepath.Clean(p)
		info, err := os.Stat(p)
		if err != nil {
			return err
		}
		if !info.IsDir() {
			set.files[p] = true
			initial = append(initial, p)
			// каталог, а не файл: редакторы сохраняют через rename
			if err := w.Add(filepath.Dir(p)); err != nil {
				return fmt.Errorf("watch %s: %w", p, err)
			}
			continue
		}
		if err := addTree(w, set, p); err != nil {
			return err
		}
		files, err := ListFiles(p, opts.Extensions)
		if err != nil {
			return err
		}
		initial = append(initial, files...)
	}
	slices.Sort(initial)
	for _, p := range slices.Compact(initial) {
		if err := ctx.Err(); err != nil {
			return nil
		}
		_, r, _ := ScanFile(ctx, p, opts)
		fn(r)
	}

	pending := map[string]bool{}
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() && set.dirs[filepath.Dir(filepath.Clean(ev.Name))] {
					if err := addTree(w, set, ev.Name); err != nil {
						trace.Point(tracer, trace.ScopeDriver, "watch-add", err.Error())
					}
					continue
				}
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 || !set.wants(ev.Name) {
				continue
			}
			pending[filepath.Clean(ev.Name)] = true
			timer.Reset(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch: %w", err)
		case <-timer.C:
			names := make([]string, 0, len(pending))
			for name := range pending {
				names = append(names, name)
			}
			clear(pending)
			slices.Sort(names)
			for _, name := range names {
				_, r, err := ScanFile(ctx, name, opts)
				if errors.Is(err, fs.ErrNotExist) {
					// удалён между событием и сканом
					continue
				}
				fn(r)
			}
		}
	}
}

// addTree watches root and every non-hidden directory below it.
func addTree(w *fsnotify.Watcher, set *watchSet, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		set.dirs[filepath.Clean(path)] = true
		return nil
	})
}
