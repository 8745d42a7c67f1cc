package driver

import (
	"context"
	"fmt"
	"io"
	"time"

	"prelex/internal/prelex"
	"prelex/internal/source"
	"prelex/internal/trace"
)

// Options controls file and directory scans.
type Options struct {
	Scanner    *prelex.Scanner // nil: default rule table
	Jobs       int             // ScanDir workers, 0 = GOMAXPROCS
	Extensions []string        // ScanDir filter, empty = every regular file
	Cache      *DiskCache      // nil disables caching
	Progress   ProgressSink
	Check      bool // verify the partition of every result
}

func (o Options) scanner() *prelex.Scanner {
	if o.Scanner != nil {
		return o.Scanner
	}
	return prelex.New(prelex.Options{})
}

// FileResult is the outcome of scanning one file.
type FileResult struct {
	Path    string
	FileID  source.FileID
	Result  prelex.Result
	Cached  bool
	Elapsed time.Duration
	Err     error // load or check failure; Result is empty when set
}

// ScanBytes scans data with the configured scanner, bypassing the cache.
func ScanBytes(ctx context.Context, data []byte, opts Options) (prelex.Result, error) {
	if err := source.CheckSize(len(data)); err != nil {
		return prelex.Result{}, err
	}
	res := opts.scanner().ProcessContext(ctx, data)
	if opts.Check {
		if err := res.Check(data); err != nil {
			return res, fmt.Errorf("partition check: %w", err)
		}
	}
	return res, nil
}

// ScanFile loads and scans a single file.
func ScanFile(ctx context.Context, path string, opts Options) (*source.FileSet, FileResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return fs, FileResult{Path: path, Err: err}, fmt.Errorf("load %s: %w", path, err)
	}
	r := scanLoaded(ctx, fs.Get(id), opts)
	return fs, r, r.Err
}

// ScanReader scans everything read from r under the given display name.
func ScanReader(ctx context.Context, name string, r io.Reader, opts Options) (*source.FileSet, FileResult, error) {
	fs := source.NewFileSet()
	id, err := fs.LoadReader(name, r)
	if err != nil {
		return fs, FileResult{Path: name, Err: err}, err
	}
	res := scanLoaded(ctx, fs.Get(id), opts)
	return fs, res, res.Err
}

// scanLoaded scans a registered file, going through the cache when one is set.
func scanLoaded(ctx context.Context, file *source.File, opts Options) FileResult {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeFile, "scan-file", trace.CurrentSpan(ctx).SpanID).
		WithExtra("path", file.Path)
	ctx = trace.WithSpan(ctx, span)

	out := FileResult{Path: file.Path, FileID: file.ID}
	started := time.Now()
	emit(opts.Progress, Event{File: file.Path, Stage: StageScan, Status: StatusWorking})

	sc := opts.scanner()
	key := CacheKey(file.Hash, sc)
	if res, ok, err := opts.Cache.Get(key, file.Content); err == nil && ok {
		out.Result, out.Cached = res, true
	} else {
		out.Result, out.Err = ScanBytes(ctx, file.Content, Options{Scanner: sc, Check: opts.Check})
		if out.Err == nil {
			if err := opts.Cache.Put(key, &out.Result, len(file.Content)); err != nil {
				trace.Point(tracer, trace.ScopeFile, "cache-put", err.Error())
			}
		}
	}
	out.Elapsed = time.Since(started)

	status := StatusDone
	if out.Err != nil {
		status = StatusError
		out.Result = prelex.Result{}
	}
	emit(opts.Progress, Event{File: file.Path, Stage: StageScan, Status: status, Err: out.Err, Cached: out.Cached, Elapsed: out.Elapsed})
	span.WithExtra("cached", fmt.Sprint(out.Cached)).End(string(status))
	return out
}
