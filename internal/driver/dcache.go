package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"prelex/internal/prelex"
	"prelex/internal/source"
	"prelex/internal/token"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит результаты сканирования по CacheKey на диске.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is the serialized form of a scan result. Token surfaces are
// not stored: they are sliced back out of the file content on load.
type DiskPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16
	Rules  uint16

	Kinds  []uint8
	Tokens []uint32 // start,end pairs
	Spans  []uint32 // start,end pairs
	Length uint32   // content length, a cheap sanity check
}

// DefaultCacheDir returns $XDG_CACHE_HOME/app or ~/.cache/app.
func DefaultCacheDir(app string) (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, app), nil
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	dir, err := DefaultCacheDir(app)
	if err != nil {
		return nil, err
	}
	return OpenDiskCacheAt(dir)
}

// OpenDiskCacheAt opens a cache rooted at dir, creating it if needed.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// записи лежат в подкаталоге "scans"
	return filepath.Join(c.dir, "scans", hexKey+".mp")
}

// Put serializes and writes a scan result to the disk cache.
func (c *DiskCache) Put(key Digest, res *prelex.Result, contentLen int) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(toPayload(res, contentLen)); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	if err := os.Rename(f.Name(), p); err != nil {
		return err
	}
	committed = true
	return nil
}

// Get reads a cached result for key and rebuilds tokens from content.
// A missing, stale or inconsistent entry is a miss, not an error.
func (c *DiskCache) Get(key Digest, content []byte) (prelex.Result, bool, error) {
	if c == nil {
		return prelex.Result{}, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return prelex.Result{}, false, nil
		}
		return prelex.Result{}, false, err
	}
	var payload DiskPayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return prelex.Result{}, false, nil
	}
	res, ok := fromPayload(&payload, content)
	return res, ok, nil
}

// Len counts cached entries.
func (c *DiskCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	entries, err := os.ReadDir(filepath.Join(c.dir, "scans"))
	if err != nil {
		return 0
	}
	n := 0
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".mp") {
			n++
		}
	}
	return n
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// тривиально: переименуем каталог и удалим
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}

func toPayload(res *prelex.Result, contentLen int) *DiskPayload {
	p := &DiskPayload{
		Schema: diskCacheSchemaVersion,
		Rules:  prelex.RulesVersion,
		Kinds:  make([]uint8, len(res.Tokens)),
		Tokens: make([]uint32, 0, 2*len(res.Tokens)),
		Spans:  make([]uint32, 0, 2*len(res.Spans)),
		Length: source.NewSpan(0, contentLen).End,
	}
	for i, t := range res.Tokens {
		p.Kinds[i] = uint8(t.Kind)
		p.Tokens = append(p.Tokens, t.Span.Start, t.Span.End)
	}
	for _, s := range res.Spans {
		p.Spans = append(p.Spans, s.Start, s.End)
	}
	return p
}

func fromPayload(p *DiskPayload, content []byte) (prelex.Result, bool) {
	if p.Schema != diskCacheSchemaVersion || p.Rules != prelex.RulesVersion {
		return prelex.Result{}, false
	}
	if int(p.Length) != len(content) || len(p.Tokens) != 2*len(p.Kinds) || len(p.Spans)%2 != 0 {
		return prelex.Result{}, false
	}
	res := prelex.Result{
		Tokens: make([]token.Token, len(p.Kinds)),
		Spans:  make([]source.Span, len(p.Spans)/2),
	}
	for i, k := range p.Kinds {
		start, end := p.Tokens[2*i], p.Tokens[2*i+1]
		if !token.Kind(k).Valid() || start >= end || int(end) > len(content) {
			return prelex.Result{}, false
		}
		res.Tokens[i] = token.New(token.Kind(k), content, int(start), int(end))
	}
	for i := range res.Spans {
		res.Spans[i] = source.Span{Start: p.Spans[2*i], End: p.Spans[2*i+1]}
	}
	if res.Check(content) != nil {
		return prelex.Result{}, false
	}
	return res, true
}
