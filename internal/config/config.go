// Package config discovers and decodes prelex.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"prelex/internal/token"
)

// FileName is the name looked up by Find.
const FileName = "prelex.toml"

// ErrNotFound is returned by Find when no prelex.toml exists up to the root.
var ErrNotFound = errors.New("no " + FileName + " found")

// Config mirrors prelex.toml.
type Config struct {
	Path    string        `toml:"-"` // file the config was read from, empty for defaults
	Scan    ScanConfig    `toml:"scan"`
	Cache   CacheConfig   `toml:"cache"`
	Analyze AnalyzeConfig `toml:"analyze"`
}

type ScanConfig struct {
	Format     string   `toml:"format"`
	Extensions []string `toml:"extensions"`
	Jobs       int      `toml:"jobs"`
	Check      bool     `toml:"check"`
	Disable    []string `toml:"disable"` // kind names, e.g. "email"
}

type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

type AnalyzeConfig struct {
	Mode string `toml:"mode"`
}

// Formats lists the accepted [scan].format values.
var Formats = []string{"pretty", "json", "jsonl"}

// Modes lists the accepted [analyze].mode values.
var Modes = []string{"normal", "search", "extended"}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		Scan: ScanConfig{
			Format:     "pretty",
			Extensions: []string{".txt", ".md"},
		},
		Cache:   CacheConfig{Enabled: true},
		Analyze: AnalyzeConfig{Mode: "normal"},
	}
}

// Find walks up from startDir looking for prelex.toml.
func Find(startDir string) (string, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", ErrNotFound
}

// Load decodes path over the defaults and validates the result.
// Unknown keys are rejected so typos do not pass silently.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	// пустой список расширений в файле означает "все файлы"
	if meta.IsDefined("scan", "extensions") && len(cfg.Scan.Extensions) == 0 {
		cfg.Scan.Extensions = nil
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover finds and loads the nearest prelex.toml. When none exists it
// returns the defaults and a nil error.
func Discover(startDir string) (Config, error) {
	path, err := Find(startDir)
	if errors.Is(err, ErrNotFound) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, err
	}
	return Load(path)
}

// Validate checks enumerated values and numeric ranges.
func (c *Config) Validate() error {
	c.Scan.Format = strings.ToLower(strings.TrimSpace(c.Scan.Format))
	if !slices.Contains(Formats, c.Scan.Format) {
		return fmt.Errorf("[scan].format must be one of %s, got %q", strings.Join(Formats, "|"), c.Scan.Format)
	}
	if c.Scan.Jobs < 0 {
		return fmt.Errorf("[scan].jobs must be >= 0, got %d", c.Scan.Jobs)
	}
	for i, ext := range c.Scan.Extensions {
		if ext == "" {
			return fmt.Errorf("[scan].extensions[%d] is empty", i)
		}
		if !strings.HasPrefix(ext, ".") {
			c.Scan.Extensions[i] = "." + ext
		}
	}
	if _, err := c.DisabledKinds(); err != nil {
		return err
	}
	c.Analyze.Mode = strings.ToLower(strings.TrimSpace(c.Analyze.Mode))
	if c.Analyze.Mode == "" {
		c.Analyze.Mode = "normal"
	}
	if !slices.Contains(Modes, c.Analyze.Mode) {
		return fmt.Errorf("[analyze].mode must be one of %s, got %q", strings.Join(Modes, "|"), c.Analyze.Mode)
	}
	return nil
}

// DisabledKinds resolves [scan].disable to token kinds.
func (c *Config) DisabledKinds() ([]token.Kind, error) {
	return ParseKinds(c.Scan.Disable)
}

// ParseKinds resolves kind names; Boundary is rejected because the
// sentence-boundary step cannot be turned off.
func ParseKinds(names []string) ([]token.Kind, error) {
	out := make([]token.Kind, 0, len(names))
	for _, name := range names {
		k, ok := token.ParseKind(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("unknown token kind %q", name)
		}
		if k == token.Boundary {
			return nil, fmt.Errorf("kind %q cannot be disabled", name)
		}
		out = append(out, k)
	}
	return out, nil
}
