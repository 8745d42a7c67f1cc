package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"prelex/internal/token"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	p := filepath.Join(dir, FileName)
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeConfig(t, root, "")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	got, err := Find(nested)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if got != want {
		t.Fatalf("Find = %s, want %s", got, want)
	}
}

func TestDiscoverDefaults(t *testing.T) {
	// t.TempDir lives under the system temp dir, which has no prelex.toml
	cfg, err := Discover(t.TempDir())
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if cfg.Path != "" || cfg.Scan.Format != "pretty" || !cfg.Cache.Enabled {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestFindNotFound(t *testing.T) {
	if _, err := Find(t.TempDir()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	p := writeConfig(t, t.TempDir(), `
[scan]
format = "JSONL"
extensions = ["txt", ".log"]
jobs = 4
disable = ["email", "Hashtag"]

[cache]
enabled = false
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Scan.Format != "jsonl" || cfg.Scan.Jobs != 4 || cfg.Cache.Enabled {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if !slices.Equal(cfg.Scan.Extensions, []string{".txt", ".log"}) {
		t.Fatalf("extensions = %v", cfg.Scan.Extensions)
	}
	if cfg.Analyze.Mode != "normal" {
		t.Fatalf("unset analyze mode must keep the default, got %q", cfg.Analyze.Mode)
	}
	kinds, err := cfg.DisabledKinds()
	if err != nil || !slices.Equal(kinds, []token.Kind{token.Email, token.Hashtag}) {
		t.Fatalf("DisabledKinds = %v, %v", kinds, err)
	}
}

func TestLoadEmptyExtensionsMeansAll(t *testing.T) {
	p := writeConfig(t, t.TempDir(), "[scan]\nextensions = []\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Scan.Extensions != nil {
		t.Fatalf("expected nil extensions, got %v", cfg.Scan.Extensions)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"syntax", "[scan\n", "failed to parse TOML"},
		{"unknown key", "[scan]\nfromat = \"json\"\n", "unknown keys"},
		{"format", "[scan]\nformat = \"xml\"\n", "[scan].format"},
		{"jobs", "[scan]\njobs = -1\n", "[scan].jobs"},
		{"kind", "[scan]\ndisable = [\"weather\"]\n", "unknown token kind"},
		{"boundary", "[scan]\ndisable = [\"boundary\"]\n", "cannot be disabled"},
		{"mode", "[analyze]\nmode = \"fast\"\n", "[analyze].mode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := writeConfig(t, t.TempDir(), tt.body)
			_, err := Load(p)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}
