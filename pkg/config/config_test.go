package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/polygrid/pkg/errors"
	"github.com/matzehuels/polygrid/pkg/placement"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestLoadWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, path, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if path != "" {
		t.Errorf("path = %q, want none", path)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
[grid]
max = 40
default_size = 12

[task]
default = "4.1c"
s = 4

[server]
session_ttl = "90m"

[store]
backend = "file"
dir = "/tmp/boards"
`)
	cfg, got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != path {
		t.Errorf("path = %q, want %q", got, path)
	}

	want := Default()
	want.Grid.Max = 40
	want.Grid.DefaultSize = 12
	want.Task.Default = "4.1c"
	want.Task.S = 4
	want.Server.SessionTTL = 90 * time.Minute
	want.Store.Backend = "file"
	want.Store.Dir = "/tmp/boards"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFromXDG(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	dir := filepath.Join(xdg, "polygrid")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[task]\ndefault = \"2a\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, path, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(dir, "config.toml") || cfg.Task.Default != "2a" {
		t.Errorf("Load() = %q from %q", cfg.Task.Default, path)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		code errors.Code
	}{
		{"syntax", "[grid\nmax = 3", errors.ErrCodeInvalidInput},
		{"unknown key", "[grid]\ncolor = \"red\"\n", errors.ErrCodeInvalidInput},
		{"size above max", "[grid]\nmax = 5\ndefault_size = 6\n", errors.ErrCodeInvalidDimension},
		{"max below min", "[grid]\nmin = 5\nmax = 4\ndefault_size = 5\n", errors.ErrCodeInvalidDimension},
		{"zero min", "[grid]\nmin = 0\n", errors.ErrCodeInvalidDimension},
		{"unknown task", "[task]\ndefault = \"5z\"\n", errors.ErrCodeUnknownTask},
		{"bad parameter", "[task]\nt = 0\n", errors.ErrCodeInvalidParameter},
		{"bad backend", "[store]\nbackend = \"etcd\"\n", errors.ErrCodeInvalidInput},
		{"bad ttl", "[server]\nsession_ttl = \"-1h\"\n", errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Load(writeFile(t, tt.body))
			if !errors.Is(err, tt.code) {
				t.Errorf("Load() error = %v, want %s", err, tt.code)
			}
		})
	}

	if _, _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Load(absent) error = %v, want NOT_FOUND", err)
	}
}

func TestEngineOptions(t *testing.T) {
	cfg := Default()
	cfg.Grid.DefaultSize = 7
	cfg.Task.Default = "1b"
	cfg.Task.S, cfg.Task.T = 2, 4

	e, err := placement.New(cfg.EngineOptions()...)
	if err != nil {
		t.Fatal(err)
	}
	if e.GridSize() != 7 || e.Task().Code != "1b" || e.Params() != (placement.Params{S: 2, T: 4}) {
		t.Errorf("engine built with size %d task %s params %+v", e.GridSize(), e.Task().Code, e.Params())
	}
}

func TestWriteRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Default().Write(&buf); err != nil {
		t.Fatal(err)
	}
	cfg, _, err := Load(writeFile(t, buf.String()))
	if err != nil {
		t.Fatalf("written config does not load: %v\n%s", err, buf.String())
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
