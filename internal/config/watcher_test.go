package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/iamgreaser/forceime/internal/diag"
)

func TestWatcher_ReloadOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "forceime.toml")
	if err := os.WriteFile(path, []byte("[log]\nlevel = \"info\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan Config, 4)
	w, err := NewWatcher(path, func(cfg Config) { reloaded <- cfg }, diag.NullLogger)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("[log]\nlevel = \"debug\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-reloaded:
		if cfg.LogLevel() != diag.LogLevelDebug {
			t.Errorf("reloaded level = %v, want debug", cfg.LogLevel())
		}
	case <-time.After(5 * time.Second):
		t.Fatal("reload callback never fired")
	}
}

func TestWatcher_InvalidConfigKeepsPrevious(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "forceime.toml")
	if err := os.WriteFile(path, []byte("[log]\nlevel = \"info\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan Config, 4)
	w, err := NewWatcher(path, func(cfg Config) { reloaded <- cfg }, diag.NullLogger)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("[log]\nlevel = \"bogus\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-reloaded:
		t.Errorf("invalid config must not trigger reload, got %+v", cfg)
	case <-time.After(500 * time.Millisecond):
		// Expected: the bad file was rejected.
	}
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "forceime.toml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan Config, 4)
	w, err := NewWatcher(path, func(cfg Config) { reloaded <- cfg }, diag.NullLogger)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-reloaded:
		t.Error("changes to sibling files must not trigger reload")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcher_CloseTwice(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "forceime.toml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path, nil, diag.NullLogger)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}
