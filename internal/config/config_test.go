package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Store != StoreMemory {
		t.Fatalf("expected memory store, got %q", cfg.Store)
	}
	if cfg.Dwell != 1500*time.Millisecond {
		t.Fatalf("expected 1.5s dwell, got %s", cfg.Dwell)
	}
	if !cfg.Sound {
		t.Fatal("expected sound on by default")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SPROUT_STORE", "sqlite")
	t.Setenv("SPROUT_SQLITE_PATH", "/tmp/p.db")
	t.Setenv("SPROUT_DWELL", "0s")
	t.Setenv("SPROUT_SOUND", "false")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Store != StoreSQLite || cfg.SQLitePath != "/tmp/p.db" {
		t.Fatalf("unexpected store config %+v", cfg)
	}
	if cfg.Dwell != 0 || cfg.Sound {
		t.Fatalf("unexpected dwell/sound %+v", cfg)
	}
}

func TestLoadDotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("SPROUT_REDIS_DB=3\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	// godotenv sets the variable for the whole process.
	t.Cleanup(func() { os.Unsetenv("SPROUT_REDIS_DB") })

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RedisDB != 3 {
		t.Fatalf("expected redis db 3 from dotenv, got %d", cfg.RedisDB)
	}
}

func TestLoadRejectsUnknownStore(t *testing.T) {
	t.Setenv("SPROUT_STORE", "floppy")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if !errors.Is(err, ErrUnknownStore) {
		t.Fatalf("expected ErrUnknownStore, got %v", err)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg Config
	t.Setenv("SPROUT_DWELL", "soon")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
