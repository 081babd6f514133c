package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/wfunc/hangman/words"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig should not fail without a config file, got: %v", err)
	}

	if cfg.Server.HTTPAddress != ":8080" {
		t.Errorf("Expected default http address :8080, got %s", cfg.Server.HTTPAddress)
	}
	if cfg.Server.IdleTimeout != 30*time.Minute {
		t.Errorf("Expected default idle timeout 30m, got %v", cfg.Server.IdleTimeout)
	}
	if cfg.Server.Heartbeat != 30*time.Second {
		t.Errorf("Expected default heartbeat 30s, got %v", cfg.Server.Heartbeat)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Expected default log level info, got %s", cfg.Log.Level)
	}
	if len(cfg.Catalog) != 0 {
		t.Errorf("Expected empty catalog by default, got %d entries", len(cfg.Catalog))
	}
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	data := `
server:
  http_address: ":7000"
  idle_timeout: 90s
  heartbeat_interval: 5s
log:
  level: debug
catalog:
  - word: gopher
    hint: Mascot
  - word: channel
    hint: Communicates by sharing
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(data), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.HTTPAddress != ":7000" {
		t.Errorf("Expected http address :7000, got %s", cfg.Server.HTTPAddress)
	}
	if cfg.Server.IdleTimeout != 90*time.Second {
		t.Errorf("Expected idle timeout 90s, got %v", cfg.Server.IdleTimeout)
	}
	if cfg.Server.Heartbeat != 5*time.Second {
		t.Errorf("Expected heartbeat 5s, got %v", cfg.Server.Heartbeat)
	}
	if cfg.Server.RPCAddress != ":9090" {
		t.Errorf("Expected default rpc address to survive, got %s", cfg.Server.RPCAddress)
	}
	if len(cfg.Catalog) != 2 || cfg.Catalog[0].Word != "gopher" || cfg.Catalog[1].Hint != "Communicates by sharing" {
		t.Errorf("Unexpected catalog: %+v", cfg.Catalog)
	}
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("HANGMAN_LOG_LEVEL", "warn")

	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Expected env override warn, got %s", cfg.Log.Level)
	}
}

func TestConfig_WordCatalog(t *testing.T) {
	cfg := &Config{}
	catalog, err := cfg.WordCatalog()
	if err != nil || catalog.Len() != words.Default().Len() {
		t.Errorf("Expected built-in catalog, got %v (%v)", catalog, err)
	}

	cfg.Catalog = []CatalogEntry{{Word: "gopher", Hint: "mascot"}}
	catalog, err = cfg.WordCatalog()
	if err != nil {
		t.Fatalf("WordCatalog failed: %v", err)
	}
	if e := catalog.Entries()[0]; e.Word != "GOPHER" || e.Hint != "mascot" {
		t.Errorf("Unexpected entry %+v", e)
	}

	cfg.Catalog = []CatalogEntry{{Word: "r2d2"}}
	if _, err := cfg.WordCatalog(); !errors.Is(err, words.ErrInvalidWord) {
		t.Errorf("Expected ErrInvalidWord, got %v", err)
	}
}
