package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"daylog/internal/config"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := config.Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Storage.Path == "" {
		t.Errorf("default storage path is empty")
	}
	if cfg.Autosave.DelayMS != 800 {
		t.Errorf("default delay = %d, want 800", cfg.Autosave.DelayMS)
	}
	if cfg.Export.Dir != "." {
		t.Errorf("default export dir = %q, want .", cfg.Export.Dir)
	}
	if cfg.AutosaveDelay() != 800*time.Millisecond {
		t.Errorf("autosave delay = %v", cfg.AutosaveDelay())
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(`
storage:
  path: /tmp/alt.json
autosave:
  delay_ms: 250
`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Storage.Path != "/tmp/alt.json" {
		t.Errorf("storage path = %q", cfg.Storage.Path)
	}
	if cfg.Autosave.DelayMS != 250 {
		t.Errorf("delay = %d, want 250", cfg.Autosave.DelayMS)
	}
	// Unset fields keep their defaults.
	if cfg.Export.Dir != "." {
		t.Errorf("export dir = %q, want default", cfg.Export.Dir)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("storage: [unclosed"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := config.Load(path); err == nil {
		t.Errorf("malformed config must fail to load")
	}
}
