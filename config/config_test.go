package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "listServer.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	return path
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfigFile(t, `
addr = ":9090"
backend = "map"
initial_id = 100
log_level = "debug"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Fatalf("addr: %q", cfg.Addr)
	}
	if cfg.Backend != BackendMap {
		t.Fatalf("backend: %q", cfg.Backend)
	}
	if cfg.InitialID != 100 {
		t.Fatalf("initial_id: %d", cfg.InitialID)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log_level: %q", cfg.LogLevel)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	// Незаданные поля получают значения по умолчанию
	path := writeConfigFile(t, `addr = ":7000"`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Default()
	if cfg.Addr != ":7000" {
		t.Fatalf("addr: %q", cfg.Addr)
	}
	if cfg.Backend != want.Backend || cfg.InitialID != want.InitialID || cfg.LogLevel != want.LogLevel {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	path := writeConfigFile(t, `backend = "tree"`)

	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
