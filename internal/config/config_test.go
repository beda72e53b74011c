package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultWhenMissing(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("SHOPMATE_BIND", "")
	t.Setenv("SHOPMATE_PORT", "")
	t.Setenv("SHOPMATE_DB", "")

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Bind != "127.0.0.1" {
		t.Fatalf("Bind = %q, want %q", cfg.Bind, "127.0.0.1")
	}
	if cfg.Port != 5000 {
		t.Fatalf("Port = %d, want %d", cfg.Port, 5000)
	}
	if cfg.DBPath != "" {
		t.Fatalf("DBPath = %q, want empty (in-memory)", cfg.DBPath)
	}
}

func TestLoad_OverridesFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	if err := os.WriteFile(configPath, []byte(`{"port": 8080, "bind": "0.0.0.0"}`), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != 8080 {
		t.Fatalf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.Bind != "0.0.0.0" {
		t.Fatalf("Bind = %q, want 0.0.0.0", cfg.Bind)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	if err := os.WriteFile(configPath, []byte(`{"db_path": "/tmp/shopmate.db"}`), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DBPath != "/tmp/shopmate.db" {
		t.Fatalf("DBPath = %q, want /tmp/shopmate.db", cfg.DBPath)
	}
	if cfg.Port != 5000 {
		t.Fatalf("Port = %d, want 5000 (default)", cfg.Port)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	if err := os.WriteFile(configPath, []byte(`{not json}`), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, err := Load(tmpDir); err == nil {
		t.Fatalf("Load() expected error, got nil")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	if err := os.WriteFile(configPath, []byte(`{"port": 8080}`), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	t.Setenv("SHOPMATE_PORT", "9000")
	t.Setenv("SHOPMATE_BIND", "0.0.0.0")

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != 9000 {
		t.Fatalf("Port = %d, want 9000 (env)", cfg.Port)
	}
	if cfg.Bind != "0.0.0.0" {
		t.Fatalf("Bind = %q, want 0.0.0.0 (env)", cfg.Bind)
	}
}

func TestLoad_EnvInvalidPortIgnored(t *testing.T) {
	tmpDir := t.TempDir()

	t.Setenv("SHOPMATE_PORT", "not-a-port")

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != 5000 {
		t.Fatalf("Port = %d, want 5000 (default, bad env ignored)", cfg.Port)
	}
}

func TestLoad_DisabledTools(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	if err := os.WriteFile(configPath, []byte(`{"disabled_tools": ["product_reset", "cart_clear"]}`), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cfg.DisabledTools) != 2 {
		t.Fatalf("DisabledTools length = %d, want 2", len(cfg.DisabledTools))
	}
	if cfg.DisabledTools[0] != "product_reset" {
		t.Errorf("DisabledTools[0] = %q, want %q", cfg.DisabledTools[0], "product_reset")
	}
	if cfg.DisabledTools[1] != "cart_clear" {
		t.Errorf("DisabledTools[1] = %q, want %q", cfg.DisabledTools[1], "cart_clear")
	}
}

func TestMerge_ScalarOverride(t *testing.T) {
	base := &Config{Bind: "127.0.0.1", Port: 5000, DBMaxOpenConns: 5}
	overlay := &Config{Port: 8080} // Bind and DBMaxOpenConns are zero values

	result := Merge(base, overlay)

	if result.Port != 8080 {
		t.Errorf("Port = %d, want 8080 (overlay)", result.Port)
	}
	if result.Bind != "127.0.0.1" {
		t.Errorf("Bind = %q, want 127.0.0.1 (base, overlay is zero)", result.Bind)
	}
	if result.DBMaxOpenConns != 5 {
		t.Errorf("DBMaxOpenConns = %d, want 5 (base, overlay is zero)", result.DBMaxOpenConns)
	}
}

func TestMerge_ArrayMergeDedup(t *testing.T) {
	base := &Config{DisabledTools: []string{"product_reset", "cart_clear"}}
	overlay := &Config{DisabledTools: []string{"cart_clear", "checklist_process"}}

	result := Merge(base, overlay)

	if len(result.DisabledTools) != 3 {
		t.Errorf("DisabledTools length = %d, want 3 (merged, deduped)", len(result.DisabledTools))
	}

	has := make(map[string]bool)
	for _, s := range result.DisabledTools {
		has[s] = true
	}
	for _, want := range []string{"product_reset", "cart_clear", "checklist_process"} {
		if !has[want] {
			t.Errorf("DisabledTools missing %q", want)
		}
	}
}

func TestMergeStringSlice_TrimsAndDropsEmpty(t *testing.T) {
	result := mergeStringSlice([]string{" product_list ", ""}, []string{"product_list", "  "})
	if len(result) != 1 || result[0] != "product_list" {
		t.Errorf("mergeStringSlice = %v, want [product_list]", result)
	}
}
