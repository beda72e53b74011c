package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Bind is the interface the HTTP server listens on.
	Bind string `json:"bind,omitempty"`

	// Port is the HTTP server port.
	Port int `json:"port,omitempty"`

	// DBPath is the SQLite database file. Empty means an in-memory
	// database that lives for the duration of the process, which is the
	// default for this demo: the catalog is not meant to survive restarts.
	DBPath string `json:"db_path,omitempty"`

	// DBMaxOpenConns limits the maximum number of open database connections.
	// In-memory databases are always capped at 1 regardless of this value,
	// so that catalog and cart mutations never interleave.
	DBMaxOpenConns int `json:"db_max_open_conns,omitempty"`

	// DisabledTools is a list of MCP tool names to exclude from registration.
	// Unknown tool names are logged as warnings.
	DisabledTools []string `json:"disabled_tools,omitempty"`

	// DisabledTypes is a list of tool type names to disable entirely.
	// Known types: "product", "cart", "checklist".
	DisabledTypes []string `json:"disabled_types,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Bind: "127.0.0.1",
		Port: 5000,
	}
}

// Load loads configuration from baseDir/config.json, applies defaults,
// then overlays environment variables (including any .env file in the
// working directory). The baseDir parameter allows tests to use
// t.TempDir() instead of ~/.shopmate.
func Load(baseDir string) (*Config, error) {
	cfg, err := loadFile(filepath.Join(baseDir, "config.json"))
	if err != nil {
		return nil, err
	}
	applyEnv(cfg)
	return cfg, nil
}

// loadFile loads configuration from a specific file path.
// Returns default config if the file doesn't exist.
func loadFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return Merge(DefaultConfig(), cfg), nil
}

// applyEnv overlays SHOPMATE_* environment variables on cfg.
// A .env file in the working directory is loaded first if present;
// variables already set in the environment win over the file.
func applyEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("SHOPMATE_BIND"); v != "" {
		cfg.Bind = v
	}
	if v := os.Getenv("SHOPMATE_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			cfg.Port = port
		}
	}
	if v := os.Getenv("SHOPMATE_DB"); v != "" {
		cfg.DBPath = v
	}
}

// Merge combines base and overlay configs.
// Overlay values take precedence for scalars; arrays are merged and deduplicated.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	result.Bind = overlay.Bind
	if result.Bind == "" {
		result.Bind = base.Bind
	}

	result.Port = overlay.Port
	if result.Port == 0 {
		result.Port = base.Port
	}

	result.DBPath = overlay.DBPath
	if result.DBPath == "" {
		result.DBPath = base.DBPath
	}

	result.DBMaxOpenConns = overlay.DBMaxOpenConns
	if result.DBMaxOpenConns == 0 {
		result.DBMaxOpenConns = base.DBMaxOpenConns
	}

	result.DisabledTools = mergeStringSlice(base.DisabledTools, overlay.DisabledTools)
	result.DisabledTypes = mergeStringSlice(base.DisabledTypes, overlay.DisabledTypes)

	return result
}

// mergeStringSlice combines two slices, trims whitespace, and removes duplicates.
func mergeStringSlice(a, b []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(a)+len(b))

	for _, s := range a {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}
	for _, s := range b {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
