package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	// Test a few key bindings
	if defaults.Quit != "ctrl+c" {
		t.Errorf("Default Quit key = %s, want ctrl+c", defaults.Quit)
	}
	if defaults.RunQuery != "ctrl+r" {
		t.Errorf("Default RunQuery key = %s, want ctrl+r", defaults.RunQuery)
	}
	if defaults.NextField != "tab" {
		t.Errorf("Default NextField key = %s, want tab", defaults.NextField)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("TABULA_DB", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	// Should return default config
	if cfg.KeyMappings.Quit != "ctrl+c" {
		t.Errorf("Loaded config Quit key = %s, want ctrl+c (default)", cfg.KeyMappings.Quit)
	}
	if filepath.Base(cfg.Database.Path) != DefaultDatabaseName {
		t.Errorf("Database path = %s, want file named %s", cfg.Database.Path, DefaultDatabaseName)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging level = %s, want info", cfg.Logging.Level)
	}
	if cfg.Export.DefaultFormat != "csv" {
		t.Errorf("Default export format = %s, want csv", cfg.Export.DefaultFormat)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("TABULA_DB", "")

	configDir := filepath.Join(tempDir, "tabula")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	// Write custom config
	configContent := `database:
  path: /tmp/shop.db
logging:
  level: debug
  max_backups: 7
key_mappings:
  quit: "ctrl+q"
  run_query: "f5"
`
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	// Should load custom values
	if cfg.Database.Path != "/tmp/shop.db" {
		t.Errorf("Loaded database path = %s, want /tmp/shop.db", cfg.Database.Path)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Loaded logging level = %s, want debug", cfg.Logging.Level)
	}
	if cfg.Logging.MaxBackups != 7 {
		t.Errorf("Loaded max backups = %d, want 7", cfg.Logging.MaxBackups)
	}
	if cfg.KeyMappings.Quit != "ctrl+q" {
		t.Errorf("Loaded Quit key = %s, want ctrl+q", cfg.KeyMappings.Quit)
	}
	if cfg.KeyMappings.RunQuery != "f5" {
		t.Errorf("Loaded RunQuery key = %s, want f5", cfg.KeyMappings.RunQuery)
	}

	// Unset values should use defaults
	if cfg.KeyMappings.Export != "ctrl+e" {
		t.Errorf("Export key = %s, want ctrl+e (default)", cfg.KeyMappings.Export)
	}
	if cfg.Logging.MaxSizeMB != 10 {
		t.Errorf("Max size = %d, want 10 (default)", cfg.Logging.MaxSizeMB)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	configDir := filepath.Join(tempDir, "tabula")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("database: [unclosed"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() with invalid YAML should fail")
	}
}

func TestDatabaseEnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TABULA_DB", "/tmp/from-env.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Database.Path != "/tmp/from-env.db" {
		t.Errorf("Database path = %s, want /tmp/from-env.db", cfg.Database.Path)
	}
}

func TestSaveConfig(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("TABULA_DB", "")

	cfg := Default()
	cfg.KeyMappings.Quit = "ctrl+x"
	cfg.Database.Path = "/tmp/saved.db"

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	// Verify file was created
	configPath := filepath.Join(tempDir, "tabula", "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Errorf("Config file was not created at %s", configPath)
	}

	// Load it back
	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() failed: %v", err)
	}

	if loaded.KeyMappings.Quit != "ctrl+x" {
		t.Errorf("Loaded Quit key = %s, want ctrl+x", loaded.KeyMappings.Quit)
	}
	if loaded.Database.Path != "/tmp/saved.db" {
		t.Errorf("Loaded database path = %s, want /tmp/saved.db", loaded.Database.Path)
	}
}
