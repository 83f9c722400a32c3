package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}

	if cfg.Seed != 0 {
		t.Errorf("expected zero seed by default, got %d", cfg.Seed)
	}

	if cfg.Game.Dungeon.MapWidth != 80 || cfg.Game.Dungeon.MapHeight != 43 {
		t.Errorf("expected 80x43 default map, got %dx%d", cfg.Game.Dungeon.MapWidth, cfg.Game.Dungeon.MapHeight)
	}

	if cfg.Save.Driver != "file" {
		t.Errorf("expected file save driver by default, got %q", cfg.Save.Driver)
	}
}

func TestLoadConfig_FileNotExists(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.yaml")

	if err != nil {
		t.Errorf("expected no error for missing file, got %v", err)
	}

	if cfg == nil {
		t.Fatal("expected default config for missing file, got nil")
	}
}

func TestLoadConfig_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "chasm.yaml")

	content := `
seed: 42
game:
  light_radius: 8
  player:
    max_hp: 150
save:
  driver: sqlite
  path: /tmp/chasm.db
server:
  listen_addr: ":9000"
  allowed_origins:
    - "http://localhost:3000"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Seed)
	}

	if cfg.Game.LightRadius != 8 {
		t.Errorf("expected light radius 8, got %d", cfg.Game.LightRadius)
	}

	if cfg.Game.Player.MaxHP != 150 {
		t.Errorf("expected player max hp 150, got %d", cfg.Game.Player.MaxHP)
	}

	// Keys absent from the file keep their defaults.
	if cfg.Game.Player.Power != 2 {
		t.Errorf("expected default player power 2, got %d", cfg.Game.Player.Power)
	}

	if cfg.Save.Driver != "sqlite" {
		t.Errorf("expected sqlite save driver, got %q", cfg.Save.Driver)
	}

	if cfg.Server.ListenAddr != ":9000" {
		t.Errorf("expected listen addr :9000, got %q", cfg.Server.ListenAddr)
	}

	if len(cfg.Server.AllowedOrigins) != 1 {
		t.Errorf("expected 1 allowed origin, got %d", len(cfg.Server.AllowedOrigins))
	}
}

func TestLoadConfig_LoggingEnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "chasm.yaml")

	content := `
logging:
  level: WARNING
  file_enabled: false
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FILE_ENABLED", "true")
	t.Setenv("LOG_FILE_PATH", "/tmp/override.log")

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Logging.Level != "DEBUG" {
		t.Errorf("expected env level DEBUG to win over the file, got %q", cfg.Logging.Level)
	}
	if !cfg.Logging.FileEnabled {
		t.Error("expected LOG_FILE_ENABLED=true to win over the file")
	}
	if cfg.Logging.FilePath != "/tmp/override.log" {
		t.Errorf("expected overridden file path, got %q", cfg.Logging.FilePath)
	}
}

func TestLoadConfig_EnvOverridesWithoutFile(t *testing.T) {
	t.Setenv("LOG_LEVEL", "ERROR")

	cfg, err := LoadConfig("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Logging.Level != "ERROR" {
		t.Errorf("expected env level ERROR on the default config, got %q", cfg.Logging.Level)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "chasm.yaml")

	if err := os.WriteFile(configPath, []byte("seed: [not a number"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(configPath); err == nil {
		t.Error("expected error for unparsable file, got nil")
	}
}
