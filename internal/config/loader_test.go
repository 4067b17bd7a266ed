package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/QueenCDN/AntiShmalala/internal/config"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
telegram:
  token: "123:abc"
gemini:
  api_key: "test-key"
`)

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Triggers.Mute != "Шма, отключись" {
		t.Errorf("unexpected default mute trigger: %q", cfg.Triggers.Mute)
	}
	if cfg.Triggers.Unmute != "Шма, включись" {
		t.Errorf("unexpected default unmute trigger: %q", cfg.Triggers.Unmute)
	}
	if cfg.Logger.Level != "info" {
		t.Errorf("unexpected default log level: %q", cfg.Logger.Level)
	}
	if cfg.Gemini.SystemInstruction == "" {
		t.Error("default system instruction must not be empty")
	}
	if cfg.Messages.NowMuted == cfg.Messages.AlreadyMuted {
		t.Error("mute feedback messages must be distinct")
	}

	task, ok := cfg.Scheduler.Tasks["sql_maintenance"]
	if !ok {
		t.Fatal("sql_maintenance task missing from defaults")
	}
	if !task.Enabled || task.Schedule == "" {
		t.Errorf("unexpected sql_maintenance defaults: %+v", task)
	}
}

func TestLoadConfigTrimsTriggers(t *testing.T) {
	path := writeConfigFile(t, `
telegram:
  token: "123:abc"
gemini:
  api_key: "test-key"
triggers:
  mute: "  Шма, отключись  "
`)

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Triggers.Mute != "Шма, отключись" {
		t.Errorf("trigger should keep casing but lose padding, got %q", cfg.Triggers.Mute)
	}
}

func TestLoadConfigRejectsMissingToken(t *testing.T) {
	path := writeConfigFile(t, `
gemini:
  api_key: "test-key"
`)

	if _, err := config.LoadConfig(path); err == nil {
		t.Fatal("LoadConfig should fail without a telegram token")
	}
}

func TestLoadConfigRejectsBadLogLevel(t *testing.T) {
	path := writeConfigFile(t, `
telegram:
  token: "123:abc"
gemini:
  api_key: "test-key"
logger:
  level: "loud"
`)

	if _, err := config.LoadConfig(path); err == nil {
		t.Fatal("LoadConfig should reject an unknown log level")
	}
}

func TestLoadConfigMissingFileUsesEnv(t *testing.T) {
	t.Setenv("BOT_TELEGRAM_TOKEN", "123:abc")
	t.Setenv("BOT_GEMINI_API_KEY", "test-key")

	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Telegram.Token != "123:abc" {
		t.Errorf("token not picked up from environment: %q", cfg.Telegram.Token)
	}
	if cfg.Gemini.APIKey != "test-key" {
		t.Errorf("api key not picked up from environment: %q", cfg.Gemini.APIKey)
	}
}
