package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_MuteAndLogFile(t *testing.T) {
	t.Setenv("FLU_VARIANT", "")
	path := filepath.Join(t.TempDir(), "flu.yaml")
	if err := os.WriteFile(path, []byte("variant: lifetime\naudio: true\n"), 0600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	logPath := filepath.Join(t.TempDir(), "flu.log")

	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{"--config", path, "--mute", "--log-file", logPath}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Audio {
		t.Fatal("--mute did not disable audio")
	}
	if cfg.Logging.File != logPath {
		t.Fatalf("log file = %q, want %q", cfg.Logging.File, logPath)
	}
	if cfg.Variant != "lifetime" {
		t.Fatalf("variant from file lost: %q", cfg.Variant)
	}
}

func TestLoadConfig_SeedFlagZeroOverridesFile(t *testing.T) {
	t.Setenv("FLU_SEED", "")
	path := filepath.Join(t.TempDir(), "flu.yaml")
	if err := os.WriteFile(path, []byte("seed: 99\n"), 0600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{"--config", path, "--seed", "0"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Seed != 0 {
		t.Fatalf("seed = %d, want explicit 0", cfg.Seed)
	}
	if cfg.SessionOptions() != nil {
		t.Fatal("seed 0 should fall back to a clock-seeded session")
	}
}

func TestLoadConfig_BadLogLevel(t *testing.T) {
	t.Setenv("FLU_LOG_LEVEL", "loud")
	cmd := newRootCmd()
	if err := cmd.ParseFlags(nil); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if _, err := loadConfig(cmd); err == nil {
		t.Fatal("expected invalid log level to be rejected")
	}
}
