package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	_ "github.com/vovakirdan/peanut-runner/internal/games/runner"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	// Isolate from any real user or local config
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded config = %+v\nexpected %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadCustomYAML(t *testing.T) {
	path := writeFile(t, "custom.yaml", `
variant: super
tick_rate: 30
server:
  idle_timeout: 90s
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Variant != "super" || cfg.TickRate != 30 {
		t.Errorf("variant/tick_rate = %s/%d", cfg.Variant, cfg.TickRate)
	}
	if cfg.Server.IdleTimeout != 90*time.Second {
		t.Errorf("IdleTimeout = %v, expected 90s", cfg.Server.IdleTimeout)
	}
	// Unset keys keep defaults
	if cfg.Surface.Width != 800 || cfg.Server.SSHAddr != ":2222" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadCustomTOML(t *testing.T) {
	path := writeFile(t, "custom.toml", `
variant = "super"
asset_timeout = 120

[surface]
width = 1000

[keys]
jump = ["k"]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Variant != "super" || cfg.AssetTimeout != 120 {
		t.Errorf("variant/asset_timeout = %s/%d", cfg.Variant, cfg.AssetTimeout)
	}
	if cfg.Surface.Width != 1000 || cfg.Surface.Height != 400 {
		t.Errorf("Surface = %+v", cfg.Surface)
	}
	if !reflect.DeepEqual(cfg.Keys.Jump, []string{"k"}) {
		t.Errorf("Keys.Jump = %v", cfg.Keys.Jump)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom file")
	}

	path := writeFile(t, "broken.yaml", "surface: [")
	if _, err := Load(path); err == nil {
		t.Error("Load() should fail for invalid YAML")
	}
}

func TestLoadLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.Mkdir("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "config.yaml"), []byte("variant: super\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Variant != "super" {
		t.Errorf("Variant = %q, expected super from ./configs", cfg.Variant)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"default", func(*Config) {}, true},
		{"super", func(c *Config) { c.Variant = "super" }, true},
		{"zero width", func(c *Config) { c.Surface.Width = 0 }, false},
		{"negative height", func(c *Config) { c.Surface.Height = -1 }, false},
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }, false},
		{"negative timeout", func(c *Config) { c.AssetTimeout = -5 }, false},
		{"zero hold", func(c *Config) { c.Keys.HoldTicks = 0 }, false},
		{"unknown variant", func(c *Config) { c.Variant = "mega" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.valid {
				t.Errorf("Validate() = %v, expected valid=%v", err, tc.valid)
			}
		})
	}

	cfg := Default()
	cfg.Variant = "mega"
	if err := cfg.Validate(); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("Validate() = %v, expected ErrUnknownVariant", err)
	}
}

func TestApplyEnv(t *testing.T) {
	envFile := writeFile(t, ".env", "PEANUT_VARIANT=super\nPEANUT_WEB_ADDR=:9000\nPEANUT_TICK_RATE=30\n")
	t.Setenv(EnvWebAddr, ":7000")

	cfg := Default()
	missing := filepath.Join(t.TempDir(), "nope.env")
	if err := ApplyEnv(&cfg, missing, envFile); err != nil {
		t.Fatalf("ApplyEnv() failed: %v", err)
	}

	if cfg.Variant != "super" {
		t.Errorf("Variant = %q, expected super from env file", cfg.Variant)
	}
	if cfg.Server.WebAddr != ":7000" {
		t.Errorf("WebAddr = %q, process env should win", cfg.Server.WebAddr)
	}
	if cfg.TickRate != 30 {
		t.Errorf("TickRate = %d, expected 30", cfg.TickRate)
	}
	if cfg.Server.SSHAddr != ":2222" {
		t.Errorf("SSHAddr = %q, expected default", cfg.Server.SSHAddr)
	}
}

func TestApplyEnvInvalidTickRate(t *testing.T) {
	t.Setenv(EnvTickRate, "fast")

	cfg := Default()
	if err := ApplyEnv(&cfg); err == nil {
		t.Error("ApplyEnv() should reject a non-numeric tick rate")
	}
}
