package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvVariant  = "PEANUT_VARIANT"
	EnvSSHAddr  = "PEANUT_SSH_ADDR"
	EnvWebAddr  = "PEANUT_WEB_ADDR"
	EnvTickRate = "PEANUT_TICK_RATE"
)

// Load loads the configuration.
// Search order: customPath -> ~/.peanut/config.yaml -> ./configs/config.yaml -> embedded default.
// Files only need the keys they change; the rest keep their defaults.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return Default(), err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(filepath.Join("configs", "config.yaml")); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := Default()
	if err := yaml.Unmarshal(defaultConfigYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile decodes one config file over the defaults.
// Files ending in .toml are TOML, everything else is YAML.
func loadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Default(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".peanut", filename)
}

// ApplyEnv overrides cfg from PEANUT_* variables.
// The process environment wins over values read from envFiles; missing
// env files are skipped.
func ApplyEnv(cfg *Config, envFiles ...string) error {
	fileVars := make(map[string]string)
	for _, f := range envFiles {
		vars, err := godotenv.Read(f)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to read env file %s: %w", f, err)
		}
		for k, v := range vars {
			fileVars[k] = v
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}

	if v, ok := lookup(EnvVariant); ok && v != "" {
		cfg.Variant = v
	}
	if v, ok := lookup(EnvSSHAddr); ok && v != "" {
		cfg.Server.SSHAddr = v
	}
	if v, ok := lookup(EnvWebAddr); ok && v != "" {
		cfg.Server.WebAddr = v
	}
	if v, ok := lookup(EnvTickRate); ok && v != "" {
		rate, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvTickRate, v, err)
		}
		cfg.TickRate = rate
	}
	return nil
}
