// Package config provides YAML/TOML configuration loading for Peanut Runner,
// with environment overrides for deployment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/peanut-runner/internal/registry"
)

// ErrUnknownVariant is returned by Validate when the configured variant is not registered.
var ErrUnknownVariant = errors.New("unknown variant")

// Config contains everything the terminal, SSH and browser hosts need.
type Config struct {
	Variant      string        `yaml:"variant" toml:"variant"`
	Surface      SurfaceConfig `yaml:"surface" toml:"surface"`
	TickRate     int           `yaml:"tick_rate" toml:"tick_rate"`         // Simulation steps per second
	AssetTimeout int           `yaml:"asset_timeout" toml:"asset_timeout"` // Ticks to wait for assets; 0 = forever
	Keys         KeysConfig    `yaml:"keys" toml:"keys"`
	Server       ServerConfig  `yaml:"server" toml:"server"`
}

// SurfaceConfig defines the logical playfield size in world units.
type SurfaceConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// KeysConfig maps terminal keys to game controls.
// Key names follow Bubble Tea's key strings ("left", "up", " ", "enter").
type KeysConfig struct {
	Left      []string `yaml:"left" toml:"left"`
	Right     []string `yaml:"right" toml:"right"`
	Jump      []string `yaml:"jump" toml:"jump"`
	SuperJump []string `yaml:"super_jump" toml:"super_jump"`
	Replay    []string `yaml:"replay" toml:"replay"`
	Quit      []string `yaml:"quit" toml:"quit"`

	// Terminals report no key releases, so a key counts as held for this
	// many ticks after its last press.
	HoldTicks int `yaml:"hold_ticks" toml:"hold_ticks"`
}

// ServerConfig defines the SSH and browser listeners.
type ServerConfig struct {
	SSHAddr     string        `yaml:"ssh_addr" toml:"ssh_addr"`
	HostKeyPath string        `yaml:"host_key_path" toml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout" toml:"idle_timeout"`
	WebAddr     string        `yaml:"web_addr" toml:"web_addr"`
}

// Validate checks that the configuration can run a game.
func (c Config) Validate() error {
	if c.Surface.Width <= 0 || c.Surface.Height <= 0 {
		return fmt.Errorf("surface must be positive, got %vx%v", c.Surface.Width, c.Surface.Height)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("tick_rate must be positive, got %d", c.TickRate)
	}
	if c.AssetTimeout < 0 {
		return fmt.Errorf("asset_timeout must not be negative, got %d", c.AssetTimeout)
	}
	if c.Keys.HoldTicks <= 0 {
		return fmt.Errorf("keys.hold_ticks must be positive, got %d", c.Keys.HoldTicks)
	}
	if !registry.Exists(c.Variant) {
		return fmt.Errorf("%w %q", ErrUnknownVariant, c.Variant)
	}
	return nil
}
