package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/config.yaml
var defaultConfigYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Variant: "classic",
		Surface: SurfaceConfig{
			Width:  800,
			Height: 400,
		},
		TickRate:     60,
		AssetTimeout: 0,
		Keys: KeysConfig{
			Left:      []string{"left", "a"},
			Right:     []string{"right", "d"},
			Jump:      []string{"up", "w"},
			SuperJump: []string{" "},
			Replay:    []string{"enter", "r"},
			Quit:      []string{"q", "ctrl+c"},
			HoldTicks: 15,
		},
		Server: ServerConfig{
			SSHAddr:     ":2222",
			HostKeyPath: ".ssh/peanut_ed25519",
			IdleTimeout: 10 * time.Minute,
			WebAddr:     ":8080",
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultConfigYAML
}
