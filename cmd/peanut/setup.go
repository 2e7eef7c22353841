package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/peanut-runner/internal/config"
)

// loadConfig loads the config file, applies .env and environment overrides,
// then the command-line flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyEnv(&cfg, ".env"); err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newLogger creates the server logger.
func newLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// terminalSize returns the size of stdout, or 80x24 if it is not a terminal.
func terminalSize() (width, height int) {
	width, height = 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

// port returns the port part of a listen address.
func port(addr string) string {
	if _, p, err := net.SplitHostPort(addr); err == nil {
		return p
	}
	return addr
}

// parseDuration parses a flag duration with a readable error.
func parseDuration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	return d, nil
}
