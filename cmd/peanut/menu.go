package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/peanut-runner/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
After a run ends, press Esc or B to return to the menu.

Examples:
  peanut menu
  peanut menu --fps 30`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	width, height := terminalSize()
	if err := tui.RunSession(tui.SettingsFromConfig(cfg, flagSeed, width, height, nil)); err != nil {
		return fmt.Errorf("error running menu: %w", err)
	}
	return nil
}
