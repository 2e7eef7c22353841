package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/peanut-runner/internal/platform/tui"
	"github.com/vovakirdan/peanut-runner/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant, or the configured one.

Controls (defaults, see keys in the config):
  Left/A, Right/D  - Move
  Up/W             - Jump
  Space            - Super jump (super variant)
  Enter/R or click - Play again (after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Examples:
  peanut play
  peanut play super
  peanut play classic --seed 42
  peanut play --config ./my-peanut.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	variant := cfg.Variant
	if len(args) == 1 {
		variant = args[0]
	}

	game, err := registry.Create(variant)
	if err != nil {
		return fmt.Errorf("%w (run 'peanut list' to see variants)", err)
	}

	width, height := terminalSize()
	settings := tui.SettingsFromConfig(cfg, flagSeed, width, height, nil)

	if err := tui.Run(game, settings); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
