// peanut is a side-scrolling runner: jump a jar of peanut butter over
// hazards and collect peanuts, in the terminal, over SSH or in a browser.
//
// Usage:
//
//	peanut list              - List available variants
//	peanut play [variant]    - Play a variant (default from config)
//	peanut menu              - Pick a variant interactively
//	peanut serve             - Start SSH server for remote play
//	peanut web               - Serve the game to browsers
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: from config, 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--config <path>  - Load a YAML or TOML config file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/peanut-runner/internal/games/runner"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "peanut",
	Short: "Peanut Runner - jump hazards and collect peanuts",
	Long: `Peanut Runner is a side-scrolling arcade game. Move the jar, jump over
the hazards and collect peanuts (10 points) and butter (50 points).

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  web      - Serve the game to browsers

Examples:
  peanut list
  peanut play super
  peanut menu --fps 30
  peanut serve --ssh :2222 --web :8080
  peanut web --config ./peanut.toml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (.yaml or .toml)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
}
