package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/peanut-runner/internal/platform/web"
)

var flagWebAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the game to browsers",
	Long: `Start an HTTP server with the game page. The simulation runs on the
server; each browser tab plays its own game over a websocket.

Pick a variant with the page's selector or ?variant=super.

Examples:
  peanut web
  peanut web --addr :9000
  PEANUT_WEB_ADDR=:9000 peanut web`,
	Args: cobra.NoArgs,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", "", "HTTP address (host:port, default from config)")
}

func runWeb(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagWebAddr != "" {
		cfg.Server.WebAddr = flagWebAddr
	}

	server := web.NewServer(cfg, flagSeed, newLogger("peanut-web"))

	fmt.Printf("Open http://localhost:%s in a browser\n", port(cfg.Server.WebAddr))
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
