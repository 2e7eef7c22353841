package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/peanut-runner/internal/platform/tui"
	"github.com/vovakirdan/peanut-runner/internal/platform/web"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeWeb    string
	flagIdleTimeout string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with a variant menu.
With --web, the browser server runs alongside on the given address.

Host key handling:
  - Uses server.host_key_path from the config, or --host-key
  - The key is generated on first start if missing

Examples:
  peanut serve                        # Listen on the configured address (:2222)
  peanut serve --ssh :2323            # Listen on port 2323
  peanut serve --web :8080            # Also serve browsers
  peanut serve --idle-timeout 5m

Users can connect with:
  ssh localhost -p 2222`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (default from config)")
	serveCmd.Flags().StringVar(&flagServeWeb, "web", "", "Also serve browsers on this address")
	serveCmd.Flags().StringVar(&flagIdleTimeout, "idle-timeout", "", "Idle timeout before disconnecting (e.g. 10m)")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagSSHAddr != "" {
		cfg.Server.SSHAddr = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.Server.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout != "" {
		d, err := parseDuration(flagIdleTimeout)
		if err != nil {
			return err
		}
		cfg.Server.IdleTimeout = d
	}

	server, err := tui.NewSSHServer(cfg, flagSeed, newLogger("peanut-ssh"))
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	fmt.Printf("Connect with: ssh localhost -p %s\n", port(cfg.Server.SSHAddr))
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return server.Serve(ctx) })
	if flagServeWeb != "" {
		cfg.Server.WebAddr = flagServeWeb
		webServer := web.NewServer(cfg, flagSeed, newLogger("peanut-web"))
		g.Go(func() error { return webServer.Serve(ctx) })
	}
	return g.Wait()
}
