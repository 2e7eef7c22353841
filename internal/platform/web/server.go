package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/peanut-runner/internal/assets"
	"github.com/vovakirdan/peanut-runner/internal/config"
	"github.com/vovakirdan/peanut-runner/internal/core"
	"github.com/vovakirdan/peanut-runner/internal/registry"
)

//go:embed static
var staticFS embed.FS

// Connection timing.
const (
	readTimeout  = 60 * time.Second
	writeTimeout = 10 * time.Second
	pingInterval = 25 * time.Second
	readLimit    = 1 << 16
)

// Server serves the game page, its images and the game websocket.
type Server struct {
	config   config.Config
	seed     int64
	logger   *log.Logger
	upgrader websocket.Upgrader
	http     *http.Server
}

// NewServer creates a browser server. A non-zero seed makes every
// connection replay the same spawns.
func NewServer(cfg config.Config, seed int64, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "peanut-web",
		})
	}

	s := &Server{
		config: cfg,
		seed:   seed,
		logger: logger,
		upgrader: websocket.Upgrader{
			// The page is served from this host; other origins are allowed for local dev.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
	s.http = &http.Server{
		Addr:              cfg.Server.WebAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err) // Static path, cannot fail
	}

	mux := http.NewServeMux()
	mux.Handle("GET /", http.FileServerFS(static))
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServerFS(assets.Images())))
	mux.HandleFunc("GET /ws", s.handleWS)
	mux.HandleFunc("GET /variants", s.handleVariants)
	return mux
}

// handleVariants lists the playable variants as JSON.
func (s *Server) handleVariants(w http.ResponseWriter, _ *http.Request) {
	b, err := Encode("variants", registry.List())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(b)
}

// handleWS upgrades the request and plays one game over it.
// The variant comes from the "variant" query parameter.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	variant := r.URL.Query().Get("variant")
	if variant == "" {
		variant = s.config.Variant
	}
	game, err := registry.Create(variant)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	conn := newWSConn(ws)
	defer conn.Close()

	logger := s.logger.With("remote", r.RemoteAddr)
	logger.Info("session started", "variant", variant)
	defer logger.Info("session ended", "variant", variant)

	seed := s.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	session := NewSession(game, core.RuntimeConfig{
		SurfaceW:     s.config.Surface.Width,
		SurfaceH:     s.config.Surface.Height,
		TickRate:     s.config.TickRate,
		Seed:         seed,
		AssetTimeout: s.config.AssetTimeout,
	}, conn, logger)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	runErr := make(chan error, 1)
	go func() {
		runErr <- session.Run(ctx)
		cancel()
	}()
	go conn.pingLoop(ctx)

	// Read loop; ends when the client goes away or the session stops
	go func() {
		<-ctx.Done()
		_ = ws.SetReadDeadline(time.Now())
	}()
	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			break
		}
		if err := session.Handle(msg); err != nil {
			logger.Debug("bad message", "error", err)
		}
	}
	cancel()

	if err := <-runErr; err != nil {
		logger.Debug("session stopped", "error", err)
	}
}

// wsConn adapts a websocket to Conn with one writer at a time.
type wsConn struct {
	ws *websocket.Conn
	mu sync.Mutex
}

func newWSConn(ws *websocket.Conn) *wsConn {
	ws.SetReadLimit(readLimit)
	_ = ws.SetReadDeadline(time.Now().Add(readTimeout))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(readTimeout))
	})
	return &wsConn{ws: ws}
}

// Send writes one text message.
func (c *wsConn) Send(b []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.ws.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.ws.WriteMessage(websocket.TextMessage, b)
}

// Close closes the underlying connection.
func (c *wsConn) Close() error {
	return c.ws.Close()
}

// pingLoop keeps the connection alive until ctx is done.
func (c *wsConn) pingLoop(ctx context.Context) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := c.ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

// ListenAndServe serves until interrupted.
func (s *Server) ListenAndServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Serve(ctx)
}

// Serve runs the HTTP server until ctx is done, then shuts it down.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("starting web server", "address", s.config.Server.WebAddr)

	// Open websockets are hijacked and outlive Shutdown; tie them to ctx instead
	s.http.BaseContext = func(net.Listener) context.Context { return ctx }

	errCh := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("web server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}

// Addr returns the server's listen address string.
func (s *Server) Addr() string {
	return s.config.Server.WebAddr
}
