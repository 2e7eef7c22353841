// Package web serves Peanut Runner to browsers. The simulation runs on the
// server; the page sends input over a websocket and draws the frames it gets back.
package web

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/peanut-runner/internal/assets"
	"github.com/vovakirdan/peanut-runner/internal/core"
	"github.com/vovakirdan/peanut-runner/internal/registry"
)

// Conn is the outgoing side of a client connection.
type Conn interface {
	Send(b []byte) error
	Close() error
}

// Input events queued for the session loop.
type (
	keyEvent struct {
		key     core.Key
		pressed bool
	}
	clickEvent struct {
		x, y float64
	}
	loadedEvent struct {
		asset string
	}
)

// Session runs one game for one client.
// Input is queued and applied between ticks on the Run goroutine, so the
// game itself is never touched concurrently.
type Session struct {
	game     registry.Game
	runtime  core.RuntimeConfig
	conn     Conn
	logger   *log.Logger
	keys     core.KeyState
	inbox    chan any
	done     chan struct{}
	assetURL func(name string) string
}

// NewSession initializes game for a client.
func NewSession(game registry.Game, runtime core.RuntimeConfig, conn Conn, logger *log.Logger) *Session {
	game.Init(runtime)
	return &Session{
		game:     game,
		runtime:  runtime,
		conn:     conn,
		logger:   logger,
		keys:     core.NewKeyState(),
		inbox:    make(chan any, 64),
		done:     make(chan struct{}),
		assetURL: func(name string) string { return "/assets/" + assets.ImagePath(name) },
	}
}

// Handle decodes one client message and queues it.
// Unknown message types are ignored.
func (s *Session) Handle(b []byte) error {
	env, err := DecodeEnvelope(b)
	if err != nil {
		return err
	}

	var ev any
	switch env.T {
	case MsgKey:
		in, err := DecodePayload[KeyInput](env)
		if err != nil {
			return err
		}
		ev = keyEvent{key: core.Key(in.Key), pressed: in.Pressed}
	case MsgClick:
		in, err := DecodePayload[ClickInput](env)
		if err != nil {
			return err
		}
		ev = clickEvent{x: in.X, y: in.Y}
	case MsgLoaded:
		in, err := DecodePayload[LoadedInput](env)
		if err != nil {
			return err
		}
		ev = loadedEvent{asset: in.Asset}
	default:
		return nil
	}

	select {
	case s.inbox <- ev:
	case <-s.done:
	}
	return nil
}

// Run sends the hello message and then steps the game at the tick rate,
// sending a frame after each step. It returns when ctx is done or a send fails.
func (s *Session) Run(ctx context.Context) error {
	defer close(s.done)

	if err := s.send(MsgHello, s.hello()); err != nil {
		return err
	}

	tickRate := s.runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()

	wasOver := false
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-s.inbox:
			s.apply(ev)

		case <-ticker.C:
			res := s.game.Step(s.keys)
			if res.State.GameOver && !wasOver {
				s.logger.Info("run ended", "variant", s.game.ID(), "score", res.State.Score)
			}
			wasOver = res.State.GameOver

			if err := s.send(MsgFrame, res.Frame); err != nil {
				return err
			}
		}
	}
}

// apply hands one input event to the game.
func (s *Session) apply(ev any) {
	switch ev := ev.(type) {
	case keyEvent:
		s.keys.SetPressed(ev.key, ev.pressed)
	case clickEvent:
		if s.game.Click(ev.x, ev.y) {
			s.logger.Info("run restarted", "variant", s.game.ID())
		}
	case loadedEvent:
		// The page draws its own images; the game only needs the signal
		s.game.AssetLoaded(ev.asset, core.Sprite{})
	}
}

func (s *Session) hello() Hello {
	f := s.game.Frame()
	h := Hello{
		Variant: s.game.ID(),
		Title:   s.game.Title(),
		Width:   f.Width,
		Height:  f.Height,
	}
	for _, name := range s.game.Assets() {
		h.Assets = append(h.Assets, AssetRef{Name: name, URL: s.assetURL(name)})
	}
	return h
}

func (s *Session) send(t string, payload any) error {
	b, err := Encode(t, payload)
	if err != nil {
		return err
	}
	if err := s.conn.Send(b); err != nil {
		return fmt.Errorf("send %s: %w", t, err)
	}
	return nil
}
