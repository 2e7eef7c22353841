package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/peanut-runner/internal/config"
	"github.com/vovakirdan/peanut-runner/internal/core"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := config.Default()
	cfg.TickRate = 120
	srv := httptest.NewServer(NewServer(cfg, 7, log.New(io.Discard)).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url) //nolint:gosec // test server URL
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp.StatusCode, string(body)
}

func TestServeStatic(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		path     string
		status   int
		contains string
	}{
		{"/", http.StatusOK, "<canvas"},
		{"/assets/player.svg", http.StatusOK, "<svg"},
		{"/assets/butter.svg", http.StatusOK, "<svg"},
		{"/assets/anvil.svg", http.StatusNotFound, ""},
		{"/variants", http.StatusOK, `"id":"classic"`},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			status, body := get(t, srv.URL+tc.path)
			if status != tc.status {
				t.Errorf("status = %d, expected %d", status, tc.status)
			}
			if !strings.Contains(body, tc.contains) {
				t.Errorf("body should contain %q", tc.contains)
			}
		})
	}
}

func wsURL(srv *httptest.Server, query string) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws" + query
}

func readEnvelope(t *testing.T, ws *websocket.Conn) Envelope {
	t.Helper()
	_ = ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, b, err := ws.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	env, err := DecodeEnvelope(b)
	if err != nil {
		t.Fatal(err)
	}
	return env
}

func TestWebsocketGame(t *testing.T) {
	srv := newTestServer(t)

	ws, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "?variant=super"), nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer ws.Close()

	env := readEnvelope(t, ws)
	if env.T != MsgHello {
		t.Fatalf("first message = %q, expected hello", env.T)
	}
	hello, err := DecodePayload[Hello](env)
	if err != nil {
		t.Fatal(err)
	}
	if hello.Variant != "super" {
		t.Errorf("variant = %q, expected super", hello.Variant)
	}

	for _, a := range hello.Assets {
		b, err := Encode(MsgLoaded, LoadedInput{Asset: a.Name})
		if err != nil {
			t.Fatal(err)
		}
		if err := ws.WriteMessage(websocket.TextMessage, b); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}

	for {
		env := readEnvelope(t, ws)
		if env.T != MsgFrame {
			continue
		}
		f, err := DecodePayload[FrameOutput](env)
		if err != nil {
			t.Fatal(err)
		}
		if f.Phase == core.PhaseRunning {
			if f.Width != 800 || f.Player.Kind != "player" {
				t.Errorf("frame = %+v", f)
			}
			return
		}
	}
}

func TestWebsocketDefaultAndUnknownVariant(t *testing.T) {
	srv := newTestServer(t)

	ws, _, err := websocket.DefaultDialer.Dial(wsURL(srv, ""), nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	hello, err := DecodePayload[Hello](readEnvelope(t, ws))
	if err != nil {
		t.Fatal(err)
	}
	if hello.Variant != "classic" {
		t.Errorf("default variant = %q, expected classic", hello.Variant)
	}
	ws.Close()

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, "?variant=mega"), nil)
	if err == nil {
		t.Fatal("dial should fail for an unknown variant")
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown variant response = %v, expected 404", resp)
	}
}
