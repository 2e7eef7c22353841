package web

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vovakirdan/peanut-runner/internal/core"
)

// Message types.
const (
	// Server -> client
	MsgHello = "hello"
	MsgFrame = "frame"

	// Client -> server
	MsgKey    = "key"
	MsgClick  = "click"
	MsgLoaded = "loaded"
)

// ErrEmptyMessage is returned when decoding zero bytes.
var ErrEmptyMessage = errors.New("empty message")

// Envelope wraps every websocket message.
type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"` // Raw payload bytes
}

// Hello is sent once when a connection opens.
type Hello struct {
	Variant string     `json:"variant"`
	Title   string     `json:"title"`
	Width   float64    `json:"width"`
	Height  float64    `json:"height"`
	Assets  []AssetRef `json:"assets"`
}

// AssetRef tells the client where to fetch an image.
type AssetRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// KeyInput reports a key going down or up. Key uses DOM key names.
type KeyInput struct {
	Key     string `json:"key"`
	Pressed bool   `json:"pressed"`
}

// ClickInput is a click in surface coordinates.
type ClickInput struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LoadedInput reports that the client finished loading an asset.
type LoadedInput struct {
	Asset string `json:"asset"`
}

// FrameOutput is the state the client draws each tick.
type FrameOutput = core.Frame

// Encode wraps payload in an envelope of type t.
func Encode(t string, payload any) ([]byte, error) {
	if t == "" {
		return nil, errors.New("encode: empty message type")
	}
	if payload == nil {
		return nil, fmt.Errorf("encode %s: nil payload", t)
	}
	pb, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", t, err)
	}
	return json.Marshal(Envelope{T: t, P: pb})
}

// DecodeEnvelope parses the outer envelope of a message.
func DecodeEnvelope(b []byte) (Envelope, error) {
	if len(b) == 0 {
		return Envelope{}, ErrEmptyMessage
	}
	var e Envelope
	if err := json.Unmarshal(b, &e); err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	return e, nil
}

// DecodePayload parses the payload of env as T.
func DecodePayload[T any](env Envelope) (T, error) {
	var out T
	if len(env.P) == 0 {
		return out, fmt.Errorf("empty payload for type %q", env.T)
	}
	if err := json.Unmarshal(env.P, &out); err != nil {
		return out, fmt.Errorf("decode %s payload: %w", env.T, err)
	}
	return out, nil
}
