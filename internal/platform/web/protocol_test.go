package web

import (
	"errors"
	"testing"
)

func TestEncodeDecode(t *testing.T) {
	b, err := Encode(MsgKey, KeyInput{Key: "ArrowUp", Pressed: true})
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}

	env, err := DecodeEnvelope(b)
	if err != nil {
		t.Fatalf("DecodeEnvelope() failed: %v", err)
	}
	if env.T != MsgKey {
		t.Errorf("T = %q, expected %q", env.T, MsgKey)
	}

	in, err := DecodePayload[KeyInput](env)
	if err != nil {
		t.Fatalf("DecodePayload() failed: %v", err)
	}
	if in.Key != "ArrowUp" || !in.Pressed {
		t.Errorf("payload = %+v", in)
	}
}

func TestEncodeErrors(t *testing.T) {
	if _, err := Encode("", KeyInput{}); err == nil {
		t.Error("Encode() should reject an empty type")
	}
	if _, err := Encode(MsgKey, nil); err == nil {
		t.Error("Encode() should reject a nil payload")
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := DecodeEnvelope(nil); !errors.Is(err, ErrEmptyMessage) {
		t.Errorf("DecodeEnvelope(nil) = %v, expected ErrEmptyMessage", err)
	}
	if _, err := DecodeEnvelope([]byte("{not json")); err == nil {
		t.Error("DecodeEnvelope() should reject invalid JSON")
	}
	if _, err := DecodePayload[ClickInput](Envelope{T: MsgClick}); err == nil {
		t.Error("DecodePayload() should reject an empty payload")
	}
	if _, err := DecodePayload[ClickInput](Envelope{T: MsgClick, P: []byte(`{"x":"left"}`)}); err == nil {
		t.Error("DecodePayload() should reject a mistyped payload")
	}
}
