package core

import (
	"errors"
	"testing"
)

func TestParseSprite(t *testing.T) {
	s, err := ParseSprite("\n ab\nabc\n\n")
	if err != nil {
		t.Fatalf("ParseSprite() failed: %v", err)
	}

	w, h := s.Size()
	if w != 3 || h != 2 {
		t.Errorf("Size() = %dx%d, expected 3x2", w, h)
	}
}

func TestParseSpriteEmpty(t *testing.T) {
	_, err := ParseSprite("\n   \n")
	if !errors.Is(err, ErrEmptySprite) {
		t.Errorf("ParseSprite() error = %v, expected ErrEmptySprite", err)
	}
}

func TestSpriteDrawScaled(t *testing.T) {
	s, err := ParseSprite("AB\nCD")
	if err != nil {
		t.Fatalf("ParseSprite() failed: %v", err)
	}

	dst := NewScreen(10, 10)
	s.Draw(dst, NewRect(0, 0, 4, 4), false, ColorOrange)

	expected := []string{"AABB", "AABB", "CCDD", "CCDD"}
	for y, want := range expected {
		if got := dst.Row(y)[:4]; got != want {
			t.Errorf("row %d = %q, expected %q", y, got, want)
		}
	}
	if dst.GetCell(0, 0).Color != ColorOrange {
		t.Error("Draw should apply the color")
	}
}

func TestSpriteDrawMirrored(t *testing.T) {
	s, err := ParseSprite("A/")
	if err != nil {
		t.Fatalf("ParseSprite() failed: %v", err)
	}

	dst := NewScreen(2, 1)
	s.Draw(dst, NewRect(0, 0, 2, 1), true, ColorDefault)

	if got := dst.Row(0); got != "\\A" {
		t.Errorf("mirrored row = %q, expected %q", got, "\\A")
	}
}

func TestSpriteTransparency(t *testing.T) {
	s, err := ParseSprite("A B")
	if err != nil {
		t.Fatalf("ParseSprite() failed: %v", err)
	}

	dst := NewScreen(3, 1)
	dst.Fill('.', ColorDefault)
	s.Draw(dst, NewRect(0, 0, 3, 1), false, ColorDefault)

	if got := dst.Row(0); got != "A.B" {
		t.Errorf("row = %q, expected spaces to be transparent", got)
	}
}

func TestZeroSpriteDrawsBlock(t *testing.T) {
	dst := NewScreen(3, 2)
	Sprite{}.Draw(dst, NewRect(0, 0, 2, 2), false, ColorRed)

	if dst.Get(0, 0) != '█' || dst.Get(1, 1) != '█' {
		t.Error("Zero sprite should fill the rect with blocks")
	}
	if dst.Get(2, 0) != ' ' {
		t.Error("Zero sprite should stay inside the rect")
	}
}
