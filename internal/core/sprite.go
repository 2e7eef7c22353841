package core

import (
	"errors"
	"strings"
)

// ErrEmptySprite is returned when sprite art contains no visible rows.
var ErrEmptySprite = errors.New("core: empty sprite")

// Sprite is a small piece of text art drawn scaled into a screen rectangle.
// Spaces in the art are transparent.
type Sprite struct {
	rows [][]rune
}

// ParseSprite builds a sprite from newline separated text art.
// Leading and trailing blank lines are dropped; rows are padded to equal width.
func ParseSprite(art string) (Sprite, error) {
	lines := strings.Split(strings.ReplaceAll(art, "\r\n", "\n"), "\n")

	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return Sprite{}, ErrEmptySprite
	}

	width := 0
	rows := make([][]rune, len(lines))
	for i, l := range lines {
		rows[i] = []rune(l)
		width = Max(width, len(rows[i]))
	}
	for i := range rows {
		for len(rows[i]) < width {
			rows[i] = append(rows[i], ' ')
		}
	}

	return Sprite{rows: rows}, nil
}

// IsZero reports whether the sprite has no art.
func (s Sprite) IsZero() bool {
	return len(s.rows) == 0
}

// Size returns the art dimensions in characters.
func (s Sprite) Size() (w, h int) {
	if s.IsZero() {
		return 0, 0
	}
	return len(s.rows[0]), len(s.rows)
}

// Draw renders the sprite stretched over r using nearest-neighbour sampling.
// A zero sprite fills r with solid blocks.
func (s Sprite) Draw(dst *Screen, r Rect, mirrored bool, c Color) {
	if s.IsZero() {
		dst.DrawRect(r, '█', c)
		return
	}

	w, h := s.Size()
	for dy := 0; dy < r.H; dy++ {
		row := s.rows[dy*h/r.H]
		for dx := 0; dx < r.W; dx++ {
			sx := dx * w / r.W
			if mirrored {
				sx = w - 1 - sx
			}
			ch := row[sx]
			if ch == ' ' {
				continue
			}
			if mirrored {
				ch = mirrorRune(ch)
			}
			dst.SetColored(r.X+dx, r.Y+dy, ch, c)
		}
	}
}

// mirrorRune swaps glyphs that have a horizontal direction.
func mirrorRune(r rune) rune {
	switch r {
	case '/':
		return '\\'
	case '\\':
		return '/'
	case '(':
		return ')'
	case ')':
		return '('
	case '<':
		return '>'
	case '>':
		return '<'
	case '╱':
		return '╲'
	case '╲':
		return '╱'
	}
	return r
}
