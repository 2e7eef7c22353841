// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Box is an axis-aligned bounding box in world units (surface pixels).
type Box struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewBox creates a new box with the given position and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Contains reports whether the point (x, y) lies inside the box.
// Edges are inclusive, so a click on the border of a button counts.
func (b Box) Contains(x, y float64) bool {
	return x >= b.X && x <= b.Right() && y >= b.Y && y <= b.Bottom()
}

// Collides reports whether two boxes overlap.
// Projections must overlap strictly on both axes: boxes that only share an
// edge do not collide.
func Collides(a, b Box) bool {
	return a.X < b.Right() &&
		a.Right() > b.X &&
		a.Y < b.Bottom() &&
		a.Bottom() > b.Y
}

// Scale maps the box from a worldW x worldH surface onto a cols x rows grid
// of screen cells. The result always covers at least one cell.
func (b Box) Scale(worldW, worldH float64, cols, rows int) Rect {
	cx, cy := float64(cols), float64(rows)
	x0 := int(math.Floor(b.X * cx / worldW))
	y0 := int(math.Floor(b.Y * cy / worldH))
	x1 := int(math.Ceil(b.Right() * cx / worldW))
	y1 := int(math.Ceil(b.Bottom() * cy / worldH))
	return NewRect(x0, y0, Max(x1-x0, 1), Max(y1-y0, 1))
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
