// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an axis-aligned bounding box in world space.
// Every physical entity, obstacle hitbox and the camera viewport is a Rect.
type Rect struct {
	X float64 `json:"x"` // Top-left corner
	Y float64 `json:"y"`
	W float64 `json:"w"` // Width and height, never negative
	H float64 `json:"h"`
}

// NewRect creates a new rectangle with the given position and dimensions.
// Negative sizes are clamped to zero.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: math.Max(0, w), H: math.Max(0, h)}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Shrink returns the rectangle inset by pad on all sides.
// Width and height bottom out at zero.
func (r Rect) Shrink(pad float64) Rect {
	return Rect{
		X: r.X + pad,
		Y: r.Y + pad,
		W: math.Max(0, r.W-2*pad),
		H: math.Max(0, r.H-2*pad),
	}
}

// Expand returns the rectangle grown by pad on all sides.
func (r Rect) Expand(pad float64) Rect {
	return Rect{X: r.X - pad, Y: r.Y - pad, W: r.W + 2*pad, H: r.H + 2*pad}
}

// Moved returns a copy of the rectangle translated by (dx, dy).
func (r Rect) Moved(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// ClampInto returns the rectangle moved so it lies inside [0, w] x [0, h].
func (r Rect) ClampInto(w, h float64) Rect {
	r.X = ClampF(r.X, 0, w-r.W)
	r.Y = ClampF(r.Y, 0, h-r.H)
	return r
}

// ClampF restricts a float64 value to be within [min, max].
// When max < min the lower bound wins.
func ClampF(val, min, max float64) float64 {
	if val > max {
		val = max
	}
	if val < min {
		val = min
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
