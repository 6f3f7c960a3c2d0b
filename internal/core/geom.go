// Package core provides fundamental geometry types and utilities for the
// game engine. It contains no external dependencies to keep game logic pure
// and testable.
package core

// Rect represents an axis-aligned bounding box in pixel space.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Contains reports whether the point (px, py) lies inside the rectangle.
// Both bounds are inclusive: the corner (X+W, Y+H) still counts as inside.
// All pickup and enemy-collision checks are built on this primitive.
func (r Rect) Contains(px, py int) bool {
	return px >= r.X && px <= r.X+r.W && py >= r.Y && py <= r.Y+r.H
}

// Contains reports whether (px, py) lies in the closed rectangle
// [x, x+w] x [y, y+h].
func Contains(x, y, w, h, px, py int) bool {
	return Rect{X: x, Y: y, W: w, H: h}.Contains(px, py)
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X > other.X+other.W || other.X > r.X+r.W {
		return false
	}
	if r.Y > other.Y+other.H || other.Y > r.Y+r.H {
		return false
	}
	return true
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
