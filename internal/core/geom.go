// Package core provides fundamental types and utilities for the game platform.
// It contains no terminal dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "github.com/go-gl/mathgl/mgl64"

// Rect represents an axis-aligned rectangle in screen cells.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Box is an axis-aligned bounding box in world space.
// It is stored as a center and half extents on each axis.
type Box struct {
	Center mgl64.Vec3
	Half   mgl64.Vec3
}

// NewBox creates a box centered at c with half extents h.
func NewBox(c, h mgl64.Vec3) Box {
	return Box{Center: c, Half: h}
}

// Min returns the minimum corner of the box.
func (b Box) Min() mgl64.Vec3 {
	return b.Center.Sub(b.Half)
}

// Max returns the maximum corner of the box.
func (b Box) Max() mgl64.Vec3 {
	return b.Center.Add(b.Half)
}

// Intersects returns true if the two boxes overlap on every axis.
// Boxes that only touch on a face do not intersect.
func (b Box) Intersects(other Box) bool {
	bMin, bMax := b.Min(), b.Max()
	oMin, oMax := other.Min(), other.Max()
	for i := 0; i < 3; i++ {
		if bMin[i] >= oMax[i] || oMin[i] >= bMax[i] {
			return false
		}
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

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
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
