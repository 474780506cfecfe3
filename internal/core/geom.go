// Package core provides fundamental types and utilities for the flappy platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Box is an axis-aligned bounding box in world pixels.
// The origin is the top-left corner and Y grows downward.
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

// Center returns the center point of the box.
func (b Box) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// IsZero reports whether the box has never been laid out.
func (b Box) IsZero() bool {
	return b == Box{}
}

// Intersects reports whether this box overlaps another.
// Edges are closed: boxes that merely touch count as intersecting.
func (b Box) Intersects(other Box) bool {
	return Intersects(b, other)
}

// Intersects is the closed-interval AABB overlap test. It is symmetric.
func Intersects(a, b Box) bool {
	return a.X <= b.X+b.W &&
		b.X <= a.X+a.W &&
		a.Y <= b.Y+b.H &&
		b.Y <= a.Y+a.H
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
	return math.Max(min, math.Min(max, val))
}

// ToRad converts degrees to radians.
func ToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
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
