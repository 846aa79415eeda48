// Package core provides fundamental types and utilities shared by the engine
// and the platform layer. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

import "math"

// Vec is a point or direction in world space.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Len returns the euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Angle returns the direction of v in radians (atan2 convention, y down).
func (v Vec) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// FromAngle returns a vector of the given length pointing at angle radians.
func FromAngle(angle, length float64) Vec {
	return Vec{X: math.Cos(angle) * length, Y: math.Sin(angle) * length}
}

// Distance returns the euclidean distance between two points.
func Distance(a, b Vec) float64 {
	return a.Sub(b).Len()
}

// Box is an axis-aligned rectangle in world space.
// Y grows downward, so Bottom() is the larger y.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewBox creates a box from its top-left corner and size.
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
func (b Box) Center() Vec {
	return Vec{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// Inflate grows the box by dx on both horizontal sides and dy on both vertical sides.
func (b Box) Inflate(dx, dy float64) Box {
	return Box{X: b.X - dx, Y: b.Y - dy, W: b.W + 2*dx, H: b.H + 2*dy}
}

// HorizontalOverlap reports whether the x projections of a and b overlap.
// Touching edges do not count.
func HorizontalOverlap(a, b Box) bool {
	return a.X < b.Right() && a.Right() > b.X
}

// BoxesOverlap reports whether a and b overlap on both axes.
// Edge-touching boxes are not overlapping.
func BoxesOverlap(a, b Box) bool {
	return HorizontalOverlap(a, b) && a.Y < b.Bottom() && a.Bottom() > b.Y
}

// CircleRectDistanceSquared returns the squared distance from center to the
// closest point of rect. The closest point is found by clamping each axis of
// center into the rectangle's span, so a center inside rect yields zero.
func CircleRectDistanceSquared(center Vec, rect Box) float64 {
	closestX := ClampF(center.X, rect.X, rect.Right())
	closestY := ClampF(center.Y, rect.Y, rect.Bottom())
	dx := center.X - closestX
	dy := center.Y - closestY
	return dx*dx + dy*dy
}

// CircleIntersectsBox reports whether a circle strictly intersects rect.
func CircleIntersectsBox(center Vec, radius float64, rect Box) bool {
	return CircleRectDistanceSquared(center, rect) < radius*radius
}

// Rect is an integer cell rectangle used by the Screen buffer.
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

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Sign returns -1, 0 or 1 matching the sign of x.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
