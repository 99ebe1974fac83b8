// Package core provides fundamental types and utilities for the guardian game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Vec2 represents a point or direction in world coordinates.
type Vec2 struct {
	X, Y float64
}

// Circle represents a circular body in world coordinates.
// Position is mutable during play; the radius is fixed after creation.
type Circle struct {
	X, Y   float64
	Radius float64
}

// RectF represents an axis-aligned rectangle in world coordinates.
type RectF struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// CirclesIntersect returns true if two circles overlap.
// Touching circles (distance exactly equal to the radius sum) do not collide.
func CirclesIntersect(a, b Circle) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	sum := a.Radius + b.Radius
	return dx*dx+dy*dy < sum*sum
}

// CircleIntersectsRect returns true if a circle overlaps a rectangle.
// The circle center is clamped to the rectangle to find the nearest point,
// then the squared distance is compared against the squared radius.
func CircleIntersectsRect(c Circle, r RectF) bool {
	nearestX := ClampF(c.X, r.X, r.Right())
	nearestY := ClampF(c.Y, r.Y, r.Bottom())

	dx := c.X - nearestX
	dy := c.Y - nearestY
	return dx*dx+dy*dy < c.Radius*c.Radius
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
