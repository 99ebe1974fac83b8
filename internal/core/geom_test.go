package core

import (
	"math"
	"testing"
)

func TestCirclesIntersect(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Circle
		expected bool
	}{
		{
			name:     "overlapping circles",
			a:        Circle{X: 0, Y: 0, Radius: 10},
			b:        Circle{X: 5, Y: 0, Radius: 10},
			expected: true,
		},
		{
			name:     "distant circles",
			a:        Circle{X: 0, Y: 0, Radius: 10},
			b:        Circle{X: 100, Y: 100, Radius: 10},
			expected: false,
		},
		{
			name:     "touching circles (no collision)",
			a:        Circle{X: 0, Y: 0, Radius: 10},
			b:        Circle{X: 20, Y: 0, Radius: 10},
			expected: false,
		},
		{
			name:     "concentric circles",
			a:        Circle{X: 5, Y: 5, Radius: 3},
			b:        Circle{X: 5, Y: 5, Radius: 1},
			expected: true,
		},
		{
			name:     "diagonal overlap",
			a:        Circle{X: 0, Y: 0, Radius: 5},
			b:        Circle{X: 3, Y: 4, Radius: 1},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := CirclesIntersect(tc.a, tc.b)
			if result != tc.expected {
				t.Errorf("CirclesIntersect() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestCirclesIntersectEpsilon(t *testing.T) {
	// Just inside the radius sum collides, just outside does not.
	const eps = 1e-9
	a := Circle{X: 0, Y: 0, Radius: 14}
	b := Circle{X: 24 - eps, Y: 0, Radius: 10}
	if !CirclesIntersect(a, b) {
		t.Error("Circles at distance radiusSum-eps should intersect")
	}

	b.X = 24 + eps
	if CirclesIntersect(a, b) {
		t.Error("Circles at distance radiusSum+eps should not intersect")
	}
}

func TestCircleIntersectsRect(t *testing.T) {
	rect := RectF{X: 10, Y: 10, W: 20, H: 20}

	tests := []struct {
		name     string
		c        Circle
		expected bool
	}{
		{
			name:     "center inside rect",
			c:        Circle{X: 20, Y: 20, Radius: 1},
			expected: true,
		},
		{
			name:     "circle left of rect",
			c:        Circle{X: 0, Y: 20, Radius: 5},
			expected: false,
		},
		{
			name:     "circle overlapping left edge",
			c:        Circle{X: 6, Y: 20, Radius: 5},
			expected: true,
		},
		{
			name:     "circle touching edge (no collision)",
			c:        Circle{X: 5, Y: 20, Radius: 5},
			expected: false,
		},
		{
			name:     "circle near corner but outside",
			c:        Circle{X: 6, Y: 6, Radius: 5},
			expected: false,
		},
		{
			name:     "circle overlapping corner",
			c:        Circle{X: 7, Y: 7, Radius: 5},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := CircleIntersectsRect(tc.c, rect)
			if result != tc.expected {
				t.Errorf("CircleIntersectsRect() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestCircleIntersectsRectCornerDistance(t *testing.T) {
	// The corner case uses the Euclidean distance to the nearest point,
	// not a bounding-box test.
	rect := RectF{X: 0, Y: 0, W: 10, H: 10}
	dist := 5.0 / math.Sqrt2

	inside := Circle{X: -dist + 0.01, Y: -dist + 0.01, Radius: 5}
	if !CircleIntersectsRect(inside, rect) {
		t.Error("Circle just within corner distance should intersect")
	}

	outside := Circle{X: -dist - 0.01, Y: -dist - 0.01, Radius: 5}
	if CircleIntersectsRect(outside, rect) {
		t.Error("Circle just beyond corner distance should not intersect")
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
