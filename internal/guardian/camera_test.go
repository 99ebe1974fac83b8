package guardian

import (
	"testing"
)

func TestCameraCentersOnTarget(t *testing.T) {
	w := openWorld(1600, 1200)
	var c Camera

	c.Update(800, 600, 800, 480, w)
	if c.X != 400 || c.Y != 360 {
		t.Errorf("Camera = (%v, %v), expected (400, 360)", c.X, c.Y)
	}
}

func TestCameraClampsToWorld(t *testing.T) {
	w := openWorld(1600, 1200)

	tests := []struct {
		name       string
		tx, ty     float64
		expX, expY float64
	}{
		{"top-left corner", 0, 0, 0, 0},
		{"bottom-right corner", 1600, 1200, 800, 720},
		{"left edge only", 0, 600, 0, 360},
		{"bottom edge only", 800, 1200, 400, 720},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var c Camera
			c.Update(tc.tx, tc.ty, 800, 480, w)
			if c.X != tc.expX || c.Y != tc.expY {
				t.Errorf("Camera = (%v, %v), expected (%v, %v)", c.X, c.Y, tc.expX, tc.expY)
			}
		})
	}
}

func TestCameraWorldSmallerThanViewport(t *testing.T) {
	w := openWorld(400, 300)
	var c Camera

	c.Update(200, 150, 800, 480, w)
	if c.X != 0 || c.Y != 0 {
		t.Errorf("Camera should pin to origin for a small world, got (%v, %v)", c.X, c.Y)
	}
}

func TestCameraIsPurelyDerived(t *testing.T) {
	w := openWorld(1600, 1200)
	var c Camera

	// The camera must not remember prior frames: the same target always
	// yields the same offset regardless of history.
	c.Update(100, 100, 800, 480, w)
	first := c
	c.Update(1500, 1100, 800, 480, w)
	c.Update(100, 100, 800, 480, w)

	if c != first {
		t.Errorf("Camera = %+v after revisiting target, expected %+v", c, first)
	}
}
