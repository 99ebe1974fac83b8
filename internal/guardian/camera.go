package guardian

import (
	"github.com/vovakirdan/guardian-arcade/internal/core"
)

// Camera is the top-left world coordinate of the viewport.
// It is purely derived: recomputed every tick from the ally position,
// with no memory of prior frames.
type Camera struct {
	X, Y float64
}

// Update centers the camera on (tx, ty) and clamps it to the world bounds.
// A viewport larger than the world pins the camera to the origin.
func (c *Camera) Update(tx, ty, viewportW, viewportH float64, w *World) {
	maxX := w.Width - viewportW
	if maxX < 0 {
		maxX = 0
	}
	maxY := w.Height - viewportH
	if maxY < 0 {
		maxY = 0
	}

	c.X = core.ClampF(tx-viewportW/2, 0, maxX)
	c.Y = core.ClampF(ty-viewportH/2, 0, maxY)
}
