package guardian

import (
	"github.com/vovakirdan/guardian-arcade/internal/config"
	"github.com/vovakirdan/guardian-arcade/internal/core"
)

// Player is the player-controlled guardian.
type Player struct {
	Body       core.Circle
	Speed      float64
	FacingLeft bool
}

// NewPlayer creates the guardian at the given position.
func NewPlayer(cfg config.GuardianTuning, x, y float64) *Player {
	return &Player{
		Body:  core.Circle{X: x, Y: y, Radius: cfg.Radius},
		Speed: cfg.Speed,
	}
}

// Update applies one tick of directional input.
//
// Each axis is validated independently: a candidate X move is applied only
// if it is valid against the current Y, and the candidate Y move is then
// validated against the possibly updated X. This lets the guardian slide
// along a wall when movement is blocked on one axis only.
func (p *Player) Update(in core.InputFrame, w *World) {
	newX := p.Body.X
	newY := p.Body.Y

	if in.Has(core.ActionLeft) {
		newX -= p.Speed
		p.FacingLeft = true
	}
	if in.Has(core.ActionRight) {
		newX += p.Speed
		p.FacingLeft = false
	}
	if in.Has(core.ActionUp) {
		newY -= p.Speed
	}
	if in.Has(core.ActionDown) {
		newY += p.Speed
	}

	if w.IsPositionValid(p.Body.Radius, newX, p.Body.Y) {
		p.Body.X = newX
	}
	if w.IsPositionValid(p.Body.Radius, p.Body.X, newY) {
		p.Body.Y = newY
	}
}
