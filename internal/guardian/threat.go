package guardian

import (
	"math"

	"github.com/vovakirdan/guardian-arcade/internal/core"
)

// ThreatKind distinguishes the two seeker variants.
type ThreatKind int

const (
	ThreatRegular ThreatKind = iota
	ThreatFast
)

// String returns a human-readable name for the threat kind.
func (k ThreatKind) String() string {
	switch k {
	case ThreatRegular:
		return "regular"
	case ThreatFast:
		return "fast"
	default:
		return "unknown"
	}
}

// Threat is an enemy seeker heading for the ally.
// Threats are not blocked by obstacles or world bounds; they are removed
// on collision or when they stray too far from the ally.
type Threat struct {
	Body        core.Circle
	Speed       float64
	FacingRight bool
	Kind        ThreatKind
}

// Seek moves the threat one tick toward (tx, ty): pure pursuit along the
// normalized offset, no prediction and no obstacle avoidance.
func (t *Threat) Seek(tx, ty float64) {
	dx := tx - t.Body.X
	dy := ty - t.Body.Y
	dist := math.Hypot(dx, dy)
	if dist <= 0 {
		return
	}

	stepX := dx / dist * t.Speed
	t.Body.X += stepX
	t.Body.Y += dy / dist * t.Speed
	t.FacingRight = stepX > 0
}

// DistanceTo returns the distance from the threat to (x, y).
func (t *Threat) DistanceTo(x, y float64) float64 {
	return math.Hypot(x-t.Body.X, y-t.Body.Y)
}
