package guardian

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/guardian-arcade/internal/config"
	"github.com/vovakirdan/guardian-arcade/internal/core"
)

// Ally is the AI-controlled wanderer the guardian protects.
// It cruises along a heading until a randomly drawn tick threshold
// expires or the way is blocked, then picks a new heading.
type Ally struct {
	Body       core.Circle
	Speed      float64
	Direction  float64 // Heading in radians
	FacingLeft bool

	redirectMin   int
	redirectRange int
	redirectTicks int // Ticks since the last scheduled redirect
	redirectAfter int // Threshold for the next scheduled redirect
}

// NewAlly creates the ally at the given position with a random heading.
func NewAlly(cfg config.AllyTuning, rng *rand.Rand, x, y float64) *Ally {
	a := &Ally{
		Body:          core.Circle{X: x, Y: y, Radius: cfg.Radius},
		Speed:         cfg.Speed,
		redirectMin:   cfg.RedirectMinTicks,
		redirectRange: cfg.RedirectMaxTicks - cfg.RedirectMinTicks,
	}
	a.Direction = rng.Float64() * 2 * math.Pi
	a.redirectAfter = a.drawRedirectAfter(rng)
	return a
}

// Update advances the ally by one tick.
//
// Unlike the guardian, the candidate move is validated with both axes
// combined. A blocked move commits nothing and immediately resamples the
// heading; the next tick retries with the new heading.
func (a *Ally) Update(w *World, rng *rand.Rand) {
	a.redirectTicks++
	if a.redirectTicks > a.redirectAfter {
		a.Direction = rng.Float64() * 2 * math.Pi
		a.redirectTicks = 0
		a.redirectAfter = a.drawRedirectAfter(rng)
	}

	dx := math.Cos(a.Direction) * a.Speed
	dy := math.Sin(a.Direction) * a.Speed
	newX := a.Body.X + dx
	newY := a.Body.Y + dy

	if !w.IsPositionValid(a.Body.Radius, newX, newY) {
		a.Direction = rng.Float64() * 2 * math.Pi
		return
	}

	a.Body.X = newX
	a.Body.Y = newY
	// A purely vertical move keeps the prior facing
	if dx < 0 {
		a.FacingLeft = true
	} else if dx > 0 {
		a.FacingLeft = false
	}
}

// drawRedirectAfter draws the tick threshold for the next heading change.
func (a *Ally) drawRedirectAfter(rng *rand.Rand) int {
	if a.redirectRange <= 0 {
		return a.redirectMin
	}
	return a.redirectMin + rng.Intn(a.redirectRange)
}
