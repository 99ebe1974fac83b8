package guardian

import (
	"math/rand"

	"github.com/vovakirdan/guardian-arcade/internal/config"
	"github.com/vovakirdan/guardian-arcade/internal/core"
)

// World is the fixed-size play area containing obstacles.
// It is generated once per session reset and immutable during play.
type World struct {
	Width     float64
	Height    float64
	Obstacles []core.RectF
}

// NewWorld creates a world with randomly placed obstacles.
// Obstacles may overlap each other; only the guardian and ally
// treat them as solid, so overlaps just merge into bigger blocks.
func NewWorld(cfg config.WorldConfig, rng *rand.Rand) *World {
	w := &World{
		Width:  cfg.Width,
		Height: cfg.Height,
	}

	w.Obstacles = make([]core.RectF, 0, cfg.ObstacleCount)
	sizeRange := cfg.ObstacleMaxSize - cfg.ObstacleMinSize
	for i := 0; i < cfg.ObstacleCount; i++ {
		w.Obstacles = append(w.Obstacles, core.RectF{
			X: rng.Float64() * (cfg.Width - cfg.ObstacleMargin),
			Y: rng.Float64() * (cfg.Height - cfg.ObstacleMargin),
			W: cfg.ObstacleMinSize + rng.Float64()*sizeRange,
			H: cfg.ObstacleMinSize + rng.Float64()*sizeRange,
		})
	}

	return w
}

// IsPositionValid reports whether a circle of the given radius can occupy
// (x, y): fully inside the world bounds and clear of every obstacle.
func (w *World) IsPositionValid(radius, x, y float64) bool {
	if x < radius || x > w.Width-radius {
		return false
	}
	if y < radius || y > w.Height-radius {
		return false
	}

	body := core.Circle{X: x, Y: y, Radius: radius}
	for _, obs := range w.Obstacles {
		if core.CircleIntersectsRect(body, obs) {
			return false
		}
	}
	return true
}
