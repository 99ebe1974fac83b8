package guardian

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/guardian-arcade/internal/config"
	"github.com/vovakirdan/guardian-arcade/internal/core"
)

// Spawner produces threats at world edges on two independent cadences:
// a probabilistic per-tick draw for regular threats and a fixed interval
// of simulated time for fast threats. Both cadences are capped; a failed
// draw or a capped attempt is a silent no-op.
type Spawner struct {
	cfg config.ThreatTuning
	rng *rand.Rand

	fastInterval time.Duration
	fastElapsed  time.Duration
}

// NewSpawner creates a spawner. The fast-cadence accumulator starts primed
// to a full interval so the first tick of a session can spawn immediately.
func NewSpawner(cfg config.ThreatTuning, rng *rand.Rand) *Spawner {
	interval := time.Duration(cfg.FastIntervalMS) * time.Millisecond
	return &Spawner{
		cfg:          cfg,
		rng:          rng,
		fastInterval: interval,
		fastElapsed:  interval,
	}
}

// Update runs both spawn cadences for one tick of duration dt and returns
// the possibly extended threat collection. Fast spawns are attempted before
// regular ones.
func (s *Spawner) Update(dt time.Duration, threats []*Threat, w *World) []*Threat {
	s.fastElapsed += dt
	if s.fastElapsed >= s.fastInterval {
		s.fastElapsed -= s.fastInterval
		if countKind(threats, ThreatFast) < s.cfg.FastCap {
			threats = append(threats, s.spawn(ThreatFast, w))
		}
	}

	if s.rng.Float64() < s.cfg.SpawnChance {
		if countKind(threats, ThreatRegular) < s.cfg.RegularCap {
			threats = append(threats, s.spawn(ThreatRegular, w))
		}
	}

	return threats
}

// spawn creates one threat at a uniformly chosen world edge.
func (s *Spawner) spawn(kind ThreatKind, w *World) *Threat {
	var x, y float64
	switch s.rng.Intn(4) {
	case 0: // top
		x = s.rng.Float64() * w.Width
		y = 0
	case 1: // right
		x = w.Width
		y = s.rng.Float64() * w.Height
	case 2: // bottom
		x = s.rng.Float64() * w.Width
		y = w.Height
	default: // left
		x = 0
		y = s.rng.Float64() * w.Height
	}

	speed := s.cfg.MinSpeed + s.rng.Float64()*(s.cfg.MaxSpeed-s.cfg.MinSpeed)
	if kind == ThreatFast {
		speed *= s.cfg.FastMultiplier
	}

	return &Threat{
		Body:  core.Circle{X: x, Y: y, Radius: s.cfg.Radius},
		Speed: speed,
		Kind:  kind,
	}
}

// Cleanup removes threats farther than cleanupFactor*worldWidth from the
// ally. This is tighter than the full-world-width removal in the seek pass;
// both checks are kept, the looser one as a second safety net.
func (s *Spawner) Cleanup(threats []*Threat, allyX, allyY, worldWidth float64) []*Threat {
	limit := s.cfg.CleanupFactor * worldWidth
	kept := threats[:0]
	for _, t := range threats {
		if t.DistanceTo(allyX, allyY) > limit {
			continue
		}
		kept = append(kept, t)
	}
	return kept
}

// countKind counts live threats of one kind.
func countKind(threats []*Threat, kind ThreatKind) int {
	n := 0
	for _, t := range threats {
		if t.Kind == kind {
			n++
		}
	}
	return n
}
