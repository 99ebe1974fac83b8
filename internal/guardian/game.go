// Package guardian implements the guardian arcade game: the player steers
// a guardian around a scrolling world, intercepting seeker threats before
// they reach a wandering ally. The package holds pure simulation logic with
// no external dependencies (especially no Bubble Tea); the platform handles
// input mapping, timing, and terminal display.
package guardian

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/guardian-arcade/internal/config"
	"github.com/vovakirdan/guardian-arcade/internal/core"
)

// HUD rows reserved at the top of the screen.
const hudHeight = 2

// HighScoreStore persists the best score across sessions.
// Implementations are expected to be best-effort; the game tolerates
// a nil store and ignores write failures.
type HighScoreStore interface {
	ReadHighScore() (int, error)
	WriteHighScore(score int) error
}

// Game implements the guardian game.
type Game struct {
	cfg     config.GuardianConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	scores  HighScoreStore

	tick         uint64
	tickDuration time.Duration

	world   *World
	player  *Player
	ally    *Ally
	threats []*Threat
	spawner *Spawner
	camera  Camera

	score     int
	highScore int
	lives     int
	gameOver  bool
	paused    bool
}

// Package-level config path, set by the CLI before game creation.
var configPath string

// SetConfigPath sets the tuning config file path.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new guardian game with tuning from the config search path.
func New() *Game {
	cfg, err := config.LoadGuardian(configPath)
	if err != nil {
		cfg = config.DefaultGuardianConfig()
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a new guardian game with explicit tuning.
func NewWithConfig(cfg config.GuardianConfig) *Game {
	return &Game{cfg: cfg}
}

// SetHighScoreStore injects the high-score persistence collaborator.
// The store is read once on the next Reset and written on every new high.
func (g *Game) SetHighScoreStore(s HighScoreStore) {
	g.scores = s
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "guardian"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Guardian"
}

// Reset initializes/restarts the game. All mutable state is rebuilt:
// score and lives return to defaults, threats are cleared, and a fresh
// obstacle layout is generated. The high score survives restarts and is
// re-read from the store when one is attached.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.runtime = rt
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.tick = 0
	g.score = 0
	g.lives = g.cfg.Session.Lives
	g.gameOver = false
	g.paused = false
	g.threats = nil

	tickRate := rt.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.tickDuration = time.Second / time.Duration(tickRate)

	g.world = NewWorld(g.cfg.World, g.rng)
	px, py := g.findSpawn(g.cfg.Guardian.Radius, g.world.Width/2, g.world.Height/2)
	g.player = NewPlayer(g.cfg.Guardian, px, py)
	ax, ay := g.findSpawn(g.cfg.Ally.Radius, g.world.Width/2, g.world.Height/3)
	g.ally = NewAlly(g.cfg.Ally, g.rng, ax, ay)
	g.spawner = NewSpawner(g.cfg.Threats, g.rng)
	g.updateCamera()

	if g.scores != nil {
		if hs, err := g.scores.ReadHighScore(); err == nil && hs > g.highScore {
			g.highScore = hs
		}
	}
}

// findSpawn returns a position near (x, y) where a circle of the given
// radius fits. Falls back to the preferred point if no clear spot turns up.
func (g *Game) findSpawn(radius, x, y float64) (float64, float64) {
	if g.world.IsPositionValid(radius, x, y) {
		return x, y
	}
	for i := 0; i < 100; i++ {
		cx := radius + g.rng.Float64()*(g.world.Width-2*radius)
		cy := radius + g.rng.Float64()*(g.world.Height-2*radius)
		if g.world.IsPositionValid(radius, cx, cy) {
			return cx, cy
		}
	}
	return x, y
}

// Step advances the game by one tick.
//
// The order within a tick is fixed: input/guardian, ally, fast spawn,
// regular spawn, threat seek with collision resolution, distance cleanup,
// camera. Later stages read positions mutated by earlier ones, so this
// order must hold for deterministic behavior under a fixed seed.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	// Terminal or suspended: no mutation until restart/unpause
	if g.gameOver || g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	g.player.Update(in, g.world)
	g.ally.Update(g.world, g.rng)
	g.threats = g.spawner.Update(g.tickDuration, g.threats, g.world)
	g.resolveThreats()
	g.threats = g.spawner.Cleanup(g.threats, g.ally.Body.X, g.ally.Body.Y, g.world.Width)
	g.updateCamera()

	return core.StepResult{State: g.State()}
}

// resolveThreats runs the seek update and collision resolution for every
// live threat, rebuilding the collection in one filter pass instead of
// deleting while iterating.
//
// Per threat, first match wins: a guardian hit scores, an ally hit costs
// a life, and a threat farther than the world width from the ally is
// dropped outright (the spawner cleanup applies a tighter threshold later).
func (g *Game) resolveThreats() {
	kept := g.threats[:0]
	for _, t := range g.threats {
		t.Seek(g.ally.Body.X, g.ally.Body.Y)

		if t.DistanceTo(g.ally.Body.X, g.ally.Body.Y) > g.world.Width {
			continue
		}

		if core.CirclesIntersect(t.Body, g.player.Body) {
			g.score++
			if g.score > g.highScore {
				g.highScore = g.score
				if g.scores != nil {
					//nolint:errcheck // Best-effort persist, game continues regardless
					g.scores.WriteHighScore(g.highScore)
				}
			}
			continue
		}

		if core.CirclesIntersect(t.Body, g.ally.Body) {
			g.lives--
			if g.lives <= 0 {
				g.gameOver = true
			}
			continue
		}

		kept = append(kept, t)
	}
	g.threats = kept
}

// updateCamera recenters the viewport on the ally.
func (g *Game) updateCamera() {
	vw := float64(g.runtime.ScreenW) * g.cfg.Render.CellWidth
	vh := float64(g.runtime.ScreenH-hudHeight) * g.cfg.Render.CellHeight
	g.camera.Update(g.ally.Body.X, g.ally.Body.Y, vw, vh, g.world)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.highScore,
		Lives:     g.lives,
		GameOver:  g.gameOver,
		Paused:    g.paused,
	}
}
