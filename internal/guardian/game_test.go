package guardian

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/guardian-arcade/internal/config"
	"github.com/vovakirdan/guardian-arcade/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// quietConfig disables spawning and obstacles so tests can stage
// collisions by hand.
func quietConfig() config.GuardianConfig {
	cfg := config.DefaultGuardianConfig()
	cfg.World.ObstacleCount = 0
	cfg.Threats.SpawnChance = 0
	cfg.Threats.FastIntervalMS = 3600000 // One hour: never fires in tests
	return cfg
}

func newQuietGame(seed int64) *Game {
	g := NewWithConfig(quietConfig())
	g.Reset(testRuntime(seed))
	return g
}

// stationaryThreat places a zero-speed threat at (x, y).
func stationaryThreat(x, y float64, kind ThreatKind) *Threat {
	return &Threat{
		Body: core.Circle{X: x, Y: y, Radius: 10},
		Kind: kind,
	}
}

type fakeScoreStore struct {
	high   int
	writes []int
}

func (f *fakeScoreStore) ReadHighScore() (int, error) {
	return f.high, nil
}

func (f *fakeScoreStore) WriteHighScore(score int) error {
	f.high = score
	f.writes = append(f.writes, score)
	return nil
}

func TestGameDeterminism(t *testing.T) {
	// Two games with the same seed and inputs must produce identical snapshots.
	run := func() Snapshot {
		g := NewWithConfig(config.DefaultGuardianConfig())
		g.Reset(testRuntime(12345))

		in := core.NewInputFrame()
		for i := 0; i < 600; i++ {
			in.Clear()
			if i%7 == 0 {
				in.Set(core.ActionRight)
			}
			if i%11 == 0 {
				in.Set(core.ActionUp)
			}
			if i%13 == 0 {
				in.Set(core.ActionLeft)
			}
			g.Step(in)
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if !reflect.DeepEqual(snap1, snap2) {
		t.Errorf("Same-seed runs diverged:\n%+v\nvs\n%+v", snap1, snap2)
	}
}

func TestEntityInvariants(t *testing.T) {
	g := NewWithConfig(config.DefaultGuardianConfig())
	g.Reset(testRuntime(777))
	inputRng := rand.New(rand.NewSource(1))

	in := core.NewInputFrame()
	for i := 0; i < 2000; i++ {
		in.Clear()
		switch inputRng.Intn(5) {
		case 0:
			in.Set(core.ActionUp)
		case 1:
			in.Set(core.ActionDown)
		case 2:
			in.Set(core.ActionLeft)
		case 3:
			in.Set(core.ActionRight)
		}
		g.Step(in)

		if !g.world.IsPositionValid(g.player.Body.Radius, g.player.Body.X, g.player.Body.Y) {
			t.Fatalf("Guardian at invalid position (%v, %v) on tick %d",
				g.player.Body.X, g.player.Body.Y, i+1)
		}
		if !g.world.IsPositionValid(g.ally.Body.Radius, g.ally.Body.X, g.ally.Body.Y) {
			t.Fatalf("Ally at invalid position (%v, %v) on tick %d",
				g.ally.Body.X, g.ally.Body.Y, i+1)
		}

		snap := g.Snapshot()
		if snap.RegularCount > g.cfg.Threats.RegularCap {
			t.Fatalf("Regular threat count %d exceeds cap on tick %d", snap.RegularCount, i+1)
		}
		if snap.FastCount > g.cfg.Threats.FastCap {
			t.Fatalf("Fast threat count %d exceeds cap on tick %d", snap.FastCount, i+1)
		}
	}
}

func TestGuardianInterceptScores(t *testing.T) {
	g := newQuietGame(1)

	g.threats = []*Threat{stationaryThreat(g.player.Body.X, g.player.Body.Y, ThreatRegular)}
	result := g.Step(core.NewInputFrame())

	if result.State.Score != 1 {
		t.Errorf("Score = %d, expected 1", result.State.Score)
	}
	if result.State.Lives != g.cfg.Session.Lives {
		t.Errorf("Lives = %d, interception must not cost lives", result.State.Lives)
	}
	if len(g.threats) != 0 {
		t.Errorf("Intercepted threat should be removed, %d remain", len(g.threats))
	}
}

func TestAllyHitCostsLife(t *testing.T) {
	g := newQuietGame(2)

	g.threats = []*Threat{stationaryThreat(g.ally.Body.X, g.ally.Body.Y, ThreatRegular)}
	result := g.Step(core.NewInputFrame())

	if result.State.Lives != g.cfg.Session.Lives-1 {
		t.Errorf("Lives = %d, expected %d", result.State.Lives, g.cfg.Session.Lives-1)
	}
	if result.State.Score != 0 {
		t.Errorf("Score = %d, an ally hit must not score", result.State.Score)
	}
	if len(g.threats) != 0 {
		t.Errorf("Colliding threat should be removed, %d remain", len(g.threats))
	}
	if result.State.GameOver {
		t.Error("Game should continue while lives remain")
	}
}

func TestGuardianCollisionCheckedFirst(t *testing.T) {
	// A threat touching both the guardian and the ally scores and does
	// not cost a life: first match wins.
	g := newQuietGame(3)
	g.ally.Body.X = g.player.Body.X
	g.ally.Body.Y = g.player.Body.Y
	g.ally.Speed = 0

	g.threats = []*Threat{stationaryThreat(g.player.Body.X, g.player.Body.Y, ThreatRegular)}
	result := g.Step(core.NewInputFrame())

	if result.State.Score != 1 || result.State.Lives != g.cfg.Session.Lives {
		t.Errorf("Score = %d, Lives = %d; guardian collision must win",
			result.State.Score, result.State.Lives)
	}
}

func TestGameOverAtZeroLives(t *testing.T) {
	g := newQuietGame(4)
	g.lives = 1

	g.threats = []*Threat{stationaryThreat(g.ally.Body.X, g.ally.Body.Y, ThreatRegular)}
	result := g.Step(core.NewInputFrame())

	if !result.State.GameOver {
		t.Fatal("Game should be over at zero lives")
	}
	if result.State.Lives != 0 {
		t.Errorf("Lives = %d, expected 0", result.State.Lives)
	}

	// Terminal state: no further mutation until restart.
	frozen := g.Snapshot()
	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	for i := 0; i < 10; i++ {
		g.Step(in)
	}
	if !reflect.DeepEqual(frozen, g.Snapshot()) {
		t.Error("Game state must not mutate after game over")
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	g := NewWithConfig(config.DefaultGuardianConfig())
	g.Reset(testRuntime(5))

	in := core.NewInputFrame()
	for i := 0; i < 100; i++ {
		g.Step(in)
	}
	g.score = 7
	g.highScore = 7
	g.lives = 3
	g.gameOver = true

	g.Reset(testRuntime(6))

	state := g.State()
	if state.Score != 0 {
		t.Errorf("Score = %d after reset, expected 0", state.Score)
	}
	if state.Lives != g.cfg.Session.Lives {
		t.Errorf("Lives = %d after reset, expected %d", state.Lives, g.cfg.Session.Lives)
	}
	if state.GameOver {
		t.Error("Reset should clear gameOver")
	}
	if len(g.threats) != 0 {
		t.Errorf("Reset should clear threats, %d remain", len(g.threats))
	}
	if len(g.world.Obstacles) != g.cfg.World.ObstacleCount {
		t.Errorf("Reset should regenerate %d obstacles, got %d",
			g.cfg.World.ObstacleCount, len(g.world.Obstacles))
	}
	if state.HighScore != 7 {
		t.Errorf("HighScore = %d, expected it to survive reset", state.HighScore)
	}
}

func TestHighScoreStoreRoundTrip(t *testing.T) {
	store := &fakeScoreStore{high: 5}

	g := NewWithConfig(quietConfig())
	g.SetHighScoreStore(store)
	g.Reset(testRuntime(8))

	if g.State().HighScore != 5 {
		t.Fatalf("HighScore = %d, expected 5 read from store", g.State().HighScore)
	}

	// An interception that pushes past the stored high must persist.
	g.score = 5
	g.threats = []*Threat{stationaryThreat(g.player.Body.X, g.player.Body.Y, ThreatRegular)}
	g.Step(core.NewInputFrame())

	if g.State().HighScore != 6 {
		t.Errorf("HighScore = %d, expected 6", g.State().HighScore)
	}
	if len(store.writes) != 1 || store.writes[0] != 6 {
		t.Errorf("Store writes = %v, expected [6]", store.writes)
	}
}

func TestFirstTickSpawnsFastThreat(t *testing.T) {
	cfg := config.DefaultGuardianConfig()
	cfg.World.ObstacleCount = 0
	cfg.Threats.SpawnChance = 0 // Keep the regular cadence out of the way

	g := NewWithConfig(cfg)
	g.Reset(testRuntime(9))
	g.Step(core.NewInputFrame())

	snap := g.Snapshot()
	if snap.FastCount != 1 {
		t.Errorf("FastCount = %d, expected exactly 1 from the primed timer", snap.FastCount)
	}
}

func TestThreatRemovedBeyondWorldWidth(t *testing.T) {
	g := newQuietGame(10)

	// Farther than the world width from the ally: dropped in the seek pass.
	g.threats = []*Threat{stationaryThreat(g.ally.Body.X+g.world.Width+1, g.ally.Body.Y, ThreatRegular)}
	result := g.Step(core.NewInputFrame())

	if len(g.threats) != 0 {
		t.Errorf("Far threat should be removed, %d remain", len(g.threats))
	}
	if result.State.Score != 0 || result.State.Lives != g.cfg.Session.Lives {
		t.Error("Distance removal must not touch score or lives")
	}
}

func TestThreatRemovedByCleanupThreshold(t *testing.T) {
	g := newQuietGame(11)

	// Between 80% and 100% of the world width: survives the seek pass,
	// removed by the spawner cleanup.
	dist := g.cfg.Threats.CleanupFactor*g.world.Width + 20
	g.threats = []*Threat{stationaryThreat(g.ally.Body.X+dist, g.ally.Body.Y, ThreatRegular)}
	g.Step(core.NewInputFrame())

	if len(g.threats) != 0 {
		t.Errorf("Threat beyond the cleanup threshold should be removed, %d remain", len(g.threats))
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newQuietGame(12)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	if !g.State().Paused {
		t.Fatal("Game should be paused")
	}

	frozen := g.Snapshot()
	move := core.NewInputFrame()
	move.Set(core.ActionRight)
	g.Step(move)

	if !reflect.DeepEqual(frozen, g.Snapshot()) {
		t.Error("Simulation must not advance while paused")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("Pause should toggle off")
	}
}

func TestCameraFollowsAlly(t *testing.T) {
	g := NewWithConfig(quietConfig())
	g.Reset(testRuntime(13))

	g.Step(core.NewInputFrame())

	vw := float64(g.runtime.ScreenW) * g.cfg.Render.CellWidth
	vh := float64(g.runtime.ScreenH-hudHeight) * g.cfg.Render.CellHeight
	wantX := core.ClampF(g.ally.Body.X-vw/2, 0, g.world.Width-vw)
	wantY := core.ClampF(g.ally.Body.Y-vh/2, 0, g.world.Height-vh)

	if g.camera.X != wantX || g.camera.Y != wantY {
		t.Errorf("Camera = (%v, %v), expected (%v, %v)", g.camera.X, g.camera.Y, wantX, wantY)
	}
}

func TestRenderShowsHUD(t *testing.T) {
	g := NewWithConfig(config.DefaultGuardianConfig())
	g.Reset(testRuntime(14))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Guardian") {
		t.Errorf("HUD row = %q, expected it to name the game", screen.Row(0))
	}

	g.gameOver = true
	g.Render(screen)
	if !strings.Contains(screen.String(), "Game Over") {
		t.Error("Game over overlay should be drawn")
	}
}
