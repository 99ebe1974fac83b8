package guardian

// ThreatSnapshot captures one threat for rendering and determinism tests.
type ThreatSnapshot struct {
	X, Y        float64
	Kind        ThreatKind
	FacingRight bool
}

// Snapshot captures the complete game state for determinism testing
// and for render collaborators that want read-only data.
type Snapshot struct {
	Tick      uint64
	Score     int
	HighScore int
	Lives     int
	GameOver  bool
	Paused    bool

	PlayerX          float64
	PlayerY          float64
	PlayerFacingLeft bool

	AllyX          float64
	AllyY          float64
	AllyFacingLeft bool

	CameraX float64
	CameraY float64

	Threats      []ThreatSnapshot
	RegularCount int
	FastCount    int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		HighScore: g.highScore,
		Lives:     g.lives,
		GameOver:  g.gameOver,
		Paused:    g.paused,

		PlayerX:          g.player.Body.X,
		PlayerY:          g.player.Body.Y,
		PlayerFacingLeft: g.player.FacingLeft,

		AllyX:          g.ally.Body.X,
		AllyY:          g.ally.Body.Y,
		AllyFacingLeft: g.ally.FacingLeft,

		CameraX: g.camera.X,
		CameraY: g.camera.Y,

		Threats: make([]ThreatSnapshot, 0, len(g.threats)),
	}

	for _, t := range g.threats {
		snap.Threats = append(snap.Threats, ThreatSnapshot{
			X:           t.Body.X,
			Y:           t.Body.Y,
			Kind:        t.Kind,
			FacingRight: t.FacingRight,
		})
		switch t.Kind {
		case ThreatRegular:
			snap.RegularCount++
		case ThreatFast:
			snap.FastCount++
		}
	}

	return snap
}
