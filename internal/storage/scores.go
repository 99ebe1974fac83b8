package storage

// GameScores narrows a Store to the single game a running session cares
// about. It satisfies the game's high-score persistence interface so the
// simulation never sees the database or the game identifier.
type GameScores struct {
	store  *Store
	gameID string
}

// ScoresFor returns a per-game view over the store.
func (s *Store) ScoresFor(gameID string) *GameScores {
	return &GameScores{store: s, gameID: gameID}
}

// ReadHighScore returns the persisted best score for the game.
func (g *GameScores) ReadHighScore() (int, error) {
	return g.store.HighScore(g.gameID)
}

// WriteHighScore persists a new best score for the game.
func (g *GameScores) WriteHighScore(score int) error {
	return g.store.SetHighScore(g.gameID, score)
}
