// Package config provides YAML-based game configuration loading
// for the guardian game.
package config

// GuardianConfig contains all tuning for the guardian game.
type GuardianConfig struct {
	World    WorldConfig    `yaml:"world"`
	Guardian GuardianTuning `yaml:"guardian"`
	Ally     AllyTuning     `yaml:"ally"`
	Threats  ThreatTuning   `yaml:"threats"`
	Session  SessionTuning  `yaml:"session"`
	Render   RenderTuning   `yaml:"render"`
}

// WorldConfig defines the play area and its obstacles.
type WorldConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	ObstacleCount   int     `yaml:"obstacle_count"`
	ObstacleMinSize float64 `yaml:"obstacle_min_size"`
	ObstacleMaxSize float64 `yaml:"obstacle_max_size"`
	ObstacleMargin  float64 `yaml:"obstacle_margin"`
}

// GuardianTuning defines the player-controlled guardian parameters.
type GuardianTuning struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
}

// AllyTuning defines the wandering ally parameters.
type AllyTuning struct {
	Radius           float64 `yaml:"radius"`
	Speed            float64 `yaml:"speed"`
	RedirectMinTicks int     `yaml:"redirect_min_ticks"`
	RedirectMaxTicks int     `yaml:"redirect_max_ticks"`
}

// ThreatTuning defines spawn cadences and seeker parameters.
type ThreatTuning struct {
	Radius         float64 `yaml:"radius"`
	MinSpeed       float64 `yaml:"min_speed"`
	MaxSpeed       float64 `yaml:"max_speed"`
	FastMultiplier float64 `yaml:"fast_multiplier"`
	SpawnChance    float64 `yaml:"spawn_chance"`     // Per-tick probability of a regular spawn attempt
	RegularCap     int     `yaml:"regular_cap"`      // Max concurrent regular threats
	FastCap        int     `yaml:"fast_cap"`         // Max concurrent fast threats
	FastIntervalMS int     `yaml:"fast_interval_ms"` // Simulated time between fast spawns
	CleanupFactor  float64 `yaml:"cleanup_factor"`   // Remove threats beyond factor*worldWidth from the ally
}

// SessionTuning defines session lifecycle parameters.
type SessionTuning struct {
	Lives int `yaml:"lives"`
}

// RenderTuning defines the world-to-screen cell mapping.
// Terminal cells are roughly twice as tall as wide, so the vertical
// scale is larger to keep world distances visually square.
type RenderTuning struct {
	CellWidth  float64 `yaml:"cell_width"`  // World units per character column
	CellHeight float64 `yaml:"cell_height"` // World units per character row
}
