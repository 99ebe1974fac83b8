package config

import (
	_ "embed"
)

//go:embed defaults/guardian.yaml
var defaultGuardianYAML []byte

// DefaultGuardianConfig returns the default guardian configuration.
// Used as the last-resort fallback if the embedded YAML cannot be parsed.
func DefaultGuardianConfig() GuardianConfig {
	return GuardianConfig{
		World: WorldConfig{
			Width:           1600,
			Height:          1200,
			ObstacleCount:   20,
			ObstacleMinSize: 40,
			ObstacleMaxSize: 100,
			ObstacleMargin:  100,
		},
		Guardian: GuardianTuning{
			Radius: 14,
			Speed:  3.5,
		},
		Ally: AllyTuning{
			Radius:           12,
			Speed:            1.6,
			RedirectMinTicks: 120,
			RedirectMaxTicks: 360,
		},
		Threats: ThreatTuning{
			Radius:         10,
			MinSpeed:       1.2,
			MaxSpeed:       2.0,
			FastMultiplier: 1.5,
			SpawnChance:    0.02,
			RegularCap:     9,
			FastCap:        2,
			FastIntervalMS: 7000,
			CleanupFactor:  0.8,
		},
		Session: SessionTuning{
			Lives: 9,
		},
		Render: RenderTuning{
			CellWidth:  10,
			CellHeight: 20,
		},
	}
}
