package config

import (
	_ "embed"
)

//go:embed defaults/dogisland.yaml
var defaultGameYAML []byte

// DefaultConfig returns the built-in configuration.
// It mirrors defaults/dogisland.yaml and is used when the embedded YAML
// cannot be parsed.
func DefaultConfig() GameConfig {
	return GameConfig{
		World:   WorldConfig{Width: 4800, Height: 3600},
		Camera:  CameraConfig{Width: 2400, Height: 1800},
		Factory: FactoryConfig{Width: 300, Height: 300},
		Islands: IslandsConfig{
			Placement: PlacementFixed,
			Width:     360,
			Height:    360,
			Anchors: []IslandAnchor{
				{X: 0.20, Y: 0.20},
				{X: 0.80, Y: 0.30},
				{X: 0.25, Y: 0.75},
				{X: 0.70, Y: 0.80},
			},
			Count:            4,
			FactoryClearance: 300,
			Separation:       250,
			EdgeMargin:       100,
			MaxAttempts:      100,
		},
		Dogs: DogsConfig{
			PerIsland: 2,
			Width:     112.5,
			Height:    112.5,
			Spacing:   20,
		},
		Player: PlayerConfig{
			Width:       150,
			Height:      150,
			Speed:       8,
			StartOffset: 50,
		},
		Pirate: PirateConfig{
			Width:             120,
			Height:            120,
			Speed:             6,
			StartX:            200,
			StartY:            200,
			ArrivalMargin:     150,
			DepartureDistance: 400,
			DeadZone:          0.25,
		},
		Movement: MovementConfig{
			ObstaclePadding:   40,
			PointerDeadZone:   0.5,
			NormalizeDiagonal: false,
			ReferenceTickRate: 60,
		},
		Scoring: ScoringConfig{PointsPerDog: 10},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 80, // every default dog awake
			},
			Scaling: ScalingConfig{
				PirateSpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGameYAML
}
