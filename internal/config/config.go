// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
)

// Island placement strategies.
const (
	PlacementFixed  = "fixed"
	PlacementRandom = "random"
)

// MaxDogsPerIsland caps dogs.per_island.
const MaxDogsPerIsland = 2

// GameConfig contains every tunable constant of the game.
// Distances are world units; speeds are world units per tick at
// Movement.ReferenceTickRate.
type GameConfig struct {
	World      WorldConfig      `yaml:"world"`
	Camera     CameraConfig     `yaml:"camera"`
	Factory    FactoryConfig    `yaml:"factory"`
	Islands    IslandsConfig    `yaml:"islands"`
	Dogs       DogsConfig       `yaml:"dogs"`
	Player     PlayerConfig     `yaml:"player"`
	Pirate     PirateConfig     `yaml:"pirate"`
	Movement   MovementConfig   `yaml:"movement"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the fixed world size.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// CameraConfig defines the viewport size in world units.
type CameraConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FactoryConfig defines the medicine factory, always centered in the world.
type FactoryConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// IslandsConfig defines island size and placement.
type IslandsConfig struct {
	Placement string         `yaml:"placement"` // "fixed" or "random"
	Width     float64        `yaml:"width"`
	Height    float64        `yaml:"height"`
	Anchors   []IslandAnchor `yaml:"anchors"` // Used by fixed placement

	// Random placement
	Count            int     `yaml:"count"`
	FactoryClearance float64 `yaml:"factory_clearance"` // Minimum gap to the factory
	Separation       float64 `yaml:"separation"`        // Minimum gap between islands
	EdgeMargin       float64 `yaml:"edge_margin"`       // Minimum gap to world edges
	MaxAttempts      int     `yaml:"max_attempts"`      // Per island
}

// IslandAnchor is an island center expressed as a fraction of world size.
type IslandAnchor struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// DogsConfig defines how dogs are laid out on each island.
type DogsConfig struct {
	PerIsland int     `yaml:"per_island"` // At most MaxDogsPerIsland
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Spacing   float64 `yaml:"spacing"`
}

// PlayerConfig defines the player's ship.
type PlayerConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"`
	StartOffset float64 `yaml:"start_offset"` // Gap below the factory at spawn
}

// PirateConfig defines the pirate ship and its patrol behaviour.
type PirateConfig struct {
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	Speed             float64 `yaml:"speed"`
	StartX            float64 `yaml:"start_x"`
	StartY            float64 `yaml:"start_y"`
	ArrivalMargin     float64 `yaml:"arrival_margin"`     // Patrol arrival radius = width + margin
	DepartureDistance float64 `yaml:"departure_distance"` // How far to sail away from a visited island
	DeadZone          float64 `yaml:"dead_zone"`          // Fraction of speed
}

// MovementConfig defines steering and obstacle parameters shared by ships.
type MovementConfig struct {
	ObstaclePadding   float64 `yaml:"obstacle_padding"`
	PointerDeadZone   float64 `yaml:"pointer_dead_zone"` // Fraction of speed
	NormalizeDiagonal bool    `yaml:"normalize_diagonal"`
	ReferenceTickRate int     `yaml:"reference_tick_rate"`
}

// ScoringConfig defines points.
type ScoringConfig struct {
	PointsPerDog int `yaml:"points_per_dog"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	PirateSpeedMultiplier float64 `yaml:"pirate_speed_multiplier"` // Added to pirate speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Empty or unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks that sizes and speeds are usable.
func (c GameConfig) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"world.width", c.World.Width},
		{"world.height", c.World.Height},
		{"camera.width", c.Camera.Width},
		{"camera.height", c.Camera.Height},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"player.speed", c.Player.Speed},
		{"pirate.width", c.Pirate.Width},
		{"pirate.height", c.Pirate.Height},
		{"pirate.speed", c.Pirate.Speed},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("config: %s must be positive, got %v: %w", p.name, p.v, ErrInvalid)
		}
	}

	if c.Camera.Width > c.World.Width || c.Camera.Height > c.World.Height {
		return fmt.Errorf("config: camera %vx%v larger than world %vx%v: %w",
			c.Camera.Width, c.Camera.Height, c.World.Width, c.World.Height, ErrInvalid)
	}
	if c.Movement.ObstaclePadding < 0 {
		return fmt.Errorf("config: movement.obstacle_padding must not be negative: %w", ErrInvalid)
	}
	if c.Dogs.PerIsland < 0 || c.Dogs.PerIsland > MaxDogsPerIsland {
		return fmt.Errorf("config: dogs.per_island must be within 0..%d, got %d: %w", MaxDogsPerIsland, c.Dogs.PerIsland, ErrInvalid)
	}

	switch c.Islands.Placement {
	case PlacementFixed, PlacementRandom:
	default:
		return fmt.Errorf("config: islands.placement %q is not fixed or random: %w", c.Islands.Placement, ErrInvalid)
	}
	return nil
}
