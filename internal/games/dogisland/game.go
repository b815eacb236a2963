// Package dogisland implements the medicine-run game: ferry medicine from
// the factory to islands of sleeping dogs while a pirate tries to steal it.
//
// The simulation is pure and tick based. Input arrives as a core.InputFrame
// (held directions or a world-space pointer target) and the state leaves
// as a Snapshot for renderers.
package dogisland

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dogisland/internal/config"
	"github.com/vovakirdan/dogisland/internal/core"
	"github.com/vovakirdan/dogisland/internal/registry"
)

// Game IDs registered with the registry.
const (
	IDFixed  = "dogisland"
	IDRandom = "dogisland_random"
)

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on Reset.
// Unknown values fall back to the config file's difficulty.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger used by every game. Nil is ignored.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Game implements the Dog Island simulation.
type Game struct {
	placement string             // Overrides cfg.Islands.Placement when set
	override  *config.GameConfig // Used instead of loading config from disk

	cfg        config.GameConfig
	runtime    core.RuntimeConfig
	rng        *rand.Rand
	difficulty *config.DifficultyManager
	rules      pirateRules

	world  *World
	player Player
	pirate Pirate
	camera Camera

	pirateBase float64 // Pirate speed before difficulty scaling
	score      int
	tick       uint64
	paused     bool
	cleared    bool // Every dog is awake
}

// New creates a game with the fixed island layout.
func New() *Game {
	return &Game{placement: config.PlacementFixed}
}

// NewRandom creates a game with rejection-sampled islands.
func NewRandom() *Game {
	return &Game{placement: config.PlacementRandom}
}

// NewWithConfig creates a game that uses cfg as-is instead of loading
// configuration on Reset.
func NewWithConfig(cfg config.GameConfig) *Game {
	return &Game{override: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.effectivePlacement() == config.PlacementRandom {
		return IDRandom
	}
	return IDFixed
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.effectivePlacement() == config.PlacementRandom {
		return "Dog Island (random islands)"
	}
	return "Dog Island"
}

func (g *Game) effectivePlacement() string {
	if g.placement != "" {
		return g.placement
	}
	if g.override != nil {
		return g.override.Islands.Placement
	}
	return config.PlacementFixed
}

// loadConfig returns the configuration for the next round.
func (g *Game) loadConfig() config.GameConfig {
	if g.override != nil {
		return *g.override
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	if g.placement != "" {
		cfg.Islands.Placement = g.placement
	}
	return cfg
}

// Reset builds a new world and puts both ships at their start positions.
// Speeds are configured per tick at the reference tick rate and are scaled
// to runtime.TickRate.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()
	cfg := g.cfg

	scale := 1.0
	if runtime.TickRate > 0 && cfg.Movement.ReferenceTickRate > 0 {
		scale = float64(cfg.Movement.ReferenceTickRate) / float64(runtime.TickRate)
	}

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rules = pirateRules{
		arrivalRadius: cfg.Pirate.Width + cfg.Pirate.ArrivalMargin,
		departure:     cfg.Pirate.DepartureDistance,
		deadZone:      cfg.Pirate.DeadZone,
	}

	factoryBottom := cfg.World.Height/2 + cfg.Factory.Height/2
	g.player = Player{
		Rect: core.NewRect(
			cfg.World.Width/2-cfg.Player.Width/2,
			factoryBottom+cfg.Player.StartOffset,
			cfg.Player.Width,
			cfg.Player.Height,
		),
		Speed:  cfg.Player.Speed * scale,
		Facing: FacingRight,
	}

	g.pirateBase = cfg.Pirate.Speed * scale
	g.pirate = Pirate{
		Rect:   core.NewRect(cfg.Pirate.StartX, cfg.Pirate.StartY, cfg.Pirate.Width, cfg.Pirate.Height),
		Speed:  g.pirateBase,
		Facing: FacingRight,
	}

	g.world = NewWorld(cfg, g.rng, logger, g.player.Rect, g.pirate.Rect)
	if len(g.world.Islands) > 0 {
		g.pirate.Mode = Patrolling{Island: 0}
	} else {
		g.pirate.Mode = Inactive{}
	}

	g.camera = NewCamera(cfg.Camera.Width, cfg.Camera.Height)
	g.camera.Follow(g.player.Rect, g.world.Width, g.world.Height)

	g.score = 0
	g.tick = 0
	g.paused = false
	g.cleared = false

	logger.Info("round started",
		"game", g.ID(),
		"islands", len(g.world.Islands),
		"dogs", g.world.TotalDogs(),
		"seed", runtime.Seed)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.cleared {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	// Player
	d := g.playerIntent(in)
	g.player.Facing = face(g.player.Facing, d.X)
	g.player.Rect = move(g.player.Rect, d, g.world.Obstacles(), g.world.Width, g.world.Height)

	g.applyRules()

	// Pirate
	g.pirate.Speed = g.difficulty.PirateSpeed(g.pirateBase, g.score, int(g.tick))
	g.pirate.update(g.world, &g.player, g.rules, g.rng)

	g.camera.Follow(g.player.Rect, g.world.Width, g.world.Height)

	if g.world.TotalDogs() > 0 && g.world.SleepingDogs() == 0 {
		g.cleared = true
		logger.Info("all dogs awake", "score", g.score, "ticks", g.tick)
	}

	return core.StepResult{State: g.State()}
}

// playerIntent turns the input frame into the requested displacement.
// Held directions win over the pointer.
func (g *Game) playerIntent(in core.InputFrame) core.Vec {
	mv := g.cfg.Movement
	switch {
	case !in.Held.Empty():
		return directional(in.Held, g.player.Speed, mv.NormalizeDiagonal)
	case in.Pointer.Active:
		return seek(g.player.Rect.Center(), in.Pointer.Target(), g.player.Speed, g.player.Speed*mv.PointerDeadZone)
	default:
		return core.Vec{}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.cleared,
		Paused:   g.paused,
	}
}

// Camera returns the current viewport.
func (g *Game) Camera() Camera {
	return g.camera
}

// Register both island layouts with the registry.
func init() {
	registry.Register(IDFixed, func() registry.Game {
		return New()
	})
	registry.Register(IDRandom, func() registry.Game {
		return NewRandom()
	})
}
