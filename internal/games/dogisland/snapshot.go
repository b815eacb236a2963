package dogisland

import "github.com/vovakirdan/dogisland/internal/core"

// Snapshot is a read-only copy of everything a renderer needs for one tick.
// It is safe to hand to another goroutine or encode as JSON.
type Snapshot struct {
	Tick    uint64       `json:"tick"`
	Score   int          `json:"score"`
	Paused  bool         `json:"paused"`
	Cleared bool         `json:"cleared"`
	World   WorldSize    `json:"world"`
	Camera  core.Rect    `json:"camera"`
	Factory core.Rect    `json:"factory"`
	Islands []IslandView `json:"islands"`
	Player  PlayerView   `json:"player"`
	Pirate  PirateView   `json:"pirate"`
}

// WorldSize is the fixed world extent.
type WorldSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// IslandView is an island and its dogs.
type IslandView struct {
	Key  string    `json:"key"`
	Rect core.Rect `json:"rect"`
	Dogs []DogView `json:"dogs"`
}

// DogView is one dog. Visual is dog{1..4}{Asleep|Awake}.
type DogView struct {
	Rect   core.Rect `json:"rect"`
	Type   int       `json:"type"`
	Awake  bool      `json:"awake"`
	Visual string    `json:"visual"`
}

// PlayerView is the player's ship. Visual is ship{Empty|Full}{Left|Right}.
type PlayerView struct {
	Rect        core.Rect `json:"rect"`
	Facing      string    `json:"facing"`
	HasMedicine bool      `json:"has_medicine"`
	Visual      string    `json:"visual"`
}

// PirateView is the pirate ship. Visual is pirate{Left|Right}.
type PirateView struct {
	Rect   core.Rect `json:"rect"`
	Facing string    `json:"facing"`
	Active bool      `json:"active"`
	Mode   string    `json:"mode"`
	Visual string    `json:"visual"`
}

// Snapshot returns the current state for rendering and determinism checks.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:    g.tick,
		Score:   g.score,
		Paused:  g.paused,
		Cleared: g.cleared,
		World:   WorldSize{Width: g.world.Width, Height: g.world.Height},
		Camera:  g.camera.Rect,
		Factory: g.world.Factory,
		Islands: make([]IslandView, 0, len(g.world.Islands)),
		Player: PlayerView{
			Rect:        g.player.Rect,
			Facing:      g.player.Facing.String(),
			HasMedicine: g.player.HasMedicine,
			Visual:      g.player.VisualKey(),
		},
		Pirate: PirateView{
			Rect:   g.pirate.Rect,
			Facing: g.pirate.Facing.String(),
			Active: g.pirate.Active(),
			Mode:   g.pirate.modeName(),
			Visual: g.pirate.VisualKey(),
		},
	}

	for _, island := range g.world.Islands {
		iv := IslandView{
			Key:  island.Key,
			Rect: island.Rect,
			Dogs: make([]DogView, 0, len(island.Dogs)),
		}
		for _, d := range island.Dogs {
			iv.Dogs = append(iv.Dogs, DogView{
				Rect:   d.Rect,
				Type:   d.Type,
				Awake:  d.State == Awake,
				Visual: d.VisualKey(),
			})
		}
		s.Islands = append(s.Islands, iv)
	}
	return s
}

// Visible reports whether r is inside the snapshot's viewport.
func (s Snapshot) Visible(r core.Rect) bool {
	return r.Intersects(s.Camera)
}
