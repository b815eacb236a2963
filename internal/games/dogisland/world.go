package dogisland

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dogisland/internal/config"
	"github.com/vovakirdan/dogisland/internal/core"
)

// DogState is asleep or awake. Dogs only ever go from asleep to awake.
type DogState int

const (
	Asleep DogState = iota
	Awake
)

// String returns the visual key suffix for the state.
func (s DogState) String() string {
	if s == Awake {
		return "Awake"
	}
	return "Asleep"
}

// dogTypes is the number of distinct dog sprites.
const dogTypes = 4

// Dog sleeps on an island until medicine is delivered there.
type Dog struct {
	Type  int // 1..4
	State DogState
	Rect  core.Rect
}

// VisualKey returns dog{1..4}{Asleep|Awake}.
func (d Dog) VisualKey() string {
	return fmt.Sprintf("dog%d%s", d.Type, d.State)
}

// Island is an obstacle that owns its dogs.
type Island struct {
	Key  string
	Rect core.Rect
	Dogs []*Dog
}

// Wake wakes every sleeping dog and returns how many woke.
func (i *Island) Wake() int {
	woken := 0
	for _, d := range i.Dogs {
		if d.State == Asleep {
			d.State = Awake
			woken++
		}
	}
	return woken
}

// Sleeping returns the number of dogs still asleep.
func (i *Island) Sleeping() int {
	n := 0
	for _, d := range i.Dogs {
		if d.State == Asleep {
			n++
		}
	}
	return n
}

// World is the static layout: bounds, factory and islands.
type World struct {
	Width, Height float64
	Factory       core.Rect
	Islands       []*Island

	// obstacles are the padded hitboxes of the factory and every island.
	obstacles []core.Rect
}

// NewWorld lays out the factory at the world center and the islands
// according to cfg.Islands.Placement. reserved areas (ship spawn points)
// are kept clear by random placement. Islands that cannot be placed are
// logged and left out.
func NewWorld(cfg config.GameConfig, rng *rand.Rand, logger *log.Logger, reserved ...core.Rect) *World {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w := &World{
		Width:  cfg.World.Width,
		Height: cfg.World.Height,
		Factory: core.NewRect(
			cfg.World.Width/2-cfg.Factory.Width/2,
			cfg.World.Height/2-cfg.Factory.Height/2,
			cfg.Factory.Width,
			cfg.Factory.Height,
		),
	}

	var rects []core.Rect
	switch cfg.Islands.Placement {
	case config.PlacementRandom:
		rects = placeRandom(cfg, w.Factory, reserved, rng, logger)
	default:
		rects = placeFixed(cfg)
	}

	for i, r := range rects {
		island := &Island{Key: fmt.Sprintf("island%d", i+1), Rect: r}
		island.Dogs = layoutDogs(r, cfg.Dogs, rng)
		w.Islands = append(w.Islands, island)
	}

	pad := cfg.Movement.ObstaclePadding
	w.obstacles = append(w.obstacles, w.Factory.Shrink(pad))
	for _, island := range w.Islands {
		w.obstacles = append(w.obstacles, island.Rect.Shrink(pad))
	}
	return w
}

// Obstacles returns the padded hitboxes ships collide with.
func (w *World) Obstacles() []core.Rect {
	return w.obstacles
}

// SleepingDogs returns the number of dogs still asleep in the world.
func (w *World) SleepingDogs() int {
	n := 0
	for _, island := range w.Islands {
		n += island.Sleeping()
	}
	return n
}

// TotalDogs returns the number of dogs in the world.
func (w *World) TotalDogs() int {
	n := 0
	for _, island := range w.Islands {
		n += len(island.Dogs)
	}
	return n
}

// placeFixed centers one island on each configured anchor.
func placeFixed(cfg config.GameConfig) []core.Rect {
	iw, ih := cfg.Islands.Width, cfg.Islands.Height
	rects := make([]core.Rect, 0, len(cfg.Islands.Anchors))
	for _, a := range cfg.Islands.Anchors {
		cx := cfg.World.Width * a.X
		cy := cfg.World.Height * a.Y
		rects = append(rects, core.NewRect(cx-iw/2, cy-ih/2, iw, ih))
	}
	return rects
}

// placeRandom rejection-samples cfg.Islands.Count islands. A candidate is
// rejected when it comes within FactoryClearance of the factory, within
// Separation of an already placed island, or overlaps a reserved area.
// EdgeMargin bounds the sampling range.
func placeRandom(cfg config.GameConfig, factory core.Rect, reserved []core.Rect, rng *rand.Rand, logger *log.Logger) []core.Rect {
	ic := cfg.Islands
	minX, maxX := ic.EdgeMargin, cfg.World.Width-ic.EdgeMargin-ic.Width
	minY, maxY := ic.EdgeMargin, cfg.World.Height-ic.EdgeMargin-ic.Height
	keepOut := factory.Expand(ic.FactoryClearance)

	var placed []core.Rect
	for i := 0; i < ic.Count; i++ {
		ok := false
		for attempt := 0; attempt < ic.MaxAttempts && maxX >= minX && maxY >= minY; attempt++ {
			c := core.NewRect(
				minX+rng.Float64()*(maxX-minX),
				minY+rng.Float64()*(maxY-minY),
				ic.Width, ic.Height,
			)
			if fits(c, keepOut, placed, ic.Separation, reserved) {
				placed = append(placed, c)
				ok = true
				break
			}
		}
		if !ok {
			logger.Warn("island placement failed",
				"island", fmt.Sprintf("island%d", i+1),
				"attempts", ic.MaxAttempts)
		}
	}
	return placed
}

func fits(c, keepOut core.Rect, placed []core.Rect, separation float64, reserved []core.Rect) bool {
	if c.Intersects(keepOut) {
		return false
	}
	grown := c.Expand(separation)
	for _, p := range placed {
		if grown.Intersects(p) {
			return false
		}
	}
	for _, r := range reserved {
		if c.Intersects(r) {
			return false
		}
	}
	return true
}

// layoutDogs places up to four dogs side by side on the island's middle
// row, each with a distinct type.
func layoutDogs(island core.Rect, dc config.DogsConfig, rng *rand.Rand) []*Dog {
	n := core.Min(dc.PerIsland, dogTypes)
	types := rng.Perm(dogTypes)

	dogs := make([]*Dog, 0, n)
	for i := 0; i < n; i++ {
		x := island.X + island.W/2 - dc.Width + float64(i)*(dc.Width+dc.Spacing)
		y := island.Y + island.H/2 - dc.Height/2
		dogs = append(dogs, &Dog{
			Type:  types[i] + 1,
			State: Asleep,
			Rect:  core.NewRect(x, y, dc.Width, dc.Height),
		})
	}
	return dogs
}
