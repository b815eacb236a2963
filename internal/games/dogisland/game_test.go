package dogisland

import (
	"encoding/json"
	"math"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/dogisland/internal/config"
	"github.com/vovakirdan/dogisland/internal/core"
)

// newTestGame returns a reset game on the fixed layout with difficulty
// progression switched off so speeds stay at their configured values.
func newTestGame(t *testing.T, mutate func(*config.GameConfig)) *Game {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Difficulty.Enabled = false
	if mutate != nil {
		mutate(&cfg)
	}
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return g
}

func held(dirs ...core.Direction) core.InputFrame {
	in := core.NewInputFrame()
	for _, d := range dirs {
		in.Held = in.Held.With(d)
	}
	return in
}

func TestInitialLayout(t *testing.T) {
	g := newTestGame(t, nil)

	if g.player.Rect != core.NewRect(2325, 2000, 150, 150) {
		t.Errorf("Expected player at (2325,2000), got %+v", g.player.Rect)
	}
	if g.player.HasMedicine {
		t.Error("Player should start without medicine")
	}
	if g.world.Factory != core.NewRect(2250, 1650, 300, 300) {
		t.Errorf("Expected centered factory, got %+v", g.world.Factory)
	}
	if len(g.world.Islands) != 4 {
		t.Fatalf("Expected 4 islands, got %d", len(g.world.Islands))
	}
	if m, ok := g.pirate.Mode.(Patrolling); !ok || m.Island != 0 {
		t.Errorf("Expected pirate patrolling island 0, got %#v", g.pirate.Mode)
	}
	if g.State() != (core.GameState{}) {
		t.Errorf("Expected zero state, got %+v", g.State())
	}
}

func TestPickupThenDelivery(t *testing.T) {
	g := newTestGame(t, nil)
	up := held(core.DirUp)

	// Factory bottom is 50 units above the ship; 8 units per tick.
	for i := 0; i < 6; i++ {
		g.Step(up)
	}
	if g.player.HasMedicine {
		t.Fatal("Player should not have medicine before touching the factory")
	}
	g.Step(up)
	if !g.player.Rect.Intersects(g.world.Factory) {
		t.Fatalf("Player should overlap the factory after 7 ticks, at %+v", g.player.Rect)
	}
	if !g.player.HasMedicine {
		t.Fatal("Medicine should be picked up on the tick the ship reaches the factory")
	}

	// Sail into island1 from its right side.
	island := g.world.Islands[0]
	g.player.Rect.X = island.Rect.Right()
	g.player.Rect.Y = island.Rect.Y + 60
	g.Step(held(core.DirLeft))

	if g.score != 20 {
		t.Errorf("Expected score 20 after waking two dogs, got %d", g.score)
	}
	if g.player.HasMedicine {
		t.Error("Medicine should be consumed by the delivery")
	}
	for i, d := range island.Dogs {
		if d.State != Awake {
			t.Errorf("Dog %d should be awake", i)
		}
	}
}

func TestDeliveryToAwakeIslandKeepsMedicine(t *testing.T) {
	g := newTestGame(t, nil)
	island := g.world.Islands[0]
	island.Wake()

	g.player.HasMedicine = true
	g.player.Rect.X = island.Rect.Right() - 20
	g.player.Rect.Y = island.Rect.Y + 60
	g.Step(core.NewInputFrame())

	if !g.player.HasMedicine {
		t.Error("Medicine must not be consumed when no dog wakes")
	}
	if g.score != 0 {
		t.Errorf("Score should be unchanged, got %d", g.score)
	}
}

func TestDogsWakeOnlyOnce(t *testing.T) {
	g := newTestGame(t, nil)
	island := g.world.Islands[2]
	g.player.Rect.X = island.Rect.Right() - 20
	g.player.Rect.Y = island.Rect.Y + 60

	g.player.HasMedicine = true
	g.Step(core.NewInputFrame())
	if g.score != 20 {
		t.Fatalf("Expected score 20, got %d", g.score)
	}

	for i := 0; i < 3; i++ {
		g.player.HasMedicine = true
		g.Step(core.NewInputFrame())
	}
	if g.score != 20 {
		t.Errorf("Re-delivering must not score again, got %d", g.score)
	}
}

func TestTheft(t *testing.T) {
	g := newTestGame(t, nil)
	g.player.Rect = core.NewRect(2325, 2400, 150, 150)
	g.player.HasMedicine = true
	g.pirate.Rect = core.NewRect(2350, 2420, 120, 120)
	g.pirate.Mode = Chasing{}
	g.pirate.patrol = 2

	g.Step(core.NewInputFrame())

	if g.player.HasMedicine {
		t.Error("Pirate should steal the medicine on contact")
	}
	if g.pirate.IsChasing() {
		t.Error("Pirate should stop chasing in the same tick")
	}
	if m, ok := g.pirate.Mode.(Patrolling); !ok || m.Island != 2 {
		t.Errorf("Expected pirate to resume patrolling island 2, got %#v", g.pirate.Mode)
	}
	if g.score != 0 {
		t.Errorf("Theft should not change the score, got %d", g.score)
	}
}

func TestNoTheftWithoutChase(t *testing.T) {
	g := newTestGame(t, nil)
	g.player.Rect = core.NewRect(2325, 2400, 150, 150)
	g.player.HasMedicine = true
	g.pirate.Rect = core.NewRect(2350, 2420, 120, 120)
	g.pirate.Mode = Patrolling{Island: 0}

	g.Step(core.NewInputFrame())

	// Rules run before the pirate switches to chasing.
	if !g.player.HasMedicine {
		t.Error("A patrolling pirate must not steal")
	}
	if !g.pirate.IsChasing() {
		t.Error("Pirate should start chasing once the player holds medicine")
	}
}

func TestPlayerStaysInWorldAndOutOfHitboxes(t *testing.T) {
	g := newTestGame(t, nil)
	rng := rand.New(rand.NewSource(7))
	dirs := []core.Direction{core.DirUp, core.DirDown, core.DirLeft, core.DirRight}

	in := core.NewInputFrame()
	for tick := 0; tick < 5000; tick++ {
		if tick%25 == 0 {
			in = core.NewInputFrame()
			for _, d := range dirs {
				if rng.Intn(2) == 0 {
					in.Held = in.Held.With(d)
				}
			}
		}
		g.Step(in)

		for _, r := range []core.Rect{g.player.Rect, g.pirate.Rect} {
			if r.X < 0 || r.X > g.world.Width-r.W || r.Y < 0 || r.Y > g.world.Height-r.H {
				t.Fatalf("tick %d: rect %+v left the world", tick, r)
			}
			if collides(r, g.world.Obstacles()) {
				t.Fatalf("tick %d: rect %+v entered a padded hitbox", tick, r)
			}
		}
		if g.cleared {
			break
		}
	}
}

func TestBlockedMoveSlidesAndFaces(t *testing.T) {
	g := newTestGame(t, nil)
	// Right side of the factory hitbox (x 2290..2510).
	g.player.Rect = core.NewRect(2510, 1750, 150, 150)

	g.Step(held(core.DirLeft, core.DirUp))

	if g.player.Rect.X != 2510 {
		t.Errorf("X move into the factory should be blocked, got x=%v", g.player.Rect.X)
	}
	if g.player.Rect.Y != 1742 {
		t.Errorf("Y move should still be applied, got y=%v", g.player.Rect.Y)
	}
	if g.player.Facing != FacingLeft {
		t.Error("Facing should follow the intended direction even when blocked")
	}
}

func TestPointerSteering(t *testing.T) {
	g := newTestGame(t, nil)
	start := g.player.Rect.Center()

	in := core.NewInputFrame()
	in.Pointer = core.Pointer{X: start.X - 1000, Y: start.Y, Active: true}
	g.Step(in)

	if got := g.player.Rect.Center(); math.Abs(got.X-(start.X-8)) > 1e-9 || got.Y != start.Y {
		t.Errorf("Expected to move 8 units left, got %+v from %+v", got, start)
	}
	if g.player.Facing != FacingLeft {
		t.Error("Expected facing left")
	}

	// Inside the dead zone the ship holds still.
	here := g.player.Rect.Center()
	in.Pointer = core.Pointer{X: here.X + 3, Y: here.Y, Active: true}
	g.Step(in)
	if g.player.Rect.Center() != here {
		t.Errorf("Ship should hold inside the dead zone, moved to %+v", g.player.Rect.Center())
	}

	// Held directions win over the pointer.
	in = held(core.DirDown)
	in.Pointer = core.Pointer{X: here.X - 1000, Y: here.Y, Active: true}
	g.Step(in)
	if got := g.player.Rect.Center(); got.X != here.X || got.Y != here.Y+8 {
		t.Errorf("Expected keyboard move down, got %+v", got)
	}
}

func TestCameraFollowsAndClamps(t *testing.T) {
	g := newTestGame(t, nil)

	g.player.Rect.X, g.player.Rect.Y = 0, 0
	g.Step(core.NewInputFrame())
	if g.camera.Rect.X != 0 || g.camera.Rect.Y != 0 {
		t.Errorf("Expected camera at origin, got %+v", g.camera.Rect)
	}

	g.player.Rect.X = g.world.Width - g.player.Rect.W
	g.player.Rect.Y = g.world.Height - g.player.Rect.H
	g.Step(core.NewInputFrame())
	if g.camera.Rect.X != g.world.Width-g.camera.Rect.W {
		t.Errorf("Expected camera.x = %v, got %v", g.world.Width-g.camera.Rect.W, g.camera.Rect.X)
	}
	if g.camera.Rect.Y != g.world.Height-g.camera.Rect.H {
		t.Errorf("Expected camera.y = %v, got %v", g.world.Height-g.camera.Rect.H, g.camera.Rect.Y)
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t, nil)
	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("Expected paused")
	}
	before := g.player.Rect
	g.Step(held(core.DirRight))
	if g.player.Rect != before || g.tick != 0 {
		t.Error("Paused game should not advance")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("Expected resumed")
	}
}

func TestAllDogsAwakeClearsRound(t *testing.T) {
	g := newTestGame(t, nil)
	for _, island := range g.world.Islands[1:] {
		island.Wake()
	}
	island := g.world.Islands[0]
	g.player.HasMedicine = true
	g.player.Rect.X = island.Rect.Right() - 20
	g.player.Rect.Y = island.Rect.Y + 60

	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver {
		t.Fatal("Expected round to be cleared once every dog is awake")
	}

	tick := g.tick
	g.Step(held(core.DirDown))
	if g.tick != tick {
		t.Error("Cleared round should not advance")
	}
}

func TestTickRateScalesSpeed(t *testing.T) {
	cfg := config.DefaultConfig()
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1})

	if g.player.Speed != 16 {
		t.Errorf("Expected player speed 16 at 30 ticks/s, got %v", g.player.Speed)
	}
	if g.pirateBase != 12 {
		t.Errorf("Expected pirate speed 12 at 30 ticks/s, got %v", g.pirateBase)
	}
}

func TestDifficultyRaisesPirateSpeed(t *testing.T) {
	g := newTestGame(t, func(c *config.GameConfig) {
		c.Difficulty.Enabled = true
	})
	g.Step(core.NewInputFrame())
	if g.pirate.Speed != 6 {
		t.Errorf("Expected base pirate speed at score 0, got %v", g.pirate.Speed)
	}

	g.score = 80
	g.Step(core.NewInputFrame())
	if g.pirate.Speed != 9 {
		t.Errorf("Expected pirate speed 9 at max difficulty, got %v", g.pirate.Speed)
	}
}

func TestDeterminism(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Islands.Placement = config.PlacementRandom
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345}

	g1 := NewWithConfig(cfg)
	g1.Reset(rt)
	g2 := NewWithConfig(cfg)
	g2.Reset(rt)

	var pilot Autopilot
	for i := 0; i < 300; i++ {
		g1.Step(pilot.Frame(g1.Snapshot()))
		g2.Step(pilot.Frame(g2.Snapshot()))
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Error("Games with the same seed and input should have identical snapshots")
	}
}

func TestAutopilotScores(t *testing.T) {
	g := newTestGame(t, nil)
	var pilot Autopilot

	for i := 0; i < 600 && g.score < 20; i++ {
		g.Step(pilot.Frame(g.Snapshot()))
	}
	if g.score < 20 {
		t.Errorf("Autopilot should wake at least one island, score %d", g.score)
	}
}

func TestRunAutopilotReport(t *testing.T) {
	g := newTestGame(t, nil)
	r := RunAutopilot(g, 600)

	if r.Ticks != 600 && !r.Cleared {
		t.Errorf("Expected 600 ticks or a cleared round, got %+v", r)
	}
	if r.Total != 8 {
		t.Errorf("Total = %d, expected 8", r.Total)
	}
	if want := (r.Total - r.Sleeping) * g.cfg.Scoring.PointsPerDog; r.Score != want {
		t.Errorf("Score = %d, expected %d", r.Score, want)
	}
	if r.Score < 20 {
		t.Errorf("Expected at least one delivery, got %+v", r)
	}
}

func TestRunAutopilotWithoutDogs(t *testing.T) {
	g := newTestGame(t, func(c *config.GameConfig) {
		c.Islands.Placement = config.PlacementRandom
		c.World = config.WorldConfig{Width: 1000, Height: 1000}
		c.Camera = config.CameraConfig{Width: 500, Height: 500}
		c.Pirate.StartX, c.Pirate.StartY = 0, 0
	})
	r := RunAutopilot(g, 100)
	if r.Ticks != 100 || r.Cleared || r.Total != 0 {
		t.Errorf("A world without dogs never clears, got %+v", r)
	}
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(t, nil)
	s := g.Snapshot()

	if s.Player.Visual != "shipEmptyRight" {
		t.Errorf("Expected shipEmptyRight, got %q", s.Player.Visual)
	}
	if s.Pirate.Visual != "pirateRight" || !s.Pirate.Active || s.Pirate.Mode != "patrolling" {
		t.Errorf("Unexpected pirate view %+v", s.Pirate)
	}
	if len(s.Islands) != 4 {
		t.Fatalf("Expected 4 islands, got %d", len(s.Islands))
	}
	for _, iv := range s.Islands {
		for _, d := range iv.Dogs {
			want := "dog" + string(rune('0'+d.Type)) + "Asleep"
			if d.Visual != want {
				t.Errorf("Expected %s, got %s", want, d.Visual)
			}
		}
	}

	g.player.HasMedicine = true
	g.player.Facing = FacingLeft
	if v := g.Snapshot().Player.Visual; v != "shipFullLeft" {
		t.Errorf("Expected shipFullLeft, got %q", v)
	}

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}
	for _, key := range []string{`"has_medicine"`, `"camera"`, `"visual"`, `"mode"`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("Snapshot JSON missing %s", key)
		}
	}
}

func TestRegistryIDs(t *testing.T) {
	if New().ID() != IDFixed || NewRandom().ID() != IDRandom {
		t.Error("Unexpected game IDs")
	}
	cfg := config.DefaultConfig()
	cfg.Islands.Placement = config.PlacementRandom
	if NewWithConfig(cfg).ID() != IDRandom {
		t.Error("Config placement should decide the ID")
	}
}
