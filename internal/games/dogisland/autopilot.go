package dogisland

import (
	"math"

	"github.com/vovakirdan/dogisland/internal/core"
)

// Autopilot steers the player with pointer intent: to the factory while
// the hold is empty, then to the nearest island with sleeping dogs.
// It only reads snapshots, so it drives a game the same way a remote
// client would.
type Autopilot struct{}

// Frame returns the input for the next tick given the current snapshot.
func (Autopilot) Frame(s Snapshot) core.InputFrame {
	in := core.NewInputFrame()
	if s.Cleared {
		return in
	}

	var target core.Vec
	if !s.Player.HasMedicine {
		target = s.Factory.Center()
	} else {
		island, ok := nearestSleeping(s)
		if !ok {
			return in
		}
		target = island.Rect.Center()
	}

	in.Pointer = core.Pointer{X: target.X, Y: target.Y, Active: true}
	return in
}

// nearestSleeping returns the island with sleeping dogs closest to the player.
func nearestSleeping(s Snapshot) (IslandView, bool) {
	from := s.Player.Rect.Center()
	best, bestDist := IslandView{}, math.Inf(1)
	for _, island := range s.Islands {
		sleeping := false
		for _, d := range island.Dogs {
			if !d.Awake {
				sleeping = true
				break
			}
		}
		if !sleeping {
			continue
		}
		if dist := from.Dist(island.Rect.Center()); dist < bestDist {
			best, bestDist = island, dist
		}
	}
	return best, !math.IsInf(bestDist, 1)
}

// Report summarizes a headless autopilot run.
type Report struct {
	Ticks     uint64 `json:"ticks"`
	Score     int    `json:"score"`
	Sleeping  int    `json:"sleeping"`
	Total     int    `json:"total"`
	Cleared   bool   `json:"cleared"`
	ClearedAt uint64 `json:"cleared_at,omitempty"` // Tick the last dog woke
	Thefts    int    `json:"thefts"`
}

// RunAutopilot steps an already reset game for up to maxTicks ticks, or
// until every dog is awake, and reports the outcome.
func RunAutopilot(g *Game, maxTicks int) Report {
	var pilot Autopilot
	var r Report

	for i := 0; i < maxTicks && !g.cleared; i++ {
		carrying := g.player.HasMedicine
		before := g.score
		g.Step(pilot.Frame(g.Snapshot()))
		if carrying && !g.player.HasMedicine && g.score == before {
			r.Thefts++
		}
	}

	r.Ticks = g.tick
	r.Score = g.score
	r.Sleeping = g.world.SleepingDogs()
	r.Total = g.world.TotalDogs()
	r.Cleared = g.cleared
	if g.cleared {
		r.ClearedAt = g.tick
	}
	return r
}
