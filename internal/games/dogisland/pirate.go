package dogisland

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/dogisland/internal/core"
)

// pirateRules holds the tunables of the pirate state machine.
type pirateRules struct {
	arrivalRadius float64 // Patrol island counts as reached inside this distance
	departure     float64 // Distance to sail away from a visited island
	deadZone      float64 // Fraction of speed
}

// update runs one tick of the pirate state machine and moves the pirate.
//
//	Patrolling(i) --arrive--> Departing(p) --arrive/blocked--> Patrolling(i+1)
//	any --player has medicine--> Chasing --medicine gone--> Patrolling(i)
func (p *Pirate) update(w *World, player *Player, rules pirateRules, rng *rand.Rand) {
	n := len(w.Islands)

	switch {
	case player.HasMedicine && !p.IsChasing():
		p.Mode = Chasing{}
	case !player.HasMedicine && p.IsChasing():
		p.resume(n)
	}

	center := p.Rect.Center()
	var target core.Vec

	switch m := p.Mode.(type) {
	case Chasing:
		target = player.Rect.Center()

	case Patrolling:
		if n == 0 {
			p.Mode = Inactive{}
			return
		}
		target = w.Islands[m.Island%n].Rect.Center()

	case Departing:
		if center.Dist(m.Target) < p.Speed {
			p.advance(n)
			target = w.Islands[p.patrol].Rect.Center()
		} else {
			target = m.Target
		}

	default:
		return
	}

	d := seek(center, target, p.Speed, p.Speed*rules.deadZone)
	p.Facing = face(p.Facing, d.X)
	next := move(p.Rect, d, w.Obstacles(), w.Width, w.Height)

	switch p.Mode.(type) {
	case Patrolling:
		// Arrival is judged after this tick's move.
		p.Rect = next
		if p.Rect.Center().Dist(target) < rules.arrivalRadius {
			p.Mode = Departing{Target: p.departurePoint(target, rules.departure, w, rng)}
		}
		return
	case Departing:
		if !d.IsZero() && next == p.Rect {
			// Departure point unreachable; move on to the next island.
			p.advance(n)
		}
	}
	p.Rect = next
}

// departurePoint returns a point departure units away from the pirate's
// center, directly away from islandCenter, kept inside the world.
func (p *Pirate) departurePoint(islandCenter core.Vec, departure float64, w *World, rng *rand.Rand) core.Vec {
	center := p.Rect.Center()
	dir := center.Sub(islandCenter).Normalize()
	if dir.IsZero() {
		angle := rng.Float64() * 2 * math.Pi
		dir = core.Vec{X: math.Cos(angle), Y: math.Sin(angle)}
	}
	pt := center.Add(dir.Scale(departure))
	pt.X = core.ClampF(pt.X, p.Rect.W/2, w.Width-p.Rect.W/2)
	pt.Y = core.ClampF(pt.Y, p.Rect.H/2, w.Height-p.Rect.H/2)
	return pt
}

// advance moves the patrol on to the next island.
func (p *Pirate) advance(islands int) {
	p.patrol = (p.patrol + 1) % islands
	p.Mode = Patrolling{Island: p.patrol}
}

// resume returns to patrolling the remembered island after a chase.
func (p *Pirate) resume(islands int) {
	if islands == 0 {
		p.Mode = Inactive{}
		return
	}
	p.patrol %= islands
	p.Mode = Patrolling{Island: p.patrol}
}
