package dogisland

import (
	"math"

	"github.com/vovakirdan/dogisland/internal/core"
)

// directional converts held directions into a per-axis displacement of
// -speed, 0 or +speed. Opposite directions cancel out. Diagonals move at
// speed*√2 unless normalize is set.
func directional(held core.DirectionSet, speed float64, normalize bool) core.Vec {
	var d core.Vec
	if held.Has(core.DirUp) {
		d.Y -= speed
	}
	if held.Has(core.DirDown) {
		d.Y += speed
	}
	if held.Has(core.DirLeft) {
		d.X -= speed
	}
	if held.Has(core.DirRight) {
		d.X += speed
	}
	if normalize && d.X != 0 && d.Y != 0 {
		d = d.Scale(1 / math.Sqrt2)
	}
	return d
}

// seek returns a displacement of length speed from `from` toward target.
// Within deadZone of the target the entity holds still.
func seek(from, target core.Vec, speed, deadZone float64) core.Vec {
	delta := target.Sub(from)
	if delta.Len() < deadZone {
		return core.Vec{}
	}
	return delta.Normalize().Scale(speed)
}

// collides reports whether r overlaps any obstacle.
func collides(r core.Rect, obstacles []core.Rect) bool {
	for _, o := range obstacles {
		if r.Intersects(o) {
			return true
		}
	}
	return false
}

// move applies d to r one axis at a time. The X step is committed only if
// it is clear of every obstacle; the Y step is then tested from the
// possibly updated X, which lets ships slide along walls. The result is
// clamped to the world.
func move(r core.Rect, d core.Vec, obstacles []core.Rect, worldW, worldH float64) core.Rect {
	if d.X != 0 {
		if next := r.Moved(d.X, 0); !collides(next, obstacles) {
			r = next
		}
	}
	if d.Y != 0 {
		if next := r.Moved(0, d.Y); !collides(next, obstacles) {
			r = next
		}
	}
	return r.ClampInto(worldW, worldH)
}
