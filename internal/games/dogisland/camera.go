package dogisland

import "github.com/vovakirdan/dogisland/internal/core"

// Camera is the world-space viewport. It follows the player and never
// leaves the world.
type Camera struct {
	Rect core.Rect
}

// NewCamera creates a camera of the given size at the world origin.
func NewCamera(w, h float64) Camera {
	return Camera{Rect: core.NewRect(0, 0, w, h)}
}

// Follow centers the viewport on target, clamped to the world bounds.
func (c *Camera) Follow(target core.Rect, worldW, worldH float64) {
	center := target.Center()
	c.Rect.X = core.ClampF(center.X-c.Rect.W/2, 0, worldW-c.Rect.W)
	c.Rect.Y = core.ClampF(center.Y-c.Rect.H/2, 0, worldH-c.Rect.H)
}

// Visible reports whether r is at least partly inside the viewport.
func (c Camera) Visible(r core.Rect) bool {
	return r.Intersects(c.Rect)
}
