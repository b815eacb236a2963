package dogisland

import (
	"github.com/vovakirdan/dogisland/internal/core"
)

// Facing is the horizontal direction a ship sprite points to.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// String returns "Left" or "Right", the suffix used in visual keys.
func (f Facing) String() string {
	if f == FacingLeft {
		return "Left"
	}
	return "Right"
}

// face returns the facing for a horizontal displacement.
// Zero displacement keeps the current facing.
func face(current Facing, dx float64) Facing {
	switch {
	case dx < 0:
		return FacingLeft
	case dx > 0:
		return FacingRight
	default:
		return current
	}
}

// Player is the medicine ship controlled by input intent.
type Player struct {
	Rect        core.Rect
	Speed       float64
	HasMedicine bool
	Facing      Facing
}

// VisualKey returns one of shipEmptyLeft, shipEmptyRight, shipFullLeft, shipFullRight.
func (p Player) VisualKey() string {
	cargo := "Empty"
	if p.HasMedicine {
		cargo = "Full"
	}
	return "ship" + cargo + p.Facing.String()
}

// PirateMode is the pirate's behaviour state. The concrete types are
// Inactive, Patrolling, Departing and Chasing.
type PirateMode interface {
	// Name is the lowercase mode name used in snapshots and logs.
	Name() string
	pirateMode()
}

// Inactive pirates stay put. Used when the world has no islands to patrol.
type Inactive struct{}

// Patrolling heads for the center of island Island.
type Patrolling struct {
	Island int
}

// Departing sails to Target after visiting a patrol island.
type Departing struct {
	Target core.Vec
}

// Chasing pursues the player's current center.
type Chasing struct{}

func (Inactive) Name() string   { return "inactive" }
func (Patrolling) Name() string { return "patrolling" }
func (Departing) Name() string  { return "departing" }
func (Chasing) Name() string    { return "chasing" }

func (Inactive) pirateMode()   {}
func (Patrolling) pirateMode() {}
func (Departing) pirateMode()  {}
func (Chasing) pirateMode()    {}

// Pirate is the AI ship that patrols the islands and steals medicine.
type Pirate struct {
	Rect   core.Rect
	Speed  float64
	Facing Facing
	Mode   PirateMode

	// patrol is the island index to resume after a chase.
	patrol int
}

// Active reports whether the pirate takes part in the game.
func (p Pirate) Active() bool {
	_, inactive := p.Mode.(Inactive)
	return p.Mode != nil && !inactive
}

// IsChasing reports whether the pirate is pursuing the player.
func (p Pirate) IsChasing() bool {
	_, ok := p.Mode.(Chasing)
	return ok
}

// VisualKey returns pirateLeft or pirateRight.
func (p Pirate) VisualKey() string {
	return "pirate" + p.Facing.String()
}

// modeName returns the current mode name, "inactive" for a nil mode.
func (p Pirate) modeName() string {
	if p.Mode == nil {
		return Inactive{}.Name()
	}
	return p.Mode.Name()
}
