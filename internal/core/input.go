package core

import "sync"

// Action represents a one-shot game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionPause          // P, Escape - pause/unpause game
	ActionRestart        // R key - restart game
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction is one of the four logical movement directions.
type Direction uint8

const (
	DirUp Direction = 1 << iota
	DirDown
	DirLeft
	DirRight
)

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection maps a lowercase direction name to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "up":
		return DirUp, true
	case "down":
		return DirDown, true
	case "left":
		return DirLeft, true
	case "right":
		return DirRight, true
	}
	return 0, false
}

// DirectionSet is the set of currently held directions.
type DirectionSet uint8

// Has reports whether d is held.
func (s DirectionSet) Has(d Direction) bool {
	return s&DirectionSet(d) != 0
}

// With returns the set with d added.
func (s DirectionSet) With(d Direction) DirectionSet {
	return s | DirectionSet(d)
}

// Without returns the set with d removed.
func (s DirectionSet) Without(d Direction) DirectionSet {
	return s &^ DirectionSet(d)
}

// Empty reports whether no direction is held.
func (s DirectionSet) Empty() bool {
	return s == 0
}

// Pointer is a world-space steering target.
// Active is true while the pointer is held down.
type Pointer struct {
	X, Y   float64
	Active bool
}

// Target returns the pointer position as a vector.
func (p Pointer) Target() Vec {
	return Vec{X: p.X, Y: p.Y}
}

// InputFrame is the read-only intent consumed by one simulation tick.
type InputFrame struct {
	// Actions holds one-shot actions triggered since the previous tick.
	Actions map[Action]bool
	// Held is the set of directions held down at tick time.
	Held DirectionSet
	// Pointer is the steering target; ignored unless Active.
	Pointer Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Held = f.Held
	clone.Pointer = f.Pointer
	return clone
}

// Controls accumulates asynchronous input events into the intent read by
// the next tick. Event handlers only ever touch Controls; entity state is
// mutated exclusively inside Game.Step.
//
// Keyboard takes precedence over the pointer: a direction press cancels
// pointer steering, and a pointer press clears held directions.
type Controls struct {
	mu      sync.Mutex
	held    DirectionSet
	pointer Pointer
	pending map[Action]bool
}

// NewControls creates an idle controls tracker.
func NewControls() *Controls {
	return &Controls{pending: make(map[Action]bool)}
}

// KeyDown marks d as held and cancels pointer steering.
func (c *Controls) KeyDown(d Direction) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.held = c.held.With(d)
	c.pointer.Active = false
}

// KeyUp releases d.
func (c *Controls) KeyUp(d Direction) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.held = c.held.Without(d)
}

// PointerDown starts steering toward (x, y) and clears held directions.
func (c *Controls) PointerDown(x, y float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pointer = Pointer{X: x, Y: y, Active: true}
	c.held = 0
}

// PointerMove updates the steering target while the pointer is held.
func (c *Controls) PointerMove(x, y float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.pointer.Active {
		return
	}
	c.pointer.X, c.pointer.Y = x, y
}

// PointerUp stops pointer steering.
func (c *Controls) PointerUp() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pointer.Active = false
}

// Trigger queues a one-shot action for the next frame.
func (c *Controls) Trigger(a Action) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending[a] = true
}

// Reset releases every direction and the pointer and drops queued actions.
func (c *Controls) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.held = 0
	c.pointer = Pointer{}
	clear(c.pending)
}

// Frame returns the intent for the next tick. Queued one-shot actions are
// consumed; held directions and the pointer persist.
func (c *Controls) Frame() InputFrame {
	c.mu.Lock()
	defer c.mu.Unlock()

	f := NewInputFrame()
	for a := range c.pending {
		f.Actions[a] = true
	}
	clear(c.pending)
	f.Held = c.held
	f.Pointer = c.pointer
	return f
}
