package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dogisland/internal/core"
)

// KeyMap defines the game's key bindings.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns bindings for the one-line help footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns all bindings grouped by purpose.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Pause, k.Restart, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns arrow keys and WASD for steering.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// opposite maps each direction to the one it cancels.
var opposite = map[core.Direction]core.Direction{
	core.DirUp:    core.DirDown,
	core.DirDown:  core.DirUp,
	core.DirLeft:  core.DirRight,
	core.DirRight: core.DirLeft,
}

// KeyMapper translates Bubble Tea key messages into Controls updates.
//
// Terminals report key presses (repeated while a key is held) but never
// releases, so a direction is held for holdTicks after its last press and
// then released.
type KeyMapper struct {
	keys      KeyMap
	holdTicks int
	expiry    map[core.Direction]int
}

// NewKeyMapper creates a key mapper that releases directions holdTicks
// ticks after their last press.
func NewKeyMapper(keys KeyMap, holdTicks int) *KeyMapper {
	return &KeyMapper{
		keys:      keys,
		holdTicks: core.Max(1, holdTicks),
		expiry:    make(map[core.Direction]int),
	}
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// direction returns the steering direction bound to msg, if any.
func (km *KeyMapper) direction(msg tea.KeyMsg) (core.Direction, bool) {
	switch {
	case key.Matches(msg, km.keys.Up):
		return core.DirUp, true
	case key.Matches(msg, km.keys.Down):
		return core.DirDown, true
	case key.Matches(msg, km.keys.Left):
		return core.DirLeft, true
	case key.Matches(msg, km.keys.Right):
		return core.DirRight, true
	}
	return 0, false
}

// MapKey applies msg to c. It returns the one-shot action the key stands
// for (ActionNone for steering keys and unbound keys).
func (km *KeyMapper) MapKey(msg tea.KeyMsg, c *core.Controls) core.Action {
	if d, ok := km.direction(msg); ok {
		// A press of the opposite key means the player changed their mind.
		if o := opposite[d]; km.expiry[o] > 0 {
			delete(km.expiry, o)
			c.KeyUp(o)
		}
		km.expiry[d] = km.holdTicks
		c.KeyDown(d)
		return core.ActionNone
	}

	var action core.Action
	switch {
	case key.Matches(msg, km.keys.Quit):
		action = core.ActionQuit
	case key.Matches(msg, km.keys.Pause):
		action = core.ActionPause
	case key.Matches(msg, km.keys.Restart):
		action = core.ActionRestart
	default:
		return core.ActionNone
	}
	c.Trigger(action)
	return action
}

// Tick ages held directions and releases the expired ones.
func (km *KeyMapper) Tick(c *core.Controls) {
	for d, left := range km.expiry {
		if left <= 1 {
			delete(km.expiry, d)
			c.KeyUp(d)
			continue
		}
		km.expiry[d] = left - 1
	}
}

// Release drops every held direction.
func (km *KeyMapper) Release(c *core.Controls) {
	for d := range km.expiry {
		c.KeyUp(d)
	}
	clear(km.expiry)
}
