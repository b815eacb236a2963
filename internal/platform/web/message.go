// Package web streams games over WebSocket: clients send input messages
// and receive one JSON snapshot per tick, drawing the world themselves.
package web

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/dogisland/internal/core"
)

// Input message types.
const (
	MsgKeyDown     = "key_down"
	MsgKeyUp       = "key_up"
	MsgPointerDown = "pointer_down"
	MsgPointerMove = "pointer_move"
	MsgPointerUp   = "pointer_up"
	MsgPause       = "pause"
	MsgRestart     = "restart"
)

// ErrBadMessage is wrapped by every rejected input message.
var ErrBadMessage = errors.New("bad message")

// InputMessage is a client event. Dir is used by key messages and is one
// of up, down, left, right. X and Y are world coordinates for pointer
// messages.
type InputMessage struct {
	Type string  `json:"type"`
	Dir  string  `json:"dir,omitempty"`
	X    float64 `json:"x,omitempty"`
	Y    float64 `json:"y,omitempty"`
}

// Apply records the event in c. Entity state is never touched here.
func (m InputMessage) Apply(c *core.Controls) error {
	switch m.Type {
	case MsgKeyDown, MsgKeyUp:
		d, ok := core.ParseDirection(m.Dir)
		if !ok {
			return fmt.Errorf("web: direction %q: %w", m.Dir, ErrBadMessage)
		}
		if m.Type == MsgKeyDown {
			c.KeyDown(d)
		} else {
			c.KeyUp(d)
		}
	case MsgPointerDown:
		c.PointerDown(m.X, m.Y)
	case MsgPointerMove:
		c.PointerMove(m.X, m.Y)
	case MsgPointerUp:
		c.PointerUp()
	case MsgPause:
		c.Trigger(core.ActionPause)
	case MsgRestart:
		c.Trigger(core.ActionRestart)
	default:
		return fmt.Errorf("web: type %q: %w", m.Type, ErrBadMessage)
	}
	return nil
}
