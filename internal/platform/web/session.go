package web

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/dogisland/internal/core"
	"github.com/vovakirdan/dogisland/internal/games/dogisland"
	"github.com/vovakirdan/dogisland/internal/registry"
)

// WebSocket settings
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 8
)

// Game is a registered game that can also produce snapshots.
type Game interface {
	registry.Game
	Snapshot() dogisland.Snapshot
}

// session owns one game and its connection. Only run touches the game;
// readPump writes to controls and writePump drains send.
type session struct {
	game     Game
	runtime  core.RuntimeConfig
	controls *core.Controls
	conn     *websocket.Conn
	send     chan dogisland.Snapshot
	logger   *log.Logger
}

func newSession(game Game, rt core.RuntimeConfig, conn *websocket.Conn, logger *log.Logger) *session {
	return &session{
		game:     game,
		runtime:  rt,
		controls: core.NewControls(),
		conn:     conn,
		send:     make(chan dogisland.Snapshot, sendBuffer),
		logger:   logger,
	}
}

// serve runs the session until the client goes away or ctx ends.
func (s *session) serve(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.game.Reset(s.runtime)
	s.send <- s.game.Snapshot()

	go s.writePump(ctx)
	go s.run(ctx)
	s.readPump()
}

// run steps the game at the runtime tick rate and queues a snapshot per
// tick. A slow client misses snapshots instead of stalling the game.
func (s *session) run(ctx context.Context) {
	ticker := time.NewTicker(time.Second / time.Duration(s.runtime.TickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		frame := s.controls.Frame()
		if frame.Has(core.ActionRestart) {
			s.game.Reset(s.runtime)
			s.controls.Reset()
		} else {
			s.game.Step(frame)
		}

		select {
		case s.send <- s.game.Snapshot():
		default:
			s.logger.Debug("snapshot dropped", "tick", s.game.Snapshot().Tick)
		}
	}
}

// readPump reads input messages until the connection fails.
func (s *session) readPump() {
	defer s.conn.Close()

	s.conn.SetReadLimit(maxMessageSize)
	if err := s.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		s.logger.Warn("failed to set read deadline", "err", err)
	}
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg InputMessage
		if err := s.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("websocket read failed", "err", err)
			}
			return
		}
		if err := msg.Apply(s.controls); err != nil {
			s.logger.Debug("ignoring message", "err", err)
		}
	}
}

// writePump sends snapshots and keeps the connection alive with pings.
func (s *session) writePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = s.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return

		case snap := <-s.send:
			if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				s.logger.Warn("failed to set write deadline", "err", err)
			}
			if err := s.conn.WriteJSON(snap); err != nil {
				s.logger.Debug("write snapshot failed", "err", err)
				return
			}

		case <-ticker.C:
			if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				s.logger.Warn("failed to set ping write deadline", "err", err)
			}
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				s.logger.Debug("ping failed", "err", err)
				return
			}
		}
	}
}
