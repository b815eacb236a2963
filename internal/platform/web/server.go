package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/dogisland/internal/core"
	"github.com/vovakirdan/dogisland/internal/registry"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Config holds configuration for the web server.
type Config struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// GameID is the mode played when the client does not pick one.
	GameID string

	// TickRate is the simulation rate of each session.
	TickRate int

	// Seed fixes the seed of every session. Zero picks one per session.
	Seed int64
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address:  ":8080",
		GameID:   "dogisland",
		TickRate: 30,
	}
}

// Server hands every WebSocket connection its own game.
type Server struct {
	config Config
	logger *log.Logger
	mux    *http.ServeMux

	mu       sync.Mutex
	sessions int
}

// NewServer creates a server for cfg.
func NewServer(cfg Config, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if !registry.Exists(cfg.GameID) {
		return nil, fmt.Errorf("web: unknown game %q", cfg.GameID)
	}
	if cfg.TickRate <= 0 {
		return nil, fmt.Errorf("web: tick rate must be positive, got %d", cfg.TickRate)
	}

	s := &Server{
		config: cfg,
		logger: logger,
		mux:    http.NewServeMux(),
	}
	s.mux.HandleFunc("/ws", s.handleWS)
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/modes", s.handleModes)
	return s, nil
}

// Handler returns the HTTP handler with CORS enabled.
func (s *Server) Handler() http.Handler {
	return enableCORS(s.mux)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting web server", "address", s.config.Address, "game", s.config.GameID)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("web: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("web: shutdown: %w", err)
	}
	return nil
}

// Sessions returns the number of connected clients.
func (s *Server) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions
}

// handleWS upgrades the connection and plays one round per client.
// Query parameters mode and seed override the server defaults.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("mode")
	if id == "" {
		id = s.config.GameID
	}

	rt := core.RuntimeConfig{TickRate: s.config.TickRate, Seed: s.config.Seed}
	if v := r.URL.Query().Get("seed"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			http.Error(w, "invalid seed", http.StatusBadRequest)
			return
		}
		rt.Seed = seed
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	created, err := registry.Create(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	game, ok := created.(Game)
	if !ok {
		http.Error(w, fmt.Sprintf("game %q has no snapshots", id), http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "err", err)
		return
	}

	logger := s.logger.With("remote", r.RemoteAddr)
	s.track(1)
	logger.Info("session started", "game", id, "seed", rt.Seed)
	start := time.Now()

	newSession(game, rt, conn, logger).serve(r.Context())

	s.track(-1)
	logger.Info("session ended", "duration", time.Since(start).Round(time.Second))
}

func (s *Server) track(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions += delta
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

type modeInfo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func (s *Server) handleModes(w http.ResponseWriter, r *http.Request) {
	modes := []modeInfo{}
	for _, info := range registry.List() {
		g, err := registry.Create(info.ID)
		if err != nil {
			continue
		}
		if _, ok := g.(Game); ok {
			modes = append(modes, modeInfo{ID: info.ID, Title: info.Title})
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(modes); err != nil {
		s.logger.Warn("failed to encode modes", "err", err)
	}
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
