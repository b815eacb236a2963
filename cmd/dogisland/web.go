package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dogisland/internal/platform/web"
)

var (
	flagWebAddr string
	flagWebGame string
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Stream games over WebSocket",
	Long: `Start an HTTP server. Every WebSocket client on /ws plays its own
round: it sends input messages and receives a JSON snapshot per tick.

Endpoints:
  /ws      - Game stream (query: mode, seed)
  /modes   - Modes with snapshot support
  /health  - Liveness probe

Input messages:
  {"type":"key_down","dir":"up"}     {"type":"key_up","dir":"up"}
  {"type":"pointer_down","x":0,"y":0} {"type":"pointer_move","x":0,"y":0}
  {"type":"pointer_up"}  {"type":"pause"}  {"type":"restart"}

Examples:
  dogisland web
  dogisland web --addr :9000 --fps 30`,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", ":8080", "HTTP listen address (host:port)")
	webCmd.Flags().StringVar(&flagWebGame, "mode", "dogisland", "Default game mode")
}

func runWeb(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	cfg := web.DefaultConfig()
	cfg.Address = flagWebAddr
	cfg.GameID = flagWebGame
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	server, err := web.NewServer(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.ListenAndServe(ctx)
}
