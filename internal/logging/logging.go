// Package logging builds the charmbracelet/log loggers used by every command.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// EnvLevel is consulted when no level is given on the command line.
const EnvLevel = "LOG_LEVEL"

// New creates a timestamped logger writing to w.
// level is one of debug, info, warn, error; empty means $LOG_LEVEL, then info.
func New(w io.Writer, prefix, level string) (*log.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	}), nil
}

// ParseLevel resolves a level name, falling back to $LOG_LEVEL and then info.
func ParseLevel(level string) (log.Level, error) {
	if level == "" {
		level = os.Getenv(EnvLevel)
	}
	if level == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return 0, fmt.Errorf("logging: %w", err)
	}
	return lvl, nil
}

// OpenFile opens (appending) ~/.dogisland/<name> for logs that must not go
// to the terminal, e.g. while Bubble Tea owns the screen.
func OpenFile(name string) (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	dir := filepath.Join(home, ".dogisland")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	return f, nil
}
