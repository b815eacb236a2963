// dogisland runs the Dog Island medicine-run game.
//
// Usage:
//
//	dogisland list             - List game modes
//	dogisland play [mode]      - Play in the terminal
//	dogisland serve            - Start SSH server for remote play
//	dogisland web              - Stream games to WebSocket clients
//	dogisland sim              - Run the autopilot headless and print a report
//	dogisland config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible rounds
//	--config <path>       - Load a custom config YAML
//	--difficulty <preset> - easy, normal, hard, fixed
//	--log-level <level>   - debug, info, warn, error (default: $LOG_LEVEL or info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dogisland/internal/games/dogisland"
	"github.com/vovakirdan/dogisland/internal/logging"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dogisland",
	Short: "Dog Island - ferry medicine to sleeping dogs",
	Long: `Dog Island is a top-down arcade game. Sail to the medicine factory,
pick up a dose and deliver it to islands of sleeping dogs. A pirate
patrols the islands and chases you whenever you carry medicine.

Available commands:
  list     - Show game modes
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  web      - Stream games over WebSocket
  sim      - Headless autopilot run
  config   - Print the effective configuration

Examples:
  dogisland play
  dogisland play dogisland_random --seed 7
  dogisland serve --ssh :2222
  dogisland web --addr :8080
  dogisland sim --ticks 3600`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagFPS <= 0 {
			return fmt.Errorf("--fps must be positive, got %d", flagFPS)
		}
		dogisland.SetConfigPath(flagConfig)
		dogisland.SetDifficultyPreset(flagDifficulty)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the command logger and hands it to the game package.
func newLogger(w io.Writer) (*log.Logger, error) {
	logger, err := logging.New(w, "dogisland", flagLogLevel)
	if err != nil {
		return nil, err
	}
	dogisland.SetLogger(logger)
	return logger, nil
}
