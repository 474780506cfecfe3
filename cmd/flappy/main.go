// flappy is a Flappy Bird clone for the terminal.
//
// Usage:
//
//	flappy                 - Play (same as flappy play)
//	flappy play            - Play in this terminal
//	flappy serve           - Start SSH server for remote play
//	flappy scores          - Show recorded runs
//	flappy config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>     - Set simulation tick rate (default: from config)
//	--seed <value>   - Set RNG seed for reproducible pipes
//	--db <path>      - Set database path (default: ~/.flappy/scores.db)
//	--config <path>  - Use a custom config YAML
//	--easy           - Wider pipe gaps
//	--debug          - Draw collision boxes and log to ~/.flappy/flappy.log
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfigPath string
	flagEasy       bool
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Flappy Bird in your terminal: flap through the pipes, earn medals
and chase your high score. Runs locally or as an SSH server.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  scores   - View recorded runs
  config   - Print the effective configuration

Examples:
  flappy
  flappy --easy
  flappy serve --ssh :2222
  flappy scores --tui`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Simulation tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", filepath.Join(config.HomeDir(), "scores.db"), "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagEasy, "easy", false, "Easy mode: wider pipe gaps")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Draw collision boxes and write a debug log")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the game configuration and applies flag overrides.
func loadConfig() (config.FlappyConfig, error) {
	cfg, err := config.LoadFlappy(flagConfigPath)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Physics.TickRate = flagFPS
	}
	return cfg, nil
}

// gameOptions returns the options selected by flags.
func gameOptions() flappy.Options {
	return flappy.Options{Debug: flagDebug, EasyMode: flagEasy}
}

// newLogger returns a debug logger writing to ~/.flappy/flappy.log when
// --debug is set, and a discarding one otherwise. The returned closer must
// be called on exit.
func newLogger() (*log.Logger, io.Closer, error) {
	if !flagDebug {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	path := filepath.Join(config.HomeDir(), "flappy.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           log.DebugLevel,
	})
	return logger, f, nil
}
