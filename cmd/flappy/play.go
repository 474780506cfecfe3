package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Space/Up/Click - Flap (start from the splash screen)
  Enter/R/Click  - Replay from the score screen
  Ctrl+S         - Save a screenshot to ~/.flappy/screenshots
  Q/Ctrl+C       - Quit

Examples:
  flappy play
  flappy play --easy
  flappy play --seed 42 --debug
  flappy play --config ./my-flappy.yaml`,
	RunE: runPlay,
}

func init() {
	// The root command plays too, so it takes --mute as well.
	for _, c := range []*cobra.Command{rootCmd, playCmd} {
		c.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	}
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}

	logger, logCloser, err := newLogger()
	if err != nil {
		return err
	}
	defer logCloser.Close()

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = cfg.Physics.TickRate
	rc.FrameRate = cfg.Render.FrameRate
	rc.Seed = flagSeed

	synth := audio.NewSynth(cfg.Audio, logger)
	if err := synth.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
	}
	defer synth.Close()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	game, err := flappy.New(cfg, gameOptions(), flappy.Deps{
		Audio:  synth,
		Scores: storage.NewHighScores(store, logger),
		Rand:   rc.Rand(),
		Logger: logger,
	})
	if err != nil {
		if store != nil {
			store.Close()
		}
		return err
	}

	runErr := tui.Run(game, store, rc, logger)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
