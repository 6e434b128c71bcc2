package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-scene/internal/core"
	"github.com/vovakirdan/flappy-scene/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play the scene in the terminal.

Controls:
  Space/Up/Click - Flap
  P              - Pause
  ?              - Toggle help
  Q/Ctrl+C       - Quit

Click the X in the top-right corner to open the menu.

The terminal belongs to the game while it runs, so logs go to --log-file.

Examples:
  flappy play
  flappy play --difficulty easy
  flappy play --seed 42 --log-file flappy.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut)
	if err != nil {
		return err
	}

	// Get terminal size early so the first frame fits
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	d, err := startDirector(tui.NewGraphics(nil, nil), cfg, logger)
	if err != nil {
		return err
	}

	if err := tui.Run(d, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
