package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-scene/internal/core"
	"github.com/vovakirdan/flappy-scene/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a window and play with the mouse, touch or space bar.
Switching to another window pauses the game.

Examples:
  flappy window
  flappy window --fps 30 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	cfg := core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	graphics := window.NewGraphics(nil)
	d, err := startDirector(graphics, cfg, logger)
	if err != nil {
		return err
	}

	if err := window.Run(d, graphics, cfg.TickRate, "Flappy"); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}
