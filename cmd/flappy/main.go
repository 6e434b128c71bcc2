// flappy runs the Flappy scene in a terminal, a desktop window or over SSH.
//
// Usage:
//
//	flappy play       - Play in the terminal
//	flappy window     - Play in a desktop window
//	flappy serve      - Start SSH server for remote play
//	flappy scenes     - List registered scenes
//	flappy assets     - Show the asset tables
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible obstacles
//	--config <path>       - Game scene config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--clock <source>      - frame (default) or wall
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-scene/internal/assets"
	"github.com/vovakirdan/flappy-scene/internal/config"
	"github.com/vovakirdan/flappy-scene/internal/core"
	"github.com/vovakirdan/flappy-scene/internal/director"
	"github.com/vovakirdan/flappy-scene/internal/games/flappy"
	"github.com/vovakirdan/flappy-scene/internal/games/menu"
	"github.com/vovakirdan/flappy-scene/internal/registry"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagMenuConfig string
	flagDifficulty string
	flagClock      string
	flagLogLevel   string
	flagScene      string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - tap to fly between the pipes",
	Long: `Flappy is a one-button game scene. Tap to rise, let go to fall and
keep clear of the bars and the pipes scrolling in from the right.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scenes   - List registered scenes
  assets   - Show the asset tables

Examples:
  flappy play
  flappy play --difficulty hard --seed 42
  flappy window
  flappy serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
			return err
		}
		if _, err := newTimerFactory(flagClock); err != nil {
			return err
		}
		flappy.SetConfigPath(flagConfig)
		flappy.SetDifficultyPreset(flagDifficulty)
		menu.SetConfigPath(flagMenuConfig)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagMenuConfig, "menu-config", "", "Path to custom menu config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagClock, "clock", "frame", "Scene clock: frame (counts frames) or wall (real time, paused while suspended)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagScene, "scene", flappy.SceneID, "Scene to start in")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scenesCmd)
	rootCmd.AddCommand(assetsCmd)
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           level,
	}), nil
}

// newTimerFactory maps the --clock flag to a scene timer constructor.
func newTimerFactory(clock string) (func() core.Timer, error) {
	switch clock {
	case "", "frame":
		return func() core.Timer { return core.NewFrameTimer() }, nil
	case "wall":
		return func() core.Timer { return core.NewWallTimer(nil) }, nil
	default:
		return nil, fmt.Errorf("%w: unknown clock %q (use frame or wall)", config.ErrInvalidConfig, clock)
	}
}

// startDirector creates a director running the --scene scene.
func startDirector(graphics assets.GraphicsProvider, cfg core.RuntimeConfig, logger *log.Logger) (*director.Director, error) {
	newTimer, err := newTimerFactory(flagClock)
	if err != nil {
		return nil, err
	}

	d := director.New(registry.Env{
		Graphics: graphics,
		Rand:     cfg.NewRand(),
		NewTimer: newTimer,
		Logger:   logger,
	})
	if err := d.Start(flagScene); err != nil {
		return nil, err
	}
	return d, nil
}
