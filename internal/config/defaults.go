package config

import (
	_ "embed"

	"github.com/vovakirdan/flappy-scene/internal/assets"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

//go:embed defaults/menu.yaml
var defaultMenuYAML []byte

// DefaultFlappyConfig returns the default game scene configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Canvas: Canvas{
			Width:  720,
			Height: 1280,
		},
		Loading: LoadingConfig{
			MinSeconds: 1,
		},
		Physics: FlappyPhysics{
			ScrollSpeed:  3,
			RiseStep:     3,
			FallExtra:    2,
			BoostSeconds: 1,
		},
		Obstacles: FlappyObstacles{
			GapOffset:  400,
			CenterBand: 200,
		},
		Player: FlappyPlayer{
			Scale:   4.5,
			XFactor: 3,
		},
		Exit: ExitConfig{
			Margin: 100,
			Scale:  0.2,
		},
		Assets: assets.Table{
			{ID: AssetLoading, Path: "game-scene/loading.png"},
			{ID: AssetHBar, Path: "game-scene/horizontal-bar.png"},
			{ID: AssetFlappy, Path: "game-scene/flappy.png"},
			{ID: AssetTop, Path: "game-scene/top.png"},
			{ID: AssetBottom, Path: "game-scene/bottom.png"},
			{ID: AssetExit, Path: "game-scene/exit.png"},
		},
	}
}

// DefaultMenuConfig returns the default menu scene configuration.
func DefaultMenuConfig() MenuConfig {
	return MenuConfig{
		Canvas: Canvas{
			Width:  720,
			Height: 1280,
		},
		Assets: assets.Table{
			{ID: AssetTitle, Path: "menu-scene/title.png"},
			{ID: AssetPlay, Path: "menu-scene/play.png"},
		},
	}
}
