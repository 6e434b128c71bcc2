package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-scene/internal/assets"
	"github.com/vovakirdan/flappy-scene/internal/config"
	"github.com/vovakirdan/flappy-scene/internal/resources"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Show the asset tables",
	Long: `Lists the textures each scene loads, in load order, with their sizes.
Textures are loaded one per frame; a missing or broken file puts the scene
into its error state.`,
	Args: cobra.NoArgs,
	RunE: runAssets,
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

func runAssets(_ *cobra.Command, _ []string) error {
	game, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return err
	}
	menuCfg, err := config.LoadMenu(flagMenuConfig)
	if err != nil {
		return err
	}

	fmt.Println(assetTable("game", game.Assets))
	fmt.Println(assetTable("menu", menuCfg.Assets))
	return nil
}

// assetTable renders one scene's table. Files that cannot be read show
// their error in place of the size.
func assetTable(scene string, entries assets.Table) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "scene", "id", "path", "size").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for i, e := range entries {
		size := ""
		if cfg, err := resources.DecodeConfig(resources.FS(), e.Path); err != nil {
			size = err.Error()
		} else {
			size = fmt.Sprintf("%dx%d", cfg.Width, cfg.Height)
		}
		t.Row(strconv.Itoa(i+1), scene, e.ID, e.Path, size)
	}
	return t.Render()
}
