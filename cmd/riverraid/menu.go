package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-riverraid/internal/platform/tui"
	"github.com/vovakirdan/tui-riverraid/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode from an interactive menu",
	Long: `Start River Raid in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode, Tab for the
leaderboard. Press Esc after a game over or while paused to come back.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - Leaderboard
  Q            - Quit

Examples:
  riverraid menu
  riverraid menu --fps 30
  riverraid menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	defer closeStore(store)

	cfg, fixed := runtimeConfig()

	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config // Keep size changes

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		default:
			game, err := registry.Create(result.GameID)
			if err != nil {
				return err
			}
			goBack, err := tui.Run(game, cfg, tui.Options{
				Store:    store,
				Logger:   logger,
				KeepSeed: fixed,
			})
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
		}
	}
}
