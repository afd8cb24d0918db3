package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-riverraid/internal/core"
	"github.com/vovakirdan/tui-riverraid/internal/games/riverraid"
	"github.com/vovakirdan/tui-riverraid/internal/platform/tui"
	"github.com/vovakirdan/tui-riverraid/internal/registry"
	"github.com/vovakirdan/tui-riverraid/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Fly a game mode",
	Long: `Start flying the given mode, River Raid classic by default.

Controls:
  W/Up       - Throttle
  A/Left     - Bank left
  D/Right    - Bank right
  Space      - Fire
  P          - Pause
  R          - Restart (after game over)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slow start, generous fuel
  normal - Default tuning
  hard   - Fast start, thirsty engine
  fixed  - No speed progression

Examples:
  riverraid play
  riverraid play riverraid_rapid
  riverraid play --difficulty hard
  riverraid play --course amazon
  riverraid play --config ./my-river.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := riverraid.ClassicID
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'riverraid list' to see available modes", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	defer closeStore(store)

	cfg, fixed := runtimeConfig()
	_, err = tui.Run(game, cfg, tui.Options{
		Store:    store,
		Logger:   logger,
		KeepSeed: fixed,
	})
	return err
}

// runtimeConfig sizes the game to the terminal and applies the global flags.
func runtimeConfig() (core.RuntimeConfig, bool) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	seed, fixed := runSeed()
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}, fixed
}

// openStore opens the scores database. The game still works without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without persistence", "err", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("could not close scores database", "err", err)
	}
}
