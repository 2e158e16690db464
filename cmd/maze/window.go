//go:build window

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/games/maze"
	"github.com/vovakirdan/tui-maze/internal/platform/window"
	"github.com/vovakirdan/tui-maze/internal/registry"
)

// windowMargin leaves room below the maze for the restart button.
const windowMargin = 60

var windowCmd = &cobra.Command{
	Use:   "window [game]",
	Short: "Play in a desktop window",
	Long: `Open the maze in a raylib window. Arrow keys move; P pauses; a Restart
button appears after game over. Runs are recorded like terminal games.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	rootCmd.AddCommand(windowCmd)
}

func runWindow(_ *cobra.Command, args []string) error {
	gameID := maze.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.CreateCanvas(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'maze list' to see available games)", err)
	}
	game.Reset(terminalConfig())
	w, h := game.WorldSize()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := window.Run(game, window.Options{
		Width:  int32(w),
		Height: int32(h) + windowMargin,
		FPS:    int32(flagFPS),
		Store:  store,
		Player: playerName(),
		Logger: logger,
	}); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
