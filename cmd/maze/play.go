package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/games/maze"
	"github.com/vovakirdan/tui-maze/internal/platform/tui"
	"github.com/vovakirdan/tui-maze/internal/registry"
)

var flagNoRecord bool

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start playing. The game defaults to the maze.

Controls:
  Arrows/WASD  - Move (the last pressed direction wins)
  P/Esc        - Pause
  R            - Restart (after game over)
  Ctrl+S       - Save a screenshot to ~/.maze/screenshots
  ?            - Toggle full help
  Q/Ctrl+C     - Quit

Every game is recorded to the runs database unless --no-record is given.

Examples:
  maze play
  maze play --config ./my-maze.yaml
  maze play --fps 30 --log-file maze.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not record the run")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := maze.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'maze list' to see available games)", err)
	}

	store := openStore()
	if flagNoRecord && store != nil {
		store.Close()
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, store, terminalConfig(), tui.Options{
		Player:    playerName(),
		HoldTicks: mazeCfg.Input.HoldTicks,
		Logger:    screenLogger(),
	})
}

// terminalConfig builds a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}

// playerName returns the local user name stored with runs.
func playerName() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}
