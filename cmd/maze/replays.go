package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/games/maze"
	"github.com/vovakirdan/tui-maze/internal/platform/tui"
	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/replay"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

var (
	flagLimit   int
	flagOut     string
	flagFromCSV string
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "List recorded runs",
	Long: `Every game is recorded as the input of each tick. Because the maze is
deterministic, a recording plays back exactly as it was played.

Examples:
  maze replays
  maze replays browse
  maze replays play 3
  maze replays export 3 --out run3.csv
  maze replays play --csv run3.csv`,
	Args: cobra.NoArgs,
	RunE: runReplaysList,
}

var replaysBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Pick a recorded run to watch",
	Args:  cobra.NoArgs,
	RunE:  runReplaysBrowse,
}

var replaysPlayCmd = &cobra.Command{
	Use:   "play [id]",
	Short: "Watch a recorded run",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runReplaysPlay,
}

var replaysExportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Write a run's inputs as CSV",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplaysExport,
}

func init() {
	replaysCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of runs to show")
	replaysPlayCmd.Flags().StringVar(&flagFromCSV, "csv", "", "Play inputs from a CSV file instead of the database")
	replaysExportCmd.Flags().StringVar(&flagOut, "out", "", "Output file (default: stdout)")

	replaysCmd.AddCommand(replaysBrowseCmd)
	replaysCmd.AddCommand(replaysPlayCmd)
	replaysCmd.AddCommand(replaysExportCmd)
}

func runReplaysList(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'maze play' to record one!")
		return nil
	}

	fmt.Printf("  %-6s  %-14s  %-8s  %-7s  %s\n", "ID", "Player", "Outcome", "Frames", "Date")
	fmt.Printf("  %-6s  %-14s  %-8s  %-7s  %s\n", "--", "------", "-------", "------", "----")
	for _, r := range runs {
		outcome := r.Outcome
		if outcome == "" {
			outcome = "quit"
		}
		fmt.Printf("  %-6d  %-14s  %-8s  %-7d  %s\n",
			r.ID, r.Player, outcome, r.Frames, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func runReplaysBrowse(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	cfg := terminalConfig()
	for {
		run, err := tui.RunBrowser(store, cfg.ScreenW, cfg.ScreenH)
		if err != nil {
			return err
		}
		if run == nil {
			return nil
		}

		frames, err := store.RunFrames(run.ID)
		if err != nil {
			return err
		}
		if err := playback(run.GameID, frames); err != nil {
			return err
		}
	}
}

func runReplaysPlay(_ *cobra.Command, args []string) error {
	if flagFromCSV != "" {
		f, err := os.Open(flagFromCSV)
		if err != nil {
			return err
		}
		defer f.Close()

		frames, err := storage.ReadFramesCSV(f)
		if err != nil {
			return err
		}
		return playback(maze.GameID, frames)
	}

	if len(args) == 0 {
		return fmt.Errorf("a run id or --csv is required")
	}

	run, frames, err := loadRun(args[0])
	if err != nil {
		return err
	}
	return playback(run.GameID, frames)
}

func runReplaysExport(_ *cobra.Command, args []string) error {
	_, frames, err := loadRun(args[0])
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if flagOut != "" {
		f, err := os.Create(flagOut)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if err := storage.WriteFramesCSV(w, frames); err != nil {
		return err
	}
	logger.Debug("run exported", "id", args[0], "frames", len(frames), "out", flagOut)
	return nil
}

// loadRun reads a run and its frames by the id given on the command line.
func loadRun(arg string) (*storage.Run, []replay.Frame, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid run id %q", arg)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, nil, err
	}
	defer store.Close()

	run, err := store.RunByID(id)
	if err != nil {
		return nil, nil, err
	}
	if run == nil {
		return nil, nil, fmt.Errorf("run %d not found", id)
	}

	frames, err := store.RunFrames(id)
	if err != nil {
		return nil, nil, err
	}
	return run, frames, nil
}

// playback shows recorded frames in the terminal.
func playback(gameID string, frames []replay.Frame) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	return tui.Run(game, nil, terminalConfig(), tui.Options{
		Replay: frames,
		Logger: screenLogger(),
	})
}
