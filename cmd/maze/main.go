// maze is a fruit maze arcade game for the terminal.
//
// Usage:
//
//	maze list                  - List available games
//	maze play                  - Play in the terminal
//	maze serve                 - Start SSH server for remote play
//	maze replays               - List recorded runs
//	maze replays browse        - Pick a run to watch
//	maze replays play <id>     - Watch a recorded run
//	maze replays export <id>   - Write a run's inputs as CSV
//	maze window                - Play in a desktop window (needs -tags window)
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--config <path>     - Maze config YAML
//	--db <path>         - Set database path (default: ~/.maze/runs.db)
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
//
// A .env file in the working directory may set MAZE_DB, MAZE_CONFIG and
// MAZE_LOG_LEVEL; explicit flags win.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/games/maze"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

var (
	logger  = log.New(os.Stderr)
	logSink io.Closer
	mazeCfg = config.DefaultMazeConfig()
)

func main() {
	err := rootCmd.Execute()
	if logSink != nil {
		logSink.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maze",
	Short: "Fruit Maze - collect the fruit, avoid the enemy",
	Long: `Fruit Maze is a small arcade game: steer the yellow circle through the
maze, eat every fruit and stay away from the red enemy.

Available commands:
  list     - Show all available games
  play     - Play in the terminal
  serve    - Start SSH server for remote play
  replays  - List, watch and export recorded runs
  window   - Play in a desktop window

Examples:
  maze play
  maze play --fps 30
  maze serve --ssh :2222
  maze replays browse`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom maze config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.maze/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replaysCmd)
}

// envFlags maps environment variables to the global flags they fill in.
var envFlags = map[string]string{
	"MAZE_DB":        "db",
	"MAZE_CONFIG":    "config",
	"MAZE_LOG_LEVEL": "log-level",
}

// applyEnv loads .env if present and copies MAZE_* variables into flags the
// user did not set.
func applyEnv(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot load .env: %w", err)
	}

	flags := cmd.Flags()
	for env, name := range envFlags {
		v, ok := os.LookupEnv(env)
		if !ok || flags.Changed(name) {
			continue
		}
		if err := flags.Set(name, v); err != nil {
			return fmt.Errorf("%s: %w", env, err)
		}
	}
	return nil
}

// setup configures logging and loads the maze config for every command.
func setup(cmd *cobra.Command, _ []string) error {
	if err := applyEnv(cmd); err != nil {
		return err
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logSink = f
		logger = log.NewWithOptions(f, log.Options{ReportTimestamp: true})
	}
	logger.SetLevel(level)

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	cfg, err := config.LoadMaze(flagConfig)
	if err != nil {
		return err
	}
	mazeCfg = cfg
	maze.SetConfig(cfg)
	logger.Debug("config loaded", "path", flagConfig, "hold_ticks", cfg.Input.HoldTicks)

	return nil
}

// screenLogger is the logger used while a full-screen program owns the
// terminal. Without --log-file, output would corrupt the screen, so it is
// discarded.
func screenLogger() *log.Logger {
	if flagLogFile == "" {
		return log.New(io.Discard)
	}
	return logger
}

// openStore opens the runs database. Failures are reported and the caller
// continues without recording.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		return nil
	}
	return store
}
