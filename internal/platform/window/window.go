//go:build window

package window

import (
	"io"

	"github.com/charmbracelet/log"
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/replay"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

// Options configure the window.
type Options struct {
	Width, Height int32
	FPS           int32
	Store         *storage.Store // Nil disables recording
	Player        string
	Logger        *log.Logger
}

type outcomer interface {
	Outcome() string
}

// Run opens a window and plays game until the window is closed.
func Run(game registry.CanvasGame, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}

	rl.InitWindow(opts.Width, opts.Height, game.Title())
	defer rl.CloseWindow()
	rl.SetTargetFPS(opts.FPS)

	cfg := core.DefaultConfig()
	cfg.TickRate = int(opts.FPS)

	kb := newKeyboard()
	rec := replay.NewRecorder()
	src := rec.Wrap(kb)
	saved := false

	game.Reset(cfg)

	for !rl.WindowShouldClose() {
		state := game.Step(src.Poll()).State

		if state.Finished && !saved {
			saved = true
			saveRun(game, rec, opts, logger)
		}

		rl.BeginDrawing()
		game.Draw(canvas{})

		if state.Finished {
			bounds := rl.Rectangle{
				X:      float32(opts.Width)/2 - 60,
				Y:      float32(opts.Height) - 50,
				Width:  120,
				Height: 30,
			}
			if gui.Button(bounds, "Restart") {
				game.Reset(cfg)
				kb.Reset()
				rec.Reset()
				saved = false
			}
		}
		rl.EndDrawing()
	}

	if !saved {
		saveRun(game, rec, opts, logger)
	}
	return nil
}

func saveRun(game registry.Game, rec *replay.Recorder, opts Options, logger *log.Logger) {
	if opts.Store == nil || rec.Len() == 0 {
		return
	}

	run := storage.Run{GameID: game.ID(), Player: opts.Player}
	if o, ok := game.(outcomer); ok {
		run.Outcome = o.Outcome()
	}

	id, err := opts.Store.SaveRun(run, rec.Frames())
	if err != nil {
		logger.Warn("could not save run", "error", err)
		return
	}
	logger.Info("run saved", "id", id, "frames", rec.Len())
}
