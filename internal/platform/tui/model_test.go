package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/games/maze"
	"github.com/vovakirdan/tui-maze/internal/replay"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

// newCaughtGame returns a maze whose enemy touches the player on the first
// frame.
func newCaughtGame() *maze.Game {
	cfg := config.DefaultMazeConfig()
	cfg.Enemy.Start = config.Point{X: 80, Y: 60}
	return maze.NewWithConfig(cfg)
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func tick(t *testing.T, m Model, n int) Model {
	t.Helper()
	for i := 0; i < n; i++ {
		m = update(t, m, TickMsg{})
	}
	return m
}

func TestModelSavesRunOnFinish(t *testing.T) {
	store := openStore(t)
	m := NewModel(newCaughtGame(), store, core.DefaultConfig(), Options{Player: "alice"})
	m.Init()

	m = tick(t, m, 5)

	if !m.State().Finished {
		t.Fatal("game should be finished")
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 saved run, got %d", len(runs))
	}
	if runs[0].Player != "alice" || runs[0].Outcome != "caught" || runs[0].GameID != maze.GameID {
		t.Errorf("unexpected run %+v", runs[0])
	}
	// Saved on the halting frame, later ticks are not recorded
	if runs[0].Frames != 2 {
		t.Errorf("Frames = %d, expected 2", runs[0].Frames)
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	store := openStore(t)
	m := NewModel(newCaughtGame(), store, core.DefaultConfig(), Options{})
	m.Init()
	m = tick(t, m, 3)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = tick(t, m, 1)

	if m.State().GameOver {
		t.Error("restart should start a fresh game")
	}

	m = tick(t, m, 3)
	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected a run per game, got %d", len(runs))
	}
}

func TestModelRestartBeforeHaltKeepsRun(t *testing.T) {
	store := openStore(t)
	m := NewModel(newCaughtGame(), store, core.DefaultConfig(), Options{})
	m.Init()
	m = tick(t, m, 1)

	if got := m.State(); !got.GameOver || got.Finished {
		t.Fatalf("state = %+v, expected caught but not yet halted", got)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = tick(t, m, 1)

	if !m.State().Finished {
		t.Error("the halting frame should still run")
	}
	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Outcome != "caught" || runs[0].Frames != 2 {
		t.Errorf("unexpected runs %+v", runs)
	}
}

func TestModelStopsRecordingAfterHalt(t *testing.T) {
	m := NewModel(newCaughtGame(), nil, core.DefaultConfig(), Options{})
	m.Init()
	m = tick(t, m, 2)

	if !m.State().Finished {
		t.Fatal("game should be finished")
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = tick(t, m, 50)

	if got := m.recorder.Len(); got != 2 {
		t.Errorf("recorder.Len() = %d, expected 2", got)
	}
}

func TestModelRestartIgnoredWhilePlaying(t *testing.T) {
	g := maze.NewWithConfig(config.DefaultMazeConfig())
	m := NewModel(g, nil, core.DefaultConfig(), Options{})
	m.Init()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = tick(t, m, 3)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = tick(t, m, 1)

	if g.Snapshot().Tick != 4 {
		t.Errorf("tick = %d, restart must not reset a running game", g.Snapshot().Tick)
	}
	if g.Snapshot().PlayerX <= 60 {
		t.Error("player should have moved right")
	}
}

func TestModelReplayMatchesRecording(t *testing.T) {
	cfg := core.DefaultConfig()

	live := maze.NewWithConfig(config.DefaultMazeConfig())
	m := NewModel(live, nil, cfg, Options{})
	m.Init()
	for i := 0; i < 120; i++ {
		if i%20 == 0 {
			dirs := []tea.KeyType{tea.KeyRight, tea.KeyDown, tea.KeyLeft}
			m = update(t, m, tea.KeyMsg{Type: dirs[(i/20)%len(dirs)]})
		}
		m = tick(t, m, 1)
	}
	frames := m.recorder.Frames()

	played := maze.NewWithConfig(config.DefaultMazeConfig())
	p := NewModel(played, nil, cfg, Options{Replay: frames})
	p.Init()
	p = tick(t, p, len(frames))

	if played.Snapshot() != live.Snapshot() {
		t.Errorf("playback diverged:\nlive %+v\nplay %+v", live.Snapshot(), played.Snapshot())
	}
	if !strings.Contains(p.View(), "replay") {
		t.Error("playback footer missing")
	}
}

func TestModelReplayIgnoresKeyboard(t *testing.T) {
	g := maze.NewWithConfig(config.DefaultMazeConfig())
	frames := []replay.Frame{{}, {}, {}}
	m := NewModel(g, nil, core.DefaultConfig(), Options{Replay: frames})
	m.Init()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	tick(t, m, 3)

	if g.Snapshot().PlayerX != 60 {
		t.Error("keyboard input leaked into playback")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := maze.NewWithConfig(config.DefaultMazeConfig())
	m := NewModel(g, nil, core.DefaultConfig(), Options{})
	m.Init()
	m = tick(t, m, 10)

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if g.Snapshot().Tick != 10 {
		t.Error("resize should not reset the game")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40-footerHeight {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelViewShowsGame(t *testing.T) {
	m := NewModel(maze.NewWithConfig(config.DefaultMazeConfig()), nil, core.DefaultConfig(), Options{})
	m.Init()
	m = tick(t, m, 1)

	view := m.View()
	if !strings.Contains(view, "Score: 0") {
		t.Error("view should contain the score")
	}
	if !strings.Contains(view, "quit") {
		t.Error("view should contain the help footer")
	}
}

func TestModelQuitSavesUnfinishedRun(t *testing.T) {
	store := openStore(t)
	m := NewModel(maze.NewWithConfig(config.DefaultMazeConfig()), store, core.DefaultConfig(), Options{})
	m.Init()
	m = tick(t, m, 4)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quit")
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Outcome != "" || runs[0].Frames != 4 {
		t.Errorf("unexpected runs %+v", runs)
	}
}
