package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/replay"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

// footerHeight is the number of terminal rows used by the help line.
const footerHeight = 1

// Options tune a game model.
type Options struct {
	// Player is stored with recorded runs.
	Player string

	// HoldTicks is passed to KeyboardInput.
	HoldTicks int

	// Logger receives run and screenshot events. Nil discards them.
	Logger *log.Logger

	// Replay plays recorded frames instead of reading the keyboard.
	// Nothing is recorded in this mode.
	Replay []replay.Frame
}

// outcomer is implemented by games that report why they ended.
type outcomer interface {
	Outcome() string
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	opts      Options
	logger    *log.Logger
	keys      KeyMap
	help      help.Model
	gameState core.GameState

	keyboard *KeyboardInput
	recorder *replay.Recorder
	playback *replay.Source
	source   core.InputSource

	restart  bool
	runSaved bool
	status   string
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerHeight, 1)),
		store:  store,
		config: cfg,
		opts:   opts,
		logger: logger,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}

	if opts.Replay != nil {
		m.playback = replay.NewSource(opts.Replay)
		m.source = m.playback
	} else {
		m.keyboard = NewKeyboardInput(opts.HoldTicks)
		m.recorder = replay.NewRecorder()
		m.source = m.recorder.Wrap(m.keyboard)
	}

	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		m.restart = true
	case core.ActionNone:
	default:
		if m.keyboard != nil {
			m.keyboard.Press(action)
		}
	}

	return m, nil
}

// handleResize processes window resize events. The game keeps running; the
// maze is drawn in fixed world coordinates.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerHeight, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.restart {
		m.restart = false
		if m.gameState.Finished || m.playback != nil {
			m.restartGame()
			return m, tickCmd(m.config.TickRate)
		}
	}

	// A halted game is frozen; polling would only grow the recording.
	if m.gameState.Finished {
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.source.Poll())
	m.gameState = result.State

	if m.gameState.Finished && !m.runSaved {
		m.saveRun()
	}

	return m, tickCmd(m.config.TickRate)
}

// restartGame builds a fresh game. In replay mode the recording starts over;
// otherwise the finished run is saved before the recorder is cleared.
func (m *Model) restartGame() {
	m.saveRun()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.runSaved = false
	m.status = ""

	if m.playback != nil {
		m.playback = replay.NewSource(m.opts.Replay)
		m.source = m.playback
		return
	}
	m.keyboard.Reset()
	m.recorder.Reset()
}

// saveRun stores the recorded input of the current game, once.
func (m *Model) saveRun() {
	if m.runSaved || m.recorder == nil || m.recorder.Len() == 0 {
		return
	}
	m.runSaved = true

	if m.store == nil {
		return
	}

	run := storage.Run{
		GameID: m.game.ID(),
		Player: m.opts.Player,
	}
	if o, ok := m.game.(outcomer); ok {
		run.Outcome = o.Outcome()
	}

	id, err := m.store.SaveRun(run, m.recorder.Frames())
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		m.status = "run not saved"
		return
	}
	m.logger.Info("run saved", "id", id, "frames", m.recorder.Len(), "outcome", run.Outcome)
	m.status = fmt.Sprintf("saved run #%d", id)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".maze", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.status = "screenshot saved"
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := m.help.View(m.keys)
	switch {
	case m.playback != nil:
		footer = fmt.Sprintf("replay %d/%d  r restart  q quit", m.playback.Position(), m.playback.Len())
	case m.status != "":
		footer = statusStyle.Render(m.status) + "  " + footer
	}

	return RenderScreen(m.screen) + "\n" + footerStyle.Render(footer)
}

// State returns the last state reported by the game.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
