// Package maze implements the fruit maze: a player circle collects fruit in a
// fixed maze and the game ends on contact with the enemy or when no fruit is
// left.
package maze

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/registry"
)

// GameID is the registry identifier of the maze.
const GameID = "maze"

// Outcome records why a game ended.
type Outcome string

const (
	OutcomeNone    Outcome = ""
	OutcomeCaught  Outcome = "caught"  // Player touched the enemy
	OutcomeCleared Outcome = "cleared" // Every fruit was collected
)

// Text placement in world pixels.
const (
	scoreX, scoreY       = 40, 30
	scoreFontSize        = 20
	gameOverX, gameOverY = 170, 315
	gameOverFontSize     = 40
	gameOverText         = "GAME OVER"
)

// Game implements the maze.
type Game struct {
	cfg   config.MazeConfig
	tick  uint64
	score int

	walls  []Wall
	fruits []Fruit
	player Player
	enemy  Enemy

	gameOver bool
	outcome  Outcome
	halted   bool // No further frames are processed
	paused   bool

	worldW, worldH float64
}

var activeConfig = config.DefaultMazeConfig()

// SetConfig sets the configuration used by games created through the registry.
func SetConfig(cfg config.MazeConfig) {
	activeConfig = cfg
}

// New creates a maze using the configuration set by SetConfig.
func New() *Game {
	return NewWithConfig(activeConfig)
}

// NewWithConfig creates a maze with an explicit configuration.
func NewWithConfig(cfg config.MazeConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Fruit Maze"
}

// Reset builds a fresh game: entities at their start positions and the maze
// populated exactly once.
func (g *Game) Reset(_ core.RuntimeConfig) {
	g.tick = 0
	g.score = 0
	g.gameOver = false
	g.outcome = OutcomeNone
	g.halted = false
	g.paused = false

	g.player = Player{
		Position: r2.Vec{X: g.cfg.Player.Start.X, Y: g.cfg.Player.Start.Y},
		Radius:   g.cfg.Player.Radius,
		Color:    core.ColorYellow,
	}
	g.enemy = Enemy{
		Position: r2.Vec{X: g.cfg.Enemy.Start.X, Y: g.cfg.Enemy.Start.Y},
		Radius:   g.cfg.Enemy.Radius,
		Color:    core.ColorRed,
	}

	g.setupMaze()
}

// setupMaze populates walls and fruits from the fixed layout.
func (g *Game) setupMaze() {
	g.walls, g.fruits = ParseGrid(Layout, g.cfg.World.CellSize, g.cfg.Fruit.Radius)

	rows, cols := GridSize(Layout)
	g.worldW = float64(cols) * g.cfg.World.CellSize
	g.worldH = float64(rows) * g.cfg.World.CellSize
}

// Step advances the game by one frame.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.halted {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// The frame that sees game over stops all later frames, but by default
	// still runs its own collisions and pickups.
	if g.gameOver {
		g.halted = true
		if !g.cfg.Gameplay.FinishFrameOnGameOver {
			return core.StepResult{State: g.State()}
		}
	}

	for _, w := range g.walls {
		if blocksMove(g.player, w) {
			g.player.Velocity = r2.Vec{}
		}
	}

	if circlesTouch(g.player.Position, g.player.Radius, g.enemy.Position, g.enemy.Radius) {
		g.end(OutcomeCaught)
	}

	g.player.Update()
	g.player.Velocity = r2.Vec{}

	g.enemy.Update()

	g.applyInput(input.Keys)

	g.collectFruit()
	if len(g.fruits) == 0 {
		g.end(OutcomeCleared)
	}

	return core.StepResult{State: g.State()}
}

// applyInput sets the velocity for the next frame. A direction wins only if
// it is held and was the last one pressed; Up > Left > Right > Down.
func (g *Game) applyInput(keys core.KeySnapshot) {
	speed := g.cfg.Player.Speed

	switch {
	case keys.Up && keys.Last == core.ActionUp:
		g.player.Velocity.Y = -speed
	case keys.Left && keys.Last == core.ActionLeft:
		g.player.Velocity.X = -speed
	case keys.Right && keys.Last == core.ActionRight:
		g.player.Velocity.X = speed
	case keys.Down && keys.Last == core.ActionDown:
		g.player.Velocity.Y = speed
	}
}

// collectFruit removes every fruit the player touches, one point each.
func (g *Game) collectFruit() {
	kept := g.fruits[:0]
	for _, f := range g.fruits {
		if circlesTouch(f.Position, f.Radius, g.player.Position, g.player.Radius) {
			g.score++
			continue
		}
		kept = append(kept, f)
	}
	g.fruits = kept
}

// end marks the game over. The first cause is kept.
func (g *Game) end(o Outcome) {
	if g.gameOver {
		return
	}
	g.gameOver = true
	g.outcome = o
}

// Draw renders the scene in world pixels.
func (g *Game) Draw(c core.Canvas) {
	c.Clear()

	for _, w := range g.walls {
		w.Draw(c)
	}
	g.player.Draw(c)
	g.enemy.Draw(c)

	c.Text(scoreX, scoreY, scoreFontSize, fmt.Sprintf("Score: %d", g.score), core.ColorWhite)

	for _, f := range g.fruits {
		f.Draw(c)
	}

	switch {
	case g.halted:
		c.Text(gameOverX, gameOverY, gameOverFontSize, gameOverText, core.ColorWhite)
	case g.paused:
		c.Text(gameOverX, gameOverY, gameOverFontSize, "PAUSED", core.ColorGray)
	}
}

// Render draws the game into a terminal screen.
func (g *Game) Render(dst *core.Screen) {
	pxCol, pxRow := g.cfg.Render.PxPerCol, g.cfg.Render.PxPerRow
	needW := int(math.Ceil(g.worldW / pxCol))
	needH := int(math.Ceil(g.worldH / pxRow))

	if dst.Width() < needW || dst.Height() < needH {
		dst.Clear()
		dst.DrawText(0, 0, "Window too small", core.ColorWhite)
		dst.DrawText(0, 1, fmt.Sprintf("Need %dx%d", needW, needH), core.ColorGray)
		return
	}

	g.Draw(core.NewScreenCanvas(dst, pxCol, pxRow))
}

// WorldSize returns the maze size in pixels.
func (g *Game) WorldSize() (w, h float64) {
	return g.worldW, g.worldH
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
		Finished: g.halted,
	}
}

// Outcome returns why the game ended, or an empty string while playing.
func (g *Game) Outcome() string {
	return string(g.outcome)
}
