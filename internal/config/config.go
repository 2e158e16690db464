// Package config provides YAML-based game configuration loading for the
// maze platform.
package config

import (
	"errors"
	"fmt"
)

// Point is a position in world pixels.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// MazeConfig contains all configuration for the maze game.
type MazeConfig struct {
	World    WorldConfig    `yaml:"world"`
	Player   PlayerConfig   `yaml:"player"`
	Enemy    EnemyConfig    `yaml:"enemy"`
	Fruit    FruitConfig    `yaml:"fruit"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Input    InputConfig    `yaml:"input"`
	Render   RenderConfig   `yaml:"render"`
}

// WorldConfig defines the maze grid geometry.
type WorldConfig struct {
	CellSize float64 `yaml:"cell_size"` // Side of one grid cell in pixels
}

// PlayerConfig defines the player circle.
type PlayerConfig struct {
	Start  Point   `yaml:"start"`
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"` // Pixels per frame while a key is held
}

// EnemyConfig defines the stationary enemy circle.
type EnemyConfig struct {
	Start  Point   `yaml:"start"`
	Radius float64 `yaml:"radius"`
}

// FruitConfig defines the pickups.
type FruitConfig struct {
	Radius float64 `yaml:"radius"`
}

// GameplayConfig holds rule switches.
type GameplayConfig struct {
	// FinishFrameOnGameOver keeps running the rest of the frame in which
	// game over is first observed (collisions, pickups) before halting.
	FinishFrameOnGameOver bool `yaml:"finish_frame_on_game_over"`
}

// InputConfig holds terminal input tuning.
type InputConfig struct {
	// HoldTicks is how many ticks a key counts as held after its last
	// press event. Terminals never report key releases.
	HoldTicks int `yaml:"hold_ticks"`
}

// RenderConfig maps world pixels to terminal cells.
type RenderConfig struct {
	PxPerCol float64 `yaml:"px_per_col"`
	PxPerRow float64 `yaml:"px_per_row"`
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks that all sizes and rates are usable.
func (c MazeConfig) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"world.cell_size", c.World.CellSize},
		{"player.radius", c.Player.Radius},
		{"player.speed", c.Player.Speed},
		{"enemy.radius", c.Enemy.Radius},
		{"fruit.radius", c.Fruit.Radius},
		{"render.px_per_col", c.Render.PxPerCol},
		{"render.px_per_row", c.Render.PxPerRow},
		{"input.hold_ticks", float64(c.Input.HoldTicks)},
	}
	for _, chk := range checks {
		if chk.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, chk.name, chk.value)
		}
	}
	return nil
}
