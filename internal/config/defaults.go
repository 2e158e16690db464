package config

import (
	_ "embed"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultMazeConfig returns the built-in maze configuration.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		World: WorldConfig{
			CellSize: 40,
		},
		Player: PlayerConfig{
			Start:  Point{X: 60, Y: 60},
			Radius: 15,
			Speed:  5,
		},
		Enemy: EnemyConfig{
			Start:  Point{X: 260, Y: 60},
			Radius: 15,
		},
		Fruit: FruitConfig{
			Radius: 3,
		},
		Gameplay: GameplayConfig{
			FinishFrameOnGameOver: true,
		},
		Input: InputConfig{
			HoldTicks: 36,
		},
		Render: RenderConfig{
			PxPerCol: 10,
			PxPerRow: 20,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultMazeYAML
}
