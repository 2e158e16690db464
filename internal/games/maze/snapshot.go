package maze

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Score    int
	PlayerX  float64
	PlayerY  float64
	VelX     float64
	VelY     float64
	EnemyX   float64
	EnemyY   float64
	Walls    int
	Fruits   int
	GameOver bool
	Halted   bool
	Paused   bool
	Outcome  Outcome
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		PlayerX:  g.player.Position.X,
		PlayerY:  g.player.Position.Y,
		VelX:     g.player.Velocity.X,
		VelY:     g.player.Velocity.Y,
		EnemyX:   g.enemy.Position.X,
		EnemyY:   g.enemy.Position.Y,
		Walls:    len(g.walls),
		Fruits:   len(g.fruits),
		GameOver: g.gameOver,
		Halted:   g.halted,
		Paused:   g.paused,
		Outcome:  g.outcome,
	}
}
