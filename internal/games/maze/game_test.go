package maze

import (
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/registry"
)

func newTestGame(t *testing.T, mutate func(*config.MazeConfig)) *Game {
	t.Helper()
	cfg := config.DefaultMazeConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	g := NewWithConfig(cfg)
	g.Reset(core.DefaultConfig())
	return g
}

func holding(a core.Action) core.InputFrame {
	k := core.NewKeyState()
	k.Press(a)
	in := core.NewInputFrame()
	in.Keys = k.Snapshot()
	return in
}

func TestResetPopulatesMazeOnce(t *testing.T) {
	g := newTestGame(t, nil)

	snap := g.Snapshot()
	if snap.Walls != 54 || snap.Fruits != 70 {
		t.Fatalf("after Reset: %d walls, %d fruits, expected 54 and 70", snap.Walls, snap.Fruits)
	}

	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}
	if got := g.Snapshot(); got.Walls != 54 || got.Fruits > 70 {
		t.Errorf("maze grew after frames: %d walls, %d fruits", got.Walls, got.Fruits)
	}

	// Restart rebuilds instead of appending
	g.Reset(core.DefaultConfig())
	if got := g.Snapshot(); got.Walls != 54 || got.Fruits != 70 {
		t.Errorf("after second Reset: %d walls, %d fruits", got.Walls, got.Fruits)
	}
}

func TestIdleFrameFromStart(t *testing.T) {
	g := newTestGame(t, nil)

	g.Step(core.NewInputFrame())

	snap := g.Snapshot()
	if snap.PlayerX != 60 || snap.PlayerY != 60 {
		t.Errorf("player moved to (%v, %v)", snap.PlayerX, snap.PlayerY)
	}
	if snap.VelX != 0 || snap.VelY != 0 {
		t.Errorf("velocity = (%v, %v), expected zero", snap.VelX, snap.VelY)
	}
	if snap.Score != 0 {
		t.Errorf("score = %d, expected 0", snap.Score)
	}
	if snap.GameOver {
		t.Error("game should not be over after an idle frame")
	}
}

func TestHoldUpSetsVelocityUntilBlocked(t *testing.T) {
	g := newTestGame(t, func(c *config.MazeConfig) {
		c.Player.Start = config.Point{X: 60, Y: 140}
	})
	up := holding(core.ActionUp)

	g.Step(up)
	if snap := g.Snapshot(); snap.VelY != -5 || snap.VelX != 0 {
		t.Fatalf("velocity after holding up = (%v, %v), expected (0, -5)", snap.VelX, snap.VelY)
	}

	g.Step(up)
	if snap := g.Snapshot(); snap.PlayerY != 135 {
		t.Fatalf("player y = %v after second frame, expected 135", snap.PlayerY)
	}

	for i := 0; i < 30; i++ {
		g.Step(up)
	}
	snap := g.Snapshot()
	if snap.PlayerY != 60 || snap.PlayerX != 60 {
		t.Errorf("player stopped at (%v, %v), expected (60, 60) under the top wall", snap.PlayerX, snap.PlayerY)
	}
	// Fruits at (60,140) and (60,100) were on the way
	if snap.Score != 2 {
		t.Errorf("score = %d, expected 2", snap.Score)
	}
}

func TestWallCheckZeroesVelocity(t *testing.T) {
	g := newTestGame(t, nil)

	g.Step(holding(core.ActionUp))
	if g.Snapshot().VelY != -5 {
		t.Fatal("expected pending upward velocity")
	}

	// Directly under the top wall: the projected position overlaps, so the
	// frame must not move the player.
	g.Step(core.NewInputFrame())
	snap := g.Snapshot()
	if snap.PlayerY != 60 {
		t.Errorf("player moved into the wall: y = %v", snap.PlayerY)
	}
	if snap.VelX != 0 || snap.VelY != 0 {
		t.Errorf("velocity = (%v, %v), expected zero", snap.VelX, snap.VelY)
	}
}

func TestLastPressedDirectionWins(t *testing.T) {
	g := newTestGame(t, nil)

	k := core.NewKeyState()
	k.Press(core.ActionUp)
	k.Press(core.ActionRight)
	in := core.NewInputFrame()
	in.Keys = k.Snapshot()

	g.Step(in)
	snap := g.Snapshot()
	if snap.VelX != 5 || snap.VelY != 0 {
		t.Errorf("velocity = (%v, %v), expected (5, 0): up is held but right was pressed last", snap.VelX, snap.VelY)
	}

	// Released last key: nothing matches even though up is still held
	k.Release(core.ActionRight)
	in.Keys = k.Snapshot()
	g.Step(in)
	if snap := g.Snapshot(); snap.VelX != 0 || snap.VelY != 0 {
		t.Errorf("velocity = (%v, %v), expected zero", snap.VelX, snap.VelY)
	}
}

func TestEnemyContactEndsGame(t *testing.T) {
	g := newTestGame(t, func(c *config.MazeConfig) {
		c.Enemy.Start = config.Point{X: 80, Y: 60}
	})

	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver {
		t.Fatal("touching the enemy should end the game")
	}
	if res.State.Finished {
		t.Error("the game halts on the frame after game over, not the same one")
	}
	if g.Outcome() != string(OutcomeCaught) {
		t.Errorf("Outcome() = %q, expected caught", g.Outcome())
	}

	res = g.Step(core.NewInputFrame())
	if !res.State.Finished {
		t.Error("expected the game to halt")
	}
	halted := g.Snapshot()

	for i := 0; i < 10; i++ {
		res = g.Step(holding(core.ActionDown))
		if !res.State.GameOver {
			t.Fatal("game over must never reset")
		}
	}
	if g.Snapshot() != halted {
		t.Errorf("halted game changed:\n%+v\n%+v", halted, g.Snapshot())
	}
}

func TestGameOverFrameStillRuns(t *testing.T) {
	tests := []struct {
		name        string
		finishFrame bool
		wantX       float64
	}{
		{"finish frame", true, 65},
		{"stop immediately", false, 60},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, func(c *config.MazeConfig) {
				c.Enemy.Start = config.Point{X: 80, Y: 60}
				c.Gameplay.FinishFrameOnGameOver = tc.finishFrame
			})

			g.Step(holding(core.ActionRight)) // caught; velocity set for next frame
			g.Step(holding(core.ActionRight)) // halting frame

			if got := g.Snapshot().PlayerX; got != tc.wantX {
				t.Errorf("player x = %v, expected %v", got, tc.wantX)
			}
		})
	}
}

func TestClearingAllFruitEndsGame(t *testing.T) {
	g := newTestGame(t, nil)
	g.fruits = []Fruit{{Position: r2.Vec{X: 70, Y: 60}, Radius: 3}}

	res := g.Step(core.NewInputFrame())
	if res.State.Score != 1 {
		t.Errorf("score = %d, expected 1", res.State.Score)
	}
	if !res.State.GameOver {
		t.Error("collecting the last fruit should end the game")
	}
	if g.Outcome() != string(OutcomeCleared) {
		t.Errorf("Outcome() = %q, expected cleared", g.Outcome())
	}

	if res = g.Step(core.NewInputFrame()); !res.State.Finished {
		t.Error("expected halt on the next frame")
	}
}

func TestSeveralFruitsInOneFrame(t *testing.T) {
	g := newTestGame(t, nil)
	g.fruits = []Fruit{
		{Position: r2.Vec{X: 60, Y: 70}, Radius: 3},
		{Position: r2.Vec{X: 70, Y: 60}, Radius: 3},
		{Position: r2.Vec{X: 200, Y: 200}, Radius: 3},
	}

	res := g.Step(core.NewInputFrame())
	if res.State.Score != 2 {
		t.Errorf("score = %d, expected 2", res.State.Score)
	}
	if len(g.fruits) != 1 || g.fruits[0].Position.X != 200 {
		t.Errorf("wrong fruit left: %+v", g.fruits)
	}
}

// inputScript drives the player around the maze with a fixed pattern.
func inputScript(frame int) core.InputFrame {
	dirs := []core.Action{core.ActionRight, core.ActionDown, core.ActionLeft, core.ActionDown, core.ActionRight, core.ActionUp}
	return holding(dirs[(frame/45)%len(dirs)])
}

func TestScoreInvariant(t *testing.T) {
	g := newTestGame(t, nil)
	initial := g.Snapshot().Fruits

	prevScore := 0
	for i := 0; i < 1500; i++ {
		res := g.Step(inputScript(i))
		snap := g.Snapshot()

		if res.State.Score < prevScore {
			t.Fatalf("frame %d: score decreased from %d to %d", i, prevScore, res.State.Score)
		}
		if snap.Score+snap.Fruits != initial {
			t.Fatalf("frame %d: score %d + fruits %d != %d", i, snap.Score, snap.Fruits, initial)
		}
		if snap.Fruits == 0 && i > 0 && !snap.GameOver {
			t.Fatalf("frame %d: no fruit left but game not over", i)
		}
		prevScore = res.State.Score
	}

	if g.Snapshot().Score == 0 {
		t.Error("scripted run should collect some fruit")
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, nil)
	g2 := newTestGame(t, nil)

	for i := 0; i < 600; i++ {
		in := inputScript(i)
		g1.Step(in)
		g2.Step(in)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestPauseFreezesFrame(t *testing.T) {
	g := newTestGame(t, nil)
	right := holding(core.ActionRight)

	g.Step(right)

	pause := right.Clone()
	pause.Set(core.ActionPause)
	res := g.Step(pause)
	if !res.State.Paused {
		t.Fatal("expected paused")
	}
	before := g.Snapshot()

	for i := 0; i < 5; i++ {
		g.Step(right)
	}
	after := g.Snapshot()
	if after.PlayerX != before.PlayerX || after.Score != before.Score {
		t.Error("paused game should not move")
	}

	g.Step(pause)
	g.Step(right)
	if g.Snapshot().PlayerX <= before.PlayerX {
		t.Error("unpaused game should move again")
	}
}

func TestRenderScene(t *testing.T) {
	g := newTestGame(t, nil)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	if c := screen.GetCell(0, 0); c.Rune != core.GlyphSolid || c.Color != core.ColorBlue {
		t.Errorf("expected wall at (0, 0), got %+v", c)
	}
	if row := []rune(screen.Row(1)); string(row[4:12]) != "Score: 0" {
		t.Errorf("score text missing, row 1 = %q", string(row))
	}
	if c := screen.GetCell(5, 2); c.Color != core.ColorYellow {
		t.Errorf("expected player at (5, 2), got %+v", c)
	}
	if c := screen.GetCell(25, 2); c.Color != core.ColorRed {
		t.Errorf("expected enemy at (25, 2), got %+v", c)
	}
	if c := screen.GetCell(10, 3); c.Rune != core.GlyphDot || c.Color != core.ColorWhite {
		t.Errorf("expected fruit at (10, 3), got %+v", c)
	}
	if strings.Contains(screen.String(), gameOverText) {
		t.Error("GAME OVER shown while playing")
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(t, func(c *config.MazeConfig) {
		c.Enemy.Start = config.Point{X: 80, Y: 60}
	})
	g.Step(core.NewInputFrame())
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(15), gameOverText) {
		t.Errorf("expected GAME OVER on row 15, got %q", screen.Row(15))
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, nil)
	screen := core.NewScreen(30, 10)

	g.Render(screen)

	if !strings.HasPrefix(screen.Row(0), "Window too small") {
		t.Errorf("expected size warning, got %q", screen.Row(0))
	}
}

func TestRegisteredForWindow(t *testing.T) {
	g, err := registry.CreateCanvas(GameID)
	if err != nil {
		t.Fatalf("CreateCanvas() failed: %v", err)
	}
	g.Reset(core.DefaultConfig())
	if w, h := g.WorldSize(); w <= 0 || h <= 0 {
		t.Errorf("WorldSize() = %v x %v", w, h)
	}
}
