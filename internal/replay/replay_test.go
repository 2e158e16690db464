package replay

import (
	"testing"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/games/maze"
)

type scriptedSource struct {
	tick int
}

func (s *scriptedSource) Poll() core.InputFrame {
	dirs := []core.Action{core.ActionRight, core.ActionDown, core.ActionLeft, core.ActionDown}
	k := core.NewKeyState()
	k.Press(dirs[(s.tick/40)%len(dirs)])

	in := core.NewInputFrame()
	in.Keys = k.Snapshot()
	if s.tick == 10 || s.tick == 20 {
		in.Set(core.ActionPause)
	}
	s.tick++
	return in
}

func TestFrameRoundTrip(t *testing.T) {
	in := core.NewInputFrame()
	in.Keys = core.KeySnapshot{Up: true, Left: true, Last: core.ActionLeft}
	in.Set(core.ActionPause)
	in.Set(core.ActionRestart)

	out := FromInput(in).Input()

	if out.Keys != in.Keys {
		t.Errorf("keys = %+v, expected %+v", out.Keys, in.Keys)
	}
	if !out.Has(core.ActionPause) {
		t.Error("pause lost")
	}
	if out.Has(core.ActionRestart) {
		t.Error("restart is handled by the frontend and should not be recorded")
	}
}

func TestRecorderWrap(t *testing.T) {
	rec := NewRecorder()
	src := rec.Wrap(&scriptedSource{})

	for i := 0; i < 50; i++ {
		src.Poll()
	}

	if rec.Len() != 50 {
		t.Fatalf("recorded %d frames, expected 50", rec.Len())
	}
	frames := rec.Frames()
	if !frames[10].Pause || frames[11].Pause {
		t.Error("pause recorded on the wrong tick")
	}
	if frames[45].Keys.Last != core.ActionDown {
		t.Errorf("frame 45 last = %v, expected down", frames[45].Keys.Last)
	}

	frames[0].Pause = true
	if rec.Frames()[0].Pause {
		t.Error("Frames should return a copy")
	}

	rec.Reset()
	if rec.Len() != 0 {
		t.Error("Reset should drop frames")
	}
}

func TestSourceExhausted(t *testing.T) {
	src := NewSource([]Frame{{Keys: core.KeySnapshot{Up: true, Last: core.ActionUp}}})

	if src.Done() {
		t.Fatal("source should not start done")
	}
	if in := src.Poll(); !in.Keys.Up {
		t.Error("expected recorded frame")
	}
	if !src.Done() || src.Position() != 1 {
		t.Errorf("done=%v position=%d", src.Done(), src.Position())
	}
	if in := src.Poll(); in.Keys != (core.KeySnapshot{}) {
		t.Errorf("expected empty frame after the end, got %+v", in.Keys)
	}
}

func TestSimulateMatchesLiveRun(t *testing.T) {
	cfg := core.DefaultConfig()

	live := maze.NewWithConfig(config.DefaultMazeConfig())
	live.Reset(cfg)
	rec := NewRecorder()
	src := rec.Wrap(&scriptedSource{})
	for i := 0; i < 400; i++ {
		live.Step(src.Poll())
	}

	replayed := maze.NewWithConfig(config.DefaultMazeConfig())
	state := Simulate(replayed, cfg, rec.Frames())

	if replayed.Snapshot() != live.Snapshot() {
		t.Errorf("replay diverged:\nlive   %+v\nreplay %+v", live.Snapshot(), replayed.Snapshot())
	}
	if state != live.State() {
		t.Errorf("state = %+v, expected %+v", state, live.State())
	}
}

func TestSimulateResetsGame(t *testing.T) {
	g := maze.NewWithConfig(config.DefaultMazeConfig())
	frames := []Frame{{Keys: core.KeySnapshot{Right: true, Last: core.ActionRight}}}

	first := Simulate(g, core.DefaultConfig(), frames)
	firstSnap := g.Snapshot()
	second := Simulate(g, core.DefaultConfig(), frames)

	if first != second || g.Snapshot() != firstSnap {
		t.Error("Simulate should start from a fresh game every time")
	}
}
