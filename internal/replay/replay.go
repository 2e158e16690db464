// Package replay records the input polled each tick and feeds it back into a
// fresh game. The maze is deterministic, so the same frames always lead to
// the same end state.
package replay

import "github.com/vovakirdan/tui-maze/internal/core"

// Frame is the input of a single tick.
type Frame struct {
	Keys  core.KeySnapshot
	Pause bool
}

// FromInput extracts the parts of an input frame that affect the simulation.
func FromInput(in core.InputFrame) Frame {
	return Frame{
		Keys:  in.Keys,
		Pause: in.Has(core.ActionPause),
	}
}

// Input rebuilds the input frame for a tick.
func (f Frame) Input() core.InputFrame {
	in := core.NewInputFrame()
	in.Keys = f.Keys
	if f.Pause {
		in.Set(core.ActionPause)
	}
	return in
}

// Recorder collects frames in tick order.
type Recorder struct {
	frames []Frame
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends the input of one tick.
func (r *Recorder) Record(in core.InputFrame) {
	r.frames = append(r.frames, FromInput(in))
}

// Len returns the number of recorded frames.
func (r *Recorder) Len() int {
	return len(r.frames)
}

// Frames returns a copy of the recorded frames.
func (r *Recorder) Frames() []Frame {
	out := make([]Frame, len(r.frames))
	copy(out, r.frames)
	return out
}

// Reset drops everything recorded so far.
func (r *Recorder) Reset() {
	r.frames = r.frames[:0]
}

// Wrap returns an input source that records every frame polled from src.
func (r *Recorder) Wrap(src core.InputSource) core.InputSource {
	return &recordingSource{src: src, rec: r}
}

type recordingSource struct {
	src core.InputSource
	rec *Recorder
}

func (s *recordingSource) Poll() core.InputFrame {
	in := s.src.Poll()
	s.rec.Record(in)
	return in
}

// Source plays recorded frames back. Once exhausted it returns empty frames.
type Source struct {
	frames []Frame
	pos    int
}

// NewSource creates a source over frames.
func NewSource(frames []Frame) *Source {
	return &Source{frames: frames}
}

// Poll returns the next recorded frame.
func (s *Source) Poll() core.InputFrame {
	if s.pos >= len(s.frames) {
		return core.NewInputFrame()
	}
	f := s.frames[s.pos]
	s.pos++
	return f.Input()
}

// Done reports whether every frame has been played.
func (s *Source) Done() bool {
	return s.pos >= len(s.frames)
}

// Position returns how many frames have been played.
func (s *Source) Position() int {
	return s.pos
}

// Len returns the total number of frames.
func (s *Source) Len() int {
	return len(s.frames)
}

// Game is the part of a game a replay drives.
type Game interface {
	Reset(cfg core.RuntimeConfig)
	Step(input core.InputFrame) core.StepResult
}

// Simulate resets g and steps it once per frame. It returns the state after
// the last frame.
func Simulate(g Game, cfg core.RuntimeConfig, frames []Frame) core.GameState {
	g.Reset(cfg)

	var state core.GameState
	src := NewSource(frames)
	for !src.Done() {
		state = g.Step(src.Poll()).State
	}
	return state
}
