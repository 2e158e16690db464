package storage

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/replay"
)

// FrameInput is the flat form of a replay frame used for the database and
// CSV export.
type FrameInput struct {
	Tick  int    `csv:"tick"`
	Up    bool   `csv:"up"`
	Down  bool   `csv:"down"`
	Left  bool   `csv:"left"`
	Right bool   `csv:"right"`
	Last  string `csv:"last"`
	Pause bool   `csv:"pause"`
}

// NewFrameInput flattens the frame recorded at tick.
func NewFrameInput(tick int, f replay.Frame) FrameInput {
	return FrameInput{
		Tick:  tick,
		Up:    f.Keys.Up,
		Down:  f.Keys.Down,
		Left:  f.Keys.Left,
		Right: f.Keys.Right,
		Last:  f.Keys.Last.String(),
		Pause: f.Pause,
	}
}

// Frame converts back to a replay frame.
func (in FrameInput) Frame() replay.Frame {
	last := core.ParseAction(in.Last)
	if !last.IsDirection() {
		last = core.ActionNone
	}
	return replay.Frame{
		Keys: core.KeySnapshot{
			Up:    in.Up,
			Down:  in.Down,
			Left:  in.Left,
			Right: in.Right,
			Last:  last,
		},
		Pause: in.Pause,
	}
}

// Frames converts flat inputs to replay frames, keeping their order.
func Frames(inputs []FrameInput) []replay.Frame {
	frames := make([]replay.Frame, len(inputs))
	for i, in := range inputs {
		frames[i] = in.Frame()
	}
	return frames
}

// WriteFramesCSV writes frames as CSV with a header row.
func WriteFramesCSV(w io.Writer, frames []replay.Frame) error {
	inputs := make([]FrameInput, len(frames))
	for i, f := range frames {
		inputs[i] = NewFrameInput(i, f)
	}
	if err := gocsv.Marshal(inputs, w); err != nil {
		return fmt.Errorf("storage: cannot write csv: %w", err)
	}
	return nil
}

// ReadFramesCSV reads frames written by WriteFramesCSV. Rows are played in
// file order; the tick column is informational.
func ReadFramesCSV(r io.Reader) ([]replay.Frame, error) {
	var inputs []FrameInput
	if err := gocsv.Unmarshal(r, &inputs); err != nil {
		return nil, fmt.Errorf("storage: cannot read csv: %w", err)
	}
	return Frames(inputs), nil
}
