package display

import "fmt"

// Op names a Renderer method.
type Op string

const (
	OpClear    Op = "clear"
	OpLine     Op = "line"
	OpText     Op = "text"
	OpSprite   Op = "sprite"
	OpInvert   Op = "invert"
	OpContrast Op = "contrast"
	OpPresent  Op = "present"
)

// Call is one recorded Renderer call. Only the fields relevant to Op are set.
type Call struct {
	Op     Op
	X, Y   int
	X1, Y1 int
	Text   string
	Sprite SpriteID
	On     bool
	Level  uint8
}

// String renders the call compactly, e.g. "text(12 @10,10)".
func (c Call) String() string {
	switch c.Op {
	case OpLine:
		return fmt.Sprintf("line(%d,%d-%d,%d)", c.X, c.Y, c.X1, c.Y1)
	case OpText:
		return fmt.Sprintf("text(%s @%d,%d)", c.Text, c.X, c.Y)
	case OpSprite:
		return fmt.Sprintf("sprite(%s @%d,%d)", c.Sprite, c.X, c.Y)
	case OpInvert:
		return fmt.Sprintf("invert(%t)", c.On)
	case OpContrast:
		return fmt.Sprintf("contrast(%d)", c.Level)
	default:
		return string(c.Op)
	}
}

// Recorder is a Renderer that keeps every call it receives.
type Recorder struct {
	calls []Call
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Clear records a clear.
func (r *Recorder) Clear() { r.calls = append(r.calls, Call{Op: OpClear}) }

// DrawLine records a line.
func (r *Recorder) DrawLine(x0, y0, x1, y1 int) {
	r.calls = append(r.calls, Call{Op: OpLine, X: x0, Y: y0, X1: x1, Y1: y1})
}

// DrawText records a text draw.
func (r *Recorder) DrawText(s string, x, y int) {
	r.calls = append(r.calls, Call{Op: OpText, Text: s, X: x, Y: y})
}

// DrawSprite records a sprite blit.
func (r *Recorder) DrawSprite(id SpriteID, x, y int) {
	r.calls = append(r.calls, Call{Op: OpSprite, Sprite: id, X: x, Y: y})
}

// SetInvert records an invert change.
func (r *Recorder) SetInvert(on bool) { r.calls = append(r.calls, Call{Op: OpInvert, On: on}) }

// SetContrast records a contrast change.
func (r *Recorder) SetContrast(level uint8) {
	r.calls = append(r.calls, Call{Op: OpContrast, Level: level})
}

// Present records the end of a frame.
func (r *Recorder) Present() { r.calls = append(r.calls, Call{Op: OpPresent}) }

// Calls returns the recorded calls in order.
func (r *Recorder) Calls() []Call {
	return r.calls
}

// Ops returns just the operation names in order.
func (r *Recorder) Ops() []Op {
	ops := make([]Op, len(r.calls))
	for i, c := range r.calls {
		ops[i] = c.Op
	}
	return ops
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.calls = r.calls[:0]
}
