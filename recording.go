package rectstream

// The recording system captures canvas operations as typed command
// structures instead of immediate rasterization. Recordings can be
// inspected (tests, debugging) or replayed to any Canvas, which is the
// basis for vector export.
//
// Design follows Cairo's approach of typed command structs for
// inspectability, rather than a binary serialization format.

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// CmdSetFillBrush sets the fill brush.
	CmdSetFillBrush CommandType = iota
	// CmdSetAlpha sets the scalar opacity.
	CmdSetAlpha
	// CmdFillRect fills an axis-aligned rectangle.
	CmdFillRect
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdSetFillBrush: "SetFillBrush",
	CmdSetAlpha:     "SetAlpha",
	CmdFillRect:     "FillRect",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// SetFillBrushCommand sets the fill brush for subsequent fills.
type SetFillBrushCommand struct {
	// Brush is the fill brush.
	Brush Brush
}

// Type implements Command.
func (SetFillBrushCommand) Type() CommandType { return CmdSetFillBrush }

// SetAlphaCommand sets the scalar opacity for subsequent fills.
type SetAlphaCommand struct {
	// Alpha is the opacity in [0, 1].
	Alpha float64
}

// Type implements Command.
func (SetAlphaCommand) Type() CommandType { return CmdSetAlpha }

// FillRectCommand fills an axis-aligned rectangle with the current
// brush and opacity.
type FillRectCommand struct {
	// X, Y is the top-left corner; W, H the extent.
	X, Y, W, H float64
}

// Type implements Command.
func (FillRectCommand) Type() CommandType { return CmdFillRect }

// Recorder is a Canvas that captures operations as commands. Use
// Finish to obtain an immutable Recording that can be replayed to a
// real canvas.
//
// Redundant state commands are elided: setting the brush or alpha to
// its current value records nothing, so a Recording reflects the
// minimal state changes needed to reproduce the fills.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	commands []Command

	fillBrush Brush
	alpha     float64
	// Tracks whether state commands were recorded at least once, so
	// the first SetAlpha(1) on a fresh recorder is still captured.
	brushSet bool
	alphaSet bool
}

// NewRecorder creates a new Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		commands: make([]Command, 0, 256),
	}
}

// SetFillBrush implements Canvas.
func (r *Recorder) SetFillBrush(b Brush) {
	if r.brushSet && b == r.fillBrush {
		return
	}
	r.brushSet = true
	r.fillBrush = b
	r.commands = append(r.commands, SetFillBrushCommand{Brush: b})
}

// SetAlpha implements Canvas.
func (r *Recorder) SetAlpha(alpha float64) {
	if r.alphaSet && alpha == r.alpha {
		return
	}
	r.alphaSet = true
	r.alpha = alpha
	r.commands = append(r.commands, SetAlphaCommand{Alpha: alpha})
}

// FillRect implements Canvas.
func (r *Recorder) FillRect(x, y, w, h float64) {
	r.commands = append(r.commands, FillRectCommand{X: x, Y: y, W: w, H: h})
}

// Finish returns an immutable Recording containing all recorded
// commands. After calling Finish, the Recorder should not be used again.
func (r *Recorder) Finish() *Recording {
	return &Recording{commands: r.commands}
}

// Recording is an immutable container for recorded canvas commands.
type Recording struct {
	commands []Command
}

// Commands returns the recorded commands in order.
func (r *Recording) Commands() []Command {
	return r.commands
}

// FillRects returns only the fill commands, in order. Convenient for
// asserting on the geometry a Renderer produced.
func (r *Recording) FillRects() []FillRectCommand {
	var fills []FillRectCommand
	for _, cmd := range r.commands {
		if f, ok := cmd.(FillRectCommand); ok {
			fills = append(fills, f)
		}
	}
	return fills
}

// Playback replays the recording to the given canvas.
func (r *Recording) Playback(canvas Canvas) {
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case SetFillBrushCommand:
			canvas.SetFillBrush(c.Brush)
		case SetAlphaCommand:
			canvas.SetAlpha(c.Alpha)
		case FillRectCommand:
			canvas.FillRect(c.X, c.Y, c.W, c.H)
		}
	}
}
