package remainder

import "fmt"

// CommandType identifies the kind of draw command.
type CommandType uint8

const (
	CommandClear   CommandType = iota // ClearBackground
	CommandEllipse                    // DrawFilledEllipse
	CommandRect                       // DrawFilledRect
	CommandText                       // DrawText
	CommandResize                     // ResizeCanvas
)

func (t CommandType) String() string {
	switch t {
	case CommandClear:
		return "clear"
	case CommandEllipse:
		return "ellipse"
	case CommandRect:
		return "rect"
	case CommandText:
		return "text"
	case CommandResize:
		return "resize"
	default:
		return fmt.Sprintf("CommandType(%d)", uint8(t))
	}
}

// RenderCommand is a single draw instruction captured by a Recorder.
// Fields not used by a command type are zero.
type RenderCommand struct {
	Type   CommandType
	X, Y   float64
	W, H   float64
	Color  Color
	Text   string
	Size   float64
	Align  TextAlign
	Canvas int // index of the canvas the command was issued against
}

// recordedCanvas is the Canvas handle handed out by Recorder.
type recordedCanvas struct {
	w, h float64
}

func (c *recordedCanvas) Size() (w, h float64) { return c.w, c.h }

// Recorder is a Surface that keeps the draw commands of the current frame
// instead of drawing them. A ClearBackground starts a new frame. Useful for
// headless runs and for asserting what the animator renders.
type Recorder struct {
	commands []RenderCommand
	canvases []*recordedCanvas
	frames   int
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{commands: make([]RenderCommand, 0, 64)}
}

func (r *Recorder) ClearBackground(c Color) {
	r.commands = r.commands[:0]
	r.frames++
	r.push(RenderCommand{Type: CommandClear, Color: c})
}

func (r *Recorder) DrawFilledEllipse(x, y, w, h float64, c Color) {
	r.push(RenderCommand{Type: CommandEllipse, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) DrawFilledRect(x, y, w, h float64, c Color) {
	r.push(RenderCommand{Type: CommandRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) DrawText(s string, x, y, size float64, align TextAlign, c Color) {
	r.push(RenderCommand{Type: CommandText, X: x, Y: y, Text: s, Size: size, Align: align, Color: c})
}

func (r *Recorder) CreateCanvas(w, h float64) Canvas {
	c := &recordedCanvas{w: w, h: h}
	r.canvases = append(r.canvases, c)
	return c
}

func (r *Recorder) ResizeCanvas(w, h float64) {
	if len(r.canvases) == 0 {
		return
	}
	c := r.canvases[len(r.canvases)-1]
	c.w, c.h = w, h
	r.push(RenderCommand{Type: CommandResize, W: w, H: h})
}

func (r *Recorder) push(cmd RenderCommand) {
	cmd.Canvas = len(r.canvases) - 1
	r.commands = append(r.commands, cmd)
}

// Commands returns the commands issued since the last ClearBackground.
// The returned slice MUST NOT be mutated.
func (r *Recorder) Commands() []RenderCommand {
	return r.commands
}

// Texts returns the content of every text command in the current frame.
func (r *Recorder) Texts() []string {
	var out []string
	for _, cmd := range r.commands {
		if cmd.Type == CommandText {
			out = append(out, cmd.Text)
		}
	}
	return out
}

// Count returns how many commands of type t the current frame holds.
func (r *Recorder) Count(t CommandType) int {
	n := 0
	for _, cmd := range r.commands {
		if cmd.Type == t {
			n++
		}
	}
	return n
}

// Frames returns the number of frames recorded so far.
func (r *Recorder) Frames() int {
	return r.frames
}

// Canvas returns the most recently created canvas, or nil.
func (r *Recorder) Canvas() Canvas {
	if len(r.canvases) == 0 {
		return nil
	}
	return r.canvases[len(r.canvases)-1]
}
