package remainder

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Layout and timing constants. Distances are in canvas units.
const (
	CanvasHeight    = 300.0
	MaxCanvasWidth  = 400.0
	ContainerMargin = 20.0

	// AssignInterval is the number of frames the timer must exceed before the
	// next item is dealt.
	AssignInterval = 60

	gridColumns   = 5
	gridOrigin    = 50.0
	gridPitch     = 60.0
	anchorInset   = 80.0 // recipients sit this far above the canvas bottom
	stackBase     = 40.0 // first dealt item sits this far above its recipient
	stackPitch    = 25.0 // each further item stacks this much higher
	itemSize      = 20.0
	recipientSize = 40.0
)

// Phase is the animator's externally observable state.
type Phase uint8

const (
	PhaseSetup        Phase = iota // not yet set up, or setup was rejected
	PhaseDistributing              // items are still being dealt
	PhaseComplete                  // every item is dealt; terminal
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseDistributing:
		return "distributing"
	case PhaseComplete:
		return "complete"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// Item is one unit being dealt. Target and the recipient index are set once,
// at assignment, and never change after that.
type Item struct {
	Position Vec2
	Target   Vec2
	Assigned bool

	recipient int
}

// Recipient returns the index of the recipient the item was dealt to.
// ok is false while the item is unassigned.
func (it Item) Recipient() (index int, ok bool) {
	if !it.Assigned {
		return 0, false
	}
	return it.recipient, true
}

// Recipient accumulates dealt items. Anchor is fixed at setup.
type Recipient struct {
	Anchor   Vec2
	Received int
}

// AnimationState is the animator's frame bookkeeping.
type AnimationState struct {
	Elapsed      int // frames since the last assignment
	Next         int // index of the next item to deal; TotalItems once complete
	CanvasWidth  float64
	CanvasHeight float64
}

// Summary is the result of the division.
type Summary struct {
	Quotient  int
	Remainder int
}

func (s Summary) String() string {
	return fmt.Sprintf("%d each, %d left over", s.Quotient, s.Remainder)
}

// Animator deals items to recipients round-robin, one every AssignInterval
// frames, and renders the progress onto a Surface.
//
// The host calls Setup once, then Frame on every tick, and Resize whenever
// the container width changes. An Animator is not safe for concurrent use;
// separate instances share nothing.
type Animator struct {
	cfg     Config
	surface Surface
	canvas  Canvas
	motion  Motion
	logger  *log.Logger

	items      []Item
	recipients []Recipient
	state      AnimationState
	ready      bool
}

// NewAnimator creates an animator for cfg drawing onto surface. The config is
// validated by Setup.
func NewAnimator(cfg Config, surface Surface) *Animator {
	return &Animator{
		cfg:     cfg,
		surface: surface,
		motion:  DefaultMotion,
		logger:  log.New(io.Discard),
	}
}

// SetLogger sets the logger used for assignment and lifecycle events.
// A nil logger discards output.
func (a *Animator) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	a.logger = l
}

// SetMotion replaces the easing used to move dealt items.
func (a *Animator) SetMotion(m Motion) {
	a.motion = m
}

// Config returns the animator's configuration.
func (a *Animator) Config() Config {
	return a.cfg
}

// Canvas returns the handle created during Setup, or nil before it.
func (a *Animator) Canvas() Canvas {
	return a.canvas
}

// CanvasWidth computes the canvas width for a container: the container width
// minus a margin, capped at MaxCanvasWidth. A non-positive container width
// means there is no container and yields MaxCanvasWidth.
func CanvasWidth(containerWidth float64) float64 {
	if containerWidth <= 0 {
		return MaxCanvasWidth
	}
	return max(1, min(MaxCanvasWidth, containerWidth-ContainerMargin))
}

// Setup validates the config, creates the canvas, lays out items and
// recipients and resets the frame state. On a *ConfigError nothing is laid
// out and Frame stays a no-op.
func (a *Animator) Setup(containerWidth float64) error {
	if err := a.cfg.Validate(); err != nil {
		a.ready = false
		return err
	}

	w := CanvasWidth(containerWidth)
	a.state = AnimationState{CanvasWidth: w, CanvasHeight: CanvasHeight}
	a.canvas = a.surface.CreateCanvas(w, CanvasHeight)

	a.items = make([]Item, a.cfg.TotalItems)
	for i := range a.items {
		a.items[i] = Item{Position: gridPosition(i)}
	}

	a.recipients = make([]Recipient, a.cfg.TotalRecipients)
	spacing := w / float64(a.cfg.TotalRecipients+1)
	for i := range a.recipients {
		a.recipients[i] = Recipient{Anchor: Vec2{
			X: spacing * float64(i+1),
			Y: CanvasHeight - anchorInset,
		}}
	}

	a.ready = true
	a.logger.Debug("setup",
		"items", a.cfg.TotalItems, "recipients", a.cfg.TotalRecipients, "width", w)
	if a.Phase() == PhaseComplete {
		a.logComplete()
	}
	return nil
}

// gridPosition is the resting position of item i, five to a row.
func gridPosition(i int) Vec2 {
	return Vec2{
		X: gridOrigin + float64(i%gridColumns)*gridPitch,
		Y: gridOrigin + float64(i/gridColumns)*gridPitch,
	}
}

// Frame advances the animation by one tick and renders it: at most one
// assignment, one motion step for every dealt item, then the draw calls.
func (a *Animator) Frame() {
	if !a.ready {
		return
	}

	a.surface.ClearBackground(ColorBackground)
	a.surface.DrawText(
		fmt.Sprintf("%d ÷ %d = ?", a.cfg.TotalItems, a.cfg.TotalRecipients),
		a.state.CanvasWidth/2, 25, 16, TextAlignCenter, ColorTitle)

	a.state.Elapsed++
	if a.state.Elapsed > AssignInterval && a.state.Next < a.cfg.TotalItems {
		a.assignNext()
	}

	for i := range a.items {
		if it := &a.items[i]; it.Assigned {
			it.Position = a.motion.Step(it.Position, it.Target)
		}
	}

	a.draw()
}

// assignNext deals the next item to the recipient chosen by round-robin and
// stacks it above that recipient's previous items.
func (a *Animator) assignNext() {
	idx := a.state.Next
	r := idx % a.cfg.TotalRecipients
	rec := &a.recipients[r]

	it := &a.items[idx]
	it.Assigned = true
	it.recipient = r
	it.Target = Vec2{
		X: rec.Anchor.X,
		Y: rec.Anchor.Y - stackBase - float64(rec.Received)*stackPitch,
	}
	rec.Received++

	a.state.Next++
	a.state.Elapsed = 0

	a.logger.Debug("assigned", "item", idx, "recipient", r, "received", rec.Received)
	if a.state.Next == a.cfg.TotalItems {
		a.logComplete()
	}
}

func (a *Animator) logComplete() {
	s, _ := a.Summary()
	a.logger.Info("distribution complete", "quotient", s.Quotient, "remainder", s.Remainder)
}

func (a *Animator) draw() {
	for _, it := range a.items {
		c := ColorUnassigned
		if it.Assigned {
			c = ColorAssigned
		}
		a.surface.DrawFilledEllipse(it.Position.X, it.Position.Y, itemSize, itemSize, c)
		a.surface.DrawFilledRect(it.Position.X-2, it.Position.Y-12, 4, 8, ColorStem)
	}

	for i, rec := range a.recipients {
		x, y := rec.Anchor.X, rec.Anchor.Y
		a.surface.DrawFilledEllipse(x, y, recipientSize, recipientSize, ColorRecipient)
		a.surface.DrawText(fmt.Sprintf("#%d", i+1), x, y+5, 12, TextAlignCenter, ColorWhite)
		a.surface.DrawText(fmt.Sprint(rec.Received), x, y+60, 14, TextAlignCenter, ColorTally)
	}

	if s, ok := a.Summary(); ok {
		a.surface.DrawText(s.String(),
			a.state.CanvasWidth/2, a.state.CanvasHeight-20, 18, TextAlignCenter, ColorSummary)
	}
}

// Resize recomputes the canvas width and resizes the canvas. Items and
// recipients keep their positions and targets.
func (a *Animator) Resize(containerWidth float64) {
	if !a.ready {
		return
	}
	a.state.CanvasWidth = CanvasWidth(containerWidth)
	a.surface.ResizeCanvas(a.state.CanvasWidth, a.state.CanvasHeight)
	a.logger.Debug("resize", "container", containerWidth, "width", a.state.CanvasWidth)
}

// Phase reports where the animator is in Setup → Distributing → Complete.
func (a *Animator) Phase() Phase {
	switch {
	case !a.ready:
		return PhaseSetup
	case a.state.Next >= a.cfg.TotalItems:
		return PhaseComplete
	default:
		return PhaseDistributing
	}
}

// Summary returns the quotient and remainder once every item is dealt.
func (a *Animator) Summary() (Summary, bool) {
	if a.Phase() != PhaseComplete {
		return Summary{}, false
	}
	return Summary{
		Quotient:  a.cfg.TotalItems / a.cfg.TotalRecipients,
		Remainder: a.cfg.TotalItems % a.cfg.TotalRecipients,
	}, true
}

// Items returns a copy of the items in distribution order.
func (a *Animator) Items() []Item {
	return append([]Item(nil), a.items...)
}

// Recipients returns a copy of the recipients in index order.
func (a *Animator) Recipients() []Recipient {
	return append([]Recipient(nil), a.recipients...)
}

// State returns the current frame bookkeeping.
func (a *Animator) State() AnimationState {
	return a.state
}
