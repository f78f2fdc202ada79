package remainder

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig holds optional settings for Run and NewGame.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height set the window size in pixels. The window width is the
	// container width the animator lays out against.
	Width, Height int
	// ShowFPS draws an FPS/TPS counter in the corner of the window.
	ShowFPS bool
	// Debug logs averaged frame timings through Logger.
	Debug bool
	// ScreenshotDir receives PNG screenshots. Defaults to DefaultScreenshotDir.
	ScreenshotDir string
	// Script, when set, is stepped once per frame before the animator.
	Script *Script
	// ExitWhenDone closes the window once Script has finished.
	ExitWhenDone bool
	// Logger receives animator and host events. Nil discards them.
	Logger *log.Logger
}

// Game hosts an Animator inside an Ebitengine game loop. Update drives
// Animator.Frame onto the offscreen canvas, Draw presents it, and Layout turns
// window width changes into Animator.Resize calls.
type Game struct {
	animator *Animator
	surface  *EbitenSurface
	logger   *log.Logger

	script        *Script
	exitWhenDone  bool
	screenshotDir string
	shots         []string

	width, height int
	fps           *fpsWidget
	debug         bool
	stats         debugStats
}

// NewGame builds the surface and animator for cfg and runs Setup against the
// window width in rc. Errors from Setup (a *ConfigError) are returned as is.
func NewGame(cfg Config, rc RunConfig) (*Game, error) {
	surface, err := NewEbitenSurface()
	if err != nil {
		return nil, err
	}

	logger := rc.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	a := NewAnimator(cfg, surface)
	a.SetLogger(logger)
	if err := a.Setup(float64(rc.Width)); err != nil {
		return nil, err
	}

	g := &Game{
		animator:      a,
		surface:       surface,
		logger:        logger,
		script:        rc.Script,
		exitWhenDone:  rc.ExitWhenDone,
		screenshotDir: rc.ScreenshotDir,
		width:         rc.Width,
		height:        rc.Height,
		debug:         rc.Debug,
	}
	if g.screenshotDir == "" {
		g.screenshotDir = DefaultScreenshotDir
	}
	if rc.ShowFPS {
		g.fps = newFPSWidget()
	}
	return g, nil
}

// Animator returns the hosted animator.
func (g *Game) Animator() *Animator {
	return g.animator
}

// Resize resizes the window and tells the animator about the new width.
func (g *Game) Resize(containerWidth float64) {
	g.width = windowSize(containerWidth)
	ebiten.SetWindowSize(g.width, windowSize(float64(g.height)))
	g.animator.Resize(float64(g.width))
}

// windowSize truncates a size to whole pixels, at least 1. Ebitengine panics
// on non-positive window sizes.
func windowSize(v float64) int {
	return max(1, int(v))
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	var t0 time.Time
	if g.debug {
		t0 = time.Now()
	}

	if g.script != nil {
		g.script.Step(g)
	}
	g.animator.Frame()
	if g.fps != nil {
		g.fps.update(1 / float64(ebiten.TPS()))
	}

	if g.debug {
		g.recordUpdate(time.Since(t0))
	}

	if g.exitWhenDone && g.script != nil && g.script.Done() && len(g.shots) == 0 {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game. The canvas is centered horizontally.
func (g *Game) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if g.debug {
		t0 = time.Now()
	}

	screen.Fill(ColorBackground.RGBA())
	canvas := g.surface.Image()
	if canvas != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(screen.Bounds().Dx()-canvas.Bounds().Dx())/2, 0)
		screen.DrawImage(canvas, op)
	}
	if g.fps != nil {
		g.fps.draw(screen)
	}
	g.flushScreenshots(canvas)

	if g.debug {
		g.recordDraw(time.Since(t0))
	}
}

// Layout implements ebiten.Game. A change in the outside width is forwarded
// to the animator.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width {
		g.width = outsideWidth
		g.animator.Resize(float64(outsideWidth))
	}
	return outsideWidth, outsideHeight
}

// Run opens a window and animates cfg until the window is closed (or the
// script finishes with ExitWhenDone). Width and Height default to 420x300.
func Run(cfg Config, rc RunConfig) error {
	if rc.Width <= 0 {
		rc.Width = int(MaxCanvasWidth + ContainerMargin)
	}
	if rc.Height <= 0 {
		rc.Height = int(CanvasHeight)
	}
	if rc.Title == "" {
		rc.Title = "Remainder"
	}

	g, err := NewGame(cfg, rc)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle(rc.Title)
	ebiten.SetWindowSize(rc.Width, rc.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(g)
}
