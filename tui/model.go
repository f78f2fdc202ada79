package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/phanxgames/remainder"
)

// TickMsg advances the animation by one frame.
type TickMsg time.Time

// DefaultFPS is the frame rate the terminal animation ticks at.
const DefaultFPS = 60

var hintStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#666688")).
	Italic(true)

// Model is a Bubble Tea model hosting an animator on a terminal Surface.
type Model struct {
	animator *remainder.Animator
	surface  *Surface
	interval time.Duration
}

// New builds the surface and animator for cfg and runs Setup against cols
// terminal columns. cols <= 0 lets the animator use its default width until
// the first WindowSizeMsg arrives.
func New(cfg remainder.Config, cols int, logger *log.Logger) (Model, error) {
	s := NewSurface()
	a := remainder.NewAnimator(cfg, s)
	a.SetLogger(logger)

	var width float64
	if cols > 0 {
		width = float64(cols) * UnitsPerColumn
	}
	if err := a.Setup(width); err != nil {
		return Model{}, err
	}
	return Model{
		animator: a,
		surface:  s,
		interval: time.Second / DefaultFPS,
	}, nil
}

// Animator returns the hosted animator.
func (m Model) Animator() *remainder.Animator {
	return m.animator
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.animator.Resize(float64(msg.Width) * UnitsPerColumn)
	case TickMsg:
		m.animator.Frame()
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	return m.surface.String() + "\n" + hintStyle.Render("q to quit")
}

// Run starts a full-screen Bubble Tea program for cfg and blocks until the
// user quits.
func Run(cfg remainder.Config, logger *log.Logger) error {
	m, err := New(cfg, 0, logger)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
