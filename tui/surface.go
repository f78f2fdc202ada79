package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/phanxgames/remainder"
)

// Canvas units covered by one terminal cell.
const (
	UnitsPerColumn = 5.0
	UnitsPerRow    = 10.0

	dotW = UnitsPerColumn / 2
	dotH = UnitsPerRow / 4

	brailleBase = 0x2800
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

type cell struct {
	dots  rune
	text  rune
	color remainder.Color
}

func (c cell) glyph() rune {
	switch {
	case c.text != 0:
		return c.text
	case c.dots == 0:
		return ' '
	default:
		return brailleBase | c.dots
	}
}

type canvas struct {
	w, h float64
}

func (c *canvas) Size() (w, h float64) { return c.w, c.h }

// Surface is a remainder.Surface that draws into a grid of terminal cells.
type Surface struct {
	cols, rows int
	cells      []cell
	background remainder.Color
	canvas     *canvas
}

// NewSurface returns a surface with no canvas.
func NewSurface() *Surface {
	return &Surface{}
}

// Dimensions returns the grid size in terminal cells.
func (s *Surface) Dimensions() (cols, rows int) {
	return s.cols, s.rows
}

func (s *Surface) CreateCanvas(w, h float64) remainder.Canvas {
	s.canvas = &canvas{}
	s.ResizeCanvas(w, h)
	return s.canvas
}

func (s *Surface) ResizeCanvas(w, h float64) {
	if s.canvas == nil {
		return
	}
	s.canvas.w, s.canvas.h = w, h
	s.cols = int(math.Ceil(w / UnitsPerColumn))
	s.rows = int(math.Ceil(h / UnitsPerRow))
	s.cells = make([]cell, s.cols*s.rows)
}

func (s *Surface) ClearBackground(c remainder.Color) {
	s.background = c
	clear(s.cells)
}

func (s *Surface) DrawFilledEllipse(x, y, w, h float64, c remainder.Color) {
	rx, ry := w/2, h/2
	if rx <= 0 || ry <= 0 {
		return
	}
	s.fillDots(x-rx, y-ry, x+rx, y+ry, c, func(px, py float64) bool {
		dx, dy := (px-x)/rx, (py-y)/ry
		return dx*dx+dy*dy <= 1
	})
}

func (s *Surface) DrawFilledRect(x, y, w, h float64, c remainder.Color) {
	s.fillDots(x, y, x+w, y+h, c, func(px, py float64) bool {
		return px >= x && px < x+w && py >= y && py < y+h
	})
}

// fillDots sets every dot in the bounding box whose center satisfies inside.
func (s *Surface) fillDots(x0, y0, x1, y1 float64, c remainder.Color, inside func(px, py float64) bool) {
	for dy := int(math.Floor(y0 / dotH)); float64(dy)*dotH < y1; dy++ {
		for dx := int(math.Floor(x0 / dotW)); float64(dx)*dotW < x1; dx++ {
			if inside((float64(dx)+0.5)*dotW, (float64(dy)+0.5)*dotH) {
				s.setDot(dx, dy, c)
			}
		}
	}
}

func (s *Surface) setDot(dx, dy int, c remainder.Color) {
	if dx < 0 || dy < 0 {
		return
	}
	col, row := dx/2, dy/4
	if col >= s.cols || row >= s.rows {
		return
	}
	cl := &s.cells[row*s.cols+col]
	cl.dots |= pixelMap[dy%4][dx%2]
	cl.color = c
}

// DrawText writes text into whole cells on the row holding the baseline.
// Terminal cells have a fixed size, so size is ignored.
func (s *Surface) DrawText(str string, x, y, _ float64, align remainder.TextAlign, c remainder.Color) {
	runes := []rune(str)
	row := int(math.Floor((y - 1) / UnitsPerRow))
	if row < 0 || row >= s.rows {
		return
	}
	col := int(math.Floor(x / UnitsPerColumn))
	switch align {
	case remainder.TextAlignCenter:
		col -= len(runes) / 2
	case remainder.TextAlignRight:
		col -= len(runes)
	}
	for i, r := range runes {
		cc := col + i
		if cc < 0 || cc >= s.cols {
			continue
		}
		s.cells[row*s.cols+cc] = cell{text: r, color: c}
	}
}

// Lines returns the grid as plain text, one string per row.
func (s *Surface) Lines() []string {
	lines := make([]string, s.rows)
	for row := range lines {
		var b strings.Builder
		for _, cl := range s.cells[row*s.cols : (row+1)*s.cols] {
			b.WriteRune(cl.glyph())
		}
		lines[row] = b.String()
	}
	return lines
}

// String renders the grid with lipgloss colors. Adjacent cells of the same
// color are rendered as one run.
func (s *Surface) String() string {
	bg := lipgloss.Color(s.background.Hex())
	var b strings.Builder
	for row := 0; row < s.rows; row++ {
		cells := s.cells[row*s.cols : (row+1)*s.cols]
		for start := 0; start < len(cells); {
			end := start + 1
			for end < len(cells) && cells[end].color == cells[start].color {
				end++
			}
			var run strings.Builder
			for _, cl := range cells[start:end] {
				run.WriteRune(cl.glyph())
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(cells[start].color.Hex())).
				Background(bg)
			b.WriteString(style.Render(run.String()))
			start = end
		}
		if row < s.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
