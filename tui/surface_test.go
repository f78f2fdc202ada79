package tui

import (
	"strings"
	"testing"

	"github.com/phanxgames/remainder"
)

const fullCell = '⣿'

func newTestSurface(t *testing.T, w, h float64) *Surface {
	t.Helper()
	s := NewSurface()
	s.CreateCanvas(w, h)
	s.ClearBackground(remainder.ColorBackground)
	return s
}

func runeAt(s *Surface, col, row int) rune {
	return []rune(s.Lines()[row])[col]
}

// --- Canvas ---

func TestSurfaceDimensions(t *testing.T) {
	tests := []struct {
		w, h       float64
		cols, rows int
	}{
		{400, 300, 80, 30},
		{280, 300, 56, 30},
		{12, 15, 3, 2},
	}
	for _, tt := range tests {
		s := newTestSurface(t, tt.w, tt.h)
		if cols, rows := s.Dimensions(); cols != tt.cols || rows != tt.rows {
			t.Errorf("%vx%v: dimensions = %dx%d, want %dx%d", tt.w, tt.h, cols, rows, tt.cols, tt.rows)
		}
	}
}

func TestResizeCanvas(t *testing.T) {
	s := NewSurface()
	s.ResizeCanvas(100, 100)
	if cols, _ := s.Dimensions(); cols != 0 {
		t.Error("ResizeCanvas before CreateCanvas should do nothing")
	}

	c := s.CreateCanvas(400, 300)
	s.ResizeCanvas(280, 300)
	if w, h := c.Size(); w != 280 || h != 300 {
		t.Errorf("canvas = %vx%v, want 280x300", w, h)
	}
	if cols, rows := s.Dimensions(); cols != 56 || rows != 30 {
		t.Errorf("dimensions = %dx%d, want 56x30", cols, rows)
	}
	if len(s.Lines()) != 30 {
		t.Errorf("lines = %d, want 30", len(s.Lines()))
	}
}

// --- Shapes ---

func TestDrawFilledRectFillsCell(t *testing.T) {
	s := newTestSurface(t, 20, 20)
	s.DrawFilledRect(0, 0, UnitsPerColumn, UnitsPerRow, remainder.ColorStem)

	if got := runeAt(s, 0, 0); got != fullCell {
		t.Errorf("cell = %U, want %U", got, fullCell)
	}
	if got := runeAt(s, 1, 0); got != ' ' {
		t.Errorf("neighbor cell = %q, want blank", got)
	}
}

func TestDrawFilledRectPartialCell(t *testing.T) {
	s := newTestSurface(t, 20, 20)
	// Left column of dots, top two rows.
	s.DrawFilledRect(0, 0, dotW, 2*dotH, remainder.ColorStem)

	want := rune(brailleBase | 0x1 | 0x2)
	if got := runeAt(s, 0, 0); got != want {
		t.Errorf("cell = %U, want %U", got, want)
	}
}

func TestDrawFilledEllipse(t *testing.T) {
	s := newTestSurface(t, 20, 20)
	s.DrawFilledEllipse(UnitsPerColumn/2, UnitsPerRow/2, UnitsPerColumn, UnitsPerRow, remainder.ColorRecipient)

	if got := runeAt(s, 0, 0); got != fullCell {
		t.Errorf("cell = %U, want %U", got, fullCell)
	}
}

func TestDrawOutOfBounds(t *testing.T) {
	s := newTestSurface(t, 20, 20)
	s.DrawFilledEllipse(-50, -50, 40, 40, remainder.ColorRecipient)
	s.DrawFilledRect(15, 15, 100, 100, remainder.ColorStem)
	s.DrawFilledEllipse(5, 5, 0, 10, remainder.ColorRecipient)
	s.DrawText("far away", 500, 500, 12, remainder.TextAlignLeft, remainder.ColorWhite)

	// Only the bottom two dot rows of the last cell are covered.
	want := rune(brailleBase | 0x4 | 0x20 | 0x40 | 0x80)
	if got := runeAt(s, 3, 1); got != want {
		t.Errorf("clipped rect corner = %U, want %U", got, want)
	}
	if got := runeAt(s, 0, 0); got != ' ' {
		t.Errorf("cell (0,0) = %q, want blank", got)
	}
}

func TestClearBackground(t *testing.T) {
	s := newTestSurface(t, 20, 20)
	s.DrawFilledRect(0, 0, 20, 20, remainder.ColorStem)
	s.ClearBackground(remainder.ColorBackground)
	for i, line := range s.Lines() {
		if strings.TrimSpace(line) != "" {
			t.Errorf("line %d = %q after clear", i, line)
		}
	}
}

// --- Text ---

func TestDrawTextAlignment(t *testing.T) {
	tests := []struct {
		name  string
		align remainder.TextAlign
		col   int
	}{
		{"left", remainder.TextAlignLeft, 10},
		{"center", remainder.TextAlignCenter, 8},
		{"right", remainder.TextAlignRight, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSurface(t, 100, 50)
			s.DrawText("abcd", 50, 25, 14, tt.align, remainder.ColorWhite)

			line := []rune(s.Lines()[2])
			if got := string(line[tt.col : tt.col+4]); got != "abcd" {
				t.Errorf("line = %q, want abcd at column %d", string(line), tt.col)
			}
		})
	}
}

func TestTextOverwritesDots(t *testing.T) {
	s := newTestSurface(t, 20, 20)
	s.DrawFilledRect(0, 0, 20, 20, remainder.ColorStem)
	s.DrawText("x", 0, 5, 12, remainder.TextAlignLeft, remainder.ColorWhite)
	if got := runeAt(s, 0, 0); got != 'x' {
		t.Errorf("cell = %q, want x", got)
	}
}

func TestStringContainsGlyphs(t *testing.T) {
	s := newTestSurface(t, 20, 20)
	s.DrawText("hi", 0, 15, 12, remainder.TextAlignLeft, remainder.ColorWhite)
	out := s.String()
	if !strings.Contains(out, "hi") {
		t.Errorf("String() = %q, want the text", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("String() should have one newline between two rows, got %q", out)
	}
}
