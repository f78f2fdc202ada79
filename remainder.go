package remainder

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when a backend converts it for drawing.
type Color struct {
	R, G, B, A float64
}

// RGB8 builds an opaque Color from 8-bit channel values.
func RGB8(r, g, b uint8) Color {
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: 1}
}

// ColorWhite is used for recipient index labels.
var ColorWhite = Color{1, 1, 1, 1}

// Palette used by the animator.
var (
	ColorBackground = RGB8(20, 25, 50)
	ColorTitle      = RGB8(100, 212, 255)
	ColorAssigned   = RGB8(100, 212, 255) // item after it has been dealt
	ColorUnassigned = RGB8(251, 191, 36)  // item still waiting on the grid
	ColorStem       = RGB8(139, 69, 19)
	ColorRecipient  = RGB8(168, 85, 247)
	ColorTally      = RGB8(100, 212, 255)
	ColorSummary    = RGB8(34, 197, 94)
)

// RGBA converts c to a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// Hex returns the color as "#rrggbb", ignoring alpha.
func (c Color) Hex() string {
	return colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}.Hex()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D point in canvas units. The origin is the top-left corner with
// Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Lerp returns the point a fraction t of the way from v to to.
func (v Vec2) Lerp(to Vec2, t float64) Vec2 {
	return Vec2{X: v.X + (to.X-v.X)*t, Y: v.Y + (to.Y-v.Y)*t}
}

// TextAlign controls horizontal text alignment around the anchor point.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // anchor is the left edge
	TextAlignCenter                  // anchor is the horizontal center
	TextAlignRight                   // anchor is the right edge
)

// String returns the alignment name.
func (a TextAlign) String() string {
	switch a {
	case TextAlignLeft:
		return "left"
	case TextAlignCenter:
		return "center"
	case TextAlignRight:
		return "right"
	default:
		return "unknown"
	}
}
