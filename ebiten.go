package remainder

import (
	"bytes"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// ellipseSegments is the number of edges used to approximate an ellipse.
const ellipseSegments = 32

// whitePixel is the 1x1 source image for untextured triangles. Created on
// first use so importing the package does not touch the graphics driver.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.RGBA())
	}
	return whitePixel
}

// ebitenCanvas is the Canvas handle backed by an offscreen image.
type ebitenCanvas struct {
	img *ebiten.Image
}

func (c *ebitenCanvas) Size() (w, h float64) {
	b := c.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// EbitenSurface draws onto an offscreen *ebiten.Image. Shapes are filled
// triangle fans, text uses the Go Regular font through text/v2.
type EbitenSurface struct {
	canvas *ebitenCanvas
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace

	verts []ebiten.Vertex
	inds  []uint16
}

// NewEbitenSurface loads the bundled font and returns a surface with no
// canvas. The animator creates the canvas during Setup.
func NewEbitenSurface() (*EbitenSurface, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("remainder: failed to parse TTF data: %w", err)
	}
	return &EbitenSurface{
		source: source,
		faces:  make(map[float64]*text.GoTextFace),
	}, nil
}

// Image returns the canvas image, or nil before CreateCanvas.
func (s *EbitenSurface) Image() *ebiten.Image {
	if s.canvas == nil {
		return nil
	}
	return s.canvas.img
}

func (s *EbitenSurface) CreateCanvas(w, h float64) Canvas {
	s.canvas = &ebitenCanvas{img: ebiten.NewImage(canvasPixels(w), canvasPixels(h))}
	return s.canvas
}

// ResizeCanvas replaces the canvas image. The old content is dropped; the
// next frame repaints everything.
func (s *EbitenSurface) ResizeCanvas(w, h float64) {
	if s.canvas == nil {
		return
	}
	old := s.canvas.img
	s.canvas.img = ebiten.NewImage(canvasPixels(w), canvasPixels(h))
	old.Deallocate()
}

func canvasPixels(v float64) int {
	return max(1, int(math.Ceil(v)))
}

func (s *EbitenSurface) ClearBackground(c Color) {
	if s.canvas == nil {
		return
	}
	s.canvas.img.Fill(c.RGBA())
}

func (s *EbitenSurface) DrawFilledEllipse(x, y, w, h float64, c Color) {
	if s.canvas == nil {
		return
	}
	s.verts, s.inds = appendEllipseFan(s.verts[:0], s.inds[:0], x, y, w, h, c)
	var op ebiten.DrawTrianglesOptions
	op.AntiAlias = true
	s.canvas.img.DrawTriangles(s.verts, s.inds, ensureWhitePixel(), &op)
}

func (s *EbitenSurface) DrawFilledRect(x, y, w, h float64, c Color) {
	if s.canvas == nil {
		return
	}
	vector.DrawFilledRect(s.canvas.img, float32(x), float32(y), float32(w), float32(h), c.RGBA(), false)
}

func (s *EbitenSurface) DrawText(str string, x, y, size float64, align TextAlign, c Color) {
	if s.canvas == nil {
		return
	}
	face := s.face(size)
	op := &text.DrawOptions{}
	// text/v2 positions the top of the line box; shift so y is the baseline.
	op.GeoM.Translate(x, y-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(c.RGBA())
	op.PrimaryAlign = primaryAlign(align)
	text.Draw(s.canvas.img, str, face, op)
}

func (s *EbitenSurface) face(size float64) *text.GoTextFace {
	if f, ok := s.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: s.source, Size: size}
	s.faces[size] = f
	return f
}

func primaryAlign(a TextAlign) text.Align {
	switch a {
	case TextAlignCenter:
		return text.AlignCenter
	case TextAlignRight:
		return text.AlignEnd
	default:
		return text.AlignStart
	}
}

// ellipsePoints returns n points on the outline of the ellipse centered at
// (x, y) with diameters w and h, starting at angle zero.
func ellipsePoints(x, y, w, h float64, n int) []Vec2 {
	pts := make([]Vec2, n)
	for i := range pts {
		angle := float64(i) * 2 * math.Pi / float64(n)
		pts[i] = Vec2{
			X: x + math.Cos(angle)*w/2,
			Y: y + math.Sin(angle)*h/2,
		}
	}
	return pts
}

// appendEllipseFan appends a fan-triangulated ellipse to verts and inds.
// Vertex 0 is the hub; every vertex samples the center of the white pixel and
// carries the fill color.
func appendEllipseFan(verts []ebiten.Vertex, inds []uint16, x, y, w, h float64, c Color) ([]ebiten.Vertex, []uint16) {
	base := uint16(len(verts))
	r, g, b, a := float32(c.R), float32(c.G), float32(c.B), float32(c.A)
	vertex := func(px, py float64) ebiten.Vertex {
		return ebiten.Vertex{
			DstX: float32(px), DstY: float32(py),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		}
	}

	verts = append(verts, vertex(x, y))
	for _, p := range ellipsePoints(x, y, w, h, ellipseSegments) {
		verts = append(verts, vertex(p.X, p.Y))
	}
	for i := uint16(0); i < ellipseSegments; i++ {
		next := (i+1)%ellipseSegments + 1
		inds = append(inds, base, base+i+1, base+next)
	}
	return verts, inds
}
