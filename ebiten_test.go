package remainder

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

func TestEllipsePoints(t *testing.T) {
	pts := ellipsePoints(100, 50, 40, 20, 4)
	want := []Vec2{{120, 50}, {100, 60}, {80, 50}, {100, 40}}
	if len(pts) != len(want) {
		t.Fatalf("len = %d, want %d", len(pts), len(want))
	}
	for i := range want {
		if math.Abs(pts[i].X-want[i].X) > 1e-9 || math.Abs(pts[i].Y-want[i].Y) > 1e-9 {
			t.Errorf("point %d = %v, want %v", i, pts[i], want[i])
		}
	}
}

func TestEllipsePointsOnCurve(t *testing.T) {
	for i, p := range ellipsePoints(0, 0, 20, 10, ellipseSegments) {
		// (x/a)^2 + (y/b)^2 == 1
		v := (p.X/10)*(p.X/10) + (p.Y/5)*(p.Y/5)
		if math.Abs(v-1) > 1e-9 {
			t.Errorf("point %d off the ellipse: %v", i, v)
		}
	}
}

func TestAppendEllipseFan(t *testing.T) {
	var verts []ebiten.Vertex
	var inds []uint16

	verts, inds = appendEllipseFan(verts, inds, 10, 20, 8, 8, ColorRecipient)
	if len(verts) != ellipseSegments+1 {
		t.Fatalf("verts = %d, want %d", len(verts), ellipseSegments+1)
	}
	if len(inds) != 3*ellipseSegments {
		t.Fatalf("inds = %d, want %d", len(inds), 3*ellipseSegments)
	}

	hub := verts[0]
	if hub.DstX != 10 || hub.DstY != 20 {
		t.Errorf("hub at (%v, %v), want (10, 20)", hub.DstX, hub.DstY)
	}
	if hub.SrcX != 0.5 || hub.SrcY != 0.5 {
		t.Errorf("hub samples (%v, %v), want the white pixel center", hub.SrcX, hub.SrcY)
	}
	if hub.ColorR != float32(ColorRecipient.R) || hub.ColorA != 1 {
		t.Errorf("hub color = (%v, %v), want recipient color", hub.ColorR, hub.ColorA)
	}

	// Last triangle wraps back to the first rim vertex.
	last := inds[len(inds)-3:]
	if last[0] != 0 || last[1] != ellipseSegments || last[2] != 1 {
		t.Errorf("last triangle = %v, want [0 %d 1]", last, ellipseSegments)
	}

	verts, inds = appendEllipseFan(verts, inds, 0, 0, 4, 4, ColorAssigned)
	base := uint16(ellipseSegments + 1)
	second := inds[3*ellipseSegments:]
	if second[0] != base || second[1] != base+1 || second[2] != base+2 {
		t.Errorf("second fan first triangle = %v, want offset by %d", second[:3], base)
	}
	if len(verts) != 2*(ellipseSegments+1) {
		t.Errorf("verts = %d after two fans", len(verts))
	}
}

func TestCanvasPixels(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{400, 400},
		{280.2, 281},
		{0, 1},
		{-3, 1},
	}
	for _, tt := range tests {
		if got := canvasPixels(tt.in); got != tt.want {
			t.Errorf("canvasPixels(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPrimaryAlign(t *testing.T) {
	tests := []struct {
		in   TextAlign
		want text.Align
	}{
		{TextAlignLeft, text.AlignStart},
		{TextAlignCenter, text.AlignCenter},
		{TextAlignRight, text.AlignEnd},
	}
	for _, tt := range tests {
		if got := primaryAlign(tt.in); got != tt.want {
			t.Errorf("primaryAlign(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
