package remainder

// Surface is the 2D drawing target the animator renders onto. Ellipses are
// centered on (x, y); rectangles start at their top-left corner; text is
// anchored on its baseline at y and aligned horizontally around x.
//
// The animator issues only these calls. Failures inside a Surface are the
// host's concern.
type Surface interface {
	ClearBackground(c Color)
	DrawFilledEllipse(x, y, w, h float64, c Color)
	DrawFilledRect(x, y, w, h float64, c Color)
	DrawText(s string, x, y, size float64, align TextAlign, c Color)
	CreateCanvas(w, h float64) Canvas
	ResizeCanvas(w, h float64)
}

// Canvas is the handle returned by Surface.CreateCanvas.
type Canvas interface {
	Size() (w, h float64)
}
