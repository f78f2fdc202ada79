package remainder

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultScreenshotDir is where Game writes screenshots unless configured.
const DefaultScreenshotDir = "screenshots"

// Screenshot queues a labeled capture of the canvas. It is taken at the end
// of the next Draw and written to the screenshot directory as a PNG with a
// timestamped file name.
func (g *Game) Screenshot(label string) {
	g.shots = append(g.shots, label)
}

// flushScreenshots captures img for every queued label.
func (g *Game) flushScreenshots(img *ebiten.Image) {
	if len(g.shots) == 0 || img == nil {
		return
	}
	defer func() { g.shots = g.shots[:0] }()

	if err := os.MkdirAll(g.screenshotDir, 0o755); err != nil {
		g.logger.Error("screenshot", "dir", g.screenshotDir, "err", err)
		return
	}

	b := img.Bounds()
	pixels := make([]byte, 4*b.Dx()*b.Dy())
	img.ReadPixels(pixels)
	nrgba := unpremultiply(pixels, b.Dx(), b.Dy())

	stamp := time.Now().Format("20060102_150405")
	st := g.animator.State()
	total := g.animator.Config().TotalItems
	for _, label := range g.shots {
		path := filepath.Join(g.screenshotDir, screenshotName(stamp, label, g.animator.Phase(), st.Next, total))
		if err := writePNG(path, nrgba); err != nil {
			g.logger.Error("screenshot", "err", err)
			continue
		}
		g.logger.Info("screenshot", "path", path)
	}
}

// unpremultiply converts premultiplied RGBA pixels to a straight-alpha image.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// screenshotName names a capture after the moment it shows, e.g.
// "20260101_120000_done_complete_10of10.png".
func screenshotName(stamp, label string, phase Phase, dealt, total int) string {
	return fmt.Sprintf("%s_%s_%s_%dof%d.png", stamp, sanitizeLabel(label), phase, dealt, total)
}

// writePNG encodes img to a new file at path.
func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("remainder: screenshot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("remainder: encode screenshot: %w", err)
	}
	return nil
}

// sanitizeLabel keeps ASCII letters, digits, '-' and '.' and maps every other
// rune to '_'. Blank labels become "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		if r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '.') {
			return r
		}
		return '_'
	}, label)
}
