package tilt

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled capture of the next drawn frame. The PNG is
// written to ScreenshotDir as <timestamp>_<update>_<label>.png. Test scripts
// use the "screenshot" action to record the pose at a given step.
func (s *Scene) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

// flushScreenshots writes every queued capture of screen. Called at the end
// of Scene.Draw.
func (s *Scene) flushScreenshots(screen *ebiten.Image) {
	if len(s.screenshotQueue) == 0 {
		return
	}
	defer func() { s.screenshotQueue = s.screenshotQueue[:0] }()

	dir := s.ScreenshotDir
	if dir == "" {
		dir = "screenshots"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[tilt] screenshot: mkdir %s: %v\n", dir, err)
		return
	}

	img := unpremultiply(screen)
	stamp := time.Now().Format("20060102_150405")
	for _, label := range s.screenshotQueue {
		name := fmt.Sprintf("%s_%04d_%s.png", stamp, s.updates, sanitizeLabel(label))
		if err := writePNG(filepath.Join(dir, name), img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[tilt] screenshot: %v\n", err)
		}
	}
}

// unpremultiply reads the screen into a straight-alpha image.
func unpremultiply(screen *ebiten.Image) *image.NRGBA {
	b := screen.Bounds()
	w, h := b.Dx(), b.Dy()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	screen.ReadPixels(img.Pix)
	for i := 0; i < len(img.Pix); i += 4 {
		a := img.Pix[i+3]
		if a == 0 || a == 255 {
			continue
		}
		for c := 0; c < 3; c++ {
			img.Pix[i+c] = uint8(min(int(img.Pix[i+c])*255/int(a), 255))
		}
	}
	return img
}

// writePNG encodes img to a PNG file at path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps letters, digits, '-' and '.', replaces everything else
// with '_', and names an empty label "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		default:
			return '_'
		}
	}, label)
}
