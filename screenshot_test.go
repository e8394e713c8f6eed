package tilt

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"rest", "rest"},
		{"after-sweep", "after-sweep"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"special!@#", "special___"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueue(t *testing.T) {
	s := NewScene(10, 10)
	if s.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", s.ScreenshotDir, "screenshots")
	}
	s.Screenshot("a")
	s.Screenshot("b")
	if len(s.screenshotQueue) != 2 || s.screenshotQueue[0] != "a" || s.screenshotQueue[1] != "b" {
		t.Errorf("queue = %v, want [a b]", s.screenshotQueue)
	}
}

func TestScreenshotAction(t *testing.T) {
	s := NewScene(10, 10)
	r, err := LoadTestScript([]byte(`{"steps": [{"action": "screenshot", "label": "rest"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	r.step(s)
	if len(s.screenshotQueue) != 1 || s.screenshotQueue[0] != "rest" {
		t.Errorf("queue = %v, want [rest]", s.screenshotQueue)
	}
}

func TestWritePNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(1, 1, color.NRGBA{R: 255, A: 128})
	path := filepath.Join(t.TempDir(), "out.png")
	if err := writePNG(path, img); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if got.Bounds() != img.Bounds() {
		t.Errorf("bounds = %v, want %v", got.Bounds(), img.Bounds())
	}

	if err := writePNG(filepath.Join(t.TempDir(), "missing", "out.png"), img); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
