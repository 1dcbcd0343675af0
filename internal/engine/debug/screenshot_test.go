package debug

import (
	"image/png"
	"os"
	"testing"
)

func TestFlipToImage(t *testing.T) {
	// 1x2 image: bottom row red, top row blue (GL order, bottom first).
	pixels := []byte{
		255, 0, 0, 255, // row 0 (bottom)
		0, 0, 255, 255, // row 1 (top)
	}
	img := FlipToImage(pixels, 1, 2)

	// After the flip the top image row must be the GL top row (blue).
	r, _, b, _ := img.At(0, 0).RGBA()
	if r != 0 || b != 0xffff {
		t.Errorf("top row = R%d B%d, want blue", r, b)
	}
	r, _, b, _ = img.At(0, 1).RGBA()
	if r != 0xffff || b != 0 {
		t.Errorf("bottom row = R%d B%d, want red", r, b)
	}
}

func TestCaptureFromPixels(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(dir, "test")

	width, height := 4, 3
	pixels := make([]byte, width*height*4)
	for i := range pixels {
		pixels[i] = byte(i)
	}

	path, err := sc.CaptureFromPixels(pixels, width, height)
	if err != nil {
		t.Fatalf("CaptureFromPixels() error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("screenshot file not written: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("screenshot is not a valid PNG: %v", err)
	}
	if img.Bounds().Dx() != width || img.Bounds().Dy() != height {
		t.Errorf("screenshot size = %v, want %dx%d", img.Bounds(), width, height)
	}
}

func TestCaptureFromPixelsSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "test")
	if _, err := sc.CaptureFromPixels(make([]byte, 7), 4, 3); err == nil {
		t.Fatal("CaptureFromPixels() with wrong size returned nil error")
	}
}
