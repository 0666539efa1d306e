package loaders

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadImageDecodesPNG(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.png")

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255}) // top-left: white
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})     // top-right: red
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})     // bottom-left: green
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})     // bottom-right: blue

	f, err := os.Create(testFile)
	if err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		t.Fatalf("failed to encode PNG: %v", err)
	}
	f.Close()

	loaded, err := LoadImage(testFile)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}

	// Sample the corners (v=0 is the top row; texture.Image flips v on
	// sample, so pass v accordingly).
	checkColor := func(name string, u, v, r, g, b float64) {
		const tolerance = 0.05
		got := loaded.Sample(u, v)
		want := [3]float64{r, g, b}
		if abs(got.X-want[0]) > tolerance || abs(got.Y-want[1]) > tolerance || abs(got.Z-want[2]) > tolerance {
			t.Errorf("%s: sample(%v,%v) = %v, want ~%v", name, u, v, got, want)
		}
	}

	checkColor("top-left (white)", 0.25, 0.75, 1, 1, 1)
	checkColor("top-right (red)", 0.75, 0.75, 1, 0, 0)
	checkColor("bottom-left (green)", 0.25, 0.25, 0, 1, 0)
	checkColor("bottom-right (blue)", 0.75, 0.25, 0, 0, 1)
}

func TestLoadImageNotFound(t *testing.T) {
	if _, err := LoadImage("nonexistent.png"); err == nil {
		t.Error("expected error for non-existent file, got nil")
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
