package sketch

import (
	"image"
	"image/color"
	"testing"
)

// uniformImage returns a w x h image filled with a single gray level.
func uniformImage(w, h int, level uint8) image.Image {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = level
	}
	return img
}

// halfAndHalfImage returns a w x h image whose left half is dark and right
// half is light.
func halfAndHalfImage(w, h int, dark, light uint8) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			level := dark
			if x >= w/2 {
				level = light
			}
			img.Set(x, y, color.Gray{Y: level})
		}
	}
	return img
}

func TestBinarize_Dimensions(t *testing.T) {
	raster := Binarize(uniformImage(7, 3, 128), 20, 10)
	if raster.Width != 20 || raster.Height != 10 {
		t.Errorf("raster is %dx%d, want 20x10", raster.Width, raster.Height)
	}
}

func TestBinarize_SeparatesDarkFromLight(t *testing.T) {
	raster := Binarize(halfAndHalfImage(10, 10, 0, 255), 10, 10)

	// stay clear of the boundary between the halves
	for y := 0; y < raster.Height; y++ {
		for x := 0; x < 4; x++ {
			if !raster.Foreground(x, y) {
				t.Fatalf("dark sample (%d,%d) should be foreground", x, y)
			}
		}
		for x := 6; x < raster.Width; x++ {
			if raster.Foreground(x, y) {
				t.Fatalf("light sample (%d,%d) should be background", x, y)
			}
		}
	}
}

func TestBinarize_UniformBlackIsAllForeground(t *testing.T) {
	raster := Binarize(uniformImage(5, 5, 0), 5, 5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if !raster.Foreground(x, y) {
				t.Fatalf("sample (%d,%d) should be foreground", x, y)
			}
		}
	}
}

func TestBinarize_UniformLightIsAllBackground(t *testing.T) {
	raster := Binarize(uniformImage(5, 5, 200), 5, 5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if raster.Foreground(x, y) {
				t.Fatalf("sample (%d,%d) should be background", x, y)
			}
		}
	}
}

func TestBinarize_Deterministic(t *testing.T) {
	src := halfAndHalfImage(16, 16, 30, 220)
	a := Binarize(src, 16, 16)
	b := Binarize(src, 16, 16)

	if a.Threshold != b.Threshold {
		t.Fatalf("thresholds differ: %d vs %d", a.Threshold, b.Threshold)
	}
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if a.Foreground(x, y) != b.Foreground(x, y) {
				t.Fatalf("rasters differ at (%d,%d)", x, y)
			}
		}
	}
}

func TestOtsuThreshold_Bimodal(t *testing.T) {
	var hist [256]int
	hist[20] = 100
	hist[200] = 100

	threshold := otsuThreshold(hist, 200)
	if threshold < 20 || threshold >= 200 {
		t.Errorf("threshold = %d, want a value separating 20 from 200", threshold)
	}
}
