package sketch

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Raster is a two-level image. Each sample is either foreground (ink) or
// background; the split point is the Otsu threshold picked at construction.
type Raster struct {
	Width     int
	Height    int
	Threshold uint8
	pix       []bool
}

// Foreground reports whether the sample at (x, y) is ink.
func (r *Raster) Foreground(x, y int) bool {
	return r.pix[y*r.Width+x]
}

// Binarize scales src to width x height, reduces it to luminance and splits it
// into foreground and background around the threshold that maximizes
// between-class variance over the intensity histogram. Samples at or below the
// threshold are foreground. The result depends only on the pixel values, not
// on scan order.
func Binarize(src image.Image, width, height int) *Raster {
	gray := image.NewGray(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(gray, gray.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	var hist [256]int
	for _, p := range gray.Pix {
		hist[p]++
	}
	threshold := otsuThreshold(hist, width*height)

	r := &Raster{
		Width:     width,
		Height:    height,
		Threshold: threshold,
		pix:       make([]bool, width*height),
	}
	for i, p := range gray.Pix {
		r.pix[i] = p <= threshold
	}
	return r
}

// otsuThreshold picks the intensity t that maximizes the between-class
// variance of the two classes [0..t] and [t+1..255]. A zero-variance
// histogram leaves the threshold at 0.
func otsuThreshold(hist [256]int, total int) uint8 {
	var sum float64
	for i, count := range hist {
		sum += float64(i * count)
	}

	var sumB, weightB, maxVariance float64
	var threshold uint8
	for t := 0; t < 256; t++ {
		weightB += float64(hist[t])
		if weightB == 0 {
			continue
		}
		weightF := float64(total) - weightB
		if weightF == 0 {
			break
		}
		sumB += float64(t * hist[t])
		meanB := sumB / weightB
		meanF := (sum - sumB) / weightF
		variance := weightB * weightF * (meanB - meanF) * (meanB - meanF)
		if variance > maxVariance {
			maxVariance = variance
			threshold = uint8(t)
		}
	}
	return threshold
}
