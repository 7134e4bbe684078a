package sketch

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGeometry is returned when an image cannot be fitted to a screen.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Layout describes where the scaled canvas sits on the device screen.
type Layout struct {
	CanvasWidth  int
	CanvasHeight int
	MarginPx     int
	Scale        float64
}

// FitToScreen computes the canvas size and horizontal margin for drawing an
// image of the given source dimensions on the given screen. The image is
// scaled to the screen width minus margins; if that makes it taller than
// MaxHeightRatio allows, it is scaled down to the height cap and re-centered.
func FitToScreen(srcWidth, srcHeight, screenWidth, screenHeight int, cfg Config) (Layout, error) {
	if srcWidth <= 0 || srcHeight <= 0 {
		return Layout{}, fmt.Errorf("%w: source image is %dx%d", ErrInvalidGeometry, srcWidth, srcHeight)
	}
	if screenWidth <= 0 || screenHeight <= 0 {
		return Layout{}, fmt.Errorf("%w: screen is %dx%d", ErrInvalidGeometry, screenWidth, screenHeight)
	}

	marginPx := int(float64(screenWidth) * cfg.MarginRatio)
	canvasWidth := screenWidth - 2*marginPx
	scale := float64(canvasWidth) / float64(srcWidth)
	canvasHeight := int(math.Round(float64(srcHeight) * scale))

	maxHeight := float64(screenHeight) * cfg.MaxHeightRatio
	if float64(canvasHeight) > maxHeight {
		scale = maxHeight / float64(srcHeight)
		canvasHeight = int(math.Round(float64(srcHeight) * scale))
		canvasWidth = int(math.Round(float64(srcWidth) * scale))
		marginPx = (screenWidth - canvasWidth) / 2
	}

	if canvasWidth <= 0 || canvasHeight <= 0 {
		return Layout{}, fmt.Errorf("%w: canvas came out %dx%d for a %dx%d image on a %dx%d screen",
			ErrInvalidGeometry, canvasWidth, canvasHeight, srcWidth, srcHeight, screenWidth, screenHeight)
	}

	return Layout{
		CanvasWidth:  canvasWidth,
		CanvasHeight: canvasHeight,
		MarginPx:     marginPx,
		Scale:        scale,
	}, nil
}
