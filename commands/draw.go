package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/sketchdroid/sketchcli/sketch"
	"github.com/sketchdroid/sketchcli/utils"
)

// DrawRequest represents the parameters for a draw command
type DrawRequest struct {
	DeviceID      string        `json:"deviceId"`
	ImagePath     string        `json:"imagePath,omitempty"` // empty: search the working directory
	RowStride     int           `json:"rowStride,omitempty"`
	SwipeDuration time.Duration `json:"swipeDuration,omitempty"`
	LineInterval  time.Duration `json:"lineInterval,omitempty"`
}

// DrawResponse reports what was drawn and how it went.
type DrawResponse struct {
	SessionID    string `json:"sessionId"`
	ImagePath    string `json:"imagePath"`
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	CanvasWidth  int    `json:"canvasWidth"`
	CanvasHeight int    `json:"canvasHeight"`
	Threshold    int    `json:"threshold"`
	Gestures     int    `json:"gestures"`
	Failures     int    `json:"failures,omitempty"`
	Elapsed      string `json:"elapsed"`
}

// DrawCommand renders an image onto the device's drawing app as a sequence of
// swipe gestures. The device must already show an empty canvas.
func DrawCommand(req DrawRequest) *CommandResponse {
	cfg := sketch.DefaultConfig()
	if req.RowStride > 0 {
		cfg.RowStride = req.RowStride
	}
	if req.SwipeDuration > 0 {
		cfg.SwipeDuration = req.SwipeDuration
	}
	if req.LineInterval > 0 {
		cfg.LineInterval = req.LineInterval
	}
	if err := cfg.Validate(); err != nil {
		return NewErrorResponse(err)
	}

	// resolve and decode the image before touching the device
	imagePath := req.ImagePath
	if imagePath == "" {
		dir, err := os.Getwd()
		if err != nil {
			return NewErrorResponse(err)
		}
		imagePath, err = sketch.FindImage(dir)
		if err != nil {
			return NewErrorResponse(err)
		}
	}

	img, err := sketch.LoadImage(imagePath)
	if err != nil {
		return NewErrorResponse(err)
	}

	targetDevice, err := FindDeviceOrAutoSelect(req.DeviceID)
	if err != nil {
		return NewErrorResponse(fmt.Errorf("error finding device: %v", err))
	}

	size, err := targetDevice.ScreenSize()
	if err != nil {
		return NewErrorResponse(fmt.Errorf("failed to get screen size for device %s: %v", targetDevice.ID(), err))
	}

	bounds := img.Bounds()
	layout, err := sketch.FitToScreen(bounds.Dx(), bounds.Dy(), size.Width, size.Height, cfg)
	if err != nil {
		return NewErrorResponse(err)
	}

	raster := sketch.Binarize(img, layout.CanvasWidth, layout.CanvasHeight)

	utils.Info("drawing %s as a %dx%d canvas on device %s (%dx%d), stride %d, threshold %d",
		imagePath, layout.CanvasWidth, layout.CanvasHeight,
		targetDevice.ID(), size.Width, size.Height, cfg.RowStride, raster.Threshold)

	mapper := sketch.NewMapper(layout, size.Height, cfg)
	sequencer := sketch.NewSequencer(targetDevice, mapper, cfg)
	stats := sequencer.Draw(sketch.NewScanner(raster, cfg.RowStride))

	utils.Info("session %s: drew %d gestures (%d failed) in %v",
		stats.SessionID, stats.Gestures, stats.Failures, stats.Elapsed.Round(time.Millisecond))

	return NewSuccessResponse(DrawResponse{
		SessionID:    stats.SessionID,
		ImagePath:    imagePath,
		ScreenWidth:  size.Width,
		ScreenHeight: size.Height,
		CanvasWidth:  layout.CanvasWidth,
		CanvasHeight: layout.CanvasHeight,
		Threshold:    int(raster.Threshold),
		Gestures:     stats.Gestures,
		Failures:     stats.Failures,
		Elapsed:      stats.Elapsed.Round(time.Millisecond).String(),
	})
}
