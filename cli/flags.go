package cli

import "time"

var (
	verbose bool

	// all commands
	deviceId string

	// for draw command
	drawImagePath     string
	drawRowStride     int
	drawSwipeDuration time.Duration
	drawLineInterval  time.Duration
)
