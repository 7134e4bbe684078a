package sketch

import (
	"fmt"
	"time"
)

// Config holds the drawing parameters for a single run. Values are fixed once
// the pipeline starts; begin with DefaultConfig and adjust before drawing.
type Config struct {
	RowStride      int           // scan every n-th raster row
	SwipeDuration  time.Duration // duration of a single swipe gesture
	MinLineLength  int           // shortest swipe the device registers, in pixels
	LineInterval   time.Duration // pause after each dispatched gesture
	StartupDelay   time.Duration // pause before the first gesture
	MarginRatio    float64       // horizontal screen margin, fraction of screen width
	MaxHeightRatio float64       // canvas height cap, fraction of screen height
	OffsetXAdjust  int           // x correction for the drawable area
	OffsetYAdjust  int           // y correction for the drawable area
}

// DefaultConfig returns the parameters tuned for common paint apps.
func DefaultConfig() Config {
	return Config{
		RowStride:      5,
		SwipeDuration:  150 * time.Millisecond,
		MinLineLength:  8,
		LineInterval:   200 * time.Millisecond,
		StartupDelay:   2 * time.Second,
		MarginRatio:    0.1,
		MaxHeightRatio: 0.7,
		OffsetXAdjust:  60,
		OffsetYAdjust:  -160,
	}
}

func (c Config) Validate() error {
	if c.RowStride <= 0 {
		return fmt.Errorf("row stride must be positive, got %d", c.RowStride)
	}
	if c.SwipeDuration <= 0 {
		return fmt.Errorf("swipe duration must be positive, got %v", c.SwipeDuration)
	}
	if c.MinLineLength < 0 {
		return fmt.Errorf("minimum line length must be non-negative, got %d", c.MinLineLength)
	}
	if c.MarginRatio < 0 || c.MarginRatio >= 0.5 {
		return fmt.Errorf("margin ratio must be in [0, 0.5), got %v", c.MarginRatio)
	}
	if c.MaxHeightRatio <= 0 || c.MaxHeightRatio > 1 {
		return fmt.Errorf("max height ratio must be in (0, 1], got %v", c.MaxHeightRatio)
	}
	return nil
}
