package sketch

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sketchdroid/sketchcli/utils"
)

// Swiper is the one device capability the sequencer needs.
type Swiper interface {
	Swipe(x1, y1, x2, y2 int, duration time.Duration) error
}

// Stats summarizes a completed drawing run.
type Stats struct {
	SessionID string
	Gestures  int
	Failures  int
	Elapsed   time.Duration
}

// Sequencer turns segments into paced swipe gestures on a device. Exactly one
// gesture is in flight at a time; the device accepts no overlapping touches.
type Sequencer struct {
	dev    Swiper
	mapper Mapper
	cfg    Config
}

func NewSequencer(dev Swiper, mapper Mapper, cfg Config) *Sequencer {
	return &Sequencer{dev: dev, mapper: mapper, cfg: cfg}
}

// Draw consumes the scanner and dispatches one swipe per segment. A failed
// dispatch is logged, counted and skipped; drawing continues with the next
// segment, since a swipe already on the screen cannot be taken back anyway.
func (s *Sequencer) Draw(scanner *Scanner) Stats {
	stats := Stats{SessionID: uuid.New().String()}

	time.Sleep(s.cfg.StartupDelay)
	start := time.Now()

	for seg, ok := scanner.Next(); ok; seg, ok = scanner.Next() {
		from, to := s.mapper.Map(seg)

		// paint apps ignore swipes shorter than the touch slop, stretch them
		if math.Hypot(float64(to.X-from.X), float64(to.Y-from.Y)) < float64(s.cfg.MinLineLength) {
			to.X = from.X + s.cfg.MinLineLength
		}

		utils.Verbose("session %s: swipe (%d,%d) -> (%d,%d)", stats.SessionID, from.X, from.Y, to.X, to.Y)
		if err := s.dev.Swipe(from.X, from.Y, to.X, to.Y, s.cfg.SwipeDuration); err != nil {
			utils.Warn("session %s: swipe (%d,%d) -> (%d,%d) failed: %v", stats.SessionID, from.X, from.Y, to.X, to.Y, err)
			stats.Failures++
		}
		stats.Gestures++
		time.Sleep(s.cfg.LineInterval)
	}

	stats.Elapsed = time.Since(start)
	return stats
}
