package level

import (
	"time"

	"github.com/milk9111/junkfoodwar/physics"
)

// FrameClock measures the time between ticks. The first tick has nothing to
// measure against and yields no step.
type FrameClock struct {
	last    time.Time
	started bool
}

// Delta returns the elapsed seconds since the previous call, capped at
// physics.MaxStep. ok is false when no step should run.
func (c *FrameClock) Delta(now time.Time) (dt float64, ok bool) {
	if !c.started {
		c.started = true
		c.last = now
		return 0, false
	}
	elapsed := now.Sub(c.last).Seconds()
	c.last = now
	if elapsed <= 0 {
		return 0, false
	}
	if elapsed > physics.MaxStep {
		elapsed = physics.MaxStep
	}
	return elapsed, true
}

func (c *FrameClock) Reset() {
	c.started = false
	c.last = time.Time{}
}
