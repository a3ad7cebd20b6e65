package cmd

import (
	"math"
	"time"
)

const (
	fpsRatio    = 0.01
	fpsInterval = 2 * time.Second
)

// fpsCounter keeps an exponentially smoothed frame rate.
type fpsCounter struct {
	fps       float64
	last      time.Duration
	nextPrint time.Duration
}

func newFPSCounter(expected float64) *fpsCounter {
	return &fpsCounter{fps: expected}
}

// Frame records a frame at timestamp and reports whether the rate is due for
// printing.
func (c *fpsCounter) Frame(timestamp time.Duration) bool {
	delta := timestamp - c.last
	c.last = timestamp

	if delta > 0 {
		c.fps = c.fps*(1-fpsRatio) + (1.0/delta.Seconds())*fpsRatio
	}
	if math.IsInf(c.fps, 0) || math.IsNaN(c.fps) {
		c.fps = 60
	}

	if timestamp >= c.nextPrint {
		c.nextPrint = timestamp + fpsInterval
		return true
	}
	return false
}

func (c *fpsCounter) FPS() float64 {
	return c.fps
}
