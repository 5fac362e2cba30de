package dashboard

import (
	"math"
	"time"
)

// FPSMeter counts frames in back-to-back windows and publishes the rate once
// per window.
type FPSMeter struct {
	window time.Duration
	frames int
	last   time.Time
	value  int
}

func NewFPSMeter(start time.Time, window time.Duration) FPSMeter {
	return FPSMeter{
		window: window,
		last:   start,
		value:  60,
	}
}

// Tick records a frame at now. It reports true when a new value was
// published.
func (m *FPSMeter) Tick(now time.Time) bool {
	m.frames++
	elapsed := now.Sub(m.last)
	if elapsed < m.window {
		return false
	}
	m.value = int(math.Round(float64(m.frames) * float64(time.Second) / float64(elapsed)))
	m.frames = 0
	m.last = now
	return true
}

func (m *FPSMeter) Value() int {
	return m.value
}
