package feed

import (
	"math/rand/v2"
)

const EnergyMax = 100

// Energy is the rolling sample window behind the energy chart.
type Energy struct {
	samples []float64
	window  int
	version uint64
}

// NewEnergy returns a window already filled with window random samples.
func NewEnergy(rng *rand.Rand, window int) *Energy {
	e := &Energy{
		samples: make([]float64, 0, window),
		window:  window,
	}
	for range window {
		e.samples = append(e.samples, rng.Float64()*EnergyMax)
	}
	return e
}

// Tick appends one uniform sample in [0,100] and evicts the oldest beyond the
// window length.
func (e *Energy) Tick(rng *rand.Rand) {
	e.samples = append(e.samples, rng.Float64()*EnergyMax)
	if over := len(e.samples) - e.window; over > 0 {
		copy(e.samples, e.samples[over:])
		e.samples = e.samples[:e.window]
	}
	e.version++
}

// Samples returns a copy of the window, oldest first.
func (e *Energy) Samples() []float64 {
	out := make([]float64, len(e.samples))
	copy(out, e.samples)
	return out
}

func (e *Energy) Len() int {
	return len(e.samples)
}

// Version changes every time the window does.
func (e *Energy) Version() uint64 {
	return e.version
}
