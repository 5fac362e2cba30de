package dashboard

import (
	"math"
	"math/rand/v2"
	"time"
)

// Star is a background point. X and Y are fractions of the viewport.
type Star struct {
	X, Y    float64
	Size    float64
	Opacity float64
	Period  time.Duration
	Low     float64
	High    float64
}

func newStars(rng *rand.Rand, n int) []Star {
	stars := make([]Star, n)
	for i := range stars {
		stars[i] = Star{
			X:       rng.Float64(),
			Y:       rng.Float64(),
			Size:    rng.Float64() * 2,
			Opacity: rng.Float64()*0.7 + 0.3,
			Period:  time.Duration((rng.Float64()*5 + 3) * float64(time.Second)),
			Low:     rng.Float64()*0.5 + 0.3,
			High:    rng.Float64()*0.8 + 0.2,
		}
	}
	return stars
}

// Alpha is the twinkle opacity at elapsed time t. The animation runs Low to
// High over one period and back over the next.
func (s Star) Alpha(t time.Duration) float64 {
	if s.Period <= 0 {
		return s.Opacity
	}
	phase := math.Mod(float64(t)/float64(s.Period), 2)
	if phase > 1 {
		phase = 2 - phase
	}
	return s.Opacity * (s.Low + (s.High-s.Low)*phase)
}
