package scene

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// Emitter is a wave source triggered by clicks. It is tracked but not drawn.
type Emitter struct {
	Pos       mgl64.Vec3
	Radius    float64
	MaxRadius float64
	Speed     float64
	Active    bool
}

type EmitterParams struct {
	Count       int
	Probability float64
	Spread      float64
	StartRadius float64
	MaxRadius   float64
	MinSpeed    float64
	MaxSpeed    float64
}

// Emitters is a fixed pool reused for the life of the scene.
type Emitters struct {
	params EmitterParams
	Pool   []Emitter
}

func NewEmitters(rng *rand.Rand, params EmitterParams) *Emitters {
	pool := make([]Emitter, params.Count)
	for i := range pool {
		pool[i] = Emitter{
			Pos: mgl64.Vec3{
				(rng.Float64() - 0.5) * params.Spread,
				(rng.Float64() - 0.5) * params.Spread,
				(rng.Float64() - 0.5) * params.Spread,
			},
			Radius:    params.StartRadius,
			MaxRadius: params.MaxRadius,
			Speed:     params.MinSpeed + rng.Float64()*(params.MaxSpeed-params.MinSpeed),
		}
	}
	return &Emitters{
		params: params,
		Pool:   pool,
	}
}

// Trigger flips an independent coin per emitter and restarts the winners.
// It returns how many were (re)activated.
func (e *Emitters) Trigger(rng *rand.Rand) int {
	n := 0
	for i := range e.Pool {
		if rng.Float64() > 1-e.params.Probability {
			e.Pool[i].Active = true
			e.Pool[i].Radius = e.params.StartRadius
			n++
		}
	}
	return n
}

// Advance grows every active emitter and retires those past their max radius.
func (e *Emitters) Advance() {
	for i := range e.Pool {
		em := &e.Pool[i]
		if !em.Active {
			continue
		}
		em.Radius += em.Speed
		if em.Radius > em.MaxRadius {
			em.Active = false
		}
	}
}

func (e *Emitters) ActiveCount() int {
	n := 0
	for _, em := range e.Pool {
		if em.Active {
			n++
		}
	}
	return n
}
