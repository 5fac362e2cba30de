// Package scene owns the 3-D state of the dashboard: camera, core, particle
// field and wave emitters. Step is a pure function of that state and the
// current control values; nothing here touches a graphics context.
package scene

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/JahanzaibJameel/Hyper-Reactive-Universe-Dashboard/internal/config"
)

type Scene struct {
	Camera   Camera
	Core     Core
	Field    *Field
	Emitters *Emitters
}

// Input is what the frame reads from the control panel and pointer.
type Input struct {
	ParticleSpeed     float64
	CoreRotationSpeed float64
	MouseX, MouseY    float64
}

func New(rng *rand.Rand, cfg config.Config, width, height int) *Scene {
	s := &Scene{
		Camera: Camera{
			Pos:    mgl64.Vec3{0, 0, config.CameraDistance},
			FOV:    config.CameraFOV,
			Near:   config.CameraNear,
			Far:    config.CameraFar,
			Easing: config.CameraEasing,
		},
		Core: Core{
			Radius: config.CoreRadius,
		},
		Field: NewField(rng, cfg.Particles.Count, cfg.Particles.MinRadius, cfg.Particles.MaxRadius),
		Emitters: NewEmitters(rng, EmitterParams{
			Count:       cfg.Emitters.Count,
			Probability: cfg.Emitters.Probability,
			Spread:      cfg.Emitters.Spread,
			StartRadius: cfg.Emitters.StartRadius,
			MaxRadius:   cfg.Emitters.MaxRadius,
			MinSpeed:    cfg.Emitters.MinSpeed,
			MaxSpeed:    cfg.Emitters.MaxSpeed,
		}),
	}
	s.Camera.SetAspect(width, height)
	return s
}

// Step advances the scene by one frame, in a fixed order.
func (s *Scene) Step(in Input) {
	s.Core.Advance(in.CoreRotationSpeed)
	s.Field.Advance(in.ParticleSpeed,
		config.FieldRotationStep, config.AzimuthStep, config.InclinationStep)
	s.Camera.Follow(in.MouseX, in.MouseY)
	s.Emitters.Advance()
}
