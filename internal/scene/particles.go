package scene

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
	colorful "github.com/lucasb-eyer/go-colorful"
)

type Particle struct {
	Pos    mgl64.Vec3
	Color  colorful.Color
	Radius float64
}

// Field is the point cloud orbiting the core. Particles are created once and
// mutated in place; the slice is never resized.
type Field struct {
	Particles []Particle
	RotationY float64
}

// NewField samples n particles with a radius uniform in [minR, maxR] and a
// direction uniform on the sphere.
func NewField(rng *rand.Rand, n int, minR, maxR float64) *Field {
	particles := make([]Particle, n)
	for i := range particles {
		radius := minR + rng.Float64()*(maxR-minR)
		theta := rng.Float64() * math.Pi * 2
		phi := math.Acos(2*rng.Float64() - 1)

		pos := fromSpherical(radius, theta, phi)
		// color from the sampled distance
		intensity := 1 - pos.Len()/maxR
		particles[i] = Particle{
			Pos:    pos,
			Radius: radius,
			Color: colorful.Color{
				R: intensity * 0.2,
				G: intensity * 0.8,
				B: intensity,
			},
		}
	}
	return &Field{
		Particles: particles,
	}
}

// Advance rotates the whole field about Y and moves every particle along its
// sphere.
func (f *Field) Advance(speed, rotationStep, azimuthStep, inclinationStep float64) {
	f.RotationY += rotationStep * speed
	dTheta := azimuthStep * speed
	dPhi := inclinationStep * speed
	for i := range f.Particles {
		p := &f.Particles[i]
		p.Pos = orbit(p.Pos, p.Radius, dTheta, dPhi)
	}
}

// orbit advances the azimuth and inclination of pos around the origin while
// keeping its distance at radius.
func orbit(pos mgl64.Vec3, radius, dTheta, dPhi float64) mgl64.Vec3 {
	if radius <= 0 {
		return pos
	}
	cos := pos.Z() / radius
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	theta := math.Atan2(pos.Y(), pos.X()) + dTheta
	phi := math.Acos(cos) + dPhi
	return fromSpherical(radius, theta, phi)
}

func fromSpherical(radius, theta, phi float64) mgl64.Vec3 {
	sinPhi := math.Sin(phi)
	return mgl64.Vec3{
		radius * sinPhi * math.Cos(theta),
		radius * sinPhi * math.Sin(theta),
		radius * math.Cos(phi),
	}
}
