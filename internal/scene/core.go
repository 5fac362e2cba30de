package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Core is the central sphere. Only its orientation changes per frame.
type Core struct {
	Radius    float64
	RotationX float64
	RotationY float64
}

func (c *Core) Advance(speed float64) {
	c.RotationX += speed
	c.RotationY += speed
}

// Orientation returns the rotation matrix applying X then Y.
func (c *Core) Orientation() mgl64.Mat3 {
	return mgl64.Rotate3DY(c.RotationY).Mul3(mgl64.Rotate3DX(c.RotationX))
}

// Wireframe returns latitude and longitude rings of a unit sphere, each as a
// closed polyline of segments points.
func Wireframe(lat, lon, segments int) [][]mgl64.Vec3 {
	rings := make([][]mgl64.Vec3, 0, lat+lon)
	for i := 1; i < lat; i++ {
		phi := math.Pi * float64(i) / float64(lat)
		ring := make([]mgl64.Vec3, segments+1)
		for j := 0; j <= segments; j++ {
			theta := 2 * math.Pi * float64(j) / float64(segments)
			ring[j] = fromSpherical(1, theta, phi)
		}
		rings = append(rings, ring)
	}
	for i := 0; i < lon; i++ {
		theta := 2 * math.Pi * float64(i) / float64(lon)
		ring := make([]mgl64.Vec3, segments+1)
		for j := 0; j <= segments; j++ {
			phi := math.Pi * float64(j) / float64(segments)
			ring[j] = fromSpherical(1, theta, phi)
		}
		rings = append(rings, ring)
	}
	return rings
}
