package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a perspective camera that always aims at the world origin.
type Camera struct {
	Pos    mgl64.Vec3
	FOV    float64 // degrees
	Near   float64
	Far    float64
	Aspect float64
	Easing float64
}

// Follow eases the camera toward the mouse target. y is inverted so moving the
// pointer down lowers the view.
func (c *Camera) Follow(mouseX, mouseY float64) {
	c.Pos[0] += (mouseX - c.Pos[0]) * c.Easing
	c.Pos[1] += (-mouseY - c.Pos[1]) * c.Easing
}

func (c *Camera) SetAspect(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float64(width) / float64(height)
}

func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Pos, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0})
}

func (c *Camera) Projection() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// Projector maps world points to screen pixels for one frame.
type Projector struct {
	viewProj mgl64.Mat4
	eye      mgl64.Vec3
	focal    float64
	width    float64
	height   float64
}

func (c *Camera) Projector(width, height int) Projector {
	return Projector{
		viewProj: c.Projection().Mul4(c.View()),
		eye:      c.Pos,
		focal:    1 / math.Tan(mgl64.DegToRad(c.FOV)/2),
		width:    float64(width),
		height:   float64(height),
	}
}

// Project returns the screen position of p, its distance from the eye, and
// whether it lies inside the view frustum depth range.
func (p Projector) Project(world mgl64.Vec3) (x, y, dist float64, ok bool) {
	clip := p.viewProj.Mul4x1(world.Vec4(1))
	w := clip.W()
	if w <= 0 {
		return 0, 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / w)
	if ndc.Z() < -1 || ndc.Z() > 1 {
		return 0, 0, 0, false
	}
	x = (ndc.X() + 1) * 0.5 * p.width
	y = (1 - ndc.Y()) * 0.5 * p.height
	return x, y, world.Sub(p.eye).Len(), true
}

// Scale returns the on-screen size of a world-space length seen at dist.
func (p Projector) Scale(length, dist float64) float64 {
	if dist <= 0 {
		return 0
	}
	return length * p.focal * p.height / 2 / dist
}
