// Package ui holds the control panel widgets. It only does geometry and
// state; drawing lives with the renderer.
package ui

import "math"

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Pointer is the mouse state sampled once per frame.
type Pointer struct {
	X, Y         float64
	Down         bool
	JustPressed  bool
	JustReleased bool
}

// Button fires on release when both press and release happen inside it.
type Button struct {
	Rect
	Label   string
	hovered bool
	pressed bool
}

func (b *Button) Update(p Pointer) (clicked bool) {
	b.hovered = b.Contains(p.X, p.Y)
	if b.hovered && p.JustPressed {
		b.pressed = true
	}
	if p.JustReleased {
		clicked = b.pressed && b.hovered
		b.pressed = false
	}
	return clicked
}

func (b *Button) Hovered() bool { return b.hovered }
func (b *Button) Pressed() bool { return b.pressed }

// Slider maps a horizontal drag to a value in [Min, Max], snapped to Step.
type Slider struct {
	Rect
	Label    string
	Min, Max float64
	Step     float64
	Value    float64
	dragging bool
}

func (s *Slider) Update(p Pointer) (changed bool) {
	if p.JustPressed && s.Contains(p.X, p.Y) {
		s.dragging = true
	}
	if s.dragging && (p.Down || p.JustPressed) {
		v := s.valueAt(p.X)
		if v != s.Value {
			s.Value = v
			changed = true
		}
	}
	if p.JustReleased || !p.Down && !p.JustPressed {
		s.dragging = false
	}
	return changed
}

func (s *Slider) Dragging() bool { return s.dragging }

// Fraction is the knob position in [0,1].
func (s *Slider) Fraction() float64 {
	if s.Max == s.Min {
		return 0
	}
	return clamp01((s.Value - s.Min) / (s.Max - s.Min))
}

func (s *Slider) valueAt(x float64) float64 {
	f := 0.0
	if s.W > 0 {
		f = clamp01((x - s.X) / s.W)
	}
	v := s.Min + f*(s.Max-s.Min)
	if s.Step > 0 {
		v = s.Min + math.Round((v-s.Min)/s.Step)*s.Step
	}
	return v
}

type Checkbox struct {
	Button
	Checked bool
}

func (c *Checkbox) Update(p Pointer) (toggled bool) {
	if c.Button.Update(p) {
		c.Checked = !c.Checked
		return true
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
