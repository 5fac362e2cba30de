package ui

// Panel is the dashboard control panel: two sliders, one button per theme, a
// sound checkbox and the neural mode toggle.
type Panel struct {
	Bounds         Rect
	ParticleSlider Slider
	RotationSlider Slider
	ThemeButtons   []Button
	Sound          Checkbox
	Neural         Button
}

// Events is what one frame of pointer input did to the panel.
type Events struct {
	ParticleChanged bool
	RotationChanged bool
	Theme           string
	SoundToggled    bool
	NeuralToggled   bool
	// Consumed is set when the pointer press landed on the panel, so it must
	// not also count as a scene click.
	Consumed bool
}

type PanelLayout struct {
	X, Y, Width     float64
	SliderHeight    float64
	ButtonHeight    float64
	Gap             float64
	LabelHeight     float64
	Themes          []string
	ParticleInitial float64
	RotationInitial float64
}

func NewPanel(l PanelLayout) *Panel {
	p := &Panel{}
	y := l.Y + l.LabelHeight

	p.ParticleSlider = Slider{
		Rect:  Rect{X: l.X, Y: y, W: l.Width, H: l.SliderHeight},
		Label: "PARTICLE SPEED",
		Max:   100,
		Step:  1,
		Value: l.ParticleInitial,
	}
	y += l.SliderHeight + l.Gap + l.LabelHeight

	p.RotationSlider = Slider{
		Rect:  Rect{X: l.X, Y: y, W: l.Width, H: l.SliderHeight},
		Label: "CORE ROTATION",
		Max:   100,
		Step:  1,
		Value: l.RotationInitial,
	}
	y += l.SliderHeight + l.Gap + l.LabelHeight

	if n := len(l.Themes); n > 0 {
		w := (l.Width - l.Gap*float64(n-1)) / float64(n)
		for i, name := range l.Themes {
			p.ThemeButtons = append(p.ThemeButtons, Button{
				Rect:  Rect{X: l.X + float64(i)*(w+l.Gap), Y: y, W: w, H: l.ButtonHeight},
				Label: name,
			})
		}
		y += l.ButtonHeight + l.Gap
	}

	p.Sound = Checkbox{
		Button: Button{
			Rect:  Rect{X: l.X, Y: y, W: l.Width, H: l.SliderHeight + 4},
			Label: "AMBIENT SOUND",
		},
	}
	y += l.SliderHeight + 4 + l.Gap

	p.Neural = Button{
		Rect: Rect{X: l.X, Y: y, W: l.Width, H: l.ButtonHeight},
	}
	y += l.ButtonHeight

	p.Bounds = Rect{X: l.X - l.Gap, Y: l.Y - l.Gap, W: l.Width + 2*l.Gap, H: y - l.Y + 2*l.Gap}
	return p
}

func (p *Panel) Update(ptr Pointer) Events {
	var ev Events
	ev.Consumed = ptr.JustPressed && p.Bounds.Contains(ptr.X, ptr.Y)

	ev.ParticleChanged = p.ParticleSlider.Update(ptr)
	ev.RotationChanged = p.RotationSlider.Update(ptr)
	for i := range p.ThemeButtons {
		if p.ThemeButtons[i].Update(ptr) {
			ev.Theme = p.ThemeButtons[i].Label
		}
	}
	ev.SoundToggled = p.Sound.Update(ptr)
	ev.NeuralToggled = p.Neural.Update(ptr)
	return ev
}
