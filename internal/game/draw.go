package game

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/JahanzaibJameel/Hyper-Reactive-Universe-Dashboard/internal/config"
	"github.com/JahanzaibJameel/Hyper-Reactive-Universe-Dashboard/internal/scene"
	"github.com/JahanzaibJameel/Hyper-Reactive-Universe-Dashboard/internal/theme"
	"github.com/JahanzaibJameel/Hyper-Reactive-Universe-Dashboard/internal/ui"
)

var (
	textColor   = color.NRGBA{R: 180, G: 240, B: 255, A: 255}
	dimText     = color.NRGBA{R: 110, G: 150, B: 170, A: 255}
	accentColor = color.NRGBA{R: 0, G: 255, B: 255, A: 255}
	trackColor  = color.NRGBA{R: 40, G: 60, B: 80, A: 255}
	white       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

const backgroundBands = 48

func (g *Game) drawBackground(screen *ebiten.Image) {
	fog := g.dash.Palette().Fog
	black := colorful.Color{}
	b := screen.Bounds()
	bandH := float64(b.Dy()) / backgroundBands
	for i := 0; i < backgroundBands; i++ {
		// darker at the top, fog color toward the bottom
		c := black.BlendRgb(fog, float64(i+1)/backgroundBands)
		vector.DrawFilledRect(screen, 0, float32(float64(i)*bandH), float32(b.Dx()), float32(bandH+1), nrgba(c, 1), false)
	}
}

func (g *Game) drawStars(screen *ebiten.Image, now time.Time) {
	b := screen.Bounds()
	t := g.dash.Uptime(now)
	for _, s := range g.dash.Stars() {
		x := s.X * float64(b.Dx())
		y := s.Y * float64(b.Dy())
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(s.Size/2+0.3), nrgba(colorful.Color{R: 1, G: 1, B: 1}, s.Alpha(t)), true)
	}
}

func (g *Game) drawScene(screen *ebiten.Image, width, height int) {
	sc := g.dash.Scene()
	palette := g.dash.Palette()
	proj := sc.Camera.Projector(width, height)
	eyeDist := sc.Camera.Pos.Len()

	level := 0.0
	if g.audio != nil {
		level = g.audio.Level()
	}

	rot := mgl64.Rotate3DY(sc.Field.RotationY)
	// particles behind the core first, then the core, then the rest
	g.drawParticles(screen, sc, proj, rot, palette.Fog, func(dist float64) bool { return dist > eyeDist })
	g.drawCore(screen, sc, proj, palette.Core, palette.Fog, level)
	g.drawParticles(screen, sc, proj, rot, palette.Fog, func(dist float64) bool { return dist <= eyeDist })
}

func (g *Game) drawParticles(screen *ebiten.Image, sc *scene.Scene, proj scene.Projector, rot mgl64.Mat3, fog colorful.Color, keep func(float64) bool) {
	for _, p := range sc.Field.Particles {
		x, y, dist, ok := proj.Project(rot.Mul3x1(p.Pos))
		if !ok || !keep(dist) {
			continue
		}
		r := proj.Scale(config.ParticleSize, dist) / 2
		if r < 0.5 {
			r = 0.5
		}
		c := fogged(p.Color, fog, dist, config.FogNear, config.FogFar)
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), nrgba(c, config.ParticleOpacity), false)
	}
}

func (g *Game) drawCore(screen *ebiten.Image, sc *scene.Scene, proj scene.Projector, core, fog colorful.Color, level float64) {
	orient := sc.Core.Orientation()
	radius := sc.Core.Radius * (1 + 0.15*level)
	c := nrgba(fogged(core, fog, sc.Camera.Pos.Len(), config.FogNear, config.FogFar), config.CoreOpacity)

	for _, ring := range g.rings {
		var px, py float64
		have := false
		for _, p := range ring {
			x, y, _, ok := proj.Project(orient.Mul3x1(p).Mul(radius))
			if ok && have {
				vector.StrokeLine(screen, float32(px), float32(py), float32(x), float32(y), 1, c, true)
			}
			px, py, have = x, y, ok
		}
	}

	// glow
	cx, cy, dist, ok := proj.Project(mgl64.Vec3{})
	if ok {
		r := proj.Scale(radius, dist)
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r*0.9), nrgba(core, 0.15+0.2*level), true)
	}
}

func (g *Game) drawPanel(screen *ebiten.Image) {
	p := g.panel
	state := g.dash.State()
	button := g.dash.Button()

	bg := p.Bounds
	vector.DrawFilledRect(screen, float32(bg.X), float32(bg.Y), float32(bg.W), float32(bg.H), nrgba(button.PanelTint, 0.75), false)
	vector.StrokeRect(screen, float32(bg.X), float32(bg.Y), float32(bg.W), float32(bg.H), 1, nrgba(g.dash.Palette().Core, 0.6), false)

	g.drawSlider(screen, &p.ParticleSlider, fmt.Sprintf("%.2f", state.ParticleSpeed))
	g.drawSlider(screen, &p.RotationSlider, fmt.Sprintf("%.4f", state.CoreRotationSpeed))

	for i := range p.ThemeButtons {
		tb := &p.ThemeButtons[i]
		palette, _ := theme.Lookup(theme.Name(tb.Label))
		alpha := 0.55
		if tb.Hovered() {
			alpha = 0.8
		}
		vector.DrawFilledRect(screen, float32(tb.X), float32(tb.Y), float32(tb.W), float32(tb.H), nrgba(palette.Core, alpha), false)
		if string(state.Theme) == tb.Label {
			vector.StrokeRect(screen, float32(tb.X), float32(tb.Y), float32(tb.W), float32(tb.H), 2, white, false)
		}
		g.drawCentered(screen, tb.Rect, tb.Label, white)
	}

	sb := &p.Sound
	vector.StrokeRect(screen, float32(sb.X), float32(sb.Y), float32(sb.H), float32(sb.H), 1, accentColor, false)
	if sb.Checked {
		vector.DrawFilledRect(screen, float32(sb.X+3), float32(sb.Y+3), float32(sb.H-6), float32(sb.H-6), accentColor, false)
	}
	label := sb.Label
	if g.audioFailed() {
		label += " (unavailable)"
	}
	g.drawText(screen, label, sb.X+sb.H+8, sb.Y+2, textColor)

	g.drawGradientButton(screen, &p.Neural, button.Label, button.From, button.To, button.HoverFrom, button.HoverTo)
}

func (g *Game) drawSlider(screen *ebiten.Image, s *ui.Slider, value string) {
	g.drawText(screen, s.Label, s.X, s.Y-16, dimText)
	g.drawText(screen, value, s.X+s.W-text.Advance(value, g.face), s.Y-16, textColor)

	mid := s.Y + s.H/2
	vector.StrokeLine(screen, float32(s.X), float32(mid), float32(s.X+s.W), float32(mid), 4, trackColor, false)
	knob := s.X + s.Fraction()*s.W
	vector.StrokeLine(screen, float32(s.X), float32(mid), float32(knob), float32(mid), 4, accentColor, false)
	r := float32(s.H / 2)
	if s.Dragging() {
		r += 2
	}
	vector.DrawFilledCircle(screen, float32(knob), float32(mid), r, white, true)
}

const gradientSteps = 24

func (g *Game) drawGradientButton(screen *ebiten.Image, b *ui.Button, label string, from, to, hoverFrom, hoverTo colorful.Color) {
	if b.Hovered() {
		from, to = hoverFrom, hoverTo
	}
	step := b.W / gradientSteps
	for i := 0; i < gradientSteps; i++ {
		c := from.BlendRgb(to, float64(i)/(gradientSteps-1))
		vector.DrawFilledRect(screen, float32(b.X+float64(i)*step), float32(b.Y), float32(step+1), float32(b.H), nrgba(c, 1), false)
	}
	if b.Pressed() {
		vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, white, false)
	}
	g.drawCentered(screen, b.Rect, label, white)
}

func (g *Game) drawChart(screen *ebiten.Image, bounds image.Rectangle) {
	g.refreshChart()
	x := float64(bounds.Dx() - config.ChartWidth - config.PanelX)
	y := float64(bounds.Dy() - config.ChartHeight - config.PanelX)

	vector.DrawFilledRect(screen, float32(x), float32(y-18), config.ChartWidth, config.ChartHeight+18, color.NRGBA{R: 0, G: 10, B: 25, A: 170}, false)
	g.drawText(screen, "ENERGY FLUX", x+6, y-16, dimText)
	if g.chart == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	screen.DrawImage(g.chart, op)
}

const lineHeight = 16

func (g *Game) drawTerminal(screen *ebiten.Image, bounds image.Rectangle, now time.Time) {
	x := float64(config.PanelX)
	h := float64(config.TermLines*lineHeight + 24)
	y := float64(bounds.Dy()) - h - config.PanelX

	vector.DrawFilledRect(screen, float32(x), float32(y), config.TermWidth, float32(h), color.NRGBA{R: 0, G: 10, B: 25, A: 170}, false)
	vector.StrokeRect(screen, float32(x), float32(y), config.TermWidth, float32(h), 1, nrgba(g.dash.Palette().Core, 0.4), false)
	g.drawText(screen, "AI TERMINAL", x+6, y+4, dimText)

	lines := g.dash.Terminal().Lines()
	if len(lines) > config.TermLines {
		lines = lines[len(lines)-config.TermLines:]
	}
	for i, line := range lines {
		s, caret := line.Reveal(now, g.dash.Typewriter())
		if caret {
			s += "_"
		}
		g.drawText(screen, s, x+6, y+22+float64(i*lineHeight), accentColor)
	}
}

func (g *Game) drawStatus(screen *ebiten.Image, bounds image.Rectangle, now time.Time) {
	state := g.dash.State()
	fps := fmt.Sprintf("FPS: %d", g.dash.FPS())
	ebitenutil.DebugPrintAt(screen, fps, bounds.Dx()-len(fps)*6-config.PanelX, 12)

	mode := "NORMAL"
	if state.NeuralMode {
		mode = "NEURAL"
	}
	status := fmt.Sprintf("%s | theme %s | waves %d | uptime %s | S sound, N neural, 1-3 theme, O open track, Q quit",
		mode, state.Theme, g.dash.Scene().Emitters.ActiveCount(), formatDuration(g.dash.Uptime(now)))
	if g.audioFailed() {
		status += " | audio unavailable"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, g.face, op)
}

func (g *Game) drawCentered(screen *ebiten.Image, r ui.Rect, s string, clr color.Color) {
	w := text.Advance(s, g.face)
	g.drawText(screen, s, r.X+(r.W-w)/2, r.Y+(r.H-13)/2, clr)
}

func (g *Game) audioFailed() bool {
	if g.audio == nil {
		return true
	}
	return g.audio.Err(g.dash.ModeTrack()) != nil
}
