package dashboard

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/JahanzaibJameel/Hyper-Reactive-Universe-Dashboard/internal/audio"
	"github.com/JahanzaibJameel/Hyper-Reactive-Universe-Dashboard/internal/config"
	"github.com/JahanzaibJameel/Hyper-Reactive-Universe-Dashboard/internal/theme"
)

type call struct {
	op    string
	track audio.Track
}

type recordingPlayer struct {
	calls []call
}

func (p *recordingPlayer) Play(t audio.Track)  { p.calls = append(p.calls, call{"play", t}) }
func (p *recordingPlayer) Pause(t audio.Track) { p.calls = append(p.calls, call{"pause", t}) }

func (p *recordingPlayer) take() []call {
	out := p.calls
	p.calls = nil
	return out
}

var epoch = time.Unix(1700000000, 0)

func newTestDashboard(t *testing.T, player Player) *Dashboard {
	t.Helper()
	cfg := config.Default()
	cfg.Particles.Count = 200
	d, err := New(cfg, Options{
		Rand:   rand.New(rand.NewPCG(1, 2)),
		Player: player,
		Start:  epoch,
		Width:  1280,
		Height: 720,
	})
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func mustPalette(t *testing.T, name theme.Name) theme.Palette {
	t.Helper()
	p, err := theme.Lookup(name)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestDefaults(t *testing.T) {
	d := newTestDashboard(t, nil)
	s := d.State()
	if s.ParticleSpeed != 0.5 || s.CoreRotationSpeed != 0.005 {
		t.Fatalf("got %+v", s)
	}
	if s.Theme != theme.Quantum || s.NeuralMode || s.SoundEnabled {
		t.Fatalf("got %+v", s)
	}
	if d.Palette() != mustPalette(t, theme.Quantum) {
		t.Fatal("initial palette is not quantum")
	}
	if len(d.Stars()) != 200 {
		t.Fatalf("got %d stars", len(d.Stars()))
	}
	if d.FPS() != 60 {
		t.Fatalf("got fps %d", d.FPS())
	}
}

func TestNewRejectsUnknownTheme(t *testing.T) {
	cfg := config.Default()
	cfg.Controls.Theme = "sepia"
	if _, err := New(cfg, Options{}); !errors.Is(err, theme.ErrUnknown) {
		t.Fatalf("got %v", err)
	}
}

func TestSliders(t *testing.T) {
	d := newTestDashboard(t, nil)
	d.SetParticleSlider(100)
	d.SetRotationSlider(100)
	s := d.State()
	if s.ParticleSpeed != 1 || s.CoreRotationSpeed != 0.01 {
		t.Fatalf("got %+v", s)
	}
	d.SetRotationSlider(0)
	if d.State().CoreRotationSpeed != 0 {
		t.Fatal("rotation not zero")
	}
}

func TestMouseMove(t *testing.T) {
	d := newTestDashboard(t, nil)
	d.MouseMove(640+200, 360-100)
	s := d.State()
	if s.MouseX != 2 || s.MouseY != -1 {
		t.Fatalf("got %v,%v", s.MouseX, s.MouseY)
	}

	d.Resize(800, 600)
	d.MouseMove(400, 300)
	if s := d.State(); s.MouseX != 0 || s.MouseY != 0 {
		t.Fatalf("got %v,%v", s.MouseX, s.MouseY)
	}
	if d.Scene().Camera.Aspect != 800.0/600.0 {
		t.Fatalf("got aspect %v", d.Scene().Camera.Aspect)
	}
}

func TestFieldRotationScenario(t *testing.T) {
	d := newTestDashboard(t, nil)
	d.SetParticleSlider(100)
	d.SetRotationSlider(0)

	now := epoch
	for range 1000 {
		now = now.Add(16 * time.Millisecond)
		d.Frame(now)
	}
	sc := d.Scene()
	if math.Abs(sc.Field.RotationY-1.0) > 1e-9 {
		t.Fatalf("got %v", sc.Field.RotationY)
	}
	if sc.Core.RotationX != 0 || sc.Core.RotationY != 0 {
		t.Fatalf("core rotated: %+v", sc.Core)
	}
	if d.Frames() != 1000 {
		t.Fatalf("got %d frames", d.Frames())
	}
}

func TestNeuralRestoresCurrentTheme(t *testing.T) {
	d := newTestDashboard(t, nil)
	if err := d.SelectTheme("cyber"); err != nil {
		t.Fatal(err)
	}

	d.ToggleNeural()
	if d.Palette() != theme.Neural {
		t.Fatal("neural palette not applied")
	}
	if d.Button().Label != "DEACTIVATE NEURAL MODE" {
		t.Fatalf("got %q", d.Button().Label)
	}

	d.ToggleNeural()
	if d.Palette() != mustPalette(t, theme.Cyber) {
		t.Fatal("leaving neural mode did not restore cyber")
	}
	if d.Button().Label != "ACTIVATE NEURAL MODE" {
		t.Fatalf("got %q", d.Button().Label)
	}
}

func TestThemeWhileNeural(t *testing.T) {
	d := newTestDashboard(t, nil)
	d.ToggleNeural()
	if err := d.SelectTheme("neon"); err != nil {
		t.Fatal(err)
	}
	if d.Palette() != mustPalette(t, theme.Neon) {
		t.Fatal("theme did not override neural palette")
	}
	if !d.State().NeuralMode {
		t.Fatal("theme selection left neural mode")
	}
	d.ToggleNeural()
	if d.Palette() != mustPalette(t, theme.Neon) {
		t.Fatal("wrong palette after neural off")
	}
}

func TestUnknownThemeIgnored(t *testing.T) {
	d := newTestDashboard(t, nil)
	if err := d.SelectTheme("neon"); err != nil {
		t.Fatal(err)
	}
	before := d.Palette()
	if err := d.SelectTheme("sepia"); !errors.Is(err, theme.ErrUnknown) {
		t.Fatalf("got %v", err)
	}
	if d.Palette() != before || d.State().Theme != theme.Neon {
		t.Fatal("unknown theme changed state")
	}
}

func TestSoundRouting(t *testing.T) {
	p := &recordingPlayer{}
	d := newTestDashboard(t, p)

	// neural toggles are silent while sound is off
	d.ToggleNeural()
	d.ToggleNeural()
	if calls := p.take(); len(calls) != 0 {
		t.Fatalf("got %v", calls)
	}

	d.SetSound(true)
	if calls := p.take(); len(calls) != 1 || calls[0] != (call{"play", audio.Ambient}) {
		t.Fatalf("got %v", calls)
	}

	d.ToggleNeural()
	want := []call{{"pause", audio.Ambient}, {"play", audio.Neural}}
	if calls := p.take(); !equalCalls(calls, want) {
		t.Fatalf("got %v", calls)
	}

	d.SetSound(false)
	want = []call{{"pause", audio.Ambient}, {"pause", audio.Neural}}
	if calls := p.take(); !equalCalls(calls, want) {
		t.Fatalf("got %v", calls)
	}

	d.SetSound(true)
	if calls := p.take(); len(calls) != 1 || calls[0] != (call{"play", audio.Neural}) {
		t.Fatalf("got %v", calls)
	}

	d.ToggleNeural()
	want = []call{{"pause", audio.Neural}, {"play", audio.Ambient}}
	if calls := p.take(); !equalCalls(calls, want) {
		t.Fatalf("got %v", calls)
	}
	if d.ModeTrack() != audio.Ambient {
		t.Fatal("wrong mode track")
	}
}

func equalCalls(a, b []call) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSideLoops(t *testing.T) {
	d := newTestDashboard(t, nil)
	messages := config.Default().Terminal.Messages

	now := epoch
	for range 62 * 60 {
		now = now.Add(time.Second / 60)
		d.Frame(now)
		if d.Energy().Len() != 20 {
			t.Fatalf("chart window has %d samples", d.Energy().Len())
		}
	}

	// just under 62s: 30 chart ticks, 20 terminal ticks
	if v := d.Energy().Version(); v != 30 {
		t.Fatalf("got %d chart ticks", v)
	}
	lines := d.Terminal().Lines()
	if len(lines) != 10 {
		t.Fatalf("got %d lines", len(lines))
	}
	for i, line := range lines {
		if line.Text != messages[i] {
			t.Fatalf("line %d: got %q", i, line.Text)
		}
	}
	if d.Terminal().Loops() != 1 {
		t.Fatalf("got %d loops", d.Terminal().Loops())
	}
}

func TestStopCancelsSideLoops(t *testing.T) {
	d := newTestDashboard(t, nil)
	d.Frame(epoch.Add(3 * time.Second))
	if len(d.Terminal().Lines()) != 1 {
		t.Fatal("terminal did not tick")
	}

	d.Stop()
	version := d.Energy().Version()
	for i := 4; i < 30; i++ {
		d.Frame(epoch.Add(time.Duration(i) * time.Second))
	}
	if len(d.Terminal().Lines()) != 1 || d.Energy().Version() != version {
		t.Fatal("side loops still running")
	}
	if d.Frames() != 27 {
		t.Fatalf("frame loop stopped: %d", d.Frames())
	}
}

func TestClickEmitsWaves(t *testing.T) {
	d := newTestDashboard(t, nil)
	total := 0
	for range 100 {
		total += d.Click()
	}
	if total == 0 {
		t.Fatal("no emitter ever activated")
	}
	if total == 100*5 {
		t.Fatal("every emitter activated on every click")
	}
}

func TestFPSMeter(t *testing.T) {
	m := NewFPSMeter(epoch, time.Second)
	published := 0
	for i := 1; i <= 200; i++ {
		if m.Tick(epoch.Add(time.Duration(i) * 10 * time.Millisecond)) {
			published++
		}
	}
	if published != 2 {
		t.Fatalf("published %d times", published)
	}
	if m.Value() != 100 {
		t.Fatalf("got %d", m.Value())
	}

	m = NewFPSMeter(epoch, time.Second)
	for i := 1; i <= 45; i++ {
		m.Tick(epoch.Add(time.Duration(i) * 25 * time.Millisecond))
	}
	// 40 frames in the first second, then a fresh window
	if m.Value() != 40 {
		t.Fatalf("got %d", m.Value())
	}
}

func TestStarTwinkle(t *testing.T) {
	s := Star{Opacity: 1, Period: 4 * time.Second, Low: 0.2, High: 1}
	if got := s.Alpha(0); math.Abs(got-0.2) > 1e-9 {
		t.Fatalf("got %v", got)
	}
	if got := s.Alpha(4 * time.Second); math.Abs(got-1) > 1e-9 {
		t.Fatalf("got %v", got)
	}
	if got := s.Alpha(6 * time.Second); math.Abs(got-0.6) > 1e-9 {
		t.Fatalf("got %v", got)
	}
	if got := s.Alpha(8 * time.Second); math.Abs(got-0.2) > 1e-9 {
		t.Fatalf("got %v", got)
	}
}

func TestStarsGenerated(t *testing.T) {
	for _, s := range newStars(rand.New(rand.NewPCG(3, 3)), 500) {
		if s.X < 0 || s.X >= 1 || s.Y < 0 || s.Y >= 1 {
			t.Fatalf("star off screen: %+v", s)
		}
		if s.Size < 0 || s.Size >= 2 || s.Opacity < 0.3 || s.Opacity >= 1 {
			t.Fatalf("got %+v", s)
		}
		if s.Period < 3*time.Second || s.Period >= 8*time.Second {
			t.Fatalf("period %v", s.Period)
		}
	}
}
