// Package dashboard holds the application state and every operation the
// controls can perform on it. The renderer reads from it; it never reads
// from the renderer.
package dashboard

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/JahanzaibJameel/Hyper-Reactive-Universe-Dashboard/internal/audio"
	"github.com/JahanzaibJameel/Hyper-Reactive-Universe-Dashboard/internal/config"
	"github.com/JahanzaibJameel/Hyper-Reactive-Universe-Dashboard/internal/feed"
	"github.com/JahanzaibJameel/Hyper-Reactive-Universe-Dashboard/internal/logs"
	"github.com/JahanzaibJameel/Hyper-Reactive-Universe-Dashboard/internal/scene"
	"github.com/JahanzaibJameel/Hyper-Reactive-Universe-Dashboard/internal/schedule"
	"github.com/JahanzaibJameel/Hyper-Reactive-Universe-Dashboard/internal/theme"
)

// Player is the part of the audio mixer the dashboard drives.
type Player interface {
	Play(audio.Track)
	Pause(audio.Track)
}

type nopPlayer struct{}

func (nopPlayer) Play(audio.Track)  {}
func (nopPlayer) Pause(audio.Track) {}

// State is everything the controls write and the frame reads.
type State struct {
	MouseX, MouseY    float64
	ParticleSlider    float64
	RotationSlider    float64
	ParticleSpeed     float64
	CoreRotationSpeed float64
	Theme             theme.Name
	NeuralMode        bool
	SoundEnabled      bool
	Width, Height     int
}

type Options struct {
	Logger *slog.Logger
	Rand   *rand.Rand
	Player Player
	Start  time.Time
	Width  int
	Height int
}

type Dashboard struct {
	cfg    config.Config
	logger *slog.Logger
	rng    *rand.Rand
	player Player

	state   State
	palette theme.Palette

	scene  *scene.Scene
	energy *feed.Energy
	term   *feed.Terminal
	stars  []Star
	fps    FPSMeter

	sched     *schedule.Scheduler
	chartTask *schedule.Task
	termTask  *schedule.Task
	start     time.Time
	frames    uint64
}

func New(cfg config.Config, opts Options) (*Dashboard, error) {
	initial, err := theme.Parse(cfg.Controls.Theme)
	if err != nil {
		return nil, err
	}
	palette, err := theme.Lookup(initial)
	if err != nil {
		return nil, err
	}

	if opts.Logger == nil {
		opts.Logger = logs.Discard()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Player == nil {
		opts.Player = nopPlayer{}
	}
	if opts.Start.IsZero() {
		opts.Start = time.Now()
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = config.WindowWidth, config.WindowHeight
	}

	d := &Dashboard{
		cfg:     cfg,
		logger:  opts.Logger,
		rng:     opts.Rand,
		player:  opts.Player,
		palette: palette,
		state: State{
			Theme:  initial,
			Width:  opts.Width,
			Height: opts.Height,
		},
		start: opts.Start,
		sched: schedule.New(),
		fps:   NewFPSMeter(opts.Start, config.FPSWindow),
	}
	d.SetParticleSlider(cfg.Controls.ParticleSlider)
	d.SetRotationSlider(cfg.Controls.RotationSlider)

	d.stars = newStars(d.rng, cfg.Stars)
	d.scene = scene.New(d.rng, cfg, opts.Width, opts.Height)
	d.energy = feed.NewEnergy(d.rng, cfg.Chart.Window)
	d.term = feed.NewTerminal(cfg.Terminal.Messages)

	d.chartTask = d.sched.Every("chart", opts.Start, cfg.Chart.Interval(), func(time.Time) {
		d.energy.Tick(d.rng)
	})
	d.termTask = d.sched.Every("terminal", opts.Start, cfg.Terminal.Interval(), func(now time.Time) {
		d.term.Tick(now)
	})

	d.logger.Info("dashboard ready",
		"particles", cfg.Particles.Count,
		"emitters", cfg.Emitters.Count,
		"theme", initial,
	)
	return d, nil
}

// Frame runs one iteration of the update loop.
func (d *Dashboard) Frame(now time.Time) {
	d.frames++
	if d.fps.Tick(now) {
		d.logger.Debug("fps", "value", d.fps.Value())
	}
	d.scene.Step(scene.Input{
		ParticleSpeed:     d.state.ParticleSpeed,
		CoreRotationSpeed: d.state.CoreRotationSpeed,
		MouseX:            d.state.MouseX,
		MouseY:            d.state.MouseY,
	})
	d.sched.Advance(now)
}

// Stop cancels the chart and terminal loops. The scene keeps animating.
func (d *Dashboard) Stop() {
	d.chartTask.Stop()
	d.termTask.Stop()
}

// MouseMove records the pointer offset from the viewport center.
func (d *Dashboard) MouseMove(x, y float64) {
	d.state.MouseX = (x - float64(d.state.Width)/2) / config.MouseScale
	d.state.MouseY = (y - float64(d.state.Height)/2) / config.MouseScale
}

// Click gives every wave emitter its chance to fire.
func (d *Dashboard) Click() int {
	n := d.scene.Emitters.Trigger(d.rng)
	if n > 0 {
		d.logger.Debug("waves emitted", "count", n)
	}
	return n
}

// SetParticleSlider takes the raw 0-100 slider value.
func (d *Dashboard) SetParticleSlider(v float64) {
	d.state.ParticleSlider = v
	d.state.ParticleSpeed = v / config.ParticleSliderScale
}

// SetRotationSlider takes the raw 0-100 slider value.
func (d *Dashboard) SetRotationSlider(v float64) {
	d.state.RotationSlider = v
	d.state.CoreRotationSpeed = v / config.RotationSliderScale
}

// SelectTheme makes name the current theme and applies its palette, even
// while neural mode is on. Unknown names change nothing.
func (d *Dashboard) SelectTheme(name string) error {
	t, err := theme.Parse(name)
	if err != nil {
		d.logger.Warn("ignoring theme", "theme", name, "error", err)
		return err
	}
	palette, err := theme.Lookup(t)
	if err != nil {
		return err
	}
	d.state.Theme = t
	d.palette = palette
	d.logger.Info("theme applied", "theme", t)
	return nil
}

// SetSound enables or silences the ambient audio for the current mode.
func (d *Dashboard) SetSound(on bool) {
	d.state.SoundEnabled = on
	if on {
		d.player.Play(d.modeTrack())
	} else {
		d.player.Pause(audio.Ambient)
		d.player.Pause(audio.Neural)
	}
	d.logger.Info("sound", "enabled", on)
}

// ToggleNeural flips neural mode. Leaving it re-applies the current theme.
func (d *Dashboard) ToggleNeural() {
	d.state.NeuralMode = !d.state.NeuralMode
	if d.state.NeuralMode {
		d.palette = theme.Neural
		if d.state.SoundEnabled {
			d.player.Pause(audio.Ambient)
			d.player.Play(audio.Neural)
		}
	} else {
		if palette, err := theme.Lookup(d.state.Theme); err == nil {
			d.palette = palette
		}
		if d.state.SoundEnabled {
			d.player.Pause(audio.Neural)
			d.player.Play(audio.Ambient)
		}
	}
	d.logger.Info("neural mode", "enabled", d.state.NeuralMode)
}

// Resize updates the viewport and the camera aspect.
func (d *Dashboard) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == d.state.Width && height == d.state.Height {
		return
	}
	d.state.Width, d.state.Height = width, height
	d.scene.Camera.SetAspect(width, height)
	d.logger.Debug("resize", "width", width, "height", height)
}

func (d *Dashboard) modeTrack() audio.Track {
	if d.state.NeuralMode {
		return audio.Neural
	}
	return audio.Ambient
}

// ModeTrack is the track that plays when sound is enabled.
func (d *Dashboard) ModeTrack() audio.Track { return d.modeTrack() }

func (d *Dashboard) State() State                       { return d.state }
func (d *Dashboard) Palette() theme.Palette             { return d.palette }
func (d *Dashboard) Button() theme.ButtonStyle          { return theme.Button(d.state.NeuralMode) }
func (d *Dashboard) Scene() *scene.Scene                { return d.scene }
func (d *Dashboard) Energy() *feed.Energy               { return d.energy }
func (d *Dashboard) Terminal() *feed.Terminal           { return d.term }
func (d *Dashboard) Stars() []Star                      { return d.stars }
func (d *Dashboard) FPS() int                           { return d.fps.Value() }
func (d *Dashboard) Frames() uint64                     { return d.frames }
func (d *Dashboard) Typewriter() time.Duration          { return d.cfg.Terminal.Typewriter() }
func (d *Dashboard) Uptime(now time.Time) time.Duration { return now.Sub(d.start) }
