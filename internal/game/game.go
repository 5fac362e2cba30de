package game

import (
	"errors"
	"image"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/ncruces/zenity"
	"golang.org/x/image/font/basicfont"

	"github.com/JahanzaibJameel/Hyper-Reactive-Universe-Dashboard/internal/audio"
	"github.com/JahanzaibJameel/Hyper-Reactive-Universe-Dashboard/internal/config"
	"github.com/JahanzaibJameel/Hyper-Reactive-Universe-Dashboard/internal/dashboard"
	"github.com/JahanzaibJameel/Hyper-Reactive-Universe-Dashboard/internal/feed"
	"github.com/JahanzaibJameel/Hyper-Reactive-Universe-Dashboard/internal/scene"
	"github.com/JahanzaibJameel/Hyper-Reactive-Universe-Dashboard/internal/theme"
	"github.com/JahanzaibJameel/Hyper-Reactive-Universe-Dashboard/internal/ui"
)

// Audio is what the renderer needs from the mixer.
type Audio interface {
	Level() float64
	Err(audio.Track) error
	ReplaceFile(audio.Track, string) error
}

type Options struct {
	Dashboard *dashboard.Dashboard
	// Audio may be nil when sound is disabled.
	Audio  Audio
	Logger *slog.Logger
	Now    func() time.Time
}

// Game adapts the dashboard to ebiten: it turns input into dashboard
// operations and draws the dashboard state.
type Game struct {
	dash   *dashboard.Dashboard
	audio  Audio
	logger *slog.Logger
	now    func() time.Time

	panel *ui.Panel
	face  text.Face
	rings [][]mgl64.Vec3

	chart        *ebiten.Image
	chartVersion uint64
	chartDrawn   bool

	dialogOpen atomic.Bool
	dialogErrs chan error
	lastErr    error
}

func New(opts Options) *Game {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	state := opts.Dashboard.State()
	names := make([]string, len(theme.Names))
	for i, n := range theme.Names {
		names[i] = string(n)
	}

	return &Game{
		dash:   opts.Dashboard,
		audio:  opts.Audio,
		logger: opts.Logger,
		now:    opts.Now,
		panel: ui.NewPanel(ui.PanelLayout{
			X:               config.PanelX,
			Y:               config.PanelY,
			Width:           config.PanelWidth,
			SliderHeight:    config.SliderH,
			ButtonHeight:    config.ButtonH,
			Gap:             config.RowGap,
			LabelHeight:     16,
			Themes:          names,
			ParticleInitial: state.ParticleSlider,
			RotationInitial: state.RotationSlider,
		}),
		face:       text.NewGoXFace(basicfont.Face7x13),
		rings:      scene.Wireframe(config.CoreLatLines, config.CoreLonLines, 32),
		dialogErrs: make(chan error, 1),
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.dash.Stop()
		return ebiten.Termination
	}

	mouseX, mouseY := ebiten.CursorPosition()
	ptr := ui.Pointer{
		X:            float64(mouseX),
		Y:            float64(mouseY),
		Down:         ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}

	ev := g.panel.Update(ptr)
	if ev.ParticleChanged {
		g.dash.SetParticleSlider(g.panel.ParticleSlider.Value)
	}
	if ev.RotationChanged {
		g.dash.SetRotationSlider(g.panel.RotationSlider.Value)
	}
	if ev.Theme != "" {
		g.selectTheme(ev.Theme)
	}
	if ev.SoundToggled {
		g.dash.SetSound(g.panel.Sound.Checked)
	}
	if ev.NeuralToggled {
		g.dash.ToggleNeural()
	}
	if ptr.JustPressed && !ev.Consumed {
		g.dash.Click()
	}
	g.dash.MouseMove(ptr.X, ptr.Y)

	g.handleKeys()

	select {
	case err := <-g.dialogErrs:
		g.lastErr = err
	default:
	}

	g.dash.Frame(g.now())
	return nil
}

func (g *Game) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.panel.Sound.Checked = !g.panel.Sound.Checked
		g.dash.SetSound(g.panel.Sound.Checked)
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.dash.ToggleNeural()
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		g.selectTheme(string(theme.Quantum))
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		g.selectTheme(string(theme.Neon))
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		g.selectTheme(string(theme.Cyber))
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		g.openTrackDialog()
	}
}

func (g *Game) selectTheme(name string) {
	if err := g.dash.SelectTheme(name); err != nil {
		g.lastErr = err
	}
}

// openTrackDialog lets the user swap the current mode's track for a local
// file. The dialog blocks, so it runs off the game goroutine.
func (g *Game) openTrackDialog() {
	if g.audio == nil || !g.dialogOpen.CompareAndSwap(false, true) {
		return
	}
	track := g.dash.ModeTrack()
	go func() {
		defer g.dialogOpen.Store(false)

		filename, err := zenity.SelectFile(
			zenity.Title("Open "+track.String()+" track"),
			zenity.FileFilters{{
				Name:     "Audio",
				Patterns: []string{"*.wav", "*.mp3", "*.flac"},
			}},
		)
		if err != nil {
			if errors.Is(err, zenity.ErrCanceled) {
				return
			}
			g.report(err)
			return
		}
		if err := g.audio.ReplaceFile(track, filename); err != nil {
			g.report(err)
		}
	}()
}

func (g *Game) report(err error) {
	g.logger.Error("replace track", "error", err)
	select {
	case g.dialogErrs <- err:
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	now := g.now()
	b := screen.Bounds()

	g.drawBackground(screen)
	g.drawStars(screen, now)
	g.drawScene(screen, b.Dx(), b.Dy())
	g.drawPanel(screen)
	g.drawChart(screen, b)
	g.drawTerminal(screen, b, now)
	g.drawStatus(screen, b, now)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.dash.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// refreshChart re-renders the chart image when the sample window changed.
func (g *Game) refreshChart() {
	energy := g.dash.Energy()
	if g.chartDrawn && energy.Version() == g.chartVersion {
		return
	}
	img, err := feed.RenderChart(energy.Samples(), config.ChartWidth, config.ChartHeight)
	if err != nil {
		g.logger.Warn("render chart", "error", err)
		return
	}
	g.setChart(img)
	g.chartVersion = energy.Version()
	g.chartDrawn = true
}

func (g *Game) setChart(img image.Image) {
	if g.chart != nil {
		g.chart.Deallocate()
	}
	g.chart = ebiten.NewImageFromImage(img)
}
