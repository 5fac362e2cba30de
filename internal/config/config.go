package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

const (
	WindowWidth  = 1280
	WindowHeight = 720

	// Control panel layout
	PanelX      = 16
	PanelY      = 40
	PanelWidth  = 240
	SliderH     = 14
	ButtonH     = 28
	RowGap      = 12
	ChartWidth  = 320
	ChartHeight = 120
	TermWidth   = 420
	TermLines   = 10

	// Camera
	CameraFOV      = 75
	CameraNear     = 0.1
	CameraFar      = 1000
	CameraDistance = 100
	CameraEasing   = 0.05
	MouseScale     = 100

	// Fog
	FogNear = 50
	FogFar  = 300

	// Core sphere
	CoreRadius   = 15
	CoreOpacity  = 0.8
	CoreLatLines = 12
	CoreLonLines = 16

	// Per-frame increments, scaled by the user controls
	FieldRotationStep = 0.001
	AzimuthStep       = 0.001
	InclinationStep   = 0.0005

	// Slider value divisors
	ParticleSliderScale = 100
	RotationSliderScale = 10000

	ParticleSize    = 2
	ParticleOpacity = 0.8

	FPSWindow = time.Second
)

//go:embed schema.cue
var schemaSrc string

type Particles struct {
	Count     int     `json:"count"`
	MinRadius float64 `json:"minRadius"`
	MaxRadius float64 `json:"maxRadius"`
}

type Emitters struct {
	Count       int     `json:"count"`
	Probability float64 `json:"probability"`
	Spread      float64 `json:"spread"`
	StartRadius float64 `json:"startRadius"`
	MaxRadius   float64 `json:"maxRadius"`
	MinSpeed    float64 `json:"minSpeed"`
	MaxSpeed    float64 `json:"maxSpeed"`
}

type Chart struct {
	IntervalMs int `json:"intervalMs"`
	Window     int `json:"window"`
}

func (c Chart) Interval() time.Duration {
	return time.Duration(c.IntervalMs) * time.Millisecond
}

type Terminal struct {
	IntervalMs   int      `json:"intervalMs"`
	TypewriterMs int      `json:"typewriterMs"`
	Messages     []string `json:"messages"`
}

func (t Terminal) Interval() time.Duration {
	return time.Duration(t.IntervalMs) * time.Millisecond
}

func (t Terminal) Typewriter() time.Duration {
	return time.Duration(t.TypewriterMs) * time.Millisecond
}

type Audio struct {
	AmbientURL     string  `json:"ambientURL"`
	NeuralURL      string  `json:"neuralURL"`
	Volume         float64 `json:"volume"`
	FetchTimeoutMs int     `json:"fetchTimeoutMs"`
}

func (a Audio) FetchTimeout() time.Duration {
	return time.Duration(a.FetchTimeoutMs) * time.Millisecond
}

type Controls struct {
	Theme          string  `json:"theme"`
	ParticleSlider float64 `json:"particleSlider"`
	RotationSlider float64 `json:"rotationSlider"`
}

// Config holds every tunable of the dashboard. Values come from the embedded
// schema defaults, optionally overridden by a user CUE file.
type Config struct {
	Particles Particles `json:"particles"`
	Emitters  Emitters  `json:"emitters"`
	Chart     Chart     `json:"chart"`
	Terminal  Terminal  `json:"terminal"`
	Audio     Audio     `json:"audio"`
	Controls  Controls  `json:"controls"`
	Stars     int       `json:"stars"`
}

// Default returns the schema defaults.
func Default() Config {
	cfg, err := Parse("", nil)
	if err != nil {
		// the embedded schema is part of the build
		panic(err)
	}
	return cfg
}

// Load reads and validates the CUE file at path. An empty path yields the
// defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Parse("", nil)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(path, content)
}

// Parse unifies src with the schema and decodes the result.
func Parse(filename string, src []byte) (Config, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSrc, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return Config{}, fmt.Errorf("compile schema: %w", err)
	}
	value := schema.LookupPath(cue.ParsePath("#Config"))
	if err := value.Err(); err != nil {
		return Config{}, fmt.Errorf("lookup schema: %w", err)
	}

	if len(src) > 0 {
		user := ctx.CompileBytes(src, cue.Filename(filename))
		if err := user.Err(); err != nil {
			return Config{}, fmt.Errorf("compile %s: %w", filename, err)
		}
		value = value.Unify(user)
	}

	if err := value.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	var cfg Config
	if err := value.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.check(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// check covers the cross-field constraints the schema does not express.
func (c Config) check() error {
	if c.Particles.MinRadius > c.Particles.MaxRadius {
		return fmt.Errorf("particles: minRadius %v exceeds maxRadius %v",
			c.Particles.MinRadius, c.Particles.MaxRadius)
	}
	if c.Emitters.MinSpeed > c.Emitters.MaxSpeed {
		return fmt.Errorf("emitters: minSpeed %v exceeds maxSpeed %v",
			c.Emitters.MinSpeed, c.Emitters.MaxSpeed)
	}
	if len(c.Terminal.Messages) == 0 {
		return fmt.Errorf("terminal: messages must not be empty")
	}
	return nil
}
