package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/JahanzaibJameel/Hyper-Reactive-Universe-Dashboard/internal/audio"
	"github.com/JahanzaibJameel/Hyper-Reactive-Universe-Dashboard/internal/config"
	"github.com/JahanzaibJameel/Hyper-Reactive-Universe-Dashboard/internal/dashboard"
	"github.com/JahanzaibJameel/Hyper-Reactive-Universe-Dashboard/internal/game"
	"github.com/JahanzaibJameel/Hyper-Reactive-Universe-Dashboard/internal/logs"
)

var (
	configPath = flag.String("config", "", "CUE file overriding the built-in defaults")
	logLevel   = flag.String("log-level", "info", "Log level: debug, info, warn, error")
	logFile    = flag.String("log-file", "", "Also write JSON logs to this file")
	seed       = flag.Uint64("seed", 0, "Random seed for the scene (0 = random)")
	noAudio    = flag.Bool("no-audio", false, "Run without sound")
	fullscreen = flag.Bool("fullscreen", false, "Start in fullscreen")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "dashboard: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	level, err := logs.ParseLevel(*logLevel)
	if err != nil {
		return err
	}
	var file io.Writer
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		file = f
	}
	logger := logs.New(os.Stderr, file, level)
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewPCG(*seed, *seed))
	}

	opts := dashboard.Options{
		Logger: logger,
		Rand:   rng,
		Width:  config.WindowWidth,
		Height: config.WindowHeight,
	}
	var sound game.Audio
	if !*noAudio {
		mixer := audio.NewMixer(cfg.Audio.AmbientURL, cfg.Audio.NeuralURL, audio.Options{
			Volume:  cfg.Audio.Volume,
			Timeout: cfg.Audio.FetchTimeout(),
			Logger:  logger,
		})
		defer mixer.Close()
		opts.Player = mixer
		sound = mixer
	}

	dash, err := dashboard.New(cfg, opts)
	if err != nil {
		return err
	}
	g := game.New(game.Options{
		Dashboard: dash,
		Audio:     sound,
		Logger:    logger,
	})

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Hyper-Reactive Universe Dashboard")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(*fullscreen)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	logger.Info("dashboard closed", "frames", dash.Frames())
	return nil
}
