package audio

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
)

type Track int

const (
	Ambient Track = iota
	Neural
	trackCount
)

func (t Track) String() string {
	switch t {
	case Ambient:
		return "ambient"
	case Neural:
		return "neural"
	}
	return fmt.Sprintf("track(%d)", int(t))
}

type LoadState int

const (
	Idle LoadState = iota
	Loading
	Ready
	Failed
)

const (
	SampleRate      = beep.SampleRate(44100)
	levelRingSize   = 4096
	levelWindow     = 2048
	resampleQuality = 4
)

type Options struct {
	Volume  float64
	Timeout time.Duration
	Sink    Sink
	Client  *http.Client
	Logger  *slog.Logger
}

type channel struct {
	open   opener
	state  LoadState
	want   bool
	ctrl   *beep.Ctrl
	tap    *levelTap
	closer beep.StreamSeekCloser
	err    error
	// gen increments whenever a new source supersedes pending loads
	gen int
}

// Mixer owns the two looping ambient tracks. Tracks are fetched on their
// first Play and kept decoded afterwards; pausing never unloads them.
type Mixer struct {
	volume  float64
	timeout time.Duration
	sink    Sink
	logger  *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu        sync.Mutex
	sinkReady bool
	closed    bool
	tracks    [trackCount]*channel
}

func NewMixer(ambientURL, neuralURL string, opts Options) *Mixer {
	if opts.Sink == nil {
		opts.Sink = Speaker{}
	}
	if opts.Client == nil {
		opts.Client = http.DefaultClient
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 20 * time.Second
	}
	ctx, cancel := context.WithCancel(context.Background())
	m := &Mixer{
		volume:  opts.Volume,
		timeout: opts.Timeout,
		sink:    opts.Sink,
		logger:  opts.Logger,
		ctx:     ctx,
		cancel:  cancel,
	}
	m.tracks[Ambient] = &channel{open: urlOpener(opts.Client, ambientURL)}
	m.tracks[Neural] = &channel{open: urlOpener(opts.Client, neuralURL)}
	return m
}

// Play resumes t, starting its download if it has never been loaded.
func (m *Mixer) Play(t Track) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	ch := m.tracks[t]
	ch.want = true
	switch ch.state {
	case Idle:
		m.load(t, ch.open)
	case Ready:
		m.setPaused(ch, false)
	}
}

func (m *Mixer) Pause(t Track) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ch := m.tracks[t]
	ch.want = false
	if ch.state == Ready {
		m.setPaused(ch, true)
	}
}

// Playing reports whether t is loaded and audible.
func (m *Mixer) Playing(t Track) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	ch := m.tracks[t]
	return ch.state == Ready && ch.want
}

func (m *Mixer) State(t Track) LoadState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tracks[t].state
}

// Err returns the last load failure of t.
func (m *Mixer) Err(t Track) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tracks[t].err
}

// Level is the loudest recent level among the playing tracks.
func (m *Mixer) Level() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	var level float64
	for _, ch := range m.tracks {
		if ch.state == Ready && ch.want && ch.tap != nil {
			level = max(level, ch.tap.level(levelWindow))
		}
	}
	return level
}

// ReplaceFile swaps t for a local wav, mp3 or flac file, keeping its
// play/pause intent. It blocks while the file is decoded.
func (m *Mixer) ReplaceFile(t Track, path string) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return fmt.Errorf("mixer closed")
	}
	ch := m.tracks[t]
	ch.open = fileOpener(path)
	ch.gen++
	gen := ch.gen
	m.mu.Unlock()

	streamer, format, err := fileOpener(path)(m.ctx)
	if err == nil {
		err = m.install(t, gen, streamer, format)
	}
	if err != nil {
		err = fmt.Errorf("replace %s: %w", t, err)
		m.mu.Lock()
		if ch.gen == gen && ch.state != Ready {
			ch.state = Failed
			ch.err = err
		}
		m.mu.Unlock()
		return err
	}
	m.logger.Info("track replaced", "track", t, "path", path)
	return nil
}

// Close stops pending downloads and silences every track.
func (m *Mixer) Close() {
	m.cancel()
	m.wg.Wait()

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	for _, ch := range m.tracks {
		m.detach(ch)
	}
}

// load must be called with m.mu held.
func (m *Mixer) load(t Track, open opener) {
	ch := m.tracks[t]
	ch.state = Loading
	ch.err = nil
	gen := ch.gen
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()

		ctx, cancel := context.WithTimeout(m.ctx, m.timeout)
		streamer, format, err := open(ctx)
		cancel()
		if err == nil {
			err = m.install(t, gen, streamer, format)
		}
		if err != nil {
			m.mu.Lock()
			if ch.gen == gen {
				ch.state = Failed
				ch.err = err
			}
			m.mu.Unlock()
			m.logger.Error("load track", "track", t, "error", err)
			return
		}
		m.logger.Info("track loaded", "track", t, "rate", format.SampleRate)
	}()
}

func (m *Mixer) install(t Track, gen int, streamer beep.StreamSeekCloser, format beep.Format) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		_ = streamer.Close()
		return fmt.Errorf("mixer closed")
	}
	ch := m.tracks[t]
	if ch.gen != gen {
		// superseded while loading
		_ = streamer.Close()
		return nil
	}
	if !m.sinkReady {
		if err := m.sink.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
			_ = streamer.Close()
			return fmt.Errorf("init speaker: %w", err)
		}
		m.sinkReady = true
	}

	var stream beep.Streamer = beep.Loop(-1, streamer)
	if format.SampleRate != SampleRate {
		stream = beep.Resample(resampleQuality, format.SampleRate, SampleRate, stream)
	}
	tap := newLevelTap(stream, levelRingSize)

	m.detach(ch)
	ch.tap = tap
	ch.closer = streamer
	ch.ctrl = &beep.Ctrl{
		Streamer: &effects.Gain{Streamer: tap, Gain: m.volume - 1},
		Paused:   !ch.want,
	}
	ch.state = Ready
	ch.err = nil
	m.sink.Play(ch.ctrl)
	return nil
}

// detach drops the current stream of ch from the sink. A Ctrl with no
// streamer reports drained, so the speaker forgets it.
func (m *Mixer) detach(ch *channel) {
	if ch.ctrl != nil {
		m.sink.Lock()
		ch.ctrl.Streamer = nil
		m.sink.Unlock()
		ch.ctrl = nil
	}
	if ch.closer != nil {
		_ = ch.closer.Close()
		ch.closer = nil
	}
	ch.tap = nil
}

func (m *Mixer) setPaused(ch *channel, paused bool) {
	m.sink.Lock()
	ch.ctrl.Paused = paused
	m.sink.Unlock()
}
