package audio

import (
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// Sink is the output device. Speaker is the real one; tests substitute their
// own.
type Sink interface {
	Init(sampleRate beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	Lock()
	Unlock()
}

type Speaker struct{}

var _ Sink = Speaker{}

func (Speaker) Init(sampleRate beep.SampleRate, bufferSize int) error {
	return speaker.Init(sampleRate, bufferSize)
}

func (Speaker) Play(s ...beep.Streamer) {
	speaker.Play(s...)
}

func (Speaker) Lock() {
	speaker.Lock()
}

func (Speaker) Unlock() {
	speaker.Unlock()
}
