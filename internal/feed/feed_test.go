package feed

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"
)

func TestEnergyWindow(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	e := NewEnergy(rng, 20)
	if e.Len() != 20 {
		t.Fatalf("got %d", e.Len())
	}

	for tick := 1; tick <= 50; tick++ {
		before := e.Samples()
		e.Tick(rng)
		after := e.Samples()
		if len(after) != 20 {
			t.Fatalf("tick %d: got %d samples", tick, len(after))
		}
		// FIFO: everything shifts left by one
		for i := 0; i < 19; i++ {
			if after[i] != before[i+1] {
				t.Fatalf("tick %d: sample %d not shifted", tick, i)
			}
		}
		for _, v := range after {
			if v < 0 || v > 100 {
				t.Fatalf("sample %v out of range", v)
			}
		}
		if e.Version() != uint64(tick) {
			t.Fatalf("got version %d", e.Version())
		}
	}
}

func TestSamplesIsCopy(t *testing.T) {
	e := NewEnergy(rand.New(rand.NewPCG(1, 2)), 3)
	s := e.Samples()
	s[0] = -1
	if e.Samples()[0] == -1 {
		t.Fatal("Samples exposed internal storage")
	}
}

func TestTerminalLoop(t *testing.T) {
	messages := []string{"a", "b", "c"}
	term := NewTerminal(messages)
	start := time.Unix(0, 0)

	for tick := 0; tick < 10; tick++ {
		term.Tick(start.Add(time.Duration(tick) * 3 * time.Second))
		lines := term.Lines()
		last := lines[len(lines)-1]
		if last.Text != messages[tick%len(messages)] {
			t.Fatalf("tick %d: got %q", tick, last.Text)
		}
		if want := tick%len(messages) + 1; len(lines) != want {
			t.Fatalf("tick %d: got %d lines, want %d", tick, len(lines), want)
		}
	}
	if term.Loops() != 3 {
		t.Fatalf("got %d loops", term.Loops())
	}
}

func TestTerminalEmpty(t *testing.T) {
	term := NewTerminal(nil)
	term.Tick(time.Now())
	if len(term.Lines()) != 0 {
		t.Fatal("empty terminal produced lines")
	}
}

func TestReveal(t *testing.T) {
	start := time.Unix(0, 0)
	line := Line{Text: "abcdefgh", Added: start}
	typewriter := 1000 * time.Millisecond

	text, caret := line.Reveal(start, typewriter)
	if text != "" || !caret {
		t.Fatalf("got %q %v", text, caret)
	}

	text, caret = line.Reveal(start.Add(500*time.Millisecond), typewriter)
	if text != "> abc" || !caret {
		t.Fatalf("got %q %v", text, caret)
	}

	text, caret = line.Reveal(start.Add(time.Second), typewriter)
	if text != "> abcdefgh" || caret {
		t.Fatalf("got %q %v", text, caret)
	}

	text, caret = line.Reveal(start, 0)
	if text != "> abcdefgh" || caret {
		t.Fatalf("got %q %v", text, caret)
	}
}

func TestRevealMultibyte(t *testing.T) {
	start := time.Unix(0, 0)
	line := Line{Text: "gev/cm³ ok", Added: start}
	for ms := 0; ms <= 1000; ms += 50 {
		text, _ := line.Reveal(start.Add(time.Duration(ms)*time.Millisecond), time.Second)
		if !strings.HasPrefix(Prompt+line.Text, text) {
			t.Fatalf("%dms: %q is not a prefix", ms, text)
		}
	}
}

func TestRenderChart(t *testing.T) {
	e := NewEnergy(rand.New(rand.NewPCG(1, 2)), 20)
	img, err := RenderChart(e.Samples(), 320, 120)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 120 {
		t.Fatalf("got bounds %v", b)
	}

	if _, err := RenderChart([]float64{1}, 320, 120); err == nil {
		t.Fatal("expected error for a single sample")
	}
}
