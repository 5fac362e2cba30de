package feed

import (
	"time"
	"unicode/utf8"
)

const Prompt = "> "

type Line struct {
	Text  string
	Added time.Time
}

// Reveal returns the part of the line visible at now and whether the caret is
// still shown. Characters appear evenly over typewriter.
func (l Line) Reveal(now time.Time, typewriter time.Duration) (string, bool) {
	full := Prompt + l.Text
	elapsed := now.Sub(l.Added)
	if typewriter <= 0 || elapsed >= typewriter {
		return full, false
	}
	if elapsed < 0 {
		elapsed = 0
	}
	total := utf8.RuneCountInString(full)
	n := int(int64(total) * int64(elapsed) / int64(typewriter))
	i := 0
	for pos := range full {
		if i == n {
			return full[:pos], true
		}
		i++
	}
	return full, true
}

// Terminal plays a fixed message list back one line per tick, clearing the
// log and starting over once the list is exhausted.
type Terminal struct {
	messages []string
	next     int
	lines    []Line
	loops    int
}

func NewTerminal(messages []string) *Terminal {
	return &Terminal{
		messages: messages,
	}
}

func (t *Terminal) Tick(now time.Time) {
	if len(t.messages) == 0 {
		return
	}
	if t.next >= len(t.messages) {
		t.next = 0
		t.lines = t.lines[:0]
		t.loops++
	}
	t.lines = append(t.lines, Line{
		Text:  t.messages[t.next],
		Added: now,
	})
	t.next++
}

// Lines returns the lines shown since the last wrap, oldest first.
func (t *Terminal) Lines() []Line {
	out := make([]Line, len(t.lines))
	copy(out, t.lines)
	return out
}

// Loops reports how many times the log has wrapped.
func (t *Terminal) Loops() int {
	return t.loops
}
