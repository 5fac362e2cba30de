package schedule

import (
	"testing"
	"time"
)

func TestEvery(t *testing.T) {
	start := time.Unix(0, 0)
	s := New()

	var fired []time.Duration
	task := s.Every("chart", start, 2*time.Second, func(now time.Time) {
		fired = append(fired, now.Sub(start))
	})

	for ms := 0; ms <= 7000; ms += 500 {
		s.Advance(start.Add(time.Duration(ms) * time.Millisecond))
	}

	want := []time.Duration{2 * time.Second, 4 * time.Second, 6 * time.Second}
	if len(fired) != len(want) {
		t.Fatalf("got %v", fired)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Fatalf("got %v", fired)
		}
	}
	if task.Runs() != 3 {
		t.Fatalf("got %d runs", task.Runs())
	}
}

func TestStop(t *testing.T) {
	start := time.Unix(0, 0)
	s := New()

	n := 0
	task := s.Every("terminal", start, time.Second, func(time.Time) { n++ })
	s.Advance(start.Add(time.Second))
	task.Stop()
	task.Stop()
	s.Advance(start.Add(2 * time.Second))
	s.Advance(start.Add(3 * time.Second))

	if n != 1 {
		t.Fatalf("got %d", n)
	}
	if s.Len() != 0 {
		t.Fatalf("got %d live tasks", s.Len())
	}
}

func TestStopFromCallback(t *testing.T) {
	start := time.Unix(0, 0)
	s := New()

	var task *Task
	n := 0
	task = s.Every("once", start, time.Second, func(time.Time) {
		n++
		task.Stop()
	})
	for i := 1; i <= 5; i++ {
		s.Advance(start.Add(time.Duration(i) * time.Second))
	}
	if n != 1 {
		t.Fatalf("got %d", n)
	}
}

func TestNoBurstAfterStall(t *testing.T) {
	start := time.Unix(0, 0)
	s := New()

	n := 0
	s.Every("chart", start, time.Second, func(time.Time) { n++ })
	s.Advance(start.Add(10 * time.Second))
	s.Advance(start.Add(10*time.Second + 500*time.Millisecond))
	if n != 1 {
		t.Fatalf("got %d", n)
	}
	s.Advance(start.Add(11 * time.Second))
	if n != 2 {
		t.Fatalf("got %d", n)
	}
}

func TestStopAll(t *testing.T) {
	start := time.Unix(0, 0)
	s := New()
	a := s.Every("a", start, time.Second, func(time.Time) {})
	b := s.Every("b", start, time.Second, func(time.Time) {})
	s.StopAll()
	if !a.Stopped() || !b.Stopped() || s.Len() != 0 {
		t.Fatal("tasks still live")
	}
}
