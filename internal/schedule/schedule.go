// Package schedule runs periodic tasks against an externally supplied clock.
// The frame loop calls Advance once per frame, so tasks run on the same
// goroutine as the rest of the dashboard state.
package schedule

import "time"

type Task struct {
	name     string
	interval time.Duration
	next     time.Time
	fn       func(now time.Time)
	runs     int
	stopped  bool
}

// Stop cancels the task. It is safe to call more than once.
func (t *Task) Stop() {
	t.stopped = true
}

func (t *Task) Stopped() bool {
	return t.stopped
}

// Runs reports how many times the task has fired.
func (t *Task) Runs() int {
	return t.runs
}

func (t *Task) Name() string {
	return t.name
}

type Scheduler struct {
	tasks []*Task
}

func New() *Scheduler {
	return &Scheduler{}
}

// Every registers fn to fire each interval, the first time at start+interval.
func (s *Scheduler) Every(name string, start time.Time, interval time.Duration, fn func(now time.Time)) *Task {
	if interval <= 0 {
		panic("schedule: non-positive interval for " + name)
	}
	t := &Task{
		name:     name,
		interval: interval,
		next:     start.Add(interval),
		fn:       fn,
	}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance fires every task that is due at now. A task fires at most once per
// call; when it has fallen more than one interval behind, its schedule is
// re-anchored at now instead of bursting.
func (s *Scheduler) Advance(now time.Time) {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if t.stopped {
			continue
		}
		if !now.Before(t.next) {
			t.fn(now)
			t.runs++
			t.next = t.next.Add(t.interval)
			if !t.next.After(now) {
				t.next = now.Add(t.interval)
			}
		}
		if !t.stopped {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
}

// StopAll cancels every registered task.
func (s *Scheduler) StopAll() {
	for _, t := range s.tasks {
		t.Stop()
	}
	s.tasks = nil
}

// Len returns the number of live tasks.
func (s *Scheduler) Len() int {
	n := 0
	for _, t := range s.tasks {
		if !t.stopped {
			n++
		}
	}
	return n
}
