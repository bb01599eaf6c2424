package task

import "testing"

// tickFunc adapts a function to a Task.
type tickFunc func() bool

func (f tickFunc) Tick() bool { return f() }

func once(fn func()) Task {
	return tickFunc(func() bool {
		fn()
		return true
	})
}

func TestSequenceRunsStepsInOrder(t *testing.T) {
	var log []string
	wait := 2

	seq := Sequence(
		func() Task { return once(func() { log = append(log, "a") }) },
		func() Task {
			log = append(log, "b-start")
			return tickFunc(func() bool {
				wait--
				return wait <= 0
			})
		},
		func() Task { return nil },
		func() Task { return once(func() { log = append(log, "c") }) },
	)

	if seq.Tick() {
		t.Fatalf("sequence finished on first tick")
	}
	if len(log) != 2 || log[0] != "a" || log[1] != "b-start" {
		t.Fatalf("unexpected log after first tick: %v", log)
	}
	if !seq.Tick() {
		t.Fatalf("sequence should finish once the wait completes")
	}
	if got := log[len(log)-1]; got != "c" {
		t.Fatalf("last step = %q, want c", got)
	}
}

func TestSequenceBuildsStepsLazily(t *testing.T) {
	built := false
	gate := false
	seq := Sequence(
		func() Task { return tickFunc(func() bool { return gate }) },
		func() Task {
			built = true
			return nil
		},
	)

	seq.Tick()
	if built {
		t.Fatalf("second step built before first completed")
	}
	gate = true
	if !seq.Tick() {
		t.Fatalf("sequence should be done")
	}
	if !built {
		t.Fatalf("second step never built")
	}
}

type stoppable struct{ stopped bool }

func (s *stoppable) Tick() bool    { return true }
func (s *stoppable) Stopped() bool { return s.stopped }

func TestSequenceEndsOnStoppedStep(t *testing.T) {
	cases := []struct {
		name  string
		step  Task
		later bool
	}{
		{"stop", Stop(), false},
		{"stopped task", &stoppable{stopped: true}, false},
		{"finished task", &stoppable{}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ran := false
			seq := Sequence(
				func() Task { return c.step },
				func() Task { return once(func() { ran = true }) },
			)
			if !seq.Tick() {
				t.Fatalf("sequence should finish in one tick")
			}
			if ran != c.later {
				t.Fatalf("later step ran = %v, want %v", ran, c.later)
			}
			if !seq.Tick() {
				t.Fatalf("finished sequence reported unfinished")
			}
		})
	}
}

func TestRunnerDropsFinishedTasks(t *testing.T) {
	r := NewRunner()
	ticks := 0
	r.Go(tickFunc(func() bool {
		ticks++
		return ticks == 3
	}))
	r.Go(Stop())
	r.Go(nil)

	if r.Len() != 2 {
		t.Fatalf("Len = %d, want 2", r.Len())
	}
	r.Update()
	if r.Len() != 1 {
		t.Fatalf("Len after first update = %d, want 1", r.Len())
	}
	r.Update()
	r.Update()
	if r.Len() != 0 {
		t.Fatalf("Len after third update = %d, want 0", r.Len())
	}
	if ticks != 3 {
		t.Fatalf("ticks = %d, want 3", ticks)
	}
}

func TestRunnerDefersTasksAddedDuringUpdate(t *testing.T) {
	r := NewRunner()
	childTicks := 0
	r.Go(once(func() {
		r.Go(tickFunc(func() bool {
			childTicks++
			return true
		}))
	}))

	r.Update()
	if childTicks != 0 {
		t.Fatalf("child ticked in the update that scheduled it")
	}
	if r.Len() != 1 {
		t.Fatalf("Len = %d, want 1", r.Len())
	}
	r.Update()
	if childTicks != 1 || r.Len() != 0 {
		t.Fatalf("child ticks = %d, Len = %d", childTicks, r.Len())
	}
}
