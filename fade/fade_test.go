package fade

import (
	"math"
	"testing"
	"time"

	"github.com/automoto/waypoint/task"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestFader() (*Fader, *fakeClock) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	return New(clock), clock
}

type tickFunc func() bool

func (f tickFunc) Tick() bool { return f() }

func near(a, b float64) bool { return math.Abs(a-b) < 1e-3 }

func TestFadeToZeroDurationSnaps(t *testing.T) {
	f, _ := newTestFader()

	fd := f.FadeTo(1, 0)
	if f.Opacity() != 1 || !f.BlocksInput() {
		t.Fatalf("after FadeTo(1,0): opacity=%v blocks=%v", f.Opacity(), f.BlocksInput())
	}
	if !fd.Done() || f.Animating() {
		t.Fatalf("zero-duration fade should be done immediately")
	}

	f.FadeTo(0, 0)
	if f.Opacity() != 0 || f.BlocksInput() {
		t.Fatalf("after FadeTo(0,0): opacity=%v blocks=%v", f.Opacity(), f.BlocksInput())
	}
}

func TestFadeToInterpolatesWithClock(t *testing.T) {
	f, clock := newTestFader()
	fd := f.FadeTo(1, time.Second)

	cases := []struct {
		step time.Duration
		want float64
	}{
		{250 * time.Millisecond, 0.25},
		{250 * time.Millisecond, 0.5},
		{250 * time.Millisecond, 0.75},
	}
	for _, c := range cases {
		clock.Advance(c.step)
		f.Update()
		if !near(f.Opacity(), c.want) {
			t.Fatalf("opacity = %v, want %v", f.Opacity(), c.want)
		}
		if fd.Done() {
			t.Fatalf("fade finished early")
		}
	}

	clock.Advance(time.Second)
	f.Update()
	if f.Opacity() != 1 || !fd.Done() || f.Animating() {
		t.Fatalf("opacity=%v done=%v animating=%v", f.Opacity(), fd.Done(), f.Animating())
	}
}

func TestUpdateWithoutTimePassingHoldsOpacity(t *testing.T) {
	f, _ := newTestFader()
	f.FadeTo(1, time.Second)
	f.Update()
	f.Update()
	if f.Opacity() != 0 {
		t.Fatalf("opacity moved without the clock advancing: %v", f.Opacity())
	}
}

func TestNewFadeCancelsPrevious(t *testing.T) {
	f, clock := newTestFader()
	first := f.FadeTo(1, time.Second)

	clock.Advance(500 * time.Millisecond)
	f.Update()
	mid := f.Opacity()
	if !near(mid, 0.5) {
		t.Fatalf("opacity = %v, want 0.5", mid)
	}

	second := f.FadeTo(0, time.Second)
	if !first.Cancelled() || first.Done() {
		t.Fatalf("first fade should be cancelled")
	}

	prev := mid
	for i := 0; i < 8; i++ {
		clock.Advance(125 * time.Millisecond)
		f.Update()
		if f.Opacity() > prev+1e-6 {
			t.Fatalf("opacity rose toward the abandoned target: %v > %v", f.Opacity(), prev)
		}
		prev = f.Opacity()
	}
	if f.Opacity() != 0 || !second.Done() {
		t.Fatalf("opacity=%v done=%v", f.Opacity(), second.Done())
	}
	if first.Done() {
		t.Fatalf("cancelled fade reported done")
	}
}

func TestCancelKeepsOpacity(t *testing.T) {
	f, clock := newTestFader()
	fd := f.FadeTo(1, time.Second)
	clock.Advance(300 * time.Millisecond)
	f.Update()
	fd.Cancel()

	clock.Advance(time.Second)
	f.Update()
	if !near(f.Opacity(), 0.3) {
		t.Fatalf("opacity = %v, want 0.3", f.Opacity())
	}
	if f.Animating() {
		t.Fatalf("cancelled fade still animating")
	}
	if !fd.Tick() {
		t.Fatalf("cancelled fade should report finished to waiting tasks")
	}
}

func TestTargetIsClamped(t *testing.T) {
	f, _ := newTestFader()
	if fd := f.FadeTo(4, 0); fd.Target() != 1 || f.Opacity() != 1 {
		t.Fatalf("target=%v opacity=%v", fd.Target(), f.Opacity())
	}
	if fd := f.FadeTo(-2, 0); fd.Target() != 0 || f.Opacity() != 0 {
		t.Fatalf("target=%v opacity=%v", fd.Target(), f.Opacity())
	}
}

func TestOnLevelLoaded(t *testing.T) {
	f, clock := newTestFader()
	if fd := f.OnLevelLoaded(); fd != nil || f.Opacity() != 0 {
		t.Fatalf("fade-in on load should be off by default")
	}

	f.FadeInOnLoad = true
	f.LoadFadeDuration = time.Second
	fd := f.OnLevelLoaded()
	if f.Opacity() != 1 {
		t.Fatalf("opacity = %v, want 1 right after load", f.Opacity())
	}
	clock.Advance(2 * time.Second)
	f.Update()
	if f.Opacity() != 0 || !fd.Done() {
		t.Fatalf("opacity=%v done=%v", f.Opacity(), fd.Done())
	}
}

// frame drives the fader then a task, the order the game loop uses.
func frame(f *Fader, clock *fakeClock, tk task.Task) bool {
	clock.Advance(100 * time.Millisecond)
	f.Update()
	return tk.Tick()
}

func TestFadeOutThenInIsSequential(t *testing.T) {
	f, clock := newTestFader()

	midStarted := false
	midFrames := 0
	var opacityAtMid float64
	seq := f.FadeOutThenIn(func() task.Task {
		midStarted = true
		opacityAtMid = f.Opacity()
		return tickFunc(func() bool {
			midFrames++
			if f.Animating() {
				t.Errorf("fade-in started before the mid action finished")
			}
			return midFrames == 3
		})
	}, 300*time.Millisecond, 300*time.Millisecond)

	if seq.Tick() {
		t.Fatalf("sequence finished on first tick")
	}
	for i := 0; i < 2; i++ {
		frame(f, clock, seq)
		if midStarted {
			t.Fatalf("mid action started before the fade-out completed (opacity %v)", f.Opacity())
		}
	}

	done := false
	for i := 0; i < 20 && !done; i++ {
		done = frame(f, clock, seq)
	}
	if !done {
		t.Fatalf("sequence never finished")
	}
	if opacityAtMid != 1 {
		t.Fatalf("opacity when mid action started = %v, want 1", opacityAtMid)
	}
	if midFrames != 3 {
		t.Fatalf("mid frames = %d, want 3", midFrames)
	}
	if f.Opacity() != 0 || f.BlocksInput() {
		t.Fatalf("overlay should be clear at the end, opacity=%v", f.Opacity())
	}
}

func TestFadeOutThenInStopsWhenSuperseded(t *testing.T) {
	f, clock := newTestFader()
	midStarted := false
	seq := f.FadeOutThenIn(func() task.Task {
		midStarted = true
		return nil
	}, time.Second, time.Second)

	seq.Tick()
	f.FadeTo(0.2, 0)
	if !frame(f, clock, seq) {
		t.Fatalf("superseded sequence should stop")
	}
	if midStarted {
		t.Fatalf("mid action ran after the fade-out was superseded")
	}
	if f.Opacity() != 0.2 {
		t.Fatalf("opacity = %v, want 0.2", f.Opacity())
	}
}
