// Package fade owns the full-screen opacity overlay used to hide level
// loads. A single Fader lives for the whole process and is advanced by
// the game loop with real elapsed time, so fades keep running while
// gameplay is paused.
package fade

import (
	"time"

	"github.com/automoto/waypoint/task"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Clock reports wall-clock time. It must not be affected by pause or
// time scaling.
type Clock interface {
	Now() time.Time
}

// RealClock is the process wall clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// Fade is the handle for one FadeTo request. It satisfies task.Task so a
// sequence can wait on it.
type Fade struct {
	target    float64
	tween     *gween.Tween
	done      bool
	cancelled bool
}

// Target is the opacity this fade animates toward.
func (f *Fade) Target() float64 { return f.target }

// Done reports whether the fade reached its target.
func (f *Fade) Done() bool { return f.done }

// Cancelled reports whether the fade was superseded or cancelled before
// reaching its target.
func (f *Fade) Cancelled() bool { return f.cancelled }

// Cancel stops the fade where it is. The overlay keeps its current
// opacity.
func (f *Fade) Cancel() {
	if !f.done {
		f.cancelled = true
	}
}

func (f *Fade) Tick() bool { return f.done || f.cancelled }

// Stopped reports a cancelled fade, which ends the task.Sequence it
// runs in.
func (f *Fade) Stopped() bool { return f.cancelled }

// Fader holds the overlay opacity in [0,1]. Only one fade runs at a
// time; the newest FadeTo wins.
type Fader struct {
	// FadeInOnLoad makes OnLevelLoaded start every level from black and
	// fade to clear over LoadFadeDuration.
	FadeInOnLoad     bool
	LoadFadeDuration time.Duration

	clock   Clock
	opacity float64
	current *Fade
	last    time.Time
}

// New returns a clear overlay driven by clock. A nil clock means
// RealClock.
func New(clock Clock) *Fader {
	if clock == nil {
		clock = RealClock{}
	}
	return &Fader{clock: clock}
}

// Opacity is the current overlay alpha.
func (f *Fader) Opacity() float64 { return f.opacity }

// Animating reports whether a fade is in flight.
func (f *Fader) Animating() bool { return f.current != nil }

// BlocksInput reports whether the overlay swallows interaction input.
// Input passes through only once the overlay is fully clear.
func (f *Fader) BlocksInput() bool { return f.opacity > 0 }

// FadeTo cancels any in-flight fade and animates linearly from the
// current opacity to target over d. A non-positive d snaps immediately
// and returns an already finished handle.
func (f *Fader) FadeTo(target float64, d time.Duration) *Fade {
	target = clamp01(target)
	if f.current != nil {
		f.current.Cancel()
		f.current = nil
	}

	fd := &Fade{target: target}
	if d <= 0 {
		f.opacity = target
		fd.done = true
		return fd
	}

	fd.tween = gween.New(float32(f.opacity), float32(target), float32(d.Seconds()), ease.Linear)
	f.current = fd
	f.last = f.clock.Now()
	return fd
}

// Update samples the clock once and advances the active fade by the real
// time elapsed since the previous sample. Call it once per frame before
// ticking tasks that wait on fades.
func (f *Fader) Update() {
	now := f.clock.Now()
	dt := now.Sub(f.last)
	f.last = now

	fd := f.current
	if fd == nil {
		return
	}
	if fd.cancelled {
		f.current = nil
		return
	}

	v, finished := fd.tween.Update(float32(dt.Seconds()))
	f.opacity = clamp01(float64(v))
	if finished {
		f.opacity = fd.target
		fd.done = true
		f.current = nil
	}
}

// OnLevelLoaded is the level-loaded notification. With FadeInOnLoad set
// it snaps the overlay to opaque and starts fading to clear.
func (f *Fader) OnLevelLoaded() *Fade {
	if !f.FadeInOnLoad {
		return nil
	}
	f.FadeTo(1, 0)
	return f.FadeTo(0, f.LoadFadeDuration)
}

// FadeOutThenIn fades to opaque, runs the task built by mid, then fades
// to clear. Each stage starts only after the previous one finished. If
// either fade is superseded by another FadeTo the sequence stops there.
func (f *Fader) FadeOutThenIn(mid func() task.Task, out, in time.Duration) task.Task {
	if mid == nil {
		mid = func() task.Task { return nil }
	}
	return task.Sequence(
		func() task.Task { return f.FadeTo(1, out) },
		mid,
		func() task.Task { return f.FadeTo(0, in) },
	)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
