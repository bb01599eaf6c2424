// Package transition runs the fade-out, load, fade-in sequence of a
// level exit. Each Sequencer fires at most once.
package transition

import (
	"log"
	"time"

	"github.com/automoto/waypoint/contact"
	"github.com/automoto/waypoint/fade"
	"github.com/automoto/waypoint/level"
	"github.com/automoto/waypoint/task"
)

// State of a Sequencer. Done is terminal.
type State int

const (
	Idle State = iota
	Firing
	Done
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Firing:
		return "firing"
	case Done:
		return "done"
	}
	return "unknown"
}

// Mode selects which kind of contact fires the transition.
type Mode int

const (
	ModeTrigger Mode = iota
	ModeSolid
)

func (m Mode) kind() contact.Kind {
	if m == ModeSolid {
		return contact.KindSolid
	}
	return contact.KindTrigger
}

type Config struct {
	// Destination is the level to load. Empty means the transition only
	// fades the screen out.
	Destination string
	// PlayerTag is the collision tag a contactor must carry.
	PlayerTag string
	Mode      Mode
	FadeOut   time.Duration
	FadeIn    time.Duration
	// FadeInAfterLoad fades back to clear once the destination is active.
	FadeInAfterLoad bool
}

// Deps are the process-wide collaborators a sequence runs against.
type Deps struct {
	// Fader returns the current overlay, or nil when there is none. It
	// is asked again after the load because the overlay may have been
	// replaced in the meantime.
	Fader  func() *fade.Fader
	Loader level.Loader
	// Runner ticks the sequence. It must outlive the level that owns
	// the trigger, since the sequence continues after the swap.
	Runner *task.Runner
}

// Sequencer is the per-trigger state machine Idle -> Firing -> Done.
type Sequencer struct {
	cfg  Config
	deps Deps

	state State
	run   task.Task
	out   *fade.Fade
}

func New(cfg Config, deps Deps) *Sequencer {
	return &Sequencer{cfg: cfg, deps: deps}
}

func (s *Sequencer) State() State { return s.state }

func (s *Sequencer) Config() Config { return s.cfg }

// OnContact fires the transition for the first qualifying contact: the
// contactor carries the player tag and the contact kind matches Mode.
func (s *Sequencer) OnContact(e contact.Event) bool {
	if e.Tag != s.cfg.PlayerTag || e.Kind != s.cfg.Mode.kind() {
		return false
	}
	return s.TriggerNow()
}

// TriggerNow fires the transition without a contact. It reports false
// if the sequencer already fired.
func (s *Sequencer) TriggerNow() bool {
	if s.state != Idle {
		return false
	}
	s.state = Firing
	if s.deps.Runner == nil {
		log.Printf("Error: transition to %q has no task runner; aborting", s.cfg.Destination)
		s.state = Done
		return true
	}
	s.deps.Runner.Go(s)
	return true
}

func (s *Sequencer) fader() *fade.Fader {
	if s.deps.Fader == nil {
		return nil
	}
	return s.deps.Fader()
}

// Tick advances the sequence: fade out, load, then fade in. Each stage
// starts only after the previous one finished; a superseded fade-out or
// a failed load ends the sequence there.
func (s *Sequencer) Tick() bool {
	if s.run == nil {
		s.run = task.Sequence(s.fadeOut, s.load, s.fadeIn)
	}
	if !s.run.Tick() {
		return false
	}
	if s.out != nil && s.out.Cancelled() {
		log.Printf("Warning: fade-out for transition to %q was superseded; level not loaded", s.cfg.Destination)
	}
	s.state = Done
	s.out = nil
	return true
}

func (s *Sequencer) fadeOut() task.Task {
	f := s.fader()
	if f == nil {
		log.Printf("Warning: no screen fader; transition to %q continues without fading", s.cfg.Destination)
		return nil
	}
	s.out = f.FadeTo(1, s.cfg.FadeOut)
	return s.out
}

func (s *Sequencer) load() task.Task {
	dest := s.cfg.Destination
	if dest == "" {
		return task.Stop()
	}
	if s.deps.Loader == nil || !s.deps.Loader.Loadable(dest) {
		log.Printf("Error: level %q is not included in the build; transition aborted", dest)
		return task.Stop()
	}
	h, err := s.deps.Loader.LoadAsync(dest)
	if err != nil || h == nil {
		log.Printf("Error: could not start loading level %q: %v", dest, err)
		return task.Stop()
	}
	return h
}

// fadeIn asks for the fader again since the load may have replaced it.
func (s *Sequencer) fadeIn() task.Task {
	if !s.cfg.FadeInAfterLoad {
		return nil
	}
	f := s.fader()
	if f == nil {
		log.Printf("Warning: no screen fader after loading %q; skipping fade-in", s.cfg.Destination)
		return nil
	}
	return f.FadeTo(0, s.cfg.FadeIn)
}
