// Package contact turns per-frame overlap checks into contact-begin
// events published on the level's donburi world.
package contact

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Kind distinguishes overlap volumes from solid bodies.
type Kind int

const (
	KindTrigger Kind = iota
	KindSolid
)

func (k Kind) String() string {
	switch k {
	case KindTrigger:
		return "trigger"
	case KindSolid:
		return "solid"
	}
	return "unknown"
}

// Event is delivered once when Other starts touching This.
type Event struct {
	This  donburi.Entity
	Other donburi.Entity
	// Tag is the collision tag carried by Other, e.g. "Player".
	Tag  string
	Kind Kind
}

// Began carries contact-begin events. Handlers subscribe per world and
// receive them when ProcessEvents runs.
var Began = events.NewEventType[Event]()

type pair struct {
	this, other donburi.Entity
	kind        Kind
}

// Tracker remembers which pairs were touching last frame so that only
// new contacts become events.
type Tracker struct {
	touching map[pair]struct{}
	seen     map[pair]struct{}
}

func NewTracker() *Tracker {
	return &Tracker{
		touching: make(map[pair]struct{}),
		seen:     make(map[pair]struct{}),
	}
}

// Touch records that other overlaps this during the current frame and
// reports whether the contact just began.
func (t *Tracker) Touch(this, other donburi.Entity, kind Kind) bool {
	p := pair{this: this, other: other, kind: kind}
	t.seen[p] = struct{}{}
	_, already := t.touching[p]
	return !already
}

// EndFrame forgets pairs that were not touched this frame.
func (t *Tracker) EndFrame() {
	t.touching, t.seen = t.seen, t.touching
	clear(t.seen)
}

// Reset drops every tracked contact.
func (t *Tracker) Reset() {
	clear(t.touching)
	clear(t.seen)
}
