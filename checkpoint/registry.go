// Package checkpoint tracks ordered checkpoint progression for the
// current level and moves the shared respawn location forward.
package checkpoint

import (
	"log"

	"github.com/yohamta/donburi"
)

// Checkpoint is a registry member. Members are identified by the
// entity that carries them in the level world.
type Checkpoint struct {
	ID donburi.Entity
	// Order is the progression rank. Equal orders are not ordered
	// against each other; the first one reached wins.
	Order int
	// First marks the checkpoint that seeds the spawn location when a
	// level starts.
	First bool
	X, Y  float64
}

// Contactor is whatever touched a checkpoint.
type Contactor interface {
	IsPlayer() bool
}

// Effects applies the visual and audio side of checkpoint state.
type Effects interface {
	// Activate plays the one-shot activation effects of id.
	Activate(id donburi.Entity)
	// SetActive shows id as the active checkpoint or as inactive.
	SetActive(id donburi.Entity, active bool)
}

// SpawnLocation is the shared respawn position.
type SpawnLocation interface {
	MoveTo(x, y float64)
}

// LevelSource reports the identity of the loaded level. Generation
// changes on every load, so reloading the same level is a new session.
type LevelSource interface {
	Current() string
	Generation() int
}

// Registry is the level-scoped checkpoint state. One instance lives for
// the whole process; it forgets everything whenever its LevelSource
// reports a different level load.
type Registry struct {
	levels     LevelSource
	level      string
	generation int
	observed   bool

	effects Effects
	spawn   SpawnLocation

	highest int
	active  donburi.Entity
	members map[donburi.Entity]Checkpoint
	order   []donburi.Entity
}

// NewRegistry returns an empty registry. levels may be nil, in which
// case the registry never resets on its own.
func NewRegistry(levels LevelSource) *Registry {
	r := &Registry{levels: levels}
	r.reset()
	return r
}

func (r *Registry) reset() {
	r.highest = -1
	r.active = donburi.Null
	r.members = make(map[donburi.Entity]Checkpoint)
	r.order = r.order[:0]
}

// sync resets the registry if a level was loaded since the last call.
// Every exported operation runs it first.
func (r *Registry) sync() {
	if r.levels == nil {
		return
	}
	current, gen := r.levels.Current(), r.levels.Generation()
	if r.observed && current == r.level && gen == r.generation {
		return
	}
	if r.observed {
		log.Printf("checkpoint: level %q -> %q (load %d), resetting progress", r.level, current, gen)
	}
	r.level = current
	r.generation = gen
	r.observed = true
	r.reset()
}

// Attach binds the effects and spawn location of the level world that
// owns the members. Either may be nil.
func (r *Registry) Attach(effects Effects, spawn SpawnLocation) {
	r.sync()
	r.effects = effects
	r.spawn = spawn
}

// Register adds cp to the membership set, replacing an earlier entry
// with the same ID.
func (r *Registry) Register(cp Checkpoint) {
	r.sync()
	if _, ok := r.members[cp.ID]; !ok {
		r.order = append(r.order, cp.ID)
	}
	r.members[cp.ID] = cp
	if r.effects != nil {
		r.effects.SetActive(cp.ID, cp.ID == r.active)
	}
}

// Unregister removes id. If it was the active checkpoint the active slot
// is cleared; the highest order reached is kept.
func (r *Registry) Unregister(id donburi.Entity) {
	r.sync()
	if _, ok := r.members[id]; !ok {
		return
	}
	delete(r.members, id)
	for i, m := range r.order {
		if m == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	if r.active == id {
		r.active = donburi.Null
	}
}

// OnContact handles who touching checkpoint id. It reports whether the
// checkpoint became active. Contacts from anything but the player and
// contacts with checkpoints at or below the highest order reached are
// ignored.
func (r *Registry) OnContact(id donburi.Entity, who Contactor) bool {
	r.sync()
	if who == nil || !who.IsPlayer() {
		return false
	}
	cp, ok := r.members[id]
	if !ok {
		return false
	}
	if cp.Order <= r.highest {
		return false
	}
	r.activate(cp)
	return true
}

// Bootstrap activates the checkpoint marked First when nothing has been
// reached yet this session, so the spawn location is valid before the
// player touches anything. Levels with several First checkpoints are
// reported and left alone.
func (r *Registry) Bootstrap() bool {
	r.sync()
	if r.highest >= 0 || r.active != donburi.Null {
		return false
	}

	var first []Checkpoint
	for _, id := range r.order {
		if cp := r.members[id]; cp.First {
			first = append(first, cp)
		}
	}
	switch len(first) {
	case 0:
		return false
	case 1:
		r.activate(first[0])
		return true
	default:
		log.Printf("Warning: level %q has %d checkpoints marked first; none activated", r.level, len(first))
		return false
	}
}

func (r *Registry) activate(cp Checkpoint) {
	r.highest = cp.Order
	r.active = cp.ID

	if r.spawn != nil {
		r.spawn.MoveTo(cp.X, cp.Y)
	} else {
		log.Printf("Warning: no spawn location for checkpoint %v; respawn position unchanged", cp.ID)
	}

	if r.effects == nil {
		return
	}
	r.effects.Activate(cp.ID)
	for _, id := range r.order {
		r.effects.SetActive(id, id == r.active)
	}
}

// HighestOrder is the highest order reached this session, or -1.
func (r *Registry) HighestOrder() int {
	r.sync()
	return r.highest
}

// Active returns the active checkpoint, if any.
func (r *Registry) Active() (Checkpoint, bool) {
	r.sync()
	if r.active == donburi.Null {
		return Checkpoint{}, false
	}
	cp, ok := r.members[r.active]
	return cp, ok
}

// IsActive reports whether id is the active checkpoint.
func (r *Registry) IsActive(id donburi.Entity) bool {
	r.sync()
	return r.active != donburi.Null && r.active == id
}

// Len is the number of registered checkpoints.
func (r *Registry) Len() int {
	r.sync()
	return len(r.members)
}

// Level is the level name the registry state belongs to.
func (r *Registry) Level() string {
	r.sync()
	return r.level
}
