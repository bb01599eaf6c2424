package checkpoint

import (
	"testing"

	"github.com/yohamta/donburi"
)

// marker gives test entities a component; donburi rejects empty entities.
var marker = donburi.NewComponentType[struct{}]()

type contactor bool

func (c contactor) IsPlayer() bool { return bool(c) }

const (
	player = contactor(true)
	enemy  = contactor(false)
)

type levelName struct {
	name string
	gen  int
}

func (l *levelName) Current() string { return l.name }

func (l *levelName) Generation() int { return l.gen }

type spawnPoint struct {
	x, y  float64
	moves int
}

func (s *spawnPoint) MoveTo(x, y float64) {
	s.x, s.y = x, y
	s.moves++
}

type recordingEffects struct {
	active    map[donburi.Entity]bool
	activated []donburi.Entity
}

func newRecordingEffects() *recordingEffects {
	return &recordingEffects{active: make(map[donburi.Entity]bool)}
}

func (e *recordingEffects) Activate(id donburi.Entity) { e.activated = append(e.activated, id) }

func (e *recordingEffects) SetActive(id donburi.Entity, active bool) { e.active[id] = active }

func (e *recordingEffects) activeCount() int {
	n := 0
	for _, a := range e.active {
		if a {
			n++
		}
	}
	return n
}

type fixture struct {
	world   donburi.World
	level   *levelName
	spawn   *spawnPoint
	effects *recordingEffects
	reg     *Registry
}

func newFixture() *fixture {
	f := &fixture{
		world:   donburi.NewWorld(),
		level:   &levelName{name: "levels/one.tmx"},
		spawn:   &spawnPoint{},
		effects: newRecordingEffects(),
	}
	f.reg = NewRegistry(f.level)
	f.reg.Attach(f.effects, f.spawn)
	return f
}

func (f *fixture) add(order int, x, y float64) Checkpoint {
	cp := Checkpoint{ID: f.world.Create(marker), Order: order, X: x, Y: y}
	f.reg.Register(cp)
	return cp
}

func assertInvariant(t *testing.T, r *Registry) {
	t.Helper()
	cp, ok := r.Active()
	if !ok {
		return
	}
	if cp.Order != r.HighestOrder() {
		t.Fatalf("active checkpoint order %d != highest %d", cp.Order, r.HighestOrder())
	}
}

func TestTouchingInSequence(t *testing.T) {
	f := newFixture()
	a := f.add(0, 10, 20)
	b := f.add(1, 110, 20)

	if !f.reg.OnContact(a.ID, player) {
		t.Fatalf("A should activate")
	}
	if !f.reg.OnContact(b.ID, player) {
		t.Fatalf("B should activate")
	}

	if got := f.reg.HighestOrder(); got != 1 {
		t.Fatalf("highest = %d, want 1", got)
	}
	active, ok := f.reg.Active()
	if !ok || active.ID != b.ID {
		t.Fatalf("active = %v (%v), want B", active.ID, ok)
	}
	if f.spawn.x != 110 || f.spawn.y != 20 {
		t.Fatalf("spawn = (%v,%v), want B's position", f.spawn.x, f.spawn.y)
	}
	if f.effects.active[a.ID] || !f.effects.active[b.ID] {
		t.Fatalf("visuals: A=%v B=%v", f.effects.active[a.ID], f.effects.active[b.ID])
	}
	if len(f.effects.activated) != 2 {
		t.Fatalf("activation effects played %d times, want 2", len(f.effects.activated))
	}
}

func TestProgressIsMonotonic(t *testing.T) {
	f := newFixture()
	cps := []Checkpoint{
		f.add(0, 0, 0),
		f.add(1, 10, 0),
		f.add(2, 20, 0),
		f.add(3, 30, 0),
	}

	touches := []int{0, 1, 1, 3, 2, 0, 1, 3}
	prev := f.reg.HighestOrder()
	for _, i := range touches {
		f.reg.OnContact(cps[i].ID, player)
		got := f.reg.HighestOrder()
		if got < prev {
			t.Fatalf("highest went backwards: %d -> %d", prev, got)
		}
		prev = got
		assertInvariant(t, f.reg)
		if n := f.effects.activeCount(); n > 1 {
			t.Fatalf("%d checkpoints show active", n)
		}
	}

	if f.spawn.x != 30 {
		t.Fatalf("spawn moved backwards to x=%v", f.spawn.x)
	}
	if f.spawn.moves != 3 {
		t.Fatalf("spawn moved %d times, want 3", f.spawn.moves)
	}
}

func TestNonPlayerContactIsIgnored(t *testing.T) {
	f := newFixture()
	a := f.add(0, 5, 5)

	for _, who := range []Contactor{enemy, nil} {
		if f.reg.OnContact(a.ID, who) {
			t.Fatalf("contact from %v activated a checkpoint", who)
		}
	}
	if f.reg.HighestOrder() != -1 {
		t.Fatalf("highest = %d, want -1", f.reg.HighestOrder())
	}
	if _, ok := f.reg.Active(); ok {
		t.Fatalf("no checkpoint should be active")
	}
	if f.spawn.moves != 0 || len(f.effects.activated) != 0 {
		t.Fatalf("state changed on non-player contact")
	}
}

func TestUnknownCheckpointIsIgnored(t *testing.T) {
	f := newFixture()
	if f.reg.OnContact(f.world.Create(marker), player) {
		t.Fatalf("unregistered checkpoint activated")
	}
}

func TestUnregisterActiveKeepsHighest(t *testing.T) {
	f := newFixture()
	a := f.add(0, 0, 0)
	b := f.add(1, 0, 0)
	f.reg.OnContact(b.ID, player)

	f.reg.Unregister(b.ID)
	if _, ok := f.reg.Active(); ok {
		t.Fatalf("active should be cleared")
	}
	if f.reg.HighestOrder() != 1 {
		t.Fatalf("highest = %d, want 1", f.reg.HighestOrder())
	}
	if f.reg.OnContact(a.ID, player) {
		t.Fatalf("lower checkpoint activated after unregister")
	}
	if f.reg.Len() != 1 {
		t.Fatalf("Len = %d, want 1", f.reg.Len())
	}
	f.reg.Unregister(b.ID)
}

func TestLevelChangeResets(t *testing.T) {
	f := newFixture()
	a := f.add(4, 0, 0)
	f.reg.OnContact(a.ID, player)

	f.level.name = "levels/two.tmx"
	if got := f.reg.HighestOrder(); got != -1 {
		t.Fatalf("highest after level change = %d, want -1", got)
	}
	if f.reg.Len() != 0 {
		t.Fatalf("members survived level change")
	}
	if f.reg.Level() != "levels/two.tmx" {
		t.Fatalf("Level = %q", f.reg.Level())
	}

	f.reg.Attach(f.effects, f.spawn)
	b := f.add(0, 1, 1)
	if !f.reg.OnContact(b.ID, player) {
		t.Fatalf("order 0 should activate in the new level")
	}
}

func TestReloadingSameLevelResets(t *testing.T) {
	f := newFixture()
	a := f.add(0, 1, 1)
	b := f.add(1, 2, 2)
	f.reg.OnContact(b.ID, player)

	f.level.gen++
	if got := f.reg.HighestOrder(); got != -1 {
		t.Fatalf("highest after reload = %d, want -1", got)
	}
	if f.reg.Len() != 0 {
		t.Fatalf("members survived the reload")
	}

	f.reg.Attach(f.effects, f.spawn)
	f.reg.Register(a)
	f.reg.Register(b)
	if !f.reg.OnContact(a.ID, player) {
		t.Fatalf("A gated by the previous load's progress")
	}
	if f.spawn.x != 1 || !f.reg.IsActive(a.ID) {
		t.Fatalf("spawn = (%v,%v), active A = %v", f.spawn.x, f.spawn.y, f.reg.IsActive(a.ID))
	}
}

func TestLevelChangeIsObservedBeforeRegister(t *testing.T) {
	f := newFixture()
	old := f.add(9, 0, 0)
	f.reg.OnContact(old.ID, player)

	f.level.name = "levels/two.tmx"
	fresh := f.add(0, 0, 0)
	if f.reg.Len() != 1 {
		t.Fatalf("Len = %d, want only the new member", f.reg.Len())
	}
	if !f.reg.OnContact(fresh.ID, player) {
		t.Fatalf("new level member blocked by the previous level's progress")
	}
}

func TestBootstrapActivatesSingleFirst(t *testing.T) {
	f := newFixture()
	first := Checkpoint{ID: f.world.Create(marker), Order: 0, First: true, X: 3, Y: 4}
	f.reg.Register(first)
	f.add(1, 50, 4)

	if !f.reg.Bootstrap() {
		t.Fatalf("Bootstrap should activate the first checkpoint")
	}
	if !f.reg.IsActive(first.ID) || f.spawn.x != 3 || f.spawn.y != 4 {
		t.Fatalf("first checkpoint not active or spawn not moved")
	}
	if f.reg.Bootstrap() {
		t.Fatalf("second Bootstrap should be a no-op")
	}
}

func TestBootstrapSkipsAmbiguousFirst(t *testing.T) {
	f := newFixture()
	for i := 0; i < 2; i++ {
		f.reg.Register(Checkpoint{ID: f.world.Create(marker), First: true})
	}
	if f.reg.Bootstrap() {
		t.Fatalf("Bootstrap must not guess between several first checkpoints")
	}
	if f.reg.HighestOrder() != -1 {
		t.Fatalf("highest = %d, want -1", f.reg.HighestOrder())
	}
}

func TestBootstrapAfterProgressIsNoop(t *testing.T) {
	f := newFixture()
	first := Checkpoint{ID: f.world.Create(marker), First: true}
	f.reg.Register(first)
	b := f.add(2, 0, 0)
	f.reg.OnContact(b.ID, player)

	if f.reg.Bootstrap() {
		t.Fatalf("Bootstrap ran after progress was made")
	}
	if !f.reg.IsActive(b.ID) {
		t.Fatalf("active checkpoint changed")
	}
}

func TestMissingSpawnLocationStillActivates(t *testing.T) {
	r := NewRegistry(nil)
	effects := newRecordingEffects()
	r.Attach(effects, nil)
	w := donburi.NewWorld()
	cp := Checkpoint{ID: w.Create(marker), Order: 0}
	r.Register(cp)

	if !r.OnContact(cp.ID, player) {
		t.Fatalf("checkpoint should activate without a spawn location")
	}
	if !effects.active[cp.ID] {
		t.Fatalf("visual state not updated")
	}
}
