// Package level loads levels by name. Parsing happens on a background
// goroutine; the result is activated on the game's update thread the
// next time Update runs, so game state is only touched from one thread.
package level

import (
	"errors"
	"fmt"
	"log"
	"slices"

	"github.com/automoto/waypoint/assets"
)

var (
	// ErrUnknownLevel is returned for names that are not part of the build.
	ErrUnknownLevel = errors.New("level not included in build")
	// ErrBusy is returned when a load is requested while another is pending.
	ErrBusy = errors.New("level load already in progress")
)

// Loader is the level-loading collaborator used by transitions.
type Loader interface {
	Loadable(name string) bool
	LoadAsync(name string) (*Handle, error)
	Current() string
}

// ParseFunc reads a level without touching game state.
type ParseFunc func(name string) (assets.Level, error)

// ActivateFunc swaps the parsed level in. It runs on the update thread.
type ActivateFunc func(assets.Level) error

// Handle tracks one asynchronous load. It completes once the level has
// been activated, or with Err set when parsing or activation failed.
type Handle struct {
	name string
	done bool
	err  error
}

func (h *Handle) Name() string { return h.name }

func (h *Handle) Done() bool { return h.done }

func (h *Handle) Err() error { return h.err }

// Tick lets a task wait on the load.
func (h *Handle) Tick() bool { return h.done }

// Stopped reports a failed load, which ends the task.Sequence waiting
// on it.
func (h *Handle) Stopped() bool { return h.done && h.err != nil }

type result struct {
	handle *Handle
	level  assets.Level
	err    error
}

// Manager is the process-wide level loader.
type Manager struct {
	// Activate is called with each successfully parsed level.
	Activate ActivateFunc

	names    []string
	parse    ParseFunc
	current  string
	loads    int
	pending  *Handle
	results  chan result
	onLoaded []func(name string)
}

// NewManager returns a manager for the given build level list.
func NewManager(names []string, parse ParseFunc) *Manager {
	return &Manager{
		names:   slices.Clone(names),
		parse:   parse,
		results: make(chan result, 1),
	}
}

// NewEmbeddedManager serves the levels embedded in the assets package.
func NewEmbeddedManager() (*Manager, error) {
	names, err := assets.LevelNames()
	if err != nil {
		return nil, err
	}
	return NewManager(names, assets.LoadLevel), nil
}

// Names lists the loadable levels.
func (m *Manager) Names() []string { return slices.Clone(m.names) }

// Loadable reports whether name is part of the build.
func (m *Manager) Loadable(name string) bool {
	return slices.Contains(m.names, name)
}

// Current is the name of the active level, or "" before the first load.
func (m *Manager) Current() string { return m.current }

// Generation counts level activations. It changes on every load,
// including a reload of the current level.
func (m *Manager) Generation() int { return m.loads }

// Busy reports whether a load is pending.
func (m *Manager) Busy() bool { return m.pending != nil }

// OnLoaded registers fn to be called after every successful activation.
func (m *Manager) OnLoaded(fn func(name string)) {
	m.onLoaded = append(m.onLoaded, fn)
}

// LoadAsync starts parsing name in the background.
func (m *Manager) LoadAsync(name string) (*Handle, error) {
	if !m.Loadable(name) {
		return nil, fmt.Errorf("load %q: %w", name, ErrUnknownLevel)
	}
	if m.pending != nil {
		return nil, fmt.Errorf("load %q: %w", name, ErrBusy)
	}

	h := &Handle{name: name}
	m.pending = h
	go func() {
		lvl, err := m.parse(name)
		m.results <- result{handle: h, level: lvl, err: err}
	}()
	return h, nil
}

// LoadNow parses and activates name synchronously. Used for the first
// level, before there is anything on screen to keep animating.
func (m *Manager) LoadNow(name string) error {
	if !m.Loadable(name) {
		return fmt.Errorf("load %q: %w", name, ErrUnknownLevel)
	}
	if m.pending != nil {
		return fmt.Errorf("load %q: %w", name, ErrBusy)
	}
	lvl, err := m.parse(name)
	if err != nil {
		return err
	}
	return m.activate(name, lvl)
}

// Update activates a finished background load. Call it once per frame.
func (m *Manager) Update() {
	select {
	case r := <-m.results:
		m.finish(r)
	default:
	}
}

func (m *Manager) finish(r result) {
	h := r.handle
	err := r.err
	if err == nil {
		err = m.activate(h.name, r.level)
	}
	if err != nil {
		log.Printf("Error: could not load level %q: %v", h.name, err)
	}
	h.err = err
	h.done = true
	m.pending = nil
}

// activate makes name current before calling Activate, so that
// anything built during activation already sees the new level.
func (m *Manager) activate(name string, lvl assets.Level) error {
	prev := m.current
	m.current = name
	m.loads++
	if m.Activate != nil {
		if err := m.Activate(lvl); err != nil {
			m.current = prev
			m.loads--
			return fmt.Errorf("activate %q: %w", name, err)
		}
	}
	for _, fn := range m.onLoaded {
		fn(name)
	}
	return nil
}
