package scenes

import (
	"image/color"

	"github.com/automoto/waypoint/assets"
	"github.com/automoto/waypoint/checkpoint"
	"github.com/automoto/waypoint/components"
	cfg "github.com/automoto/waypoint/config"
	"github.com/automoto/waypoint/contact"
	"github.com/automoto/waypoint/fade"
	"github.com/automoto/waypoint/level"
	"github.com/automoto/waypoint/systems"
	"github.com/automoto/waypoint/systems/factory"
	"github.com/automoto/waypoint/task"
	"github.com/automoto/waypoint/transition"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Session holds the objects that outlive a single level.
type Session struct {
	Fader    func() *fade.Fader
	Registry *checkpoint.Registry
	Runner   *task.Runner
	Levels   level.Loader
}

// PlatformerScene is one loaded level.
type PlatformerScene struct {
	ecs     *ecs.ECS
	session Session
	tracker *contact.Tracker
}

// NewPlatformerScene builds the world for lvl. The level must already be
// current in the session's loader so the registry binds to it.
func NewPlatformerScene(lvl assets.Level, s Session) *PlatformerScene {
	ps := &PlatformerScene{session: s, tracker: contact.NewTracker()}
	ps.configure(&lvl)
	return ps
}

func (ps *PlatformerScene) Update() {
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// Close detaches the scene's checkpoints from the registry.
func (ps *PlatformerScene) Close() {
	if ps.ecs == nil || ps.session.Registry == nil {
		return
	}
	systems.UnregisterCheckpoints(ps.ecs, ps.session.Registry)
}

// World exposes the scene's ECS.
func (ps *PlatformerScene) World() *ecs.ECS { return ps.ecs }

func (ps *PlatformerScene) blocker() systems.InputBlocker {
	if ps.session.Fader == nil {
		return nil
	}
	if f := ps.session.Fader(); f != nil {
		return f
	}
	return nil
}

func (ps *PlatformerScene) configure(lvl *assets.Level) {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first, even when paused)
	ecs.AddSystem(systems.UpdateAudio)

	// Systems that always run
	ecs.AddSystem(systems.NewInputSystem(ps.blocker))
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateSettings)

	// Game systems wrapped with the pause check
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCollisions))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateObjects))
	ecs.AddSystem(systems.WithPauseCheck(systems.NewContactSystem(ps.tracker)))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateDeaths))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateMessage))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ecs.AddRenderer(cfg.Default, systems.DrawParticles)
	ecs.AddRenderer(cfg.Default, systems.NewHUDRenderer(ps.session.Registry))
	ecs.AddRenderer(cfg.Default, systems.DrawMessage)
	ecs.AddRenderer(cfg.Default, systems.NewDebugRenderer(systems.DebugSources{
		Registry: ps.session.Registry,
		Fader:    ps.session.Fader,
		Runner:   ps.session.Runner,
	}))
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ps.ecs = ecs

	// Create the level entity first; the space and camera read its size.
	factory.CreateLevel(ecs, lvl)
	factory.CreateSpace(ecs, lvl.Width, lvl.Height, cfg.Physics.CellSize, cfg.Physics.CellSize)
	factory.CreateCamera(ecs, lvl.PlayerSpawn.X, lvl.PlayerSpawn.Y)

	for _, r := range lvl.Solids {
		factory.CreateWall(ecs, r.X, r.Y, r.Width, r.Height)
	}
	for _, r := range lvl.DeadZones {
		factory.CreateDeadZone(ecs, r.X, r.Y, r.Width, r.Height)
	}

	spawn := factory.CreateSpawnPoint(ecs, lvl.PlayerSpawn.X, lvl.PlayerSpawn.Y)

	for _, cp := range lvl.Checkpoints {
		factory.CreateCheckpoint(ecs, cp)
	}
	deps := transition.Deps{
		Fader:  ps.session.Fader,
		Loader: ps.session.Levels,
		Runner: ps.session.Runner,
	}
	for _, t := range lvl.Transitions {
		factory.CreateTransition(ecs, t, deps)
	}

	contact.Began.Subscribe(ecs.World, systems.NewTransitionContactHandler(ecs))
	if ps.session.Registry != nil {
		contact.Began.Subscribe(ecs.World, systems.NewCheckpointContactHandler(ps.session.Registry))
		// Moves the spawn point to the level's first checkpoint, if any.
		systems.RegisterCheckpoints(ecs, ps.session.Registry)
	}

	player := factory.CreatePlayer(ecs, spawn.X, spawn.Y)
	obj := components.Object.Get(player)
	systems.SnapCamera(ecs, obj.X+obj.W/2, obj.Y+obj.H/2)
}
