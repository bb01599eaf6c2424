package archetypes

import (
	"github.com/automoto/waypoint/components"
	cfg "github.com/automoto/waypoint/config"
	"github.com/automoto/waypoint/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.Sprite,
	)
	Space = newArchetype(
		components.Space,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	DeadZone = newArchetype(
		tags.DeadZone,
		components.Object,
	)
	Level = newArchetype(
		components.Level,
	)
	SpawnPoint = newArchetype(
		components.SpawnPoint,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Checkpoint = newArchetype(
		tags.Checkpoint,
		components.Checkpoint,
		components.Object,
		components.Sprite,
	)
	Transition = newArchetype(
		tags.Transition,
		components.Transition,
		components.Object,
		components.Sprite,
	)
	Burst = newArchetype(
		tags.VFX,
		components.Particles,
		components.AutoDestroy,
	)
	Prop = newArchetype(
		tags.Prop,
		components.Object,
		components.Sprite,
		components.Bob,
		components.AutoDestroy,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
