package systems

import (
	"github.com/automoto/waypoint/checkpoint"
	"github.com/automoto/waypoint/components"
	cfg "github.com/automoto/waypoint/config"
	"github.com/automoto/waypoint/contact"
	"github.com/automoto/waypoint/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// playerTag identifies a contactor by its collision tag.
type playerTag string

func (t playerTag) IsPlayer() bool { return string(t) == cfg.C.PlayerTag }

// checkpointEffects shows registry state on the checkpoint entities of
// one level world.
type checkpointEffects struct {
	ecs *ecs.ECS
}

// NewCheckpointEffects returns the checkpoint.Effects for a level world.
func NewCheckpointEffects(e *ecs.ECS) checkpoint.Effects {
	return &checkpointEffects{ecs: e}
}

func (c *checkpointEffects) entry(id donburi.Entity) (*donburi.Entry, bool) {
	if !c.ecs.World.Valid(id) {
		return nil, false
	}
	entry := c.ecs.World.Entry(id)
	if !entry.HasComponent(components.Checkpoint) {
		return nil, false
	}
	return entry, true
}

// Activate raises the flag, bursts particles, shows the banner message
// and, once per checkpoint, pops the optional prop.
func (c *checkpointEffects) Activate(id donburi.Entity) {
	entry, ok := c.entry(id)
	if !ok {
		return
	}
	cp := components.Checkpoint.Get(entry)
	obj := components.Object.Get(entry)

	cp.Raised = true
	factory.SpawnBurst(c.ecs, obj.X+obj.W/2, obj.Y+obj.H/2)
	if cp.SpawnProp && !cp.PropShown {
		cp.PropShown = true
		factory.SpawnProp(c.ecs, obj.X+obj.W/2, obj.Y)
	}

	PlaySFX(c.ecs, cfg.SoundCheckpoint)
	ShowMessage(c.ecs, cfg.Checkpoint.MessageText)
}

// SetActive swaps tint and sprite between the active and inactive looks.
func (c *checkpointEffects) SetActive(id donburi.Entity, active bool) {
	entry, ok := c.entry(id)
	if !ok {
		return
	}
	cp := components.Checkpoint.Get(entry)
	cp.Active = active
	if active {
		cp.Tint = cfg.Checkpoint.ActiveTint
		cp.SpriteKey = cfg.Checkpoint.ActiveSprite
	} else {
		cp.Tint = cfg.Checkpoint.InactiveTint
		cp.SpriteKey = cfg.Checkpoint.InactiveSprite
	}

	if entry.HasComponent(components.Sprite) {
		sprite := components.Sprite.Get(entry)
		sprite.Color = cp.Tint
		sprite.Key = cp.SpriteKey
	}
}

// RegisterCheckpoints binds the registry to this world's effects and
// spawn point, registers every checkpoint entity and seeds the spawn
// from the level's first checkpoint.
func RegisterCheckpoints(e *ecs.ECS, registry *checkpoint.Registry) {
	var spawn checkpoint.SpawnLocation
	if spawnEntry, ok := components.SpawnPoint.First(e.World); ok {
		spawn = components.SpawnPoint.Get(spawnEntry)
	}
	registry.Attach(NewCheckpointEffects(e), spawn)

	components.Checkpoint.Each(e.World, func(entry *donburi.Entry) {
		cp := components.Checkpoint.Get(entry)
		registry.Register(checkpoint.Checkpoint{
			ID:    entry.Entity(),
			Order: cp.Order,
			First: cp.First,
			X:     cp.SpawnX,
			Y:     cp.SpawnY,
		})
	})
	registry.Bootstrap()
}

// UnregisterCheckpoints removes this world's checkpoints from the
// registry.
func UnregisterCheckpoints(e *ecs.ECS, registry *checkpoint.Registry) {
	components.Checkpoint.Each(e.World, func(entry *donburi.Entry) {
		registry.Unregister(entry.Entity())
	})
}

// NewCheckpointContactHandler forwards trigger contacts with checkpoints
// to the registry.
func NewCheckpointContactHandler(registry *checkpoint.Registry) func(donburi.World, contact.Event) {
	return func(w donburi.World, ev contact.Event) {
		if ev.Kind != contact.KindTrigger || !w.Valid(ev.This) {
			return
		}
		if !w.Entry(ev.This).HasComponent(components.Checkpoint) {
			return
		}
		registry.OnContact(ev.This, playerTag(ev.Tag))
	}
}
