package factory

import (
	"github.com/automoto/waypoint/archetypes"
	"github.com/automoto/waypoint/assets"
	"github.com/automoto/waypoint/components"
	cfg "github.com/automoto/waypoint/config"
	"github.com/automoto/waypoint/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCheckpoint creates an inactive checkpoint. The respawn point is
// centered on it with the player's feet on its base.
func CreateCheckpoint(ecs *ecs.ECS, cp assets.CheckpointSpawn) *donburi.Entry {
	checkpoint := archetypes.Checkpoint.Spawn(ecs)

	obj := resolv.NewObject(cp.X, cp.Y, cp.Width, cp.Height, tags.ResolvCheckpoint)
	obj.SetShape(resolv.NewRectangle(0, 0, cp.Width, cp.Height))
	obj.Data = checkpoint

	components.Object.SetValue(checkpoint, components.ObjectData{Object: obj})

	cx, _ := cp.Center()
	components.Checkpoint.SetValue(checkpoint, components.CheckpointData{
		Order:     cp.Order,
		First:     cp.First,
		SpawnProp: cp.SpawnProp,
		Tint:      cfg.Checkpoint.InactiveTint,
		SpriteKey: cfg.Checkpoint.InactiveSprite,
		SpawnX:    cx - cfg.Player.CollisionWidth/2,
		SpawnY:    cp.Y + cp.Height - cfg.Player.CollisionHeight,
	})
	components.Sprite.SetValue(checkpoint, components.SpriteData{
		Key:   cfg.Checkpoint.InactiveSprite,
		Color: cfg.Checkpoint.InactiveTint,
		Layer: 1,
	})
	addToSpace(ecs, obj)

	return checkpoint
}
