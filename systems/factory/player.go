package factory

import (
	"github.com/automoto/waypoint/archetypes"
	"github.com/automoto/waypoint/components"
	cfg "github.com/automoto/waypoint/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	obj := resolv.NewObject(x, y, w, h, cfg.C.PlayerTag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player

	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Player.SetValue(player, components.PlayerData{
		Direction: components.Vector{X: 1, Y: 0},
		Tag:       cfg.C.PlayerTag,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:  cfg.Physics.Gravity,
		Friction: cfg.Player.Friction,
		MaxSpeed: cfg.Player.MaxSpeed,
	})
	components.Sprite.SetValue(player, components.SpriteData{
		Color: cfg.Player.Color,
		Layer: 2,
	})
	addToSpace(ecs, obj)

	return player
}
