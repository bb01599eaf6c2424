package factory

import (
	"github.com/automoto/waypoint/archetypes"
	"github.com/automoto/waypoint/assets"
	"github.com/automoto/waypoint/components"
	cfg "github.com/automoto/waypoint/config"
	"github.com/automoto/waypoint/tags"
	"github.com/automoto/waypoint/transition"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTransition creates a level exit. Solid exits block movement and
// fire when the player pushes against them.
func CreateTransition(ecs *ecs.ECS, t assets.TransitionSpawn, deps transition.Deps) *donburi.Entry {
	entry := archetypes.Transition.Spawn(ecs)

	objTags := []string{tags.ResolvTransition}
	mode := transition.ModeTrigger
	tint := cfg.Transition.TriggerTint
	if t.Solid {
		objTags = append(objTags, tags.ResolvSolid)
		mode = transition.ModeSolid
		tint = cfg.Transition.SolidTint
	}

	obj := resolv.NewObject(t.X, t.Y, t.Width, t.Height, objTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, t.Width, t.Height))
	obj.Data = entry

	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Transition.SetValue(entry, components.TransitionData{
		Solid: t.Solid,
		Sequencer: transition.New(transition.Config{
			Destination:     t.Destination,
			PlayerTag:       cfg.C.PlayerTag,
			Mode:            mode,
			FadeOut:         cfg.Transition.FadeOut,
			FadeIn:          cfg.Transition.FadeIn,
			FadeInAfterLoad: t.FadeIn,
		}, deps),
	})
	components.Sprite.SetValue(entry, components.SpriteData{Color: tint})
	addToSpace(ecs, obj)

	return entry
}
