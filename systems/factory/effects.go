package factory

import (
	"math"
	"math/rand/v2"

	"github.com/automoto/waypoint/archetypes"
	"github.com/automoto/waypoint/components"
	cfg "github.com/automoto/waypoint/config"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnBurst creates a radial particle burst centered at x, y.
func SpawnBurst(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	entry := archetypes.Burst.Spawn(ecs)

	n := cfg.Checkpoint.BurstCount
	particles := make([]components.Particle, n)
	for i := range particles {
		angle := 2 * math.Pi * float64(i) / float64(n)
		speed := cfg.Checkpoint.BurstSpeed * (0.6 + 0.4*rand.Float64())
		particles[i] = components.Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle)*speed - cfg.Checkpoint.BurstSpeed/2,
			Life:    cfg.Checkpoint.BurstLife,
			MaxLife: cfg.Checkpoint.BurstLife,
		}
	}

	components.Particles.SetValue(entry, components.ParticlesData{
		Particles: particles,
		Gravity:   cfg.Checkpoint.BurstGravity,
		Color:     cfg.Checkpoint.BurstColor,
	})
	components.AutoDestroy.SetValue(entry, components.AutoDestroyData{
		FramesRemaining:  -1,
		UntilEffectsDone: true,
	})
	return entry
}

// SpawnProp creates the banner that rises out of a checkpoint the first
// time it activates. It is bottom-center anchored at x, y and removes
// itself after the rise.
func SpawnProp(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	entry := archetypes.Prop.Spawn(ecs)

	w, h := cfg.Checkpoint.PropWidth, cfg.Checkpoint.PropHeight
	obj := resolv.NewObject(x-w/2, y-h, w, h)
	obj.Data = entry
	addToSpace(ecs, obj)

	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Sprite.SetValue(entry, components.SpriteData{
		Color: cfg.Checkpoint.PropColor,
		Layer: 3,
	})
	components.Bob.SetValue(entry, components.BobData{
		Tween: gween.New(0, float32(-cfg.Checkpoint.PropBobHeight), cfg.Checkpoint.PropBobTime, ease.OutBack),
		BaseY: obj.Y,
	})
	components.AutoDestroy.SetValue(entry, components.AutoDestroyData{
		FramesRemaining:  -1,
		UntilEffectsDone: true,
	})
	return entry
}
