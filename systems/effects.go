package systems

import (
	"github.com/automoto/waypoint/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// frameTime is the tween step per update at Ebitengine's fixed 60 TPS.
const frameTime = float32(1.0 / 60.0)

// UpdateEffects processes particles, bobbing props and auto-destroy
func UpdateEffects(ecs *ecs.ECS) {
	updateParticles(ecs)
	updateBobs(ecs)
	updateAutoDestroy(ecs)
}

func updateParticles(ecs *ecs.ECS) {
	components.Particles.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particles.Get(e)
		for i := range p.Particles {
			pt := &p.Particles[i]
			if pt.Life <= 0 {
				continue
			}
			pt.X += pt.VX
			pt.Y += pt.VY
			pt.VY += p.Gravity
			pt.Life--
		}
	})
}

func updateBobs(ecs *ecs.ECS) {
	components.Bob.Each(ecs.World, func(e *donburi.Entry) {
		bob := components.Bob.Get(e)
		if bob.Finished || bob.Tween == nil {
			return
		}
		offset, finished := bob.Tween.Update(frameTime)
		bob.Finished = finished
		if e.HasComponent(components.Object) {
			obj := components.Object.Get(e)
			obj.Y = bob.BaseY + float64(offset)
			if obj.Space != nil {
				obj.Update()
			}
		}
	})
}

// effectsDone reports whether every effect on e has played out.
func effectsDone(e *donburi.Entry) bool {
	if e.HasComponent(components.Particles) && components.Particles.Get(e).Alive() {
		return false
	}
	if e.HasComponent(components.Bob) && !components.Bob.Get(e).Finished {
		return false
	}
	return true
}

// updateAutoDestroy removes entities whose time is up or whose effects
// finished
func updateAutoDestroy(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)

		if ad.UntilEffectsDone && effectsDone(e) {
			toDestroy = append(toDestroy, e)
			return
		}

		if ad.FramesRemaining > 0 {
			ad.FramesRemaining--
			if ad.FramesRemaining <= 0 {
				toDestroy = append(toDestroy, e)
			}
		}
	})

	for _, e := range toDestroy {
		// Remove from physics space if it has an object
		if e.HasComponent(components.Object) {
			obj := components.Object.Get(e)
			if obj.Space != nil {
				obj.Space.Remove(obj.Object)
			}
		}
		e.Remove()
	}
}
