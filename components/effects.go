package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Particle is a single burst particle in world space.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    int // frames remaining
	MaxLife int
}

// ParticlesData is a short-lived particle burst.
type ParticlesData struct {
	Particles []Particle
	Gravity   float64
	Color     color.RGBA
}

// Alive reports whether any particle is still visible.
func (p *ParticlesData) Alive() bool {
	for i := range p.Particles {
		if p.Particles[i].Life > 0 {
			return true
		}
	}
	return false
}

var Particles = donburi.NewComponentType[ParticlesData]()

// AutoDestroyData marks entities that should be destroyed after a duration
// or once their effects finish
type AutoDestroyData struct {
	FramesRemaining  int  // frames until destruction (-1 = wait for effects)
	UntilEffectsDone bool // destroy when particles die and tweens finish
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()

// BobData moves an object from BaseY by the tween's value.
type BobData struct {
	Tween    *gween.Tween
	BaseY    float64
	Finished bool
}

var Bob = donburi.NewComponentType[BobData]()
