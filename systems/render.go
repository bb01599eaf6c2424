package systems

import (
	"sort"

	"github.com/automoto/waypoint/components"
	cfg "github.com/automoto/waypoint/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
	// Reused between frames to avoid allocations
	drawQueue []*donburi.Entry
)

// DrawSprites renders every entity with a Sprite, lowest layer first.
// Entities whose sprite key names a generated image draw that image
// tinted by the sprite color; the rest draw as filled boxes.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX, camY := camera.Offset(width, height)

	drawQueue = drawQueue[:0]
	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Object) {
			drawQueue = append(drawQueue, e)
		}
	})
	sort.SliceStable(drawQueue, func(i, j int) bool {
		return components.Sprite.Get(drawQueue[i]).Layer < components.Sprite.Get(drawQueue[j]).Layer
	})

	for _, e := range drawQueue {
		o := components.Object.Get(e)
		sprite := components.Sprite.Get(e)

		x, y := o.X+camX, o.Y+camY
		// Viewport culling
		if x+o.W < 0 || x > float64(width) || y+o.H < 0 || y > float64(height) {
			continue
		}

		// Blink while waiting to respawn
		if e.HasComponent(components.Death) && components.Death.Get(e).Timer%8 < 4 {
			continue
		}

		if img := spriteImage(sprite.Key, int(o.W), int(o.H)); img != nil {
			drawOp.GeoM.Reset()
			drawOp.ColorScale.Reset()
			drawOp.GeoM.Translate(x, y)
			drawOp.ColorScale.ScaleWithColor(sprite.Color)
			screen.DrawImage(img, drawOp)
			continue
		}

		vector.FillRect(screen, float32(x), float32(y), float32(o.W), float32(o.H), premultiply(sprite.Color), false)
	}
}

// DrawParticles renders particle bursts, fading each particle with its life.
func DrawParticles(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camX, camY := camera.Offset(screen.Bounds().Dx(), screen.Bounds().Dy())

	components.Particles.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particles.Get(e)
		for _, pt := range p.Particles {
			if pt.Life <= 0 || pt.MaxLife <= 0 {
				continue
			}
			c := p.Color
			c.A = uint8(float64(c.A) * float64(pt.Life) / float64(pt.MaxLife))
			vector.FillRect(screen, float32(pt.X+camX)-1, float32(pt.Y+camY)-1, 2, 2, premultiply(c), false)
		}
	})
}

// DrawLevel renders the background, solids and dead zones.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	lvl := components.Level.Get(levelEntry).CurrentLevel
	if lvl == nil {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camX, camY := camera.Offset(screen.Bounds().Dx(), screen.Bounds().Dy())

	for _, r := range lvl.Solids {
		vector.FillRect(screen, float32(r.X+camX), float32(r.Y+camY), float32(r.Width), float32(r.Height), cfg.UI.SolidColor, false)
	}
	for _, r := range lvl.DeadZones {
		vector.FillRect(screen, float32(r.X+camX), float32(r.Y+camY), float32(r.Width), float32(r.Height), cfg.UI.DeadZoneColor, false)
	}
}
