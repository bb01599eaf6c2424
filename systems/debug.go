package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/waypoint/checkpoint"
	"github.com/automoto/waypoint/components"
	cfg "github.com/automoto/waypoint/config"
	"github.com/automoto/waypoint/fade"
	"github.com/automoto/waypoint/tags"
	"github.com/automoto/waypoint/task"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"
)

// debugTagOrder decides the outline color of objects with several tags.
var debugTagOrder = []string{
	cfg.C.PlayerTag,
	tags.ResolvTransition,
	tags.ResolvCheckpoint,
	tags.ResolvDeadZone,
	tags.ResolvSolid,
}

// DebugSources are the process-wide objects the debug overlay reports on.
// Any may be nil.
type DebugSources struct {
	Registry *checkpoint.Registry
	Fader    func() *fade.Fader
	Runner   *task.Runner
}

// NewDebugRenderer draws collision boxes and registry state when the
// debug overlay is on (F1).
func NewDebugRenderer(src DebugSources) func(*ecs.ECS, *ebiten.Image) {
	return func(ecs *ecs.ECS, screen *ebiten.Image) {
		settings := GetOrCreateSettings(ecs)
		if !settings.Debug {
			return
		}

		drawCollisionBoxes(ecs, screen)

		y := 40
		for _, line := range debugLines(src) {
			text.Draw(screen, line, basicfont.Face7x13, hudMargin, y, cfg.UI.DebugTextColor)
			y += 14
		}
	}
}

func debugLines(src DebugSources) []string {
	var lines []string
	if r := src.Registry; r != nil {
		lines = append(lines, fmt.Sprintf("level %q: %d checkpoints, highest %d", r.Level(), r.Len(), r.HighestOrder()))
		if cp, ok := r.Active(); ok {
			lines = append(lines, fmt.Sprintf("active %v order %d spawn %.0f,%.0f", cp.ID, cp.Order, cp.X, cp.Y))
		} else {
			lines = append(lines, "active none")
		}
	}
	if src.Fader != nil {
		if f := src.Fader(); f != nil {
			lines = append(lines, fmt.Sprintf("fade %.2f animating %v", f.Opacity(), f.Animating()))
		}
	}
	if src.Runner != nil {
		lines = append(lines, fmt.Sprintf("tasks %d", src.Runner.Len()))
	}
	return lines
}

func drawCollisionBoxes(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	space := components.Space.Get(spaceEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX, camY := camera.Offset(width, height)

	for _, obj := range space.Objects() {
		x := obj.X + camX
		y := obj.Y + camY
		if x+obj.W < 0 || x > float64(width) || y+obj.H < 0 || y > float64(height) {
			continue
		}

		c := color.RGBA{R: 255, G: 255, B: 255, A: 255}
		for _, tag := range debugTagOrder {
			if tc, ok := cfg.UI.DebugColors[tag]; ok && obj.HasTags(tag) {
				c = tc
				break
			}
		}
		vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), 1, c, false)
	}
}
