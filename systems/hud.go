package systems

import (
	"fmt"

	"github.com/automoto/waypoint/checkpoint"
	"github.com/automoto/waypoint/components"
	cfg "github.com/automoto/waypoint/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"
)

const hudMargin = 8

// NewHUDRenderer draws the level name and checkpoint progress in the
// top-left corner.
func NewHUDRenderer(registry *checkpoint.Registry) func(*ecs.ECS, *ebiten.Image) {
	return func(ecs *ecs.ECS, screen *ebiten.Image) {
		levelEntry, ok := components.Level.First(ecs.World)
		if !ok {
			return
		}
		lvl := components.Level.Get(levelEntry).CurrentLevel
		if lvl == nil {
			return
		}

		line := lvl.Name
		if registry != nil {
			line = fmt.Sprintf("%s  checkpoint %s", lvl.Name, progressLabel(registry.HighestOrder()))
		}
		text.Draw(screen, line, basicfont.Face7x13, hudMargin, hudMargin+basicfont.Face7x13.Ascent, cfg.UI.HUDTextColor)
	}
}

func progressLabel(highest int) string {
	if highest < 0 {
		return "-"
	}
	return fmt.Sprint(highest)
}
