package systems

import (
	"math"

	"github.com/automoto/waypoint/components"
	"github.com/automoto/waypoint/config"
	"github.com/automoto/waypoint/tags"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)

	targetX, targetY, ok := cameraTarget(e, playerObject.X+playerObject.W/2, playerObject.Y+playerObject.H/2)
	if !ok {
		return
	}

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// SnapCamera centers the camera on x, y without smoothing.
func SnapCamera(e *ecs.ECS, x, y float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	if tx, ty, ok := cameraTarget(e, x, y); ok {
		camera.Position.X, camera.Position.Y = tx, ty
	}
}

// cameraTarget constrains x, y so the level always fills the screen.
func cameraTarget(e *ecs.ECS, x, y float64) (float64, float64, bool) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return 0, 0, false
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return 0, 0, false
	}

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	levelWidth := float64(levelData.CurrentLevel.Width)
	levelHeight := float64(levelData.CurrentLevel.Height)

	x = clampAxis(x, screenWidth/2, levelWidth-screenWidth/2)
	y = clampAxis(y, screenHeight/2, levelHeight-screenHeight/2)
	return x, y, true
}

// clampAxis keeps v in [lo, hi], centering when the level is smaller
// than the screen.
func clampAxis(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	return math.Max(lo, math.Min(hi, v))
}
