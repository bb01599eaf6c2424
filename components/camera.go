package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the world point at the center of the screen.
type CameraData struct {
	Position math.Vec2
}

// Offset translates world coordinates to screen coordinates.
func (c *CameraData) Offset(screenW, screenH int) (float64, float64) {
	return float64(screenW)/2 - c.Position.X, float64(screenH)/2 - c.Position.Y
}

var Camera = donburi.NewComponentType[CameraData]()
