package factory

import (
	"github.com/automoto/waypoint/archetypes"
	"github.com/automoto/waypoint/components"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera creates the camera centered on x, y.
func CreateCamera(ecs *ecs.ECS, x, y float64) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{Position: math.NewVec2(x, y)})
}
