package systems

import (
	"github.com/automoto/waypoint/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects syncs every moved collision object with its space cells.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		if obj.Space != nil {
			obj.Update()
		}
	}
}
