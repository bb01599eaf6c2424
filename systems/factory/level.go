package factory

import (
	"github.com/automoto/waypoint/archetypes"
	"github.com/automoto/waypoint/assets"
	"github.com/automoto/waypoint/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel stores the parsed level in the world.
func CreateLevel(ecs *ecs.ECS, lvl *assets.Level) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{CurrentLevel: lvl})
	return level
}

// CreateSpawnPoint creates the level's respawn location at the player start.
func CreateSpawnPoint(ecs *ecs.ECS, x, y float64) *components.SpawnPointData {
	entry := archetypes.SpawnPoint.Spawn(ecs)
	components.SpawnPoint.SetValue(entry, components.SpawnPointData{X: x, Y: y})
	return components.SpawnPoint.Get(entry)
}
