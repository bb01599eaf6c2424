package systems

import (
	"github.com/automoto/waypoint/components"
	cfg "github.com/automoto/waypoint/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateDeaths(ecs *ecs.ECS) {
	var respawn []*donburi.Entry
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		death.Timer--
		if death.Timer <= 0 {
			respawn = append(respawn, e)
		}
	})

	// Component removal changes archetypes, so it happens after iteration
	for _, e := range respawn {
		donburi.Remove[components.DeathData](e, components.Death)
		RespawnPlayer(ecs, e)
	}
}

// RespawnPlayer puts the player back at the level's spawn point, which
// the last activated checkpoint has moved forward.
func RespawnPlayer(ecs *ecs.ECS, e *donburi.Entry) {
	spawnEntry, ok := components.SpawnPoint.First(ecs.World)
	if !ok {
		return
	}
	spawn := components.SpawnPoint.Get(spawnEntry)

	obj := components.Object.Get(e)
	obj.X = spawn.X
	obj.Y = spawn.Y
	obj.Update()

	physics := components.Physics.Get(e)
	physics.SpeedX = 0
	physics.SpeedY = 0
	physics.OnGround = nil

	PlaySFX(ecs, cfg.SoundRespawn)
}
