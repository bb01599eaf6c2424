package components

import "github.com/yohamta/donburi"

// DeathData marks a player that touched a dead zone. Timer counts down
// each frame; at 0 the player is moved back to the spawn point.
type DeathData struct {
	Timer int
}

var Death = donburi.NewComponentType[DeathData]()
