package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction Vector
	// Tag is the collision tag triggers check to recognise the player.
	Tag string
}

var Player = donburi.NewComponentType[PlayerData]()
