package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

type CheckpointData struct {
	Order     int
	First     bool
	SpawnProp bool // spawn a banner prop the first time it activates

	// Visual state, driven by the checkpoint registry
	Active    bool
	Tint      color.RGBA
	SpriteKey string
	Raised    bool // flag raise animation played
	PropShown bool

	SpawnX float64 // where the player is put back on respawn
	SpawnY float64
}

var Checkpoint = donburi.NewComponentType[CheckpointData]()
