package components

import (
	"github.com/automoto/waypoint/transition"
	"github.com/yohamta/donburi"
)

type TransitionData struct {
	Sequencer *transition.Sequencer
	Solid     bool
}

var Transition = donburi.NewComponentType[TransitionData]()
