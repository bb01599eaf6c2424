package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Wall       = donburi.NewTag().SetName("Wall")
	DeadZone   = donburi.NewTag().SetName("DeadZone")
	Checkpoint = donburi.NewTag().SetName("Checkpoint")
	Transition = donburi.NewTag().SetName("Transition")
	Prop       = donburi.NewTag().SetName("Prop")
	VFX        = donburi.NewTag().SetName("VFX")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"
	ResolvDeadZone   = "deadzone"
	ResolvCheckpoint = "checkpoint"
	ResolvTransition = "transition"
)
