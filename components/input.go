package components

import (
	cfg "github.com/automoto/waypoint/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	Raw             [cfg.ActionCount]bool // last poll before blocking
	LastInputMethod InputMethod
	// Blocked is set while the screen fade swallows gameplay input.
	Blocked bool
}

var Input = donburi.NewComponentType[InputData]()
