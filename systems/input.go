package systems

import (
	"github.com/automoto/waypoint/components"
	cfg "github.com/automoto/waypoint/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// InputBlocker reports whether gameplay input should be ignored.
type InputBlocker interface {
	BlocksInput() bool
}

// NewInputSystem polls raw input into the Input component. Every
// action reads as released while blocker blocks. Must run BEFORE
// UpdatePlayer in the system order.
func NewInputSystem(blocker func() InputBlocker) ecs.System {
	return func(ecs *ecs.ECS) {
		input := getOrCreateInput(ecs)
		pollInput(input)

		blocked := false
		if blocker != nil {
			if b := blocker(); b != nil {
				blocked = b.BlocksInput()
			}
		}
		applyInputBlock(input, blocked)
	}
}

// pollInput reads the current keyboard and gamepad state.
func pollInput(input *components.InputData) {
	var pressed [cfg.ActionCount]bool

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				pressed[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					pressed[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	// Merge the left stick into horizontal movement
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if horizontal < -deadzone {
			pressed[cfg.ActionMoveLeft] = true
			gamepadUsed = true
		}
		if horizontal > deadzone {
			pressed[cfg.ActionMoveRight] = true
			gamepadUsed = true
		}
	}

	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
	advanceInput(input, pressed)
}

// advanceInput starts a new frame with pressed as the unmasked state.
func advanceInput(input *components.InputData, pressed [cfg.ActionCount]bool) {
	input.Previous = input.Raw
	input.Current = pressed
	input.Raw = pressed
}

// applyInputBlock clears gameplay actions while blocked. Previous comes
// from the unmasked state, so a key held through a fade does not read as
// just pressed when the overlay clears.
func applyInputBlock(input *components.InputData, blocked bool) {
	input.Blocked = blocked
	if !blocked {
		return
	}
	for id := range input.Current {
		input.Current[id] = false
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
