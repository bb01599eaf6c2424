package systems

import (
	"github.com/automoto/waypoint/components"
	cfg "github.com/automoto/waypoint/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings toggles the debug overlay.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	input := getOrCreateInput(ecs)
	if GetAction(input, cfg.ActionDebugToggle).JustPressed {
		settings.Debug = !settings.Debug
	}
}

// GetOrCreateSettings returns the singleton Settings component. A new one
// starts with the configured debug default.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{Debug: cfg.Debug.Overlay})
	}
	return components.Settings.Get(entry)
}
