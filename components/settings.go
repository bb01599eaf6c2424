package components

import "github.com/yohamta/donburi"

// SettingsData holds runtime toggles (singleton)
type SettingsData struct {
	Debug bool
}

var Settings = donburi.NewComponentType[SettingsData]()
