package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// SpriteData draws an entity as a filled box, or as the generated image
// registered under Key when one exists.
type SpriteData struct {
	Key   string
	Color color.RGBA
	Layer int // lower layers draw first
}

var Sprite = donburi.NewComponentType[SpriteData]()
