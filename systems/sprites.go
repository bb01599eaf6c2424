package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/waypoint/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var spriteCache = map[string]*ebiten.Image{}

// spriteImage returns the generated white image for key at w x h, or nil
// when key has no generator. Images are tinted at draw time.
func spriteImage(key string, w, h int) *ebiten.Image {
	if key == "" || w <= 0 || h <= 0 {
		return nil
	}
	cacheKey := fmt.Sprintf("%s@%dx%d", key, w, h)
	if img, ok := spriteCache[cacheKey]; ok {
		return img
	}

	var img *ebiten.Image
	switch key {
	case cfg.Checkpoint.ActiveSprite:
		img = drawFlag(w, h, true)
	case cfg.Checkpoint.InactiveSprite:
		img = drawFlag(w, h, false)
	default:
		return nil
	}
	spriteCache[cacheKey] = img
	return img
}

// drawFlag draws a pole with a pennant at the top when raised and near
// the base otherwise.
func drawFlag(w, h int, raised bool) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	white := color.White

	poleX := float32(w) / 4
	vector.FillRect(img, poleX, 0, 2, float32(h), white, false)

	flagH := float32(h) / 3
	flagY := float32(h) - flagH - 2
	if raised {
		flagY = 0
	}

	// Pennant as a stack of one-pixel rows narrowing toward the tip
	maxLen := float32(w) - poleX - 2
	for row := float32(0); row < flagH; row++ {
		t := 1 - abs32(row-flagH/2)/(flagH/2)
		vector.FillRect(img, poleX+2, flagY+row, maxLen*t, 1, white, false)
	}
	return img
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// premultiply converts a straight-alpha color for vector drawing.
func premultiply(c color.RGBA) color.RGBA {
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: c.A,
	}
}
