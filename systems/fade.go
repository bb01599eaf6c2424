package systems

import (
	cfg "github.com/automoto/waypoint/config"
	"github.com/automoto/waypoint/fade"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawFade covers screen with the fade color at the fader's opacity.
// It is drawn after the scene so it hides everything.
func DrawFade(screen *ebiten.Image, f *fade.Fader) {
	if f == nil || f.Opacity() <= 0 {
		return
	}
	c := cfg.Fade.Color
	c.A = uint8(f.Opacity() * float64(c.A))
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), premultiply(c), false)
}
