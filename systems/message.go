package systems

import (
	"github.com/automoto/waypoint/components"
	cfg "github.com/automoto/waypoint/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"
)

const (
	messageTopMargin  = 24
	messageBoxPadding = 6
)

// ShowMessage displays msg at the top of the screen for
// cfg.Checkpoint.MessageFrames frames, replacing any current message.
func ShowMessage(ecs *ecs.ECS, msg string) {
	state := getOrCreateMessageState(ecs)
	state.Text = msg
	state.DisplayTimer = cfg.Checkpoint.MessageFrames
}

// UpdateMessage counts down the active message
func UpdateMessage(ecs *ecs.ECS) {
	state := getOrCreateMessageState(ecs)
	if state.DisplayTimer > 0 {
		state.DisplayTimer--
		if state.DisplayTimer == 0 {
			state.Text = ""
		}
	}
}

// DrawMessage renders the active message at the top center of the screen
func DrawMessage(ecs *ecs.ECS, screen *ebiten.Image) {
	state := getOrCreateMessageState(ecs)
	if state.Text == "" {
		return
	}

	face := basicfont.Face7x13
	bounds := text.BoundString(face, state.Text) //nolint:staticcheck // TODO: migrate to text/v2
	boxWidth := float32(bounds.Dx() + messageBoxPadding*2)
	boxHeight := float32(bounds.Dy() + messageBoxPadding*2)

	screenWidth := float32(screen.Bounds().Dx())
	boxX := (screenWidth - boxWidth) / 2
	boxY := float32(messageTopMargin)

	vector.FillRect(screen, boxX, boxY, boxWidth, boxHeight, cfg.BlackOverlay, false)

	textX := int(boxX) + messageBoxPadding
	textY := int(boxY) + messageBoxPadding - bounds.Min.Y
	text.Draw(screen, state.Text, face, textX, textY, cfg.UI.HUDTextColor)
}

// getOrCreateMessageState returns the singleton MessageState component
func getOrCreateMessageState(ecs *ecs.ECS) *components.MessageStateData {
	entry, ok := components.MessageState.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.MessageState))
	}
	return components.MessageState.Get(entry)
}
