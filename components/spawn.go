package components

import "github.com/yohamta/donburi"

// SpawnPointData is the level's respawn position (singleton). Checkpoints
// move it forward as they activate.
type SpawnPointData struct {
	X, Y float64
}

// MoveTo sets the respawn position.
func (s *SpawnPointData) MoveTo(x, y float64) {
	s.X = x
	s.Y = y
}

var SpawnPoint = donburi.NewComponentType[SpawnPointData]()
