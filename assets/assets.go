package assets

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// Rect is an axis-aligned box in world pixels.
type Rect struct {
	X, Y, Width, Height float64
}

// Center returns the middle of the box.
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

type PlayerSpawn struct {
	X, Y float64
}

// CheckpointSpawn is a checkpoint placed in the map.
type CheckpointSpawn struct {
	Rect
	Order     int
	First     bool
	SpawnProp bool // spawn a one-shot banner prop on activation
}

// TransitionSpawn is a level exit placed in the map.
type TransitionSpawn struct {
	Rect
	Destination string // level name; empty means fade out only
	Solid       bool   // fires on solid contact instead of overlap
	FadeIn      bool   // fade back in after the destination loads
}

// Level is the parsed, GPU-free content of one map. Parsing is safe to
// run off the update goroutine.
type Level struct {
	Name        string
	Width       int
	Height      int
	Solids      []Rect
	DeadZones   []Rect
	PlayerSpawn PlayerSpawn
	Checkpoints []CheckpointSpawn
	Transitions []TransitionSpawn
}

// LevelNames lists every level shipped in the build, sorted.
func LevelNames() ([]string, error) {
	entries, err := assetFS.ReadDir("levels")
	if err != nil {
		return nil, fmt.Errorf("failed to read levels directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".tmx" {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".tmx"))
	}
	sort.Strings(names)
	return names, nil
}

// LoadLevel parses the named level from the embedded maps.
func LoadLevel(name string) (Level, error) {
	return ParseLevel(assetFS, name)
}

// ParseLevel parses levels/<name>.tmx from fsys.
func ParseLevel(fsys embed.FS, name string) (Level, error) {
	levelPath := path.Join("levels", name+".tmx")
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return Level{}, fmt.Errorf("failed to load level %s: %w", name, err)
	}
	return levelFromMap(name, levelMap)
}

func levelFromMap(name string, levelMap *tiled.Map) (Level, error) {
	level := Level{
		Name:   name,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Solids":
			for _, o := range og.Objects {
				level.Solids = append(level.Solids, Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height})
			}
		case "DeadZones":
			for _, o := range og.Objects {
				level.DeadZones = append(level.DeadZones, Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height})
			}
		case "PlayerSpawn":
			if len(og.Objects) > 0 {
				level.PlayerSpawn = PlayerSpawn{X: og.Objects[0].X, Y: og.Objects[0].Y}
				spawnFound = true
			}
		case "Checkpoints":
			for _, o := range og.Objects {
				level.Checkpoints = append(level.Checkpoints, CheckpointSpawn{
					Rect:      Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height},
					Order:     o.Properties.GetInt("order"),
					First:     o.Properties.GetBool("first"),
					SpawnProp: o.Properties.GetBool("spawnProp"),
				})
			}
		case "Transitions":
			for _, o := range og.Objects {
				mode := o.Class
				if mode == "" {
					mode = o.Type //nolint:staticcheck // TMX uses type= attribute
				}
				level.Transitions = append(level.Transitions, TransitionSpawn{
					Rect:        Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height},
					Destination: o.Properties.GetString("destination"),
					Solid:       mode == "solid",
					FadeIn:      o.Properties.GetBool("fadeIn"),
				})
			}
		}
	}

	if !spawnFound {
		return Level{}, fmt.Errorf("level %s: no player spawn point defined", name)
	}

	// Keep progression order stable for registration and debugging.
	sort.SliceStable(level.Checkpoints, func(i, j int) bool {
		return level.Checkpoints[i].Order < level.Checkpoints[j].Order
	})

	return level, nil
}
