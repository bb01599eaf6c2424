package main

import (
	"errors"
	"image"
	"log"

	"github.com/automoto/waypoint/assets"
	"github.com/automoto/waypoint/checkpoint"
	"github.com/automoto/waypoint/config"
	"github.com/automoto/waypoint/fade"
	"github.com/automoto/waypoint/level"
	"github.com/automoto/waypoint/scenes"
	"github.com/automoto/waypoint/systems"
	"github.com/automoto/waypoint/task"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Close()
}

// Game owns everything that outlives a level: the fade overlay, the
// checkpoint registry, the task runner and the level loader.
type Game struct {
	bounds   image.Rectangle
	scene    Scene
	fader    *fade.Fader
	registry *checkpoint.Registry
	runner   *task.Runner
	levels   *level.Manager
}

func NewGame() (*Game, error) {
	levels, err := level.NewEmbeddedManager()
	if err != nil {
		return nil, err
	}

	g := &Game{
		bounds:   image.Rectangle{},
		fader:    fade.New(nil),
		registry: checkpoint.NewRegistry(levels),
		runner:   task.NewRunner(),
		levels:   levels,
	}
	g.fader.FadeInOnLoad = config.Fade.FadeInOnLoad
	g.fader.LoadFadeDuration = config.Fade.LoadFadeDuration

	levels.Activate = g.activate
	levels.OnLoaded(func(name string) {
		g.fader.OnLevelLoaded()
		if err := systems.SaveLastLevel(name); err != nil {
			log.Printf("Warning: Could not save progress: %v", err)
		}
	})

	if err := levels.LoadNow(g.startLevel()); err != nil {
		return nil, err
	}
	return g, nil
}

// activate replaces the running scene with one built for lvl.
func (g *Game) activate(lvl assets.Level) error {
	if lvl.Width <= 0 || lvl.Height <= 0 {
		return errors.New("level has no size")
	}
	if g.scene != nil {
		g.scene.Close()
	}
	g.scene = scenes.NewPlatformerScene(lvl, scenes.Session{
		Fader:    g.currentFader,
		Registry: g.registry,
		Runner:   g.runner,
		Levels:   g.levels,
	})
	return nil
}

func (g *Game) currentFader() *fade.Fader { return g.fader }

// startLevel picks the environment override, then the saved level, then
// the default.
func (g *Game) startLevel() string {
	if name := config.Debug.StartLevel; name != "" {
		if g.levels.Loadable(name) {
			return name
		}
		log.Printf("Warning: start level %q is not in this build", name)
	}
	if saved := systems.LoadProgress(); saved != nil && g.levels.Loadable(saved.LastLevel) {
		return saved.LastLevel
	}
	return config.C.DefaultLevel
}

func (g *Game) Update() error {
	g.fader.Update()
	g.levels.Update()
	g.runner.Update()
	if g.scene != nil {
		g.scene.Update()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.scene != nil {
		g.scene.Draw(screen)
	}
	systems.DrawFade(screen, g.fader)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	if err := config.LoadDefaultTuning(); err != nil {
		log.Printf("Warning: Could not apply tuning: %v", err)
	}
	if err := config.LoadEnv(); err != nil {
		log.Printf("Warning: Could not read environment: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Waypoint")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence before choosing the start level
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	game, err := NewGame()
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
