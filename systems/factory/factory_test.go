package factory

import (
	"testing"

	"github.com/automoto/waypoint/assets"
	"github.com/automoto/waypoint/components"
	cfg "github.com/automoto/waypoint/config"
	"github.com/automoto/waypoint/tags"
	"github.com/automoto/waypoint/transition"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newWorld() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	CreateSpace(e, 320, 320, 16, 16)
	return e
}

func TestCheckpointSpawnStandsOnBase(t *testing.T) {
	e := newWorld()
	entry := CreateCheckpoint(e, assets.CheckpointSpawn{
		Rect:  assets.Rect{X: 100, Y: 200, Width: 20, Height: 40},
		Order: 3,
	})

	cp := components.Checkpoint.Get(entry)
	wantX := 110 - cfg.Player.CollisionWidth/2
	wantY := 240 - cfg.Player.CollisionHeight
	if cp.SpawnX != wantX || cp.SpawnY != wantY {
		t.Fatalf("spawn = %v,%v want %v,%v", cp.SpawnX, cp.SpawnY, wantX, wantY)
	}
	if cp.Active || cp.Tint != cfg.Checkpoint.InactiveTint || cp.Order != 3 {
		t.Fatalf("new checkpoint = %+v", cp)
	}
	obj := components.Object.Get(entry)
	if obj.Space == nil || !obj.HasTags(tags.ResolvCheckpoint) {
		t.Fatalf("checkpoint not in the space with its tag")
	}
	if obj.Data.(*donburi.Entry).Entity() != entry.Entity() {
		t.Fatalf("object not linked back to its entry")
	}
}

func TestTransitionModes(t *testing.T) {
	cases := []struct {
		name  string
		solid bool
		mode  transition.Mode
	}{
		{"trigger", false, transition.ModeTrigger},
		{"solid", true, transition.ModeSolid},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := newWorld()
			entry := CreateTransition(e, assets.TransitionSpawn{
				Rect:        assets.Rect{X: 10, Y: 10, Width: 16, Height: 32},
				Destination: "caverns",
				Solid:       c.solid,
				FadeIn:      true,
			}, transition.Deps{})

			data := components.Transition.Get(entry)
			conf := data.Sequencer.Config()
			if conf.Mode != c.mode || conf.Destination != "caverns" || !conf.FadeInAfterLoad {
				t.Fatalf("config = %+v", conf)
			}
			if conf.PlayerTag != cfg.C.PlayerTag {
				t.Fatalf("player tag = %q", conf.PlayerTag)
			}
			obj := components.Object.Get(entry)
			if obj.HasTags(tags.ResolvSolid) != c.solid {
				t.Fatalf("solid tag = %v, want %v", obj.HasTags(tags.ResolvSolid), c.solid)
			}
		})
	}
}

func TestSpawnPropStartsAboveAnchor(t *testing.T) {
	e := newWorld()
	entry := SpawnProp(e, 50, 100)
	obj := components.Object.Get(entry)
	if obj.X != 50-cfg.Checkpoint.PropWidth/2 || obj.Y != 100-cfg.Checkpoint.PropHeight {
		t.Fatalf("prop at %v,%v", obj.X, obj.Y)
	}
	if bob := components.Bob.Get(entry); bob.Tween == nil || bob.BaseY != obj.Y {
		t.Fatalf("bob not set up: %+v", bob)
	}
}

func TestSpawnBurstParticles(t *testing.T) {
	e := newWorld()
	entry := SpawnBurst(e, 5, 5)
	p := components.Particles.Get(entry)
	if len(p.Particles) != cfg.Checkpoint.BurstCount || !p.Alive() {
		t.Fatalf("burst has %d particles", len(p.Particles))
	}
}
