package config

import (
	"testing"
	"time"
)

// snapshot restores the tunable globals when the test ends.
func snapshot(t *testing.T) {
	t.Helper()
	player, physics, cp, fade, tr, dz, cam := Player, Physics, Checkpoint, Fade, Transition, DeathZone, Camera
	t.Cleanup(func() {
		Player, Physics, Checkpoint, Fade, Transition, DeathZone, Camera = player, physics, cp, fade, tr, dz, cam
	})
}

func TestDefaultTuningApplies(t *testing.T) {
	snapshot(t)
	if err := LoadDefaultTuning(); err != nil {
		t.Fatalf("LoadDefaultTuning: %v", err)
	}
	if Transition.FadeOut != 500*time.Millisecond {
		t.Fatalf("FadeOut = %v", Transition.FadeOut)
	}
	if !Fade.FadeInOnLoad {
		t.Fatalf("FadeInOnLoad should be on")
	}
}

func TestApplyTuningOverridesOnlyGivenKeys(t *testing.T) {
	snapshot(t)
	gravity := Physics.Gravity
	err := ApplyTuning([]byte(`
transition:
  fadeOut: 1.5s
checkpoint:
  burstCount: 3
`))
	if err != nil {
		t.Fatalf("ApplyTuning: %v", err)
	}
	if Transition.FadeOut != 1500*time.Millisecond {
		t.Fatalf("FadeOut = %v", Transition.FadeOut)
	}
	if Checkpoint.BurstCount != 3 {
		t.Fatalf("BurstCount = %d", Checkpoint.BurstCount)
	}
	if Physics.Gravity != gravity {
		t.Fatalf("untouched gravity changed to %v", Physics.Gravity)
	}
	if Checkpoint.ActiveTint != Gold {
		t.Fatalf("colors must not be touched by tuning")
	}
}

func TestApplyTuningRejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"negative fade", "transition:\n  fadeIn: -1s\n"},
		{"zero gravity", "physics:\n  gravity: 0\n"},
		{"bad smoothing", "camera:\n  followSmoothing: 2\n"},
		{"not yaml", "player: [1, 2"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			snapshot(t)
			before := Transition
			if err := ApplyTuning([]byte(c.doc)); err == nil {
				t.Fatalf("expected an error")
			}
			if Transition != before {
				t.Fatalf("config changed despite the error")
			}
		})
	}
}

func TestLoadEnv(t *testing.T) {
	prev := Debug
	t.Cleanup(func() { Debug = prev })

	t.Setenv("WAYPOINT_DEBUG", "true")
	t.Setenv("WAYPOINT_START_LEVEL", "caverns")
	if err := LoadEnv(); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if !Debug.Overlay || Debug.StartLevel != "caverns" || Debug.NoSave {
		t.Fatalf("Debug = %+v", Debug)
	}

	t.Setenv("WAYPOINT_NO_SAVE", "definitely")
	if err := LoadEnv(); err == nil {
		t.Fatalf("expected a parse error for a non-boolean value")
	}
}
