package assets

import "testing"

func TestLevelNames(t *testing.T) {
	names, err := LevelNames()
	if err != nil {
		t.Fatalf("LevelNames: %v", err)
	}
	want := []string{"caverns", "meadow"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names = %v, want %v", names, want)
		}
	}
}

func TestLoadMeadow(t *testing.T) {
	level, err := LoadLevel("meadow")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	if level.Width != 1280 || level.Height != 368 {
		t.Fatalf("size = %dx%d", level.Width, level.Height)
	}
	if level.PlayerSpawn.X != 24 || level.PlayerSpawn.Y != 288 {
		t.Fatalf("spawn = %+v", level.PlayerSpawn)
	}
	if len(level.Checkpoints) != 3 {
		t.Fatalf("checkpoints = %d, want 3", len(level.Checkpoints))
	}
	for i, cp := range level.Checkpoints {
		if cp.Order != i {
			t.Fatalf("checkpoint %d has order %d", i, cp.Order)
		}
	}
	if !level.Checkpoints[0].First || level.Checkpoints[1].First {
		t.Fatalf("first flags wrong: %+v", level.Checkpoints)
	}
	if !level.Checkpoints[2].SpawnProp {
		t.Fatalf("last checkpoint should spawn a prop")
	}
	if len(level.Transitions) != 1 {
		t.Fatalf("transitions = %d, want 1", len(level.Transitions))
	}
	tr := level.Transitions[0]
	if tr.Destination != "caverns" || tr.Solid || !tr.FadeIn {
		t.Fatalf("transition = %+v", tr)
	}
	if len(level.DeadZones) != 1 {
		t.Fatalf("dead zones = %d, want 1", len(level.DeadZones))
	}
}

func TestLoadCavernsTransitions(t *testing.T) {
	level, err := LoadLevel("caverns")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	if len(level.Transitions) != 2 {
		t.Fatalf("transitions = %d, want 2", len(level.Transitions))
	}
	door, exit := level.Transitions[0], level.Transitions[1]
	if !door.Solid || door.Destination != "meadow" {
		t.Fatalf("door = %+v", door)
	}
	if exit.Solid || exit.Destination != "" {
		t.Fatalf("exit = %+v", exit)
	}
}

func TestLoadUnknownLevel(t *testing.T) {
	if _, err := LoadLevel("does-not-exist"); err == nil {
		t.Fatalf("expected an error")
	}
}

func TestRectCenter(t *testing.T) {
	x, y := Rect{X: 10, Y: 20, Width: 16, Height: 32}.Center()
	if x != 18 || y != 36 {
		t.Fatalf("center = (%v,%v)", x, y)
	}
}

func TestSynthesizeSFXLength(t *testing.T) {
	pcm := SynthesizeSFX(1000, 0.5, Note{Freq: 440, Seconds: 0.1}, Note{Seconds: 0.05})
	if len(pcm) != 150*4 {
		t.Fatalf("len = %d, want %d", len(pcm), 150*4)
	}
	for i := 100 * 4; i < len(pcm); i++ {
		if pcm[i] != 0 {
			t.Fatalf("rest segment is not silent at byte %d", i)
		}
	}
}
