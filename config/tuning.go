package config

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed tuning.yaml
var defaultTuning []byte

// tuning mirrors the overridable sections of the global config.
type tuning struct {
	Player     PlayerConfig     `yaml:"player"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Checkpoint CheckpointConfig `yaml:"checkpoint"`
	Fade       FadeConfig       `yaml:"fade"`
	Transition TransitionConfig `yaml:"transition"`
	DeathZone  DeathZoneConfig  `yaml:"deathZone"`
	Camera     CameraConfig     `yaml:"camera"`
}

// LoadDefaultTuning applies the tuning file embedded in the binary.
func LoadDefaultTuning() error {
	return ApplyTuning(defaultTuning)
}

// ApplyTuning overlays YAML tuning on top of the current configuration.
// Keys that are absent keep their current values. Nothing is changed if
// the document fails to parse or validate.
func ApplyTuning(data []byte) error {
	t := tuning{
		Player:     Player,
		Physics:    Physics,
		Checkpoint: Checkpoint,
		Fade:       Fade,
		Transition: Transition,
		DeathZone:  DeathZone,
		Camera:     Camera,
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("failed to parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return fmt.Errorf("invalid tuning: %w", err)
	}

	Player = t.Player
	Physics = t.Physics
	Checkpoint = t.Checkpoint
	Fade = t.Fade
	Transition = t.Transition
	DeathZone = t.DeathZone
	Camera = t.Camera
	return nil
}

// Validate checks that values are usable.
func (t *tuning) Validate() error {
	var errs []error
	if t.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must be positive, got %v", t.Physics.Gravity))
	}
	if t.Physics.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("physics.cellSize must be positive, got %d", t.Physics.CellSize))
	}
	if t.Player.MaxSpeed <= 0 {
		errs = append(errs, fmt.Errorf("player.maxSpeed must be positive, got %v", t.Player.MaxSpeed))
	}
	if t.Checkpoint.BurstCount < 0 || t.Checkpoint.BurstLife < 0 {
		errs = append(errs, errors.New("checkpoint burst values must not be negative"))
	}
	if t.Fade.LoadFadeDuration < 0 || t.Transition.FadeOut < 0 || t.Transition.FadeIn < 0 {
		errs = append(errs, errors.New("fade durations must not be negative"))
	}
	if t.Camera.FollowSmoothing <= 0 || t.Camera.FollowSmoothing > 1 {
		errs = append(errs, fmt.Errorf("camera.followSmoothing must be in (0,1], got %v", t.Camera.FollowSmoothing))
	}
	return errors.Join(errs...)
}
