package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer entities are created on and renderers draw.
const Default ecs.LayerID = 0

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	JumpSpeed    float64 `yaml:"jumpSpeed"`
	Acceleration float64 `yaml:"acceleration"`
	MaxSpeed     float64 `yaml:"maxSpeed"`
	Friction     float64 `yaml:"friction"`

	// Dimensions
	CollisionWidth  float64 `yaml:"collisionWidth"`
	CollisionHeight float64 `yaml:"collisionHeight"`

	Color color.RGBA `yaml:"-"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"maxFallSpeed"`
	CellSize     int     `yaml:"cellSize"` // resolv space cell size
}

// CheckpointConfig contains checkpoint visuals and effects
type CheckpointConfig struct {
	ActiveTint   color.RGBA
	InactiveTint color.RGBA

	// Sprite keys swapped on activation
	ActiveSprite   string
	InactiveSprite string

	// Activation particle burst
	BurstCount    int     `yaml:"burstCount"`
	BurstLife     int     `yaml:"burstLife"` // frames
	BurstSpeed    float64 `yaml:"burstSpeed"`
	BurstGravity  float64 `yaml:"burstGravity"`
	BurstColor    color.RGBA
	PropWidth     float64 `yaml:"propWidth"`
	PropHeight    float64 `yaml:"propHeight"`
	PropColor     color.RGBA
	PropBobHeight float64 `yaml:"propBobHeight"` // pixels the banner prop rises
	PropBobTime   float32 `yaml:"propBobTime"`   // seconds per rise

	// HUD message shown when a checkpoint activates
	MessageText   string `yaml:"messageText"`
	MessageFrames int    `yaml:"messageFrames"`
}

// FadeConfig contains screen fade configuration
type FadeConfig struct {
	Color            color.RGBA
	FadeInOnLoad     bool          `yaml:"fadeInOnLoad"`
	LoadFadeDuration time.Duration `yaml:"loadFadeDuration"`
}

// TransitionConfig contains level transition defaults
type TransitionConfig struct {
	FadeOut     time.Duration `yaml:"fadeOut"`
	FadeIn      time.Duration `yaml:"fadeIn"`
	SolidReach  float64       `yaml:"solidReach"` // pixels probed for solid contact
	TriggerTint color.RGBA
	SolidTint   color.RGBA
}

// DeathZoneConfig contains dead zone behaviour
type DeathZoneConfig struct {
	RespawnDelayFrames int `yaml:"respawnDelayFrames"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 `yaml:"followSmoothing"` // How fast camera follows player (0.0-1.0)
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Title        string
}

// UIConfig contains HUD and debug colors
type UIConfig struct {
	BackgroundColor color.RGBA
	SolidColor      color.RGBA
	DeadZoneColor   color.RGBA
	HUDTextColor    color.RGBA
	DebugTextColor  color.RGBA
	DebugColors     map[string]color.RGBA
}

// DebugConfig contains debug switches, overridable from the environment
type DebugConfig struct {
	Overlay    bool   `env:"WAYPOINT_DEBUG"`       // start with the debug overlay on
	StartLevel string `env:"WAYPOINT_START_LEVEL"` // level to start in, bypassing the save
	NoSave     bool   `env:"WAYPOINT_NO_SAVE"`     // disable progress persistence
}

// Config holds general game configuration
type Config struct {
	Width        int
	Height       int
	DefaultLevel string
	PlayerTag    string // collision tag that identifies the player to triggers
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Checkpoint CheckpointConfig
var Fade FadeConfig
var Transition TransitionConfig
var DeathZone DeathZoneConfig
var Camera CameraConfig
var Pause PauseConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Gold         = color.RGBA{R: 255, G: 210, B: 60, A: 255}
	Grey         = color.RGBA{R: 110, G: 110, B: 120, A: 255}
	DarkGrey     = color.RGBA{R: 60, G: 60, B: 70, A: 255}
	Red          = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Purple       = color.RGBA{R: 150, G: 70, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	SkyBlue      = color.RGBA{R: 24, G: 30, B: 48, A: 255}
)

func init() {
	C = &Config{
		Width:        640,
		Height:       360,
		DefaultLevel: "meadow",
		PlayerTag:    "Player",
	}

	Player = PlayerConfig{
		JumpSpeed:       8.5,
		Acceleration:    0.6,
		MaxSpeed:        3.0,
		Friction:        0.4,
		CollisionWidth:  12,
		CollisionHeight: 22,
		Color:           LightBlue,
	}

	Physics = PhysicsConfig{
		Gravity:      0.5,
		MaxFallSpeed: 10.0,
		CellSize:     16,
	}

	Checkpoint = CheckpointConfig{
		ActiveTint:     Gold,
		InactiveTint:   Grey,
		ActiveSprite:   "flag_raised",
		InactiveSprite: "flag_lowered",
		BurstCount:     24,
		BurstLife:      40,
		BurstSpeed:     2.5,
		BurstGravity:   0.08,
		BurstColor:     Gold,
		PropWidth:      10,
		PropHeight:     14,
		PropColor:      Purple,
		PropBobHeight:  18,
		PropBobTime:    0.6,
		MessageText:    "Checkpoint!",
		MessageFrames:  90,
	}

	Fade = FadeConfig{
		Color:            Black,
		FadeInOnLoad:     true,
		LoadFadeDuration: 600 * time.Millisecond,
	}

	Transition = TransitionConfig{
		FadeOut:     500 * time.Millisecond,
		FadeIn:      500 * time.Millisecond,
		SolidReach:  1,
		TriggerTint: color.RGBA{R: 60, G: 200, B: 120, A: 120},
		SolidTint:   color.RGBA{R: 140, G: 90, B: 50, A: 255},
	}

	DeathZone = DeathZoneConfig{
		RespawnDelayFrames: 30,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
		Title:        "PAUSED",
	}

	UI = UIConfig{
		BackgroundColor: SkyBlue,
		SolidColor:      DarkGrey,
		DeadZoneColor:   color.RGBA{R: 120, G: 20, B: 20, A: 255},
		HUDTextColor:    White,
		DebugTextColor:  Cyan,
		DebugColors: map[string]color.RGBA{
			"solid":      Grey,
			"Player":     Blue,
			"checkpoint": Gold,
			"transition": Cyan,
			"deadzone":   Red,
		},
	}

	// Debug Config (defaults, can be overridden by the environment)
	Debug = DebugConfig{}
}
