package config

import "github.com/automoto/waypoint/assets"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundCheckpoint
	SoundTransition
	SoundRespawn
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to the notes they are synthesized from
type SoundConfig struct {
	SFX               map[SoundID][]assets.Note
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
	}

	Sound = SoundConfig{
		SFX: map[SoundID][]assets.Note{
			SoundJump:       {{Freq: 440, Seconds: 0.05}, {Freq: 660, Seconds: 0.05}},
			SoundCheckpoint: {{Freq: 523.25, Seconds: 0.08}, {Freq: 659.25, Seconds: 0.08}, {Freq: 783.99, Seconds: 0.16}},
			SoundTransition: {{Freq: 392, Seconds: 0.12}, {Freq: 293.66, Seconds: 0.2}},
			SoundRespawn:    {{Freq: 220, Seconds: 0.1}, {Freq: 0, Seconds: 0.04}, {Freq: 330, Seconds: 0.1}},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundJump: 0.5,
		},
	}
}
