package parameter

import (
	"time"
)

// Audio Engine
const (
	// AudioSampleRate in Hz for all generated streamers
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Cue Shaping
const (
	// PickupSoundDuration covers the potion/food/weapon blips
	PickupSoundDuration = 120 * time.Millisecond
	PickupSoundAttack   = 5 * time.Millisecond
	PickupSoundRelease  = 60 * time.Millisecond

	// LevelSoundNoteDuration is the length of each arpeggio note
	LevelSoundNoteDuration = 90 * time.Millisecond
	LevelSoundAttack       = 5 * time.Millisecond
	LevelSoundRelease      = 40 * time.Millisecond

	// DeathSoundDuration is the falling drone on game over
	DeathSoundDuration = 600 * time.Millisecond
	DeathSoundAttack   = 10 * time.Millisecond
	DeathSoundRelease  = 300 * time.Millisecond
)

// Cue Volumes (linear, 1.0 = unity)
const (
	PickupSoundVolume = 0.5
	LevelSoundVolume  = 0.6
	DeathSoundVolume  = 0.7
)
