package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/dungeon-survival/core"
	"github.com/lixenwraith/dungeon-survival/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager plays generated sound cues through the beep speaker.
// When no audio backend is available it stays disabled and every Play
// is a silent no-op; game logic never depends on playback.
type SoundManager struct {
	mu          sync.Mutex
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{}
}

// Initialize sets up the audio backend. Failure leaves the manager
// disabled; callers may log it but the game runs silent.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	sm.initialized = false
}

// Play implements core.SoundPlayer. It reports whether the cue was
// actually dispatched to the speaker.
func (sm *SoundManager) Play(st core.SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return false
	}

	streamer := GetSoundEffect(st, sampleRate)
	if streamer == nil {
		return false
	}

	speaker.Play(streamer)
	return true
}

// ToggleMute flips the mute state and returns the new state.
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	return sm.muted
}

// IsMuted returns the current mute state.
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}
