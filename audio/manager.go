package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// Note: beep doesn't provide a Close() method for speaker,
	// but clearing all streamers ensures no audio artifacts
	sm.mixer.Clear()
	sm.initialized = false
}

// ToggleMute flips the mute state and reports the new value.
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.muted && sm.initialized {
		sm.mixer.Clear()
	}
	return sm.muted
}

// Muted reports whether audio output is suppressed.
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// play queues a fixed-length one-shot on the mixer.
func (sm *SoundManager) play(d time.Duration, g beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	sm.mixer.Add(beep.Take(sampleRate.N(d), g))
}

// PlayHit plays a short low buzz when the player takes damage
func (sm *SoundManager) PlayHit() {
	sm.play(time.Millisecond*150, NewBuzzGenerator(sampleRate, 120))
}

// PlayPickup plays a rising two-tone chime for a collected pickup
func (sm *SoundManager) PlayPickup() {
	sm.play(time.Millisecond*180, NewChimeGenerator(sampleRate))
}

// PlayDeath plays a falling sweep when the run ends in defeat
func (sm *SoundManager) PlayDeath() {
	sm.play(time.Millisecond*600, NewDescentGenerator(sampleRate))
}

// PlayVictory plays a short ascending arpeggio
func (sm *SoundManager) PlayVictory() {
	sm.play(time.Millisecond*700, NewArpeggioGenerator(sampleRate))
}

// PlayAreaCleared plays a quick upward sweep when an area is cleared
func (sm *SoundManager) PlayAreaCleared() {
	sm.play(time.Millisecond*250, NewSweepGenerator(sampleRate))
}
