package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Eat Sound
const (
	EatSoundDuration = 90 * time.Millisecond
	EatSoundFreq     = 880.0
)

// Game Over Sound
const (
	GameOverSoundDuration = 400 * time.Millisecond
	GameOverSoundFreq     = 220.0
)

// Pause Sound
const (
	PauseSoundDuration = 40 * time.Millisecond
	PauseSoundFreq     = 660.0
)

// SoundVolume is the linear gain applied to every effect
const SoundVolume = 0.25
