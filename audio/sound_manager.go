package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/core"
)

const sampleRate = beep.SampleRate(constant.AudioSampleRate)

// SoundManager manages all game audio
// Every Play method is a silent no-op until Initialize succeeds
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

// Initialize sets up the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constant.AudioBufferDuration)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
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

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker Close in this version; an empty mixer is silent
	sm.initialized = false
}

// SetMuted enables or disables all playback
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// ToggleMute flips mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// IsMuted returns the mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play starts the effect for the sound type, false if nothing was queued
func (sm *SoundManager) Play(s core.SoundType) bool {
	switch s {
	case core.SoundEat:
		return sm.PlayEat()
	case core.SoundGameOver:
		return sm.PlayGameOver()
	case core.SoundPause:
		return sm.PlayPause()
	default:
		return false
	}
}

// PlayEat plays a short high blip
func (sm *SoundManager) PlayEat() bool {
	tone, err := generators.SineTone(sampleRate, constant.EatSoundFreq)
	if err != nil {
		return false
	}
	return sm.enqueue(beep.Take(sampleRate.N(constant.EatSoundDuration), tone))
}

// PlayGameOver plays a falling buzz
func (sm *SoundManager) PlayGameOver() bool {
	gen := NewSweepGenerator(sampleRate, constant.GameOverSoundFreq, constant.GameOverSoundFreq/2, constant.GameOverSoundDuration)
	return sm.enqueue(beep.Take(sampleRate.N(constant.GameOverSoundDuration), gen))
}

// PlayPause plays a click
func (sm *SoundManager) PlayPause() bool {
	tone, err := generators.SineTone(sampleRate, constant.PauseSoundFreq)
	if err != nil {
		return false
	}
	return sm.enqueue(beep.Take(sampleRate.N(constant.PauseSoundDuration), tone))
}

// enqueue applies the master volume and adds the streamer to the mixer
func (sm *SoundManager) enqueue(s beep.Streamer) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(withVolume(s, constant.SoundVolume))
	speaker.Unlock()
	return true
}

// withVolume wraps a streamer with a linear gain expressed on a base-2 scale
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// SweepGenerator generates a square-ish tone gliding linearly between two frequencies
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	total    int
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sweep from one frequency to another over d
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{
		sr:    sr,
		from:  from,
		to:    to,
		total: max(sr.N(d), 1),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.total), 1)
		freq := g.from + (g.to-g.from)*progress

		g.phase += 2 * math.Pi * freq / float64(g.sr)
		if g.phase > 2*math.Pi {
			g.phase -= 2 * math.Pi
		}

		// Fundamental plus odd harmonics for a harsh buzz
		sample := 0.6*math.Sin(g.phase) + 0.2*math.Sin(3*g.phase) + 0.1*math.Sin(5*g.phase)

		// Linear fade out
		sample *= 1 - progress

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}
