package engine

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/status"
)

// Resource holds singleton game resources, initialized with the World and accessed via World.Resources
type Resource struct {
	// World Resource
	Time  *TimeResource
	Game  *GameState
	Snake *SnakeResource
	Event *EventQueueResource
	Input *input.Keyboard
	Clock *PausableClock
	Rand  *rand.Rand

	// Telemetry
	Status *status.Registry

	// Bridged from front end
	Audio *AudioResource
}

// TimeResource wraps time data for systems
// It is updated by the Scheduler at the start of a frame
type TimeResource struct {
	// GameTime is the current time in the game world (affected by pause)
	GameTime time.Time

	// RealTime is the wall-clock time (unaffected by pause)
	RealTime time.Time

	// DeltaTime is the game time elapsed since the last frame
	DeltaTime time.Duration

	// FrameNumber is the current frame count
	FrameNumber int64
}

// Update modifies TimeResource fields in-place (zero allocation)
func (tr *TimeResource) Update(gameTime, realTime time.Time, deltaTime time.Duration, frameNumber int64) {
	tr.GameTime = gameTime
	tr.RealTime = realTime
	tr.DeltaTime = deltaTime
	tr.FrameNumber = frameNumber
}

// EventQueueResource wraps the event queue for systems access
type EventQueueResource struct {
	Queue *event.EventQueue
}

// AudioPlayer defines the minimal audio interface used by game systems
type AudioPlayer interface {
	Play(core.SoundType) bool
	IsMuted() bool
}

// AudioResource wraps the audio player interface, Player is nil when audio is disabled
type AudioResource struct {
	Player AudioPlayer
}

// newResource builds the default resource set around a clock
func newResource(clock *PausableClock) *Resource {
	now := clock.Now()
	return &Resource{
		Time:   &TimeResource{GameTime: now, RealTime: clock.RealTime()},
		Game:   NewGameState(),
		Snake:  &SnakeResource{},
		Event:  &EventQueueResource{Queue: event.NewEventQueue()},
		Input:  input.NewKeyboard(),
		Clock:  clock,
		Rand:   rand.New(rand.NewPCG(uint64(now.UnixNano()), 0x5eed)),
		Status: status.NewRegistry(),
		Audio:  &AudioResource{},
	}
}
