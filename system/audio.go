package system

import (
	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/event"
)

// AudioSystem consumes sound-bearing events and plays audio
// Decouples game systems from direct SoundManager access
type AudioSystem struct {
	world *engine.World
}

// NewAudioSystem creates an audio system reading the player from world resources
// The player may be nil if audio is disabled
func NewAudioSystem(world *engine.World) engine.System {
	return &AudioSystem{world: world}
}

// Priority returns the system's priority
func (s *AudioSystem) Priority() int {
	return constant.PriorityAudio
}

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSoundRequest,
		event.EventFoodEaten,
		event.EventGameOver,
	}
}

// HandleEvent maps the event to a sound effect
func (s *AudioSystem) HandleEvent(world *engine.World, ev event.GameEvent) {
	player := world.Resources.Audio.Player
	if player == nil {
		return
	}

	switch ev.Type {
	case event.EventFoodEaten:
		player.Play(core.SoundEat)
	case event.EventGameOver:
		player.Play(core.SoundGameOver)
	case event.EventSoundRequest:
		if payload, ok := ev.Payload.(*event.SoundRequestPayload); ok {
			player.Play(payload.Sound)
		}
	}
}

// Update implements System interface (no tick-based logic)
func (s *AudioSystem) Update() {}
