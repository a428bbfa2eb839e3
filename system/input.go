package system

import (
	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/input"
)

var directionKeys = [...]struct {
	key input.Key
	dir core.Direction
}{
	{input.KeyUp, core.DirUp},
	{input.KeyDown, core.DirDown},
	{input.KeyLeft, core.DirLeft},
	{input.KeyRight, core.DirRight},
}

// InputSystem turns this frame's key edges into direction changes and flow events
// Runs every frame regardless of state
type InputSystem struct {
	engine.SystemBase
}

// NewInputSystem creates the input controller
func NewInputSystem(world *engine.World) engine.System {
	return &InputSystem{SystemBase: engine.NewSystemBase(world)}
}

// Priority returns the system's priority
func (s *InputSystem) Priority() int {
	return constant.PriorityInput
}

// Update reads edge-triggered presses published for this frame
func (s *InputSystem) Update() {
	kb := s.Resource.Input
	game := s.Resource.Game

	switch {
	case game.InState("InGame"):
		if kb.JustPressed(input.KeySpace) {
			s.World.PushEvent(event.EventPauseToggle, nil)
		}
		if game.InState("Playing") {
			for _, dk := range directionKeys {
				if kb.JustPressed(dk.key) {
					game.SetDirection(dk.dir)
				}
			}
		}

	case game.InState("Menu"):
		if kb.JustPressed(input.KeyEnter) || kb.JustPressed(input.KeySpace) {
			s.World.PushEvent(event.EventGameStart, nil)
		}

	case game.InState("Over"):
		if kb.JustPressed(input.KeyEnter) {
			s.World.PushEvent(event.EventGameRestart, nil)
		}
	}

	if kb.JustPressed(input.KeyMenu) && !game.InState("Menu") {
		s.World.PushEvent(event.EventGameMenu, nil)
	}
}
