package manifest

import (
	"fmt"
	"time"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/system"
)

// RegisterSystems adds every game system to the world with its run conditions
func RegisterSystems(w *engine.World, moveInterval time.Duration) {
	w.AddSystem(system.NewInputSystem(w))
	w.AddSystem(system.NewSnakeSystem(w), engine.InStates("Playing"), engine.Every(moveInterval))
	w.AddSystem(system.NewWallSystem(w), engine.InStates("Playing"))
	w.AddSystem(system.NewFoodSystem(w), engine.InStates("InGame"))
	w.AddSystem(system.NewAudioSystem(w))
}

// NewGame wires systems, event handlers and the flow graph into a ready scheduler
// The FSM is entered immediately, so walls exist and the state is Menu on return
func NewGame(w *engine.World, moveInterval time.Duration) (*engine.Scheduler, error) {
	RegisterSystems(w, moveInterval)

	s := engine.NewScheduler(w)
	s.RegisterSystemHandlers()

	if err := s.LoadFSM(FSMConfig, RegisterFSMComponents); err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	return s, nil
}
