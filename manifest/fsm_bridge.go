package manifest

import (
	"log"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/engine/fsm"
	"github.com/lixenwraith/vi-snake/system"
)

// RegisterFSMComponents registers all game-specific actions with the FSM
func RegisterFSMComponents(m *fsm.Machine[*engine.World]) {
	// EmitEvent: takes a pre-compiled payload and pushes it to the World
	m.RegisterAction("EmitEvent", func(world *engine.World, args any) {
		emitArgs, ok := args.(*fsm.EmitEventArgs)
		if !ok {
			return
		}
		world.PushEvent(emitArgs.Type, emitArgs.Payload)
	})

	// --- Field lifecycle ---

	m.RegisterAction("SpawnWalls", func(world *engine.World, _ any) {
		if n := system.SpawnWalls(world); n > 0 {
			log.Printf("field: %d walls spawned", n)
		}
	})

	m.RegisterAction("ClearRound", func(world *engine.World, _ any) {
		system.ClearSnake(world)
		system.ClearFood(world)
	})

	m.RegisterAction("ResetRound", func(world *engine.World, _ any) {
		system.ClearSnake(world)
		system.ClearFood(world)
		world.Resources.Game.ResetRound()
		world.ResetTimers()
	})

	m.RegisterAction("SpawnSnake", func(world *engine.World, _ any) {
		system.SpawnSnake(world)
	})

	// --- Clock ---

	m.RegisterAction("PauseClock", func(world *engine.World, _ any) {
		world.Resources.Clock.Pause()
	})

	m.RegisterAction("ResumeClock", func(world *engine.World, _ any) {
		world.Resources.Clock.Resume()
	})

	// --- Diagnostics ---

	m.RegisterAction("LogState", func(world *engine.World, _ any) {
		game := world.Resources.Game
		log.Printf("round %d session=%s score=%d high=%d length=%d frame=%d",
			game.Rounds(), game.SessionID(), game.Score(), game.HighScore(),
			world.Resources.Snake.Len(), world.FrameNumber())
	})
}
