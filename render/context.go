package render

import (
	"github.com/lixenwraith/vi-snake/engine"
)

// RenderContext is the per-frame snapshot handed to renderers
// Built under the world update lock so renderers never observe a half-applied frame
type RenderContext struct {
	World *engine.World

	State     string
	Score     int
	HighScore int
	Length    int
	Session   string
	Frame     int64
	Debug     bool
}

// NewRenderContext snapshots the HUD fields of the world
func NewRenderContext(world *engine.World, debug bool) RenderContext {
	game := world.Resources.Game
	return RenderContext{
		World:     world,
		State:     game.StateName(),
		Score:     game.Score(),
		HighScore: game.HighScore(),
		Length:    world.Resources.Snake.Len(),
		Session:   game.SessionID().String()[:8],
		Frame:     world.FrameNumber(),
		Debug:     debug,
	}
}
