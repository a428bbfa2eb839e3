//go:build !nowindow

package main

import (
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/render/window"
)

func runWindow(world *engine.World, scheduler *engine.Scheduler, debug bool) error {
	return window.Run(window.NewGame(world, scheduler, debug))
}
