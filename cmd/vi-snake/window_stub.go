//go:build nowindow

package main

import (
	"errors"

	"github.com/lixenwraith/vi-snake/engine"
)

// Headless builds carry no window front end
func runWindow(*engine.World, *engine.Scheduler, bool) error {
	return errors.New("window ui not compiled in, rebuild without the nowindow tag or use -ui terminal")
}
