package terminal

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
)

// App runs the game in a terminal: polls keys, steps the scheduler and draws each frame
type App struct {
	screen       tcell.Screen
	world        *engine.World
	scheduler    *engine.Scheduler
	orchestrator *render.RenderOrchestrator
	canvas       *Canvas
	keys         *input.KeyTable
}

// NewApp creates a terminal front end over an initialized screen
func NewApp(screen tcell.Screen, world *engine.World, scheduler *engine.Scheduler, debug bool) *App {
	return &App{
		screen:       screen,
		world:        world,
		scheduler:    scheduler,
		orchestrator: render.NewDefaultOrchestrator(debug),
		canvas:       NewCanvas(screen),
		keys:         input.DefaultKeyTable(),
	}
}

// NewScreen creates and initializes the terminal screen
// The returned screen is registered for restoration on crash
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal: init screen: %w", err)
	}
	screen.HideCursor()
	core.SetCrashReset(screen.Fini)
	return screen, nil
}

// HandleEvent applies one terminal event, returns false when the user asked to quit
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		key := a.keys.FromTcell(ev)
		if key == input.KeyQuit {
			return false
		}
		a.world.Resources.Input.Press(key)
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

// Draw renders the current world state and shows it
func (a *App) Draw() {
	a.orchestrator.RenderFrame(a.world, a.canvas)
	a.screen.Show()
}

// Run drives the game until the user quits or ctx is cancelled
func (a *App) Run(ctx context.Context, frame time.Duration) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 16)
	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	mw, mh := Size()
	if w, h := a.screen.Size(); w < mw || h < mh {
		log.Printf("terminal: %dx%d is smaller than the %dx%d field", w, h, mw, mh)
	}

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	a.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !a.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			a.scheduler.Step()
			a.Draw()
		}
	}
}
