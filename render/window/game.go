package window

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
)

// KeyMap binds window keys to game keys
var KeyMap = map[ebiten.Key]input.Key{
	ebiten.KeyArrowUp:    input.KeyUp,
	ebiten.KeyArrowDown:  input.KeyDown,
	ebiten.KeyArrowLeft:  input.KeyLeft,
	ebiten.KeyArrowRight: input.KeyRight,
	ebiten.KeyK:          input.KeyUp,
	ebiten.KeyJ:          input.KeyDown,
	ebiten.KeyH:          input.KeyLeft,
	ebiten.KeyL:          input.KeyRight,
	ebiten.KeySpace:      input.KeySpace,
	ebiten.KeyEnter:      input.KeyEnter,
	ebiten.KeyM:          input.KeyMenu,
	ebiten.KeyEscape:     input.KeyQuit,
	ebiten.KeyQ:          input.KeyQuit,
}

// Game adapts the scheduler to ebiten's Update/Draw loop
// Update polls just-pressed keys into the keyboard and steps one frame
type Game struct {
	world        *engine.World
	scheduler    *engine.Scheduler
	orchestrator *render.RenderOrchestrator
	canvas       Canvas
}

// NewGame creates the window front end
func NewGame(world *engine.World, scheduler *engine.Scheduler, debug bool) *Game {
	return &Game{
		world:        world,
		scheduler:    scheduler,
		orchestrator: render.NewDefaultOrchestrator(debug),
	}
}

func (g *Game) Update() error {
	kb := g.world.Resources.Input
	for k, key := range KeyMap {
		if !inpututil.IsKeyJustPressed(k) {
			continue
		}
		if key == input.KeyQuit {
			return ebiten.Termination
		}
		kb.Press(key)
	}

	g.scheduler.Step()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.target = screen
	g.orchestrator.RenderFrame(g.world, &g.canvas)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return constant.WindowWidth, constant.WindowHeight
}

// Run opens the fixed-size window and blocks until it is closed
func Run(g *Game) error {
	ebiten.SetWindowSize(constant.WindowWidth, constant.WindowHeight)
	ebiten.SetWindowTitle(constant.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(int(time.Second / constant.FrameUpdateInterval))

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
