package render

import (
	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/engine"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	renderers []rendererEntry
	regCount  int
	debug     bool
}

// NewRenderOrchestrator creates an empty orchestrator
func NewRenderOrchestrator(debug bool) *RenderOrchestrator {
	return &RenderOrchestrator{
		renderers: make([]rendererEntry, 0, 8),
		debug:     debug,
	}
}

// NewDefaultOrchestrator registers the standard field, snake and HUD layers
func NewDefaultOrchestrator(debug bool) *RenderOrchestrator {
	o := NewRenderOrchestrator(debug)
	o.Register(&WallRenderer{}, PriorityWall)
	o.Register(&FoodRenderer{}, PriorityFood)
	o.Register(&SnakeRenderer{}, PrioritySnake)
	o.Register(&HUDRenderer{}, PriorityUI)
	return o
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// RenderFrame clears the canvas and runs every visible renderer under the world lock
func (o *RenderOrchestrator) RenderFrame(world *engine.World, canvas Canvas) {
	world.RunSafe(func() {
		ctx := NewRenderContext(world, o.debug)
		canvas.Clear(constant.ClearColor)

		for _, entry := range o.renderers {
			if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
				continue
			}
			entry.renderer.Render(ctx, canvas)
		}
	})
}
