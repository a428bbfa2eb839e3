package render

import (
	"fmt"

	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/engine"
)

// drawSprites paints every entity in the tag store that has a sprite and a transform
func drawSprites(world *engine.World, tag engine.QueryableStore, canvas Canvas) {
	entities := world.Query().
		With(tag).
		With(world.Components.Sprite).
		With(world.Components.Transform).
		Execute()

	for _, e := range entities {
		sp, _ := world.Components.Sprite.Get(e)
		tr, _ := world.Components.Transform.Get(e)
		canvas.FillCell(tr.Position.Cell(), sp.Color, sp.Glyph)
	}
}

// WallRenderer draws the border
type WallRenderer struct{}

func (r *WallRenderer) Render(ctx RenderContext, canvas Canvas) {
	drawSprites(ctx.World, ctx.World.Components.Wall, canvas)
}

// FoodRenderer draws the food item
type FoodRenderer struct{}

func (r *FoodRenderer) Render(ctx RenderContext, canvas Canvas) {
	drawSprites(ctx.World, ctx.World.Components.Food, canvas)
}

// SnakeRenderer draws the body tail first so the head is always on top
type SnakeRenderer struct{}

func (r *SnakeRenderer) Render(ctx RenderContext, canvas Canvas) {
	w := ctx.World
	segments := w.Resources.Snake.Segments
	for i := len(segments) - 1; i >= 0; i-- {
		e := segments[i]
		sp, ok := w.Components.Sprite.Get(e)
		if !ok {
			continue
		}
		tr, _ := w.Components.Transform.Get(e)
		canvas.FillCell(tr.Position.Cell(), sp.Color, sp.Glyph)
	}
}

// HUDRenderer writes the status lines below the field
type HUDRenderer struct{}

func (r *HUDRenderer) Render(ctx RenderContext, canvas Canvas) {
	canvas.Text(0, StatusLine(ctx), constant.TextColor)
	canvas.Text(1, HintLine(ctx.State), constant.TextColor)
	if ctx.Debug {
		canvas.Text(2, fmt.Sprintf("session %s  frame %d", ctx.Session, ctx.Frame), constant.TextColor)
		canvas.Text(3, ctx.World.Resources.Status.String(), constant.TextColor)
	}
}

// StatusLine formats state and score
func StatusLine(ctx RenderContext) string {
	return fmt.Sprintf("%-8s score %d  best %d  length %d", ctx.State, ctx.Score, ctx.HighScore, ctx.Length)
}

// HintLine returns the key help for a state
func HintLine(state string) string {
	switch state {
	case "Menu":
		return "enter/space: start  q: quit"
	case "Playing":
		return "arrows/hjkl: steer  space: pause  m: menu"
	case "Paused":
		return "PAUSED  space: resume  m: menu"
	case "Over":
		return "GAME OVER  enter: restart  m: menu"
	default:
		return ""
	}
}
