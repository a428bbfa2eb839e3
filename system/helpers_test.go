package system

import (
	"math/rand/v2"
	"testing"

	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/event"
)

func newWorld(t *testing.T) *engine.World {
	t.Helper()
	w, _ := engine.NewTestWorld()
	w.Resources.Rand = rand.New(rand.NewPCG(7, 11))
	return w
}

func drain(w *engine.World) []event.GameEvent {
	return w.Resources.Event.Queue.Consume()
}

func countType(events []event.GameEvent, et event.EventType) int {
	n := 0
	for _, ev := range events {
		if ev.Type == et {
			n++
		}
	}
	return n
}

// assertSnakeConsistent checks role uniqueness and that tracked body matches rendered transforms
func assertSnakeConsistent(t *testing.T, w *engine.World) {
	t.Helper()
	snake := w.Resources.Snake
	if len(snake.Segments) != len(snake.Body) {
		t.Fatalf("segments=%d body=%d", len(snake.Segments), len(snake.Body))
	}
	if got := w.Components.Segment.Count(); got != snake.Len() {
		t.Fatalf("rendered segments=%d tracked=%d", got, snake.Len())
	}

	heads := 0
	for _, e := range w.Components.Segment.All() {
		seg, _ := w.Components.Segment.Get(e)
		if seg.IsHead() {
			heads++
			if e != snake.Segments[0] {
				t.Errorf("head role on %d, tracked head is %d", e, snake.Segments[0])
			}
		}
	}
	if snake.Len() > 0 && heads != 1 {
		t.Errorf("%d head segments, want 1", heads)
	}

	for i, e := range snake.Segments {
		tr, ok := w.Components.Transform.Get(e)
		if !ok || tr.Position != snake.Body[i] {
			t.Errorf("segment %d at %v, tracked %v", i, tr.Position, snake.Body[i])
		}
		c, _ := w.Components.Cell.Get(e)
		if c.Cell != snake.Body[i].Cell() || !c.Cell.Aligned() {
			t.Errorf("segment %d cell %+v not aligned with %v", i, c.Cell, snake.Body[i])
		}
	}
}

// placeBlocker occupies a cell without any gameplay role
func placeBlocker(w *engine.World, c core.Cell) {
	e := w.CreateEntity()
	w.Components.Cell.Set(e, component.CellComponent{Cell: c})
}
