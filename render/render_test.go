package render

import (
	"image/color"
	"strings"
	"testing"

	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/system"
)

type paint struct {
	cell  core.Cell
	color color.RGBA
}

type recordingCanvas struct {
	cleared int
	cells   []paint
	lines   map[int]string
}

func newRecordingCanvas() *recordingCanvas {
	return &recordingCanvas{lines: make(map[int]string)}
}

func (c *recordingCanvas) Clear(color.RGBA) { c.cleared++ }

func (c *recordingCanvas) FillCell(cell core.Cell, fg color.RGBA, _ rune) {
	c.cells = append(c.cells, paint{cell: cell, color: fg})
}

func (c *recordingCanvas) Text(line int, s string, _ color.RGBA) { c.lines[line] = s }

type hiddenRenderer struct{ calls int }

func (r *hiddenRenderer) Render(RenderContext, Canvas) { r.calls++ }
func (r *hiddenRenderer) IsVisible() bool              { return false }

func TestOrchestratorDrawsLayersInOrder(t *testing.T) {
	w, _ := engine.NewTestWorld()
	system.SpawnWalls(w)
	system.SpawnSnake(w)
	system.Grow(w, core.Vec2{X: 300, Y: 250})
	w.Resources.Game.SetStatePath([]string{"Root", "InGame", "Playing"})
	w.Resources.Status.Counter("snake.length").Store(2)

	o := NewDefaultOrchestrator(true)
	hidden := &hiddenRenderer{}
	o.Register(hidden, PriorityBackground)

	canvas := newRecordingCanvas()
	o.RenderFrame(w, canvas)

	if canvas.cleared != 1 {
		t.Errorf("Clear called %d times", canvas.cleared)
	}
	if hidden.calls != 0 {
		t.Error("invisible renderer was called")
	}

	walls := constant.FieldWidth*2 + constant.FieldHeight*2 - 4
	if len(canvas.cells) != walls+2 {
		t.Fatalf("painted %d cells, want %d", len(canvas.cells), walls+2)
	}

	// Snake comes after walls and the head is painted last
	last := canvas.cells[len(canvas.cells)-1]
	if last.cell != (core.Cell{X: 300, Y: 250}) || last.color != constant.HeadColor {
		t.Errorf("last paint = %+v, want head at (300,250)", last)
	}
	if canvas.cells[0].color != constant.WallColor {
		t.Errorf("first paint = %+v, want a wall", canvas.cells[0])
	}

	if !strings.HasPrefix(canvas.lines[0], "Playing") || !strings.Contains(canvas.lines[0], "length 2") {
		t.Errorf("status line = %q", canvas.lines[0])
	}
	if !strings.Contains(canvas.lines[1], "pause") {
		t.Errorf("hint line = %q", canvas.lines[1])
	}
	if !strings.HasPrefix(canvas.lines[2], "session ") {
		t.Errorf("debug line = %q", canvas.lines[2])
	}
	if !strings.Contains(canvas.lines[3], "snake.length=") {
		t.Errorf("counter line = %q", canvas.lines[3])
	}
}

func TestHintLineCoversStates(t *testing.T) {
	for _, s := range []string{"Menu", "Playing", "Paused", "Over"} {
		if HintLine(s) == "" {
			t.Errorf("no hint for %s", s)
		}
	}
	if HintLine("Root") != "" {
		t.Error("hint for non-leaf state")
	}
}
