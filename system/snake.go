package system

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/event"
)

// SnakeSystem advances the snake on the movement tick and grows it on food events
// Registered with Every(moveInterval) and gated to Playing
type SnakeSystem struct {
	engine.SystemBase

	statLength *atomic.Int64
	statEaten  *atomic.Int64
}

// NewSnakeSystem creates the snake system
func NewSnakeSystem(world *engine.World) engine.System {
	s := &SnakeSystem{
		SystemBase: engine.NewSystemBase(world),
		statLength: world.Resources.Status.Counter("snake.length"),
		statEaten:  world.Resources.Status.Counter("food.eaten"),
	}
	return s
}

// Priority returns the system's priority
func (s *SnakeSystem) Priority() int {
	return constant.PrioritySnake
}

// EventTypes returns the event types SnakeSystem handles
func (s *SnakeSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventFoodEaten,
	}
}

// HandleEvent grows the snake at the eaten food position
func (s *SnakeSystem) HandleEvent(world *engine.World, ev event.GameEvent) {
	payload, ok := ev.Payload.(*event.FoodEatenPayload)
	if !ok {
		return
	}
	if Grow(world, payload.Position) {
		world.Resources.Game.AddScore(1)
		s.statEaten.Add(1)
		s.statLength.Store(int64(world.Resources.Snake.Len()))
	}
}

// Update runs one movement tick
func (s *SnakeSystem) Update() {
	Move(s.World)
	s.statLength.Store(int64(s.Resource.Snake.Len()))
}

// SpawnSnake creates the single initial segment at the start position
// Any previous snake is cleared first
func SpawnSnake(world *engine.World) core.Entity {
	ClearSnake(world)
	e := newSegment(world, constant.SnakeStart, component.RoleHead)
	world.Resources.Snake.PushFront(e, constant.SnakeStart)
	return e
}

// ClearSnake destroys every segment entity and empties the tracked body
func ClearSnake(world *engine.World) {
	for _, e := range world.Components.Segment.All() {
		world.DestroyEntity(e)
	}
	world.Resources.Snake.Reset()
}

// Move relocates the tail segment one cell ahead of the head in the current direction
// The relocated segment becomes the head; other segment transforms are untouched
func Move(world *engine.World) bool {
	snake := world.Resources.Snake
	oldHead, headPos, ok := snake.Head()
	if !ok {
		return false
	}

	next := headPos.Add(world.Resources.Game.Direction().Step())
	tail, _ := snake.RotateTail(next)
	moveEntity(world, tail, next)

	if oldHead != tail {
		setRole(world, oldHead, component.RoleBody)
	}
	setRole(world, tail, component.RoleHead)
	return true
}

// Grow inserts a new head segment at pos without removing any segment
func Grow(world *engine.World, pos core.Vec2) bool {
	snake := world.Resources.Snake
	oldHead, _, ok := snake.Head()
	if !ok {
		return false
	}

	setRole(world, oldHead, component.RoleBody)
	e := newSegment(world, pos, component.RoleHead)
	snake.PushFront(e, pos)
	return true
}
