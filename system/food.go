package system

import (
	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/physics"
)

// FoodSystem keeps one food on the field and detects when the head reaches it
type FoodSystem struct {
	engine.SystemBase
}

// NewFoodSystem creates the food system
func NewFoodSystem(world *engine.World) engine.System {
	return &FoodSystem{SystemBase: engine.NewSystemBase(world)}
}

// Priority returns the system's priority
func (s *FoodSystem) Priority() int {
	return constant.PriorityFood
}

// Update spawns before checking so a fresh food never lands on the cell a pending growth will claim
func (s *FoodSystem) Update() {
	SpawnFoodIfAbsent(s.World)
	CheckFoodEaten(s.World)
}

// occupiedCells returns the distinct in-field cells held by any placed entity
func occupiedCells(world *engine.World) map[core.Cell]struct{} {
	occupied := make(map[core.Cell]struct{}, world.Components.Cell.Count())
	for _, e := range world.Components.Cell.All() {
		c, _ := world.Components.Cell.Get(e)
		if constant.Field.Contains(c.Cell) {
			occupied[c.Cell] = struct{}{}
		}
	}
	return occupied
}

// SpawnFoodIfAbsent places one food on a random free cell
// No-op while a food exists or once every field cell is occupied
func SpawnFoodIfAbsent(world *engine.World) (core.Entity, bool) {
	if world.Components.Food.Count() > 0 {
		return 0, false
	}

	field := constant.Field
	occupied := occupiedCells(world)
	if len(occupied) >= field.Capacity() {
		return 0, false
	}

	rng := world.Resources.Rand
	var cell core.Cell
	for {
		cell = core.CellOf(rng.IntN(field.Width), rng.IntN(field.Height))
		if _, taken := occupied[cell]; !taken {
			break
		}
	}

	e := world.CreateEntity()
	placeEntity(world, e, cell.Vec(), component.SpriteComponent{
		Color: constant.FoodColor,
		Size:  constant.CellExtent,
		Glyph: '●',
	})
	world.Components.Food.Set(e, component.FoodComponent{})
	world.PushEvent(event.EventFoodSpawned, &event.FoodSpawnedPayload{Cell: cell})
	return e, true
}

// CheckFoodEaten destroys the food under the head and pushes EventFoodEaten with its position
func CheckFoodEaten(world *engine.World) bool {
	_, head, ok := world.Resources.Snake.Head()
	if !ok {
		return false
	}

	foods := world.Query().
		With(world.Components.Food).
		With(world.Components.Transform).
		Execute()

	for _, e := range foods {
		tr, _ := world.Components.Transform.Get(e)
		if physics.Collide(head, constant.CellExtent, tr.Position, constant.CellExtent) {
			world.DestroyEntity(e)
			world.PushEvent(event.EventFoodEaten, &event.FoodEatenPayload{Position: tr.Position})
			return true
		}
	}
	return false
}

// ClearFood destroys every food entity
func ClearFood(world *engine.World) {
	for _, e := range world.Components.Food.All() {
		world.DestroyEntity(e)
	}
}
