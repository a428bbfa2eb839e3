package system

import (
	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/physics"
)

// WallSystem tests the snake head against the border each frame while Playing
type WallSystem struct {
	engine.SystemBase
}

// NewWallSystem creates the wall system
func NewWallSystem(world *engine.World) engine.System {
	return &WallSystem{SystemBase: engine.NewSystemBase(world)}
}

// Priority returns the system's priority
func (s *WallSystem) Priority() int {
	return constant.PriorityWall
}

// Update emits a single EventWallHit if the head overlaps any wall
func (s *WallSystem) Update() {
	CheckWallCollision(s.World)
}

// SpawnWalls places a wall at every perimeter cell of the field, once per world
// Returns the number of walls created
func SpawnWalls(world *engine.World) int {
	if world.Components.Wall.Count() > 0 {
		return 0
	}

	field := constant.Field
	created := 0
	for i := 0; i < field.Width; i++ {
		for j := 0; j < field.Height; j++ {
			if !field.OnBorder(i, j) {
				continue
			}
			e := world.CreateEntity()
			placeEntity(world, e, core.CellOf(i, j).Vec(), component.SpriteComponent{
				Color: constant.WallColor,
				Size:  constant.CellExtent,
			})
			world.Components.Wall.Set(e, component.WallComponent{})
			created++
		}
	}
	return created
}

// CheckWallCollision pushes EventWallHit once when the head overlaps one or more walls
func CheckWallCollision(world *engine.World) bool {
	_, head, ok := world.Resources.Snake.Head()
	if !ok {
		return false
	}

	walls := world.Query().
		With(world.Components.Wall).
		With(world.Components.Transform).
		Execute()

	for _, e := range walls {
		tr, _ := world.Components.Transform.Get(e)
		if physics.Collide(head, constant.CellExtent, tr.Position, constant.CellExtent) {
			world.PushEvent(event.EventWallHit, &event.WallHitPayload{Position: head})
			return true
		}
	}
	return false
}
