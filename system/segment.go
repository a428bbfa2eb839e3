package system

import (
	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
)

// placeEntity attaches the placement components shared by walls, food and segments
func placeEntity(world *engine.World, e core.Entity, pos core.Vec2, sprite component.SpriteComponent) {
	world.Components.Cell.Set(e, component.CellComponent{Cell: pos.Cell()})
	world.Components.Transform.Set(e, component.TransformComponent{Position: pos})
	world.Components.Sprite.Set(e, sprite)
}

// moveEntity rewrites position and cell of an already placed entity
func moveEntity(world *engine.World, e core.Entity, pos core.Vec2) {
	world.Components.Cell.Set(e, component.CellComponent{Cell: pos.Cell()})
	world.Components.Transform.Set(e, component.TransformComponent{Position: pos})
}

// setRole switches the head role and the matching sprite color
func setRole(world *engine.World, e core.Entity, role component.SegmentRole) {
	world.Components.Segment.Set(e, component.SegmentComponent{Role: role})
	if sp, ok := world.Components.Sprite.Get(e); ok {
		sp.Color = constant.SnakeColor
		if role == component.RoleHead {
			sp.Color = constant.HeadColor
		}
		world.Components.Sprite.Set(e, sp)
	}
}

// newSegment creates a snake segment entity at pos
func newSegment(world *engine.World, pos core.Vec2, role component.SegmentRole) core.Entity {
	e := world.CreateEntity()
	placeEntity(world, e, pos, component.SpriteComponent{
		Color: constant.SnakeColor,
		Size:  constant.CellExtent,
	})
	setRole(world, e, role)
	return e
}
