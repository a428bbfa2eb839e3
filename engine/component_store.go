package engine

import (
	"github.com/lixenwraith/vi-snake/component"
)

// ComponentStore provides cached pointer to typed component store
// Initialized once per world; pointers remain valid for application lifetime
type ComponentStore struct {
	// Placement
	Cell      *Store[component.CellComponent]
	Transform *Store[component.TransformComponent]
	Sprite    *Store[component.SpriteComponent]

	// Gameplay
	Wall    *Store[component.WallComponent]
	Food    *Store[component.FoodComponent]
	Segment *Store[component.SegmentComponent]
}

// initComponentStores creates every store and registers it for lifecycle management
func initComponentStores(w *World) {
	w.Components = ComponentStore{
		Cell:      registerStore[component.CellComponent](w),
		Transform: registerStore[component.TransformComponent](w),
		Sprite:    registerStore[component.SpriteComponent](w),

		Wall:    registerStore[component.WallComponent](w),
		Food:    registerStore[component.FoodComponent](w),
		Segment: registerStore[component.SegmentComponent](w),
	}
}

func registerStore[T any](w *World) *Store[T] {
	s := NewStore[T]()
	w.stores = append(w.stores, s)
	return s
}
