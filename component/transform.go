package component

import "github.com/lixenwraith/vi-snake/core"

// TransformComponent is the rendered world-space center of an entity
type TransformComponent struct {
	Position core.Vec2
}
