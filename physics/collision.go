package physics

import (
	"github.com/lixenwraith/vi-snake/core"
)

// Collide reports whether two axis-aligned boxes overlap
// Centers are box centers, sizes are full extents. Boxes that only share an edge do not collide
func Collide(aCenter, aSize, bCenter, bSize core.Vec2) bool {
	aMin := aCenter.Sub(aSize.Scale(0.5))
	aMax := aCenter.Add(aSize.Scale(0.5))
	bMin := bCenter.Sub(bSize.Scale(0.5))
	bMax := bCenter.Add(bSize.Scale(0.5))

	return aMin.X < bMax.X && aMax.X > bMin.X &&
		aMin.Y < bMax.Y && aMax.Y > bMin.Y
}
