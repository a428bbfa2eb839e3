package render

import (
	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/core"
)

// WorldToScreen maps a cell-centered world position to the top-left pixel of its square
// The camera point (CameraX, CameraY) is drawn at the center of a width x height surface; world Y grows upward
func WorldToScreen(p core.Vec2, width, height int) (float32, float32) {
	half := float64(constant.CellSize) / 2
	x := float64(width)/2 + (p.X - constant.CameraX) - half
	y := float64(height)/2 - (p.Y - constant.CameraY) - half
	return float32(x), float32(y)
}

// FieldBottom returns the first pixel row below the field on a width x height surface
func FieldBottom(width, height int) float32 {
	_, y := WorldToScreen(core.CellOf(0, 0).Vec(), width, height)
	return y + float32(constant.CellSize)
}
