package component

import (
	"image/color"

	"github.com/lixenwraith/vi-snake/core"
)

// SpriteComponent holds visual properties for a drawable entity
type SpriteComponent struct {
	Color color.RGBA
	Size  core.Vec2
	Glyph rune // Terminal character, 0 draws a filled block
}
