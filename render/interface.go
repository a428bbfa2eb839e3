package render

import (
	"image/color"

	"github.com/lixenwraith/vi-snake/core"
)

// Canvas is the drawing surface a front end provides for one frame
type Canvas interface {
	// Clear fills the whole surface
	Clear(bg color.RGBA)

	// FillCell paints one world cell; glyph 0 paints a solid block
	FillCell(c core.Cell, fg color.RGBA, glyph rune)

	// Text writes a HUD line, line 0 is the first status line
	Text(line int, s string, fg color.RGBA)
}

// SystemRenderer draws one layer of the frame
type SystemRenderer interface {
	Render(ctx RenderContext, canvas Canvas)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
