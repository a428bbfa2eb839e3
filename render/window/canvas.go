package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/render"
)

// hudLineHeight matches the debug font glyph height plus spacing
const hudLineHeight = 16

// Canvas draws frames on an ebiten image
type Canvas struct {
	target *ebiten.Image
}

func (c *Canvas) size() (int, int) {
	b := c.target.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) Clear(bg color.RGBA) {
	c.target.Fill(bg)
}

func (c *Canvas) FillCell(cell core.Cell, fg color.RGBA, glyph rune) {
	w, h := c.size()
	x, y := render.WorldToScreen(cell.Vec(), w, h)
	size := float32(constant.CellSize)

	if glyph != 0 {
		// Round items are drawn as a circle inscribed in the cell
		vector.DrawFilledCircle(c.target, x+size/2, y+size/2, size/2, fg, true)
		return
	}
	vector.DrawFilledRect(c.target, x, y, size, size, fg, false)
}

func (c *Canvas) Text(line int, s string, _ color.RGBA) {
	w, h := c.size()
	top := int(render.FieldBottom(w, h)) + hudLineHeight/2
	x, _ := render.WorldToScreen(core.Vec2{}, w, h)
	ebitenutil.DebugPrintAt(c.target, s, int(x), top+line*hudLineHeight)
}
