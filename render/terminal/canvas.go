package terminal

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/core"
)

// Canvas draws frames on a tcell screen
// Each world cell is TerminalCellCols columns by one row; world Y grows upward so rows are flipped
type Canvas struct {
	screen tcell.Screen
	bg     tcell.Color
}

// NewCanvas wraps a screen that has already been initialized
func NewCanvas(screen tcell.Screen) *Canvas {
	return &Canvas{screen: screen, bg: toColor(constant.ClearColor)}
}

// CellToScreen converts a world cell to its top-left screen column and row
func CellToScreen(c core.Cell) (int, int) {
	i, j := c.Index()
	return i * constant.TerminalCellCols, constant.FieldHeight - 1 - j
}

// Size returns the minimum terminal size needed for the field and HUD
func Size() (int, int) {
	return constant.FieldWidth * constant.TerminalCellCols, constant.FieldHeight + constant.TerminalHUDRows
}

func (c *Canvas) Clear(bg color.RGBA) {
	c.bg = toColor(bg)
	c.screen.Fill(' ', tcell.StyleDefault.Background(c.bg))
}

func (c *Canvas) FillCell(cell core.Cell, fg color.RGBA, glyph rune) {
	col, row := CellToScreen(cell)
	if row < 0 {
		return
	}

	if glyph == 0 {
		style := tcell.StyleDefault.Background(toColor(fg))
		for dx := 0; dx < constant.TerminalCellCols; dx++ {
			c.screen.SetContent(col+dx, row, ' ', nil, style)
		}
		return
	}

	style := tcell.StyleDefault.Foreground(toColor(fg)).Background(c.bg)
	c.screen.SetContent(col, row, glyph, nil, style)
	for dx := 1; dx < constant.TerminalCellCols; dx++ {
		c.screen.SetContent(col+dx, row, ' ', nil, style)
	}
}

func (c *Canvas) Text(line int, s string, fg color.RGBA) {
	row := constant.FieldHeight + line
	style := tcell.StyleDefault.Foreground(toColor(fg)).Background(c.bg)
	col := 0
	for _, r := range s {
		c.screen.SetContent(col, row, r, nil, style)
		col++
	}
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
