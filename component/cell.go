package component

import "github.com/lixenwraith/vi-snake/core"

// CellComponent records the grid cell an entity occupies
// Food placement treats every entity with this component as occupying its cell
type CellComponent struct {
	Cell core.Cell
}
