package core

// CellUnit is the edge length of one grid cell in world units
const CellUnit = 50

// Cell is a cell-aligned grid coordinate in world units (both values are multiples of CellUnit)
type Cell struct {
	X, Y int
}

// CellOf returns the cell at grid index (i, j)
func CellOf(i, j int) Cell {
	return Cell{X: i * CellUnit, Y: j * CellUnit}
}

// Index returns the grid index (i, j) of the cell
func (c Cell) Index() (int, int) {
	return c.X / CellUnit, c.Y / CellUnit
}

// Vec returns the world-space center of the cell
func (c Cell) Vec() Vec2 {
	return Vec2{X: float64(c.X), Y: float64(c.Y)}
}

// Aligned reports whether both coordinates sit on the grid
func (c Cell) Aligned() bool {
	return c.X%CellUnit == 0 && c.Y%CellUnit == 0
}
