package core

// Area represents a rectangular block of cells in grid indices
type Area struct {
	Width, Height int // Dimensions in cells (minimum 1x1)
}

// Capacity returns the number of cells in the area
func (a Area) Capacity() int {
	return a.Width * a.Height
}

// Contains reports whether the cell lies inside the area
func (a Area) Contains(c Cell) bool {
	i, j := c.Index()
	return c.X >= 0 && c.Y >= 0 && i < a.Width && j < a.Height
}

// OnBorder reports whether grid index (i, j) lies on the area perimeter
func (a Area) OnBorder(i, j int) bool {
	return i == 0 || j == 0 || i == a.Width-1 || j == a.Height-1
}
