package core

// Direction is the snake movement intent
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Step returns the one-cell world offset for the direction, Y grows upward
func (d Direction) Step() Vec2 {
	switch d {
	case DirUp:
		return Vec2{Y: CellUnit}
	case DirDown:
		return Vec2{Y: -CellUnit}
	case DirLeft:
		return Vec2{X: -CellUnit}
	default:
		return Vec2{X: CellUnit}
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}
