package input

// Key is a front-end independent game key
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEnter
	KeyMenu
	KeyQuit
	keyCount
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeySpace:
		return "Space"
	case KeyEnter:
		return "Enter"
	case KeyMenu:
		return "Menu"
	case KeyQuit:
		return "Quit"
	default:
		return "None"
	}
}
