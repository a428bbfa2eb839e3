package constant

import "image/color"

// Sprite colors
var (
	ClearColor = color.RGBA{R: 51, G: 51, B: 51, A: 255}
	WallColor  = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	FoodColor  = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	SnakeColor = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	HeadColor  = color.RGBA{R: 80, G: 120, B: 255, A: 255}
	TextColor  = color.RGBA{R: 230, G: 230, B: 230, A: 255}
)

// Camera
var (
	// CameraX and CameraY are the world point drawn at the window center
	CameraX = 250.0
	CameraY = 250.0
)

// Terminal layout
const (
	// TerminalCellCols is the number of terminal columns per world cell
	TerminalCellCols = 2

	// TerminalHUDRows is the number of status rows below the field, the last two are debug only
	TerminalHUDRows = 4
)
