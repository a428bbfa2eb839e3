package constant

import (
	"time"

	"github.com/lixenwraith/vi-snake/core"
)

// Play-field
const (
	// FieldWidth is the number of cells per row including the wall border
	FieldWidth = 15

	// FieldHeight is the number of cells per column including the wall border
	FieldHeight = 10

	// CellSize is the edge of a cell in world units
	CellSize = core.CellUnit
)

// Snake
const (
	// SnakeMoveInterval is the real-time cadence of the movement tick
	SnakeMoveInterval = 500 * time.Millisecond

	// SnakeStartDirection is the direction a fresh snake moves in
	SnakeStartDirection = core.DirRight
)

var (
	// SnakeStart is the world position of the initial head segment
	SnakeStart = core.Splat(250)

	// CellExtent is the size of every collision box
	CellExtent = core.Splat(CellSize)

	// Field is the play-field in cells
	Field = core.Area{Width: FieldWidth, Height: FieldHeight}
)
