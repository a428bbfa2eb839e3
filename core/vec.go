package core

import "math"

// Vec2 is a world-space position or size in world units, Y grows upward
type Vec2 struct {
	X, Y float64
}

// Splat returns a vector with both components set to v
func Splat(v float64) Vec2 {
	return Vec2{X: v, Y: v}
}

// Add returns v+o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v-o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v*s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Cell snaps the position to the nearest cell-aligned coordinate
func (v Vec2) Cell() Cell {
	return Cell{
		X: int(math.Round(v.X/CellUnit)) * CellUnit,
		Y: int(math.Round(v.Y/CellUnit)) * CellUnit,
	}
}
