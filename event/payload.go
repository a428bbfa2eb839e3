package event

import "github.com/lixenwraith/vi-snake/core"

// WallHitPayload carries the head position that overlapped a wall
type WallHitPayload struct {
	Position core.Vec2 `toml:"position"`
}

// FoodEatenPayload carries the world position of the eaten food
type FoodEatenPayload struct {
	Position core.Vec2 `toml:"position"`
}

// FoodSpawnedPayload carries the cell of the new food
type FoodSpawnedPayload struct {
	Cell core.Cell `toml:"cell"`
}

// SoundRequestPayload contains the sound type to play
type SoundRequestPayload struct {
	Sound core.SoundType `toml:"sound"`
}
