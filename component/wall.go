package component

// WallComponent marks an entity as a border wall cell
type WallComponent struct{}
