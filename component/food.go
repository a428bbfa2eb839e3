package component

// FoodComponent marks the food entity
type FoodComponent struct{}
