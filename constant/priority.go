package constant

// System Execution Priorities (lower runs first)
// Input first so direction is visible to the move tick, collisions after the head is final
const (
	PriorityInput = 5
	PrioritySnake = 10
	PriorityWall  = 20
	PriorityFood  = 30
	PriorityAudio = 800
)
