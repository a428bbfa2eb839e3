package event

// EventType represents the type of game event
// 0 is reserved for the FSM tick trigger
type EventType int

const (
	// === Flow Event ===

	// EventGameStart leaves the menu and starts a round
	// Trigger: InputSystem (Enter/Space in Menu), autostart
	// Consumer: FSM | Payload: nil
	EventGameStart EventType = iota + 1

	// EventPauseToggle flips between Playing and Paused
	// Trigger: InputSystem (Space in InGame)
	// Consumer: FSM | Payload: nil
	EventPauseToggle

	// EventGameRestart starts a fresh round after game over
	// Trigger: InputSystem (Enter in Over)
	// Consumer: FSM | Payload: nil
	EventGameRestart

	// EventGameMenu returns to the menu from any state
	// Trigger: InputSystem (m)
	// Consumer: FSM | Payload: nil
	EventGameMenu

	// EventGameOver announces the end of a round
	// Trigger: FSM OnEnter(Over)
	// Consumer: SnakeSystem, AudioSystem | Payload: nil
	EventGameOver

	// === Gameplay Event ===

	// EventWallHit signals the snake head overlaps a wall cell
	// Trigger: WallSystem, at most once per frame
	// Consumer: FSM | Payload: *WallHitPayload
	EventWallHit

	// EventFoodEaten signals the head overlapped the food, which is already destroyed
	// Trigger: FoodSystem, at most once per frame
	// Consumer: SnakeSystem, AudioSystem | Payload: *FoodEatenPayload
	EventFoodEaten

	// EventFoodSpawned signals a new food entity was placed
	// Trigger: FoodSystem
	// Consumer: diagnostics | Payload: *FoodSpawnedPayload
	EventFoodSpawned

	// === Audio Event ===

	// EventSoundRequest requests audio playback
	// Trigger: FSM actions, systems requiring audio feedback
	// Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest
)

func (e EventType) String() string {
	return GetEventName(e)
}

// GameEvent represents a single game event with associated metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
