package constant

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = EventQueueSize - 1
)

// Window
const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "贪吃蛇"
)
