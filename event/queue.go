package event

import (
	"sync"

	"github.com/lixenwraith/vi-snake/constant"
)

// EventQueue is a bounded FIFO ring of game events
// Producers may be any goroutine, the game loop is the only consumer
// When full, the oldest pending event is overwritten
type EventQueue struct {
	mu     sync.Mutex
	events [constant.EventQueueSize]GameEvent
	head   uint64 // next slot to read
	tail   uint64 // next slot to write
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, dropping the oldest one on overflow
func (eq *EventQueue) Push(ev GameEvent) {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	eq.events[eq.tail&constant.EventBufferMask] = ev
	eq.tail++
	if eq.tail-eq.head > constant.EventQueueSize {
		eq.head = eq.tail - constant.EventQueueSize
	}
}

// Consume removes and returns all pending events in FIFO order, nil when empty
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	n := eq.tail - eq.head
	if n == 0 {
		return nil
	}

	out := make([]GameEvent, n)
	for i := range out {
		slot := &eq.events[(eq.head+uint64(i))&constant.EventBufferMask]
		out[i] = *slot
		*slot = GameEvent{}
	}
	eq.head = eq.tail
	return out
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return int(eq.tail - eq.head)
}
