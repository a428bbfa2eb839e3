package engine

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/event"
)

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	// Global resources
	Resources *Resource

	// Typed component stores
	Components ComponentStore
	stores     []AnyStore

	frame atomic.Int64

	systems     []*systemEntry
	updateMutex sync.Mutex
}

// NewWorld creates a world on the monotonic system clock
func NewWorld() *World {
	return NewWorldWithClock(NewPausableClock())
}

// NewWorldWithClock creates a world whose game time comes from clock
func NewWorldWithClock(clock *PausableClock) *World {
	w := &World{
		nextEntityID: 1,
		systems:      make([]*systemEntry, 0),
	}
	initComponentStores(w)
	w.Resources = newResource(clock)
	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	for _, s := range w.stores {
		s.Remove(e)
	}
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextEntityID = 1
	for _, s := range w.stores {
		s.Clear()
	}
}

// EntityCount returns the number of entities holding at least one component
func (w *World) EntityCount() int {
	seen := make(map[core.Entity]struct{})
	for _, s := range w.stores {
		if qs, ok := s.(QueryableStore); ok {
			for _, e := range qs.All() {
				seen[e] = struct{}{}
			}
		}
	}
	return len(seen)
}

// AddSystem adds a system with its run conditions, keeping systems sorted by priority
func (w *World) AddSystem(system System, opts ...SystemOption) {
	w.mu.Lock()
	defer w.mu.Unlock()

	entry := &systemEntry{system: system}
	for _, opt := range opts {
		opt(entry)
	}
	w.systems = append(w.systems, entry)

	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].system.Priority() < w.systems[j].system.Priority()
	})
}

// Systems returns a copy of all registered systems in run order
// Used by Scheduler for event handler auto-registration
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	for i, se := range w.systems {
		result[i] = se.system
	}
	return result
}

// ResetTimers restarts every interval gate so the next run is a full interval away
func (w *World) ResetTimers() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, se := range w.systems {
		se.timerStarted = false
	}
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Update runs all systems whose gates are open
func (w *World) Update() {
	w.RunSafe(func() {
		w.UpdateLocked()
	})
}

// UpdateLocked runs gated systems assuming the caller already holds the update lock
func (w *World) UpdateLocked() {
	w.mu.RLock()
	systems := make([]*systemEntry, len(w.systems))
	copy(systems, w.systems)
	w.mu.RUnlock()

	now := w.Resources.Time.GameTime
	for _, se := range systems {
		if se.ready(w.Resources.Game, now) {
			se.system.Update()
		}
	}
}

// FrameNumber returns the current frame index
func (w *World) FrameNumber() int64 {
	return w.frame.Load()
}

// PushEvent emits a game event stamped with the current frame
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.Resources.Event.Queue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.frame.Load(),
	})
}
