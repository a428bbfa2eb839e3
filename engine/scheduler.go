package engine

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-snake/engine/fsm"
	"github.com/lixenwraith/vi-snake/event"
)

// maxDispatchPasses bounds event cascades within one dispatch phase
const maxDispatchPasses = 8

// Scheduler drives one frame at a time: events, FSM, gated systems, events again
// Front ends call Step from their own loop (ebiten Update) or use Run with a ticker
type Scheduler struct {
	world *World

	// Event routing
	router *event.Router[*World]

	// Finite State Machine
	fsm *fsm.Machine[*World]

	lastGameTime time.Time

	// Cached metric pointers
	statFrames *atomic.Int64
	statEvents *atomic.Int64
}

// NewScheduler creates a scheduler bound to world
func NewScheduler(world *World) *Scheduler {
	reg := world.Resources.Status
	return &Scheduler{
		world:        world,
		router:       event.NewRouter[*World](),
		fsm:          fsm.NewMachine[*World](),
		lastGameTime: world.Resources.Clock.Now(),
		statFrames:   reg.Counter("engine.frames"),
		statEvents:   reg.Counter("engine.events"),
	}
}

// RegisterEventHandler adds an event handler to the router, must be called before the first Step
func (s *Scheduler) RegisterEventHandler(handler event.Handler[*World]) {
	s.router.Register(handler)
}

// RegisterSystemHandlers registers every world system that also implements event.Handler
func (s *Scheduler) RegisterSystemHandlers() {
	for _, sys := range s.world.Systems() {
		if h, ok := sys.(event.Handler[*World]); ok {
			s.router.Register(h)
		}
	}
}

// LoadFSM initializes HFSM with provided config and registry bridge, must be called before the first Step
func (s *Scheduler) LoadFSM(config string, registerComponents func(*fsm.Machine[*World])) error {
	registerComponents(s.fsm)

	if err := s.fsm.LoadConfig([]byte(config)); err != nil {
		return fmt.Errorf("failed to load FSM config: %w", err)
	}

	var err error
	s.world.RunSafe(func() {
		if err = s.fsm.Init(s.world, s.fsm.InitialStateID); err == nil {
			s.syncState()
		}
	})
	if err != nil {
		return fmt.Errorf("failed to init FSM: %w", err)
	}
	return nil
}

// Reset returns the FSM to its initial state
func (s *Scheduler) Reset() error {
	var err error
	s.world.RunSafe(func() {
		err = s.fsm.Reset(s.world)
		s.syncState()
	})
	return err
}

// StateName returns the active leaf state name
func (s *Scheduler) StateName() string {
	return s.fsm.ActiveStateName()
}

// Step advances the game by exactly one frame
func (s *Scheduler) Step() {
	s.world.RunSafe(func() {
		res := s.world.Resources

		frame := s.world.frame.Add(1)
		now := res.Clock.Now()
		dt := now.Sub(s.lastGameTime)
		s.lastGameTime = now
		res.Time.Update(now, res.Clock.RealTime(), dt, frame)
		res.Input.BeginFrame()

		s.dispatch()

		s.fsm.Update(s.world, dt)
		s.syncState()

		s.world.UpdateLocked()

		s.dispatch()

		res.Input.EndFrame()
		s.statFrames.Store(frame)
	})
}

// Run steps the game every interval until ctx is done, calling afterFrame after each Step
func (s *Scheduler) Run(ctx context.Context, interval time.Duration, afterFrame func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Step()
			if afterFrame != nil {
				afterFrame()
			}
		}
	}
}

// dispatch drains the queue, feeding each event to the FSM and then to handlers
// Events emitted while dispatching are processed in the same phase up to maxDispatchPasses
func (s *Scheduler) dispatch() {
	queue := s.world.Resources.Event.Queue
	for pass := 0; pass < maxDispatchPasses; pass++ {
		events := queue.Consume()
		if len(events) == 0 {
			return
		}
		for _, ev := range events {
			s.statEvents.Add(1)
			if s.fsm.HandleEvent(s.world, ev.Type) {
				s.syncState()
			}
			s.router.Dispatch(s.world, ev)
		}
	}
	if queue.Len() > 0 {
		log.Printf("scheduler: event cascade exceeded %d passes, %d events deferred", maxDispatchPasses, queue.Len())
	}
}

func (s *Scheduler) syncState() {
	s.world.Resources.Game.SetStatePath(s.fsm.ActivePathNames())
}
