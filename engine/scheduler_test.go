package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/vi-snake/engine/fsm"
	"github.com/lixenwraith/vi-snake/event"
)

const schedulerTestFSM = `
initial = "Menu"

[states.Menu]
transitions = [{ trigger = "EventGameStart", target = "Playing" }]

[states.InGame]
on_enter = [{ action = "Count" }]

[states.Playing]
parent = "InGame"
transitions = [
  { trigger = "EventPauseToggle", target = "Paused" },
  { trigger = "EventWallHit", target = "Over" },
]

[states.Paused]
parent = "InGame"
on_enter = [{ action = "PauseClock" }]
on_exit = [{ action = "ResumeClock" }]
transitions = [{ trigger = "EventPauseToggle", target = "Playing" }]

[states.Over]
on_enter = [{ action = "EmitEvent", event = "EventGameOver" }]
`

type recordingHandler struct {
	seen []event.EventType
}

func (h *recordingHandler) HandleEvent(_ *World, ev event.GameEvent) {
	h.seen = append(h.seen, ev.Type)
}

func (h *recordingHandler) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameOver, event.EventWallHit}
}

func newTestScheduler(t *testing.T) (*Scheduler, *World, *MockTimeProvider, *int) {
	t.Helper()
	w, mock := NewTestWorld()
	s := NewScheduler(w)
	entered := 0
	err := s.LoadFSM(schedulerTestFSM, func(m *fsm.Machine[*World]) {
		m.RegisterAction("Count", func(*World, any) { entered++ })
		m.RegisterAction("PauseClock", func(w *World, _ any) { w.Resources.Clock.Pause() })
		m.RegisterAction("ResumeClock", func(w *World, _ any) { w.Resources.Clock.Resume() })
		m.RegisterAction("EmitEvent", func(w *World, args any) {
			a := args.(*fsm.EmitEventArgs)
			w.PushEvent(a.Type, a.Payload)
		})
	})
	if err != nil {
		t.Fatalf("LoadFSM: %v", err)
	}
	return s, w, mock, &entered
}

func TestSchedulerStateFlow(t *testing.T) {
	s, w, mock, entered := newTestScheduler(t)
	handler := &recordingHandler{}
	s.RegisterEventHandler(handler)

	if s.StateName() != "Menu" || w.Resources.Game.StateName() != "Menu" {
		t.Fatalf("initial state = %q/%q", s.StateName(), w.Resources.Game.StateName())
	}

	w.PushEvent(event.EventGameStart, nil)
	s.Step()
	if !w.Resources.Game.InState("Playing") || *entered != 1 {
		t.Fatalf("after start: state=%q entered=%d", s.StateName(), *entered)
	}

	w.PushEvent(event.EventPauseToggle, nil)
	s.Step()
	if s.StateName() != "Paused" || !w.Resources.Clock.IsPaused() {
		t.Fatalf("pause toggle: state=%q paused=%v", s.StateName(), w.Resources.Clock.IsPaused())
	}

	frozen := w.Resources.Clock.Now()
	mock.Advance(time.Second)
	s.Step()
	if !w.Resources.Time.GameTime.Equal(frozen) {
		t.Error("game time advanced while Paused")
	}

	w.PushEvent(event.EventPauseToggle, nil)
	s.Step()
	if s.StateName() != "Playing" || w.Resources.Clock.IsPaused() {
		t.Fatalf("resume: state=%q", s.StateName())
	}
	if *entered != 1 {
		t.Errorf("InGame re-entered on pause toggle, entered=%d", *entered)
	}

	w.PushEvent(event.EventWallHit, nil)
	s.Step()
	if s.StateName() != "Over" {
		t.Fatalf("wall hit: state=%q", s.StateName())
	}

	// WallHit routed, then GameOver emitted by OnEnter(Over) in the same dispatch phase
	if len(handler.seen) != 2 || handler.seen[0] != event.EventWallHit || handler.seen[1] != event.EventGameOver {
		t.Errorf("handler saw %v", handler.seen)
	}

	if err := s.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if s.StateName() != "Menu" {
		t.Errorf("state after Reset = %q", s.StateName())
	}
}

func TestSchedulerFrameCounter(t *testing.T) {
	s, w, mock, _ := newTestScheduler(t)
	for i := 0; i < 5; i++ {
		mock.Advance(16 * time.Millisecond)
		s.Step()
	}
	if w.FrameNumber() != 5 || w.Resources.Time.FrameNumber != 5 {
		t.Errorf("frame = %d/%d, want 5", w.FrameNumber(), w.Resources.Time.FrameNumber)
	}
	if w.Resources.Time.DeltaTime != 16*time.Millisecond {
		t.Errorf("DeltaTime = %v", w.Resources.Time.DeltaTime)
	}
	if got := w.Resources.Status.Counter("engine.frames").Load(); got != 5 {
		t.Errorf("engine.frames = %d", got)
	}
}

func TestLoadFSMRejectsUnknownAction(t *testing.T) {
	w, _ := NewTestWorld()
	s := NewScheduler(w)
	err := s.LoadFSM(schedulerTestFSM, func(*fsm.Machine[*World]) {})
	if err == nil {
		t.Fatal("expected error for unregistered actions")
	}
}
