package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/event"
)

type countingSystem struct {
	priority int
	runs     int
	order    *[]int
}

func (s *countingSystem) Priority() int { return s.priority }

func (s *countingSystem) Update() {
	s.runs++
	if s.order != nil {
		*s.order = append(*s.order, s.priority)
	}
}

func TestStoreOperations(t *testing.T) {
	s := NewStore[component.CellComponent]()
	s.Set(1, component.CellComponent{Cell: core.CellOf(1, 1)})
	s.Set(2, component.CellComponent{Cell: core.CellOf(2, 1)})
	s.Set(3, component.CellComponent{Cell: core.CellOf(3, 1)})
	s.Set(2, component.CellComponent{Cell: core.CellOf(4, 4)})

	if s.Count() != 3 {
		t.Fatalf("Count = %d, want 3", s.Count())
	}
	if c, _ := s.Get(2); c.Cell != core.CellOf(4, 4) {
		t.Errorf("Set did not overwrite, got %+v", c.Cell)
	}

	s.Remove(1)
	s.Remove(99)
	all := s.All()
	if len(all) != 2 || all[0] != 2 || all[1] != 3 {
		t.Errorf("All after Remove = %v, want [2 3]", all)
	}
	if s.Has(1) {
		t.Error("Removed entity still present")
	}

	s.Clear()
	if s.Count() != 0 {
		t.Errorf("Count after Clear = %d", s.Count())
	}
}

func TestDestroyEntityRemovesAllComponents(t *testing.T) {
	w, _ := NewTestWorld()

	e := w.CreateEntity()
	w.Components.Cell.Set(e, component.CellComponent{})
	w.Components.Transform.Set(e, component.TransformComponent{})
	w.Components.Food.Set(e, component.FoodComponent{})

	other := w.CreateEntity()
	w.Components.Wall.Set(other, component.WallComponent{})

	if w.EntityCount() != 2 {
		t.Fatalf("EntityCount = %d, want 2", w.EntityCount())
	}

	w.DestroyEntity(e)

	if w.Components.Cell.Has(e) || w.Components.Transform.Has(e) || w.Components.Food.Has(e) {
		t.Error("DestroyEntity left components behind")
	}
	if w.EntityCount() != 1 {
		t.Errorf("EntityCount = %d, want 1", w.EntityCount())
	}
}

func TestCreateEntityUnique(t *testing.T) {
	w, _ := NewTestWorld()
	seen := make(map[core.Entity]bool)
	for i := 0; i < 100; i++ {
		e := w.CreateEntity()
		if e == 0 || seen[e] {
			t.Fatalf("Duplicate or zero entity %d", e)
		}
		seen[e] = true
	}

	w.Clear()
	if e := w.CreateEntity(); e != 1 {
		t.Errorf("Entity after Clear = %d, want 1", e)
	}
}

func TestSystemsRunInPriorityOrder(t *testing.T) {
	w, _ := NewTestWorld()
	var order []int
	w.AddSystem(&countingSystem{priority: 30, order: &order})
	w.AddSystem(&countingSystem{priority: 10, order: &order})
	w.AddSystem(&countingSystem{priority: 20, order: &order})

	w.Update()

	want := []int{10, 20, 30}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order = %v, want %v", order, want)
			break
		}
	}
}

func TestInStatesGate(t *testing.T) {
	w, _ := NewTestWorld()
	sys := &countingSystem{priority: 1}
	w.AddSystem(sys, InStates("Playing"))

	w.Update()
	if sys.runs != 0 {
		t.Fatalf("system ran with no active state")
	}

	w.Resources.Game.SetStatePath([]string{"Root", "InGame", "Playing"})
	w.Update()
	if sys.runs != 1 {
		t.Fatalf("runs = %d, want 1 in Playing", sys.runs)
	}

	w.Resources.Game.SetStatePath([]string{"Root", "InGame", "Paused"})
	w.Update()
	if sys.runs != 1 {
		t.Errorf("system ran while Paused")
	}
}

func TestEveryGate(t *testing.T) {
	w, mock := NewTestWorld()
	sys := &countingSystem{priority: 1}
	w.AddSystem(sys, Every(500*time.Millisecond))

	tick := func(d time.Duration) {
		mock.Advance(d)
		w.Resources.Time.GameTime = w.Resources.Clock.Now()
		w.Update()
	}

	tick(0)
	if sys.runs != 0 {
		t.Fatal("interval system ran on first frame")
	}
	tick(499 * time.Millisecond)
	if sys.runs != 0 {
		t.Fatal("interval system ran before interval elapsed")
	}
	tick(time.Millisecond)
	if sys.runs != 1 {
		t.Fatalf("runs = %d after one interval, want 1", sys.runs)
	}

	// Long stall fires once and snaps
	tick(3 * time.Second)
	if sys.runs != 2 {
		t.Fatalf("runs = %d after stall, want 2", sys.runs)
	}
	tick(100 * time.Millisecond)
	if sys.runs != 2 {
		t.Errorf("stall produced a burst, runs = %d", sys.runs)
	}

	w.ResetTimers()
	tick(0)
	tick(500 * time.Millisecond)
	if sys.runs != 3 {
		t.Errorf("runs = %d after ResetTimers and one interval, want 3", sys.runs)
	}
}

func TestPushEventStampsFrame(t *testing.T) {
	w, _ := NewTestWorld()
	w.frame.Store(42)
	w.PushEvent(event.EventGameStart, nil)

	events := w.Resources.Event.Queue.Consume()
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Frame != 42 || events[0].Type != event.EventGameStart {
		t.Errorf("event = %+v", events[0])
	}
}
