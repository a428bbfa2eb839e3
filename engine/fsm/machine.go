package fsm

import (
	"fmt"
	"time"

	"github.com/lixenwraith/vi-snake/event"
)

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:      make(map[StateID]*Node[T]),
		guardReg:   make(map[string]GuardFunc[T]),
		actionReg:  make(map[string]ActionFunc[T]),
		activePath: make([]StateID, 0, 4),
	}
}

// RegisterGuard adds a predicate function to the registry
func (m *Machine[T]) RegisterGuard(name string, fn GuardFunc[T]) {
	m.guardReg[name] = fn
}

// RegisterAction adds a side-effect function to the registry
func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T]) {
	m.actionReg[name] = fn
}

// Init enters the initial state, running OnEnter for the chain Root -> Initial
func (m *Machine[T]) Init(ctx T, initialID StateID) error {
	node, ok := m.nodes[initialID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", initialID)
	}

	m.activeStateID = initialID
	m.timeInState = 0
	m.activePath = append(m.activePath[:0], node.Path...)

	for _, id := range m.activePath {
		for _, action := range m.nodes[id].OnEnter {
			action.Func(ctx, action.Args)
		}
	}
	return nil
}

// Update advances the FSM by delta time, running OnUpdate and tick transitions
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	if m.activeStateID == StateNone {
		return
	}

	m.timeInState += dt

	leaf := m.nodes[m.activeStateID]
	for _, action := range leaf.OnUpdate {
		action.Func(ctx, action.Args)
	}

	m.fire(ctx, 0)
}

// HandleEvent routes an external event through the active path, leaf first
// Returns true if the event triggered a transition
func (m *Machine[T]) HandleEvent(ctx T, eventType event.EventType) bool {
	if m.activeStateID == StateNone || eventType == 0 {
		return false
	}
	return m.fire(ctx, eventType)
}

// fire evaluates transitions for trigger, bubbling up Leaf -> Parent -> Root
func (m *Machine[T]) fire(ctx T, trigger event.EventType) bool {
	currID := m.activeStateID
	for currID != StateNone {
		node := m.nodes[currID]
		for _, trans := range node.Transitions {
			if trans.Event != trigger {
				continue
			}
			if trans.Guard == nil || trans.Guard(ctx) {
				m.transition(ctx, trans.TargetID)
				return true
			}
		}
		currID = node.ParentID
	}
	return false
}

// transition performs the exit/enter sequence through the lowest common ancestor
func (m *Machine[T]) transition(ctx T, targetID StateID) {
	if m.activeStateID == targetID {
		return
	}

	targetNode, ok := m.nodes[targetID]
	if !ok {
		panic(fmt.Sprintf("FSM: Attempted transition to unknown state ID %d", targetID))
	}

	lcaIndex := -1
	currentPath := m.activePath
	targetPath := targetNode.Path
	for i := 0; i < len(currentPath) && i < len(targetPath); i++ {
		if currentPath[i] != targetPath[i] {
			break
		}
		lcaIndex = i
	}

	// Exit Phase: walk UP from current leaf to LCA (exclusive)
	for i := len(currentPath) - 1; i > lcaIndex; i-- {
		for _, action := range m.nodes[currentPath[i]].OnExit {
			action.Func(ctx, action.Args)
		}
	}

	// Enter Phase: walk DOWN from LCA (exclusive) to target leaf
	for i := lcaIndex + 1; i < len(targetPath); i++ {
		for _, action := range m.nodes[targetPath[i]].OnEnter {
			action.Func(ctx, action.Args)
		}
	}

	m.activeStateID = targetID
	m.timeInState = 0
	m.activePath = append(m.activePath[:0], targetPath...)
}

// Reset exits every active state and re-enters the initial state
func (m *Machine[T]) Reset(ctx T) error {
	for i := len(m.activePath) - 1; i >= 0; i-- {
		for _, action := range m.nodes[m.activePath[i]].OnExit {
			action.Func(ctx, action.Args)
		}
	}
	m.activeStateID = StateNone
	m.activePath = m.activePath[:0]
	return m.Init(ctx, m.InitialStateID)
}

// ActiveStateName returns the name of the current leaf state
func (m *Machine[T]) ActiveStateName() string {
	if node, ok := m.nodes[m.activeStateID]; ok {
		return node.Name
	}
	return ""
}

// ActivePathNames returns the names of all active states, Root first
func (m *Machine[T]) ActivePathNames() []string {
	names := make([]string, 0, len(m.activePath))
	for _, id := range m.activePath {
		names = append(names, m.nodes[id].Name)
	}
	return names
}

// TimeInState returns time spent in the current leaf state
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}
