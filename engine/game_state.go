package engine

import (
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/core"
)

// GameState holds the mutable round state shared by systems
// Direction is written by InputSystem and read by the move tick; the state path mirrors the FSM
type GameState struct {
	mu sync.RWMutex

	direction core.Direction
	score     int
	highScore int
	rounds    int
	sessionID uuid.UUID

	// Active FSM path, Root first, leaf last
	statePath []string
}

// NewGameState creates the state for a fresh process, no round started yet
func NewGameState() *GameState {
	return &GameState{
		direction: constant.SnakeStartDirection,
		sessionID: uuid.New(),
	}
}

// Direction returns the current movement intent
func (gs *GameState) Direction() core.Direction {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.direction
}

// SetDirection replaces the movement intent
func (gs *GameState) SetDirection(d core.Direction) {
	gs.mu.Lock()
	gs.direction = d
	gs.mu.Unlock()
}

// Score returns food eaten in the current round
func (gs *GameState) Score() int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.score
}

// HighScore returns the best score of this process
func (gs *GameState) HighScore() int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.highScore
}

// AddScore increments the round score and tracks the high score
func (gs *GameState) AddScore(n int) int {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.score += n
	if gs.score > gs.highScore {
		gs.highScore = gs.score
	}
	return gs.score
}

// Rounds returns the number of rounds started
func (gs *GameState) Rounds() int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.rounds
}

// SessionID identifies the current round in logs and the HUD
func (gs *GameState) SessionID() uuid.UUID {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.sessionID
}

// ResetRound clears score and direction and assigns a new session id
func (gs *GameState) ResetRound() {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.direction = constant.SnakeStartDirection
	gs.score = 0
	gs.rounds++
	gs.sessionID = uuid.New()
}

// SetStatePath mirrors the active FSM path
func (gs *GameState) SetStatePath(path []string) {
	gs.mu.Lock()
	gs.statePath = append(gs.statePath[:0], path...)
	gs.mu.Unlock()
}

// StateName returns the active leaf state, empty before the FSM starts
func (gs *GameState) StateName() string {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	if len(gs.statePath) == 0 {
		return ""
	}
	return gs.statePath[len(gs.statePath)-1]
}

// InState reports whether name is the active leaf or one of its ancestors
func (gs *GameState) InState(name string) bool {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return slices.Contains(gs.statePath, name)
}
