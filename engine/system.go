package engine

import "time"

// System is a unit of per-frame game logic ordered by Priority, lower runs first
type System interface {
	Priority() int
	Update()
}

// SystemOption configures when a registered system runs
type SystemOption func(*systemEntry)

// InStates gates the system to frames where any of the named FSM states is active
func InStates(names ...string) SystemOption {
	return func(se *systemEntry) {
		se.states = append(se.states, names...)
	}
}

// Every gates the system to run once per interval of game time
// The first run happens one full interval after the gate first opens
func Every(interval time.Duration) SystemOption {
	return func(se *systemEntry) {
		se.interval = interval
	}
}

// systemEntry wraps a system with its run conditions and timer state
type systemEntry struct {
	system   System
	states   []string
	interval time.Duration

	timerStarted bool
	lastRun      time.Time
}

// ready evaluates the state and timer gates for the current frame
func (se *systemEntry) ready(game *GameState, now time.Time) bool {
	if len(se.states) > 0 {
		open := false
		for _, s := range se.states {
			if game.InState(s) {
				open = true
				break
			}
		}
		if !open {
			return false
		}
	}

	if se.interval <= 0 {
		return true
	}

	if !se.timerStarted {
		se.timerStarted = true
		se.lastRun = now
		return false
	}

	if now.Sub(se.lastRun) < se.interval {
		return false
	}

	se.lastRun = se.lastRun.Add(se.interval)
	// Snap after a long stall instead of firing a burst
	if now.Sub(se.lastRun) >= se.interval {
		se.lastRun = now
	}
	return true
}
