package input

import "sync"

// Keyboard collects edge-triggered presses for the current frame
// Front ends call Press as key events arrive; the scheduler calls EndFrame after systems ran
type Keyboard struct {
	mu      sync.Mutex
	pressed [keyCount]bool
	pending [keyCount]bool
}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Press records a key-down edge, visible to systems on the next BeginFrame
func (k *Keyboard) Press(key Key) {
	if key == KeyNone || key >= keyCount {
		return
	}
	k.mu.Lock()
	k.pending[key] = true
	k.mu.Unlock()
}

// BeginFrame publishes presses received since the previous frame
func (k *Keyboard) BeginFrame() {
	k.mu.Lock()
	k.pressed = k.pending
	k.pending = [keyCount]bool{}
	k.mu.Unlock()
}

// JustPressed reports whether key went down since the previous frame
func (k *Keyboard) JustPressed(key Key) bool {
	if key >= keyCount {
		return false
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.pressed[key]
}

// EndFrame discards the presses consumed by this frame
func (k *Keyboard) EndFrame() {
	k.mu.Lock()
	k.pressed = [keyCount]bool{}
	k.mu.Unlock()
}
