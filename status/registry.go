// Package status holds named counters written by systems and shown by the debug HUD
package status

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
)

// Registry maps counter names to atomics
// Lookup takes the mutex, so systems resolve their counters once at construction
type Registry struct {
	mu       sync.RWMutex
	counters map[string]*atomic.Int64
}

func NewRegistry() *Registry {
	return &Registry{counters: make(map[string]*atomic.Int64)}
}

// Counter returns the counter for name, creating it on first use
func (r *Registry) Counter(name string) *atomic.Int64 {
	r.mu.RLock()
	c, ok := r.counters[name]
	r.mu.RUnlock()
	if ok {
		return c
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok = r.counters[name]; !ok {
		c = new(atomic.Int64)
		r.counters[name] = c
	}
	return c
}

// Names returns the registered counter names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.counters))
}

// Snapshot copies the current value of every counter
func (r *Registry) Snapshot() map[string]int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]int64, len(r.counters))
	for name, c := range r.counters {
		out[name] = c.Load()
	}
	return out
}

// String formats the counters as sorted name=value pairs
func (r *Registry) String() string {
	snap := r.Snapshot()
	var b strings.Builder
	for i, name := range slices.Sorted(maps.Keys(snap)) {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%d", name, snap[name])
	}
	return b.String()
}
