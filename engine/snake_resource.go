package engine

import "github.com/lixenwraith/vi-snake/core"

// SnakeResource tracks the ordered snake body, index 0 is the head
// Segments[i] is the entity rendered at Body[i]; both slices always have equal length
type SnakeResource struct {
	Segments []core.Entity
	Body     []core.Vec2
}

// Len returns the number of segments
func (s *SnakeResource) Len() int {
	return len(s.Segments)
}

// Head returns the head entity and position, false if no snake exists
func (s *SnakeResource) Head() (core.Entity, core.Vec2, bool) {
	if len(s.Segments) == 0 {
		return 0, core.Vec2{}, false
	}
	return s.Segments[0], s.Body[0], true
}

// PushFront inserts a new head
func (s *SnakeResource) PushFront(e core.Entity, pos core.Vec2) {
	s.Segments = append(s.Segments, 0)
	copy(s.Segments[1:], s.Segments)
	s.Segments[0] = e

	s.Body = append(s.Body, core.Vec2{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = pos
}

// RotateTail moves the tail segment to the front at pos and returns its entity
func (s *SnakeResource) RotateTail(pos core.Vec2) (core.Entity, bool) {
	n := len(s.Segments)
	if n == 0 {
		return 0, false
	}
	tail := s.Segments[n-1]
	copy(s.Segments[1:], s.Segments[:n-1])
	s.Segments[0] = tail

	copy(s.Body[1:], s.Body[:n-1])
	s.Body[0] = pos
	return tail, true
}

// Reset forgets all segments
func (s *SnakeResource) Reset() {
	s.Segments = s.Segments[:0]
	s.Body = s.Body[:0]
}
