package component

// SegmentRole discriminates the snake head from the rest of the body
type SegmentRole uint8

const (
	RoleBody SegmentRole = iota
	RoleHead
)

func (r SegmentRole) String() string {
	if r == RoleHead {
		return "Head"
	}
	return "Body"
}

// SegmentComponent marks one rendered snake body segment
// Exactly one live segment carries RoleHead
type SegmentComponent struct {
	Role SegmentRole
}

// IsHead reports whether the segment currently leads the snake
func (s SegmentComponent) IsHead() bool {
	return s.Role == RoleHead
}
