package plan

// Cursor tracks how far a meal's placements have been pushed forward by
// collisions. The zero value is a cursor with no shift.
type Cursor struct {
	Offset int
}

// Index shifts a region index by the accumulated offset.
func (c Cursor) Index(base int) int {
	return base + c.Offset
}

// Advance returns a cursor moved forward by d positions.
func (c Cursor) Advance(d int) Cursor {
	return Cursor{Offset: c.Offset + d}
}
