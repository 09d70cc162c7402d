package core

// Coordinate addresses a cell by row and column.
type Coordinate struct {
	Row int
	Col int
}

// Add returns the coordinate translated by delta.
func (c Coordinate) Add(delta Coordinate) Coordinate {
	return Coordinate{Row: c.Row + delta.Row, Col: c.Col + delta.Col}
}

// Equals reports whether both coordinates address the same cell.
func (c Coordinate) Equals(other Coordinate) bool { return c == other }

// neighborOffsets lists the eight adjacent deltas. Order is irrelevant.
var neighborOffsets = [8]Coordinate{
	{Row: -1, Col: 0},  // n
	{Row: 1, Col: 0},   // s
	{Row: 0, Col: -1},  // w
	{Row: 0, Col: 1},   // e
	{Row: -1, Col: -1}, // nw
	{Row: -1, Col: 1},  // ne
	{Row: 1, Col: -1},  // sw
	{Row: 1, Col: 1},   // se
}
