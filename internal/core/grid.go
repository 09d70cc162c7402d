package core

import (
	"fmt"
	"strings"
)

// CellState is the value stored in a single grid cell.
type CellState uint8

const (
	// Dead marks an empty cell.
	Dead CellState = iota
	// Alive marks a populated cell.
	Alive
	// Outside is returned by Grid.Get for coordinates beyond the grid. It is
	// never stored.
	Outside CellState = 0xff
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Grid stores a fixed-size 2D matrix of cells in row-major order.
type Grid struct {
	w, h int
	data []CellState
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: grid size %dx%d must be positive", ErrInvalidArgument, w, h)
	}
	return &Grid{w: w, h: h, data: make([]CellState, w*h)}, nil
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Cells exposes the backing slice in row-major order. Callers must treat it as
// read-only.
func (g *Grid) Cells() []CellState { return g.data }

// Index returns the linear slice index for an in-bounds coordinate.
func (g *Grid) Index(c Coordinate) int { return c.Row*g.w + c.Col }

// IsInside reports whether c addresses a cell of the grid.
func (g *Grid) IsInside(c Coordinate) bool {
	return c.Col >= 0 && c.Col < g.w && c.Row >= 0 && c.Row < g.h
}

// Get returns the state at c, or Outside when c is beyond the grid.
func (g *Grid) Get(c Coordinate) CellState {
	if !g.IsInside(c) {
		return Outside
	}
	return g.data[g.Index(c)]
}

// Set overwrites the cell at c. Out-of-bounds coordinates are ignored. Any
// state other than Alive is stored as Dead.
func (g *Grid) Set(c Coordinate, state CellState) {
	if !g.IsInside(c) {
		return
	}
	if state != Alive {
		state = Dead
	}
	g.data[g.Index(c)] = state
}

// Reset marks every cell dead.
func (g *Grid) Reset() {
	for i := range g.data {
		g.data[i] = Dead
	}
}

// Randomize sets each cell alive with probability percent/100 using an
// unseeded source.
func (g *Grid) Randomize(percent float64) error {
	return g.RandomizeWith(NewUnseededRNG(), percent)
}

// RandomizeWith is Randomize drawing from the provided RNG.
func (g *Grid) RandomizeWith(rng *RNG, percent float64) error {
	if err := ValidatePercent(percent); err != nil {
		return err
	}
	for i := range g.data {
		if rng.Chance(percent) {
			g.data[i] = Alive
			continue
		}
		g.data[i] = Dead
	}
	return nil
}

// ValidatePercent rejects values outside [0, 100], including NaN.
func ValidatePercent(percent float64) error {
	if !(percent >= 0 && percent <= 100) {
		return fmt.Errorf("%w: percent alive %v not in [0,100]", ErrInvalidArgument, percent)
	}
	return nil
}

// CountLiveNeighbors returns how many of the eight cells around c are alive.
// Neighbors beyond the grid never count.
func (g *Grid) CountLiveNeighbors(c Coordinate) int {
	n := 0
	for _, d := range neighborOffsets {
		if g.Get(c.Add(d)) == Alive {
			n++
		}
	}
	return n
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, v := range g.data {
		if v == Alive {
			n++
		}
	}
	return n
}

// String renders one line per row, '*' for alive and ' ' for dead.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.w + 1) * g.h)
	for row := 0; row < g.h; row++ {
		for _, v := range g.data[row*g.w : (row+1)*g.w] {
			if v == Alive {
				b.WriteByte('*')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
