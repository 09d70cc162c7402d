package life

import "life2d/internal/core"

// NextState applies Conway's rules to a cell with the given live neighbor
// count. Any state other than Alive is treated as dead.
func NextState(current core.CellState, neighbors int) core.CellState {
	if current == core.Alive {
		if neighbors == 2 || neighbors == 3 {
			return core.Alive
		}
		return core.Dead
	}
	if neighbors == 3 {
		return core.Alive
	}
	return core.Dead
}
