package life

import (
	"testing"

	"life2d/internal/core"
)

func TestNextState(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := core.Dead
		if n == 2 || n == 3 {
			wantAlive = core.Alive
		}
		if got := NextState(core.Alive, n); got != wantAlive {
			t.Fatalf("NextState(Alive, %d)=%d, expected %d", n, got, wantAlive)
		}

		wantDead := core.Dead
		if n == 3 {
			wantDead = core.Alive
		}
		if got := NextState(core.Dead, n); got != wantDead {
			t.Fatalf("NextState(Dead, %d)=%d, expected %d", n, got, wantDead)
		}
		if got := NextState(core.Outside, n); got != wantDead {
			t.Fatalf("NextState(Outside, %d)=%d, expected %d", n, got, wantDead)
		}
	}
}

func TestNextStateDeterministic(t *testing.T) {
	for _, state := range []core.CellState{core.Alive, core.Dead} {
		for n := 0; n <= 8; n++ {
			first := NextState(state, n)
			for i := 0; i < 3; i++ {
				if NextState(state, n) != first {
					t.Fatalf("NextState(%d, %d) not deterministic", state, n)
				}
			}
		}
	}
}
