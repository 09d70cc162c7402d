package life

import (
	"fmt"
	"sync"
	"time"

	"life2d/internal/core"
)

// State is the run state of a Simulation.
type State int

const (
	// Stopped is the initial state; steps only happen on request.
	Stopped State = iota
	// Running means the ticker is invoking Step.
	Running
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Renderer consumes the active generation. Implementations must not mutate
// the grid or call back into the Simulation.
type Renderer interface {
	DrawCells(g *core.Grid, cellSize int)
	DrawGridLines(size core.Size, cellSize int)
}

// Simulation runs Conway's Game of Life on a bounded grid using two buffers:
// the active generation and a scratch buffer the next one is written into.
type Simulation struct {
	mu sync.Mutex

	w, h    int
	buffers [2]*core.Grid
	active  int

	rng      *core.RNG
	ticker   core.Ticker
	renderer Renderer

	state    State
	handle   core.TickerHandle
	epoch    uint64
	interval time.Duration

	cellSize   int
	showGrid   bool
	generation int
	changed    bool
}

// New returns a Simulation with the provided dimensions using defaults.
func New(w, h int) (*Simulation, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a stopped Simulation whose active buffer is seeded at
// cfg.Density.
func NewWithConfig(cfg Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Simulation{
		w:        cfg.Width,
		h:        cfg.Height,
		ticker:   core.NewWallTicker(),
		interval: cfg.Interval,
		cellSize: cfg.CellSize,
		showGrid: cfg.ShowGrid,
		changed:  true,
	}
	for i := range s.buffers {
		g, err := core.NewGrid(cfg.Width, cfg.Height)
		if err != nil {
			return nil, err
		}
		s.buffers[i] = g
	}
	if cfg.Seed != 0 {
		s.rng = core.NewRNG(cfg.Seed)
	} else {
		s.rng = core.NewUnseededRNG()
	}
	if err := s.buffers[s.active].RandomizeWith(s.rng, cfg.Density); err != nil {
		return nil, err
	}
	return s, nil
}

// Name returns the simulation identifier.
func (s *Simulation) Name() string { return "life" }

// Size returns the grid dimensions.
func (s *Simulation) Size() core.Size { return core.Size{W: s.w, H: s.h} }

// CellSize returns the pixel size handed to the Renderer.
func (s *Simulation) CellSize() int { return s.cellSize }

// Grid returns the active generation. Callers must not mutate it.
func (s *Simulation) Grid() *core.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buffers[s.active]
}

// SetRenderer installs the sink used by Render. A nil renderer disables
// rendering.
func (s *Simulation) SetRenderer(r Renderer) {
	s.mu.Lock()
	s.renderer = r
	s.mu.Unlock()
}

// SetTicker replaces the ticker. A running simulation is rescheduled on the
// new ticker.
func (s *Simulation) SetTicker(t core.Ticker) {
	running := s.Running()
	if running {
		s.Stop()
	}
	s.mu.Lock()
	s.ticker = t
	s.mu.Unlock()
	if running {
		s.Start()
	}
}

// Step advances the simulation by one generation and renders it.
func (s *Simulation) Step() {
	s.mu.Lock()
	s.advance()
	s.mu.Unlock()
	s.Render()
}

// advance writes the next generation into the scratch buffer and swaps. Every
// scratch cell is overwritten, so stale data never leaks into a generation.
func (s *Simulation) advance() {
	cur := s.buffers[s.active]
	nxt := s.buffers[1-s.active]
	changed := false
	for row := 0; row < s.h; row++ {
		for col := 0; col < s.w; col++ {
			c := core.Coordinate{Row: row, Col: col}
			state := cur.Get(c)
			next := NextState(state, cur.CountLiveNeighbors(c))
			if next != state {
				changed = true
			}
			nxt.Set(c, next)
		}
	}
	s.active = 1 - s.active
	s.generation++
	s.changed = changed
}

// Start asks the ticker to invoke Step every interval. It is a no-op when
// already running.
func (s *Simulation) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Running {
		return
	}
	s.epoch++
	epoch := s.epoch
	s.state = Running
	s.handle = s.ticker.Schedule(func() { s.tick(epoch) }, s.interval)
}

// Stop cancels the ticker. It is a no-op when already stopped. No step runs
// after Stop returns.
func (s *Simulation) Stop() {
	s.mu.Lock()
	if s.state != Running {
		s.mu.Unlock()
		return
	}
	s.state = Stopped
	h, t := s.handle, s.ticker
	s.mu.Unlock()
	// Cancel outside the lock: a WallTicker waits for an in-flight tick,
	// which itself needs the lock to observe the stop.
	t.Cancel(h)
}

func (s *Simulation) tick(epoch uint64) {
	s.mu.Lock()
	if s.state != Running || s.epoch != epoch {
		s.mu.Unlock()
		return
	}
	s.advance()
	s.mu.Unlock()
	s.Render()
}

// ToggleCell flips the cell at c on the active generation. Out-of-bounds
// coordinates are ignored.
func (s *Simulation) ToggleCell(c core.Coordinate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.buffers[s.active]
	if !g.IsInside(c) {
		return
	}
	if g.Get(c) == core.Alive {
		g.Set(c, core.Dead)
		return
	}
	g.Set(c, core.Alive)
}

// Randomize reseeds the active generation at the given density.
func (s *Simulation) Randomize(percent float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.buffers[s.active].RandomizeWith(s.rng, percent); err != nil {
		return err
	}
	s.generation = 0
	s.changed = true
	return nil
}

// Reset clears the active generation.
func (s *Simulation) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buffers[s.active].Reset()
	s.generation = 0
	s.changed = true
}

// Render hands the active generation to the renderer, followed by grid lines
// when the overlay is enabled.
func (s *Simulation) Render() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.renderer == nil {
		return
	}
	g := s.buffers[s.active]
	s.renderer.DrawCells(g, s.cellSize)
	if s.showGrid {
		s.renderer.DrawGridLines(g.Size(), s.cellSize)
	}
}

// State returns the run state.
func (s *Simulation) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Running reports whether the ticker is driving the simulation.
func (s *Simulation) Running() bool { return s.State() == Running }

// Interval returns the ticker interval.
func (s *Simulation) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval
}

// SetInterval changes the ticker interval, rescheduling a running simulation.
func (s *Simulation) SetInterval(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%w: interval %s must be positive", core.ErrInvalidArgument, d)
	}
	s.mu.Lock()
	s.interval = d
	running := s.state == Running
	s.mu.Unlock()
	if running {
		s.Stop()
		s.Start()
	}
	return nil
}

// ShowGrid reports whether grid lines are drawn.
func (s *Simulation) ShowGrid() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.showGrid
}

// SetShowGrid enables or disables the grid line overlay.
func (s *Simulation) SetShowGrid(show bool) {
	s.mu.Lock()
	s.showGrid = show
	s.mu.Unlock()
}

// ToggleGrid flips the grid line overlay.
func (s *Simulation) ToggleGrid() {
	s.mu.Lock()
	s.showGrid = !s.showGrid
	s.mu.Unlock()
}

// Generation returns the number of steps since construction, Reset or
// Randomize.
func (s *Simulation) Generation() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Population returns the number of live cells in the active generation.
func (s *Simulation) Population() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buffers[s.active].Population()
}

// Changed reports whether the last step altered any cell.
func (s *Simulation) Changed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.changed
}

// String renders the active generation as text.
func (s *Simulation) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buffers[s.active].String()
}
