package core

import (
	"sync"
	"time"
)

// TickerHandle identifies a scheduled callback.
type TickerHandle uint64

// Ticker invokes a callback periodically until cancelled.
type Ticker interface {
	Schedule(fn func(), interval time.Duration) TickerHandle
	Cancel(h TickerHandle)
}

// FrameTicker is a cooperative Ticker driven by a main loop. Callbacks only
// run from inside Advance, on the caller's goroutine.
type FrameTicker struct {
	now     func() time.Time
	next    TickerHandle
	entries []*frameEntry
}

type frameEntry struct {
	handle      TickerHandle
	fn          func()
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFrameTicker constructs a FrameTicker reading the wall clock.
func NewFrameTicker() *FrameTicker {
	return NewFrameTickerWithClock(time.Now)
}

// NewFrameTickerWithClock constructs a FrameTicker reading the provided clock.
func NewFrameTickerWithClock(now func() time.Time) *FrameTicker {
	return &FrameTicker{now: now}
}

// Schedule registers fn to run once per elapsed interval. The first call
// happens one interval after scheduling.
func (f *FrameTicker) Schedule(fn func(), interval time.Duration) TickerHandle {
	if interval <= 0 {
		interval = time.Second / 60
	}
	f.next++
	f.entries = append(f.entries, &frameEntry{handle: f.next, fn: fn, step: interval, last: f.now()})
	return f.next
}

// Cancel removes the callback. Unknown handles are ignored.
func (f *FrameTicker) Cancel(h TickerHandle) {
	for i, e := range f.entries {
		if e.handle == h {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return
		}
	}
}

// Pending reports how many callbacks are scheduled.
func (f *FrameTicker) Pending() int { return len(f.entries) }

// Advance fires each callback whose interval has elapsed, at most once per
// call. Backlog beyond one interval is dropped.
func (f *FrameTicker) Advance() {
	now := f.now()
	due := make([]*frameEntry, 0, len(f.entries))
	for _, e := range f.entries {
		e.accumulator += now.Sub(e.last)
		e.last = now
		if e.accumulator >= e.step {
			e.accumulator -= e.step
			if e.accumulator > e.step {
				e.accumulator = e.step
			}
			due = append(due, e)
		}
	}
	for _, e := range due {
		// A previous callback may have cancelled this one.
		if f.scheduled(e.handle) {
			e.fn()
		}
	}
}

func (f *FrameTicker) scheduled(h TickerHandle) bool {
	for _, e := range f.entries {
		if e.handle == h {
			return true
		}
	}
	return false
}

// WallTicker runs each scheduled callback on its own goroutine driven by a
// time.Ticker.
type WallTicker struct {
	mu   sync.Mutex
	next TickerHandle
	runs map[TickerHandle]*wallRun
}

type wallRun struct {
	stop chan struct{}
	done chan struct{}
}

// NewWallTicker constructs an idle WallTicker.
func NewWallTicker() *WallTicker {
	return &WallTicker{runs: map[TickerHandle]*wallRun{}}
}

// Schedule starts a goroutine invoking fn every interval.
func (w *WallTicker) Schedule(fn func(), interval time.Duration) TickerHandle {
	if interval <= 0 {
		interval = time.Second / 60
	}
	run := &wallRun{stop: make(chan struct{}), done: make(chan struct{})}
	w.mu.Lock()
	w.next++
	h := w.next
	w.runs[h] = run
	w.mu.Unlock()

	go func() {
		defer close(run.done)
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-run.stop:
				return
			case <-t.C:
			}
			select {
			case <-run.stop:
				return
			default:
			}
			fn()
		}
	}()
	return h
}

// Cancel stops the callback and waits for its goroutine to exit, so fn never
// runs after Cancel returns. It must not be called from inside fn.
func (w *WallTicker) Cancel(h TickerHandle) {
	w.mu.Lock()
	run, ok := w.runs[h]
	delete(w.runs, h)
	w.mu.Unlock()
	if !ok {
		return
	}
	close(run.stop)
	<-run.done
}
