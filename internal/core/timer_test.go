package core

import (
	"sync/atomic"
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFrameTickerFiresPerInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	ft := NewFrameTickerWithClock(clock.now)
	calls := 0
	ft.Schedule(func() { calls++ }, 100*time.Millisecond)

	ft.Advance()
	if calls != 0 {
		t.Fatalf("callback fired before interval elapsed (%d)", calls)
	}
	clock.advance(60 * time.Millisecond)
	ft.Advance()
	if calls != 0 {
		t.Fatalf("callback fired early (%d)", calls)
	}
	clock.advance(40 * time.Millisecond)
	ft.Advance()
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
	clock.advance(100 * time.Millisecond)
	ft.Advance()
	if calls != 2 {
		t.Fatalf("expected 2 calls, got %d", calls)
	}
}

func TestFrameTickerCapsBacklog(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	ft := NewFrameTickerWithClock(clock.now)
	calls := 0
	ft.Schedule(func() { calls++ }, 10*time.Millisecond)

	clock.advance(time.Second)
	for i := 0; i < 5; i++ {
		ft.Advance()
	}
	if calls != 2 {
		t.Fatalf("expected backlog capped to 2 calls, got %d", calls)
	}
}

func TestFrameTickerCancel(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	ft := NewFrameTickerWithClock(clock.now)
	var a, b int
	var hb TickerHandle
	ft.Schedule(func() { a++; ft.Cancel(hb) }, 10*time.Millisecond)
	hb = ft.Schedule(func() { b++ }, 10*time.Millisecond)

	clock.advance(10 * time.Millisecond)
	ft.Advance()
	if a != 1 || b != 0 {
		t.Fatalf("expected cancelled callback to be skipped, a=%d b=%d", a, b)
	}
	if ft.Pending() != 1 {
		t.Fatalf("expected 1 pending callback, got %d", ft.Pending())
	}
	ft.Cancel(TickerHandle(999))
	if ft.Pending() != 1 {
		t.Fatal("unknown handle must be ignored")
	}
}

func TestWallTickerCancelStopsCallbacks(t *testing.T) {
	wt := NewWallTicker()
	var calls atomic.Int64
	fired := make(chan struct{}, 1)
	h := wt.Schedule(func() {
		calls.Add(1)
		select {
		case fired <- struct{}{}:
		default:
		}
	}, time.Millisecond)

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("callback never fired")
	}
	wt.Cancel(h)
	after := calls.Load()
	time.Sleep(20 * time.Millisecond)
	if got := calls.Load(); got != after {
		t.Fatalf("callback ran %d times after Cancel returned", got-after)
	}
	wt.Cancel(h)
}
