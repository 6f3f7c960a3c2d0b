// Package clock provides the millisecond heartbeat for the game engine.
//
// A single tick goroutine stands in for the hardware timer interrupt: it
// advances a free-running millisecond counter and runs the registered tick
// hooks (the tune sequencer lives there). Everything else in the engine
// treats the counter as a read-only snapshot per use.
package clock

import (
	"sync"
	"sync/atomic"
	"time"
)

// Period is the fixed tick period: one tick equals one millisecond.
const Period = time.Millisecond

// Hook is run once per tick, inside the tick goroutine. Hooks are serialized
// with respect to each other, must be O(1) and must never block.
type Hook func()

// Clock is a free-running millisecond counter advanced once per Period.
// The counter wraps at the uint32 boundary; elapsed-time comparisons must go
// through Since rather than comparing absolute values.
type Clock struct {
	ms atomic.Uint32

	mu    sync.Mutex
	cond  *sync.Cond
	hooks []Hook

	startOnce sync.Once
	stopOnce  sync.Once
	done      chan struct{}
}

// New creates a stopped clock. Register hooks with Notify, then call Start.
func New() *Clock {
	c := &Clock{done: make(chan struct{})}
	c.cond = sync.NewCond(&c.mu)
	return c
}

// Notify registers a tick hook. Must be called before Start; the hook list
// is not guarded against concurrent mutation once ticking begins.
func (c *Clock) Notify(h Hook) {
	c.hooks = append(c.hooks, h)
}

// Start launches the tick goroutine. Safe to call once; repeat calls are
// no-ops.
func (c *Clock) Start() {
	c.startOnce.Do(func() {
		go c.run()
	})
}

// Stop halts the tick goroutine. Sleepers are woken so they can observe the
// final counter value; a sleep whose deadline never arrived will return
// early only because time itself has stopped.
func (c *Clock) Stop() {
	c.stopOnce.Do(func() {
		close(c.done)
		c.mu.Lock()
		c.cond.Broadcast()
		c.mu.Unlock()
	})
}

func (c *Clock) run() {
	ticker := time.NewTicker(Period)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.Tick()
		}
	}
}

// Tick advances the counter by one millisecond and runs the tick hooks.
// It is the interrupt handler: the only writer of the counter. Exposed so
// tests can drive the clock deterministically without real time.
func (c *Clock) Tick() {
	c.ms.Add(1)
	for _, h := range c.hooks {
		h()
	}
	// Broadcast under the mutex so a sleeper between its deadline check and
	// Wait cannot miss the wakeup.
	c.mu.Lock()
	c.cond.Broadcast()
	c.mu.Unlock()
}

// Now returns the current tick value in milliseconds.
func (c *Clock) Now() uint32 {
	return c.ms.Load()
}

// Since returns the milliseconds elapsed since start. Unsigned subtraction
// keeps the result correct across counter wraparound.
func (c *Clock) Since(start uint32) uint32 {
	return c.ms.Load() - start
}

// Sleep blocks the calling flow until at least d milliseconds of tick time
// have elapsed. The tick goroutine keeps running throughout, so background
// tune playback continues during any blocking delay. A zero duration returns
// immediately. There is no cancellation; the delay runs to completion unless
// the clock itself is stopped.
func (c *Clock) Sleep(d uint32) {
	if d == 0 {
		return
	}
	start := c.ms.Load()

	c.mu.Lock()
	defer c.mu.Unlock()
	for c.ms.Load()-start < d {
		select {
		case <-c.done:
			return
		default:
		}
		c.cond.Wait()
	}
}

// Stopped reports whether Stop has been called.
func (c *Clock) Stopped() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}
