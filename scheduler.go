package sapling

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultTPS is the target update rate in ticks per second.
const DefaultTPS = 60

// ErrSchedulerRunning is returned by Start when the scheduler is already running.
var ErrSchedulerRunning = errors.New("sapling: scheduler already running")

// Scheduler drives a SceneTree at a fixed cadence. The tree does not own its
// scheduler; it is created separately and given the tree.
type Scheduler interface {
	// Start runs the loop until ctx is cancelled or Stop is called.
	Start(ctx context.Context) error
	// Stop ends a running loop. It is safe to call from any goroutine.
	Stop()
}

// Ticker is a headless Scheduler backed by a time.Ticker. Each tick it
// dispatches the events posted since the previous tick, then calls Step with
// the wall-clock seconds elapsed since the previous tick.
//
// All tree access happens on the goroutine that called Start.
type Ticker struct {
	tree     *SceneTree
	interval time.Duration
	events   chan InputEvent

	// OnFrame, if set, is called on the loop goroutine after every Step with
	// the number of frames completed so far. Set it before Start.
	OnFrame func(frame uint64)

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	frames  atomic.Uint64
}

var _ Scheduler = (*Ticker)(nil)

// NewTicker creates a Ticker stepping tree hz times per second. A
// non-positive hz selects DefaultTPS.
func NewTicker(tree *SceneTree, hz int) *Ticker {
	if hz <= 0 {
		hz = DefaultTPS
	}
	return &Ticker{
		tree:     tree,
		interval: time.Second / time.Duration(hz),
		events:   make(chan InputEvent, 256),
	}
}

// Interval returns the time between ticks.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Frames returns the number of completed frames.
func (t *Ticker) Frames() uint64 {
	return t.frames.Load()
}

// Post queues ev for dispatch on the next tick. It reports false if the
// queue is full and the event was dropped.
func (t *Ticker) Post(ev InputEvent) bool {
	select {
	case t.events <- ev:
		return true
	default:
		return false
	}
}

// Start implements Scheduler. It returns nil once stopped.
func (t *Ticker) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	t.mu.Lock()
	if t.running {
		t.mu.Unlock()
		cancel()
		return ErrSchedulerRunning
	}
	t.running = true
	t.cancel = cancel
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.running = false
		t.cancel = nil
		t.mu.Unlock()
		cancel()
	}()

	tick := time.NewTicker(t.interval)
	defer tick.Stop()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-tick.C:
			t.drain()
			dt := now.Sub(last).Seconds()
			last = now
			t.tree.Step(dt)
			frame := t.frames.Add(1)
			if t.OnFrame != nil {
				t.OnFrame(frame)
			}
		}
	}
}

// Stop implements Scheduler.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
	}
}

// Running reports whether Start is in progress.
func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// drain dispatches every queued event without blocking.
func (t *Ticker) drain() {
	for {
		select {
		case ev := <-t.events:
			t.tree.Dispatch(ev)
		default:
			return
		}
	}
}
