// Package loop runs a game on a single goroutine.
//
// Loop implements engine.Clock. Ticks requested through ScheduleNext and
// actions submitted through Post are executed one at a time by Run, so the
// engine never sees two calls at once.
package loop

import (
	"context"
	"sync"
	"time"
)

const actionBuffer = 64

// Loop serializes scheduled ticks and posted actions
type Loop struct {
	actions chan func()
	due     chan uint64
	done    chan struct{}
	once    sync.Once

	mu      sync.Mutex
	timer   *time.Timer
	tick    func()
	gen     uint64
	pending bool
}

// New creates an idle loop; call Run to start executing
func New() *Loop {
	return &Loop{
		actions: make(chan func(), actionBuffer),
		due:     make(chan uint64),
		done:    make(chan struct{}),
	}
}

// ScheduleNext arranges for fn to run on the loop goroutine after interval.
// A tick that is still pending is replaced.
func (l *Loop) ScheduleNext(fn func(), interval time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	select {
	case <-l.done:
		return
	default:
	}

	if l.timer != nil {
		l.timer.Stop()
	}
	l.gen++
	gen := l.gen
	l.tick = fn
	l.pending = true
	l.timer = time.AfterFunc(interval, func() {
		select {
		case l.due <- gen:
		case <-l.done:
		}
	})
}

// Post submits fn to run on the loop goroutine. It is safe to call from any
// goroutine and reports false once the loop has stopped.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}

	select {
	case l.actions <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Run executes ticks and posted actions until ctx is cancelled or Stop is
// called. It must be called from exactly one goroutine.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			l.Stop()
			return ctx.Err()

		case <-l.done:
			return nil

		case fn := <-l.actions:
			fn()

		case gen := <-l.due:
			l.runTick(gen)
		}
	}
}

func (l *Loop) runTick(gen uint64) {
	l.mu.Lock()
	if gen != l.gen || !l.pending {
		// superseded by a later ScheduleNext
		l.mu.Unlock()
		return
	}
	fn := l.tick
	l.tick = nil
	l.pending = false
	l.mu.Unlock()

	fn()
}

// Stop halts the loop and cancels any pending tick. Safe to call repeatedly.
func (l *Loop) Stop() {
	l.once.Do(func() {
		close(l.done)
	})

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.timer != nil {
		l.timer.Stop()
	}
	l.tick = nil
	l.pending = false
}

// Done is closed once the loop has stopped
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Pending reports whether a tick is scheduled and has not run yet
func (l *Loop) Pending() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pending
}
