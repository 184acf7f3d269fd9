// Package poll implements the periodic fetch-and-update cycle shared by
// the dashboards and the headless recorder.
//
// The cycle is split into a pure reducer (Apply) and two drivers: the
// Bubble Tea dashboards drive it with tea.Tick commands, and Loop drives
// it with a goroutine and ticker for non-TUI use. Both produce Result
// values and fold them into State through the same reducer, so the
// stale-is-better-than-blank policy and trend updates are tested once.
package poll

import (
	"context"
	"sync"
	"time"
)

// Fetch performs one snapshot request. It must honor ctx cancellation.
type Fetch[T any] func(ctx context.Context) (*T, error)

// Loop repeatedly invokes a fetch at a fixed interval and delivers each
// outcome on a channel. It has two states: idle (created or stopped)
// and polling (Start called). Ticks are sequential in one goroutine, so
// a slow fetch delays the next tick rather than overlapping it.
type Loop[T any] struct {
	fetch    Fetch[T]
	interval time.Duration

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	started bool
}

// NewLoop creates an idle loop. Intervals below 100ms are clamped.
func NewLoop[T any](fetch Fetch[T], interval time.Duration) *Loop[T] {
	if interval < 100*time.Millisecond {
		interval = 100 * time.Millisecond
	}
	return &Loop[T]{fetch: fetch, interval: interval}
}

// Start transitions the loop to polling and returns the results channel.
// One cycle runs immediately, then one per interval. The channel closes
// after Stop (or ctx cancellation) once any in-flight fetch has wound
// down; a result that arrives after that point is discarded rather than
// delivered to a torn-down consumer.
//
// Start on an already-polling loop returns nil.
func (l *Loop[T]) Start(ctx context.Context) <-chan Result[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.started {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.done = make(chan struct{})
	l.started = true

	results := make(chan Result[T])
	go l.run(ctx, results)
	return results
}

// Stop transitions the loop back to idle. It cancels the ticker and any
// in-flight fetch, then waits for the polling goroutine to exit. Safe to
// call on an idle loop.
func (l *Loop[T]) Stop() {
	l.mu.Lock()
	if !l.started {
		l.mu.Unlock()
		return
	}
	cancel, done := l.cancel, l.done
	l.started = false
	l.mu.Unlock()

	cancel()
	<-done
}

func (l *Loop[T]) run(ctx context.Context, results chan<- Result[T]) {
	defer close(results)
	defer close(l.done)

	// Immediate first cycle, then the ticker takes over.
	l.cycle(ctx, results)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.cycle(ctx, results)
		}
	}
}

// cycle runs one fetch and delivers the outcome. Results racing against
// Stop are dropped: once the context is cancelled nothing is sent.
func (l *Loop[T]) cycle(ctx context.Context, results chan<- Result[T]) {
	snap, err := l.fetch(ctx)
	if ctx.Err() != nil {
		return
	}

	r := Result[T]{Snapshot: snap, Err: err, At: time.Now()}
	select {
	case results <- r:
	case <-ctx.Done():
	}
}
