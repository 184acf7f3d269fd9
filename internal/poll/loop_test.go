package poll

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoop_ImmediateFirstCycle(t *testing.T) {
	fetch := func(ctx context.Context) (*snapshot, error) {
		return &snapshot{Focus: 0.7}, nil
	}
	loop := NewLoop(fetch, time.Hour)
	defer loop.Stop()

	results := loop.Start(context.Background())
	require.NotNil(t, results)

	select {
	case r := <-results:
		require.NoError(t, r.Err)
		require.NotNil(t, r.Snapshot)
		assert.Equal(t, 0.7, r.Snapshot.Focus)
		assert.False(t, r.At.IsZero())
	case <-time.After(time.Second):
		t.Fatal("no result before the first interval elapsed")
	}
}

func TestLoop_DeliversErrors(t *testing.T) {
	fetch := func(ctx context.Context) (*snapshot, error) {
		return nil, errors.New("connection refused")
	}
	loop := NewLoop(fetch, time.Hour)
	defer loop.Stop()

	results := loop.Start(context.Background())
	r := <-results
	require.Error(t, r.Err)
	assert.Nil(t, r.Snapshot)
}

func TestLoop_RepeatsAtInterval(t *testing.T) {
	var calls atomic.Int32
	fetch := func(ctx context.Context) (*snapshot, error) {
		calls.Add(1)
		return &snapshot{}, nil
	}
	loop := NewLoop(fetch, 100*time.Millisecond)
	defer loop.Stop()

	results := loop.Start(context.Background())
	for i := 0; i < 3; i++ {
		select {
		case <-results:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for result %d", i)
		}
	}
	assert.GreaterOrEqual(t, calls.Load(), int32(3))
}

func TestLoop_StopClosesChannel(t *testing.T) {
	fetch := func(ctx context.Context) (*snapshot, error) {
		return &snapshot{}, nil
	}
	loop := NewLoop(fetch, 100*time.Millisecond)

	results := loop.Start(context.Background())
	<-results
	loop.Stop()

	// After Stop the channel drains and closes; no further results.
	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-results:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("results channel never closed after Stop")
		}
	}
}

func TestLoop_StopCancelsInFlightFetch(t *testing.T) {
	started := make(chan struct{})
	fetch := func(ctx context.Context) (*snapshot, error) {
		close(started)
		<-ctx.Done()
		return nil, ctx.Err()
	}
	loop := NewLoop(fetch, time.Hour)

	loop.Start(context.Background())
	<-started

	done := make(chan struct{})
	go func() {
		loop.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not unblock the in-flight fetch")
	}
}

func TestLoop_StartTwiceReturnsNil(t *testing.T) {
	fetch := func(ctx context.Context) (*snapshot, error) {
		return &snapshot{}, nil
	}
	loop := NewLoop(fetch, time.Hour)
	defer loop.Stop()

	first := loop.Start(context.Background())
	require.NotNil(t, first)
	assert.Nil(t, loop.Start(context.Background()))
}

func TestLoop_StopIdempotent(t *testing.T) {
	fetch := func(ctx context.Context) (*snapshot, error) {
		return &snapshot{}, nil
	}
	loop := NewLoop(fetch, time.Hour)

	// Stop on an idle loop is a no-op.
	loop.Stop()

	loop.Start(context.Background())
	loop.Stop()
	loop.Stop()
}

func TestLoop_RestartAfterStop(t *testing.T) {
	fetch := func(ctx context.Context) (*snapshot, error) {
		return &snapshot{Focus: 0.5}, nil
	}
	loop := NewLoop(fetch, time.Hour)

	first := loop.Start(context.Background())
	<-first
	loop.Stop()

	second := loop.Start(context.Background())
	require.NotNil(t, second)
	r := <-second
	assert.NoError(t, r.Err)
	loop.Stop()
}

func TestNewLoop_ClampsInterval(t *testing.T) {
	loop := NewLoop(func(ctx context.Context) (*snapshot, error) {
		return &snapshot{}, nil
	}, time.Millisecond)
	assert.Equal(t, 100*time.Millisecond, loop.interval)
}
