package poll

import "time"

// State holds everything a view needs to render: the latest snapshot
// (nil until the first successful tick), the last error message (empty
// when the last tick succeeded), and the trend window of the focus-like
// metric. It is owned by exactly one view instance and mutated only
// through Apply.
type State[T any] struct {
	Latest    *T
	LastError string
	Trend     Trend
	UpdatedAt time.Time
}

// NewState creates an empty poll state with the given trend capacity.
func NewState[T any](trendCapacity int) State[T] {
	return State[T]{Trend: NewTrend(trendCapacity)}
}

// Result is the outcome of a single poll tick: either a snapshot or an
// error, never both.
type Result[T any] struct {
	Snapshot *T
	Err      error
	At       time.Time
}

// Apply is the single state-transition entry point for a poll tick.
//
// On success the snapshot replaces Latest, the error is cleared, and
// the focus-like metric (extracted by focus) is pushed into the trend.
// On failure only LastError changes: the stale snapshot and trend stay
// on screen, which beats going blank during a backend outage.
func Apply[T any](s State[T], r Result[T], focus func(*T) float64) State[T] {
	if r.Err != nil {
		s.LastError = r.Err.Error()
		return s
	}
	s.Latest = r.Snapshot
	s.LastError = ""
	s.Trend = s.Trend.Push(focus(r.Snapshot))
	s.UpdatedAt = r.At
	return s
}
