package poll

// Trend is a fixed-capacity sliding window of recent metric samples,
// most recent last. Pushing beyond capacity drops the oldest entries.
// It has value semantics: Push returns the updated window and never
// mutates the receiver, which keeps the poll reducer pure.
type Trend struct {
	cap  int
	vals []float64
}

// NewTrend creates a trend window with the given capacity.
// Capacities below 1 are clamped to 1.
func NewTrend(capacity int) Trend {
	if capacity < 1 {
		capacity = 1
	}
	return Trend{cap: capacity}
}

// Push appends a value, dropping the oldest entries if the window
// exceeds its capacity.
func (t Trend) Push(v float64) Trend {
	vals := make([]float64, 0, len(t.vals)+1)
	vals = append(vals, t.vals...)
	vals = append(vals, v)
	if len(vals) > t.cap {
		vals = vals[len(vals)-t.cap:]
	}
	return Trend{cap: t.cap, vals: vals}
}

// Values returns the samples in push order, oldest first.
// The returned slice is a copy.
func (t Trend) Values() []float64 {
	out := make([]float64, len(t.vals))
	copy(out, t.vals)
	return out
}

// Len returns the number of stored samples.
func (t Trend) Len() int { return len(t.vals) }

// Cap returns the window capacity.
func (t Trend) Cap() int { return t.cap }

// Last returns the most recent sample, or false if the window is empty.
func (t Trend) Last() (float64, bool) {
	if len(t.vals) == 0 {
		return 0, false
	}
	return t.vals[len(t.vals)-1], true
}
