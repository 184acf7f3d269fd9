// Package dashboard implements the live well-being TUI views.
//
// Two dashboards share one Bubble Tea model: the instructor view shows
// cohort averages and the high-stress ratio, the student view shows
// personal metrics and signal quality. Both poll the backend on a fixed
// interval and render percentage gauges plus a rolling focus sparkline.
//
// # Architecture
//
// The package follows The Elm Architecture (Model-Update-View):
//
//   - Model: poll state for the active role, layout, error banner
//   - Update: processes keystrokes, tick events, and fetch results
//   - View: renders the current state to a string for display
//
// # Message Flow
//
// The dashboard operates on a tick-based poll cycle:
//
//  1. tickMsg fires at the view's interval (2s student, 3s instructor)
//  2. fetchCmd() performs one GET against the backend
//  3. resultMsg arrives and is folded into the model via poll.Apply
//  4. View() re-renders with the new snapshot, trend, and error banner
//
// A tick is skipped while the previous fetch is still in flight, and
// every fetch command is stamped with a generation counter so a result
// that lands after the model stopped is discarded instead of mutating
// torn-down state.
//
// # Failure Policy
//
// Fetch errors never escalate: the last successful snapshot stays on
// screen, the banner explains the failure and names the expected
// backend address, and the next tick simply tries again.
//
// # Sparkline Geometry
//
// SparkGeometry is the pure mapping from normalized samples to polyline
// coordinates. The terminal renders it as braille rows; the HTML report
// renders the same geometry as an SVG path.
package dashboard
