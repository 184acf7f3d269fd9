package dashboard

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/classpulse/classpulse/internal/api"
	"github.com/classpulse/classpulse/internal/poll"
)

// Role selects which dashboard the model renders and which endpoint it polls.
type Role int

const (
	RoleStudent Role = iota
	RoleInstructor
)

// String returns the role name as used in CLI output and session records.
func (r Role) String() string {
	if r == RoleInstructor {
		return "instructor"
	}
	return "student"
}

// Title returns the dashboard heading for the role.
func (r Role) Title() string {
	if r == RoleInstructor {
		return "classroom overview"
	}
	return "my wellbeing"
}

// LayoutMode represents the responsive layout mode based on terminal size.
type LayoutMode int

const (
	// LayoutMinimal is for terminals < 60 columns: gauges only, no sparkline
	LayoutMinimal LayoutMode = iota
	// LayoutCompact is for terminals 60-100 columns: single-row sparkline
	LayoutCompact
	// LayoutStandard is for terminals 100+ columns: braille sparkline, full labels
	LayoutStandard
)

// Width breakpoints for layout modes
const (
	BreakpointCompact  = 60
	BreakpointStandard = 100
)

// Model is the Bubble Tea model for a well-being dashboard.
type Model struct {
	role     Role
	client   *api.Client
	interval time.Duration

	// Poll state per role; only the one matching role is ever touched.
	student    poll.State[api.StudentInsights]
	instructor poll.State[api.InstructorSummary]

	width  int
	height int

	// fetching guards against overlapping in-flight requests: a tick is
	// skipped while the previous fetch has not resolved.
	fetching bool

	// gen stamps every fetch command; results carrying a stale
	// generation are dropped, so nothing mutates state after Stop.
	gen     int
	stopped bool

	spinner  spinner.Model
	quitting bool
	showHelp bool
}

// tickMsg signals a scheduled poll cycle.
type tickMsg time.Time

// resultMsg carries the outcome of one fetch back into Update.
type resultMsg struct {
	gen        int
	student    *api.StudentInsights
	instructor *api.InstructorSummary
	err        error
	at         time.Time
}

// NewModel creates a dashboard model polling the given client.
func NewModel(client *api.Client, role Role, interval time.Duration, trendSize int) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Spinner{
		Frames: []string{"◐", "◓", "◑", "◒"},
		FPS:    time.Second / 10,
	}
	sp.Style = lipgloss.NewStyle().Foreground(ColorAccent)

	return Model{
		role:       role,
		client:     client,
		interval:   interval,
		student:    poll.NewState[api.StudentInsights](trendSize),
		instructor: poll.NewState[api.InstructorSummary](trendSize),
		spinner:    sp,
	}
}

// Init performs one immediate fetch-and-update cycle, then schedules
// the repeating tick.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetchCmd(),
		m.tickCmd(),
		m.spinner.Tick,
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		if m.stopped {
			return m, nil
		}
		if m.fetching {
			// Previous fetch still in flight; skip this cycle.
			return m, m.tickCmd()
		}
		return m, tea.Batch(m.tickCmd(), m.fetchCmd())

	case resultMsg:
		if msg.gen != m.gen || m.stopped {
			// Late arrival from before a stop or forced refresh.
			return m, nil
		}
		m.fetching = false
		m.applyResult(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderDashboard()
}

// Stop freezes the model: pending fetch results are discarded and no
// further ticks fire. Mirrors view teardown in tests.
func (m *Model) Stop() {
	m.stopped = true
	m.gen++
}

// tickCmd returns a command that sends a tick after the poll interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// fetchCmd performs one snapshot fetch for the model's role. The
// current generation is captured so the result can be recognized as
// current (or stale) when it lands.
func (m *Model) fetchCmd() tea.Cmd {
	m.fetching = true
	gen := m.gen
	role := m.role
	client := m.client
	timeout := m.interval

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		msg := resultMsg{gen: gen, at: time.Now()}
		switch role {
		case RoleInstructor:
			msg.instructor, msg.err = client.InstructorSummary(ctx)
		default:
			msg.student, msg.err = client.StudentInsights(ctx)
		}
		return msg
	}
}

// applyResult folds a fetch outcome into the role's poll state.
func (m *Model) applyResult(msg resultMsg) {
	switch m.role {
	case RoleInstructor:
		r := poll.Result[api.InstructorSummary]{Snapshot: msg.instructor, Err: msg.err, At: msg.at}
		m.instructor = poll.Apply(m.instructor, r, func(s *api.InstructorSummary) float64 { return s.AvgFocus })
	default:
		r := poll.Result[api.StudentInsights]{Snapshot: msg.student, Err: msg.err, At: msg.at}
		m.student = poll.Apply(m.student, r, func(s *api.StudentInsights) float64 { return s.Focus })
	}
}

// lastError returns the active role's banner message, empty when the
// last tick succeeded.
func (m Model) lastError() string {
	if m.role == RoleInstructor {
		return m.instructor.LastError
	}
	return m.student.LastError
}

// trendValues returns the active role's focus trend, oldest first.
func (m Model) trendValues() []float64 {
	if m.role == RoleInstructor {
		return m.instructor.Trend.Values()
	}
	return m.student.Trend.Values()
}

// hasSnapshot reports whether at least one fetch has succeeded.
func (m Model) hasSnapshot() bool {
	if m.role == RoleInstructor {
		return m.instructor.Latest != nil
	}
	return m.student.Latest != nil
}

// updatedAt returns the time of the last successful fetch.
func (m Model) updatedAt() time.Time {
	if m.role == RoleInstructor {
		return m.instructor.UpdatedAt
	}
	return m.student.UpdatedAt
}

// SecondsSinceUpdate returns how many seconds have passed since the
// last successful fetch.
func (m Model) SecondsSinceUpdate() int {
	at := m.updatedAt()
	if at.IsZero() {
		return 0
	}
	return int(time.Since(at).Seconds())
}

// LayoutMode returns the current layout mode based on terminal width.
func (m Model) LayoutMode() LayoutMode {
	switch {
	case m.width >= BreakpointStandard:
		return LayoutStandard
	case m.width >= BreakpointCompact:
		return LayoutCompact
	default:
		return LayoutMinimal
	}
}
