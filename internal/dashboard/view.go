package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/classpulse/classpulse/internal/config"
)

// Sparkline display dimensions per layout.
const (
	sparkRows      = 4
	sparkMinWidth  = 24
	gaugeMinWidth  = 34
	contentMaxCols = 72
)

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	if m.showHelp {
		return m.renderHelpOverlay()
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if banner := m.renderErrorBanner(); banner != "" {
		b.WriteString(banner)
		b.WriteString("\n")
	}

	switch m.role {
	case RoleInstructor:
		b.WriteString(m.renderInstructorBody())
	default:
		b.WriteString(m.renderStudentBody())
	}

	if m.LayoutMode() != LayoutMinimal {
		b.WriteString("\n")
		b.WriteString(m.renderTrend())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the dashboard header with the role title and
// freshness of the displayed snapshot.
func (m Model) renderHeader() string {
	title := TitleStyle.Render("classpulse " + m.role.String())

	var updateText string
	switch s := m.SecondsSinceUpdate(); {
	case !m.hasSnapshot():
		updateText = "waiting for first snapshot"
	case s == 0:
		updateText = "updated just now"
	case s == 1:
		updateText = "updated 1s ago"
	default:
		updateText = fmt.Sprintf("updated %ds ago", s)
	}

	stats := LabelStyle.Render(fmt.Sprintf(" | %s | %s", m.client.BaseURL(), updateText))
	return HeaderStyle.Render(title + stats)
}

// renderErrorBanner renders the failure banner when the last tick
// errored. The stale snapshot stays rendered underneath; the banner
// names the expected backend address and the override variable so the
// fix is obvious.
func (m Model) renderErrorBanner() string {
	errMsg := m.lastError()
	if errMsg == "" {
		return ""
	}

	hint := BannerHintStyle.Render(fmt.Sprintf(
		"expecting the backend at %s — override with %s or base_url in %s",
		m.client.BaseURL(), config.EnvBaseURL, config.ConfigFileName))

	width := m.contentWidth()
	return BannerStyle.Width(width).Render(errMsg + "\n" + hint)
}

// renderStudentBody renders the four personal metric gauges and the
// signal-quality badge.
func (m Model) renderStudentBody() string {
	width := m.contentWidth()

	snap := m.student.Latest
	var focus, stress, engagement, relaxation float64
	quality := "—"
	if snap != nil {
		focus, stress = snap.Focus, snap.Stress
		engagement, relaxation = snap.Engagement, snap.Relaxation
		quality = snap.SignalQuality
	}

	rows := []string{
		RenderGauge("Focus", focus, width, true),
		RenderGauge("Stress", stress, width, false),
		RenderGauge("Engagement", engagement, width, true),
		RenderGauge("Relaxation", relaxation, width, true),
		"",
		LabelStyle.Render("Signal quality  ") + SignalBadge(quality),
	}

	body := strings.Join(rows, "\n")
	if snap == nil {
		body += "\n" + m.renderWaiting()
	}
	return CardStyle.Width(width).Render(body)
}

// renderInstructorBody renders the cohort average gauges, the module
// name, and the high-stress ratio.
func (m Model) renderInstructorBody() string {
	width := m.contentWidth()

	snap := m.instructor.Latest
	var avgFocus, avgStress, avgEngagement float64
	module := "—"
	high, total := 0, 0
	if snap != nil {
		avgFocus, avgStress, avgEngagement = snap.AvgFocus, snap.AvgStress, snap.AvgEngagement
		module = snap.Module
		high, total = snap.StudentsHighStress, snap.StudentsTotal
	}

	ratioPct := 0.0
	if total > 0 {
		ratioPct = float64(high) / float64(total) * 100
	}
	ratio := lipgloss.NewStyle().
		Foreground(MetricColor(ratioPct)).
		Bold(true).
		Render(RenderRatio(high, total))

	rows := []string{
		LabelStyle.Render("Module  ") + ValueStyle.Render(module),
		"",
		RenderGauge("Avg focus", avgFocus, width, true),
		RenderGauge("Avg stress", avgStress, width, false),
		RenderGauge("Avg engage", avgEngagement, width, true),
		"",
		LabelStyle.Render("High stress  ") + ratio,
	}

	body := strings.Join(rows, "\n")
	if snap == nil {
		body += "\n" + m.renderWaiting()
	}
	return CardStyle.Width(width).Render(body)
}

// renderTrend renders the rolling focus sparkline for the active role.
func (m Model) renderTrend() string {
	values := m.trendValues()
	width := m.contentWidth()

	label := LabelStyle.Render("Focus trend")

	var graph string
	if m.LayoutMode() == LayoutCompact {
		graph = RenderMiniSparkline(values, width, ColorGraph)
	} else {
		graph = RenderBrailleSparkline(values, width, sparkRows, ColorGraph)
	}
	if graph == "" {
		graph = MutedStyle.Render("collecting samples...")
	}

	return CardStyle.Width(width).Render(label + "\n" + graph)
}

// renderWaiting renders the pre-first-snapshot spinner line.
func (m Model) renderWaiting() string {
	return m.spinner.View() + MutedStyle.Render(" connecting to backend...")
}

// renderFooter renders the keyboard help footer.
func (m Model) renderFooter() string {
	hints := []string{
		"q quit",
		"r refresh",
		"? help",
		fmt.Sprintf("polling every %s", m.interval),
	}
	return FooterStyle.Render(strings.Join(hints, " | "))
}

// contentWidth bounds the card width to the terminal.
func (m Model) contentWidth() int {
	w := m.width - 4
	if w < sparkMinWidth {
		w = gaugeMinWidth
	}
	if w > contentMaxCols {
		w = contentMaxCols
	}
	return w
}
