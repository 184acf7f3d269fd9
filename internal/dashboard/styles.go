package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Dashboard color palette - calm, wellness-leaning with neon accents
const (
	// Background colors
	ColorDarkBg    = lipgloss.Color("#0B0F12") // Deep slate
	ColorSurfaceBg = lipgloss.Color("#121A1E") // Dark surface
	ColorBorder    = lipgloss.Color("#2A3A44") // Teal-tinted border

	// Semantic colors for metrics
	ColorHealthy  = lipgloss.Color("#3DDC97") // Mint green
	ColorWarning  = lipgloss.Color("#FFB74D") // Soft amber
	ColorCritical = lipgloss.Color("#FF5370") // Coral red

	// Text colors
	ColorTextPrimary   = lipgloss.Color("#F5F7FA") // Near white
	ColorTextSecondary = lipgloss.Color("#A9BDC9") // Mist blue
	ColorTextMuted     = lipgloss.Color("#5C7280") // Slate gray

	// Accent colors
	ColorAccent    = lipgloss.Color("#4FC3F7") // Sky cyan
	ColorAccentDim = lipgloss.Color("#7E8CE0") // Dusk violet

	// Graph colors
	ColorGraph = lipgloss.Color("#4FC3F7") // Sky cyan
)

// Thresholds for metric severity levels, in percent.
const (
	WarningThreshold  = 60.0
	CriticalThreshold = 80.0
)

// Base styles for the dashboard
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Background(ColorSurfaceBg).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1).
			MarginRight(1).
			MarginBottom(1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	// Error banner: stale snapshot stays on screen underneath this.
	BannerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorCritical).
			Foreground(ColorCritical).
			Padding(0, 1).
			MarginBottom(1)

	BannerHintStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)
)

// Signal quality badge styles, keyed by the backend's label.
var signalBadgeStyles = map[string]lipgloss.Style{
	"good":   lipgloss.NewStyle().Foreground(ColorDarkBg).Background(ColorHealthy).Padding(0, 1).Bold(true),
	"medium": lipgloss.NewStyle().Foreground(ColorDarkBg).Background(ColorWarning).Padding(0, 1).Bold(true),
	"poor":   lipgloss.NewStyle().Foreground(ColorTextPrimary).Background(ColorCritical).Padding(0, 1).Bold(true),
}

// signalBadgeUnknown styles labels the backend is not documented to send.
// Rendered muted, as received.
var signalBadgeUnknown = lipgloss.NewStyle().
	Foreground(ColorTextMuted).
	Padding(0, 1)

// SignalBadge renders the signal-quality label as a colored badge.
func SignalBadge(quality string) string {
	if style, ok := signalBadgeStyles[quality]; ok {
		return style.Render(strings.ToUpper(quality))
	}
	return signalBadgeUnknown.Render(quality)
}

// MetricColor returns the severity color for a percentage where higher
// is worse (stress). Green below the warning threshold, amber between,
// coral above critical.
func MetricColor(percent float64) lipgloss.Color {
	switch {
	case percent >= CriticalThreshold:
		return ColorCritical
	case percent >= WarningThreshold:
		return ColorWarning
	default:
		return ColorHealthy
	}
}

// GoodMetricColor returns the severity color for a percentage where
// higher is better (focus, engagement, relaxation).
func GoodMetricColor(percent float64) lipgloss.Color {
	switch {
	case percent <= 100-CriticalThreshold:
		return ColorCritical
	case percent <= 100-WarningThreshold:
		return ColorWarning
	default:
		return ColorHealthy
	}
}

// MetricStyle returns a style with the severity color for a higher-is-worse metric.
func MetricStyle(percent float64) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(MetricColor(percent))
}
