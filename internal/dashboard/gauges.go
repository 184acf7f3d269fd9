package dashboard

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Percent converts a [0,1] metric to a display percentage, clamped.
func Percent(v float64) float64 {
	return clamp01(v) * 100
}

// FormatPercent renders a [0,1] metric as a rounded percentage string.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.0f%%", Percent(v))
}

// RenderGauge renders one metric as a labeled bar with its percentage,
// the terminal stand-in for the web dashboards' donuts. higherIsBetter
// flips the severity coloring: focus wants green at the top of the
// range, stress at the bottom.
func RenderGauge(label string, value float64, width int, higherIsBetter bool) string {
	pct := Percent(value)

	var color lipgloss.Color
	if higherIsBetter {
		color = GoodMetricColor(pct)
	} else {
		color = MetricColor(pct)
	}

	barWidth := width - 18 // label + percentage text
	if barWidth < 8 {
		barWidth = 8
	}

	filled := int(math.Round(pct / 100 * float64(barWidth)))
	if filled > barWidth {
		filled = barWidth
	}

	var bar strings.Builder
	bar.WriteString(lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)))
	bar.WriteString(MutedStyle.Render(strings.Repeat("░", barWidth-filled)))

	labelText := LabelStyle.Width(12).Render(label)
	pctText := lipgloss.NewStyle().Foreground(color).Bold(true).Render(fmt.Sprintf("%3.0f%%", pct))

	return labelText + bar.String() + " " + pctText
}

// RenderRatio renders the high-stress cohort ratio as
// "<high> / <total> (<pct>%)" with the percentage rounded to the
// nearest integer. A zero total renders 0%.
func RenderRatio(high, total int) string {
	pct := 0
	if total > 0 {
		pct = int(math.Round(float64(high) / float64(total) * 100))
	}
	return fmt.Sprintf("%d / %d (%d%%)", high, total, pct)
}
