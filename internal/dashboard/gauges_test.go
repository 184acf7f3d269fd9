package dashboard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected float64
	}{
		{"zero", 0, 0},
		{"middle", 0.5, 50},
		{"full", 1, 100},
		{"below range clamps", -0.2, 0},
		{"above range clamps", 1.7, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Percent(tt.value))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "82%", FormatPercent(0.82))
	assert.Equal(t, "0%", FormatPercent(-1))
	assert.Equal(t, "100%", FormatPercent(2))
}

func TestRenderRatio(t *testing.T) {
	tests := []struct {
		name     string
		high     int
		total    int
		expected string
	}{
		{"quarter", 3, 12, "3 / 12 (25%)"},
		{"thirds", 1, 3, "1 / 3 (33%)"},
		{"rounds half up", 1, 8, "1 / 8 (13%)"},
		{"zero total", 0, 0, "0 / 0 (0%)"},
		{"all stressed", 30, 30, "30 / 30 (100%)"},
		{"none stressed", 0, 30, "0 / 30 (0%)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RenderRatio(tt.high, tt.total))
		})
	}
}

func TestRenderGauge_ContainsLabelAndPercent(t *testing.T) {
	result := RenderGauge("Focus", 0.82, 40, true)
	assert.Contains(t, result, "Focus")
	assert.Contains(t, result, "82%")
	assert.Contains(t, result, "█")
}

func TestRenderGauge_EmptyAndFull(t *testing.T) {
	empty := RenderGauge("Stress", 0, 40, false)
	assert.NotContains(t, empty, "█")
	assert.Contains(t, empty, "░")

	full := RenderGauge("Stress", 1, 40, false)
	assert.NotContains(t, full, "░")
	assert.Contains(t, full, "100%")
}

func TestRenderGauge_NarrowWidthStillRenders(t *testing.T) {
	result := RenderGauge("Focus", 0.5, 1, true)
	assert.Contains(t, result, "50%")
	// Minimum bar width applies.
	assert.GreaterOrEqual(t, strings.Count(result, "█")+strings.Count(result, "░"), 8)
}
