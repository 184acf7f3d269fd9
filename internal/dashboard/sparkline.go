package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ChartPadding is the inset on every edge of the sparkline box, in
// coordinate units.
const ChartPadding = 8.0

// DefaultChartHeight is the coordinate-box height used by the views.
const DefaultChartHeight = 64.0

// Point is a 2D coordinate in the sparkline box. The vertical axis
// grows downward, so high metric values map to small Y.
type Point struct {
	X, Y float64
}

// Geometry is the polyline output of SparkGeometry: a stroked line
// through all samples plus a closed fill area underneath it. The fill
// is the line points extended with the two bottom corners.
type Geometry struct {
	Width  float64
	Height float64
	Line   []Point
	Area   []Point
}

// ChartWidth returns the coordinate-box width for a sample count.
// Denser histories render wider rather than compressed.
func ChartWidth(count int) float64 {
	w := float64(count) * 10
	if w < 240 {
		w = 240
	}
	return w
}

// clamp01 clamps a metric value to [0,1] before coordinate mapping.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// SparkGeometry maps a sequence of [0,1] samples to polyline geometry
// in a width x height box. Sample i lands at an x linearly spaced
// across [padding, width-padding]; a single sample sits at the left
// edge. Values map to y inverted, since the drawing surface's vertical
// axis grows downward while high values must render near the top.
//
// An empty sequence renders one synthetic midpoint sample (0.5) so the
// chart never draws a degenerate empty path. Pure and deterministic.
func SparkGeometry(values []float64, width, height float64) Geometry {
	if len(values) == 0 {
		values = []float64{0.5}
	}

	innerW := width - 2*ChartPadding
	innerH := height - 2*ChartPadding

	// max(1, len-1) keeps the single-sample case at the left edge
	// instead of dividing by zero.
	span := float64(len(values) - 1)
	if span < 1 {
		span = 1
	}

	line := make([]Point, len(values))
	for i, v := range values {
		line[i] = Point{
			X: ChartPadding + float64(i)*innerW/span,
			Y: (1-clamp01(v))*innerH + ChartPadding,
		}
	}

	area := make([]Point, 0, len(line)+2)
	area = append(area, line...)
	area = append(area,
		Point{X: line[len(line)-1].X, Y: height},
		Point{X: line[0].X, Y: height},
	)

	return Geometry{Width: width, Height: height, Line: line, Area: area}
}

// LinePoints returns the stroked line as an SVG polyline points string.
func (g Geometry) LinePoints() string {
	return formatPoints(g.Line)
}

// AreaPoints returns the closed fill as an SVG polygon points string.
func (g Geometry) AreaPoints() string {
	return formatPoints(g.Area)
}

func formatPoints(pts []Point) string {
	var b strings.Builder
	for i, p := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%.1f,%.1f", p.X, p.Y)
	}
	return b.String()
}

// Braille character rendering for the terminal sparkline.
//
// Braille patterns use a 2x4 dot matrix per character. Unicode braille
// starts at U+2800 (empty) and uses bit patterns:
// bit 0 = dot 1, bit 1 = dot 2, bit 2 = dot 3, bit 3 = dot 4,
// bit 4 = dot 5, bit 5 = dot 6, bit 6 = dot 7, bit 7 = dot 8
const brailleBase = '\u2800'

// brailleDots maps row/column to the bit offset for braille pattern
// [row][col] where row is 0-3 (top to bottom) and col is 0-1 (left to right)
var brailleDots = [4][2]uint8{
	{0, 3}, // Row 0: dots 1 and 4
	{1, 4}, // Row 1: dots 2 and 5
	{2, 5}, // Row 2: dots 3 and 6
	{6, 7}, // Row 3: dots 7 and 8
}

// sparklineBlocks are block characters for 8-level vertical resolution (lowest to highest).
var sparklineBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RenderBrailleSparkline renders [0,1] samples as a braille graph.
// Each character covers 2 horizontal samples with 4 vertical levels per
// row. The value range is fixed at [0,1] so successive frames don't
// rescale, and out-of-range samples are clamped. When there are fewer
// samples than the display width the graph fills from the right.
func RenderBrailleSparkline(values []float64, width, height int, color lipgloss.Color) string {
	if len(values) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	totalDots := height * 4
	targetPoints := width * 2

	// Keep only the most recent samples when there are more than fit.
	if len(values) > targetPoints {
		values = values[len(values)-targetPoints:]
	}

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		for j := range grid[i] {
			grid[i][j] = brailleBase
		}
	}

	// Right-align when we have less than full width.
	horizOffset := targetPoints - len(values)

	for i, v := range values {
		dotHeight := int(clamp01(v) * float64(totalDots))
		if dotHeight > totalDots {
			dotHeight = totalDots
		}

		charCol := (i + horizOffset) / 2
		if charCol >= width {
			continue
		}
		subCol := (i + horizOffset) % 2

		// Fill dots from bottom up.
		for dot := 0; dot < dotHeight; dot++ {
			row := height - 1 - (dot / 4)
			if row < 0 {
				continue
			}
			subRow := 3 - (dot % 4)
			bitOffset := brailleDots[subRow][subCol]
			grid[row][charCol] |= rune(1 << bitOffset)
		}
	}

	style := lipgloss.NewStyle().Foreground(color)
	lines := make([]string, 0, height)
	for _, row := range grid {
		lines = append(lines, style.Render(string(row)))
	}
	return strings.Join(lines, "\n")
}

// RenderMiniSparkline renders a single-row sparkline using block
// characters, one per sample, for narrow layouts. Values are clamped
// to [0,1].
func RenderMiniSparkline(values []float64, width int, color lipgloss.Color) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}

	if len(values) > width {
		values = values[len(values)-width:]
	}

	var b strings.Builder
	for _, v := range values {
		idx := int(clamp01(v) * float64(len(sparklineBlocks)-1))
		b.WriteRune(sparklineBlocks[idx])
	}

	return lipgloss.NewStyle().Foreground(color).Render(b.String())
}
