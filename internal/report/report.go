// Package report renders a recorded session as a standalone HTML page
// with inline SVG trend charts. No external assets; the file can be
// opened directly or attached to an email.
package report

import (
	"html/template"
	"io"
	"time"

	"github.com/classpulse/classpulse/internal/dashboard"
	"github.com/classpulse/classpulse/internal/errors"
	"github.com/classpulse/classpulse/internal/store"
)

// chart holds one metric's SVG geometry and summary stats for the
// template.
type chart struct {
	Label  string
	Width  float64
	Height float64
	Line   string
	Area   string
	Last   string
	Min    string
	Max    string
	Mean   string
}

// row is one tick in the sample table.
type row struct {
	Seq     int
	TakenAt string
	Summary string
	Err     string
}

// page is the root template context.
type page struct {
	Role      string
	BaseURL   string
	StartedAt string
	Generated string
	Ticks     int
	ErrTicks  int
	Charts    []chart
	Rows      []row
}

// Write renders the session report to w.
func Write(w io.Writer, sess *store.Session, samples []store.Sample) error {
	ctx := buildPage(sess, samples)
	if err := pageTmpl.Execute(w, ctx); err != nil {
		return errors.WrapWithCode(err, errors.ErrExec,
			"Cannot render session report", "")
	}
	return nil
}

func buildPage(sess *store.Session, samples []store.Sample) page {
	p := page{
		Role:      sess.Role,
		BaseURL:   sess.BaseURL,
		StartedAt: sess.StartedAt.Format("2006-01-02 15:04:05 MST"),
		Generated: time.Now().Format("2006-01-02 15:04:05 MST"),
		Ticks:     len(samples),
	}

	type series struct {
		label string
		vals  []float64
	}
	var metrics []series
	if sess.Role == "instructor" {
		metrics = []series{
			{label: "Avg focus"}, {label: "Avg stress"}, {label: "Avg engagement"},
		}
	} else {
		metrics = []series{
			{label: "Focus"}, {label: "Stress"}, {label: "Engagement"}, {label: "Relaxation"},
		}
	}

	for _, sm := range samples {
		if sm.Err != "" {
			p.ErrTicks++
			p.Rows = append(p.Rows, row{
				Seq:     sm.Seq,
				TakenAt: sm.TakenAt.Format("15:04:05"),
				Err:     sm.Err,
			})
			continue
		}

		var vals []float64
		var summary string
		if sess.Role == "instructor" {
			vals = []float64{sm.Focus, sm.Stress, sm.Engagement}
			summary = sm.Module + " · high stress " +
				dashboard.RenderRatio(sm.StudentsHighStress, sm.StudentsTotal)
		} else {
			vals = []float64{sm.Focus, sm.Stress, sm.Engagement, sm.Relaxation}
			summary = "signal " + sm.SignalQuality
		}
		for i := range metrics {
			metrics[i].vals = append(metrics[i].vals, vals[i])
		}
		p.Rows = append(p.Rows, row{
			Seq:     sm.Seq,
			TakenAt: sm.TakenAt.Format("15:04:05"),
			Summary: summary,
		})
	}

	for _, m := range metrics {
		g := dashboard.SparkGeometry(m.vals,
			dashboard.ChartWidth(len(m.vals)), dashboard.DefaultChartHeight)
		c := chart{
			Label:  m.label,
			Width:  g.Width,
			Height: g.Height,
			Line:   g.LinePoints(),
			Area:   g.AreaPoints(),
		}
		if n := len(m.vals); n > 0 {
			min, max, sum := m.vals[0], m.vals[0], 0.0
			for _, v := range m.vals {
				if v < min {
					min = v
				}
				if v > max {
					max = v
				}
				sum += v
			}
			c.Last = dashboard.FormatPercent(m.vals[n-1])
			c.Min = dashboard.FormatPercent(min)
			c.Max = dashboard.FormatPercent(max)
			c.Mean = dashboard.FormatPercent(sum / float64(n))
		}
		p.Charts = append(p.Charts, c)
	}

	return p
}

var pageTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>classpulse {{.Role}} session</title>
<style>
  body { font-family: -apple-system, "Segoe UI", sans-serif; background: #0b0f12; color: #e6edf3; margin: 2rem auto; max-width: 56rem; padding: 0 1rem; }
  h1 { font-size: 1.3rem; }
  .meta { color: #8b949e; font-size: 0.85rem; margin-bottom: 1.5rem; }
  .chart { background: #11161b; border: 1px solid #1f262e; border-radius: 8px; padding: 1rem; margin-bottom: 1rem; }
  .chart h2 { font-size: 0.95rem; margin: 0 0 0.5rem; color: #4fc3f7; }
  .chart .last { float: right; color: #3ddc97; }
  .chart .stats { color: #8b949e; font-size: 0.8rem; margin: 0 0 0.5rem; }
  svg { display: block; width: 100%; height: auto; }
  table { border-collapse: collapse; width: 100%; font-size: 0.85rem; }
  th, td { text-align: left; padding: 0.3rem 0.6rem; border-bottom: 1px solid #1f262e; }
  th { color: #8b949e; font-weight: 600; }
  .err { color: #ff5370; }
</style>
</head>
<body>
<h1>classpulse · {{.Role}} session</h1>
<p class="meta">
  backend {{.BaseURL}} · started {{.StartedAt}} ·
  {{.Ticks}} ticks ({{.ErrTicks}} failed) · generated {{.Generated}}
</p>

{{range .Charts}}
<div class="chart">
  <h2>{{.Label}}{{if .Last}}<span class="last">{{.Last}}</span>{{end}}</h2>
  {{if .Mean}}<p class="stats">min {{.Min}} · mean {{.Mean}} · max {{.Max}}</p>{{end}}
  <svg viewBox="0 0 {{.Width}} {{.Height}}" preserveAspectRatio="none">
    <polygon points="{{.Area}}" fill="#4fc3f7" fill-opacity="0.15"/>
    <polyline points="{{.Line}}" fill="none" stroke="#4fc3f7" stroke-width="2"/>
  </svg>
</div>
{{end}}

<table>
  <tr><th>#</th><th>time</th><th>snapshot</th></tr>
  {{range .Rows}}
  <tr>
    <td>{{.Seq}}</td>
    <td>{{.TakenAt}}</td>
    {{if .Err}}<td class="err">{{.Err}}</td>{{else}}<td>{{.Summary}}</td>{{end}}
  </tr>
  {{end}}
</table>
</body>
</html>
`))
