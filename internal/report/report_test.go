package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classpulse/classpulse/internal/store"
)

func studentSession() *store.Session {
	return &store.Session{
		ID:        1,
		Role:      "student",
		BaseURL:   "http://localhost:8765",
		StartedAt: time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC),
	}
}

func TestWrite_StudentReport(t *testing.T) {
	samples := []store.Sample{
		{Seq: 0, TakenAt: time.Now(), Focus: 0.8, Stress: 0.3, Engagement: 0.9, Relaxation: 0.6, SignalQuality: "good"},
		{Seq: 1, TakenAt: time.Now(), Focus: 0.7, Stress: 0.4, Engagement: 0.8, Relaxation: 0.5, SignalQuality: "medium"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, studentSession(), samples))
	html := buf.String()

	assert.Contains(t, html, "student session")
	assert.Contains(t, html, "http://localhost:8765")
	assert.Contains(t, html, "2 ticks (0 failed)")

	// One chart per student metric.
	for _, label := range []string{"Focus", "Stress", "Engagement", "Relaxation"} {
		assert.Contains(t, html, ">"+label+"<")
	}
	assert.Equal(t, 4, strings.Count(html, "<polyline"))
	assert.Equal(t, 4, strings.Count(html, "<polygon"))

	assert.Contains(t, html, "signal good")
	assert.Contains(t, html, "signal medium")

	// Focus summary stats over 0.8 and 0.7.
	assert.Contains(t, html, "min 70% · mean 75% · max 80%")
}

func TestWrite_InstructorReport(t *testing.T) {
	sess := studentSession()
	sess.Role = "instructor"
	samples := []store.Sample{
		{Seq: 0, TakenAt: time.Now(), Focus: 0.7, Stress: 0.4, Engagement: 0.8,
			Module: "Module 2", StudentsHighStress: 3, StudentsTotal: 12},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sess, samples))
	html := buf.String()

	assert.Contains(t, html, "instructor session")
	assert.Contains(t, html, "Module 2")
	assert.Contains(t, html, "3 / 12 (25%)")
	assert.Equal(t, 3, strings.Count(html, "<polyline"), "instructor reports chart three averages")
}

func TestWrite_ErrorTicks(t *testing.T) {
	samples := []store.Sample{
		{Seq: 0, TakenAt: time.Now(), Focus: 0.8, Stress: 0.3, Engagement: 0.9, Relaxation: 0.6, SignalQuality: "good"},
		{Seq: 1, TakenAt: time.Now(), Err: "backend returned 500 Internal Server Error"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, studentSession(), samples))
	html := buf.String()

	assert.Contains(t, html, "2 ticks (1 failed)")
	assert.Contains(t, html, "backend returned 500")
}

func TestWrite_EmptySession(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, studentSession(), nil))
	html := buf.String()

	// No samples still renders valid charts via the synthetic midpoint.
	assert.Contains(t, html, "0 ticks (0 failed)")
	assert.Equal(t, 4, strings.Count(html, "<polyline"))
}

func TestWrite_EscapesErrorText(t *testing.T) {
	samples := []store.Sample{
		{Seq: 0, TakenAt: time.Now(), Err: `invalid response from x: <script>alert(1)</script>`},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, studentSession(), samples))
	html := buf.String()

	assert.NotContains(t, html, "<script>alert")
	assert.Contains(t, html, "&lt;script&gt;")
}
