package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classpulse/classpulse/internal/api"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewWithSeed(":0", 42).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out interface{}) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp
}

func TestStudentInsights_WithinDocumentedRanges(t *testing.T) {
	srv := newTestServer(t)

	for i := 0; i < 20; i++ {
		var got api.StudentInsights
		resp := getJSON(t, srv.URL+api.PathStudentInsights, &got)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		assert.GreaterOrEqual(t, got.Focus, 0.4)
		assert.LessOrEqual(t, got.Focus, 0.95)
		assert.GreaterOrEqual(t, got.Stress, 0.2)
		assert.LessOrEqual(t, got.Stress, 0.9)
		assert.GreaterOrEqual(t, got.Engagement, 0.5)
		assert.LessOrEqual(t, got.Engagement, 1.0)
		assert.GreaterOrEqual(t, got.Relaxation, 0.3)
		assert.LessOrEqual(t, got.Relaxation, 0.9)
		assert.True(t, got.KnownSignalQuality(),
			"unexpected signal quality %q", got.SignalQuality)
	}
}

func TestInstructorSummary_WithinDocumentedRanges(t *testing.T) {
	srv := newTestServer(t)

	for i := 0; i < 20; i++ {
		var got api.InstructorSummary
		getJSON(t, srv.URL+api.PathInstructorSummary, &got)

		assert.Contains(t, modules, got.Module)
		assert.GreaterOrEqual(t, got.AvgFocus, 0.5)
		assert.LessOrEqual(t, got.AvgFocus, 0.9)
		assert.GreaterOrEqual(t, got.AvgStress, 0.3)
		assert.LessOrEqual(t, got.AvgStress, 0.8)
		assert.GreaterOrEqual(t, got.AvgEngagement, 0.5)
		assert.LessOrEqual(t, got.AvgEngagement, 0.95)
		assert.GreaterOrEqual(t, got.StudentsHighStress, 5)
		assert.LessOrEqual(t, got.StudentsHighStress, 25)
		assert.Equal(t, 30, got.StudentsTotal)
	}
}

func TestMetrics_TwoDecimalPrecision(t *testing.T) {
	srv := newTestServer(t)

	var got api.StudentInsights
	getJSON(t, srv.URL+api.PathStudentInsights, &got)

	for _, v := range []float64{got.Focus, got.Stress, got.Engagement, got.Relaxation} {
		rounded := float64(int(v*100+0.5)) / 100
		assert.Equal(t, rounded, v, "metrics are rounded to two decimals")
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	var got api.Health
	resp := getJSON(t, srv.URL+api.PathHealth, &got)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", got.Status)
}

func TestSeededServer_Deterministic(t *testing.T) {
	a := httptest.NewServer(NewWithSeed(":0", 7).Handler())
	defer a.Close()
	b := httptest.NewServer(NewWithSeed(":0", 7).Handler())
	defer b.Close()

	var fromA, fromB api.StudentInsights
	getJSON(t, a.URL+api.PathStudentInsights, &fromA)
	getJSON(t, b.URL+api.PathStudentInsights, &fromB)

	assert.Equal(t, fromA, fromB)
}

func TestCORSHeaders(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + api.PathHealth)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+api.PathStudentInsights, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+api.PathStudentInsights, "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestClientAgainstMockServer(t *testing.T) {
	srv := newTestServer(t)

	client := api.NewClient(srv.URL)
	student, err := client.StudentInsights(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, student)

	summary, err := client.InstructorSummary(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, summary)
}
