package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_CreatesSchema(t *testing.T) {
	s := openTestStore(t)

	sessions, err := s.Sessions()
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path)
	require.NoError(t, err)
	id, err := s.CreateSession("student", "http://localhost:8765")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Reopening must find the existing data, not recreate the schema.
	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	sess, err := s.Session(id)
	require.NoError(t, err)
	assert.Equal(t, "student", sess.Role)
}

func TestCreateSession(t *testing.T) {
	s := openTestStore(t)

	id, err := s.CreateSession("instructor", "http://lab:9000")
	require.NoError(t, err)
	assert.Positive(t, id)

	sess, err := s.Session(id)
	require.NoError(t, err)
	assert.Equal(t, "instructor", sess.Role)
	assert.Equal(t, "http://lab:9000", sess.BaseURL)
	assert.WithinDuration(t, time.Now(), sess.StartedAt, time.Minute)
}

func TestSession_NotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Session(999)
	assert.Error(t, err)
}

func TestSamples_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	id, err := s.CreateSession("student", "http://localhost:8765")
	require.NoError(t, err)

	taken := time.Date(2026, 8, 23, 10, 30, 0, 0, time.UTC)
	require.NoError(t, s.AddSample(id, Sample{
		Seq: 0, TakenAt: taken,
		Focus: 0.82, Stress: 0.35, Engagement: 0.91, Relaxation: 0.6,
		SignalQuality: "good",
	}))
	require.NoError(t, s.AddSample(id, Sample{
		Seq: 1, TakenAt: taken.Add(2 * time.Second),
		Err: "cannot reach backend at http://localhost:8765/student/insights: connection refused",
	}))

	samples, err := s.Samples(id)
	require.NoError(t, err)
	require.Len(t, samples, 2)

	assert.Equal(t, 0, samples[0].Seq)
	assert.Equal(t, taken, samples[0].TakenAt)
	assert.Equal(t, 0.82, samples[0].Focus)
	assert.Equal(t, "good", samples[0].SignalQuality)
	assert.Empty(t, samples[0].Err)

	assert.Equal(t, 1, samples[1].Seq)
	assert.Contains(t, samples[1].Err, "connection refused")
	assert.Zero(t, samples[1].Focus)
}

func TestSamples_InstructorFields(t *testing.T) {
	s := openTestStore(t)
	id, err := s.CreateSession("instructor", "http://localhost:8765")
	require.NoError(t, err)

	require.NoError(t, s.AddSample(id, Sample{
		Seq: 0, TakenAt: time.Now(),
		Focus: 0.7, Stress: 0.4, Engagement: 0.8,
		Module: "Module 2", StudentsHighStress: 7, StudentsTotal: 30,
	}))

	samples, err := s.Samples(id)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, "Module 2", samples[0].Module)
	assert.Equal(t, 7, samples[0].StudentsHighStress)
	assert.Equal(t, 30, samples[0].StudentsTotal)
}

func TestSamples_OrderedBySeq(t *testing.T) {
	s := openTestStore(t)
	id, err := s.CreateSession("student", "http://localhost:8765")
	require.NoError(t, err)

	// Insert out of order; reads must come back sequenced.
	for _, seq := range []int{2, 0, 1} {
		require.NoError(t, s.AddSample(id, Sample{Seq: seq, TakenAt: time.Now()}))
	}

	samples, err := s.Samples(id)
	require.NoError(t, err)
	require.Len(t, samples, 3)
	for i, sm := range samples {
		assert.Equal(t, i, sm.Seq)
	}
}

func TestSessions_NewestFirst(t *testing.T) {
	s := openTestStore(t)

	first, err := s.CreateSession("student", "http://localhost:8765")
	require.NoError(t, err)
	second, err := s.CreateSession("instructor", "http://localhost:8765")
	require.NoError(t, err)

	sessions, err := s.Sessions()
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, second, sessions[0].ID)
	assert.Equal(t, first, sessions[1].ID)
}

func TestLatestSession(t *testing.T) {
	s := openTestStore(t)

	latest, err := s.LatestSession()
	require.NoError(t, err)
	assert.Nil(t, latest, "empty store has no latest session")

	_, err = s.CreateSession("student", "http://localhost:8765")
	require.NoError(t, err)
	id, err := s.CreateSession("student", "http://localhost:8765")
	require.NoError(t, err)

	latest, err = s.LatestSession()
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, id, latest.ID)
}

func TestSamples_SessionsIsolated(t *testing.T) {
	s := openTestStore(t)
	a, err := s.CreateSession("student", "http://localhost:8765")
	require.NoError(t, err)
	b, err := s.CreateSession("student", "http://localhost:8765")
	require.NoError(t, err)

	require.NoError(t, s.AddSample(a, Sample{Seq: 0, TakenAt: time.Now(), Focus: 0.1}))
	require.NoError(t, s.AddSample(b, Sample{Seq: 0, TakenAt: time.Now(), Focus: 0.9}))

	samples, err := s.Samples(a)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, 0.1, samples[0].Focus)
}
