// Package store persists recorded polling sessions in SQLite.
//
// The recorder appends one row per tick, error ticks included, so a
// session replays exactly what the dashboard would have shown. The
// driver is modernc.org/sqlite (pure Go, no cgo).
package store

import (
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"github.com/classpulse/classpulse/internal/errors"
)

// Store wraps the session database.
type Store struct {
	db *sql.DB
}

// Session is one recorded polling run.
type Session struct {
	ID        int64
	Role      string
	BaseURL   string
	StartedAt time.Time
}

// Sample is one recorded tick. For student sessions the four metric
// fields and SignalQuality are set; for instructor sessions the metric
// fields carry the cohort averages and the Students* counts are set.
// Error ticks store only Err.
type Sample struct {
	Seq                int
	TakenAt            time.Time
	Focus              float64
	Stress             float64
	Engagement         float64
	Relaxation         float64
	SignalQuality      string
	Module             string
	StudentsHighStress int
	StudentsTotal      int
	Err                string
}

// Open opens (creating if needed) the session database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrStore,
			"Cannot open session database: "+path,
			"Check the directory exists and is writable")
	}

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS sessions (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  role TEXT NOT NULL,
  base_url TEXT NOT NULL,
  started_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS samples (
  session_id INTEGER NOT NULL REFERENCES sessions(id),
  seq INTEGER NOT NULL,
  taken_at TEXT NOT NULL,
  focus REAL,
  stress REAL,
  engagement REAL,
  relaxation REAL,
  signal_quality TEXT,
  module TEXT,
  students_high_stress INTEGER,
  students_total INTEGER,
  err TEXT,
  PRIMARY KEY (session_id, seq)
);
CREATE INDEX IF NOT EXISTS idx_samples_session ON samples(session_id);
`)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrStore,
			"Cannot create session schema",
			"The database file may be corrupt; remove it and retry")
	}
	return nil
}

// CreateSession registers a new recording run and returns its id.
func (s *Store) CreateSession(role, baseURL string) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO sessions (role, base_url, started_at) VALUES (?, ?, ?)`,
		role, baseURL, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrStore,
			"Cannot create session", "")
	}
	return res.LastInsertId()
}

// AddSample appends one tick to a session.
func (s *Store) AddSample(sessionID int64, sample Sample) error {
	_, err := s.db.Exec(`
INSERT INTO samples (session_id, seq, taken_at, focus, stress, engagement,
                     relaxation, signal_quality, module,
                     students_high_stress, students_total, err)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sessionID, sample.Seq, sample.TakenAt.UTC().Format(time.RFC3339),
		sample.Focus, sample.Stress, sample.Engagement, sample.Relaxation,
		sample.SignalQuality, sample.Module,
		sample.StudentsHighStress, sample.StudentsTotal, sample.Err)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrStore,
			"Cannot record sample", "")
	}
	return nil
}

// Sessions lists recorded sessions, newest first.
func (s *Store) Sessions() ([]Session, error) {
	rows, err := s.db.Query(
		`SELECT id, role, base_url, started_at FROM sessions ORDER BY id DESC`)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrStore,
			"Cannot list sessions", "")
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		var sess Session
		var started string
		if err := rows.Scan(&sess.ID, &sess.Role, &sess.BaseURL, &started); err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrStore,
				"Cannot read session row", "")
		}
		sess.StartedAt, _ = time.Parse(time.RFC3339, started)
		out = append(out, sess)
	}
	return out, rows.Err()
}

// Session fetches a single session by id.
func (s *Store) Session(id int64) (*Session, error) {
	row := s.db.QueryRow(
		`SELECT id, role, base_url, started_at FROM sessions WHERE id = ?`, id)

	var sess Session
	var started string
	if err := row.Scan(&sess.ID, &sess.Role, &sess.BaseURL, &started); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.New(errors.ErrStore,
				"No such session",
				"List recorded sessions with 'classpulse report --list'")
		}
		return nil, errors.WrapWithCode(err, errors.ErrStore,
			"Cannot read session", "")
	}
	sess.StartedAt, _ = time.Parse(time.RFC3339, started)
	return &sess, nil
}

// LatestSession returns the most recently started session, or nil when
// nothing has been recorded.
func (s *Store) LatestSession() (*Session, error) {
	sessions, err := s.Sessions()
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, nil
	}
	return &sessions[0], nil
}

// Samples returns a session's ticks in recording order.
func (s *Store) Samples(sessionID int64) ([]Sample, error) {
	rows, err := s.db.Query(`
SELECT seq, taken_at, focus, stress, engagement, relaxation,
       signal_quality, module, students_high_stress, students_total, err
FROM samples WHERE session_id = ? ORDER BY seq`, sessionID)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrStore,
			"Cannot read samples", "")
	}
	defer rows.Close()

	var out []Sample
	for rows.Next() {
		var sm Sample
		var taken string
		if err := rows.Scan(&sm.Seq, &taken, &sm.Focus, &sm.Stress,
			&sm.Engagement, &sm.Relaxation, &sm.SignalQuality, &sm.Module,
			&sm.StudentsHighStress, &sm.StudentsTotal, &sm.Err); err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrStore,
				"Cannot read sample row", "")
		}
		sm.TakenAt, _ = time.Parse(time.RFC3339, taken)
		out = append(out, sm)
	}
	return out, rows.Err()
}
