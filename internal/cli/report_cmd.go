package cli

import (
	"fmt"
	"os"

	"github.com/classpulse/classpulse/internal/errors"
	"github.com/classpulse/classpulse/internal/report"
	"github.com/classpulse/classpulse/internal/store"
)

// reportCommand renders a recorded session as HTML, or lists sessions
// with --list.
func reportCommand(sessionID int64, outPath, dbFlag string, list bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dbPath := cfg.Record.DBPath
	if dbFlag != "" {
		dbPath = dbFlag
	}

	db, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if list {
		return listSessions(db)
	}

	var sess *store.Session
	if sessionID > 0 {
		sess, err = db.Session(sessionID)
	} else {
		sess, err = db.LatestSession()
	}
	if err != nil {
		return err
	}
	if sess == nil {
		return errors.New(errors.ErrStore,
			"No recorded sessions in "+dbPath,
			"Record one first with 'classpulse record'")
	}

	samples, err := db.Samples(sess.ID)
	if err != nil {
		return err
	}

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrExec,
				"Cannot create report file: "+outPath,
				"Check the directory exists and is writable")
		}
		defer f.Close()
		out = f
	}

	if err := report.Write(out, sess, samples); err != nil {
		return err
	}
	if outPath != "" {
		fmt.Fprintf(os.Stderr, "wrote report for session %d to %s\n", sess.ID, outPath)
	}
	return nil
}

// listSessions prints the recorded sessions, newest first.
func listSessions(db *store.Store) error {
	sessions, err := db.Sessions()
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("no recorded sessions")
		return nil
	}

	fmt.Printf("%-6s %-12s %-20s %s\n", "ID", "ROLE", "STARTED", "BACKEND")
	for _, s := range sessions {
		fmt.Printf("%-6d %-12s %-20s %s\n",
			s.ID, s.Role, s.StartedAt.Local().Format("2006-01-02 15:04:05"), s.BaseURL)
	}
	return nil
}
