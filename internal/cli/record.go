package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/classpulse/classpulse/internal/api"
	"github.com/classpulse/classpulse/internal/errors"
	"github.com/classpulse/classpulse/internal/poll"
	"github.com/classpulse/classpulse/internal/store"
)

// recordCommand polls the backend headlessly and appends every tick to
// the session database. It stops on Ctrl+C, after --duration, or after
// --count ticks, whichever comes first.
func recordCommand(role, durationFlag string, count int, dbFlag string) error {
	if role != "student" && role != "instructor" {
		return errors.New(errors.ErrConfig,
			"Unknown role: "+role,
			"Use --role student or --role instructor")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	view := cfg.Student
	if role == "instructor" {
		view = cfg.Instructor
	}

	var duration time.Duration
	if durationFlag != "" {
		duration, err = time.ParseDuration(durationFlag)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Invalid duration: "+durationFlag,
				"Use a valid duration like 10m or 1h")
		}
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

	sessionID, err := db.CreateSession(role, cfg.BaseURL)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if duration > 0 {
		ctx, cancel = context.WithTimeout(ctx, duration)
		defer cancel()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	fmt.Printf("recording %s session %d from %s to %s (Ctrl+C to stop)\n",
		role, sessionID, cfg.BaseURL, dbPath)

	client := api.NewClient(cfg.BaseURL)
	var ticks, failed int
	if role == "instructor" {
		ticks, failed, err = recordInstructor(ctx, client, db, sessionID, view.Interval, count)
	} else {
		ticks, failed, err = recordStudent(ctx, client, db, sessionID, view.Interval, count)
	}
	if err != nil {
		return err
	}

	fmt.Printf("recorded %d ticks (%d failed) in session %d\n", ticks, failed, sessionID)
	return nil
}

func recordStudent(ctx context.Context, client *api.Client, db *store.Store, sessionID int64, interval time.Duration, count int) (ticks, failed int, err error) {
	loop := poll.NewLoop(client.StudentInsights, interval)
	results := loop.Start(ctx)
	defer loop.Stop()

	for r := range results {
		sample := store.Sample{Seq: ticks, TakenAt: r.At}
		if r.Err != nil {
			sample.Err = r.Err.Error()
			failed++
		} else {
			sample.Focus = r.Snapshot.Focus
			sample.Stress = r.Snapshot.Stress
			sample.Engagement = r.Snapshot.Engagement
			sample.Relaxation = r.Snapshot.Relaxation
			sample.SignalQuality = r.Snapshot.SignalQuality
		}
		if err := db.AddSample(sessionID, sample); err != nil {
			return ticks, failed, err
		}
		ticks++
		if count > 0 && ticks >= count {
			break
		}
	}
	return ticks, failed, nil
}

func recordInstructor(ctx context.Context, client *api.Client, db *store.Store, sessionID int64, interval time.Duration, count int) (ticks, failed int, err error) {
	loop := poll.NewLoop(client.InstructorSummary, interval)
	results := loop.Start(ctx)
	defer loop.Stop()

	for r := range results {
		sample := store.Sample{Seq: ticks, TakenAt: r.At}
		if r.Err != nil {
			sample.Err = r.Err.Error()
			failed++
		} else {
			sample.Focus = r.Snapshot.AvgFocus
			sample.Stress = r.Snapshot.AvgStress
			sample.Engagement = r.Snapshot.AvgEngagement
			sample.Module = r.Snapshot.Module
			sample.StudentsHighStress = r.Snapshot.StudentsHighStress
			sample.StudentsTotal = r.Snapshot.StudentsTotal
		}
		if err := db.AddSample(sessionID, sample); err != nil {
			return ticks, failed, err
		}
		ticks++
		if count > 0 && ticks >= count {
			break
		}
	}
	return ticks, failed, nil
}
