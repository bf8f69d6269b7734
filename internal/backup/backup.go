// Package backup takes periodic snapshots of the SQLite database file.
// Snapshots use VACUUM INTO, which produces a compact, consistent copy
// without blocking readers, so losing the live file never costs more than
// one backup interval of data.
package backup

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// Scheduler runs database snapshots on a cron schedule.
type Scheduler struct {
	db       *sql.DB
	dir      string
	schedule string
	cron     *cron.Cron
}

// NewScheduler creates a Scheduler. An empty schedule disables it; Start
// becomes a no-op.
func NewScheduler(db *sql.DB, dir, schedule string) *Scheduler {
	return &Scheduler{
		db:       db,
		dir:      dir,
		schedule: schedule,
	}
}

// Start registers the snapshot job and starts the cron runner.
// Returns an error if the schedule expression does not parse.
func (s *Scheduler) Start() error {
	if s.schedule == "" {
		return nil
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}

	s.cron = cron.New()
	_, err := s.cron.AddFunc(s.schedule, func() {
		path, err := s.Snapshot()
		if err != nil {
			log.Printf("scheduled backup failed: %v", err)
			return
		}
		log.Printf("wrote database backup: %s", path)
	})
	if err != nil {
		return fmt.Errorf("invalid backup schedule %q: %w", s.schedule, err)
	}

	s.cron.Start()
	log.Printf("backup scheduler started: %q -> %s", s.schedule, s.dir)
	return nil
}

// Stop halts the cron runner and waits for a running snapshot to finish.
func (s *Scheduler) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
}

// Snapshot writes one backup file and returns its path. Snapshot names
// carry a timestamp for ordering and a short unique suffix so two snapshots
// in the same second never collide.
func (s *Scheduler) Snapshot() (string, error) {
	name := fmt.Sprintf("ledgerly-%s-%s.db",
		time.Now().UTC().Format("20060102T150405"),
		uuid.NewString()[:8],
	)
	path := filepath.Join(s.dir, name)

	if _, err := s.db.Exec("VACUUM INTO ?", path); err != nil {
		return "", fmt.Errorf("failed to snapshot database: %w", err)
	}

	return path, nil
}
