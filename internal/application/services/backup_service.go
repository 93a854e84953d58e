package services

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/techfix-sqaud/valstinecrm-backend/internal/infrastructure/persistence"
)

const backupFilePrefix = "business-config-"

// BackupService periodically snapshots the persisted configuration document
// to timestamped files so an admin can recover from a bad bulk edit.
type BackupService struct {
	repo      *persistence.ConfigRepository
	dir       string
	schedule  cron.Schedule
	retention int

	stopChan chan struct{}
	wg       sync.WaitGroup
	mu       sync.Mutex
	running  bool
	stopped  bool
	nextRun  time.Time
}

// NewBackupService parses the cron schedule and prepares the backup
// directory. retention is the number of snapshots kept.
func NewBackupService(repo *persistence.ConfigRepository, dir, scheduleExpr string, retention int) (*BackupService, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	schedule, err := parser.Parse(scheduleExpr)
	if err != nil {
		return nil, fmt.Errorf("invalid backup schedule: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create backup directory: %w", err)
	}
	if retention <= 0 {
		retention = 10
	}
	return &BackupService{
		repo:      repo,
		dir:       dir,
		schedule:  schedule,
		retention: retention,
		stopChan:  make(chan struct{}),
		nextRun:   schedule.Next(time.Now()),
	}, nil
}

// Start begins the backup background loop. Blocks until Stop is called.
func (s *BackupService) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runDue()
		case <-s.stopChan:
			s.wg.Wait()
			log.Println("💾 Backup service stopped")
			return
		}
	}
}

// Stop gracefully stops the backup loop. Safe to call before Start and more
// than once; a loop started later exits immediately.
func (s *BackupService) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.stopped = true
	s.mu.Unlock()

	close(s.stopChan)
}

func (s *BackupService) runDue() {
	s.mu.Lock()
	now := time.Now()
	if now.Before(s.nextRun) {
		s.mu.Unlock()
		return
	}
	s.nextRun = s.schedule.Next(now)
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.Snapshot(); err != nil {
			log.Printf("⚠️  Configuration backup failed: %v", err)
		}
	}()
}

// Snapshot writes the persisted document to a timestamped file and prunes
// snapshots beyond the retention count. Nothing is written while no document
// has been persisted yet.
func (s *BackupService) Snapshot() error {
	raw, err := s.repo.Raw()
	if err != nil {
		return err
	}
	if raw == nil {
		return nil
	}

	name := backupFilePrefix + time.Now().Format("20060102T150405") + ".json"
	if err := os.WriteFile(filepath.Join(s.dir, name), raw, 0o644); err != nil {
		return err
	}
	log.Printf("💾 Configuration snapshot written: %s", name)

	return s.prune()
}

func (s *BackupService) prune() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return err
	}

	var snapshots []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), backupFilePrefix) {
			snapshots = append(snapshots, e.Name())
		}
	}
	if len(snapshots) <= s.retention {
		return nil
	}

	// Timestamped names sort chronologically.
	sort.Strings(snapshots)
	for _, name := range snapshots[:len(snapshots)-s.retention] {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
			return err
		}
	}
	return nil
}
