package services

import (
	"path/filepath"

	"github.com/techfix-sqaud/valstinecrm-backend/internal/infrastructure/persistence"
	"github.com/techfix-sqaud/valstinecrm-backend/internal/infrastructure/storage"
)

// ServiceManager orchestrates all services with dependency injection
type ServiceManager struct {
	store *storage.Store

	Config  *ConfigService
	Records *RecordService
	Backup  *BackupService
}

// NewServiceManager creates a new service manager with all dependencies wired
func NewServiceManager(store *storage.Store) *ServiceManager {
	sm := &ServiceManager{store: store}

	configRepo := persistence.NewConfigRepository(store)
	recordRepo := persistence.NewRecordRepository(store)

	sm.Config = NewConfigService(configRepo, recordRepo)
	sm.Records = NewRecordService(recordRepo, sm.Config)

	return sm
}

// EnableBackups wires the scheduled snapshot worker. Snapshots land in a
// backups/ directory next to the stored keys.
func (sm *ServiceManager) EnableBackups(scheduleExpr string, retention int) error {
	backup, err := NewBackupService(
		persistence.NewConfigRepository(sm.store),
		filepath.Join(sm.store.Dir(), "backups"),
		scheduleExpr,
		retention,
	)
	if err != nil {
		return err
	}
	sm.Backup = backup
	return nil
}

// StartBackupWorker starts the backup loop if backups are enabled.
// Call this during server startup.
func (sm *ServiceManager) StartBackupWorker() {
	if sm.Backup != nil {
		go sm.Backup.Start()
	}
}

// StopBackupWorker stops the backup loop gracefully.
// Call this during server shutdown.
func (sm *ServiceManager) StopBackupWorker() {
	if sm.Backup != nil {
		sm.Backup.Stop()
	}
}
