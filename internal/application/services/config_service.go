package services

import (
	"errors"
	"log"
	"sync"

	"github.com/techfix-sqaud/valstinecrm-backend/internal/domain/models"
	"github.com/techfix-sqaud/valstinecrm-backend/internal/infrastructure/persistence"
	apperrors "github.com/techfix-sqaud/valstinecrm-backend/pkg/errors"
	"github.com/techfix-sqaud/valstinecrm-backend/pkg/utils"
)

// errNoChange signals that a mutation matched nothing. The call is treated as
// a successful no-op and the document is not rewritten.
var errNoChange = errors.New("no change")

// ConfigService is the typed mutation surface over the configuration
// document. Every mutation computes a new document from the current one,
// persists it, then swaps the shared in-memory value. Exactly one in-memory
// holder exists per instance.
type ConfigService struct {
	mu      sync.RWMutex
	repo    *persistence.ConfigRepository
	records *persistence.RecordRepository
	config  *models.BusinessConfig
}

// NewConfigService loads the persisted document (merged over defaults) and
// subscribes to external storage changes.
func NewConfigService(repo *persistence.ConfigRepository, records *persistence.RecordRepository) *ConfigService {
	s := &ConfigService{
		repo:    repo,
		records: records,
	}
	s.config = repo.Load()
	repo.Subscribe(s.RefreshCache)
	return s
}

// Config returns a copy of the current document. Callers never share the
// in-memory value, so a held copy cannot diverge from what a later read sees.
func (s *ConfigService) Config() *models.BusinessConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config.Clone()
}

// RefreshCache re-reads the persisted document. Called when another process
// rewrites the storage key.
func (s *ConfigService) RefreshCache() {
	cfg := s.repo.Load()
	s.mu.Lock()
	s.config = cfg
	s.mu.Unlock()
	log.Println("📦 Configuration document reloaded from storage")
}

// mutate runs apply against a copy of the current document, persists the
// result and swaps the shared value. The in-memory document only advances
// after the write succeeds, so a storage failure cannot leave memory ahead
// of persisted state. An errNoChange from apply skips the write entirely.
func (s *ConfigService) mutate(apply func(cfg *models.BusinessConfig) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.config.Clone()
	if err := apply(next); err != nil {
		if errors.Is(err, errNoChange) {
			return nil
		}
		return err
	}

	if err := s.repo.Save(next); err != nil {
		return apperrors.NewInternalError("failed to persist configuration", err)
	}
	s.config = next
	return nil
}

// ==================== Section Patches ====================

// UpdateBranding shallow-merges a partial branding patch.
func (s *ConfigService) UpdateBranding(patch map[string]interface{}) error {
	return s.mutate(func(cfg *models.BusinessConfig) error {
		merged, err := utils.ApplyPatch(cfg.Branding, patch)
		if err != nil {
			return apperrors.NewValidationError("branding", err.Error())
		}
		cfg.Branding = merged
		return nil
	})
}

// UpdateLayout shallow-merges a partial layout patch.
func (s *ConfigService) UpdateLayout(patch map[string]interface{}) error {
	return s.mutate(func(cfg *models.BusinessConfig) error {
		merged, err := utils.ApplyPatch(cfg.Layout, patch)
		if err != nil {
			return apperrors.NewValidationError("layout", err.Error())
		}
		cfg.Layout = merged
		return nil
	})
}

// UpdateSecurity shallow-merges a partial security patch.
func (s *ConfigService) UpdateSecurity(patch map[string]interface{}) error {
	return s.mutate(func(cfg *models.BusinessConfig) error {
		merged, err := utils.ApplyPatch(cfg.Security, patch)
		if err != nil {
			return apperrors.NewValidationError("security", err.Error())
		}
		cfg.Security = merged
		return nil
	})
}

// UpdateFeatures merges feature flags; keys present in patch override.
func (s *ConfigService) UpdateFeatures(patch map[string]bool) error {
	return s.mutate(func(cfg *models.BusinessConfig) error {
		if cfg.Features == nil {
			cfg.Features = make(map[string]bool)
		}
		for k, v := range patch {
			cfg.Features[k] = v
		}
		return nil
	})
}

// UpdatePermissions replaces the permission sets of the roles present in
// patch; other roles are untouched.
func (s *ConfigService) UpdatePermissions(patch map[string]models.RolePermission) error {
	return s.mutate(func(cfg *models.BusinessConfig) error {
		if cfg.Permissions == nil {
			cfg.Permissions = make(map[string]models.RolePermission)
		}
		for role, perm := range patch {
			cfg.Permissions[role] = perm
		}
		return nil
	})
}
