package services

import (
	"github.com/techfix-sqaud/valstinecrm-backend/internal/domain/models"
	apperrors "github.com/techfix-sqaud/valstinecrm-backend/pkg/errors"
	"github.com/techfix-sqaud/valstinecrm-backend/pkg/utils"
)

// ==================== Navigation Methods ====================

// GetNavigation returns a detached copy of all navigation items.
func (s *ConfigService) GetNavigation() []models.NavigationItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config.Clone().Navigation
}

// AddNavigationItem appends a navigation entry.
func (s *ConfigService) AddNavigationItem(item models.NavigationItem) (models.NavigationItem, error) {
	if item.Title == "" {
		return item, apperrors.NewValidationError("title", "is required")
	}
	if item.Path == "" {
		return item, apperrors.NewValidationError("path", "is required")
	}
	if item.ID == "" {
		item.ID = utils.GenerateID()
	}

	err := s.mutate(func(cfg *models.BusinessConfig) error {
		cfg.Navigation = append(cfg.Navigation, item)
		return nil
	})
	return item, err
}

// UpdateNavigationItem shallow-merges a patch onto the item with the given
// id. An unknown id is a silent no-op and nothing is persisted.
func (s *ConfigService) UpdateNavigationItem(id string, patch map[string]interface{}) error {
	return s.mutate(func(cfg *models.BusinessConfig) error {
		for i := range cfg.Navigation {
			if cfg.Navigation[i].ID != id {
				continue
			}
			merged, err := utils.ApplyPatch(cfg.Navigation[i], patch)
			if err != nil {
				return apperrors.NewValidationError("navigation", err.Error())
			}
			merged.ID = id
			cfg.Navigation[i] = merged
			return nil
		}
		return errNoChange
	})
}

// DeleteNavigationItem removes the item with the given id. Persists even
// when nothing matched.
func (s *ConfigService) DeleteNavigationItem(id string) error {
	return s.mutate(func(cfg *models.BusinessConfig) error {
		kept := make([]models.NavigationItem, 0, len(cfg.Navigation))
		for _, item := range cfg.Navigation {
			if item.ID != id {
				kept = append(kept, item)
			}
		}
		cfg.Navigation = kept
		return nil
	})
}

// ReorderNavigation rewrites the order of the listed items to match their
// position in ids. Unknown ids are ignored; unlisted items keep their order.
func (s *ConfigService) ReorderNavigation(ids []string) error {
	return s.mutate(func(cfg *models.BusinessConfig) error {
		order := 1
		for _, id := range ids {
			for i := range cfg.Navigation {
				if cfg.Navigation[i].ID == id {
					cfg.Navigation[i].Order = order
					order++
					break
				}
			}
		}
		return nil
	})
}
