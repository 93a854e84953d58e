package services

import (
	"github.com/techfix-sqaud/valstinecrm-backend/internal/domain/models"
	apperrors "github.com/techfix-sqaud/valstinecrm-backend/pkg/errors"
	"github.com/techfix-sqaud/valstinecrm-backend/pkg/utils"
)

// ==================== View Methods ====================

// GetViews returns a detached copy of all saved views.
func (s *ConfigService) GetViews() []models.ViewConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config.Clone().Views
}

// AddView appends a saved view and synchronizes its derived navigation item.
func (s *ConfigService) AddView(view models.ViewConfig) (models.ViewConfig, error) {
	if view.Name == "" {
		return view, apperrors.NewValidationError("name", "is required")
	}
	if view.EntityType == "" {
		return view, apperrors.NewValidationError("entityType", "is required")
	}
	if view.ID == "" {
		view.ID = utils.GenerateID()
	}
	if view.Columns == nil {
		view.Columns = []string{}
	}
	if view.Filters == nil {
		view.Filters = []models.ViewFilter{}
	}

	err := s.mutate(func(cfg *models.BusinessConfig) error {
		cfg.Views = append(cfg.Views, view)
		syncViewNavigation(cfg, &view)
		return nil
	})
	return view, err
}

// UpdateView shallow-merges a patch onto the view with the given id and
// re-synchronizes its navigation item. An unknown id is a silent no-op.
func (s *ConfigService) UpdateView(id string, patch map[string]interface{}) error {
	return s.mutate(func(cfg *models.BusinessConfig) error {
		for i := range cfg.Views {
			if cfg.Views[i].ID != id {
				continue
			}
			merged, err := utils.ApplyPatch(cfg.Views[i], patch)
			if err != nil {
				return apperrors.NewValidationError("view", err.Error())
			}
			merged.ID = id
			cfg.Views[i] = merged
			syncViewNavigation(cfg, &merged)
			return nil
		}
		return errNoChange
	})
}

// DeleteView removes the view and any navigation item derived from it.
// Persists even when nothing matched.
func (s *ConfigService) DeleteView(id string) error {
	return s.mutate(func(cfg *models.BusinessConfig) error {
		kept := make([]models.ViewConfig, 0, len(cfg.Views))
		for _, v := range cfg.Views {
			if v.ID != id {
				kept = append(kept, v)
			}
		}
		cfg.Views = kept
		removeViewNavigation(cfg, id)
		return nil
	})
}

// syncViewNavigation ensures exactly one navigation entry exists for a view
// flagged showInNavigation (creating it if missing, refreshing title, icon
// and order if present) and that none exists when the flag is cleared.
func syncViewNavigation(cfg *models.BusinessConfig, view *models.ViewConfig) {
	if !view.ShowInNavigation {
		removeViewNavigation(cfg, view.ID)
		return
	}

	icon := view.NavigationIcon
	if icon == "" {
		icon = "List"
	}

	updated := false
	kept := make([]models.NavigationItem, 0, len(cfg.Navigation))
	for _, item := range cfg.Navigation {
		if item.ViewID != view.ID {
			kept = append(kept, item)
			continue
		}
		if updated {
			// Duplicate derived entries collapse back to one.
			continue
		}
		item.Title = view.Name
		item.Icon = icon
		item.Order = view.NavigationOrder
		kept = append(kept, item)
		updated = true
	}
	if !updated {
		kept = append(kept, models.NavigationItem{
			ID:       utils.GenerateID(),
			Title:    view.Name,
			Path:     "/view/" + view.ID,
			Icon:     icon,
			Order:    view.NavigationOrder,
			Visible:  true,
			IsCustom: true,
			ViewID:   view.ID,
		})
	}
	cfg.Navigation = kept
}

func removeViewNavigation(cfg *models.BusinessConfig, viewID string) {
	// Items not derived from a view carry an empty ViewID, so an empty
	// argument must never match them.
	if viewID == "" {
		return
	}
	kept := make([]models.NavigationItem, 0, len(cfg.Navigation))
	for _, item := range cfg.Navigation {
		if item.ViewID != viewID {
			kept = append(kept, item)
		}
	}
	cfg.Navigation = kept
}
