package services

import (
	"github.com/techfix-sqaud/valstinecrm-backend/internal/domain/models"
	apperrors "github.com/techfix-sqaud/valstinecrm-backend/pkg/errors"
	"github.com/techfix-sqaud/valstinecrm-backend/pkg/utils"
)

// ==================== Dashboard Widget Methods ====================

// GetDashboardWidgets returns a detached copy of all dashboard widgets.
func (s *ConfigService) GetDashboardWidgets() []models.DashboardWidget {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config.Clone().DashboardWidgets
}

// AddDashboardWidget appends a widget. Position is advisory grid placement
// and is not collision-checked.
func (s *ConfigService) AddDashboardWidget(widget models.DashboardWidget) (models.DashboardWidget, error) {
	if widget.Title == "" {
		return widget, apperrors.NewValidationError("title", "is required")
	}
	switch widget.Type {
	case models.WidgetTypeStat, models.WidgetTypeChart, models.WidgetTypeActivity,
		models.WidgetTypeTasks, models.WidgetTypeCustom, models.WidgetTypeAnalytics:
	default:
		return widget, apperrors.NewValidationError("type", "unknown widget type '"+string(widget.Type)+"'")
	}
	if widget.Size == "" {
		widget.Size = models.WidgetSizeMedium
	}
	if widget.ID == "" {
		widget.ID = utils.GenerateID()
	}
	if widget.Config == nil {
		widget.Config = map[string]interface{}{}
	}

	err := s.mutate(func(cfg *models.BusinessConfig) error {
		cfg.DashboardWidgets = append(cfg.DashboardWidgets, widget)
		return nil
	})
	return widget, err
}

// UpdateDashboardWidget shallow-merges a patch onto the widget with the given
// id. An unknown id is a silent no-op and nothing is persisted.
func (s *ConfigService) UpdateDashboardWidget(id string, patch map[string]interface{}) error {
	return s.mutate(func(cfg *models.BusinessConfig) error {
		for i := range cfg.DashboardWidgets {
			if cfg.DashboardWidgets[i].ID != id {
				continue
			}
			merged, err := utils.ApplyPatch(cfg.DashboardWidgets[i], patch)
			if err != nil {
				return apperrors.NewValidationError("widget", err.Error())
			}
			merged.ID = id
			cfg.DashboardWidgets[i] = merged
			return nil
		}
		return errNoChange
	})
}

// DeleteDashboardWidget removes the widget with the given id. Persists even
// when nothing matched.
func (s *ConfigService) DeleteDashboardWidget(id string) error {
	return s.mutate(func(cfg *models.BusinessConfig) error {
		kept := make([]models.DashboardWidget, 0, len(cfg.DashboardWidgets))
		for _, w := range cfg.DashboardWidgets {
			if w.ID != id {
				kept = append(kept, w)
			}
		}
		cfg.DashboardWidgets = kept
		return nil
	})
}
