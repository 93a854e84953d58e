package services

import (
	"log"
	"regexp"

	"github.com/techfix-sqaud/valstinecrm-backend/internal/domain/models"
	apperrors "github.com/techfix-sqaud/valstinecrm-backend/pkg/errors"
	"github.com/techfix-sqaud/valstinecrm-backend/pkg/utils"
)

// entityNameRe constrains entity storage names: they become storage keys and
// URL path segments.
var entityNameRe = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// ==================== Custom Entity Methods ====================

// GetCustomEntities returns a detached copy of all user-defined entity types.
func (s *ConfigService) GetCustomEntities() []models.CustomEntity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config.Clone().CustomEntities
}

// GetCustomEntity returns the entity with the given storage name, or nil.
// Record routes resolve entities through this at request time, so a newly
// created entity is reachable immediately.
func (s *ConfigService) GetCustomEntity(name string) *models.CustomEntity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config.Clone().EntityByName(name)
}

// CreateEntity registers a user-defined entity type. One document
// transformation appends the entity, an optional navigation item, a default
// view listing the visible fields as columns, and the customFields entry
// mirroring the entity's fields; a single save persists all four.
func (s *ConfigService) CreateEntity(entity models.CustomEntity) (models.CustomEntity, error) {
	if !entityNameRe.MatchString(entity.Name) {
		return entity, apperrors.NewValidationError("name", "must be a lowercase identifier (letters, digits, '_' or '-')")
	}
	if entity.Label == "" {
		return entity, apperrors.NewValidationError("label", "is required")
	}
	for i := range entity.Fields {
		f := &entity.Fields[i]
		if f.Name == "" {
			return entity, apperrors.NewValidationError("fields", "every field needs a name")
		}
		if !f.Type.IsValid() {
			return entity, apperrors.NewValidationError("fields", "unknown field type '"+string(f.Type)+"' on '"+f.Name+"'")
		}
		if f.ID == "" {
			f.ID = utils.GenerateID()
		}
	}
	if entity.ID == "" {
		entity.ID = utils.GenerateID()
	}
	if entity.Fields == nil {
		entity.Fields = []models.CustomField{}
	}

	err := s.mutate(func(cfg *models.BusinessConfig) error {
		if cfg.EntityByName(entity.Name) != nil {
			return apperrors.NewConflictError("custom entity", "name", entity.Name)
		}

		cfg.CustomEntities = append(cfg.CustomEntities, entity)

		if entity.ShowInNavigation {
			syncEntityNavigation(cfg, &entity)
		}

		columns := make([]string, 0, len(entity.Fields))
		for _, f := range entity.Fields {
			if f.Visible {
				columns = append(columns, f.Name)
			}
		}
		cfg.Views = append(cfg.Views, models.ViewConfig{
			ID:         utils.GenerateID(),
			Name:       "All " + entity.Label,
			EntityType: entity.Name,
			Columns:    columns,
			Filters:    []models.ViewFilter{},
			IsDefault:  true,
		})

		if cfg.CustomFields == nil {
			cfg.CustomFields = make(map[string][]models.CustomField)
		}
		cfg.CustomFields[entity.Name] = entity.Fields
		return nil
	})
	return entity, err
}

// UpdateEntity shallow-merges a patch onto the entity with the given id,
// re-synchronizes its navigation item and mirrors the field list into
// customFields. The storage name is immutable: records and routes key on it.
// An unknown id is a silent no-op.
func (s *ConfigService) UpdateEntity(id string, patch map[string]interface{}) error {
	return s.mutate(func(cfg *models.BusinessConfig) error {
		for i := range cfg.CustomEntities {
			if cfg.CustomEntities[i].ID != id {
				continue
			}
			merged, err := utils.ApplyPatch(cfg.CustomEntities[i], patch)
			if err != nil {
				return apperrors.NewValidationError("entity", err.Error())
			}
			merged.ID = id
			merged.Name = cfg.CustomEntities[i].Name
			cfg.CustomEntities[i] = merged

			syncEntityNavigation(cfg, &merged)
			if cfg.CustomFields == nil {
				cfg.CustomFields = make(map[string][]models.CustomField)
			}
			cfg.CustomFields[merged.Name] = merged.Fields
			return nil
		}
		return errNoChange
	})
}

// DeleteEntity removes the entity and cascades: navigation items referencing
// its entity type, views over it and its customFields entry all go with it.
// The entity's record storage is removed after the document is persisted.
// Persists even when nothing matched.
func (s *ConfigService) DeleteEntity(id string) error {
	var name string
	err := s.mutate(func(cfg *models.BusinessConfig) error {
		kept := make([]models.CustomEntity, 0, len(cfg.CustomEntities))
		for _, e := range cfg.CustomEntities {
			if e.ID == id {
				name = e.Name
				continue
			}
			kept = append(kept, e)
		}
		cfg.CustomEntities = kept

		if name == "" {
			return nil
		}

		nav := make([]models.NavigationItem, 0, len(cfg.Navigation))
		for _, item := range cfg.Navigation {
			if item.EntityType != name {
				nav = append(nav, item)
			}
		}
		cfg.Navigation = nav

		views := make([]models.ViewConfig, 0, len(cfg.Views))
		for _, v := range cfg.Views {
			if v.EntityType != name {
				views = append(views, v)
			}
		}
		cfg.Views = views

		delete(cfg.CustomFields, name)
		return nil
	})
	if err != nil {
		return err
	}

	if name != "" && s.records != nil {
		if rmErr := s.records.Remove(name); rmErr != nil {
			log.Printf("⚠️  Failed to remove record storage for '%s': %v", name, rmErr)
		}
	}
	return nil
}

// syncEntityNavigation mirrors syncViewNavigation for entity-derived items,
// keyed by the item's entityType.
func syncEntityNavigation(cfg *models.BusinessConfig, entity *models.CustomEntity) {
	if !entity.ShowInNavigation {
		kept := make([]models.NavigationItem, 0, len(cfg.Navigation))
		for _, item := range cfg.Navigation {
			if item.EntityType != entity.Name {
				kept = append(kept, item)
			}
		}
		cfg.Navigation = kept
		return
	}

	icon := entity.NavigationIcon
	if icon == "" {
		icon = "Database"
	}

	updated := false
	kept := make([]models.NavigationItem, 0, len(cfg.Navigation))
	for _, item := range cfg.Navigation {
		if item.EntityType != entity.Name {
			kept = append(kept, item)
			continue
		}
		if updated {
			continue
		}
		item.Title = entity.Label
		item.Icon = icon
		item.Order = entity.NavigationOrder
		kept = append(kept, item)
		updated = true
	}
	if !updated {
		kept = append(kept, models.NavigationItem{
			ID:         utils.GenerateID(),
			Title:      entity.Label,
			Path:       "/entity/" + entity.Name,
			Icon:       icon,
			Order:      entity.NavigationOrder,
			Visible:    true,
			IsCustom:   true,
			EntityType: entity.Name,
		})
	}
	cfg.Navigation = kept
}
