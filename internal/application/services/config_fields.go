package services

import (
	"github.com/techfix-sqaud/valstinecrm-backend/internal/domain/models"
	apperrors "github.com/techfix-sqaud/valstinecrm-backend/pkg/errors"
	"github.com/techfix-sqaud/valstinecrm-backend/pkg/utils"
)

// ==================== Custom Field Methods ====================

// GetCustomFields returns a detached copy of the field list for an entity
// type.
func (s *ConfigService) GetCustomFields(entityType string) []models.CustomField {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fields := s.config.Clone().CustomFields[entityType]
	if fields == nil {
		fields = []models.CustomField{}
	}
	return fields
}

// AddCustomField appends a field to the entity type's field list. An empty id
// is filled in; no uniqueness scan is performed on insert.
func (s *ConfigService) AddCustomField(entityType string, field models.CustomField) (models.CustomField, error) {
	if entityType == "" {
		return field, apperrors.NewValidationError("entityType", "is required")
	}
	if field.Name == "" {
		return field, apperrors.NewValidationError("name", "is required")
	}
	if field.Label == "" {
		return field, apperrors.NewValidationError("label", "is required")
	}
	if !field.Type.IsValid() {
		return field, apperrors.NewValidationError("type", "unknown field type '"+string(field.Type)+"'")
	}
	if field.ID == "" {
		field.ID = utils.GenerateID()
	}

	err := s.mutate(func(cfg *models.BusinessConfig) error {
		if cfg.CustomFields == nil {
			cfg.CustomFields = make(map[string][]models.CustomField)
		}
		cfg.CustomFields[entityType] = append(cfg.CustomFields[entityType], field)
		return nil
	})
	return field, err
}

// UpdateCustomField shallow-merges a patch onto the field with the given id.
// An unknown id is a silent no-op and nothing is persisted.
func (s *ConfigService) UpdateCustomField(entityType, id string, patch map[string]interface{}) error {
	return s.mutate(func(cfg *models.BusinessConfig) error {
		fields := cfg.CustomFields[entityType]
		for i := range fields {
			if fields[i].ID != id {
				continue
			}
			merged, err := utils.ApplyPatch(fields[i], patch)
			if err != nil {
				return apperrors.NewValidationError("field", err.Error())
			}
			merged.ID = id
			fields[i] = merged
			return nil
		}
		return errNoChange
	})
}

// DeleteCustomField removes the field with the given id. The document is
// persisted even when nothing matched, so repeating the call is idempotent.
func (s *ConfigService) DeleteCustomField(entityType, id string) error {
	return s.mutate(func(cfg *models.BusinessConfig) error {
		fields, ok := cfg.CustomFields[entityType]
		if !ok {
			return nil
		}
		kept := make([]models.CustomField, 0, len(fields))
		for _, f := range fields {
			if f.ID != id {
				kept = append(kept, f)
			}
		}
		cfg.CustomFields[entityType] = kept
		return nil
	})
}
