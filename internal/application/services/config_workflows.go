package services

import (
	"github.com/techfix-sqaud/valstinecrm-backend/internal/domain/models"
	apperrors "github.com/techfix-sqaud/valstinecrm-backend/pkg/errors"
	"github.com/techfix-sqaud/valstinecrm-backend/pkg/utils"
)

// ==================== Workflow Methods ====================
//
// Workflow rules are stored configuration only. No engine in this service
// evaluates their conditions or actions against entity events.

// GetWorkflows returns a detached copy of all workflow rules.
func (s *ConfigService) GetWorkflows() []models.WorkflowConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config.Clone().Workflows
}

// AddWorkflow appends a workflow rule.
func (s *ConfigService) AddWorkflow(wf models.WorkflowConfig) (models.WorkflowConfig, error) {
	if wf.Name == "" {
		return wf, apperrors.NewValidationError("name", "is required")
	}
	if wf.EntityType == "" {
		return wf, apperrors.NewValidationError("entityType", "is required")
	}
	if !wf.Trigger.IsValid() {
		return wf, apperrors.NewValidationError("trigger", "unknown trigger '"+string(wf.Trigger)+"'")
	}
	if wf.ID == "" {
		wf.ID = utils.GenerateID()
	}
	if wf.Conditions == nil {
		wf.Conditions = []models.WorkflowCondition{}
	}
	if wf.Actions == nil {
		wf.Actions = []models.WorkflowAction{}
	}

	err := s.mutate(func(cfg *models.BusinessConfig) error {
		cfg.Workflows = append(cfg.Workflows, wf)
		return nil
	})
	return wf, err
}

// UpdateWorkflow shallow-merges a patch onto the workflow with the given id.
// An unknown id is a silent no-op and nothing is persisted.
func (s *ConfigService) UpdateWorkflow(id string, patch map[string]interface{}) error {
	return s.mutate(func(cfg *models.BusinessConfig) error {
		for i := range cfg.Workflows {
			if cfg.Workflows[i].ID != id {
				continue
			}
			merged, err := utils.ApplyPatch(cfg.Workflows[i], patch)
			if err != nil {
				return apperrors.NewValidationError("workflow", err.Error())
			}
			merged.ID = id
			cfg.Workflows[i] = merged
			return nil
		}
		return errNoChange
	})
}

// DeleteWorkflow removes the workflow with the given id. Persists even when
// nothing matched.
func (s *ConfigService) DeleteWorkflow(id string) error {
	return s.mutate(func(cfg *models.BusinessConfig) error {
		kept := make([]models.WorkflowConfig, 0, len(cfg.Workflows))
		for _, wf := range cfg.Workflows {
			if wf.ID != id {
				kept = append(kept, wf)
			}
		}
		cfg.Workflows = kept
		return nil
	})
}
