package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techfix-sqaud/valstinecrm-backend/internal/domain/models"
	apperrors "github.com/techfix-sqaud/valstinecrm-backend/pkg/errors"
)

func TestAddWorkflow(t *testing.T) {
	sm, _ := newTestManager(t)

	t.Run("appends with defaults", func(t *testing.T) {
		wf, err := sm.Config.AddWorkflow(models.WorkflowConfig{
			Name: "Notify on new invoice", EntityType: "invoice",
			Trigger: models.WorkflowTriggerCreate, Active: true,
		})
		require.NoError(t, err)

		assert.NotEmpty(t, wf.ID)
		assert.NotNil(t, wf.Conditions)
		assert.NotNil(t, wf.Actions)
		assert.Len(t, sm.Config.GetWorkflows(), 1)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		_, err := sm.Config.AddWorkflow(models.WorkflowConfig{
			EntityType: "invoice", Trigger: models.WorkflowTriggerCreate,
		})
		assert.True(t, apperrors.IsValidation(err))

		_, err = sm.Config.AddWorkflow(models.WorkflowConfig{
			Name: "No Entity", Trigger: models.WorkflowTriggerCreate,
		})
		assert.True(t, apperrors.IsValidation(err))

		_, err = sm.Config.AddWorkflow(models.WorkflowConfig{
			Name: "Bad Trigger", EntityType: "invoice", Trigger: "on_sneeze",
		})
		assert.True(t, apperrors.IsValidation(err))
	})
}

func TestUpdateWorkflow(t *testing.T) {
	sm, _ := newTestManager(t)

	wf, err := sm.Config.AddWorkflow(models.WorkflowConfig{
		Name: "Escalate", EntityType: "client",
		Trigger: models.WorkflowTriggerUpdate, Active: true,
	})
	require.NoError(t, err)

	t.Run("can deactivate a rule", func(t *testing.T) {
		require.NoError(t, sm.Config.UpdateWorkflow(wf.ID, map[string]interface{}{
			"active": false,
		}))

		workflows := sm.Config.GetWorkflows()
		require.Len(t, workflows, 1)
		assert.False(t, workflows[0].Active)
		assert.Equal(t, "Escalate", workflows[0].Name)
	})

	t.Run("unknown id is a silent no-op", func(t *testing.T) {
		assert.NoError(t, sm.Config.UpdateWorkflow("no-such-workflow", map[string]interface{}{
			"active": false,
		}))
	})
}

func TestDeleteWorkflow(t *testing.T) {
	sm, _ := newTestManager(t)

	wf, err := sm.Config.AddWorkflow(models.WorkflowConfig{
		Name: "Doomed", EntityType: "client", Trigger: models.WorkflowTriggerDelete,
	})
	require.NoError(t, err)

	require.NoError(t, sm.Config.DeleteWorkflow(wf.ID))
	assert.Empty(t, sm.Config.GetWorkflows())

	require.NoError(t, sm.Config.DeleteWorkflow(wf.ID))
	assert.Empty(t, sm.Config.GetWorkflows())
}
