package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techfix-sqaud/valstinecrm-backend/internal/domain/models"
	apperrors "github.com/techfix-sqaud/valstinecrm-backend/pkg/errors"
	"github.com/techfix-sqaud/valstinecrm-backend/pkg/utils"
)

func setupTicketsEntity(t *testing.T, sm *ServiceManager) models.CustomEntity {
	t.Helper()
	entity, err := sm.Config.CreateEntity(models.CustomEntity{
		Name:  "tickets",
		Label: "Repair Tickets",
		Fields: []models.CustomField{
			{Name: "title", Label: "Title", Type: models.FieldTypeText, Required: true, Visible: true},
			{Name: "status", Label: "Status", Type: models.FieldTypeSelect, Options: []string{"open", "closed"}, DefaultValue: "open", Visible: true},
			{Name: "priority", Label: "Priority", Type: models.FieldTypeNumber, Visible: true},
		},
		Visible: true,
	})
	require.NoError(t, err)
	return entity
}

func TestRecordCreate(t *testing.T) {
	sm, _ := newTestManager(t)
	setupTicketsEntity(t, sm)

	t.Run("assigns an id and fills declared defaults", func(t *testing.T) {
		record, err := sm.Records.Create("tickets", models.Record{"title": "Broken screen"})
		require.NoError(t, err)

		assert.True(t, utils.IsValidUUID(record.ID()))
		assert.Equal(t, "open", record["status"])

		records, err := sm.Records.List("tickets")
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("rejects a missing required field", func(t *testing.T) {
		_, err := sm.Records.Create("tickets", models.Record{"status": "open"})
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("unknown entity is not found", func(t *testing.T) {
		_, err := sm.Records.Create("ghosts", models.Record{"title": "Boo"})
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestRecordBulkCreate(t *testing.T) {
	sm, _ := newTestManager(t)
	setupTicketsEntity(t, sm)

	t.Run("appends the whole batch", func(t *testing.T) {
		created, err := sm.Records.BulkCreate("tickets", []models.Record{
			{"title": "First"},
			{"title": "Second", "priority": 2},
		})
		require.NoError(t, err)
		assert.Len(t, created, 2)

		records, err := sm.Records.List("tickets")
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("one invalid record rejects the whole batch", func(t *testing.T) {
		_, err := sm.Records.BulkCreate("tickets", []models.Record{
			{"title": "Valid"},
			{"priority": 9},
		})
		assert.True(t, apperrors.IsValidation(err))

		records, err := sm.Records.List("tickets")
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})
}

func TestRecordUpdate(t *testing.T) {
	sm, _ := newTestManager(t)
	setupTicketsEntity(t, sm)

	record, err := sm.Records.Create("tickets", models.Record{"title": "Flickering display"})
	require.NoError(t, err)

	t.Run("merges the patch onto the record", func(t *testing.T) {
		updated, err := sm.Records.Update("tickets", record.ID(), map[string]interface{}{
			"status": "closed",
		})
		require.NoError(t, err)

		assert.Equal(t, "closed", updated["status"])
		assert.Equal(t, "Flickering display", updated["title"])
	})

	t.Run("the id cannot be patched away", func(t *testing.T) {
		updated, err := sm.Records.Update("tickets", record.ID(), map[string]interface{}{
			"id": "hijacked",
		})
		require.NoError(t, err)
		assert.Equal(t, record.ID(), updated.ID())
	})

	t.Run("unknown record is not found", func(t *testing.T) {
		_, err := sm.Records.Update("tickets", "no-such-record", map[string]interface{}{
			"status": "closed",
		})
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestRecordDelete(t *testing.T) {
	sm, _ := newTestManager(t)
	setupTicketsEntity(t, sm)

	record, err := sm.Records.Create("tickets", models.Record{"title": "Doomed"})
	require.NoError(t, err)

	require.NoError(t, sm.Records.Delete("tickets", record.ID()))

	records, err := sm.Records.List("tickets")
	require.NoError(t, err)
	assert.Empty(t, records)

	// Deleting an absent record is a no-op.
	assert.NoError(t, sm.Records.Delete("tickets", record.ID()))
}

func TestQueryByView(t *testing.T) {
	sm, _ := newTestManager(t)
	setupTicketsEntity(t, sm)

	_, err := sm.Records.BulkCreate("tickets", []models.Record{
		{"title": "Cracked case", "priority": 1},
		{"title": "Water damage", "priority": 5},
		{"title": "Fixed keyboard", "status": "closed", "priority": 3},
	})
	require.NoError(t, err)

	t.Run("filters and sorts per the saved view", func(t *testing.T) {
		view, err := sm.Config.AddView(models.ViewConfig{
			Name:       "Open by priority",
			EntityType: "tickets",
			Filters: []models.ViewFilter{
				{Field: "status", Operator: "equals", Value: "open"},
			},
			SortBy:    "priority",
			SortOrder: "desc",
		})
		require.NoError(t, err)

		got, records, err := sm.Records.QueryByView(view.ID)
		require.NoError(t, err)

		assert.Equal(t, view.ID, got.ID)
		require.Len(t, records, 2)
		assert.Equal(t, "Water damage", records[0]["title"])
		assert.Equal(t, "Cracked case", records[1]["title"])
	})

	t.Run("contains filter narrows by substring", func(t *testing.T) {
		view, err := sm.Config.AddView(models.ViewConfig{
			Name:       "Damage reports",
			EntityType: "tickets",
			Filters: []models.ViewFilter{
				{Field: "title", Operator: "contains", Value: "damage"},
			},
		})
		require.NoError(t, err)

		_, records, err := sm.Records.QueryByView(view.ID)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Water damage", records[0]["title"])
	})

	t.Run("unknown view is not found", func(t *testing.T) {
		_, _, err := sm.Records.QueryByView("no-such-view")
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("view over a deleted entity is not found", func(t *testing.T) {
		view, err := sm.Config.AddView(models.ViewConfig{
			Name: "Orphaned", EntityType: "missing-entity",
		})
		require.NoError(t, err)

		_, _, err = sm.Records.QueryByView(view.ID)
		assert.True(t, apperrors.IsNotFound(err))
	})
}
