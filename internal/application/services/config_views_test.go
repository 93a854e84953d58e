package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techfix-sqaud/valstinecrm-backend/internal/domain/models"
	apperrors "github.com/techfix-sqaud/valstinecrm-backend/pkg/errors"
)

func navItemsForView(items []models.NavigationItem, viewID string) []models.NavigationItem {
	var out []models.NavigationItem
	for _, item := range items {
		if item.ViewID == viewID {
			out = append(out, item)
		}
	}
	return out
}

func TestAddView(t *testing.T) {
	sm, _ := newTestManager(t)

	t.Run("without the navigation flag no item is derived", func(t *testing.T) {
		view, err := sm.Config.AddView(models.ViewConfig{
			Name: "Plain", EntityType: "client",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, view.ID)
		assert.NotNil(t, view.Columns)
		assert.NotNil(t, view.Filters)
		assert.Empty(t, navItemsForView(sm.Config.GetNavigation(), view.ID))
	})

	t.Run("with the navigation flag exactly one item is derived", func(t *testing.T) {
		view, err := sm.Config.AddView(models.ViewConfig{
			Name: "VIP Clients", EntityType: "client",
			ShowInNavigation: true, NavigationOrder: 9,
		})
		require.NoError(t, err)

		derived := navItemsForView(sm.Config.GetNavigation(), view.ID)
		require.Len(t, derived, 1)
		assert.Equal(t, "VIP Clients", derived[0].Title)
		assert.Equal(t, "/view/"+view.ID, derived[0].Path)
		assert.Equal(t, "List", derived[0].Icon)
		assert.Equal(t, 9, derived[0].Order)
		assert.True(t, derived[0].IsCustom)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		_, err := sm.Config.AddView(models.ViewConfig{EntityType: "client"})
		assert.True(t, apperrors.IsValidation(err))

		_, err = sm.Config.AddView(models.ViewConfig{Name: "No Entity"})
		assert.True(t, apperrors.IsValidation(err))
	})
}

func TestUpdateViewSyncsNavigation(t *testing.T) {
	sm, _ := newTestManager(t)

	view, err := sm.Config.AddView(models.ViewConfig{
		Name: "Open Invoices", EntityType: "invoice", ShowInNavigation: true,
	})
	require.NoError(t, err)

	t.Run("rename refreshes the derived item", func(t *testing.T) {
		require.NoError(t, sm.Config.UpdateView(view.ID, map[string]interface{}{
			"name": "Unpaid Invoices",
		}))

		derived := navItemsForView(sm.Config.GetNavigation(), view.ID)
		require.Len(t, derived, 1)
		assert.Equal(t, "Unpaid Invoices", derived[0].Title)
	})

	t.Run("clearing the flag removes the derived item", func(t *testing.T) {
		require.NoError(t, sm.Config.UpdateView(view.ID, map[string]interface{}{
			"showInNavigation": false,
		}))
		assert.Empty(t, navItemsForView(sm.Config.GetNavigation(), view.ID))
	})

	t.Run("setting the flag again recreates it", func(t *testing.T) {
		require.NoError(t, sm.Config.UpdateView(view.ID, map[string]interface{}{
			"showInNavigation": true,
		}))
		assert.Len(t, navItemsForView(sm.Config.GetNavigation(), view.ID), 1)
	})

	t.Run("unknown id is a silent no-op", func(t *testing.T) {
		assert.NoError(t, sm.Config.UpdateView("no-such-view", map[string]interface{}{
			"name": "Ghost",
		}))
	})
}

func TestDeleteViewWithEmptyIDKeepsNavigation(t *testing.T) {
	sm, _ := newTestManager(t)

	// Base navigation items carry no ViewID; an empty id must not match them.
	require.NoError(t, sm.Config.DeleteView(""))
	assert.Len(t, sm.Config.GetNavigation(), 8)
}

func TestDeleteViewRemovesDerivedNavigation(t *testing.T) {
	sm, _ := newTestManager(t)

	view, err := sm.Config.AddView(models.ViewConfig{
		Name: "Doomed", EntityType: "client", ShowInNavigation: true,
	})
	require.NoError(t, err)
	require.Len(t, navItemsForView(sm.Config.GetNavigation(), view.ID), 1)

	require.NoError(t, sm.Config.DeleteView(view.ID))

	assert.Empty(t, sm.Config.GetViews())
	assert.Empty(t, navItemsForView(sm.Config.GetNavigation(), view.ID))

	// Deleting again is fine.
	assert.NoError(t, sm.Config.DeleteView(view.ID))
}
