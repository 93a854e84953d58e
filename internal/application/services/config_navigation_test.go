package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techfix-sqaud/valstinecrm-backend/internal/domain/models"
	apperrors "github.com/techfix-sqaud/valstinecrm-backend/pkg/errors"
)

func TestAddNavigationItem(t *testing.T) {
	sm, _ := newTestManager(t)

	item, err := sm.Config.AddNavigationItem(models.NavigationItem{
		Title: "Suppliers", Path: "/suppliers", Icon: "Truck", Order: 9, Visible: true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Len(t, sm.Config.GetNavigation(), 9)

	_, err = sm.Config.AddNavigationItem(models.NavigationItem{Path: "/no-title"})
	assert.True(t, apperrors.IsValidation(err))

	_, err = sm.Config.AddNavigationItem(models.NavigationItem{Title: "No Path"})
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdateNavigationItem(t *testing.T) {
	sm, _ := newTestManager(t)

	require.NoError(t, sm.Config.UpdateNavigationItem("nav-pos", map[string]interface{}{
		"title":   "Checkout",
		"visible": false,
	}))

	var found models.NavigationItem
	for _, item := range sm.Config.GetNavigation() {
		if item.ID == "nav-pos" {
			found = item
		}
	}
	assert.Equal(t, "Checkout", found.Title)
	assert.False(t, found.Visible)
	assert.Equal(t, "/pos", found.Path)

	// Unknown id is a silent no-op.
	assert.NoError(t, sm.Config.UpdateNavigationItem("nav-ghost", map[string]interface{}{"title": "X"}))
}

func TestDeleteNavigationItem(t *testing.T) {
	sm, _ := newTestManager(t)

	require.NoError(t, sm.Config.DeleteNavigationItem("nav-ai-tools"))
	assert.Len(t, sm.Config.GetNavigation(), 7)

	require.NoError(t, sm.Config.DeleteNavigationItem("nav-ai-tools"))
	assert.Len(t, sm.Config.GetNavigation(), 7)
}

func TestReorderNavigation(t *testing.T) {
	sm, _ := newTestManager(t)

	require.NoError(t, sm.Config.ReorderNavigation([]string{
		"nav-settings", "nav-dashboard", "nav-unknown", "nav-clients",
	}))

	orders := map[string]int{}
	for _, item := range sm.Config.GetNavigation() {
		orders[item.ID] = item.Order
	}
	assert.Equal(t, 1, orders["nav-settings"])
	assert.Equal(t, 2, orders["nav-dashboard"])
	assert.Equal(t, 3, orders["nav-clients"])
	// Items not listed keep their original order.
	assert.Equal(t, 3, orders["nav-invoices"])
}
