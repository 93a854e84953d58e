package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessConfigClone(t *testing.T) {
	cfg := &BusinessConfig{
		CustomFields: map[string][]CustomField{
			"client": {{ID: "f1", Name: "name", Label: "Name", Type: FieldTypeText}},
		},
		Navigation: []NavigationItem{{ID: "n1", Title: "Home", Path: "/"}},
		Features:   map[string]bool{"pos": true},
	}

	clone := cfg.Clone()
	clone.CustomFields["client"][0].Label = "Mutated"
	clone.Navigation[0].Title = "Mutated"
	clone.Features["pos"] = false

	assert.Equal(t, "Name", cfg.CustomFields["client"][0].Label)
	assert.Equal(t, "Home", cfg.Navigation[0].Title)
	assert.True(t, cfg.Features["pos"])
}

func TestBusinessConfigLookups(t *testing.T) {
	cfg := &BusinessConfig{
		CustomEntities: []CustomEntity{{ID: "e1", Name: "tickets", Label: "Tickets"}},
		Views:          []ViewConfig{{ID: "v1", Name: "All", EntityType: "tickets"}},
	}

	require.NotNil(t, cfg.EntityByName("tickets"))
	assert.Nil(t, cfg.EntityByName("ghosts"))

	require.NotNil(t, cfg.EntityByID("e1"))
	assert.Nil(t, cfg.EntityByID("e2"))

	require.NotNil(t, cfg.ViewByID("v1"))
	assert.Nil(t, cfg.ViewByID("v2"))
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, FieldTypeText.IsValid())
	assert.True(t, FieldTypeMultiSelect.IsValid())
	assert.False(t, FieldType("geo").IsValid())

	assert.True(t, WorkflowTriggerStatusChange.IsValid())
	assert.False(t, WorkflowTrigger("on_sneeze").IsValid())
}

func TestRecordID(t *testing.T) {
	assert.Equal(t, "r1", Record{"id": "r1"}.ID())
	assert.Equal(t, "", Record{}.ID())
	assert.Equal(t, "", Record{"id": 42}.ID())
}
