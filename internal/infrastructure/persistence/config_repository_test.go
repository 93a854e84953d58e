package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techfix-sqaud/valstinecrm-backend/internal/domain/models"
	"github.com/techfix-sqaud/valstinecrm-backend/internal/infrastructure/storage"
	"github.com/techfix-sqaud/valstinecrm-backend/pkg/constants"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestConfigRepositoryLoadDefaults(t *testing.T) {
	repo := NewConfigRepository(newTestStore(t))

	cfg := repo.Load()
	require.NotNil(t, cfg)

	assert.Len(t, cfg.CustomFields[constants.EntityClient], 5)
	assert.Len(t, cfg.CustomFields[constants.EntityInvoice], 5)
	assert.Len(t, cfg.CustomFields[constants.EntityInventory], 4)
	assert.Len(t, cfg.Navigation, 8)
	assert.Len(t, cfg.DashboardWidgets, 4)
	assert.Empty(t, cfg.Views)
	assert.Empty(t, cfg.CustomEntities)
	assert.Equal(t, "Valstine", cfg.Branding.CompanyName)
	assert.Contains(t, cfg.Permissions, "admin")
}

func TestConfigRepositorySaveLoadRoundTrip(t *testing.T) {
	repo := NewConfigRepository(newTestStore(t))

	cfg := repo.Load()
	cfg.Branding.CompanyName = "Acme Repairs"
	cfg.Views = append(cfg.Views, models.ViewConfig{
		ID: "v1", Name: "Open Tickets", EntityType: "tickets",
		Columns: []string{"status"}, Filters: []models.ViewFilter{},
	})
	require.NoError(t, repo.Save(cfg))

	loaded := repo.Load()
	assert.Equal(t, "Acme Repairs", loaded.Branding.CompanyName)
	require.Len(t, loaded.Views, 1)
	assert.Equal(t, "Open Tickets", loaded.Views[0].Name)
	// Untouched sections are still intact.
	assert.Len(t, loaded.Navigation, 8)
}

func TestConfigRepositoryShallowMerge(t *testing.T) {
	t.Run("stored top-level keys override defaults", func(t *testing.T) {
		store := newTestStore(t)
		repo := NewConfigRepository(store)

		partial := []byte(`{"branding":{"companyName":"Partial Co","primaryColor":"#000000","accentColor":"#111111","theme":"dark"}}`)
		require.NoError(t, store.Set(constants.KeyBusinessConfig, partial))

		cfg := repo.Load()
		assert.Equal(t, "Partial Co", cfg.Branding.CompanyName)
		assert.Equal(t, "dark", cfg.Branding.Theme)
		// Keys absent from the stored document keep their defaults.
		assert.Len(t, cfg.Navigation, 8)
		assert.Len(t, cfg.CustomFields[constants.EntityClient], 5)
	})

	t.Run("a stored nested array replaces the default array wholesale", func(t *testing.T) {
		store := newTestStore(t)
		repo := NewConfigRepository(store)

		partial := []byte(`{"navigation":[{"id":"nav-only","title":"Only","path":"/only","icon":"Star","order":1,"visible":true}]}`)
		require.NoError(t, store.Set(constants.KeyBusinessConfig, partial))

		cfg := repo.Load()
		require.Len(t, cfg.Navigation, 1)
		assert.Equal(t, "nav-only", cfg.Navigation[0].ID)
	})
}

func TestConfigRepositoryCorruptDocumentFallsBack(t *testing.T) {
	store := newTestStore(t)
	repo := NewConfigRepository(store)

	require.NoError(t, store.Set(constants.KeyBusinessConfig, []byte(`{not valid json`)))

	cfg := repo.Load()
	require.NotNil(t, cfg)
	assert.Len(t, cfg.Navigation, 8)
	assert.Equal(t, "Valstine", cfg.Branding.CompanyName)
}

func TestConfigRepositoryRaw(t *testing.T) {
	store := newTestStore(t)
	repo := NewConfigRepository(store)

	raw, err := repo.Raw()
	require.NoError(t, err)
	assert.Nil(t, raw)

	require.NoError(t, repo.Save(repo.Load()))

	raw, err = repo.Raw()
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
}
