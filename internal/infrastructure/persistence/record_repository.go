package persistence

import (
	"encoding/json"
	"fmt"

	"github.com/techfix-sqaud/valstinecrm-backend/internal/domain/models"
	"github.com/techfix-sqaud/valstinecrm-backend/internal/infrastructure/storage"
	"github.com/techfix-sqaud/valstinecrm-backend/pkg/constants"
)

// RecordRepository stores the data rows of custom entities, one storage key
// per entity, independent of the configuration document.
type RecordRepository struct {
	store *storage.Store
}

// NewRecordRepository creates a new RecordRepository
func NewRecordRepository(store *storage.Store) *RecordRepository {
	return &RecordRepository{store: store}
}

// List returns all records for the entity, or an empty slice if none are
// stored yet.
func (r *RecordRepository) List(entityName string) ([]models.Record, error) {
	raw, err := r.store.Get(constants.RecordKey(entityName))
	if err != nil {
		return nil, fmt.Errorf("failed to read records for '%s': %w", entityName, err)
	}
	if raw == nil {
		return []models.Record{}, nil
	}

	var records []models.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("stored records for '%s' are corrupt: %w", entityName, err)
	}
	return records, nil
}

// Save replaces the full record array for the entity.
func (r *RecordRepository) Save(entityName string, records []models.Record) error {
	if records == nil {
		records = []models.Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return r.store.Set(constants.RecordKey(entityName), data)
}

// Remove deletes the entity's record storage entirely. Used when a custom
// entity is deleted.
func (r *RecordRepository) Remove(entityName string) error {
	return r.store.Remove(constants.RecordKey(entityName))
}
