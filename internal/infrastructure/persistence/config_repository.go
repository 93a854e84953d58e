package persistence

import (
	"encoding/json"
	"log"

	"github.com/techfix-sqaud/valstinecrm-backend/internal/bootstrap"
	"github.com/techfix-sqaud/valstinecrm-backend/internal/domain/models"
	"github.com/techfix-sqaud/valstinecrm-backend/internal/infrastructure/storage"
	"github.com/techfix-sqaud/valstinecrm-backend/pkg/constants"
)

// ConfigRepository bridges the in-memory configuration document and durable
// storage. It is the only type that touches the business-config key.
type ConfigRepository struct {
	store *storage.Store
}

// NewConfigRepository creates a new ConfigRepository
func NewConfigRepository(store *storage.Store) *ConfigRepository {
	return &ConfigRepository{store: store}
}

// Load reads the stored document and shallow-merges it over the defaults:
// top-level keys present in the stored document override the default keys
// verbatim, one level deep. A missing or unparsable document falls back to
// the defaults; parse failures are logged, never surfaced.
//
// The merge is shallow on purpose. A stored nested array (navigation,
// customFields, ...) replaces the default array wholesale, so new default
// entries inside nested arrays do not appear for existing documents.
func (r *ConfigRepository) Load() *models.BusinessConfig {
	defaults := bootstrap.DefaultConfig()

	raw, err := r.store.Get(constants.KeyBusinessConfig)
	if err != nil {
		log.Printf("⚠️  Failed to read stored configuration, using defaults: %v", err)
		return defaults
	}
	if raw == nil {
		return defaults
	}

	var stored map[string]json.RawMessage
	if err := json.Unmarshal(raw, &stored); err != nil {
		log.Printf("⚠️  Stored configuration is not valid JSON, using defaults: %v", err)
		return defaults
	}

	defRaw, err := json.Marshal(defaults)
	if err != nil {
		log.Printf("⚠️  Failed to encode default configuration: %v", err)
		return defaults
	}
	merged := make(map[string]json.RawMessage)
	if err := json.Unmarshal(defRaw, &merged); err != nil {
		log.Printf("⚠️  Failed to decode default configuration: %v", err)
		return defaults
	}
	for k, v := range stored {
		merged[k] = v
	}

	mergedRaw, err := json.Marshal(merged)
	if err != nil {
		log.Printf("⚠️  Failed to merge stored configuration, using defaults: %v", err)
		return defaults
	}
	var cfg models.BusinessConfig
	if err := json.Unmarshal(mergedRaw, &cfg); err != nil {
		log.Printf("⚠️  Stored configuration has an invalid shape, using defaults: %v", err)
		return defaults
	}
	return &cfg
}

// Save serializes the full document and writes it under the config key.
func (r *ConfigRepository) Save(cfg *models.BusinessConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return r.store.Set(constants.KeyBusinessConfig, data)
}

// Raw returns the persisted document bytes, or nil if nothing is stored yet.
func (r *ConfigRepository) Raw() ([]byte, error) {
	return r.store.Get(constants.KeyBusinessConfig)
}

// Subscribe registers fn to run when another process rewrites the stored
// document.
func (r *ConfigRepository) Subscribe(fn func()) {
	r.store.Subscribe(constants.KeyBusinessConfig, fn)
}
