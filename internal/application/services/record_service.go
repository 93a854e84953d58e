package services

import (
	"sort"
	"strings"
	"sync"

	"github.com/techfix-sqaud/valstinecrm-backend/internal/domain/models"
	"github.com/techfix-sqaud/valstinecrm-backend/internal/infrastructure/persistence"
	apperrors "github.com/techfix-sqaud/valstinecrm-backend/pkg/errors"
	"github.com/techfix-sqaud/valstinecrm-backend/pkg/expression"
	"github.com/techfix-sqaud/valstinecrm-backend/pkg/utils"
)

// RecordService stores and retrieves the data rows of custom entities.
// Single-record writes are read-all, transform, write-all: record counts per
// entity are expected to be small and this service is the only writer.
type RecordService struct {
	mu     sync.Mutex
	repo   *persistence.RecordRepository
	config *ConfigService
	engine *expression.Engine
}

// NewRecordService creates a new RecordService
func NewRecordService(repo *persistence.RecordRepository, config *ConfigService) *RecordService {
	return &RecordService{
		repo:   repo,
		config: config,
		engine: expression.NewEngine(),
	}
}

// resolveEntity looks the entity up in the configuration document at request
// time, so records of a just-created entity are reachable without a restart.
func (s *RecordService) resolveEntity(entityName string) (*models.CustomEntity, error) {
	entity := s.config.GetCustomEntity(entityName)
	if entity == nil {
		return nil, apperrors.NewNotFoundError("custom entity", entityName)
	}
	return entity, nil
}

// List returns all records for the entity, or empty if none are stored yet.
func (s *RecordService) List(entityName string) ([]models.Record, error) {
	if _, err := s.resolveEntity(entityName); err != nil {
		return nil, err
	}
	return s.repo.List(entityName)
}

// Create validates the record against the entity's field definitions, fills
// in declared defaults and an id, and appends it.
func (s *RecordService) Create(entityName string, record models.Record) (models.Record, error) {
	entity, err := s.resolveEntity(entityName)
	if err != nil {
		return nil, err
	}
	record, err = prepareRecord(entity, record)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.repo.List(entityName)
	if err != nil {
		return nil, err
	}
	records = append(records, record)
	if err := s.repo.Save(entityName, records); err != nil {
		return nil, apperrors.NewInternalError("failed to persist records", err)
	}
	return record, nil
}

// BulkCreate validates and appends a batch of records in one write. The
// batch is all-or-nothing: one invalid record rejects the whole call.
func (s *RecordService) BulkCreate(entityName string, batch []models.Record) ([]models.Record, error) {
	entity, err := s.resolveEntity(entityName)
	if err != nil {
		return nil, err
	}

	prepared := make([]models.Record, 0, len(batch))
	for _, record := range batch {
		r, err := prepareRecord(entity, record)
		if err != nil {
			return nil, err
		}
		prepared = append(prepared, r)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.repo.List(entityName)
	if err != nil {
		return nil, err
	}
	records = append(records, prepared...)
	if err := s.repo.Save(entityName, records); err != nil {
		return nil, apperrors.NewInternalError("failed to persist records", err)
	}
	return prepared, nil
}

// Update shallow-merges a patch onto the record with the given id.
func (s *RecordService) Update(entityName, id string, patch map[string]interface{}) (models.Record, error) {
	if _, err := s.resolveEntity(entityName); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.repo.List(entityName)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID() != id {
			continue
		}
		updated := records[i].Clone()
		for k, v := range patch {
			updated[k] = v
		}
		updated["id"] = id
		records[i] = updated
		if err := s.repo.Save(entityName, records); err != nil {
			return nil, apperrors.NewInternalError("failed to persist records", err)
		}
		return updated, nil
	}
	return nil, apperrors.NewNotFoundError("record", id)
}

// Delete removes the record with the given id. Deleting an absent record is
// a no-op; the array is rewritten either way.
func (s *RecordService) Delete(entityName, id string) error {
	if _, err := s.resolveEntity(entityName); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.repo.List(entityName)
	if err != nil {
		return err
	}
	kept := make([]models.Record, 0, len(records))
	for _, r := range records {
		if r.ID() != id {
			kept = append(kept, r)
		}
	}
	if err := s.repo.Save(entityName, kept); err != nil {
		return apperrors.NewInternalError("failed to persist records", err)
	}
	return nil
}

// QueryByView evaluates a saved view: its filters narrow the entity's
// records (all conditions must hold) and sortBy/sortOrder arrange the result.
func (s *RecordService) QueryByView(viewID string) (*models.ViewConfig, []models.Record, error) {
	cfg := s.config.Config()
	view := cfg.ViewByID(viewID)
	if view == nil {
		return nil, nil, apperrors.NewNotFoundError("view", viewID)
	}
	if cfg.EntityByName(view.EntityType) == nil {
		return nil, nil, apperrors.NewNotFoundError("custom entity", view.EntityType)
	}

	records, err := s.repo.List(view.EntityType)
	if err != nil {
		return nil, nil, err
	}

	matched := make([]models.Record, 0, len(records))
	for _, record := range records {
		ok, err := s.matchAll(record, view.Filters)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("filters", err.Error())
		}
		if ok {
			matched = append(matched, record)
		}
	}

	sortRecords(matched, view.SortBy, view.SortOrder)
	return view, matched, nil
}

func (s *RecordService) matchAll(record models.Record, filters []models.ViewFilter) (bool, error) {
	for _, f := range filters {
		ok, err := s.engine.MatchFilter(record[f.Field], f.Operator, f.Value)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// sortRecords orders records by a field, numerically when both values are
// numbers and lexicographically otherwise. The sort is stable so equal keys
// keep their stored order.
func sortRecords(records []models.Record, sortBy, sortOrder string) {
	if sortBy == "" {
		return
	}
	desc := strings.EqualFold(sortOrder, "desc")

	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i][sortBy], records[j][sortBy]
		var less bool
		fa, aOK := utils.ToFloat(a)
		fb, bOK := utils.ToFloat(b)
		if aOK && bOK {
			less = fa < fb
		} else {
			less = utils.ToString(a) < utils.ToString(b)
		}
		if desc {
			return !less && !equalValues(a, b)
		}
		return less
	})
}

func equalValues(a, b interface{}) bool {
	fa, aOK := utils.ToFloat(a)
	fb, bOK := utils.ToFloat(b)
	if aOK && bOK {
		return fa == fb
	}
	return utils.ToString(a) == utils.ToString(b)
}

// prepareRecord enforces required fields, applies declared defaults and
// assigns an id.
func prepareRecord(entity *models.CustomEntity, record models.Record) (models.Record, error) {
	out := record.Clone()
	if out == nil {
		out = models.Record{}
	}

	for _, f := range entity.Fields {
		val, present := out[f.Name]
		if !present || val == nil || utils.ToString(val) == "" {
			if f.DefaultValue != nil {
				out[f.Name] = f.DefaultValue
				continue
			}
			if f.Required {
				return nil, apperrors.NewValidationError(f.Name, "is required")
			}
		}
	}

	if out.ID() == "" {
		out["id"] = utils.GenerateID()
	}
	return out, nil
}
