package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/techfix-sqaud/valstinecrm-backend/internal/application/services"
	"github.com/techfix-sqaud/valstinecrm-backend/internal/domain/models"
	"github.com/techfix-sqaud/valstinecrm-backend/pkg/constants"
	apperrors "github.com/techfix-sqaud/valstinecrm-backend/pkg/errors"
)

// RecordHandler exposes record storage for custom entities. The entity name
// in the path is resolved against the configuration document at request
// time, so records of a just-created entity are reachable without a restart.
type RecordHandler struct {
	svc *services.ServiceManager
}

func NewRecordHandler(svc *services.ServiceManager) *RecordHandler {
	return &RecordHandler{svc: svc}
}

// ListRecords handles GET /api/data/:entityName
func (h *RecordHandler) ListRecords(c *gin.Context) {
	entityName := c.Param("entityName")
	HandleGetEnvelope(c, "records", func() (interface{}, error) {
		return h.svc.Records.List(entityName)
	})
}

// CreateRecord handles POST /api/data/:entityName
func (h *RecordHandler) CreateRecord(c *gin.Context) {
	entityName := c.Param("entityName")
	var record models.Record
	if !BindJSON(c, &record) {
		return
	}
	HandleCreateEnvelope(c, "record", "Record created successfully", func() (interface{}, error) {
		return h.svc.Records.Create(entityName, record)
	})
}

// BulkCreateRecords handles POST /api/data/:entityName/bulk
func (h *RecordHandler) BulkCreateRecords(c *gin.Context) {
	entityName := c.Param("entityName")
	var batch []models.Record
	if !BindJSON(c, &batch) {
		return
	}
	HandleCreateEnvelope(c, "records", "Records created successfully", func() (interface{}, error) {
		return h.svc.Records.BulkCreate(entityName, batch)
	})
}

// QueryByView handles GET /api/data/:entityName/view/:viewId
func (h *RecordHandler) QueryByView(c *gin.Context) {
	entityName := c.Param("entityName")
	viewID := c.Param("viewId")
	view, records, err := h.svc.Records.QueryByView(viewID)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	if view.EntityType != entityName {
		// A view is only addressable under its own entity's path.
		RespondAppError(c, apperrors.NewNotFoundError("view", viewID))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"view":    view,
		"records": records,
	})
}

// UpdateRecord handles PATCH /api/data/:entityName/:id
func (h *RecordHandler) UpdateRecord(c *gin.Context) {
	entityName := c.Param("entityName")
	id := c.Param(constants.FieldID)
	var patch map[string]interface{}
	if !BindJSON(c, &patch) {
		return
	}
	record, err := h.svc.Records.Update(entityName, id, patch)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		constants.FieldMessage: "Record updated successfully",
		"record":               record,
	})
}

// DeleteRecord handles DELETE /api/data/:entityName/:id
func (h *RecordHandler) DeleteRecord(c *gin.Context) {
	entityName := c.Param("entityName")
	id := c.Param(constants.FieldID)
	HandleDeleteEnvelope(c, "Record deleted successfully", func() error {
		return h.svc.Records.Delete(entityName, id)
	})
}
