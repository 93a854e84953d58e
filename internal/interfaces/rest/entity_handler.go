package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/techfix-sqaud/valstinecrm-backend/internal/application/services"
	"github.com/techfix-sqaud/valstinecrm-backend/internal/domain/models"
	"github.com/techfix-sqaud/valstinecrm-backend/pkg/constants"
)

// EntityHandler manages user-defined entity types.
type EntityHandler struct {
	svc *services.ServiceManager
}

func NewEntityHandler(svc *services.ServiceManager) *EntityHandler {
	return &EntityHandler{svc: svc}
}

// GetEntities handles GET /api/config/entities
func (h *EntityHandler) GetEntities(c *gin.Context) {
	HandleGetEnvelope(c, "entities", func() (interface{}, error) {
		return h.svc.Config.GetCustomEntities(), nil
	})
}

// CreateEntity handles POST /api/config/entities
func (h *EntityHandler) CreateEntity(c *gin.Context) {
	var entity models.CustomEntity
	if !BindJSON(c, &entity) {
		return
	}
	HandleCreateEnvelope(c, "entity", "Custom entity created successfully", func() (interface{}, error) {
		return h.svc.Config.CreateEntity(entity)
	})
}

// UpdateEntity handles PATCH /api/config/entities/:id
func (h *EntityHandler) UpdateEntity(c *gin.Context) {
	id := c.Param(constants.FieldID)
	var patch map[string]interface{}
	if !BindJSON(c, &patch) {
		return
	}
	HandleUpdateEnvelope(c, "Custom entity updated successfully", func() error {
		return h.svc.Config.UpdateEntity(id, patch)
	})
}

// DeleteEntity handles DELETE /api/config/entities/:id
func (h *EntityHandler) DeleteEntity(c *gin.Context) {
	id := c.Param(constants.FieldID)
	HandleDeleteEnvelope(c, "Custom entity deleted successfully", func() error {
		return h.svc.Config.DeleteEntity(id)
	})
}
