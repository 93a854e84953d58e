package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/techfix-sqaud/valstinecrm-backend/internal/application/services"
	"github.com/techfix-sqaud/valstinecrm-backend/internal/domain/models"
	"github.com/techfix-sqaud/valstinecrm-backend/pkg/constants"
)

// ConfigHandler exposes the configuration store over REST.
type ConfigHandler struct {
	svc *services.ServiceManager
}

func NewConfigHandler(svc *services.ServiceManager) *ConfigHandler {
	return &ConfigHandler{svc: svc}
}

// GetConfig handles GET /api/config
func (h *ConfigHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"config": h.svc.Config.Config()})
}

// ==================== Custom Field Handlers ====================

// GetCustomFields handles GET /api/config/fields/:entityType
func (h *ConfigHandler) GetCustomFields(c *gin.Context) {
	entityType := c.Param("entityType")
	HandleGetEnvelope(c, "fields", func() (interface{}, error) {
		return h.svc.Config.GetCustomFields(entityType), nil
	})
}

// AddCustomField handles POST /api/config/fields/:entityType
func (h *ConfigHandler) AddCustomField(c *gin.Context) {
	entityType := c.Param("entityType")
	var field models.CustomField
	if !BindJSON(c, &field) {
		return
	}
	HandleCreateEnvelope(c, "field", "Custom field created successfully", func() (interface{}, error) {
		return h.svc.Config.AddCustomField(entityType, field)
	})
}

// UpdateCustomField handles PATCH /api/config/fields/:entityType/:id
func (h *ConfigHandler) UpdateCustomField(c *gin.Context) {
	entityType := c.Param("entityType")
	id := c.Param(constants.FieldID)
	var patch map[string]interface{}
	if !BindJSON(c, &patch) {
		return
	}
	HandleUpdateEnvelope(c, "Custom field updated successfully", func() error {
		return h.svc.Config.UpdateCustomField(entityType, id, patch)
	})
}

// DeleteCustomField handles DELETE /api/config/fields/:entityType/:id
func (h *ConfigHandler) DeleteCustomField(c *gin.Context) {
	entityType := c.Param("entityType")
	id := c.Param(constants.FieldID)
	HandleDeleteEnvelope(c, "Custom field deleted successfully", func() error {
		return h.svc.Config.DeleteCustomField(entityType, id)
	})
}

// ==================== View Handlers ====================

// GetViews handles GET /api/config/views
func (h *ConfigHandler) GetViews(c *gin.Context) {
	HandleGetEnvelope(c, "views", func() (interface{}, error) {
		return h.svc.Config.GetViews(), nil
	})
}

// AddView handles POST /api/config/views
func (h *ConfigHandler) AddView(c *gin.Context) {
	var view models.ViewConfig
	if !BindJSON(c, &view) {
		return
	}
	HandleCreateEnvelope(c, "view", "View created successfully", func() (interface{}, error) {
		return h.svc.Config.AddView(view)
	})
}

// UpdateView handles PATCH /api/config/views/:id
func (h *ConfigHandler) UpdateView(c *gin.Context) {
	id := c.Param(constants.FieldID)
	var patch map[string]interface{}
	if !BindJSON(c, &patch) {
		return
	}
	HandleUpdateEnvelope(c, "View updated successfully", func() error {
		return h.svc.Config.UpdateView(id, patch)
	})
}

// DeleteView handles DELETE /api/config/views/:id
func (h *ConfigHandler) DeleteView(c *gin.Context) {
	id := c.Param(constants.FieldID)
	HandleDeleteEnvelope(c, "View deleted successfully", func() error {
		return h.svc.Config.DeleteView(id)
	})
}

// ==================== Workflow Handlers ====================

// GetWorkflows handles GET /api/config/workflows
func (h *ConfigHandler) GetWorkflows(c *gin.Context) {
	HandleGetEnvelope(c, "workflows", func() (interface{}, error) {
		return h.svc.Config.GetWorkflows(), nil
	})
}

// AddWorkflow handles POST /api/config/workflows
func (h *ConfigHandler) AddWorkflow(c *gin.Context) {
	var wf models.WorkflowConfig
	if !BindJSON(c, &wf) {
		return
	}
	HandleCreateEnvelope(c, "workflow", "Workflow created successfully", func() (interface{}, error) {
		return h.svc.Config.AddWorkflow(wf)
	})
}

// UpdateWorkflow handles PATCH /api/config/workflows/:id
func (h *ConfigHandler) UpdateWorkflow(c *gin.Context) {
	id := c.Param(constants.FieldID)
	var patch map[string]interface{}
	if !BindJSON(c, &patch) {
		return
	}
	HandleUpdateEnvelope(c, "Workflow updated successfully", func() error {
		return h.svc.Config.UpdateWorkflow(id, patch)
	})
}

// DeleteWorkflow handles DELETE /api/config/workflows/:id
func (h *ConfigHandler) DeleteWorkflow(c *gin.Context) {
	id := c.Param(constants.FieldID)
	HandleDeleteEnvelope(c, "Workflow deleted successfully", func() error {
		return h.svc.Config.DeleteWorkflow(id)
	})
}

// ==================== Navigation Handlers ====================

// GetNavigation handles GET /api/config/navigation
func (h *ConfigHandler) GetNavigation(c *gin.Context) {
	HandleGetEnvelope(c, "navigation", func() (interface{}, error) {
		return h.svc.Config.GetNavigation(), nil
	})
}

// AddNavigationItem handles POST /api/config/navigation
func (h *ConfigHandler) AddNavigationItem(c *gin.Context) {
	var item models.NavigationItem
	if !BindJSON(c, &item) {
		return
	}
	HandleCreateEnvelope(c, "item", "Navigation item created successfully", func() (interface{}, error) {
		return h.svc.Config.AddNavigationItem(item)
	})
}

// UpdateNavigationItem handles PATCH /api/config/navigation/:id
func (h *ConfigHandler) UpdateNavigationItem(c *gin.Context) {
	id := c.Param(constants.FieldID)
	var patch map[string]interface{}
	if !BindJSON(c, &patch) {
		return
	}
	HandleUpdateEnvelope(c, "Navigation item updated successfully", func() error {
		return h.svc.Config.UpdateNavigationItem(id, patch)
	})
}

// DeleteNavigationItem handles DELETE /api/config/navigation/:id
func (h *ConfigHandler) DeleteNavigationItem(c *gin.Context) {
	id := c.Param(constants.FieldID)
	HandleDeleteEnvelope(c, "Navigation item deleted successfully", func() error {
		return h.svc.Config.DeleteNavigationItem(id)
	})
}

// ReorderNavigation handles POST /api/config/navigation/reorder
func (h *ConfigHandler) ReorderNavigation(c *gin.Context) {
	var req struct {
		IDs []string `json:"ids" binding:"required"`
	}
	if !BindJSON(c, &req) {
		return
	}
	HandleUpdateEnvelope(c, "Navigation reordered successfully", func() error {
		return h.svc.Config.ReorderNavigation(req.IDs)
	})
}

// ==================== Widget Handlers ====================

// GetDashboardWidgets handles GET /api/config/widgets
func (h *ConfigHandler) GetDashboardWidgets(c *gin.Context) {
	HandleGetEnvelope(c, "widgets", func() (interface{}, error) {
		return h.svc.Config.GetDashboardWidgets(), nil
	})
}

// AddDashboardWidget handles POST /api/config/widgets
func (h *ConfigHandler) AddDashboardWidget(c *gin.Context) {
	var widget models.DashboardWidget
	if !BindJSON(c, &widget) {
		return
	}
	HandleCreateEnvelope(c, "widget", "Widget created successfully", func() (interface{}, error) {
		return h.svc.Config.AddDashboardWidget(widget)
	})
}

// UpdateDashboardWidget handles PATCH /api/config/widgets/:id
func (h *ConfigHandler) UpdateDashboardWidget(c *gin.Context) {
	id := c.Param(constants.FieldID)
	var patch map[string]interface{}
	if !BindJSON(c, &patch) {
		return
	}
	HandleUpdateEnvelope(c, "Widget updated successfully", func() error {
		return h.svc.Config.UpdateDashboardWidget(id, patch)
	})
}

// DeleteDashboardWidget handles DELETE /api/config/widgets/:id
func (h *ConfigHandler) DeleteDashboardWidget(c *gin.Context) {
	id := c.Param(constants.FieldID)
	HandleDeleteEnvelope(c, "Widget deleted successfully", func() error {
		return h.svc.Config.DeleteDashboardWidget(id)
	})
}

// ==================== Section Handlers ====================

// UpdateBranding handles PATCH /api/config/branding
func (h *ConfigHandler) UpdateBranding(c *gin.Context) {
	var patch map[string]interface{}
	if !BindJSON(c, &patch) {
		return
	}
	HandleUpdateEnvelope(c, "Branding updated successfully", func() error {
		return h.svc.Config.UpdateBranding(patch)
	})
}

// UpdateLayout handles PATCH /api/config/layout
func (h *ConfigHandler) UpdateLayout(c *gin.Context) {
	var patch map[string]interface{}
	if !BindJSON(c, &patch) {
		return
	}
	HandleUpdateEnvelope(c, "Layout updated successfully", func() error {
		return h.svc.Config.UpdateLayout(patch)
	})
}

// UpdateSecurity handles PATCH /api/config/security
func (h *ConfigHandler) UpdateSecurity(c *gin.Context) {
	var patch map[string]interface{}
	if !BindJSON(c, &patch) {
		return
	}
	HandleUpdateEnvelope(c, "Security settings updated successfully", func() error {
		return h.svc.Config.UpdateSecurity(patch)
	})
}

// UpdateFeatures handles PATCH /api/config/features
func (h *ConfigHandler) UpdateFeatures(c *gin.Context) {
	var patch map[string]bool
	if !BindJSON(c, &patch) {
		return
	}
	HandleUpdateEnvelope(c, "Feature flags updated successfully", func() error {
		return h.svc.Config.UpdateFeatures(patch)
	})
}

// UpdatePermissions handles PATCH /api/config/permissions
func (h *ConfigHandler) UpdatePermissions(c *gin.Context) {
	var patch map[string]models.RolePermission
	if !BindJSON(c, &patch) {
		return
	}
	HandleUpdateEnvelope(c, "Permissions updated successfully", func() error {
		return h.svc.Config.UpdatePermissions(patch)
	})
}
