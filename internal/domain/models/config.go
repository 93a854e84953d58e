package models

import "encoding/json"

// FieldType enumerates the supported custom field types.
type FieldType string

const (
	FieldTypeText        FieldType = "text"
	FieldTypeEmail       FieldType = "email"
	FieldTypePhone       FieldType = "phone"
	FieldTypeNumber      FieldType = "number"
	FieldTypeDate        FieldType = "date"
	FieldTypeSelect      FieldType = "select"
	FieldTypeMultiSelect FieldType = "multiselect"
	FieldTypeBoolean     FieldType = "boolean"
	FieldTypeTextarea    FieldType = "textarea"
)

// IsValid reports whether ft is one of the supported field types.
func (ft FieldType) IsValid() bool {
	switch ft {
	case FieldTypeText, FieldTypeEmail, FieldTypePhone, FieldTypeNumber,
		FieldTypeDate, FieldTypeSelect, FieldTypeMultiSelect,
		FieldTypeBoolean, FieldTypeTextarea:
		return true
	}
	return false
}

// CustomField is one user-defined attribute of an entity type.
// Name is the storage key used on records of that entity type;
// ID is the field's identity inside the configuration document.
type CustomField struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Label        string      `json:"label"`
	Type         FieldType   `json:"type"`
	Required     bool        `json:"required"`
	Options      []string    `json:"options,omitempty"`
	DefaultValue interface{} `json:"defaultValue,omitempty"`
	Order        int         `json:"order"`
	Visible      bool        `json:"visible"`
}

// ViewFilter is a single declarative filter condition on a saved view.
type ViewFilter struct {
	Field    string      `json:"field"`
	Operator string      `json:"operator"` // equals, not_equals, contains, greater_than, less_than
	Value    interface{} `json:"value"`
}

// ViewConfig is a saved list presentation over one entity type.
type ViewConfig struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	EntityType       string       `json:"entityType"`
	Columns          []string     `json:"columns"`
	Filters          []ViewFilter `json:"filters"`
	SortBy           string       `json:"sortBy,omitempty"`
	SortOrder        string       `json:"sortOrder,omitempty"` // asc or desc
	IsDefault        bool         `json:"isDefault"`
	ShowInNavigation bool         `json:"showInNavigation,omitempty"`
	NavigationIcon   string       `json:"navigationIcon,omitempty"`
	NavigationOrder  int          `json:"navigationOrder,omitempty"`
}

// WorkflowTrigger enumerates the events a workflow can be attached to.
type WorkflowTrigger string

const (
	WorkflowTriggerCreate       WorkflowTrigger = "create"
	WorkflowTriggerUpdate       WorkflowTrigger = "update"
	WorkflowTriggerDelete       WorkflowTrigger = "delete"
	WorkflowTriggerStatusChange WorkflowTrigger = "status_change"
)

// IsValid reports whether t is a known workflow trigger.
func (t WorkflowTrigger) IsValid() bool {
	switch t {
	case WorkflowTriggerCreate, WorkflowTriggerUpdate,
		WorkflowTriggerDelete, WorkflowTriggerStatusChange:
		return true
	}
	return false
}

// WorkflowCondition is a stored condition on a workflow rule.
type WorkflowCondition struct {
	Field    string      `json:"field"`
	Operator string      `json:"operator"`
	Value    interface{} `json:"value"`
}

// WorkflowAction is a stored action on a workflow rule.
type WorkflowAction struct {
	Type   string                 `json:"type"`
	Config map[string]interface{} `json:"config,omitempty"`
}

// WorkflowConfig is a declarative automation rule. Conditions and actions
// are persisted and editable but no execution engine evaluates them.
type WorkflowConfig struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	EntityType string              `json:"entityType"`
	Trigger    WorkflowTrigger     `json:"trigger"`
	Conditions []WorkflowCondition `json:"conditions"`
	Actions    []WorkflowAction    `json:"actions"`
	Active     bool                `json:"active"`
}

// NavigationItem is one entry in the application's navigation menu.
// ViewID and EntityType link a generated item back to its source.
type NavigationItem struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Path         string   `json:"path"`
	Icon         string   `json:"icon"`
	Order        int      `json:"order"`
	Visible      bool     `json:"visible"`
	IsCustom     bool     `json:"isCustom,omitempty"`
	ViewID       string   `json:"viewId,omitempty"`
	AllowedRoles []string `json:"allowedRoles,omitempty"`
	EntityType   string   `json:"entityType,omitempty"`
	IsHidden     bool     `json:"isHidden,omitempty"`
}

// WidgetType enumerates the dashboard widget kinds.
type WidgetType string

const (
	WidgetTypeStat      WidgetType = "stat"
	WidgetTypeChart     WidgetType = "chart"
	WidgetTypeActivity  WidgetType = "activity"
	WidgetTypeTasks     WidgetType = "tasks"
	WidgetTypeCustom    WidgetType = "custom"
	WidgetTypeAnalytics WidgetType = "analytics"
)

// WidgetSize enumerates the dashboard tile sizes.
type WidgetSize string

const (
	WidgetSizeSmall  WidgetSize = "small"
	WidgetSizeMedium WidgetSize = "medium"
	WidgetSizeLarge  WidgetSize = "large"
)

// WidgetPosition is advisory grid placement. It is not collision-checked.
type WidgetPosition struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// DashboardWidget is a tile on the dashboard.
type DashboardWidget struct {
	ID       string                 `json:"id"`
	Type     WidgetType             `json:"type"`
	Title    string                 `json:"title"`
	Size     WidgetSize             `json:"size"`
	Position WidgetPosition         `json:"position"`
	Visible  bool                   `json:"visible"`
	Config   map[string]interface{} `json:"config"`
}

// CustomEntity is a user-defined record type (for example "Wholesalers").
// Creating one cascades into a navigation item, a default view and a
// customFields entry mirroring Fields.
type CustomEntity struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Label            string        `json:"label"`
	Fields           []CustomField `json:"fields"`
	ShowInNavigation bool          `json:"showInNavigation"`
	NavigationIcon   string        `json:"navigationIcon,omitempty"`
	NavigationOrder  int           `json:"navigationOrder,omitempty"`
	Visible          bool          `json:"visible"`
}

// RolePermission lists what a role may do per module.
type RolePermission struct {
	Modules   []string `json:"modules"`
	CanCreate bool     `json:"canCreate"`
	CanEdit   bool     `json:"canEdit"`
	CanDelete bool     `json:"canDelete"`
	CanExport bool     `json:"canExport"`
}

// BrandingConfig holds look-and-feel settings.
type BrandingConfig struct {
	CompanyName  string `json:"companyName"`
	LogoURL      string `json:"logoUrl,omitempty"`
	PrimaryColor string `json:"primaryColor"`
	AccentColor  string `json:"accentColor"`
	Theme        string `json:"theme"` // light or dark
}

// LayoutConfig holds global layout settings.
type LayoutConfig struct {
	NavigationStyle  string `json:"navigationStyle"` // sidebar or topbar
	SidebarCollapsed bool   `json:"sidebarCollapsed"`
	Density          string `json:"density"`
	ShowBreadcrumbs  bool   `json:"showBreadcrumbs"`
}

// SecurityConfig holds security-related settings. These are stored
// configuration only; nothing in this service enforces them.
type SecurityConfig struct {
	SessionTimeoutMinutes int  `json:"sessionTimeoutMinutes"`
	PasswordMinLength     int  `json:"passwordMinLength"`
	RequireTwoFactor      bool `json:"requireTwoFactor"`
	AuditLogEnabled       bool `json:"auditLogEnabled"`
}

// BusinessConfig is the root configuration document. The whole document is
// persisted under a single storage key and replaced wholesale on every
// mutation.
type BusinessConfig struct {
	CustomFields     map[string][]CustomField  `json:"customFields"`
	Views            []ViewConfig              `json:"views"`
	Workflows        []WorkflowConfig          `json:"workflows"`
	Navigation       []NavigationItem          `json:"navigation"`
	DashboardWidgets []DashboardWidget         `json:"dashboardWidgets"`
	CustomEntities   []CustomEntity            `json:"customEntities"`
	Permissions      map[string]RolePermission `json:"permissions"`
	Branding         BrandingConfig            `json:"branding"`
	Layout           LayoutConfig              `json:"layout"`
	Security         SecurityConfig            `json:"security"`
	Features         map[string]bool           `json:"features"`
}

// Clone returns a deep copy of the document via a JSON round trip, so a
// mutation can be computed without touching the shared in-memory value.
func (c *BusinessConfig) Clone() *BusinessConfig {
	raw, err := json.Marshal(c)
	if err != nil {
		// A document that made it into memory always marshals; an empty
		// copy is the safest fallback.
		return &BusinessConfig{}
	}
	var out BusinessConfig
	if err := json.Unmarshal(raw, &out); err != nil {
		return &BusinessConfig{}
	}
	return &out
}

// EntityByName returns the custom entity with the given storage name, or nil.
func (c *BusinessConfig) EntityByName(name string) *CustomEntity {
	for i := range c.CustomEntities {
		if c.CustomEntities[i].Name == name {
			return &c.CustomEntities[i]
		}
	}
	return nil
}

// EntityByID returns the custom entity with the given id, or nil.
func (c *BusinessConfig) EntityByID(id string) *CustomEntity {
	for i := range c.CustomEntities {
		if c.CustomEntities[i].ID == id {
			return &c.CustomEntities[i]
		}
	}
	return nil
}

// ViewByID returns the view with the given id, or nil.
func (c *BusinessConfig) ViewByID(id string) *ViewConfig {
	for i := range c.Views {
		if c.Views[i].ID == id {
			return &c.Views[i]
		}
	}
	return nil
}
