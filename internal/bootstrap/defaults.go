package bootstrap

import (
	"github.com/techfix-sqaud/valstinecrm-backend/internal/domain/models"
	"github.com/techfix-sqaud/valstinecrm-backend/pkg/constants"
)

// DefaultConfig returns the hard-coded default configuration document.
// The persistence layer shallow-merges a stored document over this one, so
// a top-level section added here survives for users whose saved document
// predates it; additions inside nested arrays do not (the stored array wins
// wholesale).
func DefaultConfig() *models.BusinessConfig {
	return &models.BusinessConfig{
		CustomFields: map[string][]models.CustomField{
			constants.EntityClient: {
				{ID: "client-name", Name: "name", Label: "Full Name", Type: models.FieldTypeText, Required: true, Order: 1, Visible: true},
				{ID: "client-email", Name: "email", Label: "Email", Type: models.FieldTypeEmail, Required: true, Order: 2, Visible: true},
				{ID: "client-phone", Name: "phone", Label: "Phone", Type: models.FieldTypePhone, Required: false, Order: 3, Visible: true},
				{ID: "client-address", Name: "address", Label: "Address", Type: models.FieldTypeTextarea, Required: false, Order: 4, Visible: true},
				{ID: "client-notes", Name: "notes", Label: "Notes", Type: models.FieldTypeTextarea, Required: false, Order: 5, Visible: true},
			},
			constants.EntityInvoice: {
				{ID: "invoice-number", Name: "number", Label: "Invoice #", Type: models.FieldTypeText, Required: true, Order: 1, Visible: true},
				{ID: "invoice-client", Name: "client", Label: "Client", Type: models.FieldTypeText, Required: true, Order: 2, Visible: true},
				{ID: "invoice-date", Name: "date", Label: "Date", Type: models.FieldTypeDate, Required: true, Order: 3, Visible: true},
				{ID: "invoice-total", Name: "total", Label: "Total", Type: models.FieldTypeNumber, Required: true, Order: 4, Visible: true},
				{ID: "invoice-status", Name: "status", Label: "Status", Type: models.FieldTypeSelect, Required: true, Options: []string{"draft", "sent", "paid", "overdue"}, Order: 5, Visible: true},
			},
			constants.EntityInventory: {
				{ID: "inventory-sku", Name: "sku", Label: "SKU", Type: models.FieldTypeText, Required: true, Order: 1, Visible: true},
				{ID: "inventory-name", Name: "name", Label: "Item Name", Type: models.FieldTypeText, Required: true, Order: 2, Visible: true},
				{ID: "inventory-quantity", Name: "quantity", Label: "Quantity", Type: models.FieldTypeNumber, Required: true, Order: 3, Visible: true},
				{ID: "inventory-price", Name: "price", Label: "Unit Price", Type: models.FieldTypeNumber, Required: true, Order: 4, Visible: true},
			},
		},
		Views:     []models.ViewConfig{},
		Workflows: []models.WorkflowConfig{},
		Navigation: []models.NavigationItem{
			{ID: "nav-dashboard", Title: "Dashboard", Path: "/", Icon: "LayoutDashboard", Order: 1, Visible: true},
			{ID: "nav-clients", Title: "Clients", Path: "/clients", Icon: "Users", Order: 2, Visible: true},
			{ID: "nav-invoices", Title: "Invoices", Path: "/invoices", Icon: "FileText", Order: 3, Visible: true},
			{ID: "nav-inventory", Title: "Inventory", Path: "/inventory", Icon: "Package", Order: 4, Visible: true},
			{ID: "nav-pos", Title: "Point of Sale", Path: "/pos", Icon: "ShoppingCart", Order: 5, Visible: true},
			{ID: "nav-reports", Title: "Reports", Path: "/reports", Icon: "BarChart3", Order: 6, Visible: true},
			{ID: "nav-ai-tools", Title: "AI Tools", Path: "/ai-tools", Icon: "Sparkles", Order: 7, Visible: true},
			{ID: "nav-settings", Title: "Settings", Path: "/settings", Icon: "Settings", Order: 8, Visible: true},
		},
		DashboardWidgets: []models.DashboardWidget{
			{ID: "widget-revenue", Type: models.WidgetTypeStat, Title: "Revenue", Size: models.WidgetSizeSmall, Position: models.WidgetPosition{X: 0, Y: 0}, Visible: true, Config: map[string]interface{}{"metric": "revenue", "period": "month"}},
			{ID: "widget-clients", Type: models.WidgetTypeStat, Title: "Active Clients", Size: models.WidgetSizeSmall, Position: models.WidgetPosition{X: 1, Y: 0}, Visible: true, Config: map[string]interface{}{"metric": "clients"}},
			{ID: "widget-sales-chart", Type: models.WidgetTypeChart, Title: "Sales Overview", Size: models.WidgetSizeLarge, Position: models.WidgetPosition{X: 0, Y: 1}, Visible: true, Config: map[string]interface{}{"chart": "line", "metric": "sales"}},
			{ID: "widget-activity", Type: models.WidgetTypeActivity, Title: "Recent Activity", Size: models.WidgetSizeMedium, Position: models.WidgetPosition{X: 2, Y: 0}, Visible: true, Config: map[string]interface{}{}},
		},
		CustomEntities: []models.CustomEntity{},
		Permissions: map[string]models.RolePermission{
			"admin": {
				Modules:   []string{"dashboard", "clients", "invoices", "inventory", "pos", "reports", "ai-tools", "settings"},
				CanCreate: true, CanEdit: true, CanDelete: true, CanExport: true,
			},
			"staff": {
				Modules:   []string{"dashboard", "clients", "invoices", "inventory", "pos"},
				CanCreate: true, CanEdit: true, CanDelete: false, CanExport: false,
			},
			"viewer": {
				Modules:   []string{"dashboard", "reports"},
				CanCreate: false, CanEdit: false, CanDelete: false, CanExport: false,
			},
		},
		Branding: models.BrandingConfig{
			CompanyName:  "Valstine",
			PrimaryColor: "#2563eb",
			AccentColor:  "#7c3aed",
			Theme:        "light",
		},
		Layout: models.LayoutConfig{
			NavigationStyle:  "sidebar",
			SidebarCollapsed: false,
			Density:          "comfortable",
			ShowBreadcrumbs:  true,
		},
		Security: models.SecurityConfig{
			SessionTimeoutMinutes: 60,
			PasswordMinLength:     8,
			RequireTwoFactor:      false,
			AuditLogEnabled:       true,
		},
		Features: map[string]bool{
			"pos":           true,
			"repairTickets": true,
			"aiTools":       true,
			"bulkUpload":    true,
			"reports":       true,
		},
	}
}
