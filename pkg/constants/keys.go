package constants

import "fmt"

// Storage keys. The whole configuration document lives under a single key;
// each custom entity's records live under their own key.
const (
	KeyBusinessConfig = "business-config"

	recordKeyFormat = "entity_%s_records"
)

// RecordKey returns the storage key holding the record array for an entity.
func RecordKey(entityName string) string {
	return fmt.Sprintf(recordKeyFormat, entityName)
}

// Built-in entity types that ship with default field sets.
const (
	EntityClient    = "client"
	EntityInvoice   = "invoice"
	EntityInventory = "inventory"
)

// Response envelope keys shared by the REST handlers.
const (
	FieldID      = "id"
	FieldMessage = "message"

	ResponseError = "error"
)

// HeaderAuthorization is kept for the CORS allow list; this service does not
// enforce authentication.
const HeaderAuthorization = "Authorization"
