// Package constants defines shared constant values used across the service.
package constants

// Pagination defaults
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Context keys set by middleware
const (
	ContextKeyPrincipalID   = "principal_id"
	ContextKeyPrincipalType = "principal_type"
	ContextKeyEmployeeRole  = "employee_role"
)

// Authorization resources
const (
	ResourceCustomers = "customers"
	ResourceEmployees = "employees"
	ResourceServices  = "services"
	ResourceInventory = "inventory"
	ResourceTickets   = "tickets"
)

// Authorization actions
const (
	ActionRead   = "read"
	ActionWrite  = "write"
	ActionDelete = "delete"
)

// Table names
const (
	TableCustomers       = "customers"
	TableEmployees       = "employees"
	TableServices        = "services"
	TableInventoryItems  = "inventory_items"
	TableSerializedParts = "serialized_parts"
	TableTickets         = "tickets"
	TableTicketMechanics = "ticket_mechanics"
	TableTicketServices  = "ticket_services"
	TableTicketParts     = "ticket_parts"
)
