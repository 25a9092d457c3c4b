// Copyright (c) 2026 Jericho Transport. All rights reserved.
// Author: dev@jerichotransport.com

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
//
// The set is closed: any value outside the three constants is denied
// everything, so a corrupted or legacy role string fails safe.
type UserRole string

const (
	// Full access, including user registration and settings
	RoleManager UserRole = "manager"

	// Day-to-day shipment entry: create, edit, delete, export
	RoleOperator UserRole = "operator"

	// Read-only bookkeeping: dashboard and export, no shipment mutation
	RoleAccountant UserRole = "accountant"
)

// IsValid reports whether the role is one of the known constants.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleManager, RoleOperator, RoleAccountant:
		return true
	}
	return false
}

// # Operations

// Operation identifies a guarded capability of the API.
//
// Authorization is a total function from (role, operation) to allow/deny —
// every endpoint names its operation once at the routing layer instead of
// scattering role-string comparisons through the handlers.
type Operation string

const (
	OpShipmentView   Operation = "shipment:view"
	OpShipmentCreate Operation = "shipment:create"
	OpShipmentUpdate Operation = "shipment:update"
	OpShipmentDelete Operation = "shipment:delete"
	OpExport         Operation = "export"
	OpUserRegister   Operation = "user:register"
	OpSettings       Operation = "settings"
)

// rolePermissions is the complete authorization matrix.
//
// Managers hold every operation. Operators handle the shipment lifecycle and
// exports. Accountants only read and export.
var rolePermissions = map[UserRole]map[Operation]bool{
	RoleManager: {
		OpShipmentView:   true,
		OpShipmentCreate: true,
		OpShipmentUpdate: true,
		OpShipmentDelete: true,
		OpExport:         true,
		OpUserRegister:   true,
		OpSettings:       true,
	},
	RoleOperator: {
		OpShipmentView:   true,
		OpShipmentCreate: true,
		OpShipmentUpdate: true,
		OpShipmentDelete: true,
		OpExport:         true,
	},
	RoleAccountant: {
		OpShipmentView: true,
		OpExport:       true,
	},
}

// Can reports whether the role is authorized for the given operation.
//
// Unknown roles and unknown operations are always denied.
func (r UserRole) Can(operation Operation) bool {
	permissions, ok := rolePermissions[r]
	if !ok {
		return false
	}
	return permissions[operation]
}
