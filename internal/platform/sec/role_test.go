// Copyright (c) 2026 Jericho Transport. All rights reserved.
// Author: dev@jerichotransport.com

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jerichotransport/freightdesk/internal/platform/sec"
)

/*
TestRole_Can verifies the full authorization matrix.
*/
func TestRole_Can(t *testing.T) {
	tests := []struct {
		name      string
		role      sec.UserRole
		operation sec.Operation
		allowed   bool
	}{
		{"manager_creates_shipments", sec.RoleManager, sec.OpShipmentCreate, true},
		{"manager_registers_users", sec.RoleManager, sec.OpUserRegister, true},
		{"manager_settings", sec.RoleManager, sec.OpSettings, true},

		{"operator_views", sec.RoleOperator, sec.OpShipmentView, true},
		{"operator_creates", sec.RoleOperator, sec.OpShipmentCreate, true},
		{"operator_updates", sec.RoleOperator, sec.OpShipmentUpdate, true},
		{"operator_deletes", sec.RoleOperator, sec.OpShipmentDelete, true},
		{"operator_exports", sec.RoleOperator, sec.OpExport, true},
		{"operator_cannot_register_users", sec.RoleOperator, sec.OpUserRegister, false},
		{"operator_cannot_touch_settings", sec.RoleOperator, sec.OpSettings, false},

		{"accountant_views", sec.RoleAccountant, sec.OpShipmentView, true},
		{"accountant_exports", sec.RoleAccountant, sec.OpExport, true},
		{"accountant_cannot_create", sec.RoleAccountant, sec.OpShipmentCreate, false},
		{"accountant_cannot_update", sec.RoleAccountant, sec.OpShipmentUpdate, false},
		{"accountant_cannot_delete", sec.RoleAccountant, sec.OpShipmentDelete, false},

		{"unknown_role_denied", sec.UserRole("superuser"), sec.OpShipmentView, false},
		{"empty_role_denied", sec.UserRole(""), sec.OpExport, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.role.Can(tt.operation))
		})
	}
}

/*
TestRole_IsValid checks the closed role set.
*/
func TestRole_IsValid(t *testing.T) {
	assert.True(t, sec.RoleManager.IsValid())
	assert.True(t, sec.RoleOperator.IsValid())
	assert.True(t, sec.RoleAccountant.IsValid())
	assert.False(t, sec.UserRole("admin").IsValid())
	assert.False(t, sec.UserRole("").IsValid())
}
