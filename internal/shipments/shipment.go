// Copyright (c) 2026 Jericho Transport. All rights reserved.
// Author: dev@jerichotransport.com

/*
Package shipments implements the shipment tracking core of Freightdesk.

A shipment is one customs movement (import or export) handled by the Jericho
Transport office: one container, one driver, one customs file. The package
owns reference number generation, the status workflow, and autocomplete
suggestions over prior records.

# Architecture

This layer is the "Truth" of the system. Entities defined here have no external
dependencies and encapsulate all business rules related to shipment records.
*/
package shipments

import (
	"time"
)

// # Classification Enums

// ProcessType is the canonical movement direction of a shipment. It is set
// once at creation and is immutable thereafter.
type ProcessType string

const (
	ProcessImport ProcessType = "import"
	ProcessExport ProcessType = "export"
)

// IsValid reports whether the process type is a known enum member.
func (p ProcessType) IsValid() bool {
	return p == ProcessImport || p == ProcessExport
}

// legacyExportTerm is the localized display value older dispatch forms send
// in movement_type when the flow is an export. Kept for backwards
// compatibility with records created before process_type existed.
const legacyExportTerm = "تصدير"

// ResolveProcessType determines the canonical direction from business input.
// An explicit process_type wins; otherwise the legacy movement_type value is
// consulted, defaulting to import.
func ResolveProcessType(processType, movementType string) ProcessType {
	switch ProcessType(processType) {
	case ProcessExport:
		return ProcessExport
	case ProcessImport:
		return ProcessImport
	}
	if movementType == legacyExportTerm {
		return ProcessExport
	}
	return ProcessImport
}

// Status tracks a shipment through the office workflow. Transitions are
// forward-only; a closed file is never reopened through the API.
type Status string

const (
	StatusOpen               Status = "open"
	StatusInProgress         Status = "in_progress"
	StatusReadyForAccountant Status = "ready_for_accountant"
	StatusClosed             Status = "closed"
)

// statusOrder gives each status a rank for transition checks.
var statusOrder = map[Status]int{
	StatusOpen:               0,
	StatusInProgress:         1,
	StatusReadyForAccountant: 2,
	StatusClosed:             3,
}

// IsValid reports whether the status is a known enum member.
func (s Status) IsValid() bool {
	_, ok := statusOrder[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next is allowed. Staying
// on the same status is always allowed; moving backwards never is.
func (s Status) CanTransitionTo(next Status) bool {
	from, okFrom := statusOrder[s]
	to, okTo := statusOrder[next]
	return okFrom && okTo && to >= from
}

// ContainerLeakStatus values follow the office's traffic-light inspection
// scheme. "other" carries a free-text detail.
const (
	LeakStatusGreen  = "green"
	LeakStatusYellow = "yellow"
	LeakStatusRed    = "red"
	LeakStatusOther  = "other"
)

// DefaultFreightCode is used for the reference number when no freight type
// is submitted. Trucking is the company's main business.
const DefaultFreightCode = "TRK"

// # Domain Entities

// Shipment represents one customs movement handled by the office.
type Shipment struct {
	ID              int    `json:"id"`
	UserID          int    `json:"user_id"`
	ReferenceNumber string `json:"reference_number"`

	MovementDate string      `json:"movement_date"`
	MovementType string      `json:"movement_type"`
	ProcessType  ProcessType `json:"process_type"`
	FreightType  string      `json:"freight_type"`
	Status       Status      `json:"status"`

	ClientName          string `json:"client_name"`
	ClearanceCompany    string `json:"clearance_company"`
	CustomsAgent        string `json:"customs_agent"`
	PermitNumber        string `json:"permit_number"`
	CustomsPermitNumber string `json:"customs_permit_number"`
	InvoiceNumber       string `json:"invoice_number"`

	ContainerNumber     string  `json:"container_number"`
	ContainerSize       string  `json:"container_size"`
	ContainerWeight     float64 `json:"container_weight"`
	ContainerLeakStatus string  `json:"container_leak_status"`
	ContainerLeakDetail string  `json:"container_leak_detail"`

	ShippingLine       string `json:"shipping_line"`
	BillOfLadingNumber string `json:"bill_of_lading_number"`
	GoodsDescription   string `json:"goods_description"`

	DriverName    string `json:"driver_name"`
	DriverPhone   string `json:"driver_phone"`
	TractorNumber string `json:"tractor_number"`
	TrailerNumber string `json:"trailer_number"`

	DeliveryLocation      string `json:"delivery_location"`
	LoadingLocation       string `json:"loading_location"`
	UnloadingDate         string `json:"unloading_date"`
	DeliveryDate          string `json:"delivery_date"`
	WarehouseManager      string `json:"warehouse_manager"`
	WarehouseManagerPhone string `json:"warehouse_manager_phone"`
	WarehouseWorkingHours string `json:"warehouse_working_hours"`

	Notes string `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// # Field Identifiers

// Global field names for validation and identity mapping in the shipments domain.
const (
	FieldMovementDate        = "movement_date"
	FieldMovementType        = "movement_type"
	FieldProcessType         = "process_type"
	FieldFreightType         = "freight_type"
	FieldStatus              = "status"
	FieldClientName          = "client_name"
	FieldContainerNumber     = "container_number"
	FieldContainerWeight     = "container_weight"
	FieldContainerLeakStatus = "container_leak_status"
	FieldShippingLine        = "shipping_line"
	FieldDriverPhone         = "driver_phone"
	FieldWarehousePhone      = "warehouse_manager_phone"
	FieldSuggestField        = "field"
	FieldSuggestQuery        = "query"
	FieldMessage             = "message"
	// FieldDeletedShipment keys the removed record in the delete response. The
	// dashboard reads exactly this key when it offers an undo snapshot.
	FieldDeletedShipment = "deletedShipment"
)

// MinContainerWeightTons is the business minimum for container weight. A
// single truck axle cannot legally carry less than two tons.
const MinContainerWeightTons = 2.0
