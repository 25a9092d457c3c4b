// Copyright (c) 2026 Jericho Transport. All rights reserved.
// Author: dev@jerichotransport.com

package shipments

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/jerichotransport/freightdesk/internal/platform/apperr"
)

// maxCreateAttempts bounds the reference number retry loop. Two dispatchers
// creating into the same lane at the same instant should be resolved on the
// second attempt; three failures in a row means something else is wrong.
const maxCreateAttempts = 3

// # Service

// Service implements shipment tracking use cases.
type Service struct {
	repository Repository
	cache      SuggestionCache
	clock      ReferenceClock
}

// NewService constructs a new [Service] with necessary dependencies.
// A nil clock defaults to the server clock; tests pin it.
func NewService(repository Repository, cache SuggestionCache, clock ReferenceClock) *Service {
	if clock == nil {
		clock = time.Now
	}
	return &Service{
		repository: repository,
		cache:      cache,
		clock:      clock,
	}
}

// # Record Input

// RecordInput carries the business fields of a shipment as submitted by a
// dispatcher. It is shared by create and update; identity fields (reference
// number, owner) never appear here.
type RecordInput struct {
	MovementDate string
	MovementType string
	ProcessType  string
	FreightType  string
	Status       string

	ClientName          string
	ClearanceCompany    string
	CustomsAgent        string
	PermitNumber        string
	CustomsPermitNumber string
	InvoiceNumber       string

	ContainerNumber     string
	ContainerSize       string
	ContainerWeight     float64
	ContainerLeakStatus string
	ContainerLeakDetail string

	ShippingLine       string
	BillOfLadingNumber string
	GoodsDescription   string

	DriverName    string
	DriverPhone   string
	TractorNumber string
	TrailerNumber string

	DeliveryLocation      string
	LoadingLocation       string
	UnloadingDate         string
	DeliveryDate          string
	WarehouseManager      string
	WarehouseManagerPhone string
	WarehouseWorkingHours string

	Notes string
}

// applyTo copies the mutable business fields onto the entity.
func (input RecordInput) applyTo(shipment *Shipment) {
	shipment.MovementDate = input.MovementDate
	shipment.MovementType = input.MovementType
	shipment.FreightType = NormalizeFreightCode(input.FreightType)

	shipment.ClientName = input.ClientName
	shipment.ClearanceCompany = input.ClearanceCompany
	shipment.CustomsAgent = input.CustomsAgent
	shipment.PermitNumber = input.PermitNumber
	shipment.CustomsPermitNumber = input.CustomsPermitNumber
	shipment.InvoiceNumber = input.InvoiceNumber

	shipment.ContainerNumber = input.ContainerNumber
	shipment.ContainerSize = input.ContainerSize
	shipment.ContainerWeight = input.ContainerWeight
	shipment.ContainerLeakStatus = input.ContainerLeakStatus
	shipment.ContainerLeakDetail = input.ContainerLeakDetail

	shipment.ShippingLine = input.ShippingLine
	shipment.BillOfLadingNumber = input.BillOfLadingNumber
	shipment.GoodsDescription = input.GoodsDescription

	shipment.DriverName = input.DriverName
	shipment.DriverPhone = input.DriverPhone
	shipment.TractorNumber = input.TractorNumber
	shipment.TrailerNumber = input.TrailerNumber

	shipment.DeliveryLocation = input.DeliveryLocation
	shipment.LoadingLocation = input.LoadingLocation
	shipment.UnloadingDate = input.UnloadingDate
	shipment.DeliveryDate = input.DeliveryDate
	shipment.WarehouseManager = input.WarehouseManager
	shipment.WarehouseManagerPhone = input.WarehouseManagerPhone
	shipment.WarehouseWorkingHours = input.WarehouseWorkingHours

	shipment.Notes = input.Notes
}

// # Creation Flow

/*
Create registers a new shipment for the authenticated dispatcher.

Description: Resolves the canonical direction, normalizes the freight code,
and assigns the next reference number in the (freight, direction, year) lane.
The read-max-then-insert sequence can race with a concurrent create; the
unique index on reference_number turns the loser into a Conflict, which is
retried with a fresh sequence up to three times.

Parameters:
  - context: context.Context
  - userID: int (owning dispatcher, from verified token claims)
  - input: RecordInput

Returns:
  - *Shipment: Created entity with reference number and timestamps
  - err: Conflict after exhausted retries, or storage errors
*/
func (service *Service) Create(context context.Context, userID int, input RecordInput) (*Shipment, error) {
	processType := ResolveProcessType(input.ProcessType, input.MovementType)
	freightCode := NormalizeFreightCode(input.FreightType)
	year := service.clock().Year()
	prefix := ReferencePrefix(freightCode, processType, year)

	shipment := &Shipment{
		UserID:      userID,
		ProcessType: processType,
		Status:      StatusOpen,
	}
	input.applyTo(shipment)

	var lastErr error
	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		references, err := service.repository.ListReferencesByPrefix(context, prefix)
		if err != nil {
			return nil, err
		}

		shipment.ReferenceNumber = BuildReferenceNumber(freightCode, processType, year, NextSequence(references))

		err = service.repository.Create(context, shipment)
		if err == nil {
			return shipment, nil
		}
		if !isConflict(err) {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}

// isConflict reports whether err is a 409 application error.
func isConflict(err error) bool {
	ae := apperr.As(err)
	return ae != nil && ae.HTTPStatus == http.StatusConflict
}

// # Read Flow

// Get returns the shipment with the given ID.
func (service *Service) Get(context context.Context, id int) (*Shipment, error) {
	return service.repository.FindByID(context, id)
}

// List returns every shipment, newest created first.
func (service *Service) List(context context.Context) ([]Shipment, error) {
	return service.repository.List(context)
}

// ListFiltered returns shipments matching the filter, ordered for reporting.
func (service *Service) ListFiltered(context context.Context, filter Filter) ([]Shipment, error) {
	return service.repository.ListFiltered(context, filter)
}

// # Update Flow

/*
Update replaces the business fields of an existing shipment.

Description: Full-record replace with three guarded fields. The reference
number is never recomputed. The direction (process_type) is immutable; an
update that tries to change it is rejected. The status may only move forward
through the office workflow.

Parameters:
  - context: context.Context
  - id: int
  - input: RecordInput

Returns:
  - *Shipment: Updated entity with refreshed updated_at
  - err: NotFound, ValidationError, or storage errors
*/
func (service *Service) Update(context context.Context, id int, input RecordInput) (*Shipment, error) {
	shipment, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if input.ProcessType != "" && ProcessType(input.ProcessType) != shipment.ProcessType {
		return nil, apperr.ValidationError("process_type is immutable once the shipment is created")
	}

	if input.Status != "" {
		nextStatus := Status(input.Status)
		if !nextStatus.IsValid() {
			return nil, apperr.ValidationError("Unknown status: " + input.Status)
		}
		if !shipment.Status.CanTransitionTo(nextStatus) {
			return nil, apperr.ValidationError(
				"Status cannot move from " + string(shipment.Status) + " back to " + string(nextStatus))
		}
		shipment.Status = nextStatus
	}

	input.applyTo(shipment)

	if err := service.repository.Update(context, shipment); err != nil {
		return nil, err
	}

	return shipment, nil
}

// # Delete Flow

/*
Delete removes a shipment and returns the record as it stood.

Parameters:
  - context: context.Context
  - id: int

Returns:
  - *Shipment: The deleted record
  - err: NotFound or storage errors
*/
func (service *Service) Delete(context context.Context, id int) (*Shipment, error) {
	shipment, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if err := service.repository.Delete(context, id); err != nil {
		return nil, err
	}

	return shipment, nil
}

// # Suggestion Flow

/*
Suggest returns autocomplete values for a prior-record field.

Description: The field must be on the closed allow-list; anything else is
rejected before the store is consulted. Results come from a 60-second Redis
cache when warm; cache failures fall through to the database silently.

Parameters:
  - context: context.Context
  - field: string (public field name)
  - query: string (partial value)

Returns:
  - []string: Up to SuggestionLimit distinct values, ascending
  - err: ValidationError for unknown fields, or storage errors
*/
func (service *Service) Suggest(context context.Context, field string, query string) ([]string, error) {
	column, ok := SuggestionColumn(field)
	if !ok {
		return nil, apperr.ValidationError(
			"Field is not suggestible: " + field + " (allowed: " + strings.Join(SuggestionFields(), ", ") + ")")
	}

	if service.cache != nil {
		if values, ok := service.cache.Get(context, field, query); ok {
			return values, nil
		}
	}

	values, err := service.repository.SuggestValues(context, column, query, SuggestionLimit)
	if err != nil {
		return nil, err
	}

	if service.cache != nil {
		service.cache.Set(context, field, query, values)
	}

	return values, nil
}
