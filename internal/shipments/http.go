// Copyright (c) 2026 Jericho Transport. All rights reserved.
// Author: dev@jerichotransport.com

/*
Package shipments provides the HTTP delivery layer for shipment tracking.

# Architecture

The handler acts as a thin mediation layer between the web and domain services:
  - Protocol: Standard RESTful JSON interface; collections are raw arrays.
  - Security: Every route is gated on a shipment permission.
  - Verification: Format rules (carrier codes, container numbers, phone
    numbers) are enforced here before input reaches the [Service].

This layer is strictly responsible for transport concerns (status codes, headers, JSON).
*/
package shipments

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jerichotransport/freightdesk/internal/platform/middleware"
	requestutil "github.com/jerichotransport/freightdesk/internal/platform/request"
	"github.com/jerichotransport/freightdesk/internal/platform/respond"
	"github.com/jerichotransport/freightdesk/internal/platform/sec"
	"github.com/jerichotransport/freightdesk/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements shipment-related HTTP endpoints.
type Handler struct {
	shipmentService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{shipmentService: service}
}

// Routes returns a [chi.Router] configured with shipment-specific routes.
//
// # Endpoints
//   - GET    /                    : Lists all shipments, newest first.
//   - GET    /suggestions/search  : Autocomplete over prior records.
//   - GET    /{id}                : Returns one shipment.
//   - POST   /                    : Creates a shipment.
//   - PUT    /{id}                : Full-record replace.
//   - DELETE /{id}                : Deletes and returns the prior record.
//
// The suggestions route is registered before /{id} so chi never treats
// "suggestions" as a shipment ID.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequirePermission(sec.OpShipmentView))
		r.Get("/", handler.list)
		r.Get("/suggestions/search", handler.suggest)
		r.Get("/{id}", handler.get)
	})

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequirePermission(sec.OpShipmentCreate))
		r.Post("/", handler.create)
	})

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequirePermission(sec.OpShipmentUpdate))
		r.Put("/{id}", handler.update)
	})

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequirePermission(sec.OpShipmentDelete))
		r.Delete("/{id}", handler.delete)
	})

	return router
}

// # Request Payloads

// shipmentRequest mirrors the dispatcher's record form. It is shared by
// create and update.
type shipmentRequest struct {
	MovementDate string `json:"movement_date"`
	MovementType string `json:"movement_type"`
	ProcessType  string `json:"process_type"`
	FreightType  string `json:"freight_type"`
	Status       string `json:"status"`

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
}

// validate applies the record form rules. Format rules only constrain fields
// that were actually submitted.
func (input shipmentRequest) validate() error {
	validator := &validate.Validator{}
	validator.Required(FieldMovementDate, input.MovementDate).
		Required(FieldClientName, input.ClientName).
		ShippingLine(FieldShippingLine, input.ShippingLine).
		ContainerNumber(FieldContainerNumber, input.ContainerNumber).
		Phone(FieldDriverPhone, input.DriverPhone).
		Phone(FieldWarehousePhone, input.WarehouseManagerPhone)

	if input.ContainerWeight != 0 {
		validator.MinFloat(FieldContainerWeight, input.ContainerWeight, MinContainerWeightTons)
	}
	if input.ProcessType != "" {
		validator.OneOf(FieldProcessType, input.ProcessType,
			string(ProcessImport), string(ProcessExport))
	}
	if input.ContainerLeakStatus != "" {
		validator.OneOf(FieldContainerLeakStatus, input.ContainerLeakStatus,
			LeakStatusGreen, LeakStatusYellow, LeakStatusRed, LeakStatusOther)
	}

	return validator.Err()
}

// toInput converts the payload into a service-level RecordInput.
func (input shipmentRequest) toInput() RecordInput {
	return RecordInput{
		MovementDate: input.MovementDate,
		MovementType: input.MovementType,
		ProcessType:  input.ProcessType,
		FreightType:  input.FreightType,
		Status:       input.Status,

		ClientName:          input.ClientName,
		ClearanceCompany:    input.ClearanceCompany,
		CustomsAgent:        input.CustomsAgent,
		PermitNumber:        input.PermitNumber,
		CustomsPermitNumber: input.CustomsPermitNumber,
		InvoiceNumber:       input.InvoiceNumber,

		ContainerNumber:     input.ContainerNumber,
		ContainerSize:       input.ContainerSize,
		ContainerWeight:     input.ContainerWeight,
		ContainerLeakStatus: input.ContainerLeakStatus,
		ContainerLeakDetail: input.ContainerLeakDetail,

		ShippingLine:       input.ShippingLine,
		BillOfLadingNumber: input.BillOfLadingNumber,
		GoodsDescription:   input.GoodsDescription,

		DriverName:    input.DriverName,
		DriverPhone:   input.DriverPhone,
		TractorNumber: input.TractorNumber,
		TrailerNumber: input.TrailerNumber,

		DeliveryLocation:      input.DeliveryLocation,
		LoadingLocation:       input.LoadingLocation,
		UnloadingDate:         input.UnloadingDate,
		DeliveryDate:          input.DeliveryDate,
		WarehouseManager:      input.WarehouseManager,
		WarehouseManagerPhone: input.WarehouseManagerPhone,
		WarehouseWorkingHours: input.WarehouseWorkingHours,

		Notes: input.Notes,
	}
}

/*
List returns every shipment, newest created first.

GET /api/shipments

Response:
  - 200: []Shipment (raw array)
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	collection, err := handler.shipmentService.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, collection)
}

/*
Get returns one shipment by ID.

GET /api/shipments/{id}

Response:
  - 200: Shipment
  - 404: ErrNotFound
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	shipment, err := handler.shipmentService.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, shipment)
}

/*
Create registers a new shipment for the authenticated dispatcher.

POST /api/shipments

Request:
  - Body: shipmentRequest

Response:
  - 201: Shipment with its reference number
  - 400: Validation failure
  - 409: Reference conflict after exhausted retries
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input shipmentRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := input.validate(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	shipment, err := handler.shipmentService.Create(request.Context(), claims.UserID, input.toInput())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, shipment)
}

/*
Update performs a full-record replace of an existing shipment.

PUT /api/shipments/{id}

Request:
  - Body: shipmentRequest

Response:
  - 200: Updated Shipment
  - 400: Validation failure, direction change, or backwards status move
  - 404: ErrNotFound
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input shipmentRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := input.validate(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	shipment, err := handler.shipmentService.Update(request.Context(), id, input.toInput())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, shipment)
}

/*
Delete removes a shipment and returns the record as it stood.

DELETE /api/shipments/{id}

Response:
  - 200: {message, deletedShipment}
  - 404: ErrNotFound
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	shipment, err := handler.shipmentService.Delete(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		FieldMessage:         "Shipment deleted",
		FieldDeletedShipment: shipment,
	})
}

/*
Suggest returns autocomplete values for a prior-record field.

GET /api/shipments/suggestions/search?field=client_name&query=al

Response:
  - 200: []string (up to 10 distinct values, ascending)
  - 400: Missing parameter, or field outside the allow-list
*/
func (handler *Handler) suggest(writer http.ResponseWriter, request *http.Request) {
	field := request.URL.Query().Get(FieldSuggestField)
	query := request.URL.Query().Get(FieldSuggestQuery)

	validator := &validate.Validator{}
	validator.Required(FieldSuggestField, field).
		Required(FieldSuggestQuery, query)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	values, err := handler.shipmentService.Suggest(request.Context(), field, query)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, values)
}
