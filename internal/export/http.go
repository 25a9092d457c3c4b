// Copyright (c) 2026 Jericho Transport. All rights reserved.
// Author: dev@jerichotransport.com

package export

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jerichotransport/freightdesk/internal/platform/middleware"
	"github.com/jerichotransport/freightdesk/internal/platform/respond"
	"github.com/jerichotransport/freightdesk/internal/platform/sec"
	"github.com/jerichotransport/freightdesk/internal/platform/validate"
	"github.com/jerichotransport/freightdesk/internal/shipments"
)

// movementTypeAll disables the direction filter.
const movementTypeAll = "all"

// RecordSource provides the filtered shipment listing the report is built
// from. It is satisfied by [shipments.Service].
type RecordSource interface {
	ListFiltered(context context.Context, filter shipments.Filter) ([]shipments.Shipment, error)
}

// Handler implements report export HTTP endpoints.
type Handler struct {
	source RecordSource
}

// NewHandler constructs a new [Handler] with its record source.
func NewHandler(source RecordSource) *Handler {
	return &Handler{source: source}
}

// Routes returns a [chi.Router] configured with export routes.
//
// # Endpoints
//   - GET /xlsx : Streams a shipment report workbook.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequirePermission(sec.OpExport))
		r.Get("/xlsx", handler.exportXLSX)
	})

	return router
}

/*
ExportXLSX streams a shipment report as an XLSX attachment.

GET /api/export/xlsx?startDate=&endDate=&movementType=&clientName=

Description: Filters on movement date bounds, direction, and client name
substring, then projects the matches into the fixed report layout.

Response:
  - 200: XLSX workbook (Content-Disposition: attachment)
  - 400: Unknown movementType value
*/
func (handler *Handler) exportXLSX(writer http.ResponseWriter, request *http.Request) {
	queryValues := request.URL.Query()
	movementType := queryValues.Get("movementType")

	validator := &validate.Validator{}
	if movementType != "" {
		validator.OneOf("movementType", movementType,
			movementTypeAll, string(shipments.ProcessImport), string(shipments.ProcessExport))
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	filter := shipments.Filter{
		StartDate:  queryValues.Get("startDate"),
		EndDate:    queryValues.Get("endDate"),
		ClientName: queryValues.Get("clientName"),
	}
	if movementType != "" && movementType != movementTypeAll {
		filter.MovementType = shipments.ProcessType(movementType)
	}

	records, err := handler.source.ListFiltered(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	workbook, err := BuildWorkbook(records)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	defer workbook.Close()

	fileName := fmt.Sprintf("shipments-%s.xlsx", time.Now().Format("2006-01-02"))
	writer.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	writer.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))

	// Headers are already sent at this point; a write failure means the
	// client went away and there is nothing useful left to respond with.
	_ = workbook.Write(writer)
}
