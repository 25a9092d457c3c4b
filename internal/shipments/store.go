// Copyright (c) 2026 Jericho Transport. All rights reserved.
// Author: dev@jerichotransport.com

package shipments

import (
	"context"
	"sort"

	"github.com/jerichotransport/freightdesk/internal/platform/database/schema"
)

// # Suggestion Allow-List

// SuggestionLimit caps the number of distinct values returned per lookup.
const SuggestionLimit = 10

// suggestionColumns is the closed mapping from public suggestion field names
// to fixed column identifiers. Caller input never reaches the query text:
// anything outside this map is rejected before the store is consulted.
var suggestionColumns = map[string]string{
	"client_name":           schema.RefShipment.ClientName,
	"container_number":      schema.RefShipment.ContainerNumber,
	"bill_of_lading_number": schema.RefShipment.BillOfLadingNumber,
	"goods_description":     schema.RefShipment.GoodsDescription,
	"driver_name":           schema.RefShipment.DriverName,
	"permit_number":         schema.RefShipment.PermitNumber,
}

// SuggestionColumn resolves a public field name to its column identifier.
func SuggestionColumn(field string) (string, bool) {
	column, ok := suggestionColumns[field]
	return column, ok
}

// SuggestionFields returns the public field names of the allow-list, sorted
// so rejection messages and API docs stay stable.
func SuggestionFields() []string {
	fields := make([]string, 0, len(suggestionColumns))
	for field := range suggestionColumns {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// # Filters

// Filter narrows shipment listings for reporting and export.
type Filter struct {
	StartDate    string      // inclusive lower bound on movement_date
	EndDate      string      // inclusive upper bound on movement_date
	MovementType ProcessType // empty means all directions
	ClientName   string      // case-insensitive substring match
}

// # Shipment Data Access

// Repository defines the data access contract for shipment records.
type Repository interface {

	/*
		Create persists a new shipment and assigns its ID and timestamps.

		Parameters:
		  - context: context.Context
		  - shipment: *Shipment

		Returns:
		  - error: apperr.Conflict on duplicate reference number, or database errors
	*/
	Create(context context.Context, shipment *Shipment) error

	/*
		FindByID returns the shipment with the given ID.

		Parameters:
		  - context: context.Context
		  - id: int

		Returns:
		  - *Shipment: Hydrated entity
		  - error: apperr.NotFound or database errors
	*/
	FindByID(context context.Context, id int) (*Shipment, error)

	/*
		List returns every shipment, newest created first.

		Parameters:
		  - context: context.Context

		Returns:
		  - []Shipment: Full collection
		  - error: Database retrieval failures
	*/
	List(context context.Context) ([]Shipment, error)

	/*
		ListFiltered returns shipments matching the filter, ordered by
		movement_date DESC then created_at DESC.

		Parameters:
		  - context: context.Context
		  - filter: Filter

		Returns:
		  - []Shipment: Matching records
		  - error: Database retrieval failures
	*/
	ListFiltered(context context.Context, filter Filter) ([]Shipment, error)

	/*
		Update replaces the mutable fields of an existing shipment.

		Parameters:
		  - context: context.Context
		  - shipment: *Shipment (ID selects the row)

		Returns:
		  - error: apperr.NotFound or database errors
	*/
	Update(context context.Context, shipment *Shipment) error

	/*
		Delete removes the shipment with the given ID.

		Parameters:
		  - context: context.Context
		  - id: int

		Returns:
		  - error: apperr.NotFound or database errors
	*/
	Delete(context context.Context, id int) error

	/*
		ListReferencesByPrefix returns every reference number sharing a lane
		prefix, used to compute the next sequence.

		Parameters:
		  - context: context.Context
		  - prefix: string (e.g. "TRK-EXP-2026-")

		Returns:
		  - []string: Matching reference numbers
		  - error: Database retrieval failures
	*/
	ListReferencesByPrefix(context context.Context, prefix string) ([]string, error)

	/*
		SuggestValues returns up to limit distinct non-empty values of the given
		column matching query as a case-insensitive substring, ascending.

		Parameters:
		  - context: context.Context
		  - column: string (must come from the suggestion allow-list)
		  - query: string
		  - limit: int

		Returns:
		  - []string: Distinct prior values
		  - error: Database retrieval failures
	*/
	SuggestValues(context context.Context, column string, query string, limit int) ([]string, error)
}

// # Suggestion Cache

// SuggestionCache is a short-lived cache in front of SuggestValues. Both
// methods are best-effort: a miss or a storage error simply falls through to
// the database.
type SuggestionCache interface {
	// Get returns the cached values for (field, query), with ok = false on a
	// miss or any cache failure.
	Get(context context.Context, field string, query string) (values []string, ok bool)

	// Set stores the values for (field, query) with the cache's TTL. Failures
	// are swallowed.
	Set(context context.Context, field string, query string, values []string)
}
