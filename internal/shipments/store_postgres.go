// Copyright (c) 2026 Jericho Transport. All rights reserved.
// Author: dev@jerichotransport.com

package shipments

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jerichotransport/freightdesk/internal/platform/database/schema"
	"github.com/jerichotransport/freightdesk/internal/platform/dberr"
)

// DB is the subset of [pgxpool.Pool] the repository needs. It is satisfied by
// both the production pool and pgxmock in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// # Shipment Repository

// PostgresRepository implements the Repository interface using pgx.
type PostgresRepository struct {
	db DB
}

// NewRepository creates a new PostgreSQL implementation of the Repository.
func NewRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// selectColumns is the full column list in scan order.
var selectColumns = strings.Join(schema.RefShipment.Columns(), ", ")

// insertColumns excludes the system-assigned id and timestamps.
var insertColumns = []string{
	schema.RefShipment.UserID, schema.RefShipment.ReferenceNumber,
	schema.RefShipment.MovementDate, schema.RefShipment.MovementType,
	schema.RefShipment.ProcessType, schema.RefShipment.FreightType,
	schema.RefShipment.Status, schema.RefShipment.ClientName,
	schema.RefShipment.ClearanceCompany, schema.RefShipment.CustomsAgent,
	schema.RefShipment.PermitNumber, schema.RefShipment.CustomsPermitNumber,
	schema.RefShipment.InvoiceNumber, schema.RefShipment.ContainerNumber,
	schema.RefShipment.ContainerSize, schema.RefShipment.ContainerWeight,
	schema.RefShipment.ContainerLeakStatus, schema.RefShipment.ContainerLeakDetail,
	schema.RefShipment.ShippingLine, schema.RefShipment.BillOfLadingNumber,
	schema.RefShipment.GoodsDescription, schema.RefShipment.DriverName,
	schema.RefShipment.DriverPhone, schema.RefShipment.TractorNumber,
	schema.RefShipment.TrailerNumber, schema.RefShipment.DeliveryLocation,
	schema.RefShipment.LoadingLocation, schema.RefShipment.UnloadingDate,
	schema.RefShipment.DeliveryDate, schema.RefShipment.WarehouseManager,
	schema.RefShipment.WarehouseManagerPhone, schema.RefShipment.WarehouseWorkingHours,
	schema.RefShipment.Notes,
}

// scanShipment hydrates one row in selectColumns order.
func scanShipment(row pgx.Row) (*Shipment, error) {
	shipment := &Shipment{}
	err := row.Scan(
		&shipment.ID, &shipment.UserID, &shipment.ReferenceNumber,
		&shipment.MovementDate, &shipment.MovementType, &shipment.ProcessType,
		&shipment.FreightType, &shipment.Status, &shipment.ClientName,
		&shipment.ClearanceCompany, &shipment.CustomsAgent, &shipment.PermitNumber,
		&shipment.CustomsPermitNumber, &shipment.InvoiceNumber, &shipment.ContainerNumber,
		&shipment.ContainerSize, &shipment.ContainerWeight, &shipment.ContainerLeakStatus,
		&shipment.ContainerLeakDetail, &shipment.ShippingLine, &shipment.BillOfLadingNumber,
		&shipment.GoodsDescription, &shipment.DriverName, &shipment.DriverPhone,
		&shipment.TractorNumber, &shipment.TrailerNumber, &shipment.DeliveryLocation,
		&shipment.LoadingLocation, &shipment.UnloadingDate, &shipment.DeliveryDate,
		&shipment.WarehouseManager, &shipment.WarehouseManagerPhone,
		&shipment.WarehouseWorkingHours, &shipment.Notes,
		&shipment.CreatedAt, &shipment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return shipment, nil
}

// insertArgs returns the values matching insertColumns order.
func insertArgs(shipment *Shipment) []any {
	return []any{
		shipment.UserID, shipment.ReferenceNumber,
		shipment.MovementDate, shipment.MovementType,
		shipment.ProcessType, shipment.FreightType,
		shipment.Status, shipment.ClientName,
		shipment.ClearanceCompany, shipment.CustomsAgent,
		shipment.PermitNumber, shipment.CustomsPermitNumber,
		shipment.InvoiceNumber, shipment.ContainerNumber,
		shipment.ContainerSize, shipment.ContainerWeight,
		shipment.ContainerLeakStatus, shipment.ContainerLeakDetail,
		shipment.ShippingLine, shipment.BillOfLadingNumber,
		shipment.GoodsDescription, shipment.DriverName,
		shipment.DriverPhone, shipment.TractorNumber,
		shipment.TrailerNumber, shipment.DeliveryLocation,
		shipment.LoadingLocation, shipment.UnloadingDate,
		shipment.DeliveryDate, shipment.WarehouseManager,
		shipment.WarehouseManagerPhone, shipment.WarehouseWorkingHours,
		shipment.Notes,
	}
}

/*
Create persists a new shipment record.

Description: Inserts all business fields and hydrates the generated ID and
timestamps back onto the entity. A duplicate reference number surfaces as
apperr.Conflict so the service can retry with a fresh sequence.

Parameters:
  - context: context.Context
  - shipment: *Shipment (Entity to persist)

Returns:
  - error: apperr.Conflict on duplicate reference number, or database errors
*/
func (repository *PostgresRepository) Create(context context.Context, shipment *Shipment) error {
	placeholders := make([]string, len(insertColumns))
	for index := range insertColumns {
		placeholders[index] = fmt.Sprintf("$%d", index+1)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES (%s)
		RETURNING %s, %s, %s`,
		schema.RefShipment.Table,
		strings.Join(insertColumns, ", "),
		strings.Join(placeholders, ", "),
		schema.RefShipment.ID, schema.RefShipment.CreatedAt, schema.RefShipment.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, insertArgs(shipment)...).
		Scan(&shipment.ID, &shipment.CreatedAt, &shipment.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "shipment_create")
	}

	return nil
}

/*
FindByID retrieves a shipment by its primary key.

Parameters:
  - context: context.Context
  - id: int

Returns:
  - *Shipment: Hydrated entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresRepository) FindByID(context context.Context, id int) (*Shipment, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE %s = $1`,
		selectColumns, schema.RefShipment.Table, schema.RefShipment.ID,
	)

	shipment, err := scanShipment(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "shipment_find_by_id")
	}

	return shipment, nil
}

/*
List returns every shipment, newest created first.

Parameters:
  - context: context.Context

Returns:
  - []Shipment: Full collection
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) List(context context.Context) ([]Shipment, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s ORDER BY %s DESC`,
		selectColumns, schema.RefShipment.Table, schema.RefShipment.CreatedAt,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "shipment_list")
	}
	defer rows.Close()

	return collectShipments(rows, "shipment_list")
}

/*
ListFiltered returns shipments matching the filter, ordered by movement date
then creation time, both descending.

Parameters:
  - context: context.Context
  - filter: Filter

Returns:
  - []Shipment: Matching records
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) ListFiltered(context context.Context, filter Filter) ([]Shipment, error) {
	conditions := []string{"TRUE"}
	arguments := []any{}

	appendCondition := func(condition string, value any) {
		arguments = append(arguments, value)
		conditions = append(conditions, fmt.Sprintf(condition, len(arguments)))
	}

	if filter.StartDate != "" {
		appendCondition(schema.RefShipment.MovementDate+" >= $%d", filter.StartDate)
	}
	if filter.EndDate != "" {
		appendCondition(schema.RefShipment.MovementDate+" <= $%d", filter.EndDate)
	}
	if filter.MovementType != "" {
		appendCondition(schema.RefShipment.ProcessType+" = $%d", string(filter.MovementType))
	}
	if filter.ClientName != "" {
		appendCondition(schema.RefShipment.ClientName+" ILIKE '%%' || $%d || '%%'", filter.ClientName)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s
		ORDER BY %s DESC, %s DESC`,
		selectColumns, schema.RefShipment.Table,
		strings.Join(conditions, " AND "),
		schema.RefShipment.MovementDate, schema.RefShipment.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, arguments...)
	if err != nil {
		return nil, dberr.Wrap(err, "shipment_list_filtered")
	}
	defer rows.Close()

	return collectShipments(rows, "shipment_list_filtered")
}

/*
Update replaces the mutable fields of an existing shipment.

Description: Identity fields (id, user_id, reference_number, process_type)
are never touched. updated_at is refreshed server-side.

Parameters:
  - context: context.Context
  - shipment: *Shipment (ID selects the row)

Returns:
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresRepository) Update(context context.Context, shipment *Shipment) error {
	mutableColumns := []string{
		schema.RefShipment.MovementDate, schema.RefShipment.MovementType,
		schema.RefShipment.FreightType, schema.RefShipment.Status,
		schema.RefShipment.ClientName, schema.RefShipment.ClearanceCompany,
		schema.RefShipment.CustomsAgent, schema.RefShipment.PermitNumber,
		schema.RefShipment.CustomsPermitNumber, schema.RefShipment.InvoiceNumber,
		schema.RefShipment.ContainerNumber, schema.RefShipment.ContainerSize,
		schema.RefShipment.ContainerWeight, schema.RefShipment.ContainerLeakStatus,
		schema.RefShipment.ContainerLeakDetail, schema.RefShipment.ShippingLine,
		schema.RefShipment.BillOfLadingNumber, schema.RefShipment.GoodsDescription,
		schema.RefShipment.DriverName, schema.RefShipment.DriverPhone,
		schema.RefShipment.TractorNumber, schema.RefShipment.TrailerNumber,
		schema.RefShipment.DeliveryLocation, schema.RefShipment.LoadingLocation,
		schema.RefShipment.UnloadingDate, schema.RefShipment.DeliveryDate,
		schema.RefShipment.WarehouseManager, schema.RefShipment.WarehouseManagerPhone,
		schema.RefShipment.WarehouseWorkingHours, schema.RefShipment.Notes,
	}

	assignments := make([]string, len(mutableColumns))
	for index, column := range mutableColumns {
		assignments[index] = fmt.Sprintf("%s = $%d", column, index+1)
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s, %s = now()
		WHERE %s = $%d
		RETURNING %s`,
		schema.RefShipment.Table,
		strings.Join(assignments, ", "),
		schema.RefShipment.UpdatedAt,
		schema.RefShipment.ID, len(mutableColumns)+1,
		schema.RefShipment.UpdatedAt,
	)

	arguments := []any{
		shipment.MovementDate, shipment.MovementType,
		shipment.FreightType, shipment.Status,
		shipment.ClientName, shipment.ClearanceCompany,
		shipment.CustomsAgent, shipment.PermitNumber,
		shipment.CustomsPermitNumber, shipment.InvoiceNumber,
		shipment.ContainerNumber, shipment.ContainerSize,
		shipment.ContainerWeight, shipment.ContainerLeakStatus,
		shipment.ContainerLeakDetail, shipment.ShippingLine,
		shipment.BillOfLadingNumber, shipment.GoodsDescription,
		shipment.DriverName, shipment.DriverPhone,
		shipment.TractorNumber, shipment.TrailerNumber,
		shipment.DeliveryLocation, shipment.LoadingLocation,
		shipment.UnloadingDate, shipment.DeliveryDate,
		shipment.WarehouseManager, shipment.WarehouseManagerPhone,
		shipment.WarehouseWorkingHours, shipment.Notes,
		shipment.ID,
	}

	err := repository.db.QueryRow(context, query, arguments...).Scan(&shipment.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "shipment_update")
	}

	return nil
}

/*
Delete removes the shipment with the given ID.

Parameters:
  - context: context.Context
  - id: int

Returns:
  - error: apperr.NotFound when the row is absent, or database errors
*/
func (repository *PostgresRepository) Delete(context context.Context, id int) error {
	query := fmt.Sprintf(`
		DELETE FROM %s WHERE %s = $1`,
		schema.RefShipment.Table, schema.RefShipment.ID,
	)

	commandTag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "shipment_delete")
	}

	if commandTag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

/*
ListReferencesByPrefix returns every reference number sharing a lane prefix.

Parameters:
  - context: context.Context
  - prefix: string (e.g. "TRK-EXP-2026-")

Returns:
  - []string: Matching reference numbers
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) ListReferencesByPrefix(context context.Context, prefix string) ([]string, error) {
	// Prefix matching via LIKE with the argument bound, never interpolated.
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE %s LIKE $1 || '%%'`,
		schema.RefShipment.ReferenceNumber, schema.RefShipment.Table, schema.RefShipment.ReferenceNumber,
	)

	rows, err := repository.db.Query(context, query, prefix)
	if err != nil {
		return nil, dberr.Wrap(err, "shipment_list_references")
	}
	defer rows.Close()

	references := []string{}
	for rows.Next() {
		var reference string
		if err := rows.Scan(&reference); err != nil {
			return nil, dberr.Wrap(err, "shipment_list_references")
		}
		references = append(references, reference)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "shipment_list_references")
	}

	return references, nil
}

/*
SuggestValues returns up to limit distinct non-empty values of a column
matching query as a case-insensitive substring, ascending.

Description: The column identifier comes from the closed allow-list in
store.go, never from caller input, so embedding it in the query text is safe.

Parameters:
  - context: context.Context
  - column: string
  - query: string
  - limit: int

Returns:
  - []string: Distinct prior values
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) SuggestValues(context context.Context, column string, query string, limit int) ([]string, error) {
	statement := fmt.Sprintf(`
		SELECT DISTINCT %s FROM %s
		WHERE %s <> '' AND %s ILIKE '%%' || $1 || '%%'
		ORDER BY %s ASC
		LIMIT $2`,
		column, schema.RefShipment.Table, column, column, column,
	)

	rows, err := repository.db.Query(context, statement, query, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "shipment_suggest")
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, dberr.Wrap(err, "shipment_suggest")
		}
		values = append(values, value)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "shipment_suggest")
	}

	return values, nil
}

// collectShipments drains rows into a slice.
func collectShipments(rows pgx.Rows, action string) ([]Shipment, error) {
	shipments := []Shipment{}
	for rows.Next() {
		shipment, err := scanShipment(rows)
		if err != nil {
			return nil, dberr.Wrap(err, action)
		}
		shipments = append(shipments, *shipment)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, action)
	}

	return shipments, nil
}
