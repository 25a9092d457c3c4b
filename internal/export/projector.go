// Copyright (c) 2026 Jericho Transport. All rights reserved.
// Author: dev@jerichotransport.com

/*
Package export builds spreadsheet reports over shipment records.

The office hands these workbooks to the accounting firm at the end of each
period, so the column set and order are fixed: accountants reconcile against
the sheet by position.
*/
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jerichotransport/freightdesk/internal/shipments"
)

// SheetName is the single worksheet every report carries.
const SheetName = "Shipments"

// createdAtLayout renders record timestamps in the sheet.
const createdAtLayout = "2006-01-02 15:04"

// columnHeaders is the fixed report layout. Movement date leads because the
// accountants sort and reconcile by it; the first twenty-five columns keep the
// positions the accounting firm has always received, and the remaining
// business fields follow at the end.
var columnHeaders = []string{
	"Movement Date",
	"Reference Number",
	"Process Type",
	"Freight Type",
	"Client Name",
	"Clearance Company",
	"Container Leak Status",
	"Customs Permit Number",
	"Goods Description",
	"Container Size",
	"Container Number",
	"Container Weight",
	"Shipping Line",
	"Bill of Lading",
	"Driver Name",
	"Driver Phone",
	"Tractor Number",
	"Trailer Number",
	"Delivery Location",
	"Loading Location",
	"Delivery Date",
	"Warehouse Manager",
	"Warehouse Manager Phone",
	"Notes",
	"Created At",
	"Movement Type",
	"Status",
	"Customs Agent",
	"Permit Number",
	"Invoice Number",
	"Container Leak Detail",
	"Unloading Date",
	"Warehouse Working Hours",
}

// rowValues projects one shipment into columnHeaders order.
func rowValues(shipment shipments.Shipment) []any {
	return []any{
		shipment.MovementDate,
		shipment.ReferenceNumber,
		string(shipment.ProcessType),
		shipment.FreightType,
		shipment.ClientName,
		shipment.ClearanceCompany,
		shipment.ContainerLeakStatus,
		shipment.CustomsPermitNumber,
		shipment.GoodsDescription,
		shipment.ContainerSize,
		shipment.ContainerNumber,
		shipment.ContainerWeight,
		shipment.ShippingLine,
		shipment.BillOfLadingNumber,
		shipment.DriverName,
		shipment.DriverPhone,
		shipment.TractorNumber,
		shipment.TrailerNumber,
		shipment.DeliveryLocation,
		shipment.LoadingLocation,
		shipment.DeliveryDate,
		shipment.WarehouseManager,
		shipment.WarehouseManagerPhone,
		shipment.Notes,
		shipment.CreatedAt.Format(createdAtLayout),
		shipment.MovementType,
		string(shipment.Status),
		shipment.CustomsAgent,
		shipment.PermitNumber,
		shipment.InvoiceNumber,
		shipment.ContainerLeakDetail,
		shipment.UnloadingDate,
		shipment.WarehouseWorkingHours,
	}
}

// ColumnCount returns the width of the fixed report layout.
func ColumnCount() int {
	return len(columnHeaders)
}

/*
BuildWorkbook projects shipments into an XLSX workbook.

Description: One header row, one row per shipment in the given order, and a
trailing summary row carrying the total record count. The caller owns closing
the returned file.

Parameters:
  - records: []shipments.Shipment (already filtered and ordered)

Returns:
  - *excelize.File: The assembled workbook
  - error: Sheet assembly failures
*/
func BuildWorkbook(records []shipments.Shipment) (*excelize.File, error) {
	file := excelize.NewFile()

	index, err := file.NewSheet(SheetName)
	if err != nil {
		return nil, fmt.Errorf("export: failed to create sheet: %w", err)
	}
	file.SetActiveSheet(index)
	if err := file.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("export: failed to drop default sheet: %w", err)
	}

	header := make([]any, len(columnHeaders))
	for position, title := range columnHeaders {
		header[position] = title
	}
	if err := writeRow(file, 1, header); err != nil {
		return nil, err
	}

	for position, record := range records {
		if err := writeRow(file, position+2, rowValues(record)); err != nil {
			return nil, err
		}
	}

	summaryRow := len(records) + 2
	summary := []any{fmt.Sprintf("Total records: %d", len(records))}
	if err := writeRow(file, summaryRow, summary); err != nil {
		return nil, err
	}

	return file, nil
}

// writeRow sets one sheet row starting at column A.
func writeRow(file *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("export: bad row coordinate %d: %w", row, err)
	}
	if err := file.SetSheetRow(SheetName, cell, &values); err != nil {
		return fmt.Errorf("export: failed to write row %d: %w", row, err)
	}
	return nil
}
