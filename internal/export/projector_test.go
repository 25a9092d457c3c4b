// Copyright (c) 2026 Jericho Transport. All rights reserved.
// Author: dev@jerichotransport.com

package export_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jerichotransport/freightdesk/internal/export"
	"github.com/jerichotransport/freightdesk/internal/shipments"
)

func sampleShipments() []shipments.Shipment {
	return []shipments.Shipment{
		{
			MovementDate:          "2026-03-14",
			ReferenceNumber:       "TRK-IMP-2026-0002",
			MovementType:          "استيراد",
			FreightType:           "TRK",
			Status:                shipments.StatusInProgress,
			ClientName:            "Al Madar Trading",
			ContainerNumber:       "MSCU1234567",
			ContainerWeight:       24.5,
			DeliveryDate:          "2026-03-16",
			UnloadingDate:         "2026-03-15",
			WarehouseManager:      "Omar Haddad",
			WarehouseManagerPhone: "0791234567",
			WarehouseWorkingHours: "08:00-17:00",
			ContainerLeakDetail:   "minor seal damage",
			CreatedAt:             time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		},
		{
			MovementDate:    "2026-03-10",
			ReferenceNumber: "SEA-EXP-2026-0001",
			MovementType:    "تصدير",
			FreightType:     "SEA",
			Status:          shipments.StatusOpen,
			ClientName:      "Jordan Ceramics",
			ContainerNumber: "MAEU7654321",
			ContainerWeight: 18.0,
		},
	}
}

/*
TestBuildWorkbook tests the fixed report layout: header order, one row per
record, and the trailing summary.
*/
func TestBuildWorkbook(t *testing.T) {
	workbook, err := export.BuildWorkbook(sampleShipments())
	require.NoError(t, err)
	defer workbook.Close()

	rows, err := workbook.GetRows(export.SheetName)
	require.NoError(t, err)

	// Header + 2 records + summary.
	require.Len(t, rows, 4)

	t.Run("movement_date_leads_the_header", func(t *testing.T) {
		assert.Equal(t, "Movement Date", rows[0][0])
		assert.Equal(t, "Reference Number", rows[0][1])
		assert.Len(t, rows[0], export.ColumnCount())
	})

	t.Run("records_keep_their_order", func(t *testing.T) {
		assert.Equal(t, "2026-03-14", rows[1][0])
		assert.Equal(t, "TRK-IMP-2026-0002", rows[1][1])
		assert.Equal(t, "2026-03-10", rows[2][0])
		assert.Equal(t, "SEA-EXP-2026-0001", rows[2][1])
	})

	t.Run("summary_row_carries_the_count", func(t *testing.T) {
		assert.Equal(t, "Total records: 2", rows[3][0])
	})

	t.Run("client_and_container_land_in_fixed_positions", func(t *testing.T) {
		clientColumn := indexOf(t, rows[0], "Client Name")
		containerColumn := indexOf(t, rows[0], "Container Number")
		assert.Equal(t, "Al Madar Trading", rows[1][clientColumn])
		assert.Equal(t, "MSCU1234567", rows[1][containerColumn])
	})

	t.Run("every_business_field_has_a_column", func(t *testing.T) {
		for _, title := range []string{
			"Delivery Date",
			"Warehouse Manager",
			"Warehouse Manager Phone",
			"Created At",
			"Unloading Date",
			"Warehouse Working Hours",
			"Container Leak Detail",
		} {
			indexOf(t, rows[0], title)
		}

		assert.Equal(t, "2026-03-16", rows[1][indexOf(t, rows[0], "Delivery Date")])
		assert.Equal(t, "Omar Haddad", rows[1][indexOf(t, rows[0], "Warehouse Manager")])
		assert.Equal(t, "0791234567", rows[1][indexOf(t, rows[0], "Warehouse Manager Phone")])
		assert.Equal(t, "2026-03-14 09:30", rows[1][indexOf(t, rows[0], "Created At")])
	})
}

/*
TestBuildWorkbook_Empty tests the degenerate report: header and summary only.
*/
func TestBuildWorkbook_Empty(t *testing.T) {
	workbook, err := export.BuildWorkbook(nil)
	require.NoError(t, err)
	defer workbook.Close()

	rows, err := workbook.GetRows(export.SheetName)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "Total records: 0", rows[1][0])
}

// indexOf finds a header title's column position.
func indexOf(t *testing.T, header []string, title string) int {
	t.Helper()
	for position, value := range header {
		if value == title {
			return position
		}
	}
	t.Fatalf("header %q not found", title)
	return -1
}
