package schema

// RefShipmentTable represents the 'shipments' table
type RefShipmentTable struct {
	Table                 string
	ID                    string
	UserID                string
	ReferenceNumber       string
	MovementDate          string
	MovementType          string
	ProcessType           string
	FreightType           string
	Status                string
	ClientName            string
	ClearanceCompany      string
	CustomsAgent          string
	PermitNumber          string
	CustomsPermitNumber   string
	InvoiceNumber         string
	ContainerNumber       string
	ContainerSize         string
	ContainerWeight       string
	ContainerLeakStatus   string
	ContainerLeakDetail   string
	ShippingLine          string
	BillOfLadingNumber    string
	GoodsDescription      string
	DriverName            string
	DriverPhone           string
	TractorNumber         string
	TrailerNumber         string
	DeliveryLocation      string
	LoadingLocation       string
	UnloadingDate         string
	DeliveryDate          string
	WarehouseManager      string
	WarehouseManagerPhone string
	WarehouseWorkingHours string
	Notes                 string
	CreatedAt             string
	UpdatedAt             string
}

// RefShipment is the schema definition for shipments
var RefShipment = RefShipmentTable{
	Table:                 "shipments",
	ID:                    "id",
	UserID:                "user_id",
	ReferenceNumber:       "reference_number",
	MovementDate:          "movement_date",
	MovementType:          "movement_type",
	ProcessType:           "process_type",
	FreightType:           "freight_type",
	Status:                "status",
	ClientName:            "client_name",
	ClearanceCompany:      "clearance_company",
	CustomsAgent:          "customs_agent",
	PermitNumber:          "permit_number",
	CustomsPermitNumber:   "customs_permit_number",
	InvoiceNumber:         "invoice_number",
	ContainerNumber:       "container_number",
	ContainerSize:         "container_size",
	ContainerWeight:       "container_weight",
	ContainerLeakStatus:   "container_leak_status",
	ContainerLeakDetail:   "container_leak_detail",
	ShippingLine:          "shipping_line",
	BillOfLadingNumber:    "bill_of_lading_number",
	GoodsDescription:      "goods_description",
	DriverName:            "driver_name",
	DriverPhone:           "driver_phone",
	TractorNumber:         "tractor_number",
	TrailerNumber:         "trailer_number",
	DeliveryLocation:      "delivery_location",
	LoadingLocation:       "loading_location",
	UnloadingDate:         "unloading_date",
	DeliveryDate:          "delivery_date",
	WarehouseManager:      "warehouse_manager",
	WarehouseManagerPhone: "warehouse_manager_phone",
	WarehouseWorkingHours: "warehouse_working_hours",
	Notes:                 "notes",
	CreatedAt:             "created_at",
	UpdatedAt:             "updated_at",
}

func (t RefShipmentTable) Columns() []string {
	return []string{
		t.ID, t.UserID, t.ReferenceNumber, t.MovementDate, t.MovementType,
		t.ProcessType, t.FreightType, t.Status, t.ClientName, t.ClearanceCompany,
		t.CustomsAgent, t.PermitNumber, t.CustomsPermitNumber, t.InvoiceNumber,
		t.ContainerNumber, t.ContainerSize, t.ContainerWeight, t.ContainerLeakStatus,
		t.ContainerLeakDetail, t.ShippingLine, t.BillOfLadingNumber, t.GoodsDescription,
		t.DriverName, t.DriverPhone, t.TractorNumber, t.TrailerNumber,
		t.DeliveryLocation, t.LoadingLocation, t.UnloadingDate, t.DeliveryDate,
		t.WarehouseManager, t.WarehouseManagerPhone, t.WarehouseWorkingHours,
		t.Notes, t.CreatedAt, t.UpdatedAt,
	}
}
