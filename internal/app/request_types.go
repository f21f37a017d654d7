package app

// Operation identifies one of the six query pipelines.
type Operation string

const (
	OpStockSearch   Operation = "stock_quantity_search"
	OpOrderStatus   Operation = "order_status"
	OpShipmentInfo  Operation = "shipment_info"
	OpInvoiceInfo   Operation = "invoice_info"
	OpClientInfo    Operation = "client_info"
	OpWarehouseInfo Operation = "warehouse_info"
)

// Slots is the typed slot bag extracted by the conversational front-end.
// Empty string means the slot was not filled.
type Slots struct {
	ItemName      string `json:"item_name,omitempty"`
	WarehouseName string `json:"warehouse_name,omitempty"`
	OrderID       string `json:"order_id,omitempty"`
	Status        string `json:"status,omitempty"`
	ClientName    string `json:"client_name,omitempty"`
}

// Request is the engine's input: which pipeline to run and the slot values
// it may consume.
type Request struct {
	Operation Operation `json:"operation"`
	Slots     Slots     `json:"slots"`
}
