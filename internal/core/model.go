package core

import "github.com/shopspring/decimal"

type LifecycleStatus string

const (
	StatusActive   LifecycleStatus = "ACTIVE"
	StatusInactive LifecycleStatus = "INACTIVE"
)

// Item is a catalog entry. Stock records reference it by ID.
type Item struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Status LifecycleStatus `json:"status"`
}

// Warehouse is a storage location. WarehouseID is the external code shown to
// users; ID is the internal identity stock records point at.
type Warehouse struct {
	ID          string          `json:"id"`
	WarehouseID string          `json:"warehouse_id"`
	Name        string          `json:"name"`
	Status      LifecycleStatus `json:"status"`
	City        string          `json:"city"`
	State       string          `json:"state"`
	Country     string          `json:"country"`
}

// StockRecord is the quantity of one item held in one warehouse.
type StockRecord struct {
	ItemID       string `json:"item_id"`
	WarehouseID  string `json:"warehouse_id"`
	Available    int    `json:"available_stock"`
	ReorderLevel int    `json:"reorder_level"`
}

// Order carries two external identifier fields: OrderID is the legacy
// reference, SalesOrderNo the current one. Either may be absent; lookups
// accept both. Orders carry no lifecycle status — any order is resolvable
// regardless of its business status.
type Order struct {
	ID           string           `json:"id"`
	OrderID      *string          `json:"order_id,omitempty"`
	SalesOrderNo *string          `json:"sales_order_no,omitempty"`
	Status       string           `json:"order_status"`
	Date         *string          `json:"order_date,omitempty"`
	ClientName   *string          `json:"client_name,omitempty"`
	Total        *decimal.Decimal `json:"order_total,omitempty"`
}

// Ref returns the identifier to display for this order: the legacy OrderID
// when present, otherwise the SalesOrderNo, otherwise "Unknown".
func (o *Order) Ref() string {
	if o.OrderID != nil && *o.OrderID != "" {
		return *o.OrderID
	}
	if o.SalesOrderNo != nil && *o.SalesOrderNo != "" {
		return *o.SalesOrderNo
	}
	return "Unknown"
}

// OrderItem is one line of an order. ItemName is denormalized at order time.
type OrderItem struct {
	OrderRef string `json:"order_ref"`
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
}

// Shipment is the aggregate shipment document for one order. A Shipment with
// an empty Legs slice is a valid, user-visible state distinct from no
// Shipment record at all.
type Shipment struct {
	OrderRef string        `json:"order_ref"`
	Legs     []ShipmentLeg `json:"shipments"`
}

// ShipmentLeg is one courier hand-off within a shipment. TrackingID is nil
// until the courier assigns one.
type ShipmentLeg struct {
	Courier    string  `json:"courier"`
	TrackingID *string `json:"tracking_id,omitempty"`
	Status     string  `json:"status"`
}

// Invoice is the aggregate invoice document for one order, holding an
// ordered sequence of invoice lines. Same absent-vs-empty distinction as
// Shipment.
type Invoice struct {
	OrderRef string        `json:"order_ref"`
	Lines    []InvoiceLine `json:"invoices"`
}

type InvoiceLine struct {
	InvoiceID string          `json:"invoice_id"`
	Type      string          `json:"invoice_type"`
	Paid      bool            `json:"paid"`
	Gross     decimal.Decimal `json:"gross_amount"`
	Due       decimal.Decimal `json:"due_amount"`
	Currency  string          `json:"currency"`
}

// Client is a customer record. Email and Website are optional contact fields.
type Client struct {
	ID       string          `json:"id"`
	ClientID string          `json:"client_id"`
	Name     string          `json:"name"`
	Status   LifecycleStatus `json:"status"`
	Email    *string         `json:"email,omitempty"`
	Website  *string         `json:"website,omitempty"`
}
