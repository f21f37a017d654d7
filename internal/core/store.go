package core

import "context"

// Store is the document-store capability set the engine depends on: fuzzy
// find per collection, exact find by identity, and one single-field update.
// Reads that find nothing return (nil, nil); errors are reserved for store
// failures. Collections with a lifecycle status (items, warehouses, clients)
// are filtered to ACTIVE by the implementation; orders are exempt.
type Store interface {
	// FindItems returns ACTIVE items whose name contains the fragment.
	FindItems(ctx context.Context, name Fragment) ([]Item, error)

	// FindWarehouses returns ACTIVE warehouses whose name contains the
	// fragment. A zero fragment lists all ACTIVE warehouses.
	FindWarehouses(ctx context.Context, name Fragment) ([]Warehouse, error)

	// FindClients returns ACTIVE clients whose name contains the fragment.
	FindClients(ctx context.Context, name Fragment) ([]Client, error)

	// FindOrder resolves ref against both order identifier fields in a single
	// combined-filter query; the first matching document wins. No status
	// filter applies.
	FindOrder(ctx context.Context, ref string) (*Order, error)

	// WarehouseByID is an exact lookup by internal identity, regardless of
	// lifecycle status.
	WarehouseByID(ctx context.Context, id string) (*Warehouse, error)

	// StockForItem returns the stock records for an item. A non-empty
	// warehouseID narrows the result to that warehouse.
	StockForItem(ctx context.Context, itemID, warehouseID string) ([]StockRecord, error)

	// OrderItems returns the line items of an order by internal identity.
	OrderItems(ctx context.Context, orderID string) ([]OrderItem, error)

	// ShipmentForOrder returns the order's aggregate shipment document, or
	// (nil, nil) when none exists. A document with zero legs is returned
	// as-is, not collapsed to nil.
	ShipmentForOrder(ctx context.Context, orderID string) (*Shipment, error)

	// InvoiceForOrder returns the order's aggregate invoice document, with
	// the same absent-vs-empty contract as ShipmentForOrder.
	InvoiceForOrder(ctx context.Context, orderID string) (*Invoice, error)

	// SetOrderStatus overwrites the status field of one order. This is the
	// only write in the engine's contract.
	SetOrderStatus(ctx context.Context, orderID, status string) error
}
