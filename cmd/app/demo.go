package main

import (
	"chainex-assistant/internal/core"

	"github.com/shopspring/decimal"
)

// demoStore builds the in-memory catalog used when DEMO_MODE is set, so the
// REPL can be exercised without Postgres.
func demoStore() *core.MemStore {
	str := func(s string) *string { return &s }
	dec := func(s string) *decimal.Decimal {
		d := decimal.RequireFromString(s)
		return &d
	}

	return &core.MemStore{
		Items: []core.Item{
			{ID: "it-1001", Name: "Steel Widget", Status: core.StatusActive},
			{ID: "it-1002", Name: "Copper Coil", Status: core.StatusActive},
			{ID: "it-1003", Name: "Rubber Gasket", Status: core.StatusActive},
			{ID: "it-1004", Name: "Brass Fitting (legacy)", Status: core.StatusInactive},
		},
		Warehouses: []core.Warehouse{
			{ID: "wh-01", WarehouseID: "WH-NORTH", Name: "North Distribution Center", Status: core.StatusActive, City: "Chicago", State: "IL", Country: "USA"},
			{ID: "wh-02", WarehouseID: "WH-SOUTH", Name: "South Depot", Status: core.StatusActive, City: "Dallas", State: "TX", Country: "USA"},
			{ID: "wh-03", WarehouseID: "WH-OLD", Name: "Decommissioned Yard", Status: core.StatusInactive, City: "Detroit", State: "MI", Country: "USA"},
		},
		Stock: []core.StockRecord{
			{ItemID: "it-1001", WarehouseID: "wh-01", Available: 120, ReorderLevel: 40},
			{ItemID: "it-1001", WarehouseID: "wh-02", Available: 12, ReorderLevel: 40},
			{ItemID: "it-1002", WarehouseID: "wh-01", Available: 0, ReorderLevel: 25},
			{ItemID: "it-1003", WarehouseID: "wh-02", Available: 300, ReorderLevel: 50},
		},
		Orders: []core.Order{
			{ID: "ord-1", OrderID: str("SO-1042"), Status: "Processing", Date: str("2026-08-12"), ClientName: str("Acme Industrial"), Total: dec("1520.50")},
			{ID: "ord-2", SalesOrderNo: str("CX-2041"), Status: "Shipped", Date: str("2026-08-20"), ClientName: str("Borealis Manufacturing"), Total: dec("310.00")},
			{ID: "ord-3", OrderID: str("SO-1043"), Status: "Delivered", Date: str("2026-07-02"), ClientName: str("Acme Industrial"), Total: dec("98.75")},
		},
		Lines: []core.OrderItem{
			{OrderRef: "ord-1", ItemName: "Steel Widget", Quantity: 40},
			{OrderRef: "ord-1", ItemName: "Copper Coil", Quantity: 10},
			{OrderRef: "ord-1", ItemName: "Rubber Gasket", Quantity: 200},
			{OrderRef: "ord-1", ItemName: "Hex Bolt", Quantity: 500},
			{OrderRef: "ord-2", ItemName: "Rubber Gasket", Quantity: 60},
		},
		Shipments: []core.Shipment{
			{OrderRef: "ord-2", Legs: []core.ShipmentLeg{
				{Courier: "FastFreight", TrackingID: str("FF-99120041"), Status: "In Transit"},
				{Courier: "LastMile Co", Status: "Pending"},
			}},
			{OrderRef: "ord-3", Legs: []core.ShipmentLeg{
				{Courier: "FastFreight", TrackingID: str("FF-98230112"), Status: "Delivered"},
			}},
		},
		Invoices: []core.Invoice{
			{OrderRef: "ord-1", Lines: []core.InvoiceLine{
				{InvoiceID: "INV-7001", Type: "Standard", Paid: false, Gross: decimal.RequireFromString("1520.50"), Due: decimal.RequireFromString("1520.50"), Currency: "USD"},
			}},
			{OrderRef: "ord-3", Lines: []core.InvoiceLine{
				{InvoiceID: "INV-6900", Type: "Standard", Paid: true, Gross: decimal.RequireFromString("98.75"), Due: decimal.RequireFromString("0.00"), Currency: "USD"},
			}},
		},
		Clients: []core.Client{
			{ID: "cl-1", ClientID: "CL-ACME", Name: "Acme Industrial", Status: core.StatusActive, Email: str("orders@acme-industrial.example"), Website: str("https://acme-industrial.example")},
			{ID: "cl-2", ClientID: "CL-BOREALIS", Name: "Borealis Manufacturing", Status: core.StatusActive, Email: str("purchasing@borealis.example")},
			{ID: "cl-3", ClientID: "CL-DEFUNCT", Name: "Defunct Trading", Status: core.StatusInactive},
		},
	}
}
