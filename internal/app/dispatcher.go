package app

import (
	"context"
	"errors"
	"fmt"
	"log"

	"chainex-assistant/internal/core"
)

// ErrUnknownOperation is returned by Handle when the request names an
// operation the dispatcher has no pipeline for.
var ErrUnknownOperation = errors.New("unknown operation")

type dispatcher struct {
	inventory core.InventoryService
	orders    core.OrderService
	clients   core.ClientService
}

// NewDispatcher wires the query pipelines over the resolver services.
func NewDispatcher(inventory core.InventoryService, orders core.OrderService, clients core.ClientService) Dispatcher {
	return &dispatcher{inventory: inventory, orders: orders, clients: clients}
}

// errorPrefix is the generic per-operation error line shown when a pipeline
// fails unexpectedly. The failure's description is appended verbatim; no
// further internal detail leaks.
var errorPrefix = map[Operation]string{
	OpStockSearch:   "Error checking stock: ",
	OpOrderStatus:   "Error checking order status: ",
	OpShipmentInfo:  "Error checking shipment: ",
	OpInvoiceInfo:   "Error checking invoice: ",
	OpClientInfo:    "Error checking client information: ",
	OpWarehouseInfo: "Error checking warehouse information: ",
}

func (d *dispatcher) Handle(ctx context.Context, req Request, sink Sink) error {
	var messages []string
	var err error

	switch req.Operation {
	case OpStockSearch:
		messages, err = d.stockSearch(ctx, req.Slots)
	case OpOrderStatus:
		messages, err = d.orderStatus(ctx, req.Slots)
	case OpShipmentInfo:
		messages, err = d.shipmentInfo(ctx, req.Slots)
	case OpInvoiceInfo:
		messages, err = d.invoiceInfo(ctx, req.Slots)
	case OpClientInfo:
		messages, err = d.clientInfo(ctx, req.Slots)
	case OpWarehouseInfo:
		messages, err = d.warehouseInfo(ctx, req.Slots)
	default:
		return fmt.Errorf("%w %q", ErrUnknownOperation, req.Operation)
	}

	// Pipeline boundary: any resolution failure becomes one generic message
	// carrying the failure's description, and is logged for the operator.
	if err != nil {
		log.Printf("%s: %v", req.Operation, err)
		messages = []string{errorPrefix[req.Operation] + err.Error()}
	}

	for _, msg := range messages {
		if uttErr := sink.Utter(ctx, msg); uttErr != nil {
			return fmt.Errorf("failed to deliver message: %w", uttErr)
		}
	}
	return nil
}

func (d *dispatcher) stockSearch(ctx context.Context, slots Slots) ([]string, error) {
	if slots.ItemName == "" {
		return []string{"Please specify the item name to check stock."}, nil
	}

	results, err := d.inventory.SearchStock(ctx, core.Fragment(slots.ItemName), core.Fragment(slots.WarehouseName))
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return []string{fmt.Sprintf("No items found matching '%s'.", slots.ItemName)}, nil
	}
	return []string{renderStock(results)}, nil
}

func (d *dispatcher) orderStatus(ctx context.Context, slots Slots) ([]string, error) {
	if slots.OrderID == "" {
		return []string{"Please provide an order ID."}, nil
	}

	order, err := d.orders.Lookup(ctx, slots.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return []string{fmt.Sprintf("Order '%s' not found.", slots.OrderID)}, nil
	}

	// Write branch: a target status alongside the identifier updates the
	// order instead of reading it. Terminal — no read response follows.
	if slots.Status != "" {
		if err := d.orders.UpdateStatus(ctx, order, slots.Status); err != nil {
			return nil, err
		}
		return []string{fmt.Sprintf("%s Order %s status updated to '%s'.", glyphPaid, slots.OrderID, slots.Status)}, nil
	}

	details, err := d.orders.Details(ctx, order)
	if err != nil {
		return nil, err
	}
	return []string{renderOrder(details)}, nil
}

func (d *dispatcher) shipmentInfo(ctx context.Context, slots Slots) ([]string, error) {
	if slots.OrderID == "" {
		return []string{"Please provide an order ID to check shipment."}, nil
	}

	order, err := d.orders.Lookup(ctx, slots.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return []string{fmt.Sprintf("Order '%s' not found.", slots.OrderID)}, nil
	}

	shipment, err := d.orders.ShipmentInfo(ctx, order)
	if err != nil {
		return nil, err
	}
	return []string{renderShipment(slots.OrderID, shipment)}, nil
}

func (d *dispatcher) invoiceInfo(ctx context.Context, slots Slots) ([]string, error) {
	if slots.OrderID == "" {
		return []string{"Please provide an order ID to check invoice."}, nil
	}

	order, err := d.orders.Lookup(ctx, slots.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return []string{fmt.Sprintf("Order '%s' not found.", slots.OrderID)}, nil
	}

	invoice, err := d.orders.InvoiceInfo(ctx, order)
	if err != nil {
		return nil, err
	}
	return []string{renderInvoice(slots.OrderID, invoice)}, nil
}

func (d *dispatcher) clientInfo(ctx context.Context, slots Slots) ([]string, error) {
	if slots.ClientName == "" {
		return []string{"Please specify the client name."}, nil
	}

	clients, err := d.clients.Search(ctx, core.Fragment(slots.ClientName))
	if err != nil {
		return nil, err
	}
	if len(clients) == 0 {
		return []string{fmt.Sprintf("No active clients found matching '%s'.", slots.ClientName)}, nil
	}
	return []string{renderClients(clients)}, nil
}

// warehouseInfo is the one pipeline without a required slot: absent a name
// fragment it lists all active warehouses.
func (d *dispatcher) warehouseInfo(ctx context.Context, slots Slots) ([]string, error) {
	warehouses, err := d.inventory.Warehouses(ctx, core.Fragment(slots.WarehouseName))
	if err != nil {
		return nil, err
	}
	if len(warehouses) == 0 {
		if slots.WarehouseName != "" {
			return []string{fmt.Sprintf("No warehouses found matching '%s'.", slots.WarehouseName)}, nil
		}
		return []string{"No active warehouses found."}, nil
	}
	return []string{renderWarehouses(warehouses)}, nil
}
