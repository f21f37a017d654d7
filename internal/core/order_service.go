package core

import (
	"context"
	"fmt"
)

// OrderDetails is an order joined with its line items. Items are returned in
// full; how many to display is the renderer's policy, not the resolver's.
type OrderDetails struct {
	Order *Order
	Items []OrderItem
}

// OrderService resolves orders by either external identifier and traverses
// the order → items/shipments/invoices relations. The status update is the
// single mutation the engine performs.
type OrderService interface {
	// Lookup resolves ref against both identifier fields in one combined
	// query. Returns (nil, nil) when no order matches.
	Lookup(ctx context.Context, ref string) (*Order, error)

	// Details fetches the order's line items.
	Details(ctx context.Context, order *Order) (*OrderDetails, error)

	// ShipmentInfo returns the order's aggregate shipment document, (nil,
	// nil) when none exists. An existing document with zero legs is
	// returned as-is — the two states render differently.
	ShipmentInfo(ctx context.Context, order *Order) (*Shipment, error)

	// InvoiceInfo returns the order's aggregate invoice document with the
	// same absent-vs-empty contract as ShipmentInfo.
	InvoiceInfo(ctx context.Context, order *Order) (*Invoice, error)

	// UpdateStatus overwrites the order's status field. No compensating
	// transaction, no retry: a failed write surfaces as the pipeline error.
	UpdateStatus(ctx context.Context, order *Order, status string) error
}

type orderService struct {
	store Store
}

func NewOrderService(store Store) OrderService {
	return &orderService{store: store}
}

func (s *orderService) Lookup(ctx context.Context, ref string) (*Order, error) {
	order, err := s.store.FindOrder(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("failed to look up order %s: %w", ref, err)
	}
	return order, nil
}

func (s *orderService) Details(ctx context.Context, order *Order) (*OrderDetails, error) {
	items, err := s.store.OrderItems(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch items for order %s: %w", order.Ref(), err)
	}
	return &OrderDetails{Order: order, Items: items}, nil
}

func (s *orderService) ShipmentInfo(ctx context.Context, order *Order) (*Shipment, error) {
	shipment, err := s.store.ShipmentForOrder(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shipment for order %s: %w", order.Ref(), err)
	}
	return shipment, nil
}

func (s *orderService) InvoiceInfo(ctx context.Context, order *Order) (*Invoice, error) {
	invoice, err := s.store.InvoiceForOrder(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invoice for order %s: %w", order.Ref(), err)
	}
	return invoice, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, order *Order, status string) error {
	if err := s.store.SetOrderStatus(ctx, order.ID, status); err != nil {
		return fmt.Errorf("failed to update status of order %s: %w", order.Ref(), err)
	}
	return nil
}
