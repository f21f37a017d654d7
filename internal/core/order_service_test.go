package core_test

import (
	"context"
	"testing"

	"chainex-assistant/internal/core"
)

func TestOrderService_Lookup_EitherIdentifier(t *testing.T) {
	ctx := context.Background()
	svc := core.NewOrderService(seedStore())

	tests := []struct {
		name   string
		ref    string
		wantID string
	}{
		{"legacy order id", "SO-100", "or-1"},
		{"current sales order no", "CX-2041", "or-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := svc.Lookup(ctx, tt.ref)
			if err != nil {
				t.Fatalf("Lookup(%s) failed: %v", tt.ref, err)
			}
			if order == nil {
				t.Fatalf("Lookup(%s) found nothing", tt.ref)
			}
			if order.ID != tt.wantID {
				t.Errorf("Lookup(%s) = %s, want %s", tt.ref, order.ID, tt.wantID)
			}
		})
	}
}

func TestOrderService_Lookup_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := core.NewOrderService(seedStore())

	order, err := svc.Lookup(ctx, "SO-999")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if order != nil {
		t.Errorf("expected nil for unknown ref, got %+v", order)
	}
}

func TestOrderService_Lookup_CombinedFilterFirstResult(t *testing.T) {
	// Two orders where one's legacy id equals the other's current id: the
	// first document in scan order wins, with no priority between fields.
	m := core.NewMemStore()
	m.Orders = []core.Order{
		{ID: "or-a", SalesOrderNo: strPtr("SO-500")},
		{ID: "or-b", OrderID: strPtr("SO-500")},
	}
	svc := core.NewOrderService(m)

	order, err := svc.Lookup(context.Background(), "SO-500")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if order == nil || order.ID != "or-a" {
		t.Errorf("expected first matching document or-a, got %+v", order)
	}
}

func TestOrderService_Details(t *testing.T) {
	ctx := context.Background()
	svc := core.NewOrderService(seedStore())

	order, err := svc.Lookup(ctx, "SO-100")
	if err != nil || order == nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	details, err := svc.Details(ctx, order)
	if err != nil {
		t.Fatalf("Details failed: %v", err)
	}
	if len(details.Items) != 2 {
		t.Errorf("expected 2 order items, got %d", len(details.Items))
	}
	if order.Ref() != "SO-100" {
		t.Errorf("Ref() = %s, want SO-100", order.Ref())
	}
}

func TestOrderService_ShipmentInfo_AbsentVsEmpty(t *testing.T) {
	ctx := context.Background()
	m := seedStore()
	m.Shipments = []core.Shipment{
		{OrderRef: "or-2", Legs: nil}, // record present, no legs
	}
	svc := core.NewOrderService(m)

	withRecord := &core.Order{ID: "or-2"}
	shipment, err := svc.ShipmentInfo(ctx, withRecord)
	if err != nil {
		t.Fatalf("ShipmentInfo failed: %v", err)
	}
	if shipment == nil {
		t.Fatal("present-but-empty aggregate collapsed to absent")
	}
	if len(shipment.Legs) != 0 {
		t.Errorf("expected empty legs, got %d", len(shipment.Legs))
	}

	withoutRecord := &core.Order{ID: "or-1"}
	shipment, err = svc.ShipmentInfo(ctx, withoutRecord)
	if err != nil {
		t.Fatalf("ShipmentInfo failed: %v", err)
	}
	if shipment != nil {
		t.Errorf("expected nil for absent aggregate, got %+v", shipment)
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	m := seedStore()
	svc := core.NewOrderService(m)

	order, err := svc.Lookup(ctx, "SO-100")
	if err != nil || order == nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if err := svc.UpdateStatus(ctx, order, "DELIVERED"); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	updated, err := svc.Lookup(ctx, "SO-100")
	if err != nil || updated == nil {
		t.Fatalf("re-Lookup failed: %v", err)
	}
	if updated.Status != "DELIVERED" {
		t.Errorf("expected DELIVERED, got %s", updated.Status)
	}
}

func TestClientService_Search_ActiveOnly(t *testing.T) {
	ctx := context.Background()
	svc := core.NewClientService(seedStore())

	clients, err := svc.Search(ctx, "acme")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(clients) != 1 {
		t.Fatalf("expected only the active client, got %d", len(clients))
	}
	if clients[0].Name != "Acme Corp" {
		t.Errorf("expected Acme Corp, got %s", clients[0].Name)
	}
	if clients[0].Email == nil || *clients[0].Email != "billing@acme.com" {
		t.Errorf("expected email to survive resolution, got %v", clients[0].Email)
	}
	if clients[0].Website != nil {
		t.Errorf("absent website should stay nil")
	}
}
