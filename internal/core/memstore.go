package core

import (
	"context"
	"sync"
)

// MemStore is an in-memory Store. It backs the engine's unit tests and the
// REPL's demo mode, and serves as the reference implementation of the Store
// contract — in particular the combined-filter order lookup, where documents
// are scanned in insertion order and the first one matching either
// identifier field wins.
type MemStore struct {
	mu         sync.RWMutex
	Items      []Item
	Warehouses []Warehouse
	Clients    []Client
	Orders     []Order
	Stock      []StockRecord
	Lines      []OrderItem
	Shipments  []Shipment
	Invoices   []Invoice
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (m *MemStore) FindItems(_ context.Context, name Fragment) ([]Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Item
	for _, it := range m.Items {
		if it.Status == StatusActive && name.Match(it.Name) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *MemStore) FindWarehouses(_ context.Context, name Fragment) ([]Warehouse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Warehouse
	for _, w := range m.Warehouses {
		if w.Status != StatusActive {
			continue
		}
		if name.IsZero() || name.Match(w.Name) {
			out = append(out, w)
		}
	}
	return out, nil
}

func (m *MemStore) FindClients(_ context.Context, name Fragment) ([]Client, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Client
	for _, c := range m.Clients {
		if c.Status == StatusActive && name.Match(c.Name) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *MemStore) FindOrder(_ context.Context, ref string) (*Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.Orders {
		o := m.Orders[i]
		if matchesRef(o.OrderID, ref) || matchesRef(o.SalesOrderNo, ref) {
			return &o, nil
		}
	}
	return nil, nil
}

func matchesRef(field *string, ref string) bool {
	return field != nil && *field == ref
}

func (m *MemStore) WarehouseByID(_ context.Context, id string) (*Warehouse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.Warehouses {
		if m.Warehouses[i].ID == id {
			w := m.Warehouses[i]
			return &w, nil
		}
	}
	return nil, nil
}

func (m *MemStore) StockForItem(_ context.Context, itemID, warehouseID string) ([]StockRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []StockRecord
	for _, s := range m.Stock {
		if s.ItemID != itemID {
			continue
		}
		if warehouseID != "" && s.WarehouseID != warehouseID {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (m *MemStore) OrderItems(_ context.Context, orderID string) ([]OrderItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []OrderItem
	for _, l := range m.Lines {
		if l.OrderRef == orderID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *MemStore) ShipmentForOrder(_ context.Context, orderID string) (*Shipment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.Shipments {
		if m.Shipments[i].OrderRef == orderID {
			s := m.Shipments[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (m *MemStore) InvoiceForOrder(_ context.Context, orderID string) (*Invoice, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.Invoices {
		if m.Invoices[i].OrderRef == orderID {
			inv := m.Invoices[i]
			return &inv, nil
		}
	}
	return nil, nil
}

func (m *MemStore) SetOrderStatus(_ context.Context, orderID, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.Orders {
		if m.Orders[i].ID == orderID {
			m.Orders[i].Status = status
			return nil
		}
	}
	return nil
}
