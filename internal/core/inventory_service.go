package core

import (
	"context"
	"fmt"
)

// unknownWarehouse labels stock rows whose warehouse reference no longer
// resolves. A dangling reference degrades to this placeholder instead of
// failing the whole search.
const unknownWarehouse = "Unknown Warehouse"

// StockRow is one resolved stock record: quantities joined with the
// warehouse display name and the classified health tier.
type StockRow struct {
	WarehouseName string
	Available     int
	ReorderLevel  int
	Health        StockHealth
}

// ItemStock groups the resolved stock rows of one matched item. An empty
// Rows slice means the item exists but carries no stock information.
type ItemStock struct {
	Item Item
	Rows []StockRow
}

// InventoryService resolves items and warehouses and traverses the
// item → stock → warehouse relation.
type InventoryService interface {
	// SearchStock fuzzy-matches ACTIVE items by name and resolves each
	// match's stock records. A non-zero warehouse fragment narrows the stock
	// to the first warehouse it matches; a fragment matching nothing leaves
	// the search unfiltered rather than failing.
	SearchStock(ctx context.Context, item, warehouse Fragment) ([]ItemStock, error)

	// Warehouses returns ACTIVE warehouses, fuzzy-filtered by name when the
	// fragment is non-zero.
	Warehouses(ctx context.Context, name Fragment) ([]Warehouse, error)
}

type inventoryService struct {
	store Store
}

func NewInventoryService(store Store) InventoryService {
	return &inventoryService{store: store}
}

func (s *inventoryService) SearchStock(ctx context.Context, item, warehouse Fragment) ([]ItemStock, error) {
	items, err := s.store.FindItems(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to search items: %w", err)
	}
	if len(items) == 0 {
		return nil, nil
	}

	// Resolve the optional warehouse filter once, up front. No match means
	// no filter, not an error.
	var warehouseID string
	if !warehouse.IsZero() {
		matches, err := s.store.FindWarehouses(ctx, warehouse)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve warehouse filter: %w", err)
		}
		if len(matches) > 0 {
			warehouseID = matches[0].ID
		}
	}

	results := make([]ItemStock, 0, len(items))
	for _, it := range items {
		stocks, err := s.store.StockForItem(ctx, it.ID, warehouseID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch stock for item %s: %w", it.ID, err)
		}

		rows := make([]StockRow, 0, len(stocks))
		for _, st := range stocks {
			name := unknownWarehouse
			wh, err := s.store.WarehouseByID(ctx, st.WarehouseID)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve warehouse %s: %w", st.WarehouseID, err)
			}
			if wh != nil {
				name = wh.Name
			}
			rows = append(rows, StockRow{
				WarehouseName: name,
				Available:     st.Available,
				ReorderLevel:  st.ReorderLevel,
				Health:        ClassifyStock(st.Available, st.ReorderLevel),
			})
		}
		results = append(results, ItemStock{Item: it, Rows: rows})
	}
	return results, nil
}

func (s *inventoryService) Warehouses(ctx context.Context, name Fragment) ([]Warehouse, error) {
	warehouses, err := s.store.FindWarehouses(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to search warehouses: %w", err)
	}
	return warehouses, nil
}
