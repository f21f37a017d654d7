package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"chainex-assistant/internal/core"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store implements core.Store over Postgres. Fuzzy finds use
// ILIKE ... ESCAPE '\' with the fragment escaped so pattern characters match
// literally; the shipment and invoice inner sequences live in JSONB columns,
// mirroring the aggregate documents the upstream systems write.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) FindItems(ctx context.Context, name core.Fragment) ([]core.Item, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, item_name, status
		FROM items
		WHERE item_name ILIKE $1 ESCAPE '\' AND status = 'ACTIVE'
		ORDER BY item_name
	`, name.LikePattern())
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []core.Item
	for rows.Next() {
		var it core.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Status); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *Store) FindWarehouses(ctx context.Context, name core.Fragment) ([]core.Warehouse, error) {
	query := `
		SELECT id, warehouse_id, name, status, city, state, country
		FROM warehouses
		WHERE status = 'ACTIVE'
		ORDER BY name
	`
	args := []any{}
	if !name.IsZero() {
		query = `
			SELECT id, warehouse_id, name, status, city, state, country
			FROM warehouses
			WHERE name ILIKE $1 ESCAPE '\' AND status = 'ACTIVE'
			ORDER BY name
		`
		args = append(args, name.LikePattern())
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query warehouses: %w", err)
	}
	defer rows.Close()

	var warehouses []core.Warehouse
	for rows.Next() {
		var w core.Warehouse
		if err := rows.Scan(&w.ID, &w.WarehouseID, &w.Name, &w.Status, &w.City, &w.State, &w.Country); err != nil {
			return nil, fmt.Errorf("failed to scan warehouse: %w", err)
		}
		warehouses = append(warehouses, w)
	}
	return warehouses, rows.Err()
}

func (s *Store) FindClients(ctx context.Context, name core.Fragment) ([]core.Client, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, client_id, client_name, status, email, website
		FROM clients
		WHERE client_name ILIKE $1 ESCAPE '\' AND status = 'ACTIVE'
		ORDER BY client_name
	`, name.LikePattern())
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	var clients []core.Client
	for rows.Next() {
		var c core.Client
		if err := rows.Scan(&c.ID, &c.ClientID, &c.Name, &c.Status, &c.Email, &c.Website); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

// FindOrder matches ref against both identifier fields in one combined
// query; the first row wins. Orders carry no status filter.
func (s *Store) FindOrder(ctx context.Context, ref string) (*core.Order, error) {
	var o core.Order
	err := s.pool.QueryRow(ctx, `
		SELECT id, order_id, sales_order_no, order_status, order_date, client_name, order_total
		FROM orders
		WHERE order_id = $1 OR sales_order_no = $1
		LIMIT 1
	`, ref).Scan(&o.ID, &o.OrderID, &o.SalesOrderNo, &o.Status, &o.Date, &o.ClientName, &o.Total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query order: %w", err)
	}
	return &o, nil
}

func (s *Store) WarehouseByID(ctx context.Context, id string) (*core.Warehouse, error) {
	var w core.Warehouse
	err := s.pool.QueryRow(ctx, `
		SELECT id, warehouse_id, name, status, city, state, country
		FROM warehouses
		WHERE id = $1
	`, id).Scan(&w.ID, &w.WarehouseID, &w.Name, &w.Status, &w.City, &w.State, &w.Country)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query warehouse %s: %w", id, err)
	}
	return &w, nil
}

func (s *Store) StockForItem(ctx context.Context, itemID, warehouseID string) ([]core.StockRecord, error) {
	query := `
		SELECT item_id, warehouse_id, available_stock, reorder_level
		FROM item_stocks
		WHERE item_id = $1
		ORDER BY warehouse_id
	`
	args := []any{itemID}
	if warehouseID != "" {
		query = `
			SELECT item_id, warehouse_id, available_stock, reorder_level
			FROM item_stocks
			WHERE item_id = $1 AND warehouse_id = $2
			ORDER BY warehouse_id
		`
		args = append(args, warehouseID)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock: %w", err)
	}
	defer rows.Close()

	var stocks []core.StockRecord
	for rows.Next() {
		var st core.StockRecord
		if err := rows.Scan(&st.ItemID, &st.WarehouseID, &st.Available, &st.ReorderLevel); err != nil {
			return nil, fmt.Errorf("failed to scan stock record: %w", err)
		}
		stocks = append(stocks, st)
	}
	return stocks, rows.Err()
}

func (s *Store) OrderItems(ctx context.Context, orderID string) ([]core.OrderItem, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT order_ref, item_name, quantity
		FROM order_items
		WHERE order_ref = $1
		ORDER BY position
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	var items []core.OrderItem
	for rows.Next() {
		var it core.OrderItem
		if err := rows.Scan(&it.OrderRef, &it.ItemName, &it.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *Store) ShipmentForOrder(ctx context.Context, orderID string) (*core.Shipment, error) {
	var legsJSON []byte
	err := s.pool.QueryRow(ctx,
		"SELECT legs FROM shipments WHERE order_ref = $1", orderID,
	).Scan(&legsJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query shipment: %w", err)
	}

	shipment := &core.Shipment{OrderRef: orderID}
	if err := json.Unmarshal(legsJSON, &shipment.Legs); err != nil {
		return nil, fmt.Errorf("failed to decode shipment legs: %w", err)
	}
	return shipment, nil
}

func (s *Store) InvoiceForOrder(ctx context.Context, orderID string) (*core.Invoice, error) {
	var linesJSON []byte
	err := s.pool.QueryRow(ctx,
		"SELECT lines FROM invoices WHERE order_ref = $1", orderID,
	).Scan(&linesJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query invoice: %w", err)
	}

	invoice := &core.Invoice{OrderRef: orderID}
	if err := json.Unmarshal(linesJSON, &invoice.Lines); err != nil {
		return nil, fmt.Errorf("failed to decode invoice lines: %w", err)
	}
	return invoice, nil
}

func (s *Store) SetOrderStatus(ctx context.Context, orderID, status string) error {
	_, err := s.pool.Exec(ctx,
		"UPDATE orders SET order_status = $1 WHERE id = $2", status, orderID,
	)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return nil
}
