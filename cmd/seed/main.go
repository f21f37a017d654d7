// seed is a one-shot tool that loads the demo catalog into Postgres.
// Run it after applying migrations to get a database the REPL and server
// can answer questions about.
//
// Usage: go run ./cmd/seed
package main

import (
	"context"
	"log"

	"chainex-assistant/internal/db"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer pool.Close()

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Fatalf("Failed to begin transaction: %v", err)
	}
	defer tx.Rollback(ctx)

	log.Println("Clearing existing documents...")
	_, err = tx.Exec(ctx, `
		DELETE FROM invoices;
		DELETE FROM shipments;
		DELETE FROM order_items;
		DELETE FROM orders;
		DELETE FROM item_stocks;
		DELETE FROM items;
		DELETE FROM warehouses;
		DELETE FROM clients;
	`)
	if err != nil {
		log.Fatalf("Failed to clear documents: %v", err)
	}

	log.Println("Seeding items and warehouses...")
	itemWidget := uuid.NewString()
	itemCoil := uuid.NewString()
	itemGasket := uuid.NewString()
	itemLegacy := uuid.NewString()
	whNorth := uuid.NewString()
	whSouth := uuid.NewString()
	whOld := uuid.NewString()

	_, err = tx.Exec(ctx, `
		INSERT INTO items (id, item_name, status) VALUES
		  ($1, 'Steel Widget',           'ACTIVE'),
		  ($2, 'Copper Coil',            'ACTIVE'),
		  ($3, 'Rubber Gasket',          'ACTIVE'),
		  ($4, 'Brass Fitting (legacy)', 'INACTIVE');
	`, itemWidget, itemCoil, itemGasket, itemLegacy)
	if err != nil {
		log.Fatalf("Failed to seed items: %v", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO warehouses (id, warehouse_id, name, status, city, state, country) VALUES
		  ($1, 'WH-NORTH', 'North Distribution Center', 'ACTIVE',   'Chicago', 'IL', 'USA'),
		  ($2, 'WH-SOUTH', 'South Depot',               'ACTIVE',   'Dallas',  'TX', 'USA'),
		  ($3, 'WH-OLD',   'Decommissioned Yard',       'INACTIVE', 'Detroit', 'MI', 'USA');
	`, whNorth, whSouth, whOld)
	if err != nil {
		log.Fatalf("Failed to seed warehouses: %v", err)
	}

	log.Println("Seeding stock levels...")
	_, err = tx.Exec(ctx, `
		INSERT INTO item_stocks (item_id, warehouse_id, available_stock, reorder_level) VALUES
		  ($1, $4, 120, 40),
		  ($1, $5,  12, 40),
		  ($2, $4,   0, 25),
		  ($3, $5, 300, 50);
	`, itemWidget, itemCoil, itemGasket, whNorth, whSouth)
	if err != nil {
		log.Fatalf("Failed to seed stock: %v", err)
	}

	log.Println("Seeding orders, shipments and invoices...")
	ord1 := uuid.NewString()
	ord2 := uuid.NewString()
	ord3 := uuid.NewString()

	_, err = tx.Exec(ctx, `
		INSERT INTO orders (id, order_id, sales_order_no, order_status, order_date, client_name, order_total) VALUES
		  ($1, 'SO-1042', NULL,      'Processing', '2026-08-12', 'Acme Industrial',        1520.50),
		  ($2, NULL,      'CX-2041', 'Shipped',    '2026-08-20', 'Borealis Manufacturing',  310.00),
		  ($3, 'SO-1043', NULL,      'Delivered',  '2026-07-02', 'Acme Industrial',          98.75);
	`, ord1, ord2, ord3)
	if err != nil {
		log.Fatalf("Failed to seed orders: %v", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO order_items (order_ref, position, item_name, quantity) VALUES
		  ($1, 1, 'Steel Widget',  40),
		  ($1, 2, 'Copper Coil',   10),
		  ($1, 3, 'Rubber Gasket', 200),
		  ($1, 4, 'Hex Bolt',      500),
		  ($2, 1, 'Rubber Gasket', 60);
	`, ord1, ord2)
	if err != nil {
		log.Fatalf("Failed to seed order items: %v", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO shipments (order_ref, legs) VALUES
		  ($1, '[{"courier": "FastFreight", "tracking_id": "FF-99120041", "status": "In Transit"},
		         {"courier": "LastMile Co", "status": "Pending"}]'),
		  ($2, '[{"courier": "FastFreight", "tracking_id": "FF-98230112", "status": "Delivered"}]');
	`, ord2, ord3)
	if err != nil {
		log.Fatalf("Failed to seed shipments: %v", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO invoices (order_ref, lines) VALUES
		  ($1, '[{"invoice_id": "INV-7001", "invoice_type": "Standard", "paid": false, "gross_amount": "1520.50", "due_amount": "1520.50", "currency": "USD"}]'),
		  ($2, '[{"invoice_id": "INV-6900", "invoice_type": "Standard", "paid": true,  "gross_amount": "98.75",   "due_amount": "0.00",    "currency": "USD"}]');
	`, ord1, ord3)
	if err != nil {
		log.Fatalf("Failed to seed invoices: %v", err)
	}

	log.Println("Seeding clients...")
	_, err = tx.Exec(ctx, `
		INSERT INTO clients (id, client_id, client_name, status, email, website) VALUES
		  ($1, 'CL-ACME',     'Acme Industrial',        'ACTIVE',   'orders@acme-industrial.example', 'https://acme-industrial.example'),
		  ($2, 'CL-BOREALIS', 'Borealis Manufacturing', 'ACTIVE',   'purchasing@borealis.example',    NULL),
		  ($3, 'CL-DEFUNCT',  'Defunct Trading',        'INACTIVE', NULL,                             NULL);
	`, uuid.NewString(), uuid.NewString(), uuid.NewString())
	if err != nil {
		log.Fatalf("Failed to seed clients: %v", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Fatalf("Failed to commit: %v", err)
	}

	log.Println("Demo catalog seeded successfully.")
}
