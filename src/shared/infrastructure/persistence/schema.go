package persistence

import (
	"database/sql"
	"fmt"
	"log"
)

// schemaStatements creates the four relations of the POS store. Kept as
// IF NOT EXISTS statements so startup is idempotent against an existing
// database.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id BIGSERIAL PRIMARY KEY,
		barcode TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price NUMERIC(12,2) NOT NULL CHECK (price >= 0),
		stock BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		credit_limit NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (credit_limit >= 0),
		balance NUMERIC(12,2) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id BIGSERIAL PRIMARY KEY,
		customer_id BIGINT REFERENCES customers(id),
		total_amount NUMERIC(12,2) NOT NULL,
		payment_method TEXT NOT NULL CHECK (payment_method IN ('cash', 'credit', 'card')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS sale_items (
		id BIGSERIAL PRIMARY KEY,
		sale_id BIGINT NOT NULL REFERENCES sales(id),
		product_id BIGINT NOT NULL REFERENCES products(id),
		quantity INTEGER NOT NULL CHECK (quantity > 0),
		unit_price NUMERIC(12,2) NOT NULL,
		subtotal NUMERIC(12,2) NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_products_barcode ON products(barcode)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_customer ON sales(customer_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_created_at ON sales(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_sale_items_sale ON sale_items(sale_id)`,
}

// EnsureSchema creates the tables and indexes the service needs.
func EnsureSchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("error ensuring schema: %w", err)
		}
	}
	return nil
}

// SeedDemoData loads a handful of sample products when the catalog is empty,
// for local development against a fresh database.
func SeedDemoData(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return fmt.Errorf("error counting products: %w", err)
	}
	if count > 0 {
		return nil
	}

	samples := []struct {
		barcode, name, description string
		price                      string
		stock                      int64
	}{
		{"1001", "Rice 5kg", "Basmati Rice", "850.00", 50},
		{"1002", "Sugar 1kg", "White Sugar", "180.00", 100},
		{"1003", "Tea 100g", "Black Tea", "120.00", 75},
		{"1004", "Milk Powder 400g", "Full Cream", "680.00", 40},
		{"1005", "Bread", "White Bread", "95.00", 30},
	}

	for _, s := range samples {
		_, err := db.Exec(
			`INSERT INTO products (barcode, name, description, price, stock) VALUES ($1, $2, $3, $4, $5)`,
			s.barcode, s.name, s.description, s.price, s.stock,
		)
		if err != nil {
			return fmt.Errorf("error seeding product %s: %w", s.barcode, err)
		}
	}

	log.Printf("Seeded %d demo products", len(samples))
	return nil
}
