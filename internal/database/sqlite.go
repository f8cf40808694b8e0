package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Connect opens the local sqlite store and makes sure the web schema
// exists. The web service owns this schema and creates it lazily; the
// admin console's PostgreSQL schema is a separate concern.
func Connect(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite store: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite store: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}
	if err := EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// EnsureSchema creates the web-side tables if they are absent. Statements
// are idempotent so startup is safe against an already-initialized file.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS customer (
			customer_id INTEGER PRIMARY KEY AUTOINCREMENT,
			full_name TEXT NOT NULL,
			email TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			phone TEXT UNIQUE,
			status TEXT DEFAULT 'Active'
		)`,
		`CREATE TABLE IF NOT EXISTS staff (
			staff_id INTEGER PRIMARY KEY AUTOINCREMENT,
			full_name TEXT NOT NULL,
			email TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			role TEXT NOT NULL,
			hire_date TEXT,
			branch_code TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS category (
			code TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			parent_code TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS branch (
			branch_code TEXT PRIMARY KEY,
			name TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS equipment (
			equip_id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			brand TEXT,
			model TEXT,
			daily_rate REAL,
			deposit REAL,
			status TEXT,
			category_code TEXT,
			FOREIGN KEY (category_code) REFERENCES category(code)
		)`,
		`CREATE TABLE IF NOT EXISTS equip_copy (
			equip_id INTEGER,
			copy_no INTEGER,
			equip_code TEXT PRIMARY KEY,
			branch_code TEXT,
			condition TEXT,
			purchase_date TEXT,
			serial_number TEXT UNIQUE,
			FOREIGN KEY (equip_id) REFERENCES equipment(equip_id),
			FOREIGN KEY (branch_code) REFERENCES branch(branch_code)
		)`,
		`CREATE TABLE IF NOT EXISTS reservation (
			reservation_id INTEGER PRIMARY KEY AUTOINCREMENT,
			customer_id INTEGER,
			equip_id INTEGER,
			status TEXT DEFAULT 'Pending',
			start_date TEXT,
			end_date TEXT,
			FOREIGN KEY (customer_id) REFERENCES customer(customer_id),
			FOREIGN KEY (equip_id) REFERENCES equipment(equip_id)
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("initializing web schema: %w", err)
		}
	}
	return nil
}
