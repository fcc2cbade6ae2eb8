// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles the database connection and schema creation.

# Connecting

SQLConnector satisfies the Connector interface:

	var c db.Connector = db.SQLConnector{Type: cfg.DatabaseType, URL: cfg.DatabaseURL}
	conn, err := c.Connect(ctx)

Connect opens the pool, pings it and runs CreateSchema. Any failure is
returned to the caller; there is no retry.

Supported types:

  - sqlite (default): modernc.org/sqlite, pure Go, no cgo
  - postgres: github.com/lib/pq

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - food: Catalog entries with price, category and image file name

# Indexes

  - food.category
  - food.created_at
*/
package db
