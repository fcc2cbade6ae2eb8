// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

var ErrUnsupportedType = errors.New("unsupported database type")

// Connector establishes and returns a live database handle or fails.
type Connector interface {
	Connect(ctx context.Context) (*sql.DB, error)
}

// SQLConnector opens a database/sql pool for the configured driver,
// verifies it with a ping and makes sure the schema exists.
type SQLConnector struct {
	Type string
	URL  string
}

// DriverName maps a DATABASE_TYPE value to a registered database/sql driver
func DriverName(dbType string) (string, error) {
	switch strings.ToLower(dbType) {
	case "postgres", "postgresql":
		return "postgres", nil
	case "sqlite", "sqlite3":
		return "sqlite", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, dbType)
	}
}

func (c SQLConnector) Connect(ctx context.Context) (*sql.DB, error) {
	driver, err := DriverName(c.Type)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(driver, c.URL)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	// sqlite serializes writers anyway, and an in-memory database
	// exists only for the connection that created it
	if driver == "sqlite" {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := CreateSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}

	return conn, nil
}
