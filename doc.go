// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the food-del API server.

food-del is the backend of a food-ordering web app. This process serves
the food catalog and its images; user accounts, carts and orders are
mounted under their prefixes but handled elsewhere.

# Starting the Server

With no configuration it listens on port 4000 and uses a local sqlite
file:

	go run .

Or with flags:

	go run . -p 4000 -t postgres -d "postgres://..."

A .env file in the working directory is loaded first when present.

# Startup Order

 1. Load .env and parse configuration
 2. Connect to the database (fatal on failure, no retry)
 3. Build the mount table and wrap the mux in the middleware stack
 4. Bind the port (fatal if in use), then log "Server Running on ..."
 5. Serve until SIGINT or SIGTERM, then shut down gracefully

# Configuration

  - PORT (-p): Server port (default: 4000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string
  - UPLOAD_DIR (-u): Image directory served under /images (default: uploads)
  - MAX_BODY_BYTES: JSON body limit
  - LOG_FORMAT: text or json

# Architecture

  - router: Mount table, inline endpoints, static files
  - middleware: Recovery, logging, CORS, JSON body parsing, JSON helpers
  - handlers: Food catalog and placeholder collaborators
  - uploads: Image storage
  - server: Socket binding and graceful shutdown
  - models: Request/response types
  - db: Connection and schema
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
