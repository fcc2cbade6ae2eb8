// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

LoadEnv reads an optional .env file, then ParseFlags returns a Config
struct with all settings:

	if err := cliparse.LoadEnv(".env"); err != nil {
		log.Fatal(err)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])

The Config is built once at startup and passed by value afterwards.

# Config Fields

  - Port: Server listen port (default: 4000)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: Connection string (default: food-del.db for sqlite)
  - UploadDir: Directory served under /images (default: uploads)
  - MaxBodyBytes: JSON request body limit (default: 1 MiB)
  - LogFormat: text or json

# CLI Flags

	-p  Server port
	-d  Database URL
	-t  Database type
	-u  Upload directory

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	UPLOAD_DIR    → -u

MAX_BODY_BYTES and LOG_FORMAT are environment-only.

CLI flags take precedence over environment variables, and environment
variables take precedence over the .env file.

# Validation

ParseFlags returns an error if:

  - PORT is not a number or is outside 1-65535
  - DATABASE_TYPE is postgres and no DATABASE_URL is given
  - MAX_BODY_BYTES is not a positive integer
*/
package cliparse
