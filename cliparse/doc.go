// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - DatabaseURL: SQLite DSN or PostgreSQL connection string (required)
  - DatabaseType: sqlite (default) or postgres
  - Report: report name, or "all" (default)
  - Format: table (default), json or yaml
  - Constellation: fragment matched against star ids (default: UMa)
  - Color: fragment matched against Harvard chromaticity (default: blue)
  - Verbose: debug logging

# CLI Flags

	-d              Database URL
	-t              Database type
	-r              Report name
	-f              Output format
	-constellation  Constellation fragment
	-color          Chromaticity fragment
	-v              Debug logging

# Environment Variables

Flags fall back to environment variables:

	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	REPORT         → -r
	OUTPUT_FORMAT  → -f
	CONSTELLATION  → -constellation
	STAR_COLOR     → -color
	LOG_LEVEL=debug → -v

CLI flags take precedence over environment variables. A .env file in the
working directory is loaded first (godotenv) and never overrides variables
that are already set.

# Validation

ParseFlags returns an error if:

  - DATABASE_URL is missing
  - the database type is not sqlite or postgres
  - the output format is not table, json or yaml

Report names are checked later by the router.
*/
package cliparse
