// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Star Atlas report runner.

Star Atlas answers a fixed set of analytical questions about a snapshot of
stars and exoplanets: distances, spectral class breakdowns, habitable-zone
candidates and data consistency checks. It runs once and exits.

# Running Reports

The runner needs a database URL through an environment variable or a flag:

	DATABASE_URL=file:stars.db go run .

Or with flags:

	go run . -d file:stars.db -r habitable -f json
	go run . -t postgres -d "postgres://..." -r all

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite DSN or PostgreSQL connection string

Optional settings:

  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - REPORT (-r): report name or all (default)
  - OUTPUT_FORMAT (-f): table (default), json, yaml
  - CONSTELLATION, STAR_COLOR: report filters
  - LOG_LEVEL=debug (-v): debug logging

# Data Flow

	stars_raw ──► stars view ──┐
	planets_raw ► planets view ├──► reports
	harvard_spectral, yerkes_spectral ┘

The schema is created on startup if missing. Raw rows are loaded by an
external import; this program never writes them.

# Architecture

  - classify: cleaning rules (Harvard inference, sentinel nulling)
  - db: connection, schema, views, reference data
  - reports: one query per report
  - router: report names, logging, parallel execution
  - render: table, JSON and YAML output
  - models: row types
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
