// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles connections, schema creation and reference data.

# Connecting

Open accepts the database type and a DSN and pings before returning:

	conn, err := db.Open(ctx, db.TypeSQLite, "file:stars.db")
	conn, err := db.Open(ctx, db.TypePostgres, "postgres://...")

The SQLite (modernc.org/sqlite) and Postgres (lib/pq) drivers are both
registered by this package.

# Schema Creation

CreateSchema initializes every table and view:

	if err := db.CreateSchema(ctx, conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times. Tables use IF NOT EXISTS, reference rows use
ON CONFLICT DO NOTHING, and the views are dropped and recreated.

# Tables

  - harvard_spectral: Harvard class, min temperature, colour, % of main sequence
  - yerkes_spectral: Yerkes luminosity class and description
  - stars_raw: stars as imported (0 and '' mean unknown)
  - planets_raw: planets as imported, host_id references stars_raw

# Views

  - stars: cleaned stars (temp_k, h_class, y_class)
  - planets: cleaned planets (orbit_earth_days, orbit_sm_axis_au)

Views are never materialized; every read sees the current raw rows.

# Relationships

	stars_raw 1──* planets_raw
	harvard_spectral 1──* stars (via h_class)
	yerkes_spectral 1──* stars (via y_class)
*/
package db
