// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/danielhkuo/star-atlas/classify"
)

// CreateSchema creates the base tables, seeds the reference tables and
// (re)creates the cleaning views.
// Safe to call multiple times - tables use IF NOT EXISTS, seeds ignore
// conflicts and views are dropped and recreated.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, tables); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	if err := SeedReference(ctx, db); err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, Views()); err != nil {
		return fmt.Errorf("failed to create views: %w", err)
	}

	return nil
}

const tables = `
-- Harvard spectral classes (reference)
CREATE TABLE IF NOT EXISTS harvard_spectral (
    class TEXT PRIMARY KEY CHECK (class IN ('O', 'B', 'A', 'F', 'G', 'K', 'M')),
    min_temp DOUBLE PRECISION NOT NULL,
    chromaticity TEXT NOT NULL,
    pct_main_sequence DOUBLE PRECISION NOT NULL
);

-- Yerkes luminosity classes (reference)
CREATE TABLE IF NOT EXISTS yerkes_spectral (
    lum_class TEXT PRIMARY KEY,
    description TEXT NOT NULL
);

-- Stars, as imported
CREATE TABLE IF NOT EXISTS stars_raw (
    star_id TEXT PRIMARY KEY,
    num_planets INTEGER,
    spectral_type TEXT,
    harvard_class TEXT CHECK (harvard_class IN ('O', 'B', 'A', 'F', 'G', 'K', 'M', '')),
    yerkes_class TEXT,
    temperature_k DOUBLE PRECISION,
    radius_solar DOUBLE PRECISION,
    mass_solar DOUBLE PRECISION,
    distance_pc DOUBLE PRECISION
);

-- Planets, as imported
CREATE TABLE IF NOT EXISTS planets_raw (
    planet_id TEXT PRIMARY KEY,
    host_id TEXT NOT NULL REFERENCES stars_raw(star_id),
    num_stars INTEGER,
    discovery_method TEXT,
    discovery_year INTEGER,
    orbit_period DOUBLE PRECISION,
    orbit_axis_au DOUBLE PRECISION,
    earth_radii DOUBLE PRECISION,
    earth_masses DOUBLE PRECISION,
    m_msini TEXT,
    eccentricity DOUBLE PRECISION
);

CREATE INDEX IF NOT EXISTS idx_planets_raw_host_id ON planets_raw(host_id);
`

// Views returns the DDL for the stars and planets views.
func Views() string {
	return `
DROP VIEW IF EXISTS planets;
DROP VIEW IF EXISTS stars;

-- Stars, cleaned: zero temperature is unknown, a missing Harvard class is
-- inferred from the raw temperature, a blank Yerkes class is unknown
CREATE VIEW stars AS
SELECT
    star_id,
    num_planets,
    CASE WHEN temperature_k = 0 THEN NULL ELSE temperature_k END AS temp_k,
    CASE
        WHEN harvard_class IS NOT NULL AND TRIM(harvard_class) <> '' THEN harvard_class
` + harvardCase("temperature_k", "        ") + `        ELSE NULL
    END AS h_class,
    CASE WHEN TRIM(yerkes_class) = '' THEN NULL ELSE yerkes_class END AS y_class,
    radius_solar,
    mass_solar,
    distance_pc
FROM stars_raw;

-- Planets, cleaned: zero orbital period and axis are unknown, m_msini dropped
CREATE VIEW planets AS
SELECT
    planet_id,
    host_id,
    num_stars,
    discovery_method,
    discovery_year,
    CASE WHEN orbit_period = 0 THEN NULL ELSE orbit_period END AS orbit_earth_days,
    CASE WHEN orbit_axis_au = 0 THEN NULL ELSE orbit_axis_au END AS orbit_sm_axis_au,
    earth_radii,
    earth_masses,
    eccentricity
FROM planets_raw;
`
}

// harvardCase renders classify.HarvardRanges as WHEN arms, first match wins.
func harvardCase(column, indent string) string {
	var b strings.Builder
	for _, r := range classify.HarvardRanges {
		fmt.Fprintf(&b, "%sWHEN %s >= %s THEN '%s'\n",
			indent, column, strconv.FormatFloat(r.LowerK, 'f', -1, 64), r.Label)
	}
	return b.String()
}
