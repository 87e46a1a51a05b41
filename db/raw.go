// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/star-atlas/models"
)

// InsertStarRaw writes one imported star row.
// Constraint violations (duplicate id, bad Harvard letter) surface as errors.
func InsertStarRaw(ctx context.Context, db *sql.DB, s models.StarRaw) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO stars_raw (star_id, num_planets, spectral_type, harvard_class, yerkes_class,
		                       temperature_k, radius_solar, mass_solar, distance_pc)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, s.StarID, s.NumPlanets, s.SpectralType, s.HarvardClass, s.YerkesClass,
		s.TemperatureK, s.RadiusSolar, s.MassSolar, s.DistancePc)
	if err != nil {
		return fmt.Errorf("failed to insert star %s: %w", s.StarID, err)
	}
	return nil
}

// InsertPlanetRaw writes one imported planet row. The host star must exist.
func InsertPlanetRaw(ctx context.Context, db *sql.DB, p models.PlanetRaw) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO planets_raw (planet_id, host_id, num_stars, discovery_method, discovery_year,
		                         orbit_period, orbit_axis_au, earth_radii, earth_masses, m_msini, eccentricity)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, p.PlanetID, p.HostID, p.NumStars, p.DiscoveryMethod, p.DiscoveryYear,
		p.OrbitPeriod, p.OrbitAxisAU, p.EarthRadii, p.EarthMasses, p.MMsini, p.Eccentricity)
	if err != nil {
		return fmt.Errorf("failed to insert planet %s: %w", p.PlanetID, err)
	}
	return nil
}
