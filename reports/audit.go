// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package reports

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/danielhkuo/star-atlas/classify"
	"github.com/danielhkuo/star-atlas/models"
)

const nilValue = "<nil>"

// CleaningAudit re-applies the Go cleaning rules to every raw row and lists
// each field where the stars or planets view disagrees. An empty result means
// the views and package classify agree on the whole dataset.
func (r *Reporter) CleaningAudit(ctx context.Context) ([]models.CleaningMismatch, error) {
	rawStars, err := r.rawStars(ctx)
	if err != nil {
		return nil, err
	}
	viewStars, err := r.viewStars(ctx)
	if err != nil {
		return nil, err
	}
	rawPlanets, err := r.rawPlanets(ctx)
	if err != nil {
		return nil, err
	}
	viewPlanets, err := r.viewPlanets(ctx)
	if err != nil {
		return nil, err
	}

	mismatches := []models.CleaningMismatch{}

	for _, raw := range rawStars {
		want := classify.CleanStar(raw)
		got, ok := viewStars[raw.StarID]
		if !ok {
			mismatches = append(mismatches, missingRow("star", raw.StarID))
			continue
		}
		delete(viewStars, raw.StarID)

		add := func(field, view, rule string) {
			if view != rule {
				mismatches = append(mismatches, models.CleaningMismatch{
					Entity: "star", Key: raw.StarID, Field: field, ViewValue: view, RuleValue: rule,
				})
			}
		}
		add("num_planets", fmtInt(got.NumPlanets), fmtInt(want.NumPlanets))
		add("temp_k", fmtFloat(got.TempK), fmtFloat(want.TempK))
		add("h_class", fmtString(got.HClass), fmtString(want.HClass))
		add("y_class", fmtString(got.YClass), fmtString(want.YClass))
		add("radius_solar", fmtFloat(got.RadiusSolar), fmtFloat(want.RadiusSolar))
		add("mass_solar", fmtFloat(got.MassSolar), fmtFloat(want.MassSolar))
		add("distance_pc", fmtFloat(got.DistancePc), fmtFloat(want.DistancePc))
	}
	for _, id := range sortedKeys(viewStars) {
		mismatches = append(mismatches, extraRow("star", id))
	}

	for _, raw := range rawPlanets {
		want := classify.NormalizePlanet(raw)
		got, ok := viewPlanets[raw.PlanetID]
		if !ok {
			mismatches = append(mismatches, missingRow("planet", raw.PlanetID))
			continue
		}
		delete(viewPlanets, raw.PlanetID)

		add := func(field, view, rule string) {
			if view != rule {
				mismatches = append(mismatches, models.CleaningMismatch{
					Entity: "planet", Key: raw.PlanetID, Field: field, ViewValue: view, RuleValue: rule,
				})
			}
		}
		add("host_id", got.HostID, want.HostID)
		add("num_stars", fmtInt(got.NumStars), fmtInt(want.NumStars))
		add("discovery_method", fmtString(got.DiscoveryMethod), fmtString(want.DiscoveryMethod))
		add("discovery_year", fmtInt(got.DiscoveryYear), fmtInt(want.DiscoveryYear))
		add("orbit_earth_days", fmtFloat(got.OrbitEarthDays), fmtFloat(want.OrbitEarthDays))
		add("orbit_sm_axis_au", fmtFloat(got.OrbitSmAxisAU), fmtFloat(want.OrbitSmAxisAU))
		add("earth_radii", fmtFloat(got.EarthRadii), fmtFloat(want.EarthRadii))
		add("earth_masses", fmtFloat(got.EarthMasses), fmtFloat(want.EarthMasses))
		add("eccentricity", fmtFloat(got.Eccentricity), fmtFloat(want.Eccentricity))
	}
	for _, id := range sortedKeys(viewPlanets) {
		mismatches = append(mismatches, extraRow("planet", id))
	}

	return mismatches, nil
}

// The loaders below drain and close their rows before returning so that a
// single-connection pool never waits on itself.

func (r *Reporter) rawStars(ctx context.Context) ([]models.StarRaw, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT star_id, num_planets, spectral_type, harvard_class, yerkes_class,
		       temperature_k, radius_solar, mass_solar, distance_pc
		FROM stars_raw
		ORDER BY star_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query raw stars: %w", err)
	}
	defer rows.Close()

	var stars []models.StarRaw
	for rows.Next() {
		var s models.StarRaw
		if err := rows.Scan(&s.StarID, &s.NumPlanets, &s.SpectralType, &s.HarvardClass, &s.YerkesClass,
			&s.TemperatureK, &s.RadiusSolar, &s.MassSolar, &s.DistancePc); err != nil {
			return nil, fmt.Errorf("failed to scan raw star: %w", err)
		}
		stars = append(stars, s)
	}

	return stars, rows.Err()
}

func (r *Reporter) viewStars(ctx context.Context) (map[string]models.Star, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT star_id, num_planets, temp_k, h_class, y_class, radius_solar, mass_solar, distance_pc
		FROM stars
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query stars view: %w", err)
	}
	defer rows.Close()

	stars := make(map[string]models.Star)
	for rows.Next() {
		var s models.Star
		if err := rows.Scan(&s.StarID, &s.NumPlanets, &s.TempK, &s.HClass, &s.YClass,
			&s.RadiusSolar, &s.MassSolar, &s.DistancePc); err != nil {
			return nil, fmt.Errorf("failed to scan star: %w", err)
		}
		stars[s.StarID] = s
	}

	return stars, rows.Err()
}

func (r *Reporter) rawPlanets(ctx context.Context) ([]models.PlanetRaw, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT planet_id, host_id, num_stars, discovery_method, discovery_year,
		       orbit_period, orbit_axis_au, earth_radii, earth_masses, m_msini, eccentricity
		FROM planets_raw
		ORDER BY planet_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query raw planets: %w", err)
	}
	defer rows.Close()

	var planets []models.PlanetRaw
	for rows.Next() {
		var p models.PlanetRaw
		if err := rows.Scan(&p.PlanetID, &p.HostID, &p.NumStars, &p.DiscoveryMethod, &p.DiscoveryYear,
			&p.OrbitPeriod, &p.OrbitAxisAU, &p.EarthRadii, &p.EarthMasses, &p.MMsini, &p.Eccentricity); err != nil {
			return nil, fmt.Errorf("failed to scan raw planet: %w", err)
		}
		planets = append(planets, p)
	}

	return planets, rows.Err()
}

func (r *Reporter) viewPlanets(ctx context.Context) (map[string]models.Planet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT planet_id, host_id, num_stars, discovery_method, discovery_year,
		       orbit_earth_days, orbit_sm_axis_au, earth_radii, earth_masses, eccentricity
		FROM planets
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query planets view: %w", err)
	}
	defer rows.Close()

	planets := make(map[string]models.Planet)
	for rows.Next() {
		var p models.Planet
		if err := rows.Scan(&p.PlanetID, &p.HostID, &p.NumStars, &p.DiscoveryMethod, &p.DiscoveryYear,
			&p.OrbitEarthDays, &p.OrbitSmAxisAU, &p.EarthRadii, &p.EarthMasses, &p.Eccentricity); err != nil {
			return nil, fmt.Errorf("failed to scan planet: %w", err)
		}
		planets[p.PlanetID] = p
	}

	return planets, rows.Err()
}

func missingRow(entity, key string) models.CleaningMismatch {
	return models.CleaningMismatch{Entity: entity, Key: key, Field: "row", ViewValue: "<missing>", RuleValue: "present"}
}

func extraRow(entity, key string) models.CleaningMismatch {
	return models.CleaningMismatch{Entity: entity, Key: key, Field: "row", ViewValue: "present", RuleValue: "<missing>"}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func fmtFloat(v *float64) string {
	if v == nil {
		return nilValue
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}

func fmtInt(v *int) string {
	if v == nil {
		return nilValue
	}
	return strconv.Itoa(*v)
}

func fmtString(v *string) string {
	if v == nil {
		return nilValue
	}
	return *v
}
