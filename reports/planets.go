// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package reports

import (
	"context"
	"fmt"

	"github.com/danielhkuo/star-atlas/models"
)

// HabitableCandidates returns planets of nearby (< 20 pc) G-class main
// sequence stars, with the host distance in parsecs and light-years.
func (r *Reporter) HabitableCandidates(ctx context.Context) ([]models.HabitableCandidate, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.planet_id, s.distance_pc, s.distance_pc * $1 AS distance_ly
		FROM planets p
		JOIN stars s ON s.star_id = p.host_id
		WHERE s.distance_pc < $2
		  AND s.h_class = $3
		  AND s.y_class = $4
		ORDER BY p.planet_id
	`, models.ParsecInLightYears, HabitableMaxDistancePc, HabitableHarvardClass, HabitableYerkesClass)
	if err != nil {
		return nil, fmt.Errorf("failed to query habitable candidates: %w", err)
	}
	defer rows.Close()

	results := []models.HabitableCandidate{}
	for rows.Next() {
		var row models.HabitableCandidate
		if err := rows.Scan(&row.PlanetID, &row.DistancePc, &row.DistanceLy); err != nil {
			return nil, fmt.Errorf("failed to scan habitable candidate: %w", err)
		}
		results = append(results, row)
	}

	return results, rows.Err()
}

// MaxMultiStarSystems returns every planet whose system has the largest
// recorded star count. Ties are all included.
func (r *Reporter) MaxMultiStarSystems(ctx context.Context) ([]models.MultiStarPlanet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT planet_id, host_id, num_stars
		FROM planets
		WHERE num_stars = (SELECT MAX(num_stars) FROM planets)
		ORDER BY planet_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query multi-star systems: %w", err)
	}
	defer rows.Close()

	results := []models.MultiStarPlanet{}
	for rows.Next() {
		var row models.MultiStarPlanet
		if err := rows.Scan(&row.PlanetID, &row.HostID, &row.NumStars); err != nil {
			return nil, fmt.Errorf("failed to scan multi-star planet: %w", err)
		}
		results = append(results, row)
	}

	return results, rows.Err()
}

// PlanetCountMismatches returns stars whose linked planet rows disagree with
// their recorded planet count.
//
// Inner join: a star with no linked planets is never reported, even if it
// claims to have some.
func (r *Reporter) PlanetCountMismatches(ctx context.Context) ([]models.PlanetCountMismatch, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT s.star_id, COUNT(p.planet_id) AS count_planets, s.num_planets
		FROM stars s
		JOIN planets p ON p.host_id = s.star_id
		GROUP BY s.star_id, s.num_planets
		HAVING COUNT(p.planet_id) <> s.num_planets
		ORDER BY s.star_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query planet count mismatches: %w", err)
	}
	defer rows.Close()

	results := []models.PlanetCountMismatch{}
	for rows.Next() {
		var row models.PlanetCountMismatch
		if err := rows.Scan(&row.StarID, &row.CountPlanets, &row.NumOfPlanets); err != nil {
			return nil, fmt.Errorf("failed to scan planet count mismatch: %w", err)
		}
		results = append(results, row)
	}

	return results, rows.Err()
}
