// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package reports

import (
	"context"
	"fmt"

	"github.com/danielhkuo/star-atlas/models"
)

// YerkesFrequencies ranks luminosity classes by their share of the stars.
// Every reference class appears; classes without stars show 0%.
// Shares are relative to the stars that matched a reference class.
func (r *Reporter) YerkesFrequencies(ctx context.Context) ([]models.YerkesFrequency, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT y.lum_class,
		       COUNT(s.star_id) AS star_count,
		       COALESCE(COUNT(s.star_id) * 100.0 / NULLIF(SUM(COUNT(s.star_id)) OVER (), 0), 0) AS percentage
		FROM yerkes_spectral y
		LEFT JOIN stars s ON s.y_class = y.lum_class
		GROUP BY y.lum_class
		ORDER BY percentage DESC, y.lum_class
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query yerkes frequencies: %w", err)
	}
	defer rows.Close()

	results := []models.YerkesFrequency{}
	for rows.Next() {
		var row models.YerkesFrequency
		if err := rows.Scan(&row.LumClass, &row.StarCount, &row.Percentage); err != nil {
			return nil, fmt.Errorf("failed to scan yerkes frequency: %w", err)
		}
		results = append(results, row)
	}

	return results, rows.Err()
}

// MinTemperatureChecks compares each class's reference minimum temperature
// with the coolest star actually observed in it, coolest reference first.
func (r *Reporter) MinTemperatureChecks(ctx context.Context) ([]models.MinTemperatureCheck, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT h.class, h.min_temp, MIN(s.temp_k) AS actual_min_temp
		FROM harvard_spectral h
		LEFT JOIN stars s ON s.h_class = h.class
		GROUP BY h.class, h.min_temp
		ORDER BY h.min_temp
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query min temperatures: %w", err)
	}
	defer rows.Close()

	results := []models.MinTemperatureCheck{}
	for rows.Next() {
		var row models.MinTemperatureCheck
		if err := rows.Scan(&row.Class, &row.EstimatedMin, &row.ActualMinTemp); err != nil {
			return nil, fmt.Errorf("failed to scan min temperature: %w", err)
		}
		results = append(results, row)
	}

	return results, rows.Err()
}

// ClassDistribution compares each class's expected share of main-sequence
// stars with its observed share of all stars (unclassified stars included
// in the total), hottest class first.
func (r *Reporter) ClassDistribution(ctx context.Context) ([]models.ClassDistribution, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT h.class,
		       h.pct_main_sequence,
		       COALESCE(c.observed_pct, 0) AS observed_pct,
		       COALESCE(c.star_count, 0) AS star_count
		FROM harvard_spectral h
		LEFT JOIN (
			SELECT h_class,
			       COUNT(*) AS star_count,
			       COUNT(*) * 100.0 / SUM(COUNT(*)) OVER () AS observed_pct
			FROM stars
			GROUP BY h_class
		) c ON c.h_class = h.class
		ORDER BY h.min_temp DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query class distribution: %w", err)
	}
	defer rows.Close()

	results := []models.ClassDistribution{}
	for rows.Next() {
		var row models.ClassDistribution
		if err := rows.Scan(&row.Class, &row.ExpectedPct, &row.ObservedPct, &row.StarCount); err != nil {
			return nil, fmt.Errorf("failed to scan class distribution: %w", err)
		}
		results = append(results, row)
	}

	return results, rows.Err()
}
