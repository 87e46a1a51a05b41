// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package reports

import (
	"context"
	"fmt"

	"github.com/danielhkuo/star-atlas/models"
)

// ConstellationDistances returns the distance of every star whose id contains
// the configured constellation fragment, case-insensitively.
func (r *Reporter) ConstellationDistances(ctx context.Context) ([]models.StarDistance, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT star_id, distance_pc
		FROM stars
		WHERE LOWER(star_id) LIKE '%' || LOWER(CAST($1 AS TEXT)) || '%'
		ORDER BY star_id
	`, r.cfg.Constellation)
	if err != nil {
		return nil, fmt.Errorf("failed to query constellation distances: %w", err)
	}
	defer rows.Close()

	results := []models.StarDistance{}
	for rows.Next() {
		var row models.StarDistance
		if err := rows.Scan(&row.StarID, &row.DistancePc); err != nil {
			return nil, fmt.Errorf("failed to scan star distance: %w", err)
		}
		results = append(results, row)
	}

	return results, rows.Err()
}

// ColorStars returns stars whose Harvard class colour contains the configured
// colour fragment, hottest first. Unknown temperatures sort last.
func (r *Reporter) ColorStars(ctx context.Context) ([]models.ColorStar, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT s.star_id, s.h_class, h.chromaticity, s.temp_k
		FROM stars s
		JOIN harvard_spectral h ON h.class = s.h_class
		WHERE LOWER(h.chromaticity) LIKE '%' || LOWER(CAST($1 AS TEXT)) || '%'
		ORDER BY s.temp_k DESC NULLS LAST, s.star_id
	`, r.cfg.Color)
	if err != nil {
		return nil, fmt.Errorf("failed to query color stars: %w", err)
	}
	defer rows.Close()

	results := []models.ColorStar{}
	for rows.Next() {
		var row models.ColorStar
		if err := rows.Scan(&row.StarID, &row.HClass, &row.Chromaticity, &row.TempK); err != nil {
			return nil, fmt.Errorf("failed to scan color star: %w", err)
		}
		results = append(results, row)
	}

	return results, rows.Err()
}

// ClassTemperatures returns the mean temperature of each Harvard class.
// Every class appears; classes without stars have a nil average and sort last.
func (r *Reporter) ClassTemperatures(ctx context.Context) ([]models.ClassTemperature, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT h.class, AVG(s.temp_k) AS avg_temp
		FROM harvard_spectral h
		LEFT JOIN stars s ON s.h_class = h.class
		GROUP BY h.class
		ORDER BY avg_temp DESC NULLS LAST, h.class
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query class temperatures: %w", err)
	}
	defer rows.Close()

	results := []models.ClassTemperature{}
	for rows.Next() {
		var row models.ClassTemperature
		if err := rows.Scan(&row.Class, &row.AvgTemp); err != nil {
			return nil, fmt.Errorf("failed to scan class temperature: %w", err)
		}
		results = append(results, row)
	}

	return results, rows.Err()
}

// HotterThanClass returns stars hotter than the mean temperature of their own
// Harvard class. The baseline is per class, never global.
func (r *Reporter) HotterThanClass(ctx context.Context) ([]models.HotterThanClass, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT s.star_id, s.h_class, s.temp_k, c.avg_temp
		FROM stars s
		JOIN (
			SELECT h_class, AVG(temp_k) AS avg_temp
			FROM stars
			WHERE h_class IS NOT NULL
			GROUP BY h_class
		) c ON c.h_class = s.h_class
		WHERE s.temp_k > c.avg_temp
		ORDER BY s.h_class, s.star_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query stars hotter than class: %w", err)
	}
	defer rows.Close()

	results := []models.HotterThanClass{}
	for rows.Next() {
		var row models.HotterThanClass
		if err := rows.Scan(&row.StarID, &row.HClass, &row.TempK, &row.ClassAvg); err != nil {
			return nil, fmt.Errorf("failed to scan star: %w", err)
		}
		results = append(results, row)
	}

	return results, rows.Err()
}
