// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/star-atlas/models"
)

// HarvardReference is the canonical content of harvard_spectral.
// pct_main_sequence is a percentage of main-sequence stars.
var HarvardReference = []models.HarvardClass{
	{Class: models.HarvardO, MinTemp: 30000, Chromaticity: "blue", PctMainSequence: 0.00003},
	{Class: models.HarvardB, MinTemp: 10000, Chromaticity: "deep blue white", PctMainSequence: 0.12},
	{Class: models.HarvardA, MinTemp: 7500, Chromaticity: "blue white", PctMainSequence: 0.61},
	{Class: models.HarvardF, MinTemp: 6000, Chromaticity: "white", PctMainSequence: 3.0},
	{Class: models.HarvardG, MinTemp: 5200, Chromaticity: "yellowish white", PctMainSequence: 7.6},
	{Class: models.HarvardK, MinTemp: 3700, Chromaticity: "pale yellow orange", PctMainSequence: 12.1},
	{Class: models.HarvardM, MinTemp: 2400, Chromaticity: "light orange red", PctMainSequence: 76.45},
}

// YerkesReference is the canonical content of yerkes_spectral.
var YerkesReference = []models.YerkesClass{
	{LumClass: "0", Description: "hypergiants"},
	{LumClass: "Ia", Description: "luminous supergiants"},
	{LumClass: "Iab", Description: "intermediate-size luminous supergiants"},
	{LumClass: "Ib", Description: "less luminous supergiants"},
	{LumClass: "II", Description: "bright giants"},
	{LumClass: "III", Description: "normal giants"},
	{LumClass: "IV", Description: "subgiants"},
	{LumClass: models.YerkesMainSequence, Description: "main-sequence stars (dwarfs)"},
	{LumClass: "VI", Description: "subdwarfs"},
	{LumClass: "VII", Description: "white dwarfs"},
}

// SeedReference inserts the reference rows. Existing rows are left alone.
func SeedReference(ctx context.Context, db *sql.DB) error {
	for _, h := range HarvardReference {
		_, err := db.ExecContext(ctx, `
			INSERT INTO harvard_spectral (class, min_temp, chromaticity, pct_main_sequence)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (class) DO NOTHING
		`, h.Class, h.MinTemp, h.Chromaticity, h.PctMainSequence)
		if err != nil {
			return fmt.Errorf("failed to seed harvard class %s: %w", h.Class, err)
		}
	}

	for _, y := range YerkesReference {
		_, err := db.ExecContext(ctx, `
			INSERT INTO yerkes_spectral (lum_class, description)
			VALUES ($1, $2)
			ON CONFLICT (lum_class) DO NOTHING
		`, y.LumClass, y.Description)
		if err != nil {
			return fmt.Errorf("failed to seed yerkes class %s: %w", y.LumClass, err)
		}
	}

	return nil
}
