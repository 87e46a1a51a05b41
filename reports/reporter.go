// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package reports

import (
	"database/sql"

	"github.com/danielhkuo/star-atlas/cliparse"
)

// Fixed thresholds for the habitable-candidate finder
const (
	HabitableMaxDistancePc = 20.0
	HabitableHarvardClass  = "G"
	HabitableYerkesClass   = "V"
)

// Reporter runs the read-only reports against the cleaned views.
// It holds no state between calls; every report reads the views afresh.
type Reporter struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewReporter(db *sql.DB, cfg cliparse.Config) *Reporter {
	return &Reporter{db: db, cfg: cfg}
}
