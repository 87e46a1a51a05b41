// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router maps report names to report runners.

# Usage

	r := router.NewRouter(db, cfg)
	results, err := r.Resolve(ctx, "habitable")
	results, err := r.Resolve(ctx, cliparse.AllReports)

Unknown names return an error wrapping ErrUnknownReport.

# Reports

	constellation-distances → Reporter.ConstellationDistances
	color-stars             → Reporter.ColorStars
	class-temperatures      → Reporter.ClassTemperatures
	habitable               → Reporter.HabitableCandidates
	multi-star              → Reporter.MaxMultiStarSystems
	hotter-than-class       → Reporter.HotterThanClass
	yerkes-frequency        → Reporter.YerkesFrequencies
	min-temperature         → Reporter.MinTemperatureChecks
	planet-count-check      → Reporter.PlanetCountMismatches
	class-distribution      → Reporter.ClassDistribution
	cleaning-audit          → Reporter.CleaningAudit

Names returns them in this order, and RunAll keeps this order in its output.

# Concurrency

RunAll evaluates every report in its own goroutine (errgroup). Reports are
read-only and independent, so no coordination is needed beyond the first
error cancelling the rest.

# Logging

Every runner is wrapped with WithLogging, which logs completion with the row
count and duration, or the failure.
*/
package router
