// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package reports contains the read-only analytical queries over the catalog.

# Reporter

Reporter holds the database and config:

	reporter := reports.NewReporter(db, cfg)
	rows, err := reporter.HabitableCandidates(ctx)

Every report reads the stars and planets views (and the reference tables),
never the raw tables, so cleaning rules always apply. Reports share no state
and may run in any order or concurrently.

# Reports

  - ConstellationDistances: stars whose id contains cfg.Constellation
  - ColorStars: stars whose class colour contains cfg.Color, hottest first
  - ClassTemperatures: mean temperature per Harvard class
  - HabitableCandidates: planets of G V stars closer than 20 pc
  - MaxMultiStarSystems: planets in the systems with the most stars
  - HotterThanClass: stars hotter than their class mean
  - YerkesFrequencies: share of stars per luminosity class
  - MinTemperatureChecks: reference vs observed class minimum temperature
  - PlanetCountMismatches: recorded planet count vs linked planets
  - ClassDistribution: expected vs observed share per Harvard class
  - CleaningAudit: SQL views vs the Go rules in package classify

Reports over a reference table (ClassTemperatures, YerkesFrequencies,
MinTemperatureChecks, ClassDistribution) iterate the reference rows, so a
class with no stars still appears with a nil or zero value.

An empty result is a valid answer, never an error.
*/
package reports
