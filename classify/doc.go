// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package classify holds the star and planet cleaning rules.

# Harvard Inference

A star without a recorded Harvard class gets one from its raw temperature:

	>= 30000 K  → O
	>= 10000 K  → B
	>=  7500 K  → A
	>=  6000 K  → F
	>=  5200 K  → G
	>=  3700 K  → K
	>=     1 K  → M
	otherwise   → unknown

HarvardRanges is the only copy of this table. The stars view in package db
builds its CASE expression from it, so the SQL and Go rules cannot drift.

# Sentinels

Raw rows use 0 and "" for unknown. CleanStar nulls out a zero temperature
and a blank Yerkes class; NormalizePlanet nulls out a zero orbital period
and semi-major axis. Both are total: every raw row yields exactly one
cleaned row.
*/
package classify
