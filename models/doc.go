// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines catalogue, reference and report row types.

# Reference Types

Fixed lookup data seeded at schema creation:

  - HarvardClass: class letter, minimum temperature, chromaticity, main-sequence share
  - YerkesClass: luminosity class and description

# Catalogue Types

Raw rows as imported, sentinels included:

  - StarRaw: star_id, temperature_k, harvard_class, yerkes_class, distance_pc, num_of_planets
  - PlanetRaw: planet_id, host_id, num_stars, period, axis, m_msini

Cleaned rows as exposed by the views:

  - Star: temp_k, h_class, y_class with sentinels turned into nil
  - Planet: orbit_earth_days, orbit_sm_axis_au

# Report Rows

One type per report, for example:

  - StarDistance, ColorStar, ClassTemperature
  - HabitableCandidate, MultiStarPlanet, HotterThanClass
  - YerkesFrequency, MinTemperatureCheck, PlanetCountMismatch
  - ClassDistribution, CleaningMismatch

Nullable columns are pointers. A nil pointer encodes as null in JSON and
YAML.

# Constants

Harvard classes, hottest first:

	HarvardO, HarvardB, HarvardA, HarvardF, HarvardG, HarvardK, HarvardM

Other:

	YerkesMainSequence = "V"
	ParsecInLightYears = 3.26156
*/
package models
