// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package classify

import (
	"strings"

	"github.com/danielhkuo/star-atlas/models"
)

// Range is a half-open temperature band: a temperature t maps to Label when
// t >= LowerK and no earlier band matched.
type Range struct {
	LowerK float64
	Label  string
}

// HarvardRanges is the temperature partition used to infer a missing Harvard
// class. Order matters: first match wins. Anything below the last bound
// (including the 0 sentinel) is unknown.
var HarvardRanges = []Range{
	{LowerK: 30000, Label: models.HarvardO},
	{LowerK: 10000, Label: models.HarvardB},
	{LowerK: 7500, Label: models.HarvardA},
	{LowerK: 6000, Label: models.HarvardF},
	{LowerK: 5200, Label: models.HarvardG},
	{LowerK: 3700, Label: models.HarvardK},
	{LowerK: 1, Label: models.HarvardM},
}

// HarvardFromTemperature returns the class for a raw temperature, or nil
// when the temperature is unknown or below every band.
func HarvardFromTemperature(tempK *float64) *string {
	if tempK == nil {
		return nil
	}
	for _, r := range HarvardRanges {
		if *tempK >= r.LowerK {
			label := r.Label
			return &label
		}
	}
	return nil
}

// ValidHarvardClass reports whether code is one of the seven class letters.
func ValidHarvardClass(code string) bool {
	for _, c := range models.HarvardClasses {
		if c == code {
			return true
		}
	}
	return false
}

// CleanStar applies the star cleaning rules to a raw row.
// A recorded Harvard class is trusted even if the temperature disagrees.
func CleanStar(raw models.StarRaw) models.Star {
	star := models.Star{
		StarID:      raw.StarID,
		NumPlanets:  raw.NumPlanets,
		TempK:       zeroToNil(raw.TemperatureK),
		YClass:      blankToNil(raw.YerkesClass),
		RadiusSolar: raw.RadiusSolar,
		MassSolar:   raw.MassSolar,
		DistancePc:  raw.DistancePc,
	}

	if h := blankToNil(raw.HarvardClass); h != nil {
		star.HClass = h
	} else {
		// The range test runs on the raw value, not the nulled one
		star.HClass = HarvardFromTemperature(raw.TemperatureK)
	}

	return star
}

// NormalizePlanet applies the planet cleaning rules to a raw row.
// M_Msini is dropped.
func NormalizePlanet(raw models.PlanetRaw) models.Planet {
	return models.Planet{
		PlanetID:        raw.PlanetID,
		HostID:          raw.HostID,
		NumStars:        raw.NumStars,
		DiscoveryMethod: raw.DiscoveryMethod,
		DiscoveryYear:   raw.DiscoveryYear,
		OrbitEarthDays:  zeroToNil(raw.OrbitPeriod),
		OrbitSmAxisAU:   zeroToNil(raw.OrbitAxisAU),
		EarthRadii:      raw.EarthRadii,
		EarthMasses:     raw.EarthMasses,
		Eccentricity:    raw.Eccentricity,
	}
}

func zeroToNil(v *float64) *float64 {
	if v == nil || *v == 0 {
		return nil
	}
	return v
}

// blankToNil matches SQL TRIM, which strips spaces only.
func blankToNil(s *string) *string {
	if s == nil || strings.Trim(*s, " ") == "" {
		return nil
	}
	return s
}
