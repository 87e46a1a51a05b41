package models

// Harvard spectral class codes, hottest to coolest
const (
	HarvardO = "O"
	HarvardB = "B"
	HarvardA = "A"
	HarvardF = "F"
	HarvardG = "G"
	HarvardK = "K"
	HarvardM = "M"
)

// HarvardClasses lists every valid Harvard code in temperature order.
var HarvardClasses = []string{HarvardO, HarvardB, HarvardA, HarvardF, HarvardG, HarvardK, HarvardM}

// YerkesMainSequence is the luminosity class of dwarf (main-sequence) stars.
const YerkesMainSequence = "V"

// ParsecInLightYears converts parsecs to light-years.
const ParsecInLightYears = 3.26156

// Reference types

type HarvardClass struct {
	Class           string  `json:"class" yaml:"class"`
	MinTemp         float64 `json:"min_temp" yaml:"min_temp"`
	Chromaticity    string  `json:"chromaticity" yaml:"chromaticity"`
	PctMainSequence float64 `json:"pct_main_sequence" yaml:"pct_main_sequence"`
}

type YerkesClass struct {
	LumClass    string `json:"lum_class" yaml:"lum_class"`
	Description string `json:"description" yaml:"description"`
}

// Raw types, as imported. Zero and empty string are "unknown" sentinels.

type StarRaw struct {
	StarID       string   `json:"star_id"`
	NumPlanets   *int     `json:"num_planets,omitempty"`
	SpectralType *string  `json:"spectral_type,omitempty"`
	HarvardClass *string  `json:"harvard_class,omitempty"`
	YerkesClass  *string  `json:"yerkes_class,omitempty"`
	TemperatureK *float64 `json:"temperature_k,omitempty"`
	RadiusSolar  *float64 `json:"radius_solar,omitempty"`
	MassSolar    *float64 `json:"mass_solar,omitempty"`
	DistancePc   *float64 `json:"distance_pc,omitempty"`
}

type PlanetRaw struct {
	PlanetID        string   `json:"planet_id"`
	HostID          string   `json:"host_id"`
	NumStars        *int     `json:"num_stars,omitempty"`
	DiscoveryMethod *string  `json:"discovery_method,omitempty"`
	DiscoveryYear   *int     `json:"discovery_year,omitempty"`
	OrbitPeriod     *float64 `json:"orbit_period,omitempty"`
	OrbitAxisAU     *float64 `json:"orbit_axis_au,omitempty"`
	EarthRadii      *float64 `json:"earth_radii,omitempty"`
	EarthMasses     *float64 `json:"earth_masses,omitempty"`
	MMsini          *string  `json:"m_msini,omitempty"`
	Eccentricity    *float64 `json:"eccentricity,omitempty"`
}

// Cleaned types, as exposed by the stars and planets views. nil means unknown.

type Star struct {
	StarID      string   `json:"star_id"`
	NumPlanets  *int     `json:"num_planets"`
	TempK       *float64 `json:"temp_k"`
	HClass      *string  `json:"h_class"`
	YClass      *string  `json:"y_class"`
	RadiusSolar *float64 `json:"radius_solar"`
	MassSolar   *float64 `json:"mass_solar"`
	DistancePc  *float64 `json:"distance_pc"`
}

type Planet struct {
	PlanetID        string   `json:"planet_id"`
	HostID          string   `json:"host_id"`
	NumStars        *int     `json:"num_stars"`
	DiscoveryMethod *string  `json:"discovery_method"`
	DiscoveryYear   *int     `json:"discovery_year"`
	OrbitEarthDays  *float64 `json:"orbit_earth_days"`
	OrbitSmAxisAU   *float64 `json:"orbit_sm_axis_au"`
	EarthRadii      *float64 `json:"earth_radii"`
	EarthMasses     *float64 `json:"earth_masses"`
	Eccentricity    *float64 `json:"eccentricity"`
}

// Report row types

type StarDistance struct {
	StarID     string   `json:"star_id" yaml:"star_id"`
	DistancePc *float64 `json:"distance_pc" yaml:"distance_pc"`
}

type ColorStar struct {
	StarID       string   `json:"star_id" yaml:"star_id"`
	HClass       string   `json:"h_class" yaml:"h_class"`
	Chromaticity string   `json:"chromaticity" yaml:"chromaticity"`
	TempK        *float64 `json:"temp_k" yaml:"temp_k"`
}

type ClassTemperature struct {
	Class   string   `json:"class" yaml:"class"`
	AvgTemp *float64 `json:"avg_temp" yaml:"avg_temp"`
}

type HabitableCandidate struct {
	PlanetID   string  `json:"planet_id" yaml:"planet_id"`
	DistancePc float64 `json:"distance_pc" yaml:"distance_pc"`
	DistanceLy float64 `json:"distance_ly" yaml:"distance_ly"`
}

type MultiStarPlanet struct {
	PlanetID string `json:"planet_id" yaml:"planet_id"`
	HostID   string `json:"host_id" yaml:"host_id"`
	NumStars int    `json:"num_stars" yaml:"num_stars"`
}

type HotterThanClass struct {
	StarID   string  `json:"star_id" yaml:"star_id"`
	HClass   string  `json:"h_class" yaml:"h_class"`
	TempK    float64 `json:"temp_k" yaml:"temp_k"`
	ClassAvg float64 `json:"class_avg" yaml:"class_avg"`
}

type YerkesFrequency struct {
	LumClass   string  `json:"lum_class" yaml:"lum_class"`
	StarCount  int     `json:"star_count" yaml:"star_count"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

type MinTemperatureCheck struct {
	Class         string   `json:"class" yaml:"class"`
	EstimatedMin  float64  `json:"estimated_min" yaml:"estimated_min"`
	ActualMinTemp *float64 `json:"actual_min_temp" yaml:"actual_min_temp"`
}

type PlanetCountMismatch struct {
	StarID       string `json:"star_id" yaml:"star_id"`
	CountPlanets int    `json:"count_planets" yaml:"count_planets"`
	NumOfPlanets int    `json:"num_of_planets" yaml:"num_of_planets"`
}

type ClassDistribution struct {
	Class       string  `json:"class" yaml:"class"`
	ExpectedPct float64 `json:"expected_pct" yaml:"expected_pct"`
	ObservedPct float64 `json:"observed_pct" yaml:"observed_pct"`
	StarCount   int     `json:"star_count" yaml:"star_count"`
}

// CleaningMismatch is one field where the SQL view and the Go cleaning rules
// disagree. Values are rendered as strings, "<nil>" for unknown.
type CleaningMismatch struct {
	Entity    string `json:"entity" yaml:"entity"`
	Key       string `json:"key" yaml:"key"`
	Field     string `json:"field" yaml:"field"`
	ViewValue string `json:"view_value" yaml:"view_value"`
	RuleValue string `json:"rule_value" yaml:"rule_value"`
}

// Error output

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
