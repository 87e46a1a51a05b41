// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package reports

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/star-atlas/models"
	"github.com/danielhkuo/star-atlas/testutil"
)

func seededReporter(t *testing.T) (*Reporter, *sql.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	testutil.SeedCatalog(t, db)

	return NewReporter(db, testutil.GetTestConfig()), db
}

func TestConstellationDistances(t *testing.T) {
	reporter, _ := seededReporter(t)
	ctx := context.Background()

	rows, err := reporter.ConstellationDistances(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "47 UMa", rows[0].StarID)
	require.NotNil(t, rows[0].DistancePc)
	assert.Equal(t, 13.8, *rows[0].DistancePc)

	// Case-insensitive substring
	reporter.cfg.Constellation = "GLIESE"
	rows, err = reporter.ConstellationDistances(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Gliese 581", rows[0].StarID)

	reporter.cfg.Constellation = "Cygni"
	rows, err = reporter.ConstellationDistances(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestColorStars(t *testing.T) {
	reporter, db := seededReporter(t)

	// Blue class star with unknown temperature sorts last
	testutil.AddStar(t, db, "Mystery A", testutil.WithHarvard("A"))

	rows, err := reporter.ColorStars(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Spica", rows[0].StarID)
	assert.Equal(t, "Rigel", rows[1].StarID)
	assert.Equal(t, "B", rows[1].HClass, "inferred class should join the reference table")
	assert.Equal(t, "Mystery A", rows[2].StarID)
	assert.Nil(t, rows[2].TempK)

	for _, row := range rows {
		assert.Contains(t, row.Chromaticity, "blue")
	}
}

func TestClassTemperatures(t *testing.T) {
	reporter, _ := seededReporter(t)

	rows, err := reporter.ClassTemperatures(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, len(models.HarvardClasses), "every class appears, even without stars")

	expected := []struct {
		class string
		avg   *float64
	}{
		{"B", ptr(18700.0)},
		{"G", ptr(5733.0)},
		{"M", ptr(3480.0)},
		{"A", nil},
		{"F", nil},
		{"K", nil},
		{"O", nil},
	}
	for i, want := range expected {
		assert.Equal(t, want.class, rows[i].Class, "row %d", i)
		if want.avg == nil {
			assert.Nil(t, rows[i].AvgTemp, "class %s", want.class)
			continue
		}
		require.NotNil(t, rows[i].AvgTemp, "class %s", want.class)
		assert.InDelta(t, *want.avg, *rows[i].AvgTemp, 1e-9)
	}
}

func TestHabitableCandidates(t *testing.T) {
	reporter, _ := seededReporter(t)

	rows, err := reporter.HabitableCandidates(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "47 UMa b", rows[0].PlanetID)
	assert.Equal(t, "47 UMa c", rows[1].PlanetID)
	assert.Equal(t, 13.8, rows[0].DistancePc)
	assert.InDelta(t, 13.8*models.ParsecInLightYears, rows[0].DistanceLy, 1e-9)
}

func TestHabitableCandidates_LightYears(t *testing.T) {
	db := testutil.SetupTestDB(t)
	reporter := NewReporter(db, testutil.GetTestConfig())

	testutil.AddStar(t, db, "Near G", testutil.WithHarvard("G"), testutil.WithYerkes("V"), testutil.WithDistance(15))
	testutil.AddStar(t, db, "Far G", testutil.WithHarvard("G"), testutil.WithYerkes("V"), testutil.WithDistance(20))
	testutil.AddStar(t, db, "Near Giant", testutil.WithHarvard("G"), testutil.WithYerkes("III"), testutil.WithDistance(5))
	testutil.AddPlanet(t, db, "Near G b", "Near G")
	testutil.AddPlanet(t, db, "Far G b", "Far G")
	testutil.AddPlanet(t, db, "Near Giant b", "Near Giant")

	rows, err := reporter.HabitableCandidates(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1, "20 pc is not closer than 20 pc; giants are excluded")

	assert.Equal(t, "Near G b", rows[0].PlanetID)
	assert.Equal(t, 15.0, rows[0].DistancePc)
	assert.InDelta(t, 48.9234, rows[0].DistanceLy, 1e-9)
}

func TestMaxMultiStarSystems(t *testing.T) {
	reporter, db := seededReporter(t)

	rows, err := reporter.MaxMultiStarSystems(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2, "ties are all included")
	assert.Equal(t, "HD 80606 b", rows[0].PlanetID)
	assert.Equal(t, "Kepler-16 b", rows[1].PlanetID)
	for _, row := range rows {
		assert.Equal(t, 2, row.NumStars)
	}

	// A lone 4-star system takes over
	testutil.AddStar(t, db, "GJ 667 C")
	testutil.AddPlanet(t, db, "GJ 667 C b", "GJ 667 C", testutil.WithNumStars(4))

	rows, err = reporter.MaxMultiStarSystems(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "GJ 667 C b", rows[0].PlanetID)
	assert.Equal(t, "GJ 667 C", rows[0].HostID)
	assert.Equal(t, 4, rows[0].NumStars)
}

func TestHotterThanClass(t *testing.T) {
	reporter, _ := seededReporter(t)

	rows, err := reporter.HotterThanClass(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Spica", rows[0].StarID)
	assert.Equal(t, "B", rows[0].HClass)
	assert.InDelta(t, 18700.0, rows[0].ClassAvg, 1e-9)

	assert.Equal(t, "47 UMa", rows[1].StarID)
	assert.Equal(t, "G", rows[1].HClass)
	assert.InDelta(t, 5733.0, rows[1].ClassAvg, 1e-9)
}

func TestHotterThanClass_PerClassBaseline(t *testing.T) {
	db := testutil.SetupTestDB(t)
	reporter := NewReporter(db, testutil.GetTestConfig())

	// Hot M star is below the global mean but above the M mean
	testutil.AddStar(t, db, "hot O", testutil.WithTemp(40000))
	testutil.AddStar(t, db, "cool M", testutil.WithTemp(2500))
	testutil.AddStar(t, db, "warm M", testutil.WithTemp(3500))

	rows, err := reporter.HotterThanClass(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "warm M", rows[0].StarID)
	assert.InDelta(t, 3000.0, rows[0].ClassAvg, 1e-9)
}

func TestYerkesFrequencies(t *testing.T) {
	reporter, _ := seededReporter(t)

	rows, err := reporter.YerkesFrequencies(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 10, "every luminosity class appears")

	assert.Equal(t, "V", rows[0].LumClass)
	assert.Equal(t, 3, rows[0].StarCount)
	assert.InDelta(t, 60.0, rows[0].Percentage, 1e-9)

	total := 0.0
	byClass := make(map[string]models.YerkesFrequency)
	for _, row := range rows {
		total += row.Percentage
		byClass[row.LumClass] = row
	}
	assert.InDelta(t, 100.0, total, 1e-9)
	assert.InDelta(t, 20.0, byClass["Ia"].Percentage, 1e-9)
	assert.InDelta(t, 20.0, byClass["IV"].Percentage, 1e-9)
	assert.Equal(t, 0, byClass["VII"].StarCount)
	assert.Equal(t, 0.0, byClass["VII"].Percentage)
}

func TestYerkesFrequencies_NoStars(t *testing.T) {
	db := testutil.SetupTestDB(t)
	reporter := NewReporter(db, testutil.GetTestConfig())

	rows, err := reporter.YerkesFrequencies(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 10)
	for _, row := range rows {
		assert.Equal(t, 0.0, row.Percentage, "class %s", row.LumClass)
	}
}

func TestMinTemperatureChecks(t *testing.T) {
	reporter, _ := seededReporter(t)

	rows, err := reporter.MinTemperatureChecks(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, len(models.HarvardClasses))

	expected := []struct {
		class  string
		estMin float64
		actual *float64
	}{
		{"M", 2400, ptr(3480.0)},
		{"K", 3700, nil},
		{"G", 5200, ptr(5574.0)},
		{"F", 6000, nil},
		{"A", 7500, nil},
		{"B", 10000, ptr(12100.0)},
		{"O", 30000, nil},
	}
	for i, want := range expected {
		assert.Equal(t, want.class, rows[i].Class, "row %d", i)
		assert.Equal(t, want.estMin, rows[i].EstimatedMin, "class %s", want.class)
		if want.actual == nil {
			assert.Nil(t, rows[i].ActualMinTemp, "class %s", want.class)
			continue
		}
		require.NotNil(t, rows[i].ActualMinTemp, "class %s", want.class)
		assert.Equal(t, *want.actual, *rows[i].ActualMinTemp)
	}
}

func TestMinTemperatureChecks_BelowEstimate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	reporter := NewReporter(db, testutil.GetTestConfig())

	testutil.AddStar(t, db, "cool G", testutil.WithHarvard("G"), testutil.WithTemp(5100))

	rows, err := reporter.MinTemperatureChecks(context.Background())
	require.NoError(t, err)

	var g *models.MinTemperatureCheck
	for i := range rows {
		if rows[i].Class == "G" {
			g = &rows[i]
		}
	}
	require.NotNil(t, g)
	assert.Equal(t, 5200.0, g.EstimatedMin)
	require.NotNil(t, g.ActualMinTemp)
	assert.Equal(t, 5100.0, *g.ActualMinTemp)
}

func TestPlanetCountMismatches(t *testing.T) {
	reporter, db := seededReporter(t)

	// Claims planets but has none linked: never flagged
	testutil.AddStar(t, db, "Lonely", testutil.WithNumPlanets(2))

	rows, err := reporter.PlanetCountMismatches(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, models.PlanetCountMismatch{StarID: "47 UMa", CountPlanets: 2, NumOfPlanets: 3}, rows[0])
}

func TestClassDistribution(t *testing.T) {
	reporter, _ := seededReporter(t)

	rows, err := reporter.ClassDistribution(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, len(models.HarvardClasses))

	for i, class := range models.HarvardClasses {
		assert.Equal(t, class, rows[i].Class, "hottest class first")
	}

	byClass := make(map[string]models.ClassDistribution)
	for _, row := range rows {
		byClass[row.Class] = row
	}

	// 6 stars in total, one of them unclassified
	assert.Equal(t, 2, byClass["G"].StarCount)
	assert.InDelta(t, 100.0/3, byClass["G"].ObservedPct, 1e-9)
	assert.InDelta(t, 100.0/3, byClass["B"].ObservedPct, 1e-9)
	assert.InDelta(t, 100.0/6, byClass["M"].ObservedPct, 1e-9)
	assert.Equal(t, 0.0, byClass["O"].ObservedPct)
	assert.Equal(t, 0, byClass["O"].StarCount)
	assert.Equal(t, 7.6, byClass["G"].ExpectedPct)
}

func TestCleaningAudit_Consistent(t *testing.T) {
	reporter, db := seededReporter(t)

	testutil.AddStar(t, db, "Blank Yerkes", testutil.WithYerkes(" "), testutil.WithTemp(6500))
	testutil.AddPlanet(t, db, "Blank Yerkes b", "Blank Yerkes", testutil.WithMsini("0.5"))

	rows, err := reporter.CleaningAudit(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows, "view and Go rules should agree")
}

func TestCleaningAudit_DetectsDrift(t *testing.T) {
	reporter, db := seededReporter(t)

	// A stars view that forgets to infer classes
	_, err := db.Exec(`
		DROP VIEW stars;
		CREATE VIEW stars AS
		SELECT star_id, num_planets,
		       CASE WHEN temperature_k = 0 THEN NULL ELSE temperature_k END AS temp_k,
		       NULLIF(harvard_class, '') AS h_class,
		       CASE WHEN TRIM(yerkes_class) = '' THEN NULL ELSE yerkes_class END AS y_class,
		       radius_solar, mass_solar, distance_pc
		FROM stars_raw;
	`)
	require.NoError(t, err)

	rows, err := reporter.CleaningAudit(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, models.CleaningMismatch{Entity: "star", Key: "Gliese 581", Field: "h_class", ViewValue: "<nil>", RuleValue: "M"}, rows[0])
	assert.Equal(t, models.CleaningMismatch{Entity: "star", Key: "Rigel", Field: "h_class", ViewValue: "<nil>", RuleValue: "B"}, rows[1])
}

func TestReports_Idempotent(t *testing.T) {
	reporter, _ := seededReporter(t)
	ctx := context.Background()

	first, err := reporter.YerkesFrequencies(ctx)
	require.NoError(t, err)
	second, err := reporter.YerkesFrequencies(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	a, err := reporter.ClassTemperatures(ctx)
	require.NoError(t, err)
	b, err := reporter.ClassTemperatures(ctx)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestReports_SeeRawUpdates(t *testing.T) {
	reporter, db := seededReporter(t)

	_, err := db.Exec(`UPDATE stars_raw SET temperature_k = 0 WHERE star_id = 'Gliese 581'`)
	require.NoError(t, err)

	rows, err := reporter.MinTemperatureChecks(context.Background())
	require.NoError(t, err)
	require.Equal(t, "M", rows[0].Class)
	assert.Nil(t, rows[0].ActualMinTemp, "views are recomputed on every read")
}

func ptr(v float64) *float64 { return &v }
