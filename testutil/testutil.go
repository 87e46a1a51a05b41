// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"

	"github.com/danielhkuo/star-atlas/cliparse"
	"github.com/danielhkuo/star-atlas/db"
	"github.com/danielhkuo/star-atlas/models"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema
// and the reference tables seeded. It is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// Named shared-cache memory DB, one per test
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	conn, err := db.Open(context.Background(), db.TypeSQLite, dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(context.Background(), conn); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		DatabaseURL:   "file::memory:",
		DatabaseType:  db.TypeSQLite,
		Report:        cliparse.AllReports,
		Format:        "json",
		Constellation: "UMa",
		Color:         "blue",
	}
}

// StarOpt customizes a raw star row.
type StarOpt func(*models.StarRaw)

func WithTemp(k float64) StarOpt {
	return func(s *models.StarRaw) { s.TemperatureK = &k }
}

func WithHarvard(class string) StarOpt {
	return func(s *models.StarRaw) { s.HarvardClass = &class }
}

func WithYerkes(class string) StarOpt {
	return func(s *models.StarRaw) { s.YerkesClass = &class }
}

func WithDistance(pc float64) StarOpt {
	return func(s *models.StarRaw) { s.DistancePc = &pc }
}

func WithNumPlanets(n int) StarOpt {
	return func(s *models.StarRaw) { s.NumPlanets = &n }
}

// AddStar inserts a raw star and fails the test on error.
func AddStar(t *testing.T, conn *sql.DB, starID string, opts ...StarOpt) models.StarRaw {
	t.Helper()

	s := models.StarRaw{StarID: starID}
	for _, opt := range opts {
		opt(&s)
	}

	if err := db.InsertStarRaw(context.Background(), conn, s); err != nil {
		t.Fatalf("Failed to create test star: %v", err)
	}

	return s
}

// PlanetOpt customizes a raw planet row.
type PlanetOpt func(*models.PlanetRaw)

func WithNumStars(n int) PlanetOpt {
	return func(p *models.PlanetRaw) { p.NumStars = &n }
}

func WithOrbit(periodDays, axisAU float64) PlanetOpt {
	return func(p *models.PlanetRaw) {
		p.OrbitPeriod = &periodDays
		p.OrbitAxisAU = &axisAU
	}
}

func WithMsini(v string) PlanetOpt {
	return func(p *models.PlanetRaw) { p.MMsini = &v }
}

// AddPlanet inserts a raw planet orbiting hostID and fails the test on error.
func AddPlanet(t *testing.T, conn *sql.DB, planetID, hostID string, opts ...PlanetOpt) models.PlanetRaw {
	t.Helper()

	p := models.PlanetRaw{PlanetID: planetID, HostID: hostID}
	for _, opt := range opts {
		opt(&p)
	}

	if err := db.InsertPlanetRaw(context.Background(), conn, p); err != nil {
		t.Fatalf("Failed to create test planet: %v", err)
	}

	return p
}

// SeedCatalog loads a small mixed dataset covering every report.
func SeedCatalog(t *testing.T, conn *sql.DB) {
	t.Helper()

	AddStar(t, conn, "47 UMa", WithHarvard("G"), WithYerkes("V"), WithTemp(5892), WithDistance(13.8), WithNumPlanets(3))
	AddStar(t, conn, "HD 80606", WithHarvard("G"), WithYerkes("V"), WithTemp(5574), WithDistance(66.5), WithNumPlanets(1))
	AddStar(t, conn, "Rigel", WithHarvard(""), WithYerkes("Ia"), WithTemp(12100), WithDistance(264.6), WithNumPlanets(0))
	AddStar(t, conn, "Spica", WithHarvard("B"), WithYerkes("IV"), WithTemp(25300), WithDistance(76.6), WithNumPlanets(0))
	AddStar(t, conn, "Gliese 581", WithHarvard(""), WithYerkes("V"), WithTemp(3480), WithDistance(6.3), WithNumPlanets(3))
	AddStar(t, conn, "Kepler-16", WithYerkes(""), WithTemp(0), WithDistance(75.0), WithNumPlanets(1))

	AddPlanet(t, conn, "47 UMa b", "47 UMa", WithNumStars(1), WithOrbit(1078, 2.1))
	AddPlanet(t, conn, "47 UMa c", "47 UMa", WithNumStars(1), WithOrbit(2391, 3.6))
	AddPlanet(t, conn, "HD 80606 b", "HD 80606", WithNumStars(2), WithOrbit(111.4, 0.449))
	AddPlanet(t, conn, "Gliese 581 c", "Gliese 581", WithNumStars(1), WithOrbit(12.9, 0.073))
	AddPlanet(t, conn, "Gliese 581 e", "Gliese 581", WithNumStars(1), WithOrbit(0, 0))
	AddPlanet(t, conn, "Gliese 581 g", "Gliese 581", WithNumStars(1), WithOrbit(36.6, 0))
	AddPlanet(t, conn, "Kepler-16 b", "Kepler-16", WithNumStars(2), WithOrbit(228.8, 0.705))
}
