// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/star-atlas/cliparse"
	"github.com/danielhkuo/star-atlas/reports"
)

var ErrUnknownReport = errors.New("unknown report")

// Runner evaluates one report and returns its rows (a slice) and row count.
type Runner func(ctx context.Context) (rows any, count int, err error)

type route struct {
	name  string
	title string
	run   Runner
}

// Result is the output of one report.
type Result struct {
	Name  string `json:"report" yaml:"report"`
	Title string `json:"title" yaml:"title"`
	Count int    `json:"count" yaml:"count"`
	Rows  any    `json:"rows" yaml:"rows"`
}

// Router maps report names to runners, in a fixed order.
type Router struct {
	routes []route
	index  map[string]int
}

func NewRouter(db *sql.DB, cfg cliparse.Config) *Router {
	reporter := reports.NewReporter(db, cfg)

	r := &Router{index: make(map[string]int)}

	r.handle("constellation-distances", "Star distances by constellation", adapt(reporter.ConstellationDistances))
	r.handle("color-stars", "Stars by class colour", adapt(reporter.ColorStars))
	r.handle("class-temperatures", "Mean temperature per Harvard class", adapt(reporter.ClassTemperatures))
	r.handle("habitable", "Habitable-zone candidates", adapt(reporter.HabitableCandidates))
	r.handle("multi-star", "Planets in the largest multi-star systems", adapt(reporter.MaxMultiStarSystems))
	r.handle("hotter-than-class", "Stars hotter than their class mean", adapt(reporter.HotterThanClass))
	r.handle("yerkes-frequency", "Yerkes class frequency", adapt(reporter.YerkesFrequencies))
	r.handle("min-temperature", "Estimated vs actual class minimum temperature", adapt(reporter.MinTemperatureChecks))
	r.handle("planet-count-check", "Planet count consistency", adapt(reporter.PlanetCountMismatches))
	r.handle("class-distribution", "Expected vs observed class distribution", adapt(reporter.ClassDistribution))
	r.handle("cleaning-audit", "Cleaning view audit", adapt(reporter.CleaningAudit))

	return r
}

func (r *Router) handle(name, title string, run Runner) {
	r.index[name] = len(r.routes)
	r.routes = append(r.routes, route{name: name, title: title, run: WithLogging(name, run)})
}

// Names lists the report names in canonical order.
func (r *Router) Names() []string {
	names := make([]string, len(r.routes))
	for i, rt := range r.routes {
		names[i] = rt.name
	}
	return names
}

// Resolve runs the named report, or every report for cliparse.AllReports.
func (r *Router) Resolve(ctx context.Context, name string) ([]Result, error) {
	if name == cliparse.AllReports {
		return r.RunAll(ctx)
	}

	result, err := r.Run(ctx, name)
	if err != nil {
		return nil, err
	}
	return []Result{result}, nil
}

// Run evaluates a single report.
func (r *Router) Run(ctx context.Context, name string) (Result, error) {
	i, ok := r.index[name]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownReport, name)
	}
	return r.routes[i].eval(ctx)
}

// RunAll evaluates every report concurrently. Results keep the canonical
// order. The first failure cancels the remaining reports.
func (r *Router) RunAll(ctx context.Context) ([]Result, error) {
	results := make([]Result, len(r.routes))

	g, ctx := errgroup.WithContext(ctx)
	for i, rt := range r.routes {
		i, rt := i, rt
		g.Go(func() error {
			result, err := rt.eval(ctx)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (rt route) eval(ctx context.Context) (Result, error) {
	rows, count, err := rt.run(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("report %s: %w", rt.name, err)
	}
	return Result{Name: rt.name, Title: rt.title, Count: count, Rows: rows}, nil
}

// WithLogging wraps a runner with start/completion logging
func WithLogging(name string, next Runner) Runner {
	return func(ctx context.Context) (any, int, error) {
		start := time.Now()

		slog.Debug("report started", "report", name)

		rows, count, err := next(ctx)

		duration := time.Since(start)
		if err != nil {
			slog.Error("report failed",
				"report", name,
				"duration_ms", duration.Milliseconds(),
				"error", err,
			)
			return nil, 0, err
		}

		slog.Info("report completed",
			"report", name,
			"rows", count,
			"duration_ms", duration.Milliseconds(),
		)
		return rows, count, nil
	}
}

func adapt[T any](fn func(context.Context) ([]T, error)) Runner {
	return func(ctx context.Context) (any, int, error) {
		rows, err := fn(ctx)
		if err != nil {
			return nil, 0, err
		}
		return rows, len(rows), nil
	}
}
