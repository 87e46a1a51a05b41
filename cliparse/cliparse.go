package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// AllReports selects every report.
const AllReports = "all"

// Output formats
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

type Config struct {
	DatabaseURL   string
	DatabaseType  string
	Report        string
	Format        string
	Constellation string
	Color         string
	Verbose       bool
}

// LogLevel returns the slog level for the config.
func (c Config) LogLevel() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// ParseFlags parses flags, falling back to environment variables and then
// to a .env file in the working directory.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	// A missing .env is fine; real env vars win over it
	_ = godotenv.Load()

	fs := flag.NewFlagSet("star-atlas", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.Report, "r", "", "Report name, or \"all\"")
	fs.StringVar(&cfg.Format, "f", "", "Output format (table, json, yaml)")
	fs.StringVar(&cfg.Constellation, "constellation", "", "Constellation fragment for the distance lookup")
	fs.StringVar(&cfg.Color, "color", "", "Chromaticity fragment for the star colour finder")
	fs.BoolVar(&cfg.Verbose, "v", false, "Debug logging")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = envOr("DATABASE_TYPE", "sqlite")
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("invalid database type %q (want sqlite or postgres)", cfg.DatabaseType)
	}

	if cfg.Report == "" {
		cfg.Report = envOr("REPORT", AllReports)
	}

	if cfg.Format == "" {
		cfg.Format = envOr("OUTPUT_FORMAT", FormatTable)
	}
	switch cfg.Format {
	case FormatTable, FormatJSON, FormatYAML:
	default:
		return Config{}, fmt.Errorf("invalid output format %q", cfg.Format)
	}

	if cfg.Constellation == "" {
		cfg.Constellation = envOr("CONSTELLATION", "UMa")
	}
	if cfg.Color == "" {
		cfg.Color = envOr("STAR_COLOR", "blue")
	}

	if !cfg.Verbose && os.Getenv("LOG_LEVEL") == "debug" {
		cfg.Verbose = true
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
