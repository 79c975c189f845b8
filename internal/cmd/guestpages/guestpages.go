// Package guestpages implements the guest page generation command.
package guestpages

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/eventtools/guestpages/internal/export"
	"github.com/eventtools/guestpages/internal/generator"
	"github.com/eventtools/guestpages/internal/guest"
	"github.com/eventtools/guestpages/internal/guest/roster"
	"github.com/eventtools/guestpages/internal/platform/config"
)

// Fixed names in the output layout. Downstream tooling imports result.csv
// by name, so these are not configurable.
const (
	ResultCSVName  = "result.csv"
	ResultXLSXName = "result.xlsx"
)

// Config holds the guestpages command configuration.
type Config struct {
	Input     string `env:"GUESTPAGES_INPUT" envDefault:"data/guests.csv"`
	OutputDir string `env:"GUESTPAGES_OUTPUT_DIR" envDefault:"output/guest_pages"`
	BaseURL   string `env:"GUESTPAGES_BASE_URL" envDefault:"https://eventtools.github.io/qr/"`
	DryRun    bool
	Verbose   bool
}

// ParseConfig loads environment configuration and applies flag overrides.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Input, "input", cfg.Input, "guest roster file (.csv or .xlsx)")
	fs.StringVar(&cfg.OutputDir, "output-dir", cfg.OutputDir, "directory for generated pages and result files")
	fs.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "public base URL the pages are published under")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "validate the roster without writing any files")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "log per-guest progress to stderr")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if strings.TrimSpace(cfg.Input) == "" {
		return Config{}, errors.New("input is required")
	}
	if strings.TrimSpace(cfg.OutputDir) == "" {
		return Config{}, errors.New("output-dir is required")
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return Config{}, errors.New("base-url is required")
	}

	return cfg, nil
}

// Run loads the roster, generates every guest's artifacts, and writes the
// result table.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		out = io.Discard
	}

	guests, err := roster.Load(cfg.Input)
	if err != nil {
		return err
	}

	if cfg.DryRun {
		for i, record := range guests {
			if _, err := guest.Normalize(record); err != nil {
				return fmt.Errorf("validate guest %d: %w", i+1, err)
			}
		}
		_, err = fmt.Fprintf(out, "validated %d guest(s)\n", len(guests))
		return err
	}

	genCfg := generator.DefaultConfig()
	genCfg.OutputDir = cfg.OutputDir
	genCfg.BaseURL = cfg.BaseURL
	genCfg.Verbose = cfg.Verbose
	gen, err := generator.New(genCfg)
	if err != nil {
		return err
	}

	rows, err := gen.Run(ctx, guests)
	if err != nil {
		return err
	}

	csvPath := filepath.Join(cfg.OutputDir, ResultCSVName)
	if err := export.WriteCSV(csvPath, rows); err != nil {
		return err
	}
	xlsxPath := filepath.Join(cfg.OutputDir, ResultXLSXName)
	if err := export.WriteXLSX(xlsxPath, rows); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(out, "generated %d guest page(s) in %s\n", len(rows), cfg.OutputDir); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "result files created: %s and %s\n", ResultCSVName, ResultXLSXName)
	return err
}
