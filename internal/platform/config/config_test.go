package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Input string `env:"GUESTPAGES_TEST_INPUT" envDefault:"data/guests.csv"`
	Limit int    `env:"GUESTPAGES_TEST_LIMIT" envDefault:"25"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Input != "data/guests.csv" {
		t.Fatalf("expected default input %q, got %q", "data/guests.csv", cfg.Input)
	}
	if cfg.Limit != 25 {
		t.Fatalf("expected default limit 25, got %d", cfg.Limit)
	}
}

func TestParseEnvOverride(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("GUESTPAGES_TEST_INPUT", "roster.xlsx")

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Input != "roster.xlsx" {
		t.Fatalf("expected input %q, got %q", "roster.xlsx", cfg.Input)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("GUESTPAGES_TEST_LIMIT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
