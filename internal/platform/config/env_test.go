package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Preview int    `env:"TEST_PREVIEW" envDefault:"5"`
	Field   string `env:"TEST_NAME_FIELD" envDefault:"name"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Preview != 5 {
		t.Fatalf("expected default preview 5, got %d", cfg.Preview)
	}
	if cfg.Field != "name" {
		t.Fatalf("expected default field name, got %q", cfg.Field)
	}
}

func TestParseEnvReadsPrefixedVariables(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("NAMETRANSLATE_TEST_NAME_FIELD", "fishName")
	t.Setenv("TEST_PREVIEW", "99")

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Field != "fishName" {
		t.Fatalf("expected prefixed value fishName, got %q", cfg.Field)
	}
	if cfg.Preview != 5 {
		t.Fatalf("expected unprefixed variable to be ignored, got %d", cfg.Preview)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("NAMETRANSLATE_TEST_PREVIEW", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
