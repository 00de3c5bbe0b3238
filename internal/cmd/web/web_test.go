package web

import (
	"bytes"
	"context"
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8080")
	}
	if cfg.MaxUploadBytes != 32<<20 {
		t.Fatalf("MaxUploadBytes = %d, want %d", cfg.MaxUploadBytes, 32<<20)
	}
	if cfg.NameField != "name" || cfg.TypeField != "type" {
		t.Fatalf("fields = %q/%q, want name/type", cfg.NameField, cfg.TypeField)
	}
	if cfg.Preview != 5 {
		t.Fatalf("Preview = %d, want 5", cfg.Preview)
	}
}

func TestParseConfigEnvAndFlags(t *testing.T) {
	t.Setenv("NAMETRANSLATE_HTTP_ADDR", "0.0.0.0:9000")
	t.Setenv("NAMETRANSLATE_WEB_MAX_UPLOAD_BYTES", "1024")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-name-field", "fishName"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "0.0.0.0:9000" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "0.0.0.0:9000")
	}
	if cfg.MaxUploadBytes != 1024 {
		t.Fatalf("MaxUploadBytes = %d, want 1024", cfg.MaxUploadBytes)
	}
	if cfg.NameField != "fishName" {
		t.Fatalf("NameField = %q, want fishName", cfg.NameField)
	}
}

func TestParseConfigRejectsInvalidValues(t *testing.T) {
	tests := [][]string{
		{"-http-addr", " "},
		{"-max-upload-bytes", "0"},
		{"-preview", "-2"},
	}
	for _, args := range tests {
		fs := flag.NewFlagSet("web", flag.ContinueOnError)
		fs.SetOutput(&bytes.Buffer{})
		if _, err := ParseConfig(fs, args); err == nil {
			t.Fatalf("ParseConfig(%v) expected error", args)
		}
	}
}

func TestRunStopsWhenContextCanceled(t *testing.T) {
	t.Setenv("NAMETRANSLATE_OTEL_ENDPOINT", "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Run(ctx, Config{HTTPAddr: "127.0.0.1:0", MaxUploadBytes: 1024}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}
