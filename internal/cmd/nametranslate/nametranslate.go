// Package nametranslate parses the translation CLI flags and runs one
// translation job from files on disk.
package nametranslate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	entrypoint "github.com/er336250/fish-test/internal/platform/cmd"
	apperrors "github.com/er336250/fish-test/internal/platform/errors"
	"github.com/er336250/fish-test/internal/platform/i18n"
	"github.com/er336250/fish-test/internal/translation"
)

// Config holds the CLI configuration. Environment variables carry the
// NAMETRANSLATE_ prefix and are overridden by flags.
type Config struct {
	RecordsPath  string `env:"RECORDS"`
	TablePath    string `env:"TABLE"`
	OutPath      string `env:"OUT" envDefault:"translated_output.json"`
	ReportPath   string `env:"REPORT"`
	MarkdownPath string `env:"MARKDOWN"`
	NameField    string `env:"NAME_FIELD" envDefault:"name"`
	TypeField    string `env:"TYPE_FIELD" envDefault:"type"`
	Preview      int    `env:"PREVIEW" envDefault:"5"`
	Locale       string `env:"LOCALE" envDefault:"en-US"`
	DryRun       bool   `env:"DRY_RUN"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.RecordsPath, "records", cfg.RecordsPath, "JSON file holding the record array")
	fs.StringVar(&cfg.TablePath, "table", cfg.TablePath, "CSV translation table (header row, source, translation)")
	fs.StringVar(&cfg.OutPath, "out", cfg.OutPath, "path of the translated JSON output")
	fs.StringVar(&cfg.ReportPath, "report", cfg.ReportPath, "optional JSON report path")
	fs.StringVar(&cfg.MarkdownPath, "markdown", cfg.MarkdownPath, "optional markdown report path")
	fs.StringVar(&cfg.NameField, "name-field", cfg.NameField, "record key holding the name")
	fs.StringVar(&cfg.TypeField, "type-field", cfg.TypeField, "record key holding the type")
	fs.IntVar(&cfg.Preview, "preview", cfg.Preview, "number of translated records to preview in reports")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "report language (en-US, zh-TW)")
	fs.BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun, "analyze without writing the translated output")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	if strings.TrimSpace(cfg.RecordsPath) == "" {
		return Config{}, errors.New("records is required")
	}
	if strings.TrimSpace(cfg.TablePath) == "" {
		return Config{}, errors.New("table is required")
	}
	if !cfg.DryRun && strings.TrimSpace(cfg.OutPath) == "" {
		return Config{}, errors.New("out is required unless dry-run is set")
	}
	if cfg.Preview < 0 {
		return Config{}, fmt.Errorf("preview must be non-negative, got %d", cfg.Preview)
	}
	if _, ok := i18n.ParseTag(cfg.Locale); !ok {
		return Config{}, fmt.Errorf("unsupported locale %q", cfg.Locale)
	}

	return cfg, nil
}

// Run executes one translation job and writes a localized summary to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceTranslate, func(ctx context.Context) error {
		return run(ctx, cfg, out)
	})
}

func run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}

	recordData, err := os.ReadFile(cfg.RecordsPath)
	if err != nil {
		return fmt.Errorf("read records: %w", err)
	}
	tableData, err := os.ReadFile(cfg.TablePath)
	if err != nil {
		return fmt.Errorf("read table: %w", err)
	}

	engine := translation.NewEngine(translation.Fields{Name: cfg.NameField, Type: cfg.TypeField})
	result, err := translation.Process(ctx, engine, translation.Input{
		Records:     recordData,
		Table:       tableData,
		PreviewSize: cfg.Preview,
	})
	if err != nil {
		return err
	}

	tag, ok := i18n.ParseTag(cfg.Locale)
	if !ok {
		tag = i18n.Default()
	}
	printer := i18n.Printer(tag)

	artifacts := make([]artifact, 0, 3)
	if !cfg.DryRun {
		artifacts = append(artifacts, artifact{path: cfg.OutPath, data: result.Output})
	}
	if path := strings.TrimSpace(cfg.ReportPath); path != "" {
		data, err := marshalReport(result.Report)
		if err != nil {
			return err
		}
		artifacts = append(artifacts, artifact{path: path, data: data})
	}
	if path := strings.TrimSpace(cfg.MarkdownPath); path != "" {
		artifacts = append(artifacts, artifact{path: path, data: []byte(renderMarkdown(printer, result.Report))})
	}
	written, err := writeArtifacts(artifacts)
	if err != nil {
		return err
	}

	_, err = io.WriteString(out, renderSummary(printer, result.Report, written, cfg.DryRun))
	return err
}

type artifact struct {
	path string
	data []byte
}

// writeArtifacts writes every artifact or none: when one write fails, the
// files already written by this call are removed.
func writeArtifacts(artifacts []artifact) ([]string, error) {
	written := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		if err := writeFile(a.path, a.data); err != nil {
			for _, path := range written {
				if removeErr := os.Remove(path); removeErr != nil {
					log.Printf("remove partial output %s: %v", path, removeErr)
				}
			}
			return nil, err
		}
		written = append(written, a.path)
	}
	return written, nil
}

func marshalReport(report translation.Report) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeOutputWriteFailed, "marshal report", err)
	}
	return translation.UnescapeLineSeparators(buf.Bytes()), nil
}

func writeFile(path string, data []byte) error {
	metadata := map[string]string{"Path": path}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return apperrors.WrapWithMetadata(apperrors.CodeOutputWriteFailed, fmt.Sprintf("mkdir %s", dir), metadata, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return apperrors.WrapWithMetadata(apperrors.CodeOutputWriteFailed, fmt.Sprintf("write %s", path), metadata, err)
	}
	return nil
}
