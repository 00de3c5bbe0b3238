// Package web parses the HTTP surface flags and runs the translation server.
package web

import (
	"context"
	"flag"
	"fmt"
	"strings"

	entrypoint "github.com/er336250/fish-test/internal/platform/cmd"
	"github.com/er336250/fish-test/internal/translation"
	"github.com/er336250/fish-test/internal/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr       string `env:"HTTP_ADDR" envDefault:"localhost:8080"`
	MaxUploadBytes int64  `env:"WEB_MAX_UPLOAD_BYTES" envDefault:"33554432"`
	NameField      string `env:"NAME_FIELD" envDefault:"name"`
	TypeField      string `env:"TYPE_FIELD" envDefault:"type"`
	Preview        int    `env:"PREVIEW" envDefault:"5"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.Int64Var(&cfg.MaxUploadBytes, "max-upload-bytes", cfg.MaxUploadBytes, "maximum request body size in bytes")
	fs.StringVar(&cfg.NameField, "name-field", cfg.NameField, "default record key holding the name")
	fs.StringVar(&cfg.TypeField, "type-field", cfg.TypeField, "default record key holding the type")
	fs.IntVar(&cfg.Preview, "preview", cfg.Preview, "default number of translated records to preview")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return Config{}, fmt.Errorf("http-addr is required")
	}
	if cfg.MaxUploadBytes <= 0 {
		return Config{}, fmt.Errorf("max-upload-bytes must be positive, got %d", cfg.MaxUploadBytes)
	}
	if cfg.Preview < 0 {
		return Config{}, fmt.Errorf("preview must be non-negative, got %d", cfg.Preview)
	}
	return cfg, nil
}

// Run starts the translation web server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServer(web.Config{
			HTTPAddr: cfg.HTTPAddr,
			Handler: web.HandlerConfig{
				MaxUploadBytes: cfg.MaxUploadBytes,
				Fields:         translation.Fields{Name: cfg.NameField, Type: cfg.TypeField},
				PreviewSize:    cfg.Preview,
			},
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
