// Package commands implements the licensedb subcommands.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/licensedb/licensedb/internal/cli/config"
	"github.com/licensedb/licensedb/internal/cli/output"
)

// Context keys for per-invocation dependencies, populated by the root
// command before any subcommand runs.
type (
	configKey   struct{}
	rendererKey struct{}
	loggerKey   struct{}
)

// WithConfig stores the loaded config in ctx.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// GetConfig retrieves the config from the command context, falling back
// to defaults if none was stored.
func GetConfig(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return &config.Config{
		SPDXDir:           config.DefaultSPDXDir,
		ChooseALicenseDir: config.DefaultChooseALicenseDir,
		LicensesDir:       config.DefaultLicensesDir,
		RulesPath:         config.DefaultRulesPath,
		TagsPath:          config.DefaultTagsPath,
		OutputFormat:      config.DefaultOutput,
	}
}

// WithRenderer stores the renderer in ctx.
func WithRenderer(ctx context.Context, r *output.Renderer) context.Context {
	return context.WithValue(ctx, rendererKey{}, r)
}

// GetRenderer retrieves the renderer from the command context.
func GetRenderer(ctx context.Context) *output.Renderer {
	if r, ok := ctx.Value(rendererKey{}).(*output.Renderer); ok {
		return r
	}
	return output.NewRenderer(os.Stdout, os.Stderr, output.ModeAuto)
}

// WithLogger stores the logger in ctx.
func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, log)
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return log
	}
	return slog.New(slog.DiscardHandler)
}
