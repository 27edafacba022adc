// Package commands implements the dxfclean subcommands.
package commands

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/fusion17com/dxf-cleaner/internal/cli/config"
	"github.com/fusion17com/dxf-cleaner/internal/cli/output"
)

// Context keys used by the root command to hand shared values to
// subcommands.
type (
	ConfigKey   struct{}
	RendererKey struct{}
	LoggerKey   struct{}
)

// getConfig retrieves the config from the command context, falling back to
// defaults when the root command did not run.
func getConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(ConfigKey{}).(*config.Config); ok {
		return c
	}
	return &config.Config{
		OutputDir:    config.DefaultOutputDir,
		Suffix:       config.DefaultSuffix,
		OutputFormat: config.DefaultOutput,
	}
}

// getRenderer retrieves the renderer from the command context.
func getRenderer(ctx context.Context) *output.Renderer {
	if r, ok := ctx.Value(RendererKey{}).(*output.Renderer); ok {
		return r
	}
	return output.NewRenderer(os.Stdout, os.Stderr, output.ModeAuto)
}

// getLogger retrieves the logger from the command context.
func getLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(LoggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
