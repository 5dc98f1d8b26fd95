package cli

import (
	"context"

	"github.com/thenoetrevino/hecho/internal/config"
)

type contextKey string

const (
	cliKey    contextKey = "cli"
	configKey contextKey = "config"
)

// WithCLI stores a ready CLI in ctx; commands use it instead of opening the database
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, cliKey, c)
}

// WithConfig stores the loaded configuration in ctx
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// ConfigFromContext returns the configuration stored by the root command, or
// loads it when absent
func ConfigFromContext(ctx context.Context) (*config.Config, error) {
	if ctx != nil {
		if cfg, ok := ctx.Value(configKey).(*config.Config); ok && cfg != nil {
			return cfg, nil
		}
		if c, ok := LookupCLI(ctx); ok {
			return c.Config, nil
		}
	}
	return config.Load()
}

// GetCLIFromContext returns the injected CLI or initializes one from config
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if c, ok := LookupCLI(ctx); ok {
		return c, nil
	}

	cfg, err := ConfigFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return NewCLI(ctx, cfg)
}

// LookupCLI returns the CLI injected into ctx without initializing a new one
func LookupCLI(ctx context.Context) (*CLI, bool) {
	if ctx == nil {
		return nil, false
	}
	c, ok := ctx.Value(cliKey).(*CLI)
	return c, ok && c != nil
}
