// Package cmd holds the startup plumbing shared by the landing commands.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/trueluxconstruction/landing/internal/platform/config"
	"github.com/trueluxconstruction/landing/internal/platform/otel"
)

const telemetryShutdown = 5 * time.Second

// Service names reported to telemetry.
const (
	ServiceContact = "contact"
	ServiceGallery = "gallery"
	ServiceWeb     = "web"
)

// ParseConfig loads environment values into cfg.
func ParseConfig[T any](cfg *T) error {
	return ParseConfigWithAliases(cfg, nil)
}

// ParseConfigWithAliases loads environment values into cfg. A legacy name in
// aliases is read only when its canonical variable is unset.
func ParseConfigWithAliases[T any](cfg *T, aliases map[string]string) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	if len(aliases) == 0 {
		return config.ParseEnv(cfg)
	}
	return config.ParseEnvWithAliases(cfg, aliases)
}

// ParseArgs parses command-line flags on top of the environment values.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// RunWithTelemetry installs tracing for service, runs fn and flushes spans
// once fn returns.
func RunWithTelemetry(ctx context.Context, service string, fn func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return errors.New("service name is required")
	}
	if fn == nil {
		return errors.New("run function is required")
	}
	shutdown, err := otel.Setup(ctx, service)
	if err != nil {
		return fmt.Errorf("telemetry for %s: %w", service, err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), telemetryShutdown)
		defer cancel()
		if err := shutdown(flushCtx); err != nil {
			slog.Error("otel shutdown", slog.String("service", service), slog.String("error", err.Error()))
		}
	}()
	return fn(ctx)
}
