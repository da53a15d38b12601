package otel

import (
	"context"
	"fmt"
	"strings"

	"github.com/trueluxconstruction/landing/internal/platform/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Config selects the trace exporter. An empty Endpoint or an Enabled value
// of "false" turns tracing off.
type Config struct {
	Endpoint    string  `env:"LANDING_OTEL_ENDPOINT"`
	Enabled     string  `env:"LANDING_OTEL_ENABLED"`
	SampleRatio float64 `env:"LANDING_OTEL_SAMPLE_RATIO" envDefault:"1"`
	Environment string  `env:"LANDING_ENV"`
}

func (c Config) active() bool {
	return strings.TrimSpace(c.Endpoint) != "" && !strings.EqualFold(strings.TrimSpace(c.Enabled), "false")
}

// Setup reads Config from the environment and installs a global tracer
// provider for serviceName. The returned shutdown flushes pending spans.
func Setup(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return noop, err
	}
	return SetupWithConfig(ctx, serviceName, cfg)
}

// SetupWithConfig is Setup with an explicit Config.
func SetupWithConfig(ctx context.Context, serviceName string, cfg Config) (func(context.Context) error, error) {
	if !cfg.active() {
		return noop, nil
	}
	if cfg.SampleRatio < 0 || cfg.SampleRatio > 1 {
		return noop, fmt.Errorf("otel sample ratio %v is outside [0, 1]", cfg.SampleRatio)
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(strings.TrimSpace(cfg.Endpoint)))
	if err != nil {
		return noop, fmt.Errorf("otel exporter: %w", err)
	}

	attrs := []resource.Option{resource.WithAttributes(semconv.ServiceName(serviceName))}
	if env := strings.TrimSpace(cfg.Environment); env != "" {
		attrs = append(attrs, resource.WithAttributes(semconv.DeploymentEnvironment(env)))
	}
	res, err := resource.New(ctx, attrs...)
	if err != nil {
		return noop, fmt.Errorf("otel resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return tp.Shutdown, nil
}

func noop(context.Context) error { return nil }
