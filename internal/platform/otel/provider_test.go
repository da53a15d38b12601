package otel

import (
	"context"
	"testing"
)

func TestSetupIsNoopWithoutEndpoint(t *testing.T) {
	t.Setenv("LANDING_OTEL_ENDPOINT", "")
	t.Setenv("LANDING_OTEL_ENABLED", "")

	shutdown, err := Setup(context.Background(), "web")
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := shutdown(ctx); err != nil {
		t.Fatalf("noop shutdown error = %v", err)
	}
}

func TestConfigActive(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		cfg  Config
		want bool
	}{
		"empty":            {cfg: Config{}, want: false},
		"endpoint":         {cfg: Config{Endpoint: "http://localhost:4318"}, want: true},
		"disabled":         {cfg: Config{Endpoint: "http://localhost:4318", Enabled: "FALSE"}, want: false},
		"enabled explicit": {cfg: Config{Endpoint: "http://localhost:4318", Enabled: "true"}, want: true},
		"blank endpoint":   {cfg: Config{Endpoint: "  "}, want: false},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if got := tc.cfg.active(); got != tc.want {
				t.Fatalf("active() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSetupWithConfigRejectsSampleRatio(t *testing.T) {
	t.Parallel()

	cfg := Config{Endpoint: "http://192.0.2.1:4318", SampleRatio: 1.5}
	if _, err := SetupWithConfig(context.Background(), "web", cfg); err == nil {
		t.Fatal("expected sample ratio error")
	}
}

func TestSetupInstallsProviderWhenEndpointSet(t *testing.T) {
	t.Setenv("LANDING_OTEL_ENDPOINT", "http://192.0.2.1:4318")
	t.Setenv("LANDING_OTEL_ENABLED", "")
	t.Setenv("LANDING_ENV", "test")

	shutdown, err := Setup(context.Background(), "contact")
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error = %v", err)
	}
}
