package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/trueluxconstruction/landing/internal/gallery"
	"github.com/trueluxconstruction/landing/internal/platform/timeouts"
	"github.com/trueluxconstruction/landing/internal/services/web/app"
	module "github.com/trueluxconstruction/landing/internal/services/web/module"
	contactmodule "github.com/trueluxconstruction/landing/internal/services/web/modules/contact"
	gallerymodule "github.com/trueluxconstruction/landing/internal/services/web/modules/gallery"
	"github.com/trueluxconstruction/landing/internal/services/web/modules/public"
	"github.com/trueluxconstruction/landing/internal/services/web/platform/httpx"
	"github.com/trueluxconstruction/landing/internal/services/web/platform/observability"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// DefaultAppName is the business name shown in the page chrome.
const DefaultAppName = "True Lux Construction"

// Config defines the inputs for the landing server.
type Config struct {
	HTTPAddr     string
	AppName      string
	ContactEmail string
	Phone        string
	// MediaDir holds project photos served under /media/. Empty disables it.
	MediaDir string
	DevMode  bool
	Catalog  gallery.Catalog
	Contact  contactmodule.Submitter
	Logger   *slog.Logger
}

// Server hosts the landing HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *slog.Logger
	closers    []func() error
}

// Modules returns the feature modules for config in mount order.
func Modules(config Config) []module.Module {
	logger := config.Logger
	modules := []module.Module{
		public.New(public.Config{
			AppName:      appName(config),
			ContactEmail: config.ContactEmail,
			Phone:        config.Phone,
			Catalog:      config.Catalog,
			Logger:       logger,
		}),
		public.StaticAssets(),
		gallerymodule.NewModal(config.Catalog, logger),
		gallerymodule.NewCards(config.Catalog, logger),
	}
	if strings.TrimSpace(config.MediaDir) != "" {
		modules = append(modules, public.MediaAssets(config.MediaDir))
	}
	if config.Contact != nil {
		modules = append(modules, contactmodule.New(contactmodule.Config{
			Service: config.Contact,
			DevMode: config.DevMode,
			Logger:  logger,
		}))
	}
	return modules
}

func appName(config Config) string {
	if name := strings.TrimSpace(config.AppName); name != "" {
		return name
	}
	return DefaultAppName
}

// NewHandler composes the modules for config and wraps them in the shared
// middleware chain.
func NewHandler(config Config) (http.Handler, error) {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	modules := Modules(config)
	root, err := app.Compose(modules...)
	if err != nil {
		return nil, fmt.Errorf("compose modules: %w", err)
	}
	if !app.Healthy(modules...) {
		config.Logger.Warn("contact form cannot deliver email; submissions will fail with upstream_unavailable")
	}
	handler := httpx.Chain(root,
		httpx.RequestID(),
		httpx.RecoverPanic(config.Logger),
		observability.RequestLogger(config.Logger),
	)
	return otelhttp.NewHandler(handler, "landing",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	), nil
}

// NewServer builds a configured landing server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	handler, err := NewHandler(config)
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			ErrorLog:          slog.NewLogLogger(config.Logger.Handler(), slog.LevelWarn),
		},
		logger: config.Logger,
	}, nil
}

// OnClose registers a release func run by Close, in reverse order.
func (s *Server) OnClose(fn func() error) {
	if s == nil || fn == nil {
		return
	}
	s.closers = append(s.closers, fn)
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	s.logger.Info("landing server listening", "addr", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases resources registered with OnClose.
func (s *Server) Close() {
	if s == nil {
		return
	}
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			s.logger.Error("close server resource", "error", err)
		}
	}
	s.closers = nil
}
