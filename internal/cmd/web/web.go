// Package web parses landing command flags and launches the landing server.
package web

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/trueluxconstruction/landing/internal/gallery"
	entrypoint "github.com/trueluxconstruction/landing/internal/platform/cmd"
	"github.com/trueluxconstruction/landing/internal/platform/logging"
	"github.com/trueluxconstruction/landing/internal/services/contact"
	"github.com/trueluxconstruction/landing/internal/services/contact/resend"
	"github.com/trueluxconstruction/landing/internal/services/contact/storage/sqlite"
	"github.com/trueluxconstruction/landing/internal/services/web"
)

// Config holds the landing command configuration.
type Config struct {
	HTTPAddr         string `env:"LANDING_HTTP_ADDR" envDefault:"localhost:8080"`
	AppName          string `env:"LANDING_APP_NAME" envDefault:"True Lux Construction"`
	CatalogPath      string `env:"LANDING_CATALOG_PATH"`
	MediaDir         string `env:"LANDING_MEDIA_DIR"`
	SubmissionDBPath string `env:"LANDING_SUBMISSION_DB_PATH"`
	ContactEmail     string `env:"LANDING_CONTACT_EMAIL"`
	ContactPhone     string `env:"LANDING_CONTACT_PHONE"`
	FromEmail        string `env:"LANDING_FROM_EMAIL"`
	EmailService     string `env:"LANDING_EMAIL_SERVICE" envDefault:"resend"`
	ResendAPIKey     string `env:"LANDING_RESEND_API_KEY"`
	ResendBaseURL    string `env:"LANDING_RESEND_BASE_URL"`
	DevMode          bool   `env:"LANDING_DEV_MODE"`
	LogLevel         string `env:"LANDING_LOG_LEVEL" envDefault:"info"`
	LogFormat        string `env:"LANDING_LOG_FORMAT" envDefault:"text"`
	LogFile          string `env:"LANDING_LOG_FILE"`
}

// legacyEnv maps canonical variables to the unprefixed names older
// deployments export.
var legacyEnv = map[string]string{
	"LANDING_RESEND_API_KEY": "RESEND_API_KEY",
	"LANDING_CONTACT_EMAIL":  "CONTACT_EMAIL",
	"LANDING_FROM_EMAIL":     "FROM_EMAIL",
	"LANDING_EMAIL_SERVICE":  "EMAIL_SERVICE",
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfigWithAliases(&cfg, legacyEnv); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "Project catalog YAML path (embedded catalog when empty)")
	fs.StringVar(&cfg.MediaDir, "media-dir", cfg.MediaDir, "Directory served under /media/")
	fs.StringVar(&cfg.SubmissionDBPath, "submission-db", cfg.SubmissionDBPath, "SQLite path for the submission log (disabled when empty)")
	fs.StringVar(&cfg.ContactEmail, "contact-email", cfg.ContactEmail, "Recipient of contact notifications")
	fs.BoolVar(&cfg.DevMode, "dev", cfg.DevMode, "Expose failure details in contact responses")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Console log format: text or json")

	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the landing server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		return run(ctx, cfg, os.Stderr)
	})
}

func run(ctx context.Context, cfg Config, console io.Writer) error {
	logger, err := logging.New(console, logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
		Prefix: entrypoint.ServiceWeb,
	})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logger.Close()

	catalog, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}

	service, closeStore, err := buildContactService(ctx, cfg, logger)
	if err != nil {
		return err
	}

	server, err := web.NewServer(web.Config{
		HTTPAddr:     cfg.HTTPAddr,
		AppName:      cfg.AppName,
		ContactEmail: cfg.ContactEmail,
		Phone:        cfg.ContactPhone,
		MediaDir:     cfg.MediaDir,
		DevMode:      cfg.DevMode,
		Catalog:      catalog,
		Contact:      service,
		Logger:       logger.Logger,
	})
	if err != nil {
		_ = closeStore()
		return fmt.Errorf("init web server: %w", err)
	}
	server.OnClose(closeStore)
	defer server.Close()

	logger.Info("landing configured",
		"projects", catalog.Len(),
		"contact_configured", service.Configured(),
		"submission_log", cfg.SubmissionDBPath != "",
		"dev_mode", cfg.DevMode,
	)
	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}

func loadCatalog(path string) (gallery.Catalog, error) {
	if path = strings.TrimSpace(path); path != "" {
		catalog, err := gallery.LoadCatalogFile(path)
		if err != nil {
			return gallery.Catalog{}, fmt.Errorf("load catalog %s: %w", path, err)
		}
		return catalog, nil
	}
	catalog, err := gallery.DefaultCatalog()
	if err != nil {
		return gallery.Catalog{}, fmt.Errorf("load embedded catalog: %w", err)
	}
	return catalog, nil
}

// buildContactService wires the sender and optional submission log. A missing
// API key is not an error: the service answers upstream_unavailable.
func buildContactService(ctx context.Context, cfg Config, logger *logging.Logger) (*contact.Service, func() error, error) {
	serviceCfg := contact.Config{
		Provider: cfg.EmailService,
		Logger:   logger.Logger,
		Addressing: contact.Addressing{
			From:      cfg.FromEmail,
			Recipient: cfg.ContactEmail,
		},
	}

	if strings.TrimSpace(cfg.ResendAPIKey) != "" {
		sender, err := resend.New(resend.Config{APIKey: cfg.ResendAPIKey, BaseURL: cfg.ResendBaseURL})
		if err != nil {
			return nil, nil, fmt.Errorf("init resend client: %w", err)
		}
		serviceCfg.Sender = sender
	}

	closeStore := func() error { return nil }
	if path := strings.TrimSpace(cfg.SubmissionDBPath); path != "" {
		store, err := sqlite.Open(ctx, path)
		if err != nil {
			return nil, nil, fmt.Errorf("open submission log: %w", err)
		}
		serviceCfg.Store = store
		closeStore = store.Close
	}
	return contact.NewService(serviceCfg), closeStore, nil
}
