// Package gallery parses gallery preview flags and runs the terminal
// preview of the project gallery.
package gallery

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/trueluxconstruction/landing/internal/gallery"
	entrypoint "github.com/trueluxconstruction/landing/internal/platform/cmd"
)

// Config holds gallery preview configuration.
type Config struct {
	CatalogPath string `env:"LANDING_CATALOG_PATH"`
	Open        string `env:"LANDING_GALLERY_OPEN"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "Project catalog YAML path (embedded catalog when empty)")
	fs.StringVar(&cfg.Open, "open", cfg.Open, "Project key to open on start")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the terminal preview.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceGallery, func(ctx context.Context) error {
		catalog, err := loadCatalog(cfg.CatalogPath)
		if err != nil {
			return err
		}
		model := NewModel(catalog).OpenProject(cfg.Open)
		_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		if err != nil {
			return fmt.Errorf("run gallery preview: %w", err)
		}
		return nil
	})
}

func loadCatalog(path string) (gallery.Catalog, error) {
	if path = strings.TrimSpace(path); path != "" {
		return gallery.LoadCatalogFile(path)
	}
	return gallery.DefaultCatalog()
}
