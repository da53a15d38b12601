// Package public serves the landing page, health check and static assets.
package public

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/trueluxconstruction/landing/internal/gallery"
	module "github.com/trueluxconstruction/landing/internal/services/web/module"
	"github.com/trueluxconstruction/landing/internal/services/web/platform/httpx"
	"github.com/trueluxconstruction/landing/internal/services/web/platform/pagerender"
	"github.com/trueluxconstruction/landing/internal/services/web/routepath"
	"github.com/trueluxconstruction/landing/internal/services/web/templates"
)

// Config carries the page content owned by the public module.
type Config struct {
	AppName      string
	ContactEmail string
	Phone        string
	Catalog      gallery.Catalog
	Logger       *slog.Logger
}

// Module provides the root routes.
type Module struct {
	config Config
}

// New returns the public module.
func New(config Config) Module {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return Module{config: config}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "public" }

// Mount returns the root route mount.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+routepath.Root+"{$}", m.handleLanding)
	mux.HandleFunc("GET "+routepath.Health, handleHealth)
	mux.HandleFunc(routepath.Root, m.handleNotFound)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (m Module) handleLanding(w http.ResponseWriter, r *http.Request) {
	page := pagerender.Page(w, r, m.config.AppName)
	params := templates.LandingParams{
		ContactEmail: m.config.ContactEmail,
		Phone:        m.config.Phone,
		Works:        WorkItems(m.config.Catalog),
	}
	if err := pagerender.WriteComponent(w, r, http.StatusOK, templates.LandingPage(page, params)); err != nil {
		m.config.Logger.ErrorContext(r.Context(), "render landing page", "error", err, "request_id", httpx.RequestIDFrom(r))
		httpx.WriteError(w, err)
	}
}

func (m Module) handleNotFound(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.Header.Get("Accept"), "application/json") {
		_ = httpx.WriteJSONError(w, http.StatusNotFound, "not found")
		return
	}
	page := pagerender.Page(w, r, m.config.AppName)
	if err := pagerender.WriteComponent(w, r, http.StatusNotFound, templates.NotFoundPage(page)); err != nil {
		http.NotFound(w, r)
	}
}

// WorkItems builds one card per catalog project, each starting on its first
// image with its own inline state.
func WorkItems(catalog gallery.Catalog) []templates.WorkItem {
	projects := catalog.Projects()
	items := make([]templates.WorkItem, 0, len(projects))
	for _, project := range projects {
		if len(project.Images) == 0 {
			continue
		}
		items = append(items, templates.WorkItem{
			Key:        project.Key,
			Title:      project.Title,
			PhotoCount: len(project.Images),
			Card:       gallery.BuildView(gallery.InlineTarget(), project, 0),
		})
	}
	return items
}
