// Package gallery serves the HTMX fragments for the project gallery: the
// modal overlay and the inline viewer on each work card.
//
// Every request replays the client's state onto a fresh controller: open the
// project, restore the index, then apply the key or, failing that, the action.
package gallery

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/trueluxconstruction/landing/internal/gallery"
	module "github.com/trueluxconstruction/landing/internal/services/web/module"
	"github.com/trueluxconstruction/landing/internal/services/web/platform/httpx"
	"github.com/trueluxconstruction/landing/internal/services/web/platform/pagerender"
	"github.com/trueluxconstruction/landing/internal/services/web/routepath"
	"github.com/trueluxconstruction/landing/internal/services/web/templates"
)

type fragment func(templates.Localizer, gallery.View) templ.Component

// Module serves one gallery presentation.
type Module struct {
	id       string
	prefix   string
	pattern  string
	target   gallery.Target
	closable bool
	render   fragment
	catalog  gallery.Catalog
	logger   *slog.Logger
}

// NewModal returns the module serving the overlay at /gallery/{key}.
func NewModal(catalog gallery.Catalog, logger *slog.Logger) Module {
	return Module{
		id:       "gallery",
		prefix:   routepath.GalleryPrefix,
		pattern:  routepath.GalleryPattern,
		target:   gallery.ModalTarget(),
		closable: true,
		render:   templates.GalleryModal,
		catalog:  catalog,
		logger:   orDefault(logger),
	}
}

// NewCards returns the module serving inline viewers at /work/{key}/card.
// Cards stay open; close actions and keys are ignored.
func NewCards(catalog gallery.Catalog, logger *slog.Logger) Module {
	return Module{
		id:      "work-cards",
		prefix:  routepath.WorkPrefix,
		pattern: routepath.WorkCardPattern,
		target:  gallery.InlineTarget(),
		render:  templates.GalleryCard,
		catalog: catalog,
		logger:  orDefault(logger),
	}
}

func orDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// ID returns a stable module identifier.
func (m Module) ID() string { return m.id }

// Mount returns the fragment route mount.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+m.pattern, m.handle)
	return module.Mount{Prefix: m.prefix, Handler: mux}, nil
}

func (m Module) handle(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := m.replay(r)
	if !ok {
		httpx.WriteNoContent(w)
		return
	}
	view, open := ctrl.View()
	if !open {
		_ = httpx.WriteHTML(w, http.StatusOK, "")
		return
	}
	loc := pagerender.Localizer(w, r)
	if err := pagerender.WriteComponent(w, r, http.StatusOK, m.render(loc, view)); err != nil {
		m.logger.ErrorContext(r.Context(), "render gallery fragment",
			"error", err,
			"project", view.ProjectKey,
			"layout", view.Layout.String(),
			"request_id", httpx.RequestIDFrom(r),
		)
		httpx.WriteError(w, err)
	}
}

// replay rebuilds the controller for r. It reports false for unknown projects.
func (m Module) replay(r *http.Request) (*gallery.Controller, bool) {
	ctrl := gallery.NewController(m.catalog, m.target, nil)
	if !ctrl.Open(r.PathValue("key")) {
		return nil, false
	}
	query := r.URL.Query()
	if index, err := strconv.Atoi(query.Get(routepath.QueryIndex)); err == nil {
		ctrl.GoTo(index)
	}

	// A key the controller does not consume falls through to the action.
	if key := gallery.Key(strings.TrimSpace(query.Get(routepath.QueryKey))); key != "" {
		if key == gallery.KeyEscape && !m.closable {
			return ctrl, true
		}
		if ctrl.HandleKey(key) {
			return ctrl, true
		}
	}

	action := gallery.ParseAction(query.Get(routepath.QueryAction))
	if action == gallery.ActionClose && !m.closable {
		return ctrl, true
	}
	target, err := strconv.Atoi(query.Get(routepath.QueryTargetIndex))
	if err != nil {
		target = -1
	}
	ctrl.Apply(action, target)
	return ctrl, true
}
