// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/trueluxconstruction/landing/internal/services/web/i18n"
	"github.com/trueluxconstruction/landing/internal/services/web/platform/httpx"
	"github.com/trueluxconstruction/landing/internal/services/web/templates"
)

// Page resolves the request language, persisting an explicit choice, and
// returns the layout context for r.
func Page(w http.ResponseWriter, r *http.Request, appName string) templates.PageContext {
	loc, tag := i18n.Localize(w, r)
	page := templates.PageContext{
		Lang:    tag.String(),
		Loc:     loc,
		AppName: appName,
		Year:    time.Now().Year(),
	}
	if r != nil && r.URL != nil {
		page.CurrentPath = r.URL.Path
		query := r.URL.Query()
		query.Del(i18n.LangParam)
		page.CurrentQuery = query.Encode()
	}
	return page
}

// Localizer resolves only the request printer, for fragments.
func Localizer(w http.ResponseWriter, r *http.Request) templates.Localizer {
	loc, _ := i18n.Localize(w, r)
	return loc
}

// WriteComponent renders c into memory and writes it with status. Nothing
// is written when rendering fails.
func WriteComponent(w http.ResponseWriter, r *http.Request, status int, c templ.Component) error {
	if status <= 0 {
		status = http.StatusOK
	}
	var buf bytes.Buffer
	if c != nil {
		if err := c.Render(httpx.RequestContext(r), &buf); err != nil {
			return err
		}
	}
	return httpx.WriteHTML(w, status, buf.String())
}
