package templates

import (
	"time"

	"github.com/trueluxconstruction/landing/internal/services/web/routepath"
)

const htmxScript = "https://unpkg.com/htmx.org@2.0.4"

var navLinks = []struct{ href, key string }{
	{routepath.SectionHome, "core.nav.home"},
	{routepath.SectionServices, "core.nav.services"},
	{routepath.SectionWork, "core.nav.work"},
	{routepath.SectionProcess, "core.nav.process"},
	{routepath.SectionAbout, "core.nav.about"},
	{routepath.SectionContact, "core.nav.contact"},
}

func pageLang(page PageContext) string {
	if page.Lang == "" {
		return "en"
	}
	return page.Lang
}

func footerYear(page PageContext) int {
	if page.Year == 0 {
		return time.Now().Year()
	}
	return page.Year
}
