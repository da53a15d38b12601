// Package i18n resolves the request language for the landing page.
package i18n

import (
	"net/http"
	"strings"
	"time"

	"github.com/trueluxconstruction/landing/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "tl_lang"
)

var (
	supported = []language.Tag{language.AmericanEnglish, language.Spanish}
	matcher   = language.NewMatcher(supported)
)

func init() {
	catalog.Default()
}

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Default returns the default language tag.
func Default() language.Tag {
	return supported[0]
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ParseTag matches value against the supported languages.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Tag{}, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Tag{}, false
	}
	return match(tag)
}

func match(tags ...language.Tag) (language.Tag, bool) {
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Default(), false
	}
	return supported[index], true
}

// ResolveTag determines the best language tag for the request.
// The bool indicates whether the lang query param should be persisted as a cookie.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return Default(), false
	}
	if tag, ok := ParseTag(r.URL.Query().Get(LangParam)); ok {
		return tag, true
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := ParseTag(cookie.Value); ok {
			return tag, false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			tag, _ := match(tags...)
			return tag, false
		}
	}
	return Default(), false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// Localize resolves the request language, persists an explicit choice and
// returns the printer together with the resolved tag.
func Localize(w http.ResponseWriter, r *http.Request) (*message.Printer, language.Tag) {
	tag, persist := ResolveTag(r)
	if persist {
		SetLanguageCookie(w, tag)
	}
	return Printer(tag), tag
}
