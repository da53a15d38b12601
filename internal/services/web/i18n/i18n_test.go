package i18n

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestResolveTagPrecedence(t *testing.T) {
	t.Run("query param wins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/?lang=es", nil)
		req.Header.Set("Accept-Language", "en")
		req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "en-US"})

		tag, persist := ResolveTag(req)
		if tag.String() != "es" {
			t.Fatalf("expected es, got %s", tag.String())
		}
		if !persist {
			t.Fatalf("expected persist to be true")
		}
	})

	t.Run("cookie wins over accept-language", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
		req.Header.Set("Accept-Language", "es-MX")
		req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "en"})

		tag, persist := ResolveTag(req)
		if tag.String() != "en-US" {
			t.Fatalf("expected en-US, got %s", tag.String())
		}
		if persist {
			t.Fatalf("expected persist to be false")
		}
	})

	t.Run("accept-language fallback", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
		req.Header.Set("Accept-Language", "es-MX, en;q=0.5")

		tag, persist := ResolveTag(req)
		if tag.String() != "es" {
			t.Fatalf("expected es, got %s", tag.String())
		}
		if persist {
			t.Fatalf("expected persist to be false")
		}
	})
}

func TestResolveTagInvalidValuesFallBack(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://example.com/?lang=not-a-lang", nil)
	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "??"})

	tag, persist := ResolveTag(req)
	if tag != Default() {
		t.Fatalf("expected default tag, got %s", tag.String())
	}
	if persist {
		t.Fatal("expected persist to be false")
	}
	if tag, _ := ResolveTag(nil); tag != Default() {
		t.Fatalf("ResolveTag(nil) = %s, want default", tag.String())
	}
}

func TestLocalizePersistsQueryChoice(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://example.com/?lang=es", nil)
	rr := httptest.NewRecorder()

	printer, tag := Localize(rr, req)
	if tag.String() != "es" {
		t.Fatalf("tag = %s, want es", tag.String())
	}
	if got := printer.Sprintf("core.nav.home"); got != "Inicio" {
		t.Fatalf("core.nav.home = %q, want Inicio", got)
	}
	if cookie := rr.Header().Get("Set-Cookie"); !strings.Contains(cookie, LangCookieName+"=es") {
		t.Fatalf("Set-Cookie = %q", cookie)
	}
}

func TestPrinterUsesEnglishCopy(t *testing.T) {
	if got := Printer(Default()).Sprintf("core.nav.contact"); got != "Contact" {
		t.Fatalf("core.nav.contact = %q, want Contact", got)
	}
}
