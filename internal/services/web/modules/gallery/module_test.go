package gallery

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/trueluxconstruction/landing/internal/gallery"
)

func testCatalog(t *testing.T) gallery.Catalog {
	t.Helper()
	catalog, err := gallery.NewCatalog([]gallery.Project{
		{Key: "1", Title: "Kitchen", Images: []string{"/media/k1.jpg", "/media/k2.jpg", "/media/k3.jpg"}},
		{Key: "2", Title: "Porch", Images: []string{"/media/p1.jpg"}},
	})
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}
	return catalog
}

func get(t *testing.T, m Module, target string) *httptest.ResponseRecorder {
	t.Helper()
	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	return rr
}

func TestModalFragments(t *testing.T) {
	t.Parallel()

	modal := NewModal(testCatalog(t), nil)
	tests := []struct {
		name        string
		target      string
		wantStatus  int
		wantCounter string
		wantEmpty   bool
	}{
		{name: "open", target: "/gallery/1", wantStatus: http.StatusOK, wantCounter: "1 / 3"},
		{name: "next", target: "/gallery/1?index=0&action=next", wantStatus: http.StatusOK, wantCounter: "2 / 3"},
		{name: "next at last is a no-op", target: "/gallery/1?index=2&action=next", wantStatus: http.StatusOK, wantCounter: "3 / 3"},
		{name: "previous at first is a no-op", target: "/gallery/1?index=0&action=previous", wantStatus: http.StatusOK, wantCounter: "1 / 3"},
		{name: "goto", target: "/gallery/1?index=0&action=goto&to=2", wantStatus: http.StatusOK, wantCounter: "3 / 3"},
		{name: "goto out of range", target: "/gallery/1?index=1&action=goto&to=9", wantStatus: http.StatusOK, wantCounter: "2 / 3"},
		{name: "arrow right", target: "/gallery/1?index=1&key=ArrowRight", wantStatus: http.StatusOK, wantCounter: "3 / 3"},
		{name: "arrow left", target: "/gallery/1?index=1&key=ArrowLeft", wantStatus: http.StatusOK, wantCounter: "1 / 3"},
		{name: "unrelated key", target: "/gallery/1?index=1&key=Enter", wantStatus: http.StatusOK, wantCounter: "2 / 3"},
		{name: "invalid index starts at first", target: "/gallery/1?index=abc", wantStatus: http.StatusOK, wantCounter: "1 / 3"},
		{name: "escape closes", target: "/gallery/1?index=1&key=Escape", wantStatus: http.StatusOK, wantEmpty: true},
		{name: "close", target: "/gallery/1?index=1&action=close", wantStatus: http.StatusOK, wantEmpty: true},
		{name: "undefined key falls through to next", target: "/gallery/1?action=next&index=0&key=undefined", wantStatus: http.StatusOK, wantCounter: "2 / 3"},
		{name: "undefined key falls through to close", target: "/gallery/1?action=close&index=1&key=undefined", wantStatus: http.StatusOK, wantEmpty: true},
		{name: "undefined key falls through to goto", target: "/gallery/1?action=goto&index=0&to=2&key=undefined", wantStatus: http.StatusOK, wantCounter: "3 / 3"},
		{name: "consumed key wins over action", target: "/gallery/1?action=previous&index=1&key=ArrowRight", wantStatus: http.StatusOK, wantCounter: "3 / 3"},
		{name: "unknown project", target: "/gallery/missing", wantStatus: http.StatusNoContent, wantEmpty: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rr := get(t, modal, tc.target)
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
			body := rr.Body.String()
			if tc.wantEmpty {
				if body != "" {
					t.Fatalf("body = %q, want empty", body)
				}
				return
			}
			if !strings.Contains(body, `<span class="gallery-counter">`+tc.wantCounter+`</span>`) {
				t.Fatalf("body missing counter %q:\n%s", tc.wantCounter, body)
			}
		})
	}
}

func TestModalSingleImageHasNoNavigation(t *testing.T) {
	t.Parallel()

	rr := get(t, NewModal(testCatalog(t), nil), "/gallery/2?action=next")
	body := rr.Body.String()
	if !strings.Contains(body, "1 / 1") || strings.Contains(body, "gallery-next") {
		t.Fatalf("body = %s", body)
	}
}

func TestCardFragments(t *testing.T) {
	t.Parallel()

	cards := NewCards(testCatalog(t), nil)
	tests := []struct {
		name      string
		target    string
		wantIndex string
	}{
		{name: "initial", target: "/work/1/card", wantIndex: "0"},
		{name: "next", target: "/work/1/card?index=0&action=next", wantIndex: "1"},
		{name: "previous", target: "/work/1/card?index=2&action=previous", wantIndex: "1"},
		{name: "goto dot", target: "/work/1/card?index=0&action=goto&to=2", wantIndex: "2"},
		{name: "close is ignored", target: "/work/1/card?index=1&action=close", wantIndex: "1"},
		{name: "escape is ignored", target: "/work/1/card?index=1&key=Escape", wantIndex: "1"},
		{name: "undefined key falls through", target: "/work/1/card?index=0&action=next&key=undefined", wantIndex: "1"},
		{name: "escape on a card skips the action", target: "/work/1/card?index=0&action=next&key=Escape", wantIndex: "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rr := get(t, cards, tc.target)
			if rr.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
			}
			body := rr.Body.String()
			if !strings.Contains(body, `id="work-card-1"`) || !strings.Contains(body, `data-index="`+tc.wantIndex+`"`) {
				t.Fatalf("body missing index %s:\n%s", tc.wantIndex, body)
			}
			if strings.Contains(body, "gallery-counter") {
				t.Fatal("card rendered modal counter")
			}
		})
	}
}

func TestCardUnknownProjectIsNoContent(t *testing.T) {
	t.Parallel()

	if rr := get(t, NewCards(testCatalog(t), nil), "/work/nope/card"); rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
}

func TestNonGetIsRejected(t *testing.T) {
	t.Parallel()

	mount, err := NewModal(testCatalog(t), nil).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/gallery/1", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}

func TestModuleIdentity(t *testing.T) {
	t.Parallel()

	catalog := testCatalog(t)
	for _, tc := range []struct {
		m      Module
		id     string
		prefix string
	}{
		{NewModal(catalog, nil), "gallery", "/gallery/"},
		{NewCards(catalog, nil), "work-cards", "/work/"},
	} {
		mount, err := tc.m.Mount()
		if err != nil {
			t.Fatalf("Mount() error = %v", err)
		}
		if tc.m.ID() != tc.id || mount.Prefix != tc.prefix {
			t.Fatalf("module = %q at %q, want %q at %q", tc.m.ID(), mount.Prefix, tc.id, tc.prefix)
		}
	}
}
