package templates

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/trueluxconstruction/landing/internal/gallery"
	"github.com/trueluxconstruction/landing/internal/platform/i18n/catalog"
	"github.com/trueluxconstruction/landing/internal/services/contact"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func englishPrinter() *message.Printer {
	catalog.Default()
	return message.NewPrinter(language.AmericanEnglish)
}

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	if err := c.Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return b.String()
}

func testProject() gallery.Project {
	return gallery.Project{Key: "1", Title: "Kitchen <Remodel>", Images: []string{"/media/a.jpg", "/media/b.jpg", "/media/c.jpg"}}
}

func assertContains(t *testing.T, html string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(html, want) {
			t.Fatalf("output missing %q:\n%s", want, html)
		}
	}
}

func TestGalleryModalRendersAffordances(t *testing.T) {
	t.Parallel()

	view := gallery.BuildView(gallery.ModalTarget(), testProject(), 0)
	html := render(t, GalleryModal(englishPrinter(), view))

	assertContains(t, html,
		`id="gallery-modal"`,
		`Kitchen &lt;Remodel&gt;`,
		`<span class="gallery-counter">1 / 3</span>`,
		`class="gallery-prev" aria-label="Previous image" disabled`,
		`hx-get="/gallery/1?action=next&amp;index=0"`,
		`hx-get="/gallery/1?action=goto&amp;index=0&amp;to=2"`,
		`hx-trigger="keyup[key==&#39;Escape&#39;||key==&#39;ArrowLeft&#39;||key==&#39;ArrowRight&#39;] from:body"`,
		`aria-current="true"`,
	)
	if strings.Contains(html, "gallery-indicator") {
		t.Fatal("modal rendered inline dots")
	}
}

func TestGalleryModalKeepsKeyValuesOffControls(t *testing.T) {
	t.Parallel()

	view := gallery.BuildView(gallery.ModalTarget(), testProject(), 1)
	html := render(t, GalleryModal(englishPrinter(), view))

	open := html[:strings.Index(html, ">")+1]
	if strings.Contains(open, "hx-vals") || strings.Contains(open, "hx-trigger") {
		t.Fatalf("modal root carries key listener: %s", open)
	}
	if n := strings.Count(html, "hx-vals="); n != 1 {
		t.Fatalf("hx-vals count = %d, want 1:\n%s", n, html)
	}
	assertContains(t, html, `<div class="gallery-keys" hidden hx-get="/gallery/1?index=1"`)
}

func TestGalleryModalSingleImageHidesNavigation(t *testing.T) {
	t.Parallel()

	project := gallery.Project{Key: "9", Title: "Porch", Images: []string{"/media/porch.jpg"}}
	html := render(t, GalleryModal(englishPrinter(), gallery.BuildView(gallery.ModalTarget(), project, 0)))

	for _, unwanted := range []string{"gallery-prev", "gallery-next", "gallery-thumbnails"} {
		if strings.Contains(html, unwanted) {
			t.Fatalf("single image modal rendered %q:\n%s", unwanted, html)
		}
	}
}

func TestGalleryCardTargetsItself(t *testing.T) {
	t.Parallel()

	view := gallery.BuildView(gallery.InlineTarget(), testProject(), 2)
	html := render(t, GalleryCard(englishPrinter(), view))

	assertContains(t, html,
		`id="work-card-1"`,
		`data-index="2"`,
		`hx-target="#work-card-1"`,
		`hx-swap="outerHTML"`,
		`hx-get="/work/1/card?action=previous&amp;index=2"`,
		`class="gallery-nav-btn next" aria-label="Next image" disabled`,
		`class="gallery-indicator active"`,
	)
	if strings.Contains(html, "gallery-counter") || strings.Contains(html, "Kitchen") {
		t.Fatal("inline card rendered modal-only affordances")
	}
}

func TestGalleryCardSingleImageIsStatic(t *testing.T) {
	t.Parallel()

	project := gallery.Project{Key: "9", Title: "Porch", Images: []string{"/media/porch.jpg"}}
	html := render(t, GalleryCard(englishPrinter(), gallery.BuildView(gallery.InlineTarget(), project, 0)))

	assertContains(t, html, `class="work-image-wrapper static"`)
	if strings.Contains(html, "gallery-nav-btn") || strings.Contains(html, "gallery-indicators") {
		t.Fatalf("static card rendered controls:\n%s", html)
	}
}

func TestGalleryImagesAreSanitized(t *testing.T) {
	t.Parallel()

	project := gallery.Project{Key: "7", Title: "Deck", Images: []string{"javascript:alert(1)", "/media/deck.jpg"}}
	tests := map[string]templ.Component{
		"modal": GalleryModal(englishPrinter(), gallery.BuildView(gallery.ModalTarget(), project, 0)),
		"card":  GalleryCard(englishPrinter(), gallery.BuildView(gallery.InlineTarget(), project, 0)),
	}

	for name, c := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			html := render(t, c)
			if strings.Contains(html, "javascript:") {
				t.Fatalf("unsafe image url rendered:\n%s", html)
			}
			assertContains(t, html, `src="about:invalid#TemplFailedSanitizationURL"`)
		})
	}
}

func TestCardID(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		key  string
		want string
	}{
		"plain":          {key: "kitchen-2", want: "work-card-kitchen-2"},
		"selector chars": {key: "a b.c:d", want: "work-card-a_20b_2ec_3ad"},
		"quote":          {key: `x"]`, want: "work-card-x_22_5d"},
		"underscore":     {key: "a_b", want: "work-card-a_5fb"},
		"non ascii":      {key: "ñ", want: "work-card-_c3_b1"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if got := CardID(tc.key); got != tc.want {
				t.Fatalf("CardID(%q) = %q, want %q", tc.key, got, tc.want)
			}
		})
	}
}

func TestCardIDKeepsDistinctKeysApart(t *testing.T) {
	t.Parallel()

	if CardID("a.b") == CardID("a_b") || CardID("a b") == CardID("a-b") {
		t.Fatal("distinct keys share a card id")
	}
}

func TestGalleryCardTargetsEscapedID(t *testing.T) {
	t.Parallel()

	project := gallery.Project{Key: "a b.c:d", Title: "Odd", Images: []string{"/media/a.jpg", "/media/b.jpg"}}
	html := render(t, GalleryCard(englishPrinter(), gallery.BuildView(gallery.InlineTarget(), project, 0)))

	assertContains(t, html,
		`id="work-card-a_20b_2ec_3ad"`,
		`hx-target="#work-card-a_20b_2ec_3ad"`,
		`hx-get="/work/a%20b.c:d/card?action=next&amp;index=0"`,
	)
}

func TestContactStatus(t *testing.T) {
	t.Parallel()

	loc := englishPrinter()
	tests := map[string]struct {
		result      contact.Result
		details     bool
		want        []string
		wantMissing string
	}{
		"success": {
			result: contact.Success(),
			want:   []string{`class="form-status success"`, `data-reason="success"`, "Message sent!"},
		},
		"missing fields": {
			result: contact.Result{Reason: contact.ReasonMissingField, Fields: []string{"name", "project-type"}},
			want:   []string{`data-reason="missing_required_field"`, "Please fill in the required fields: Full name, Project type"},
		},
		"unavailable": {
			result: contact.Failure(contact.ReasonUnavailable, "Email service not configured"),
			want:   []string{`class="form-status error"`, "temporarily unavailable"},
		},
		"rejected hides details": {
			result:      contact.Result{Reason: contact.ReasonRejected, Details: "domain not verified"},
			want:        []string{"Error - Try Again"},
			wantMissing: "domain not verified",
		},
		"rejected shows details in dev mode": {
			result:  contact.Result{Reason: contact.ReasonRejected, Details: "domain not verified"},
			details: true,
			want:    []string{"Details: domain not verified"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			html := render(t, ContactStatus(loc, tc.result, tc.details))
			assertContains(t, html, tc.want...)
			if tc.wantMissing != "" && strings.Contains(html, tc.wantMissing) {
				t.Fatalf("output contains %q:\n%s", tc.wantMissing, html)
			}
		})
	}
}

func TestLandingPageRendersSectionsAndCards(t *testing.T) {
	t.Parallel()

	project := testProject()
	page := PageContext{Lang: "en-US", Loc: englishPrinter(), CurrentPath: "/", AppName: "TrueLux Construction", Year: 2026}
	html := render(t, LandingPage(page, LandingParams{
		ContactEmail: "hello@example.com",
		Phone:        "555-0100",
		Works: []WorkItem{{
			Key:        project.Key,
			Title:      project.Title,
			PhotoCount: len(project.Images),
			Card:       gallery.BuildView(gallery.InlineTarget(), project, 0),
		}},
	}))

	assertContains(t, html,
		`<html lang="en-US">`,
		`id="home"`, `id="services"`, `id="work"`, `id="process"`, `id="about"`, `id="contact"`,
		`data-target="150"`, `data-target="15"`, `data-target="98"`,
		`id="work-card-1"`,
		`3 photos`,
		`hx-get="/gallery/1"`,
		`hx-post="/api/contact"`,
		`name="project-type"`,
		`hx-on:contact-sent="this.reset()"`,
		`id="contact-status"`,
		`id="gallery-root"`,
		`mailto:hello@example.com`,
		`© 2026 TrueLux Construction.`,
		`href="/?lang=es"`,
	)
}

func TestLanguageOptionsMarkCurrent(t *testing.T) {
	t.Parallel()

	options := LanguageOptions(PageContext{Lang: "es", CurrentPath: "/", CurrentQuery: "lang=es&x=1"})
	if len(options) != 2 {
		t.Fatalf("options = %d, want 2", len(options))
	}
	if options[0].Ours || !options[1].Ours {
		t.Fatalf("options = %+v", options)
	}
	if options[0].Href != "/?lang=en-US&x=1" {
		t.Fatalf("Href = %q", options[0].Href)
	}
}

func TestNotFoundPage(t *testing.T) {
	t.Parallel()

	html := render(t, NotFoundPage(PageContext{Loc: englishPrinter(), AppName: "TrueLux"}))
	assertContains(t, html, `<html lang="en">`, `class="error-page"`, `href="/"`)
}

func TestTFallsBackToKey(t *testing.T) {
	t.Parallel()

	if got := T(nil, "core.nav.home"); got != "core.nav.home" {
		t.Fatalf("T(nil) = %q, want key", got)
	}
}
