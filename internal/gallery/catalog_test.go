package gallery

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadCatalogKeepsOrderAndNormalizesKeys(t *testing.T) {
	t.Parallel()

	catalog, err := LoadCatalog(strings.NewReader(`
projects:
  2:
    title: Second
    images: [b1.jpg, b2.jpg]
  kitchen:
    title: " Kitchen "
    images:
      - k.jpg
  1:
    title: First
    images: [a.jpg]
`))
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if got := strings.Join(catalog.Keys(), ","); got != "2,kitchen,1" {
		t.Fatalf("Keys() = %q, want %q", got, "2,kitchen,1")
	}
	project, ok := catalog.Lookup("kitchen")
	if !ok {
		t.Fatal("Lookup(kitchen) missing")
	}
	if project.Title != "Kitchen" {
		t.Fatalf("Title = %q, want Kitchen", project.Title)
	}
	if _, ok := catalog.Lookup("2"); !ok {
		t.Fatal("integer key not stored as text")
	}
}

func TestLoadCatalogIntegerKeysUseDecimalText(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		body string
		want string
	}{
		"leading zero": {body: "projects:\n  01:\n    images: [a.jpg]\n", want: "1"},
		"hex":          {body: "projects:\n  0x2:\n    images: [a.jpg]\n", want: "2"},
		"octal":        {body: "projects:\n  0o10:\n    images: [a.jpg]\n", want: "8"},
		"underscores":  {body: "projects:\n  1_000:\n    images: [a.jpg]\n", want: "1000"},
		"quoted stays": {body: "projects:\n  \"01\":\n    images: [a.jpg]\n", want: "01"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			catalog, err := LoadCatalog(strings.NewReader(tc.body))
			if err != nil {
				t.Fatalf("LoadCatalog() error = %v", err)
			}
			if got := strings.Join(catalog.Keys(), ","); got != tc.want {
				t.Fatalf("Keys() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestLoadCatalogRejectsKeysThatNormalizeTogether(t *testing.T) {
	t.Parallel()

	body := "projects:\n  1:\n    images: [a.jpg]\n  01:\n    images: [b.jpg]\n"
	if _, err := LoadCatalog(strings.NewReader(body)); err == nil {
		t.Fatal("LoadCatalog() error = nil, want duplicate key error")
	}
}

func TestLoadCatalogRejectsInvalidCatalogs(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"not a mapping": "projects: [a, b]\n",
		"no images":     "projects:\n  a:\n    title: A\n    images: []\n",
		"blank image":   "projects:\n  a:\n    images: [\"  \"]\n",
		"bad yaml":      "projects: {a: [\n",
		"bad entry":     "projects:\n  a: 3\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if _, err := LoadCatalog(strings.NewReader(body)); err == nil {
				t.Fatalf("LoadCatalog(%q) error = nil", body)
			}
		})
	}
}

func TestNewCatalogRejectsDuplicateKeys(t *testing.T) {
	t.Parallel()

	_, err := NewCatalog([]Project{
		{Key: "a", Images: []string{"1.jpg"}},
		{Key: " a ", Images: []string{"2.jpg"}},
	})
	if err == nil {
		t.Fatal("NewCatalog() accepted duplicate keys")
	}
}

func TestLoadCatalogFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "projects.yaml")
	if err := os.WriteFile(path, []byte("projects:\n  deck:\n    title: Deck\n    images: [d.jpg]\n"), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	catalog, err := LoadCatalogFile(path)
	if err != nil {
		t.Fatalf("LoadCatalogFile() error = %v", err)
	}
	if catalog.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", catalog.Len())
	}
	if _, err := LoadCatalogFile(""); err == nil {
		t.Fatal("LoadCatalogFile(\"\") error = nil")
	}
}

func TestDefaultCatalogLoads(t *testing.T) {
	t.Parallel()

	catalog, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog() error = %v", err)
	}
	if catalog.Len() == 0 {
		t.Fatal("default catalog is empty")
	}
	for _, project := range catalog.Projects() {
		if len(project.Images) == 0 {
			t.Fatalf("project %q has no images", project.Key)
		}
	}
}
