package gallery

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed projects.yaml
var defaultCatalogYAML []byte

// Project is one unit of work with its ordered image list.
type Project struct {
	Key    string
	Title  string
	Images []string
}

// Catalog maps project keys to projects and remembers declaration order so
// pages list work items the way the catalog author wrote them.
type Catalog struct {
	projects map[string]Project
	order    []string
}

// NewCatalog validates projects and builds a catalog.
func NewCatalog(projects []Project) (Catalog, error) {
	catalog := Catalog{
		projects: make(map[string]Project, len(projects)),
		order:    make([]string, 0, len(projects)),
	}
	for _, project := range projects {
		key := strings.TrimSpace(project.Key)
		if key == "" {
			return Catalog{}, errors.New("project key is required")
		}
		if _, exists := catalog.projects[key]; exists {
			return Catalog{}, fmt.Errorf("project %q is declared twice", key)
		}
		images := make([]string, 0, len(project.Images))
		for _, image := range project.Images {
			image = strings.TrimSpace(image)
			if image == "" {
				return Catalog{}, fmt.Errorf("project %q has an empty image url", key)
			}
			images = append(images, image)
		}
		if len(images) == 0 {
			return Catalog{}, fmt.Errorf("project %q has no images", key)
		}
		catalog.projects[key] = Project{
			Key:    key,
			Title:  strings.TrimSpace(project.Title),
			Images: images,
		}
		catalog.order = append(catalog.order, key)
	}
	return catalog, nil
}

// Lookup returns the project stored under key.
func (c Catalog) Lookup(key string) (Project, bool) {
	project, ok := c.projects[strings.TrimSpace(key)]
	return project, ok
}

// Keys returns project keys in declaration order.
func (c Catalog) Keys() []string {
	return append([]string(nil), c.order...)
}

// Projects returns projects in declaration order.
func (c Catalog) Projects() []Project {
	out := make([]Project, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.projects[key])
	}
	return out
}

// Len returns the number of projects.
func (c Catalog) Len() int {
	return len(c.order)
}

type catalogEntry struct {
	Title  string   `yaml:"title"`
	Images []string `yaml:"images"`
}

// LoadCatalog decodes a YAML catalog of the form:
//
//	projects:
//	  kitchen:
//	    title: Modern Kitchen
//	    images: [a.jpg, b.jpg]
//
// Integer keys are accepted and stored as their decimal text, so 01 and 0x1
// both name project "1".
func LoadCatalog(r io.Reader) (Catalog, error) {
	if r == nil {
		return Catalog{}, errors.New("catalog reader is required")
	}
	var doc struct {
		Projects yaml.Node `yaml:"projects"`
	}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	if doc.Projects.Kind != yaml.MappingNode {
		return Catalog{}, errors.New("decode catalog: projects must be a mapping")
	}

	content := doc.Projects.Content
	projects := make([]Project, 0, len(content)/2)
	for idx := 0; idx+1 < len(content); idx += 2 {
		keyNode, valueNode := content[idx], content[idx+1]
		key := projectKey(keyNode)
		var entry catalogEntry
		if err := valueNode.Decode(&entry); err != nil {
			return Catalog{}, fmt.Errorf("decode project %q: %w", key, err)
		}
		projects = append(projects, Project{
			Key:    key,
			Title:  entry.Title,
			Images: entry.Images,
		})
	}
	return NewCatalog(projects)
}

func projectKey(node *yaml.Node) string {
	if node.ShortTag() != "!!int" {
		return node.Value
	}
	plain := strings.ReplaceAll(node.Value, "_", "")
	if n, err := strconv.ParseInt(plain, 0, 64); err == nil {
		return strconv.FormatInt(n, 10)
	}
	if n, err := strconv.ParseUint(plain, 0, 64); err == nil {
		return strconv.FormatUint(n, 10)
	}
	return node.Value
}

// LoadCatalogFile reads a YAML catalog from disk.
func LoadCatalogFile(path string) (Catalog, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Catalog{}, errors.New("catalog path is required")
	}
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return Catalog{}, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return LoadCatalog(f)
}

// DefaultCatalog returns the catalog bundled with the binary.
func DefaultCatalog() (Catalog, error) {
	return LoadCatalog(bytes.NewReader(defaultCatalogYAML))
}
