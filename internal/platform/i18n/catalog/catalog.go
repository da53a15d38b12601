// Package catalog loads the localized copy of the site from embedded YAML
// files and registers it with x/text/message.
//
// Files live at locales/<locale>/<namespace>.yaml. Every key in a file starts
// with "<namespace>." and every locale defines exactly the keys of BaseLocale.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// BaseLocale holds the source copy every other locale translates.
const BaseLocale = "en-US"

//go:embed locales/*/*.yaml
var embedded embed.FS

type file struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Bundle is the loaded copy for every locale.
type Bundle struct {
	messages   map[string]map[string]string
	namespaces map[string][]string
}

var (
	defaultOnce   sync.Once
	defaultBundle *Bundle
)

// Default loads and registers the embedded catalog once. It panics when the
// embedded files are invalid, which the package tests rule out.
func Default() *Bundle {
	defaultOnce.Do(func() {
		bundle, err := LoadEmbedded()
		if err != nil {
			panic(err)
		}
		if err := bundle.Register(); err != nil {
			panic(err)
		}
		defaultBundle = bundle
	})
	return defaultBundle
}

// LoadEmbedded loads the catalog compiled into the binary.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embedded)
}

// LoadFromFS loads and validates the locale files in fsys.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	slices.Sort(paths)

	b := &Bundle{messages: map[string]map[string]string{}, namespaces: map[string][]string{}}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var f file
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		if err := b.add(p, f); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", p, err)
		}
	}
	if err := b.checkParity(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bundle) add(p string, f file) error {
	locale := strings.TrimSpace(f.Locale)
	namespace := strings.TrimSpace(f.Namespace)
	if want := path.Base(path.Dir(p)); locale != want {
		return fmt.Errorf("locale %q must match directory %q", locale, want)
	}
	if want := strings.TrimSuffix(path.Base(p), path.Ext(p)); namespace != want {
		return fmt.Errorf("namespace %q must match file name %q", namespace, want)
	}
	if len(f.Messages) == 0 {
		return fmt.Errorf("no messages")
	}

	messages, ok := b.messages[locale]
	if !ok {
		messages = map[string]string{}
		b.messages[locale] = messages
	}
	for key, value := range f.Messages {
		key = strings.TrimSpace(key)
		if !strings.HasPrefix(key, namespace+".") {
			return fmt.Errorf("key %q must start with %q", key, namespace+".")
		}
		if _, dup := messages[key]; dup {
			return fmt.Errorf("duplicate key %q", key)
		}
		messages[key] = value
	}
	b.namespaces[locale] = append(b.namespaces[locale], namespace)
	return nil
}

func (b *Bundle) checkParity() error {
	base, ok := b.messages[BaseLocale]
	if !ok {
		return fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	for _, locale := range b.Locales() {
		messages := b.messages[locale]
		for key := range base {
			if _, ok := messages[key]; !ok {
				return fmt.Errorf("locale %s is missing key %q", locale, key)
			}
		}
		for key := range messages {
			if _, ok := base[key]; !ok {
				return fmt.Errorf("locale %s defines key %q absent from %s", locale, key, BaseLocale)
			}
		}
	}
	return nil
}

// Register installs every message with x/text/message under its locale tag
// and, for regional locales, under the bare language too.
func (b *Bundle) Register() error {
	for _, locale := range b.Locales() {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		tags := []language.Tag{tag}
		if base, conf := tag.Base(); conf != language.No {
			if bare := language.Make(base.String()); bare != tag {
				tags = append(tags, bare)
			}
		}
		for key, value := range b.messages[locale] {
			for _, t := range tags {
				if err := message.SetString(t, key, value); err != nil {
					return fmt.Errorf("register %s %q: %w", t, key, err)
				}
			}
		}
	}
	return nil
}

// Locales lists the loaded locales in sorted order.
func (b *Bundle) Locales() []string {
	return slices.Sorted(maps.Keys(b.messages))
}

// Namespaces lists the namespaces defined for locale.
func (b *Bundle) Namespaces(locale string) []string {
	return slices.Sorted(slices.Values(b.namespaces[locale]))
}

// LocaleMessages returns a copy of the messages defined for locale.
func (b *Bundle) LocaleMessages(locale string) map[string]string {
	return maps.Clone(b.messages[locale])
}

// Message looks key up in locale, then in BaseLocale.
func (b *Bundle) Message(locale, key string) (string, bool) {
	if value, ok := b.messages[strings.TrimSpace(locale)][key]; ok {
		return value, true
	}
	value, ok := b.messages[BaseLocale][key]
	return value, ok
}
