package templates

import (
	"net/url"

	"github.com/trueluxconstruction/landing/internal/services/web/routepath"
)

// LanguageOption is one entry of the language switcher.
type LanguageOption struct {
	Tag   string
	Label string
	Href  string
	Ours  bool
}

var languageChoices = []struct{ tag, key string }{
	{"en-US", "core.lang.en"},
	{"es", "core.lang.es"},
}

// LanguageOptions lists the switcher entries for page.
func LanguageOptions(page PageContext) []LanguageOption {
	options := make([]LanguageOption, 0, len(languageChoices))
	for _, choice := range languageChoices {
		query, _ := url.ParseQuery(page.CurrentQuery)
		if query == nil {
			query = url.Values{}
		}
		query.Set("lang", choice.tag)
		path := page.CurrentPath
		if path == "" {
			path = routepath.Root
		}
		options = append(options, LanguageOption{
			Tag:   choice.tag,
			Label: T(page.Loc, choice.key),
			Href:  path + "?" + query.Encode(),
			Ours:  sameLanguage(page.Lang, choice.tag),
		})
	}
	return options
}

func sameLanguage(current, tag string) bool {
	if current == tag {
		return true
	}
	return len(current) >= 2 && len(tag) >= 2 && current[:2] == tag[:2]
}
