// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	Root             = "/"
	Health           = "/up"
	StaticPrefix     = "/static/"
	MediaPrefix      = "/media/"
	GalleryPrefix    = "/gallery/"
	GalleryPattern   = GalleryPrefix + "{key}"
	WorkPrefix       = "/work/"
	WorkCardPattern  = WorkPrefix + "{key}/card"
	APIPrefix        = "/api/"
	Contact          = "/api/contact"
	SectionHome      = "#home"
	SectionServices  = "#services"
	SectionWork      = "#work"
	SectionProcess   = "#process"
	SectionAbout     = "#about"
	SectionContact   = "#contact"
	QueryIndex       = "index"
	QueryAction      = "action"
	QueryKey         = "key"
	QueryTargetIndex = "to"
)

// Gallery returns the modal fragment URL for a project key.
func Gallery(key string) string {
	return GalleryPrefix + url.PathEscape(strings.TrimSpace(key))
}

// GalleryAction returns the modal fragment URL applying action at index.
func GalleryAction(key string, index int, action string) string {
	return withQuery(Gallery(key), index, action)
}

// WorkCard returns the inline card fragment URL for a project key.
func WorkCard(key string) string {
	return WorkPrefix + url.PathEscape(strings.TrimSpace(key)) + "/card"
}

// WorkCardAction returns the card fragment URL applying action at index.
func WorkCardAction(key string, index int, action string) string {
	return withQuery(WorkCard(key), index, action)
}

// WorkCardGoTo returns the card fragment URL jumping from index to target.
func WorkCardGoTo(key string, index, target int) string {
	query := url.Values{}
	query.Set(QueryIndex, strconv.Itoa(index))
	query.Set(QueryAction, "goto")
	query.Set(QueryTargetIndex, strconv.Itoa(target))
	return WorkCard(key) + "?" + query.Encode()
}

// GalleryGoTo returns the modal fragment URL jumping from index to target.
func GalleryGoTo(key string, index, target int) string {
	query := url.Values{}
	query.Set(QueryIndex, strconv.Itoa(index))
	query.Set(QueryAction, "goto")
	query.Set(QueryTargetIndex, strconv.Itoa(target))
	return Gallery(key) + "?" + query.Encode()
}

func withQuery(path string, index int, action string) string {
	query := url.Values{}
	query.Set(QueryIndex, strconv.Itoa(index))
	if action = strings.TrimSpace(action); action != "" {
		query.Set(QueryAction, action)
	}
	return path + "?" + query.Encode()
}
