package templates

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"
	"github.com/trueluxconstruction/landing/internal/gallery"
	"github.com/trueluxconstruction/landing/internal/services/web/routepath"
)

// GalleryRootID is the element the modal fragment is swapped into.
const GalleryRootID = "gallery-root"

// The key listener sits on a hidden sibling of the modal controls so its
// hx-vals never reach their clicks.
const modalKeyTrigger = "keyup[key=='Escape'||key=='ArrowLeft'||key=='ArrowRight'] from:body"

const cardIDPrefix = "work-card-"

// CardID is the element id of the inline viewer for a project. Bytes outside
// [A-Za-z0-9-] are hex escaped as _xx so the id stays a valid CSS selector
// and distinct keys keep distinct ids.
func CardID(key string) string {
	var b strings.Builder
	b.WriteString(cardIDPrefix)
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-':
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "_%02x", c)
		}
	}
	return b.String()
}

// hxRequest is the fragment request a gallery control issues.
type hxRequest struct {
	URL    templ.SafeURL
	Target string
	Swap   string
}

func (r hxRequest) attrs() templ.OrderedAttributes {
	return templ.OrderedAttributes{
		{Key: "hx-get", Value: string(r.URL)},
		{Key: "hx-target", Value: r.Target},
		{Key: "hx-swap", Value: r.Swap},
	}
}

func modalRequest(view gallery.View, action gallery.Action) hxRequest {
	return hxRequest{
		URL:    templ.URL(routepath.GalleryAction(view.ProjectKey, view.Index, string(action))),
		Target: "#" + GalleryRootID,
		Swap:   "innerHTML",
	}
}

func modalGoTo(view gallery.View, to int) hxRequest {
	req := modalRequest(view, gallery.ActionGoTo)
	req.URL = templ.URL(routepath.GalleryGoTo(view.ProjectKey, view.Index, to))
	return req
}

func cardRequest(view gallery.View, action gallery.Action) hxRequest {
	return hxRequest{
		URL:    templ.URL(routepath.WorkCardAction(view.ProjectKey, view.Index, string(action))),
		Target: "#" + CardID(view.ProjectKey),
		Swap:   "outerHTML",
	}
}

func cardGoTo(view gallery.View, to int) hxRequest {
	req := cardRequest(view, gallery.ActionGoTo)
	req.URL = templ.URL(routepath.WorkCardGoTo(view.ProjectKey, view.Index, to))
	return req
}
