package public

import (
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strings"

	module "github.com/trueluxconstruction/landing/internal/services/web/module"
	"github.com/trueluxconstruction/landing/internal/services/web/platform/httpx"
	"github.com/trueluxconstruction/landing/internal/services/web/routepath"
	"github.com/trueluxconstruction/landing/internal/services/web/static"
)

// Assets serves a file tree under a fixed prefix.
type Assets struct {
	id     string
	prefix string
	files  fs.FS
}

// StaticAssets serves the embedded stylesheet and script.
func StaticAssets() Assets {
	return Assets{id: "static", prefix: routepath.StaticPrefix, files: static.FS}
}

// MediaAssets serves project photos from dir.
func MediaAssets(dir string) Assets {
	var files fs.FS
	if dir = strings.TrimSpace(dir); dir != "" {
		files = os.DirFS(dir)
	}
	return Assets{id: "media", prefix: routepath.MediaPrefix, files: files}
}

// ID returns a stable module identifier.
func (a Assets) ID() string { return a.id }

// Mount returns the asset route mount.
func (a Assets) Mount() (module.Mount, error) {
	if a.files == nil {
		return module.Mount{}, fmt.Errorf("%s assets: directory is required", a.id)
	}
	server := http.StripPrefix(a.prefix, http.FileServerFS(a.files))
	return module.Mount{Prefix: a.prefix, Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			httpx.MethodNotAllowed("GET, HEAD")(w, r)
			return
		}
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		server.ServeHTTP(w, r)
	})}, nil
}
