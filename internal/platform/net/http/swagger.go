package http

import (
	"net/http"
	"strings"

	httpSwagger "github.com/swaggo/http-swagger"
)

// MountSwagger mounts the swagger UI under prefix when enabled
// docURL points the UI at the served OpenAPI document
func MountSwagger(r Router, prefix, docURL string, enabled bool) {
	if !enabled {
		return
	}
	prefix = "/" + strings.Trim(prefix, "/")
	h := httpSwagger.Handler(httpSwagger.URL(docURL))
	r.Get(prefix, func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, prefix+"/index.html", http.StatusMovedPermanently)
	})
	r.Get(prefix+"/*", h.ServeHTTP)
}
