// Package swaggerkit mounts the swagger UI and the hand maintained OpenAPI document
package swaggerkit

import (
	_ "embed"
	"net/http"

	phttp "panchang/internal/platform/net/http"
)

//go:embed openapi.json
var openAPI []byte

const (
	docsPrefix = "/api/docs"
	docPath    = docsPrefix + "/doc.json"
)

// Mount the Swagger UI and OpenAPI document if enabled
// the document route is registered first so the UI wildcard does not shadow it
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get(docPath, serveDocJSON)
	phttp.MountSwagger(r, docsPrefix, docPath, true)
}

func serveDocJSON(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(openAPI)
}
