// Package http hosts server adapters. Profiler mounts pprof endpoints when enabled
package http

import (
	stdhttp "net/http"

	mw "github.com/go-chi/chi/v5/middleware"
)

// MountProfiler mounts pprof under prefix. Example: "/debug"
func MountProfiler(r Router, prefix string, enabled bool) {
	if !enabled {
		return
	}
	// chi's profiler expects to be mounted, so strip our prefix before handing off
	h := stdhttp.StripPrefix(prefix, mw.Profiler())
	r.Handle(prefix, h)
	r.Handle(prefix+"/*", h)
}
