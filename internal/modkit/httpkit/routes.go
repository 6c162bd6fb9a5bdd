package httpkit

import (
	"net/http"

	pstrings "panchang/internal/platform/strings"
)

// MountUnder mounts a subrouter at prefix and applies per-module middlewares
// an empty prefix mounts onto r directly inside a group so middleware stays scoped
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	scoped := func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	}
	if prefix == "" {
		r.Group(scoped)
		return
	}
	r.Route(pstrings.MustPrefix(prefix), scoped)
}
