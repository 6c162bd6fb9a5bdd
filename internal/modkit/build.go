package modkit

import (
	"net/http"
)

// Built is a plain struct with the fields modules care about
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any
}

// Build applies Option funcs to an internal buildCfg and returns a plain struct
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		if o != nil {
			o(&c)
		}
	}
	return Built{
		Name:   c.name,
		Prefix: c.prefix,
		Mw:     append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:  c.ports,
	}
}
