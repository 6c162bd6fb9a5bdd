// Package api provides the HTTP API for the application
package api

import (
	"panchang/internal/adapters/mistral"
	"panchang/internal/adapters/prokerala"
	"panchang/internal/core/almanac"
	"panchang/internal/platform/config"
	"panchang/internal/platform/logger"
	phttp "panchang/internal/platform/net/http"

	"panchang/internal/modkit"
	"panchang/internal/modkit/httpkit"
	"panchang/internal/modkit/module"
	"panchang/internal/modkit/swaggerkit"

	chmod "panchang/internal/services/api/chandrashtama/module"
	locmod "panchang/internal/services/api/locations/module"
	metamod "panchang/internal/services/api/meta/module"
	panchangmod "panchang/internal/services/api/panchang/module"
	recmod "panchang/internal/services/api/recommendations/module"

	chdomain "panchang/internal/services/api/chandrashtama/domain"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	Almanac        *almanac.Almanac
	Provider       *prokerala.Client // nil when credentials are missing
	LLM            *mistral.Client   // nil when no API key is set
	ServiceName    string
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	log := opt.Logger
	if log == nil {
		log = logger.Named("api")
	}

	// shared deps for modules
	deps := modkit.Deps{
		Log:     *log,
		Cfg:     opt.Config,
		Almanac: opt.Almanac,
	}
	data := deps.Data()
	deps.Almanac = data

	// chandrashtama owns the Enricher port the panchang module consumes
	chandrashtama := chmod.New(deps)
	enricher := module.MustPortsOf[chdomain.Enricher](chandrashtama)

	// typed nils must not leak into the interface ports
	var pp panchangmod.Ports
	var rp recmod.Ports
	var mp = metamod.Ports{ServiceName: opt.ServiceName}
	pp.Enricher = enricher
	if opt.Provider != nil {
		pp.Provider = opt.Provider
		mp.Provider = opt.Provider
	} else {
		log.Warn().Msg("prokerala credentials missing, panchang serves the sample day")
	}
	if opt.LLM != nil {
		rp.Advisor = opt.LLM
		mp.LLM = opt.LLM
	} else {
		log.Info().Msg("mistral api key missing, recommendations use the static lists")
	}

	mods := []module.Module{
		metamod.New(deps, modkit.WithPorts(mp)),
		chandrashtama,
		panchangmod.New(deps, modkit.WithPorts(pp)),
		recmod.New(deps, modkit.WithPorts(rp)),
		locmod.New(deps),
	}

	// Swagger + profiler
	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(httpkit.StackOptionsFrom(opt.Config)), func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
