// @title         Panchang API
// @version       0.1.0
// @description   Panchangam days with display times, chandrashtama warnings and recommendations

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"panchang/internal/adapters/mistral"
	"panchang/internal/adapters/prokerala"
	"panchang/internal/core/almanac"
	"panchang/internal/platform/config"
	"panchang/internal/platform/logger"
	phttp "panchang/internal/platform/net/http"
	"panchang/internal/platform/net/middleware"

	"panchang/internal/services/api"

	"github.com/go-chi/chi/v5"
)

const serviceName = "panchang-api"

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	svcCfg := root.Prefix("SERVICE_") // adapters live under SERVICE_PROKERALA_* and SERVICE_MISTRAL_*

	// bring up logging early
	l := logger.Get()

	data, err := almanac.Load()
	if err != nil {
		l.Panic().Err(err).Msg("almanac load failed")
	}

	provider, err := prokerala.NewClient(prokerala.FromConfig(svcCfg))
	switch {
	case errors.Is(err, prokerala.ErrNotConfigured):
		provider = nil
	case err != nil:
		l.Panic().Err(err).Msg("prokerala client")
	default:
		defer provider.Close()
	}

	llm, err := mistral.NewClient(mistral.FromConfig(svcCfg))
	switch {
	case errors.Is(err, mistral.ErrNotConfigured):
		llm = nil
	case err != nil:
		l.Panic().Err(err).Msg("mistral client")
	default:
		defer llm.Close()
	}

	// http server (reads CORE_API_API_PORT); heartbeat sits outside the api stack
	srv := phttp.NewServer(apiCfg, func(m *chi.Mux) {
		m.Use(middleware.Heartbeat("/ping"))
	})

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Logger:         l,
			Almanac:        data,
			Provider:       provider,
			LLM:            llm,
			ServiceName:    serviceName,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	// run until SIGINT/SIGTERM, then drain
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := srv.Run(ctx); err != nil {
		l.Error().Err(err).Msg("http server stopped")
		stop()
		os.Exit(1)
	}
	l.Info().Msg("http server stopped")
}
