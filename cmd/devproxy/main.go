// Command devproxy is the development reverse proxy for the storefront
// client: it forwards /api requests to a local backend instance and exposes
// its own health and metrics endpoints, mirroring the Vite proxy the browser
// build relied on.
package main

import (
	"context"
	"net/url"
	"os"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/bakeryhub/storefront/internal/infrastructure/config"
	"github.com/bakeryhub/storefront/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logger.Init(logger.Options{})
		fallback.Error().Err(err).Msg("failed to load configuration")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})

	target, err := url.Parse(cfg.DevProxy.BackendAddr)
	if err != nil {
		log.Error().Err(err).Str("backend", cfg.DevProxy.BackendAddr).Msg("invalid backend address")
		os.Exit(1)
	}

	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("devproxy"))

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- API proxy ---
	api := e.Group("/api")
	api.Use(echomiddleware.Proxy(echomiddleware.NewRoundRobinBalancer([]*echomiddleware.ProxyTarget{
		{URL: target},
	})))

	log.Info().
		Str("port", cfg.DevProxy.Port).
		Str("backend", cfg.DevProxy.BackendAddr).
		Msg("devproxy listening")

	if err := e.Start(":" + cfg.DevProxy.Port); err != nil {
		log.Error().Err(err).Msg("devproxy stopped")
		os.Exit(1)
	}
}
