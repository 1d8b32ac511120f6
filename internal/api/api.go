// Package api assembles the HTTP dispatcher: middleware stack, domain systems,
// and the routing table.
package api

import (
	"net/http"

	"github.com/JaimeStill/promptd/internal/config"
	"github.com/JaimeStill/promptd/internal/infrastructure"
	"github.com/JaimeStill/promptd/pkg/middleware"
	"github.com/JaimeStill/promptd/pkg/routes"
)

// New creates the API handler. Every request passes through, in order:
// request id, request logging, CORS (which answers OPTIONS itself), and the
// method guard, before reaching the routing table.
func New(cfg *config.Config, infra *infrastructure.Infrastructure) (http.Handler, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	groups, err := routeTable(domain, runtime, cfg)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	routes.Register(mux, groups...)
	routes.Fallback(mux, notFound)

	allowed := append(routes.Methods(groups...), http.MethodOptions)

	mw := middleware.New()
	mw.Use(middleware.RequestID())
	mw.Use(middleware.Logger(runtime.Logger))
	mw.Use(middleware.CORS(&cfg.API.CORS))
	mw.Use(middleware.Methods(allowed...))

	for _, entry := range routes.Table(groups...) {
		runtime.Logger.Debug("route registered", "pattern", entry.Pattern())
	}

	return mw.Apply(routes.Canonical(mux, notFound)), nil
}
