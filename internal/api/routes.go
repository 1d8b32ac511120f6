package api

import (
	"net/http"

	"github.com/JaimeStill/promptd/internal/config"
	"github.com/JaimeStill/promptd/internal/prompts"
	"github.com/JaimeStill/promptd/pkg/handlers"
	"github.com/JaimeStill/promptd/pkg/lifecycle"
	"github.com/JaimeStill/promptd/pkg/openapi"
	"github.com/JaimeStill/promptd/pkg/routes"
)

// routeTable returns every route the API serves. Anything not listed falls
// through to 404.
func routeTable(domain *Domain, runtime *Runtime, cfg *config.Config) ([]routes.Group, error) {
	doc, err := document(runtime, cfg).Handler()
	if err != nil {
		return nil, err
	}

	return []routes.Group{
		domain.Prompts.Handler().Routes(),
		probeRoutes(runtime.Lifecycle),
		{
			Routes: []routes.Route{
				{Method: "GET", Pattern: "/openapi.json", Handler: doc},
			},
		},
	}, nil
}

func probeRoutes(lc lifecycle.ReadinessChecker) routes.Group {
	return routes.Group{
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/healthz", Handler: func(w http.ResponseWriter, r *http.Request) {
				handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
			}},
			{Method: "GET", Pattern: "/readyz", Handler: func(w http.ResponseWriter, r *http.Request) {
				if !lc.Ready() {
					handlers.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
					return
				}
				handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
			}},
		},
	}
}

func document(runtime *Runtime, cfg *config.Config) *openapi.Document {
	doc := openapi.New(runtime.Config.Title, cfg.Version, runtime.Config.Description)
	doc.AddServer(cfg.Server.URL(), cfg.Env())
	doc.Components.AddSchemas(prompts.Schemas())
	doc.Components.AddResponses(prompts.Responses())
	doc.AddPaths(prompts.Paths())
	return doc
}

func notFound(w http.ResponseWriter, r *http.Request) {
	handlers.RespondStatus(w, http.StatusNotFound)
}
