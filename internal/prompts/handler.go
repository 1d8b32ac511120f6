package prompts

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/promptd/pkg/etag"
	"github.com/JaimeStill/promptd/pkg/handlers"
	"github.com/JaimeStill/promptd/pkg/routes"
)

// Handler provides HTTP endpoints for prompt operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "prompts"),
	}
}

// Routes returns the route group definition for prompt endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/prompts",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
		},
	}
}

// List returns every prompt summary in catalog order, honoring If-None-Match
// against the catalog-wide validator.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	summaries, tag, err := h.sys.List(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	if etag.Check(w, r, tag) {
		return
	}

	handlers.RespondJSON(w, http.StatusOK, summaries)
}

// Find returns the body of a single prompt by its path id, honoring
// If-None-Match against the record's validator.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	content, tag, err := h.sys.Find(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	if etag.Check(w, r, tag) {
		return
	}

	handlers.RespondJSON(w, http.StatusOK, content)
}
