package prompts

import (
	"net/http"

	"github.com/JaimeStill/promptd/pkg/openapi"
)

// Schemas returns the component schemas for prompt payloads.
func Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"PromptSummary": {
			Type:     "object",
			Required: []string{"id", "title", "version", "updatedAt"},
			Properties: map[string]*openapi.Schema{
				"id":        {Type: "string", Example: "welcome"},
				"title":     {Type: "string", Example: "Welcome System Prompt"},
				"version":   {Type: "string", Description: "Opaque version token", Example: "1"},
				"updatedAt": {Type: "string", Format: "date-time"},
			},
		},
		"PromptContent": {
			Type:     "object",
			Required: []string{"body"},
			Properties: map[string]*openapi.Schema{
				"body": {Type: "string", Description: "Prompt text"},
			},
		},
	}
}

// Preflight names the component response for answered CORS preflights.
const Preflight = "Preflight"

// Responses returns the component responses prompt operations reference.
func Responses() map[string]*openapi.Response {
	return map[string]*openapi.Response{
		Preflight: {
			Description: "CORS preflight accepted; empty body, no Content-Type",
			Headers: map[string]*openapi.Header{
				"Access-Control-Allow-Origin":  {Schema: &openapi.Schema{Type: "string", Example: "*"}},
				"Access-Control-Allow-Methods": {Schema: &openapi.Schema{Type: "string", Example: "GET, OPTIONS"}},
				"Access-Control-Allow-Headers": {Schema: &openapi.Schema{Type: "string", Example: "Content-Type, Authorization, If-None-Match"}},
			},
		},
	}
}

// Paths returns the OpenAPI path items for the prompt routes.
func Paths() map[string]*openapi.PathItem {
	ifNoneMatch := openapi.HeaderParam("If-None-Match", "Previously returned ETag")
	preflight := &openapi.Operation{
		Summary: "CORS preflight",
		Tags:    []string{"prompts"},
		Responses: map[int]*openapi.Response{
			http.StatusNoContent: openapi.ResponseRef(Preflight),
		},
	}

	return map[string]*openapi.PathItem{
		"/prompts": {
			Get: &openapi.Operation{
				Summary:    "List prompts",
				Tags:       []string{"prompts"},
				Parameters: []*openapi.Parameter{ifNoneMatch},
				Responses: map[int]*openapi.Response{
					http.StatusOK: openapi.Cacheable(
						"Prompt summaries in catalog order",
						&openapi.Schema{Type: "array", Items: openapi.SchemaRef("PromptSummary")},
					),
					http.StatusNotModified: openapi.ResponseRef(openapi.NotModified),
				},
			},
			Options: preflight,
		},
		"/prompts/{id}": {
			Get: &openapi.Operation{
				Summary: "Get prompt body",
				Tags:    []string{"prompts"},
				Parameters: []*openapi.Parameter{
					openapi.PathParam("id", "Prompt id"),
					ifNoneMatch,
				},
				Responses: map[int]*openapi.Response{
					http.StatusOK:          openapi.Cacheable("Prompt body", openapi.SchemaRef("PromptContent")),
					http.StatusNotModified: openapi.ResponseRef(openapi.NotModified),
					http.StatusNotFound:    openapi.ResponseRef(openapi.NotFound),
				},
			},
			Options: preflight,
		},
	}
}
