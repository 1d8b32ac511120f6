package openapi

import "maps"

// Shared response names registered by NewComponents.
const (
	NotModified      = "NotModified"
	NotFound         = "NotFound"
	MethodNotAllowed = "MethodNotAllowed"
)

// NewComponents creates Components holding the plain-text status responses
// every route can reference.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{},
		Responses: map[string]*Response{
			NotModified:      {Description: "Cached copy is still valid; empty body"},
			NotFound:         text("Resource not found", "Not Found"),
			MethodNotAllowed: text("Method not allowed", "Method Not Allowed"),
		},
	}
}

// AddSchemas merges schemas into the component schemas.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	maps.Copy(c.Schemas, schemas)
}

// AddResponses merges responses into the component responses.
func (c *Components) AddResponses(responses map[string]*Response) {
	maps.Copy(c.Responses, responses)
}

// SchemaRef points at a component schema.
func SchemaRef(name string) *Schema {
	return &Schema{Ref: "#/components/schemas/" + name}
}

// ResponseRef points at a component response.
func ResponseRef(name string) *Response {
	return &Response{Ref: "#/components/responses/" + name}
}

// Cacheable is a JSON response that carries an ETag header.
func Cacheable(description string, schema *Schema) *Response {
	return &Response{
		Description: description,
		Headers: map[string]*Header{
			"ETag": {Description: "Weak validator for conditional requests", Schema: &Schema{Type: "string"}},
		},
		Content: map[string]*MediaType{
			"application/json": {Schema: schema},
		},
	}
}

// PathParam is a required string path parameter.
func PathParam(name, description string) *Parameter {
	return &Parameter{Name: name, In: "path", Required: true, Description: description, Schema: &Schema{Type: "string"}}
}

// HeaderParam is an optional string request header.
func HeaderParam(name, description string) *Parameter {
	return &Parameter{Name: name, In: "header", Description: description, Schema: &Schema{Type: "string"}}
}

func text(description, example string) *Response {
	return &Response{
		Description: description,
		Content: map[string]*MediaType{
			"text/plain": {Schema: &Schema{Type: "string", Example: example}},
		},
	}
}
