package routes

import "net/http"

// Route binds an HTTP method and pattern to a handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// Entry is a fully resolved route: a ServeMux pattern and the handler it dispatches to.
type Entry struct {
	Method  string
	Path    string
	Handler http.HandlerFunc
}

// Pattern returns the method-qualified ServeMux pattern for the entry.
func (e Entry) Pattern() string {
	return e.Method + " " + e.Path
}
