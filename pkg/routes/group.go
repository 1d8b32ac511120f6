package routes

import (
	"net/http"
	"path"
	"slices"
)

// Group organizes routes under a common prefix.
type Group struct {
	Prefix   string
	Routes   []Route
	Children []Group
}

// Table flattens groups into resolved entries in declaration order.
// Children are resolved after their parent's own routes.
func Table(groups ...Group) []Entry {
	var entries []Entry
	for _, group := range groups {
		entries = appendGroup(entries, "", group)
	}
	return entries
}

// Register adds all routes from the given groups to the mux.
func Register(mux *http.ServeMux, groups ...Group) {
	for _, entry := range Table(groups...) {
		mux.HandleFunc(entry.Pattern(), entry.Handler)
	}
}

// Fallback registers handler for every request no other pattern matches.
func Fallback(mux *http.ServeMux, handler http.HandlerFunc) {
	mux.HandleFunc("/", handler)
}

// Canonical wraps mux so a request whose path is not already clean (doubled
// slashes, dot segments, trailing slash) goes to notFound instead of receiving
// the mux's redirect to the cleaned path.
func Canonical(mux *http.ServeMux, notFound http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if p := r.URL.Path; p == "" || path.Clean(p) != p {
			notFound(w, r)
			return
		}
		mux.ServeHTTP(w, r)
	})
}

// Methods returns the sorted, de-duplicated set of methods served by the groups.
func Methods(groups ...Group) []string {
	var methods []string
	for _, entry := range Table(groups...) {
		if !slices.Contains(methods, entry.Method) {
			methods = append(methods, entry.Method)
		}
	}
	slices.Sort(methods)
	return methods
}

func appendGroup(entries []Entry, parentPrefix string, group Group) []Entry {
	fullPrefix := parentPrefix + group.Prefix
	for _, route := range group.Routes {
		entries = append(entries, Entry{
			Method:  route.Method,
			Path:    fullPrefix + route.Pattern,
			Handler: route.Handler,
		})
	}
	for _, child := range group.Children {
		entries = appendGroup(entries, fullPrefix, child)
	}
	return entries
}
