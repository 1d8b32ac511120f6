// Package middleware provides composable net/http middleware and an ordered stack to apply it.
package middleware

import "net/http"

// Func wraps an http.Handler with additional behavior.
type Func func(http.Handler) http.Handler

// System manages an ordered stack of HTTP middleware.
// The first middleware added is the outermost when applied.
type System interface {
	Use(mw Func)
	Apply(handler http.Handler) http.Handler
}

type stack struct {
	funcs []Func
}

// New creates an empty middleware System.
func New() System {
	return &stack{
		funcs: []Func{},
	}
}

func (s *stack) Use(fn Func) {
	s.funcs = append(s.funcs, fn)
}

func (s *stack) Apply(handler http.Handler) http.Handler {
	for i := len(s.funcs) - 1; i >= 0; i-- {
		handler = s.funcs[i](handler)
	}
	return handler
}
