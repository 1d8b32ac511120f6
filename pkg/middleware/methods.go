package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/JaimeStill/promptd/pkg/handlers"
)

// Methods returns middleware that rejects any request whose method is not in
// allowed with 405 Method Not Allowed, regardless of path.
func Methods(allowed ...string) Func {
	allow := strings.Join(allowed, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !slices.Contains(allowed, r.Method) {
				w.Header().Set("Allow", allow)
				handlers.RespondStatus(w, http.StatusMethodNotAllowed)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
