// Package etag builds weak entity tags and evaluates If-None-Match preconditions.
//
// Matching is exact string equality against the raw header value: no list
// parsing, no "*" handling, and no weak/strong comparison rules.
package etag

import "net/http"

// Weak formats tag as a weak validator: W/"tag".
func Weak(tag string) string {
	return `W/"` + tag + `"`
}

// Matches reports whether the request's If-None-Match header equals etag exactly.
// An absent header never matches.
func Matches(r *http.Request, etag string) bool {
	inm := r.Header.Get("If-None-Match")
	return inm != "" && inm == etag
}

// Check answers a conditional GET. When the request's If-None-Match equals
// etag it writes 304 with no body and returns true; otherwise it sets the
// ETag response header and returns false so the caller writes the full body.
func Check(w http.ResponseWriter, r *http.Request, etag string) bool {
	if Matches(r, etag) {
		w.WriteHeader(http.StatusNotModified)
		return true
	}
	w.Header().Set("ETag", etag)
	return false
}
