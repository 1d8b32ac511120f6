package prompts

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/promptd/internal/catalog"
)

// ErrNotFound is returned when no prompt has the requested id.
var ErrNotFound = catalog.ErrNotFound

// MapHTTPStatus maps prompt domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
