// Package handlers provides response helpers shared by HTTP handlers.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// RespondJSON writes data as a compact JSON body with the given status.
// Marshal failures are reported as 500 with a plain-text body.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		RespondStatus(w, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}

// RespondText writes text as a plain-text body with the given status.
func RespondText(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(text))
}

// RespondStatus writes the standard status text (e.g. "Not Found") as a plain-text body.
func RespondStatus(w http.ResponseWriter, status int) {
	RespondText(w, status, http.StatusText(status))
}

// RespondError logs err and writes the standard status text for status.
// Client errors log at debug, server errors at error.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	if status >= http.StatusInternalServerError {
		logger.Error("handler error", "error", err, "status", status)
	} else {
		logger.Debug("handler error", "error", err, "status", status)
	}
	RespondStatus(w, status)
}
