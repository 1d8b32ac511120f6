package handlers_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/promptd/pkg/handlers"
)

func TestRespondJSON(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		data     any
		wantBody string
	}{
		{"200 with map", http.StatusOK, map[string]string{"key": "value"}, `{"key":"value"}`},
		{"200 with slice", http.StatusOK, []int{1, 2}, `[1,2]`},
		{"201 with struct", http.StatusCreated, struct{ ID int }{ID: 42}, `{"ID":42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handlers.RespondJSON(rec, tt.status, tt.data)

			if rec.Code != tt.status {
				t.Errorf("status: got %d, want %d", rec.Code, tt.status)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("content-type: got %s", ct)
			}
			if got := rec.Body.String(); got != tt.wantBody {
				t.Errorf("body: got %q, want %q", got, tt.wantBody)
			}
		})
	}
}

func TestRespondJSONMarshalFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	handlers.RespondJSON(rec, http.StatusOK, map[string]any{"fn": func() {}})

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want 500", rec.Code)
	}

	var v any
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err == nil {
		t.Error("body should not be JSON on marshal failure")
	}
}

func TestRespondStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	handlers.RespondStatus(rec, http.StatusNotFound)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rec.Code)
	}
	if got := rec.Body.String(); got != "Not Found" {
		t.Errorf("body: got %q, want %q", got, "Not Found")
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
		t.Errorf("content-type: got %s", ct)
	}
}

func TestRespondError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	rec := httptest.NewRecorder()

	handlers.RespondError(rec, logger, http.StatusMethodNotAllowed, errors.New("nope"))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status: got %d, want 405", rec.Code)
	}
	if got := rec.Body.String(); got != "Method Not Allowed" {
		t.Errorf("body: got %q, want %q", got, "Method Not Allowed")
	}
}
