// Package openapi models the subset of an OpenAPI 3.1 document needed to
// describe the service and serves it as JSON.
package openapi

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"maps"
	"net/http"

	"github.com/JaimeStill/promptd/pkg/etag"
)

// Version is the OpenAPI release the document declares.
const Version = "3.1.0"

// Document is an OpenAPI document under construction.
type Document struct {
	OpenAPI    string               `json:"openapi"`
	Info       *Info                `json:"info"`
	Servers    []*Server            `json:"servers,omitempty"`
	Paths      map[string]*PathItem `json:"paths"`
	Components *Components          `json:"components,omitempty"`
}

// New creates a Document with the shared status responses already registered.
func New(title, version, description string) *Document {
	return &Document{
		OpenAPI: Version,
		Info: &Info{
			Title:       title,
			Version:     version,
			Description: description,
		},
		Paths:      make(map[string]*PathItem),
		Components: NewComponents(),
	}
}

// AddServer appends a server URL.
func (d *Document) AddServer(url, description string) {
	d.Servers = append(d.Servers, &Server{URL: url, Description: description})
}

// AddPaths merges path items, replacing existing entries.
func (d *Document) AddPaths(paths map[string]*PathItem) {
	maps.Copy(d.Paths, paths)
}

// Bytes serializes the document to indented JSON.
func (d *Document) Bytes() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal openapi document: %w", err)
	}
	return data, nil
}

// Handler serializes the document once and returns a handler serving the
// bytes under a weak validator derived from their digest.
func (d *Document) Handler() (http.HandlerFunc, error) {
	data, err := d.Bytes()
	if err != nil {
		return nil, err
	}

	sum := sha256.Sum256(data)
	tag := etag.Weak("openapi-" + hex.EncodeToString(sum[:8]))

	return func(w http.ResponseWriter, r *http.Request) {
		if etag.Check(w, r, tag) {
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}, nil
}
